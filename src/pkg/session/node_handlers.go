package session

import (
	"fmt"
	"strconv"
	"strings"

	"mindflow/src/pkg/model"
)

// handleNodeChild creates a child of the active node and makes it active.
func handleNodeChild(s *Session, _ model.Command) (interface{}, error) {
	id, err := s.Controller.NewChild()
	if err != nil {
		return nil, err
	}
	return id, nil
}

// handleNodeSibling creates a sibling after the active node and makes it
// active. On the root it creates a child instead.
func handleNodeSibling(s *Session, _ model.Command) (interface{}, error) {
	id, err := s.Controller.NewSibling()
	if err != nil {
		return nil, err
	}
	return id, nil
}

// handleNodeDelete deletes the active node's subtree and moves the
// active marker to its former parent.
func handleNodeDelete(s *Session, _ model.Command) (interface{}, error) {
	if err := s.Controller.DeleteActive(); err != nil {
		return nil, err
	}
	return s.Controller.ActiveID(), nil
}

// handleNodeText sets the text of the active node, or of an explicit
// node when the --id flag is given:
//
//	node text <text>...
//	node text --id <node_id> <text>...
func handleNodeText(s *Session, cmd model.Command) (interface{}, error) {
	args := cmd.Args
	if args[0] == "--id" {
		if len(args) < 3 {
			return nil, fmt.Errorf("node text --id requires a node id and text")
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("invalid node id %q: %w", args[1], err)
		}
		return nil, s.Controller.SetTextOf(id, strings.Join(args[2:], " "))
	}
	return nil, s.Controller.SetText(strings.Join(args, " "))
}

// handleNodeUp moves the active node up in its sibling order.
func handleNodeUp(s *Session, _ model.Command) (interface{}, error) {
	return nil, s.Controller.MoveActiveUp()
}

// handleNodeDown moves the active node down in its sibling order.
func handleNodeDown(s *Session, _ model.Command) (interface{}, error) {
	return nil, s.Controller.MoveActiveDown()
}
