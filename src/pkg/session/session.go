// Package session routes discrete interaction-surface commands to the
// mind map controller. Commands carry a scope, an operation, and
// arguments; each scope has its own handler table.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mindflow/src/pkg/log"
	"mindflow/src/pkg/mindmap"
	"mindflow/src/pkg/model"
)

// ErrExit is returned by CommandRun when the user requested termination.
var ErrExit = errors.New("exit requested")

// CommandHandler is a function type for command handlers
type CommandHandler func(*Session, model.Command) (interface{}, error)

// Session binds one interaction surface to one mind map controller.
type Session struct {
	Controller      *mindmap.Controller
	LastActivity    time.Time
	commandHandlers map[string]map[string]CommandHandler
	logger          *log.Logger
}

// NewSession creates a new Session instance over the given controller.
func NewSession(controller *mindmap.Controller, logger *log.Logger) *Session {
	s := &Session{
		Controller:   controller,
		LastActivity: time.Now(),
		logger:       logger,
	}
	s.initCommandHandlers()
	return s
}

// initCommandHandlers initializes the command handlers map
func (s *Session) initCommandHandlers() {
	s.commandHandlers = map[string]map[string]CommandHandler{
		"node":   initNodeCommandHandlers(),
		"nav":    initNavCommandHandlers(),
		"map":    initMapCommandHandlers(),
		"system": initSystemCommandHandlers(),
	}
}

// CommandRun validates a command and executes it within the session.
func (s *Session) CommandRun(cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Command(ctx, strings.TrimSpace(cmd.Scope+" "+cmd.Operation+" "+strings.Join(cmd.Args, " ")), nil)

	s.LastActivity = time.Now()

	wrapped := NewCommand(cmd, s.logger)
	if err := wrapped.Validate(); err != nil {
		return nil, err
	}

	scopeHandlers, ok := s.commandHandlers[cmd.Scope]
	if !ok {
		s.logger.Error(ctx, "Invalid command scope", log.Fields{"scope": cmd.Scope})
		return nil, fmt.Errorf("invalid command scope: %s", cmd.Scope)
	}
	handler, ok := scopeHandlers[cmd.Operation]
	if !ok {
		s.logger.Error(ctx, "Invalid command operation", log.Fields{"operation": cmd.Operation})
		return nil, fmt.Errorf("invalid command operation: %s", cmd.Operation)
	}

	result, err := handler(s, cmd)
	if err != nil && !errors.Is(err, ErrExit) {
		s.logger.Error(ctx, "Command execution failed", log.Fields{"error": err, "scope": cmd.Scope, "operation": cmd.Operation})
	}
	return result, err
}

// initNodeCommandHandlers initializes node command handlers
func initNodeCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"child":   handleNodeChild,
		"sibling": handleNodeSibling,
		"delete":  handleNodeDelete,
		"text":    handleNodeText,
		"up":      handleNodeUp,
		"down":    handleNodeDown,
	}
}

// initNavCommandHandlers initializes navigation command handlers
func initNavCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"parent": handleNavParent,
		"first":  handleNavFirst,
		"next":   handleNavNext,
		"prev":   handleNavPrev,
	}
}

// initMapCommandHandlers initializes map command handlers
func initMapCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"show": handleMapShow,
	}
}

// initSystemCommandHandlers initializes system command handlers
func initSystemCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"exit": handleSystemExit,
		"quit": handleSystemExit,
	}
}
