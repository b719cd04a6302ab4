// Package tree implements the node store: an arena of mind map nodes
// keyed by id, with parent/children stored as ids rather than pointers.
// The store owns tree shape and text only; positions are derived
// elsewhere by the layout engine.
package tree

import (
	"fmt"

	"mindflow/src/pkg/model"
)

// Store holds the nodes of a single mind map. It is not safe for
// concurrent use; all mutation happens on the owning event loop.
type Store struct {
	nodes  map[int]*model.Node
	nextID int
}

// NewStore creates a store containing only the root node, which carries
// the given text and persists for the lifetime of the mind map.
func NewStore(rootText string) *Store {
	s := &Store{
		nodes:  make(map[int]*model.Node),
		nextID: model.RootID,
	}
	root := &model.Node{
		ID:   s.nextID,
		Text: rootText,
	}
	s.nodes[root.ID] = root
	s.nextID++
	return s
}

// Root returns the id of the root node.
func (s *Store) Root() int {
	return model.RootID
}

// Len returns the number of nodes in the store.
func (s *Store) Len() int {
	return len(s.nodes)
}

// Get retrieves a node by id. The returned record is the store's own;
// callers must not modify Children directly.
func (s *Store) Get(id int) (*model.Node, error) {
	node, ok := s.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	return node, nil
}

// CreateChild creates a new node with the given text and appends it to
// the parent's children. Returns the id of the new node.
func (s *Store) CreateChild(parentID int, text string) (int, error) {
	parent, ok := s.nodes[parentID]
	if !ok {
		return 0, fmt.Errorf("parent %d: %w", parentID, ErrNodeNotFound)
	}
	return s.insertChild(parent, len(parent.Children), text), nil
}

// CreateChildAt creates a new node with the given text and inserts it at
// the given index of the parent's children. The index is clamped to the
// valid range, so len(children) appends.
func (s *Store) CreateChildAt(parentID, index int, text string) (int, error) {
	parent, ok := s.nodes[parentID]
	if !ok {
		return 0, fmt.Errorf("parent %d: %w", parentID, ErrNodeNotFound)
	}
	if index < 0 {
		index = 0
	}
	if index > len(parent.Children) {
		index = len(parent.Children)
	}
	return s.insertChild(parent, index, text), nil
}

// insertChild allocates the next id and splices the new node into the
// parent's children at index. Ids are never reused.
func (s *Store) insertChild(parent *model.Node, index int, text string) int {
	node := &model.Node{
		ID:       s.nextID,
		ParentID: parent.ID,
		Text:     text,
		Depth:    parent.Depth + 1,
	}
	s.nextID++
	s.nodes[node.ID] = node

	parent.Children = append(parent.Children, 0)
	copy(parent.Children[index+1:], parent.Children[index:])
	parent.Children[index] = node.ID
	return node.ID
}

// DeleteSubtree removes the node and all its descendants, detaching the
// subtree from the parent's children. The root cannot be deleted.
func (s *Store) DeleteSubtree(id int) error {
	node, ok := s.nodes[id]
	if !ok {
		return fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	if node.ID == model.RootID {
		return fmt.Errorf("cannot delete root node: %w", ErrInvalidOperation)
	}

	parent := s.nodes[node.ParentID]
	for i, childID := range parent.Children {
		if childID == id {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			break
		}
	}
	s.removeRecursive(node)
	return nil
}

// removeRecursive deletes a node and its descendants from the arena.
func (s *Store) removeRecursive(node *model.Node) {
	for _, childID := range node.Children {
		if child, ok := s.nodes[childID]; ok {
			s.removeRecursive(child)
		}
	}
	delete(s.nodes, node.ID)
}

// SetText replaces a node's display text. Text changes never affect
// layout.
func (s *Store) SetText(id int, text string) error {
	node, ok := s.nodes[id]
	if !ok {
		return fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	node.Text = text
	return nil
}

// Reorder swaps the node with its previous (delta < 0) or next
// (delta > 0) sibling. Reordering past a boundary is a no-op rather
// than an error; reordering the root is invalid.
func (s *Store) Reorder(id, delta int) error {
	node, ok := s.nodes[id]
	if !ok {
		return fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	if node.ID == model.RootID {
		return fmt.Errorf("cannot reorder root node: %w", ErrInvalidOperation)
	}
	if delta == 0 {
		return nil
	}

	parent := s.nodes[node.ParentID]
	index := indexOf(parent.Children, id)
	target := index + sign(delta)
	if target < 0 || target >= len(parent.Children) {
		return nil
	}
	parent.Children[index], parent.Children[target] = parent.Children[target], parent.Children[index]
	return nil
}

// Walk visits every node in deterministic pre-order, children in their
// stored order.
func (s *Store) Walk(fn func(*model.Node)) {
	s.walkFrom(s.nodes[model.RootID], fn)
}

func (s *Store) walkFrom(node *model.Node, fn func(*model.Node)) {
	fn(node)
	for _, childID := range node.Children {
		if child, ok := s.nodes[childID]; ok {
			s.walkFrom(child, fn)
		}
	}
}

// indexOf returns the position of id in children, or -1 if absent.
func indexOf(children []int, id int) int {
	for i, childID := range children {
		if childID == id {
			return i
		}
	}
	return -1
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}
