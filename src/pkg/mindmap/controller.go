// Package mindmap implements the active-node controller: the state
// machine that owns a node store, tracks the single active node, and
// interprets navigation and creation commands against it. Every
// transition that changes tree shape triggers a layout recompute before
// any observer sees the scene.
package mindmap

import (
	"context"
	"fmt"

	"mindflow/src/pkg/event"
	"mindflow/src/pkg/layout"
	"mindflow/src/pkg/log"
	"mindflow/src/pkg/model"
	"mindflow/src/pkg/tree"
)

// Controller owns the mind map state for one document: the node store,
// the layout engine, the cached positions, and the active node id. It
// is owned by a single frontend event loop and is not safe for
// concurrent use.
type Controller struct {
	store     *tree.Store
	engine    *layout.Engine
	activeID  int
	positions map[int]model.Point
	nodeText  string
	events    *event.EventManager
	logger    *log.Logger
}

// NewController creates a controller with a fresh store containing only
// the root node, which starts active.
func NewController(cfg *model.Config, events *event.EventManager, logger *log.Logger) *Controller {
	c := &Controller{
		store:    tree.NewStore(cfg.RootText),
		engine:   layout.NewEngine(cfg.Layout),
		nodeText: cfg.NodeText,
		events:   events,
		logger:   logger,
	}
	c.activeID = c.store.Root()
	c.relayout()
	return c
}

// ActiveID returns the id of the currently active node. It always
// refers to a node present in the store.
func (c *Controller) ActiveID() int {
	return c.activeID
}

// Store exposes the underlying node store for read-only traversal.
func (c *Controller) Store() *tree.Store {
	return c.store
}

// NewChild creates a child of the active node and makes it active.
func (c *Controller) NewChild() (int, error) {
	ctx := context.Background()

	parentID := c.activeID
	id, err := c.store.CreateChild(parentID, c.nodeText)
	if err != nil {
		c.logger.Error(ctx, "Failed to create child node", log.Fields{"error": err, "activeID": parentID})
		return 0, fmt.Errorf("failed to create child node: %w", err)
	}

	c.relayout()
	c.setActive(id)
	c.events.Publish(event.Event{Type: event.NodeAdded, Data: id})
	c.logger.Info(ctx, "Child node created", log.Fields{"nodeID": id, "parentID": parentID})
	return id, nil
}

// NewSibling creates a new child of the active node's parent, inserted
// immediately after the active node, and makes it active. On the root,
// which has no siblings, it behaves as NewChild.
func (c *Controller) NewSibling() (int, error) {
	ctx := context.Background()

	active, err := c.store.Get(c.activeID)
	if err != nil {
		c.logger.Error(ctx, "Active node missing from store", log.Fields{"error": err, "activeID": c.activeID})
		return 0, fmt.Errorf("failed to get active node: %w", err)
	}
	if active.IsRoot() {
		return c.NewChild()
	}

	parent, err := c.store.Get(active.ParentID)
	if err != nil {
		c.logger.Error(ctx, "Parent of active node missing from store", log.Fields{"error": err, "parentID": active.ParentID})
		return 0, fmt.Errorf("failed to get parent node: %w", err)
	}

	index := childIndex(parent.Children, active.ID) + 1
	id, err := c.store.CreateChildAt(parent.ID, index, c.nodeText)
	if err != nil {
		c.logger.Error(ctx, "Failed to create sibling node", log.Fields{"error": err, "parentID": parent.ID})
		return 0, fmt.Errorf("failed to create sibling node: %w", err)
	}

	c.relayout()
	c.setActive(id)
	c.events.Publish(event.Event{Type: event.NodeAdded, Data: id})
	c.logger.Info(ctx, "Sibling node created", log.Fields{"nodeID": id, "parentID": parent.ID, "index": index})
	return id, nil
}

// MoveToParent moves the active marker to the parent of the active
// node. On the root it is a no-op. Returns the active id after the move.
func (c *Controller) MoveToParent() int {
	active, err := c.store.Get(c.activeID)
	if err != nil || active.IsRoot() {
		return c.activeID
	}
	c.setActive(active.ParentID)
	return c.activeID
}

// MoveToFirstChild moves the active marker to the first child of the
// active node, or does nothing if it has no children.
func (c *Controller) MoveToFirstChild() int {
	active, err := c.store.Get(c.activeID)
	if err != nil || len(active.Children) == 0 {
		return c.activeID
	}
	c.setActive(active.Children[0])
	return c.activeID
}

// MoveToNextSibling moves the active marker to the next sibling of the
// active node, or does nothing at the last sibling or on the root.
func (c *Controller) MoveToNextSibling() int {
	return c.moveSibling(1)
}

// MoveToPreviousSibling moves the active marker to the previous sibling
// of the active node, or does nothing at the first sibling or on the root.
func (c *Controller) MoveToPreviousSibling() int {
	return c.moveSibling(-1)
}

func (c *Controller) moveSibling(delta int) int {
	active, err := c.store.Get(c.activeID)
	if err != nil || active.IsRoot() {
		return c.activeID
	}
	parent, err := c.store.Get(active.ParentID)
	if err != nil {
		return c.activeID
	}
	index := childIndex(parent.Children, active.ID) + delta
	if index < 0 || index >= len(parent.Children) {
		return c.activeID
	}
	c.setActive(parent.Children[index])
	return c.activeID
}

// DeleteActive deletes the active node's subtree and moves the active
// marker to its former parent. Deletion and reassignment happen as one
// logical step, so no observer ever sees a dangling active reference.
// Deleting the root fails with tree.ErrInvalidOperation and leaves the
// tree unchanged.
func (c *Controller) DeleteActive() error {
	ctx := context.Background()

	active, err := c.store.Get(c.activeID)
	if err != nil {
		c.logger.Error(ctx, "Active node missing from store", log.Fields{"error": err, "activeID": c.activeID})
		return fmt.Errorf("failed to get active node: %w", err)
	}
	parentID := active.ParentID

	if err := c.store.DeleteSubtree(active.ID); err != nil {
		c.logger.Warn(ctx, "Refused to delete node", log.Fields{"error": err, "nodeID": active.ID})
		return fmt.Errorf("failed to delete node %d: %w", active.ID, err)
	}

	deleted := active.ID
	c.relayout()
	c.setActive(parentID)
	c.events.Publish(event.Event{Type: event.NodeDeleted, Data: deleted})
	c.logger.Info(ctx, "Node subtree deleted", log.Fields{"nodeID": deleted, "newActiveID": parentID})
	return nil
}

// SetText replaces the text of the active node. Text changes never
// trigger a relayout.
func (c *Controller) SetText(text string) error {
	return c.SetTextOf(c.activeID, text)
}

// SetTextOf replaces the text of the given node.
func (c *Controller) SetTextOf(id int, text string) error {
	if err := c.store.SetText(id, text); err != nil {
		c.logger.Error(context.Background(), "Failed to set node text", log.Fields{"error": err, "nodeID": id})
		return fmt.Errorf("failed to set text of node %d: %w", id, err)
	}
	c.events.Publish(event.Event{Type: event.NodeUpdated, Data: id})
	return nil
}

// MoveActiveUp swaps the active node with its previous sibling.
// No-op at the first position; invalid on the root.
func (c *Controller) MoveActiveUp() error {
	return c.reorderActive(-1)
}

// MoveActiveDown swaps the active node with its next sibling.
// No-op at the last position; invalid on the root.
func (c *Controller) MoveActiveDown() error {
	return c.reorderActive(1)
}

func (c *Controller) reorderActive(delta int) error {
	ctx := context.Background()

	if err := c.store.Reorder(c.activeID, delta); err != nil {
		c.logger.Warn(ctx, "Refused to reorder node", log.Fields{"error": err, "nodeID": c.activeID})
		return fmt.Errorf("failed to reorder node %d: %w", c.activeID, err)
	}
	c.relayout()
	c.events.Publish(event.Event{Type: event.NodeReordered, Data: c.activeID})
	c.logger.Info(ctx, "Node reordered", log.Fields{"nodeID": c.activeID, "delta": delta})
	return nil
}

// RenderScene returns a full description of the mind map, sufficient to
// draw every node as a box with a connector line to its parent. The
// result is deterministic pre-order and calling it twice without an
// intervening command returns identical output.
func (c *Controller) RenderScene() []model.SceneNode {
	scene := make([]model.SceneNode, 0, c.store.Len())
	c.store.Walk(func(n *model.Node) {
		scene = append(scene, model.SceneNode{
			ID:       n.ID,
			ParentID: n.ParentID,
			Text:     n.Text,
			Pos:      c.positions[n.ID],
			Active:   n.ID == c.activeID,
		})
	})
	return scene
}

// setActive moves the active marker and notifies observers. The id must
// refer to a node present in the store.
func (c *Controller) setActive(id int) {
	if id == c.activeID {
		return
	}
	c.activeID = id
	c.events.Publish(event.Event{Type: event.ActiveChanged, Data: id})
}

// relayout recomputes positions for the whole tree. Whole-tree
// recompute keeps the result identical to an incremental one at the
// interactive tree sizes this tool handles.
func (c *Controller) relayout() {
	c.positions = c.engine.Layout(c.store)
	c.events.Publish(event.Event{Type: event.LayoutUpdated, Data: nil})
}

// childIndex returns the position of id in children, or -1 if absent.
func childIndex(children []int, id int) int {
	for i, childID := range children {
		if childID == id {
			return i
		}
	}
	return -1
}
