// Package model defines the data structures shared across the Mindflow application.
package model

// RootID is the id assigned to the root node of every mind map.
// Ids are assigned at creation, start at RootID, and are never reused.
const RootID = 1

// Node represents a single node in a mind map. Positions are not stored
// here; they are derived by the layout engine from tree shape alone.
type Node struct {
	ID       int    `json:"id"`
	ParentID int    `json:"parent_id"` // 0 for the root
	Text     string `json:"text"`
	Children []int  `json:"children,omitempty"` // creation order, significant
	Depth    int    `json:"depth"`              // root is 0
}

// IsRoot reports whether the node is the root of its mind map.
func (n *Node) IsRoot() bool {
	return n.ID == RootID
}

// NodeInfo contains basic information about a node, used when creating
// or updating nodes without exposing the store's internal record.
type NodeInfo struct {
	ID       int
	ParentID int
	Text     string
}

// Point is a 2D canvas coordinate computed by the layout engine.
type Point struct {
	X float64
	Y float64
}

// SceneNode is one entry of a renderable scene: everything a frontend
// needs to draw a node as a box with a connector line to its parent.
type SceneNode struct {
	ID       int
	ParentID int // 0 for the root
	Text     string
	Pos      Point
	Active   bool
}
