// Package layout computes a non-overlapping 2D position for every node
// of a mind map. Layout is a pure function of tree shape and depth:
// cross-axis extents are accumulated bottom-up, then positions are
// assigned top-down by allocating each child a contiguous sub-interval
// of its parent's extent in child order. Two trees with the same shape
// always produce the same positions.
package layout

import (
	"mindflow/src/pkg/model"
	"mindflow/src/pkg/tree"
)

// Engine holds the layout constants. Distances are in canvas units.
type Engine struct {
	LeafWidth    float64 // minimum cross-axis extent of any node
	SiblingGap   float64 // gap between adjacent sibling extents
	LevelSpacing float64 // depth-axis distance between levels
	Bilateral    bool    // root children alternate right/left of the root
}

// NewEngine creates an Engine from the layout configuration.
func NewEngine(cfg model.LayoutConfig) *Engine {
	return &Engine{
		LeafWidth:    cfg.LeafWidth,
		SiblingGap:   cfg.SiblingGap,
		LevelSpacing: cfg.LevelSpacing,
		Bilateral:    cfg.Bilateral,
	}
}

// Layout computes positions for every node in the store. The root sits
// at the origin; x grows with depth (mirrored for left-side subtrees in
// bilateral mode) and y is the centroid of each node's extent interval.
func (e *Engine) Layout(s *tree.Store) map[int]model.Point {
	root, err := s.Get(s.Root())
	if err != nil {
		// Unreachable by composition: the store always contains its root.
		panic("layout: store has no root node")
	}

	extents := make(map[int]float64, s.Len())
	e.measure(s, root, extents)

	positions := make(map[int]model.Point, s.Len())
	positions[root.ID] = model.Point{}

	if e.Bilateral {
		right, left := splitSides(root.Children)
		e.placeChildren(s, right, extents, positions, 0, 1)
		e.placeChildren(s, left, extents, positions, 0, -1)
	} else {
		e.placeChildren(s, root.Children, extents, positions, 0, 1)
	}
	return positions
}

// measure computes subtree extents bottom-up: a leaf occupies LeafWidth,
// an inner node the sum of its children's extents plus gaps, never less
// than LeafWidth.
func (e *Engine) measure(s *tree.Store, node *model.Node, extents map[int]float64) float64 {
	if len(node.Children) == 0 {
		extents[node.ID] = e.LeafWidth
		return e.LeafWidth
	}

	var total float64
	for i, childID := range node.Children {
		child, err := s.Get(childID)
		if err != nil {
			continue
		}
		if i > 0 {
			total += e.SiblingGap
		}
		total += e.measure(s, child, extents)
	}
	if total < e.LeafWidth {
		total = e.LeafWidth
	}
	extents[node.ID] = total
	return total
}

// placeChildren assigns each child a contiguous cross-axis interval, in
// order, centered as a block on centerY, then recurses. dir mirrors the
// depth axis for left-side subtrees.
func (e *Engine) placeChildren(s *tree.Store, children []int, extents map[int]float64, positions map[int]model.Point, centerY float64, dir float64) {
	if len(children) == 0 {
		return
	}

	var total float64
	for i, childID := range children {
		if i > 0 {
			total += e.SiblingGap
		}
		total += extents[childID]
	}

	cursor := centerY - total/2
	for _, childID := range children {
		child, err := s.Get(childID)
		if err != nil {
			continue
		}
		childY := cursor + extents[childID]/2
		positions[child.ID] = model.Point{
			X: dir * float64(child.Depth) * e.LevelSpacing,
			Y: childY,
		}
		e.placeChildren(s, child.Children, extents, positions, childY, dir)
		cursor += extents[childID] + e.SiblingGap
	}
}

// splitSides partitions root children for bilateral layout: children at
// even positions fan out to the right of the root, odd positions to the
// left. The split depends only on child order, keeping layout a pure
// function of tree shape.
func splitSides(children []int) (right, left []int) {
	for i, id := range children {
		if i%2 == 0 {
			right = append(right, id)
		} else {
			left = append(left, id)
		}
	}
	return right, left
}
