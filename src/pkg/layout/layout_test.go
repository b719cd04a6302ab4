package layout

import (
	"math"
	"testing"

	"mindflow/src/pkg/model"
	"mindflow/src/pkg/tree"
)

func testEngine() *Engine {
	return NewEngine(model.LayoutConfig{
		LeafWidth:    50,
		SiblingGap:   10,
		LevelSpacing: 150,
	})
}

func TestRootOnlyAtOrigin(t *testing.T) {
	s := tree.NewStore("root")
	positions := testEngine().Layout(s)

	if len(positions) != 1 {
		t.Fatalf("expected 1 position, got %d", len(positions))
	}
	if positions[s.Root()] != (model.Point{}) {
		t.Errorf("childless root must sit at the origin, got %v", positions[s.Root()])
	}
}

func TestSingleChild(t *testing.T) {
	s := tree.NewStore("root")
	child, _ := s.CreateChild(s.Root(), "child")

	positions := testEngine().Layout(s)

	want := model.Point{X: 150, Y: 0}
	if positions[child] != want {
		t.Errorf("child at %v, want %v", positions[child], want)
	}
}

func TestSiblingsCenteredOnParent(t *testing.T) {
	s := tree.NewStore("root")
	a, _ := s.CreateChild(s.Root(), "A")
	b, _ := s.CreateChild(s.Root(), "B")

	positions := testEngine().Layout(s)

	// Two leaves: total extent 50+10+50 = 110, centered on the root.
	if got, want := positions[a], (model.Point{X: 150, Y: -30}); got != want {
		t.Errorf("A at %v, want %v", got, want)
	}
	if got, want := positions[b], (model.Point{X: 150, Y: 30}); got != want {
		t.Errorf("B at %v, want %v", got, want)
	}
}

func TestParentCenteredOnChildren(t *testing.T) {
	s := tree.NewStore("root")
	branch, _ := s.CreateChild(s.Root(), "branch")
	c1, _ := s.CreateChild(branch, "c1")
	c2, _ := s.CreateChild(branch, "c2")
	c3, _ := s.CreateChild(branch, "c3")

	positions := testEngine().Layout(s)

	mid := (positions[c1].Y + positions[c3].Y) / 2
	if math.Abs(positions[branch].Y-mid) > 1e-9 {
		t.Errorf("branch at y=%v, want centroid %v", positions[branch].Y, mid)
	}
	if positions[c2].Y != mid {
		t.Errorf("middle child at y=%v, want %v", positions[c2].Y, mid)
	}
}

func TestDepthAxis(t *testing.T) {
	s := tree.NewStore("root")
	l1, _ := s.CreateChild(s.Root(), "l1")
	l2, _ := s.CreateChild(l1, "l2")
	l3, _ := s.CreateChild(l2, "l3")

	positions := testEngine().Layout(s)

	for depth, id := range []int{s.Root(), l1, l2, l3} {
		want := float64(depth) * 150
		if positions[id].X != want {
			t.Errorf("depth %d node at x=%v, want %v", depth, positions[id].X, want)
		}
	}
}

// buildShape grows the same tree shape into a store: shape[i] is the
// index of node i's parent in the creation order, with index 0 = root.
func buildShape(t *testing.T, shape []int) (*tree.Store, []int) {
	t.Helper()
	s := tree.NewStore("root")
	ids := []int{s.Root()}
	for _, parentIdx := range shape {
		id, err := s.CreateChild(ids[parentIdx], "n")
		if err != nil {
			t.Fatalf("CreateChild failed: %v", err)
		}
		ids = append(ids, id)
	}
	return s, ids
}

func TestLayoutIsPureFunctionOfShape(t *testing.T) {
	shape := []int{0, 0, 1, 1, 2, 0, 5, 5, 5, 3}

	s1, ids1 := buildShape(t, shape)
	s2, ids2 := buildShape(t, shape)

	// Differing text must not matter.
	for _, id := range ids2 {
		if err := s2.SetText(id, "completely different"); err != nil {
			t.Fatalf("SetText failed: %v", err)
		}
	}

	e := testEngine()
	p1 := e.Layout(s1)
	p2 := e.Layout(s2)

	for i := range ids1 {
		if p1[ids1[i]] != p2[ids2[i]] {
			t.Errorf("node %d: %v vs %v for identical shapes", i, p1[ids1[i]], p2[ids2[i]])
		}
	}
}

func TestLayoutDeterministic(t *testing.T) {
	s, _ := buildShape(t, []int{0, 0, 1, 2, 2, 0, 6, 6})
	e := testEngine()

	p1 := e.Layout(s)
	p2 := e.Layout(s)

	if len(p1) != len(p2) {
		t.Fatalf("result sizes differ: %d vs %d", len(p1), len(p2))
	}
	for id, pos := range p1 {
		if p2[id] != pos {
			t.Errorf("node %d: %v vs %v across recomputes", id, pos, p2[id])
		}
	}
}

func TestNoOverlapAtSameDepth(t *testing.T) {
	// A deliberately lopsided tree: one bushy branch next to leaves.
	s, _ := buildShape(t, []int{0, 0, 0, 1, 1, 1, 1, 4, 4, 4, 4, 4, 2})
	e := testEngine()
	positions := e.Layout(s)

	byX := make(map[float64][]float64)
	s.Walk(func(n *model.Node) {
		p := positions[n.ID]
		byX[p.X] = append(byX[p.X], p.Y)
	})

	for x, ys := range byX {
		for i := 0; i < len(ys); i++ {
			for j := i + 1; j < len(ys); j++ {
				if math.Abs(ys[i]-ys[j]) < e.LeafWidth {
					t.Errorf("nodes at x=%v overlap: y=%v and y=%v", x, ys[i], ys[j])
				}
			}
		}
	}
}

func TestBilateralSides(t *testing.T) {
	e := testEngine()
	e.Bilateral = true

	s := tree.NewStore("root")
	first, _ := s.CreateChild(s.Root(), "first")
	second, _ := s.CreateChild(s.Root(), "second")
	third, _ := s.CreateChild(s.Root(), "third")
	grandchild, _ := s.CreateChild(second, "grandchild")

	positions := e.Layout(s)

	if positions[first].X <= 0 {
		t.Errorf("first root child must fan right, got x=%v", positions[first].X)
	}
	if positions[second].X >= 0 {
		t.Errorf("second root child must fan left, got x=%v", positions[second].X)
	}
	if positions[third].X <= 0 {
		t.Errorf("third root child must fan right, got x=%v", positions[third].X)
	}
	if positions[grandchild].X >= positions[second].X {
		t.Errorf("left-side subtree must grow leftward: parent x=%v, child x=%v",
			positions[second].X, positions[grandchild].X)
	}
}

func TestSubtreeShiftsWhenSiblingAdded(t *testing.T) {
	s := tree.NewStore("root")
	a, _ := s.CreateChild(s.Root(), "A")
	aChild, _ := s.CreateChild(a, "A1")

	e := testEngine()
	before := e.Layout(s)

	if _, err := s.CreateChild(s.Root(), "B"); err != nil {
		t.Fatalf("CreateChild failed: %v", err)
	}
	after := e.Layout(s)

	shift := after[a].Y - before[a].Y
	if shift == 0 {
		t.Fatalf("adding a sibling must translate the existing subtree")
	}
	if got := after[aChild].Y - before[aChild].Y; got != shift {
		t.Errorf("subtree must move rigidly: parent shifted %v, child %v", shift, got)
	}
}
