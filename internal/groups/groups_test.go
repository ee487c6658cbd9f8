package groups

import (
	"testing"

	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/stoneboard"
)

func TestRecomputeEdgesStartAsFourSeparateGroups(t *testing.T) {
	g := hexcore.NewGeometry(4, 4)
	b := stoneboard.New(g)
	gr := New(g)
	gr.Recompute(b)

	if gr.Connected(g.North(), g.South()) {
		t.Fatalf("North and South must not be connected on an empty board")
	}
	if gr.Connected(g.East(), g.West()) {
		t.Fatalf("East and West must not be connected on an empty board")
	}
}

func TestAdjacentSameColorStonesJoinOneGroup(t *testing.T) {
	g := hexcore.NewGeometry(4, 4)
	b := stoneboard.New(g)
	a, c := g.PointAt(1, 1), g.PointAt(1, 2)
	b.Play(a, hexcore.Black)
	b.Play(c, hexcore.Black)

	gr := New(g)
	gr.Recompute(b)

	if !gr.SameGroup(a, c) {
		t.Fatalf("two adjacent same-color stones must belong to the same group")
	}
	if gr.Size(a) != 2 {
		t.Fatalf("group size = %d, want 2", gr.Size(a))
	}
}

func TestDifferentColorStonesNeverJoin(t *testing.T) {
	g := hexcore.NewGeometry(4, 4)
	b := stoneboard.New(g)
	a, c := g.PointAt(1, 1), g.PointAt(1, 2)
	b.Play(a, hexcore.Black)
	b.Play(c, hexcore.White)

	gr := New(g)
	gr.Recompute(b)

	if gr.SameGroup(a, c) {
		t.Fatalf("adjacent stones of different colors must not share a group")
	}
}

func TestAChainConnectsBothEdges(t *testing.T) {
	g := hexcore.NewGeometry(3, 1) // a single row: every cell touches both North and South
	b := stoneboard.New(g)
	b.Play(g.PointAt(0, 0), hexcore.Black)

	gr := New(g)
	gr.Recompute(b)

	if !gr.Connected(g.North(), g.South()) {
		t.Fatalf("a single-row board's lone stone should connect North and South")
	}
}

func TestLibertiesAreEmptyNeighborsOfTheGroup(t *testing.T) {
	g := hexcore.NewGeometry(5, 5)
	b := stoneboard.New(g)
	a, c := g.PointAt(2, 2), g.PointAt(2, 3)
	b.Play(a, hexcore.Black)
	b.Play(c, hexcore.Black)

	gr := New(g)
	gr.Recompute(b)

	libs := gr.Liberties(b, a)
	if libs.Has(a) || libs.Has(c) {
		t.Fatalf("liberties must exclude the group's own stones")
	}
	if libs.PopCount() == 0 {
		t.Fatalf("a group on an otherwise-empty board must have liberties")
	}
}

func TestCaptainsListsDistinctGroupsByColor(t *testing.T) {
	g := hexcore.NewGeometry(5, 5)
	b := stoneboard.New(g)
	b.Play(g.PointAt(1, 1), hexcore.Black) // interior, touches no edge directly
	b.Play(g.PointAt(3, 3), hexcore.Black) // a separate, disconnected Black group, also interior

	gr := New(g)
	gr.Recompute(b)

	captains := gr.Captains(hexcore.Black)
	// North and South edges are also Black groups, plus the two isolated stones.
	if len(captains) != 4 {
		t.Fatalf("expected 4 distinct Black captains (North, South, two isolated stones), got %d", len(captains))
	}
}

func TestRecomputeTreatsDeadCellsAsInert(t *testing.T) {
	g := hexcore.NewGeometry(4, 4)
	b := stoneboard.New(g)
	a, c := g.PointAt(1, 1), g.PointAt(1, 2)
	b.Play(a, hexcore.Black)
	b.Play(c, hexcore.Dead)

	gr := New(g)
	gr.Recompute(b)

	if gr.Color(c) != hexcore.Empty {
		t.Fatalf("a Dead cell must not belong to any color's group")
	}
	if gr.SameGroup(a, c) {
		t.Fatalf("a Black stone and an adjacent Dead cell must not share a group")
	}
}
