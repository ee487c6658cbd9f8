package ice

import (
	"testing"

	"github.com/hexsolve/hexsolve/internal/groups"
	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/pattern"
	"github.com/hexsolve/hexsolve/internal/stoneboard"
)

func setup(g *hexcore.Geometry) (*stoneboard.StoneBoard, *groups.Groups, *pattern.State) {
	b := stoneboard.New(g)
	gr := groups.New(g)
	gr.Recompute(b)
	ps := pattern.NewState(pattern.NewTable(), g)
	ps.Refresh(b)
	return b, gr, ps
}

func TestComputeFillinDeadSurroundedCell(t *testing.T) {
	g := hexcore.NewGeometry(5, 5)
	b, gr, ps := setup(g)

	center := g.PointAt(2, 2)
	for _, nb := range g.Neighbors(center) {
		if g.IsEdge(nb) {
			continue
		}
		b.Play(nb, hexcore.Black)
	}
	gr.Recompute(b)

	eng := NewEngine(pattern.NewTable(), DefaultConfig())
	ic := New(g)
	eng.ComputeFillin(b, gr, ps, ic)

	if !ic.IsDead(center) {
		t.Fatalf("expected center cell %v to be dead, inferior cells: %+v", center, ic)
	}
	if b.ColorAt(center) != hexcore.Dead {
		t.Fatalf("expected board to carry the dead fillin at %v, got %v", center, b.ColorAt(center))
	}
}

func TestComputeFillinCapturedPair(t *testing.T) {
	g := hexcore.NewGeometry(5, 5)
	b, gr, ps := setup(g)

	target := g.PointAt(2, 2)
	nbrs := g.Neighbors(target)
	b.Play(nbrs[0], hexcore.Black)
	b.Play(nbrs[1], hexcore.Black)
	gr.Recompute(b)

	eng := NewEngine(pattern.NewTable(), DefaultConfig())
	ic := New(g)
	eng.ComputeFillin(b, gr, ps, ic)

	if !ic.IsCaptured(target, hexcore.Black) {
		t.Fatalf("expected %v to be captured for Black, inferior cells: %+v", target, ic)
	}
}

func TestComputeFillinUnreachablePocketIsDead(t *testing.T) {
	g := hexcore.NewGeometry(7, 7)
	b, gr, ps := setup(g)

	pocket := g.PointAt(3, 3)
	for _, nb := range g.Neighbors(pocket) {
		if !g.IsEdge(nb) {
			b.Play(nb, hexcore.White)
		}
	}
	gr.Recompute(b)

	eng := NewEngine(pattern.NewTable(), DefaultConfig())
	ic := New(g)
	eng.ComputeFillin(b, gr, ps, ic)

	if !ic.IsDead(pocket) {
		t.Fatalf("expected fully-white-surrounded pocket %v to be dead", pocket)
	}
}

func TestComputeFillinClearsPriorAnnotations(t *testing.T) {
	g := hexcore.NewGeometry(5, 5)
	b, gr, ps := setup(g)
	eng := NewEngine(pattern.NewTable(), DefaultConfig())
	ic := New(g)

	ic.Dead.Add(g.PointAt(0, 0))
	eng.ComputeFillin(b, gr, ps, ic)

	if ic.IsDead(g.PointAt(0, 0)) {
		t.Fatalf("expected ComputeFillin to clear stale annotations on an empty board")
	}
}

func TestMergeKeepsExistingOverPrior(t *testing.T) {
	g := hexcore.NewGeometry(5, 5)
	ic := New(g)
	prior := New(g)

	p := g.PointAt(1, 1)
	ic.Dead.Add(p)
	prior.Dead.Add(g.PointAt(2, 2))

	ic.Merge(prior)

	if !ic.IsDead(p) || !ic.IsDead(g.PointAt(2, 2)) {
		t.Fatalf("expected Merge to union dead sets, got %+v", ic.Dead)
	}
}
