package vc

import (
	"testing"

	"github.com/hexsolve/hexsolve/internal/groups"
	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/stoneboard"
)

func setup(g *hexcore.Geometry) (*stoneboard.StoneBoard, *groups.Groups) {
	b := stoneboard.New(g)
	gr := groups.New(g)
	gr.Recompute(b)
	return b, gr
}

func TestDirectBuilderBridgeIsFullConnection(t *testing.T) {
	g := hexcore.NewGeometry(5, 5)
	b, gr := setup(g)

	a := g.PointAt(2, 1)
	c := g.PointAt(1, 3)
	b.Play(a, hexcore.Black)
	b.Play(c, hexcore.Black)
	gr.Recompute(b)

	common := gr.Liberties(b, gr.Captain(a))
	common.And(gr.Liberties(b, gr.Captain(c)))
	if common.PopCount() < 2 {
		t.Skipf("chosen cells don't share a bridge on this geometry (common=%d)", common.PopCount())
	}

	builder := NewDirectBuilder(g, b, gr)
	builder.Build()

	key := makeKey(gr.Captain(a), gr.Captain(c))
	conns := builder.conns[key]
	if len(conns) == 0 {
		t.Fatalf("expected a connection between %v and %v", a, c)
	}
	if !conns[0].Full {
		t.Fatalf("expected bridge connection to be a full connection, got semi with carrier %v", conns[0].Carrier.Slice())
	}
}

func TestDirectBuilderWinningSemis(t *testing.T) {
	g := hexcore.NewGeometry(3, 3)
	b, gr := setup(g)

	// Fill every interior cell but the center: Black holds (0,1) and
	// (2,1), joining the North and South edge groups, and White holds the
	// rest. The sole remaining empty cell is the one common liberty of
	// Black's two edge groups, which wins immediately for Black.
	last := g.PointAt(1, 1)
	for _, p := range g.AllCells() {
		switch p {
		case last:
		case g.PointAt(0, 1), g.PointAt(2, 1):
			b.Play(p, hexcore.Black)
		default:
			b.Play(p, hexcore.White)
		}
	}
	gr.Recompute(b)

	builder := NewDirectBuilder(g, b, gr)
	builder.Build()

	semis := builder.WinningSemis(hexcore.Black)
	if len(semis) == 0 {
		t.Fatalf("expected a winning semi-connection for Black")
	}
	found := false
	for _, s := range semis {
		if s.Carrier.Has(last) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the winning semi's carrier to be the sole empty cell %v", last)
	}
}

func TestDirectBuilderAddFilledAndRevert(t *testing.T) {
	g := hexcore.NewGeometry(5, 5)
	b, gr := setup(g)
	builder := NewDirectBuilder(g, b, gr)
	builder.Build()
	before := len(builder.conns)

	p := g.PointAt(2, 2)
	b.Play(p, hexcore.Black)
	builder.AddFilled(p, hexcore.Black)

	builder.Revert()
	if len(builder.conns) != before {
		t.Fatalf("expected Revert to restore the pre-fill connection table, got %d want %d", len(builder.conns), before)
	}
}
