package solver

import (
	"github.com/hexsolve/hexsolve/internal/cellset"
	"github.com/hexsolve/hexsolve/internal/groups"
	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/ice"
	"github.com/hexsolve/hexsolve/internal/pattern"
)

// shrinkProof constructs a hypothetical board, starting from the real
// position's actual stones, where every still-empty cell outside proof
// additionally belongs to the loser, reruns ICE on it, and drops any
// proof cell ICE filled in there -- it wasn't load-bearing to the
// claimed outcome. winner is the side the proof currently proves a
// result for (color on a WIN, the side whose chain the opponent's proof
// witnesses on a LOSS -- either way, "loser" below is winner's
// opponent). The caller always invokes this after undoing back to the
// real position, so s.hb.Board already holds both colors' actual stones
// and must not be overwritten with a blank scratch board.
func (s *Solver) shrinkProof(proof cellset.Set, winner hexcore.Color, depth int) cellset.Set {
	g := s.hb.Geometry
	loser := winner.Other()

	scratch := s.hb.Board.Copy()
	for _, p := range g.AllCells() {
		if !proof.Has(p) && scratch.IsEmpty(p) {
			scratch.Play(p, loser)
		}
	}

	gr := groups.New(g)
	gr.Recompute(scratch)
	table := s.hb.PatternTable()
	ps := pattern.NewState(table, g)
	ps.Refresh(scratch)
	ic := ice.New(g)
	eng := ice.NewEngine(table, s.hb.ICEConfig())
	eng.ComputeFillin(scratch, gr, ps, ic)

	filled := ic.AllFilled(g)
	shrunk := proof.Clone()
	removed := 0
	proof.Each(func(p hexcore.Point) {
		if filled.Has(p) {
			shrunk.Remove(p)
			removed++
		}
	})

	if removed == 0 {
		return proof
	}
	s.stats.bumpShrunk(depth, removed)
	return shrunk
}
