package ice

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hexsolve/hexsolve/internal/cellset"
	"github.com/hexsolve/hexsolve/internal/groups"
	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/pattern"
	"github.com/hexsolve/hexsolve/internal/stoneboard"
)

// BackupOpponentDead implements spec.md §4.1's optional post-loop step:
// play the opponent of colorToPlay on every remaining empty cell, rerun
// the cheap dead/captured loop on that hypothetical, and record any
// cell that becomes dead as a result as Vulnerable at the pre-move
// position — colorToPlay playing there is refuted by the opponent's
// reply at the cell actually played. No-op unless Config.BackupOpponentDead
// is set.
//
// Per SPEC_FULL.md §9 open question 1, the carrier recorded for each
// witness is recomputed from the post-fillin dead set of that specific
// hypothetical every time, never cached across hypotheticals, so a
// permanently-inferior interaction in one probe cannot leak into
// another's carrier.
func (e *Engine) BackupOpponentDead(b *stoneboard.StoneBoard, gr *groups.Groups, ps *pattern.State, ic *InferiorCells, colorToPlay hexcore.Color) {
	if !e.Config.BackupOpponentDead || !colorToPlay.IsPlayer() {
		return
	}
	g := b.Geometry
	opp := colorToPlay.Other()
	before := b.Empty()
	candidates := before.Slice()

	type probe struct {
		killer hexcore.Point
		dead   []hexcore.Point
	}
	results := make([]probe, len(candidates))

	grp, _ := errgroup.WithContext(context.Background())
	for i, p := range candidates {
		i, p := i, p
		grp.Go(func() error {
			results[i] = probe{killer: p, dead: e.probeOpponentPlay(b, g, p, opp)}
			return nil
		})
	}
	_ = grp.Wait()

	for _, r := range results {
		for _, q := range r.dead {
			if q == r.killer || !before.Has(q) {
				continue
			}
			carrier := carrierExcluding(g, r.dead, q)
			ic.Vulnerable[q] = append(ic.Vulnerable[q], VulnWitness{
				Killer:  r.killer,
				Carrier: carrier,
				Color:   colorToPlay,
			})
		}
	}
}

// probeOpponentPlay plays opp at p on a scratch copy of b and returns
// the cells the cheap dead/captured loop fills in as dead there.
func (e *Engine) probeOpponentPlay(b *stoneboard.StoneBoard, g *hexcore.Geometry, p hexcore.Point, opp hexcore.Color) []hexcore.Point {
	scratch := b.Copy()
	scratch.Play(p, opp)
	sgr := groups.New(g)
	sgr.Recompute(scratch)
	sps := pattern.NewState(e.Table, g)
	sps.Refresh(scratch)
	sic := New(g)
	e.deadCapturedLoop(scratch, sgr, sps, sic)
	return sic.Dead.Slice()
}

func carrierExcluding(g *hexcore.Geometry, dead []hexcore.Point, exclude hexcore.Point) cellset.Set {
	cs := cellset.New(g)
	for _, d := range dead {
		if d != exclude {
			cs.Add(d)
		}
	}
	return cs
}
