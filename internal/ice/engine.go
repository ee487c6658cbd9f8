package ice

import (
	"github.com/hexsolve/hexsolve/internal/cellset"
	"github.com/hexsolve/hexsolve/internal/groups"
	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/pattern"
	"github.com/hexsolve/hexsolve/internal/stoneboard"
)

// Engine runs the inferior-cell fillin loop against a board/groups/
// pattern-state triple, per the enabled Config rules.
type Engine struct {
	Config Config
	Table  *pattern.Table
}

// NewEngine returns an Engine using table for pattern matches.
func NewEngine(table *pattern.Table, cfg Config) *Engine {
	return &Engine{Config: cfg, Table: table}
}

// ComputeFillin clears ic and runs the fillin loop against b: it mutates
// b (placing dead markers and captured stones) and recomputes gr after
// every change, accumulating every annotation into ic. ps must already
// be attached to b (ps.Refresh(b) called by the caller or by this
// method after each fillin — ComputeFillin refreshes it itself).
//
// Dead/captured detection, permanently-inferior annotation, graph-based
// vulnerable detection (with presimplicial-pair capture promotion), and
// unreachable-region fillin all repeat as one pass until a full pass
// changes nothing — a fillin from one rule can expose new matches for
// an earlier one. Reversible and Dominated only annotate (they never
// mutate b or gr), so they run once, after the loop settles.
func (e *Engine) ComputeFillin(b *stoneboard.StoneBoard, gr *groups.Groups, ps *pattern.State, ic *InferiorCells) {
	g := b.Geometry
	ic.Clear(g)
	ps.Refresh(b)

	for {
		changed := e.deadCapturedLoop(b, gr, ps, ic)

		if e.Config.FindPermanentlyInferior {
			e.findPermanentlyInferior(b, ps, ic)
		}

		if e.findGraphVulnerable(b, gr, ps, ic) {
			changed = true
		}

		if e.Config.UnreachableFillin {
			if e.unreachableLoop(b, gr, ps, ic) {
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	if e.Config.FindReversible {
		e.findReversible(b, ps, ic)
	}
	if e.Config.FindDominated {
		e.findDominated(b, ps, ic)
	}
}

// deadCapturedLoop alternates pattern-based and graph-based dead
// detection with per-color captured detection until a full pass finds
// nothing new, filling in each hit into b and recomputing gr so later
// matches see it.
func (e *Engine) deadCapturedLoop(b *stoneboard.StoneBoard, gr *groups.Groups, ps *pattern.State, ic *InferiorCells) bool {
	g := b.Geometry
	any := false
	for {
		changed := false

		for _, p := range g.AllCells() {
			if !b.IsEmpty(p) {
				continue
			}
			if len(ps.Matches(p, hexcore.Black, pattern.KindDead, false)) > 0 {
				e.fillDead(b, gr, ps, ic, p)
				changed = true
				continue
			}
			if res := testClique(b, gr, g, p); res.dead {
				e.fillDead(b, gr, ps, ic, p)
				changed = true
			}
		}

		for _, c := range []hexcore.Color{hexcore.Black, hexcore.White} {
			for _, p := range g.AllCells() {
				if !b.IsEmpty(p) {
					continue
				}
				if len(ps.Matches(p, c, pattern.KindCaptured, false)) > 0 {
					e.fillCaptured(b, gr, ps, ic, p, c)
					changed = true
				}
			}
		}

		if !changed {
			return any
		}
		any = true
	}
}

func (e *Engine) fillDead(b *stoneboard.StoneBoard, gr *groups.Groups, ps *pattern.State, ic *InferiorCells, p hexcore.Point) {
	b.Play(p, hexcore.Dead)
	ic.Dead.Add(p)
	gr.Recompute(b)
	ps.Refresh(b)
}

func (e *Engine) fillCaptured(b *stoneboard.StoneBoard, gr *groups.Groups, ps *pattern.State, ic *InferiorCells, p hexcore.Point, c hexcore.Color) {
	b.Play(p, c)
	ic.Captured[colorSlot(c)].Add(p)
	gr.Recompute(b)
	ps.Refresh(b)
}

// unreachableLoop fills in cells unreachable to either color's edges as
// dead. ComputeFillin runs it on every pass of its fixpoint loop, after
// the dead/captured, permanently-inferior and graph-vulnerable steps.
func (e *Engine) unreachableLoop(b *stoneboard.StoneBoard, gr *groups.Groups, ps *pattern.State, ic *InferiorCells) bool {
	g := b.Geometry
	dead := deadByUnreachability(b, g, e.Config.BackupOpponentDead)
	any := false
	for _, p := range dead.Slice() {
		if b.IsEmpty(p) {
			b.Play(p, hexcore.Dead)
			ic.Dead.Add(p)
			any = true
		}
	}
	if any {
		gr.Recompute(b)
		ps.Refresh(b)
	}
	return any
}

// findPermanentlyInferior annotates (without filling in) empty cells
// that are strictly worse than a fixed stone for color, valid as long
// as their carrier stays empty.
func (e *Engine) findPermanentlyInferior(b *stoneboard.StoneBoard, ps *pattern.State, ic *InferiorCells) {
	g := b.Geometry
	ic.PermInf[0].Clear()
	ic.PermInf[1].Clear()
	ic.PermInfCarrier = make(map[hexcore.Point]cellset.Set)
	for _, c := range []hexcore.Color{hexcore.Black, hexcore.White} {
		for _, p := range g.AllCells() {
			if !b.IsEmpty(p) {
				continue
			}
			matches := ps.Matches(p, c, pattern.KindPermanentlyInferior, false)
			if len(matches) == 0 {
				continue
			}
			m := matches[0]
			ic.PermInf[colorSlot(c)].Add(p)
			carrier := cellset.Of(g, m.Carrier...)
			if existing, ok := ic.PermInfCarrier[p]; ok {
				carrier.Or(existing)
			}
			ic.PermInfCarrier[p] = carrier
		}
	}
}

// findGraphVulnerable annotates empty cells whose collapsed ring-1
// neighborhood becomes a clique once one neighbor is removed: playing
// there is refuted by the killer reply, for either color, independent
// of whose turn it is. Run after dead/captured settle so group captains
// reflect every fillin.
//
// Before recording a plain witness it checks for a presimplicial pair:
// if p's killer k is itself vulnerable back to p, the two cells refute
// each other symmetrically, and if every stone group bordering p shares
// one color, p already carries the same connective value as a stone of
// that color — occupying it is redundant with the refutation at k, so
// it is filled in as Captured instead of merely annotated. Returns
// whether it filled in anything.
func (e *Engine) findGraphVulnerable(b *stoneboard.StoneBoard, gr *groups.Groups, ps *pattern.State, ic *InferiorCells) bool {
	g := b.Geometry
	ic.Vulnerable = make(map[hexcore.Point][]VulnWitness)

	results := make(map[hexcore.Point]cliqueResult)
	var order []hexcore.Point
	for _, p := range g.AllCells() {
		if !b.IsEmpty(p) || ic.Dead.Has(p) {
			continue
		}
		res := testClique(b, gr, g, p)
		if res.vulnerable {
			results[p] = res
			order = append(order, p)
		}
	}

	changed := false
	handled := make(map[hexcore.Point]bool)
	for _, p := range order {
		if handled[p] {
			continue
		}
		res := results[p]
		k := res.killer
		if kRes, ok := results[k]; ok && !handled[k] && kRes.killer == p && b.IsEmpty(p) && b.IsEmpty(k) {
			if color, ok := presimplicialAnchorColor(gr, collapseNeighborhood(b, gr, g, p)); ok {
				e.fillCaptured(b, gr, ps, ic, p, color)
				handled[p] = true
				handled[k] = true
				changed = true
				continue
			}
		}
		ic.Vulnerable[p] = append(ic.Vulnerable[p], VulnWitness{
			Killer:  k,
			Carrier: cellset.Of(g, res.carrier...),
		})
	}
	return changed
}

// presimplicialAnchorColor reports the single color every stone-group
// entity in a presimplicial cell's collapsed neighborhood belongs to.
// It returns ok=false when the cell borders no stone group, or borders
// groups of both colors — the pair is then left as a plain vulnerable
// annotation rather than guessing which color benefits.
func presimplicialAnchorColor(gr *groups.Groups, entities []entity) (hexcore.Color, bool) {
	anchor := hexcore.Empty
	found := false
	for _, ent := range entities {
		if ent.empty {
			continue
		}
		c := gr.Color(ent.captain)
		if !found {
			anchor, found = c, true
		} else if c != anchor {
			return hexcore.Empty, false
		}
	}
	return anchor, found
}

// findReversible annotates empty cells where an immediate own-color
// double threat is refuted by a single opponent reply (the reverser)
// that restores the position's value — pattern-sourced, since the
// graph clique test already subsumes the structural case above.
func (e *Engine) findReversible(b *stoneboard.StoneBoard, ps *pattern.State, ic *InferiorCells) {
	g := b.Geometry
	for _, c := range []hexcore.Color{hexcore.Black, hexcore.White} {
		for _, p := range g.AllCells() {
			if !b.IsEmpty(p) {
				continue
			}
			for _, m := range ps.Matches(p, c, pattern.KindReversible, true) {
				existing := ic.Reversible[p]
				if existing.Capacity() == 0 {
					existing = cellset.New(g)
				}
				existing.Add(m.Killer)
				ic.Reversible[p] = existing
			}
		}
	}
}

// findDominated annotates empty cells strictly no better than another
// specific empty cell (the dominator) for either color.
func (e *Engine) findDominated(b *stoneboard.StoneBoard, ps *pattern.State, ic *InferiorCells) {
	g := b.Geometry
	for _, c := range []hexcore.Color{hexcore.Black, hexcore.White} {
		for _, p := range g.AllCells() {
			if !b.IsEmpty(p) {
				continue
			}
			for _, m := range ps.Matches(p, c, pattern.KindDominated, true) {
				existing := ic.Dominated[p]
				if existing.Capacity() == 0 {
					existing = cellset.New(g)
				}
				existing.Add(m.Killer)
				ic.Dominated[p] = existing
			}
		}
	}
}
