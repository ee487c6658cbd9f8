// Package ice implements the Inferior Cell Engine: a fixpoint loop over
// pattern-based and graph-theoretic rules that proves empty cells dead,
// captured, permanently-inferior, vulnerable, reversible, or dominated,
// shrinking the solver's effective branching factor. Written in a
// small-struct, explicit-loop idiom, matching the aging-pass style of
// the move-ordering code this engine feeds.
package ice

import (
	"github.com/hexsolve/hexsolve/internal/cellset"
	"github.com/hexsolve/hexsolve/internal/hexcore"
)

func colorSlot(c hexcore.Color) int {
	if c == hexcore.White {
		return 1
	}
	return 0 // Black, or unused
}

// VulnWitness records one reason an empty cell is vulnerable: a killer
// reply that refutes playing there, valid as long as Carrier stays
// empty. Color is the color to which the cell is vulnerable when known
// (BackupOpponentDead records colorToPlay); graph-sourced witnesses
// leave it hexcore.Empty,
// meaning the redundancy is symmetric in both colors.
type VulnWitness struct {
	Killer  hexcore.Point
	Carrier cellset.Set
	Color   hexcore.Color
}

// InferiorCells is the annotation accumulator for one board state: dead
// cells, per-color captured/permanently-inferior cells (with carriers),
// and the vulnerable/reversible/dominated witness maps.
type InferiorCells struct {
	Dead          cellset.Set
	Captured      [2]cellset.Set            // index via colorSlot: Black, White
	PermInf       [2]cellset.Set            // permanently-inferior cells per color
	PermInfCarrier map[hexcore.Point]cellset.Set
	Vulnerable    map[hexcore.Point][]VulnWitness
	Reversible    map[hexcore.Point]cellset.Set // cell -> reversers
	Dominated     map[hexcore.Point]cellset.Set // cell -> dominators
}

// New returns a cleared InferiorCells sized for g.
func New(g *hexcore.Geometry) *InferiorCells {
	ic := &InferiorCells{}
	ic.reset(g)
	return ic
}

func (ic *InferiorCells) reset(g *hexcore.Geometry) {
	ic.Dead = cellset.New(g)
	ic.Captured[0] = cellset.New(g)
	ic.Captured[1] = cellset.New(g)
	ic.PermInf[0] = cellset.New(g)
	ic.PermInf[1] = cellset.New(g)
	ic.PermInfCarrier = make(map[hexcore.Point]cellset.Set)
	ic.Vulnerable = make(map[hexcore.Point][]VulnWitness)
	ic.Reversible = make(map[hexcore.Point]cellset.Set)
	ic.Dominated = make(map[hexcore.Point]cellset.Set)
}

// Clear resets ic in place; ICE always starts a fresh fillin pass from a
// cleared accumulator.
func (ic *InferiorCells) Clear(g *hexcore.Geometry) {
	ic.reset(g)
}

// Clone returns an independent deep copy, used for history-frame
// snapshots when a move is played and later undone.
func (ic *InferiorCells) Clone(g *hexcore.Geometry) *InferiorCells {
	n := &InferiorCells{
		Dead:           ic.Dead.Clone(),
		PermInfCarrier: make(map[hexcore.Point]cellset.Set, len(ic.PermInfCarrier)),
		Vulnerable:     make(map[hexcore.Point][]VulnWitness, len(ic.Vulnerable)),
		Reversible:     make(map[hexcore.Point]cellset.Set, len(ic.Reversible)),
		Dominated:      make(map[hexcore.Point]cellset.Set, len(ic.Dominated)),
	}
	n.Captured[0] = ic.Captured[0].Clone()
	n.Captured[1] = ic.Captured[1].Clone()
	n.PermInf[0] = ic.PermInf[0].Clone()
	n.PermInf[1] = ic.PermInf[1].Clone()
	for p, c := range ic.PermInfCarrier {
		n.PermInfCarrier[p] = c.Clone()
	}
	for p, ws := range ic.Vulnerable {
		cp := make([]VulnWitness, len(ws))
		copy(cp, ws)
		n.Vulnerable[p] = cp
	}
	for p, c := range ic.Reversible {
		n.Reversible[p] = c.Clone()
	}
	for p, c := range ic.Dominated {
		n.Dominated[p] = c.Clone()
	}
	return n
}

// IsDead reports whether p has been proved dead.
func (ic *InferiorCells) IsDead(p hexcore.Point) bool { return ic.Dead.Has(p) }

// IsCaptured reports whether p is captured for color c.
func (ic *InferiorCells) IsCaptured(p hexcore.Point, c hexcore.Color) bool {
	return ic.Captured[colorSlot(c)].Has(p)
}

// AllFilled returns the union of every fillin set (dead ∪ captured(Black)
// ∪ captured(White)) — the cells ICE has placed stones/dead-markers on.
func (ic *InferiorCells) AllFilled(g *hexcore.Geometry) cellset.Set {
	out := cellset.New(g)
	out.Or(ic.Dead)
	out.Or(ic.Captured[0])
	out.Or(ic.Captured[1])
	return out
}

// Merge folds prior (e.g. a popped history frame's InferiorCells) into
// ic without overwriting anything ic already knows, so undoing a move
// doesn't throw away inferior-cell facts that still hold at the
// restored position.
func (ic *InferiorCells) Merge(prior *InferiorCells) {
	ic.Dead.Or(prior.Dead)
	ic.Captured[0].Or(prior.Captured[0])
	ic.Captured[1].Or(prior.Captured[1])
	ic.PermInf[0].Or(prior.PermInf[0])
	ic.PermInf[1].Or(prior.PermInf[1])
	for p, c := range prior.PermInfCarrier {
		if _, ok := ic.PermInfCarrier[p]; !ok {
			ic.PermInfCarrier[p] = c
		}
	}
	for p, ws := range prior.Vulnerable {
		if _, ok := ic.Vulnerable[p]; !ok {
			ic.Vulnerable[p] = ws
		}
	}
	for p, c := range prior.Reversible {
		if _, ok := ic.Reversible[p]; !ok {
			ic.Reversible[p] = c
		}
	}
	for p, c := range prior.Dominated {
		if _, ok := ic.Dominated[p]; !ok {
			ic.Dominated[p] = c
		}
	}
}
