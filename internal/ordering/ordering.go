// Package ordering implements move ordering for the DFS solver:
// spec.md §4.6's center-distance base ranking, optional resistance
// tiebreak, and optional mustplay-probing primary key, plus the TT
// shortcut/drop pruning the mustplay pass performs along the way.
//
// Grounded on internal/engine/ordering.go's MoveOrderer: a ScoreMoves +
// PickMove lazy-selection-sort shape, here retargeted from MVV-LVA/
// killers/history scoring to center-distance/resistance/mustplay-size
// scoring, since Hex has no captures or piece values to rank by.
package ordering

import (
	"sort"

	"github.com/hexsolve/hexsolve/internal/cellset"
	"github.com/hexsolve/hexsolve/internal/hexboard"
	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/tt"
)

// Flags is the move-ordering bitfield of spec.md §4.6.
type Flags uint8

const (
	// FromCenter ranks candidates by squared distance from the board
	// center (closer first). Always applied as the final tiebreak,
	// even when no flags are set — matching spec.md's "(base)" note.
	FromCenter Flags = 1 << iota
	// WithResist uses a resistance evaluation as a higher-priority key
	// than center distance.
	WithResist
	// WithMustplay probes each candidate by playing it and measuring
	// the opponent's resulting mustplay size, using that as the
	// primary key; it also performs the TT shortcut/drop pruning and
	// opponent-winning-semi pre-filter described in spec.md §4.6.
	WithMustplay
)

// DefaultFlags enables every ordering rule.
func DefaultFlags() Flags { return FromCenter | WithResist | WithMustplay }

// Resistance is the external electrical-resistance evaluation spec.md
// §4.6 treats as a collaborator rather than core logic ("use an
// electrical-resistance evaluation (external) as a higher-priority
// key"). Score should return a higher value for cells more valuable to
// color's connection goal.
type Resistance interface {
	Score(hb *hexboard.HexBoard, color hexcore.Color, p hexcore.Point) float64
}

// Result is the outcome of one Order call.
type Result struct {
	// Order is the candidates in ranked search order (best first),
	// with TT-loss drops and opponent-winning-semi misses already
	// removed. Empty (not nil) if every candidate was pruned.
	Order []hexcore.Point
	// HasImmediateWin is set when a candidate's resulting position was
	// already a stored TT loss for the opponent: Order contains just
	// that one move, since nothing else need be tried.
	HasImmediateWin bool
}

// Scorer orders candidate moves for one HexBoard/color according to
// Flags, consulting table for the TT shortcut/drop pass when
// WithMustplay is set.
type Scorer struct {
	Flags      Flags
	Resistance Resistance
	Table      *tt.Table
}

// NewScorer returns a Scorer. table and resistance may be nil if the
// corresponding flags are not set.
func NewScorer(flags Flags, resistance Resistance, table *tt.Table) *Scorer {
	return &Scorer{Flags: flags, Resistance: resistance, Table: table}
}

type scoredMove struct {
	p            hexcore.Point
	mustplaySize int
	resist       float64
	centerDist   int
}

// Order ranks candidates for color to move on hb. hb is left exactly as
// found: every probe plays and undoes the candidate move before moving
// to the next one, per spec.md §4.6's note that this repeated play/undo
// is the single most expensive per-node solver cost.
func (s *Scorer) Order(hb *hexboard.HexBoard, color hexcore.Color, candidates []hexcore.Point) Result {
	opp := color.Other()

	if s.Flags&WithMustplay != 0 {
		candidates = filterByOpponentSemis(hb, opp, candidates)
	}

	scored := make([]scoredMove, 0, len(candidates))
	for _, m := range candidates {
		if err := hb.PlayMove(m, color); err != nil {
			continue
		}

		if s.Flags&WithMustplay != 0 && s.Table != nil {
			if data, ok := s.Table.Probe(hb.Board.Hash()); ok {
				hb.UndoMove()
				if !data.Win {
					// The opponent loses at the resulting position:
					// this move already wins, no need to consider
					// anything else.
					return Result{Order: []hexcore.Point{m}, HasImmediateWin: true}
				}
				// The opponent wins at the resulting position: this
				// move loses for color, drop it (mustplay shrink).
				continue
			}
		}

		sm := scoredMove{p: m, centerDist: hb.Geometry.CenterDistance2(m)}
		if s.Flags&WithMustplay != 0 {
			sm.mustplaySize = Mustplay(hb, opp).PopCount()
		}
		if s.Flags&WithResist != 0 && s.Resistance != nil {
			sm.resist = s.Resistance.Score(hb, opp, m)
		}
		hb.UndoMove()
		scored = append(scored, sm)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if s.Flags&WithMustplay != 0 && a.mustplaySize != b.mustplaySize {
			// A larger resulting opponent mustplay is worse for the
			// opponent (more cells they're forced to consider losing
			// ground over), so it ranks first for color.
			return a.mustplaySize > b.mustplaySize
		}
		if s.Flags&WithResist != 0 && a.resist != b.resist {
			return a.resist > b.resist
		}
		return a.centerDist < b.centerDist
	})

	out := make([]hexcore.Point, len(scored))
	for i, sm := range scored {
		out[i] = sm.p
	}
	return Result{Order: out}
}

// filterByOpponentSemis drops any candidate not covered by every one of
// opp's current winning semi-connections: a move outside even one such
// carrier cannot single-handedly block that threat, per spec.md §4.6
// ("If an opponent winning semi exists that doesn't intersect the
// candidate, drop it"). When opp has two or more winning semis with
// disjoint carriers, this empties the candidate list entirely — the
// correct outcome, since no single move can block independent
// simultaneous threats.
func filterByOpponentSemis(hb *hexboard.HexBoard, opp hexcore.Color, candidates []hexcore.Point) []hexcore.Point {
	semis := hb.VC(opp).WinningSemis(opp)
	if len(semis) == 0 {
		return candidates
	}
	out := make([]hexcore.Point, 0, len(candidates))
	for _, m := range candidates {
		covered := true
		for _, sc := range semis {
			if !sc.Carrier.Has(m) {
				covered = false
				break
			}
		}
		if covered {
			out = append(out, m)
		}
	}
	return out
}

// Mustplay returns the union of carriers of toPlay's opponent's winning
// semi-connections on hb's current position: the set toPlay must play
// within, per the Mustplay glossary entry. This is the bare VC-derived
// set; internal/solver additionally excludes ICE-dead/captured/
// vulnerable cells per spec.md §4.4 step 3.
func Mustplay(hb *hexboard.HexBoard, toPlay hexcore.Color) cellset.Set {
	opp := toPlay.Other()
	union := cellset.New(hb.Geometry)
	for _, sc := range hb.VC(opp).WinningSemis(opp) {
		union.Or(sc.Carrier)
	}
	return union
}
