package pattern

import (
	"github.com/hexsolve/hexsolve/internal/hexcore"
)

// board is the minimal read interface the matcher needs, satisfied by
// *stoneboard.StoneBoard. Kept narrow so tests can fake it cheaply.
type board interface {
	ColorAt(p hexcore.Point) hexcore.Color
	IsEmpty(p hexcore.Point) bool
}

func slotMatches(req Slot, np hexcore.Point, g *hexcore.Geometry, b board, color hexcore.Color) bool {
	isEdge := g.IsEdge(np)
	switch req {
	case Any:
		return true
	case MustEmpty:
		return !isEdge && b.IsEmpty(np)
	case MustOccupied:
		return isEdge || !b.IsEmpty(np)
	case MustOwn:
		if isEdge {
			return g.EdgeColor(np) == color
		}
		return b.ColorAt(np) == color
	case MustOpp:
		if isEdge {
			return g.EdgeColor(np) == color.Other()
		}
		return b.ColorAt(np) == color.Other()
	case MustEdgeOwn:
		return isEdge && g.EdgeColor(np) == color
	default:
		return false
	}
}

// MatchAt matches every rule of the given Kind against cell (which must
// be empty) for the given perspective color, returning every successful
// symmetry unless collectAll is false, in which case it stops at the
// first hit.
func (t *Table) MatchAt(g *hexcore.Geometry, b board, cell hexcore.Point, color hexcore.Color, kind Kind, collectAll bool) []Match {
	if g.IsEdge(cell) || !b.IsEmpty(cell) {
		return nil
	}
	nbrs := g.Neighbors(cell)
	if len(nbrs) != 6 {
		return nil
	}

	var out []Match
	for _, r := range t.rules {
		if r.Kind != kind {
			continue
		}
		for _, perm := range symmetries(r.Ring) {
			ok := true
			for i := 0; i < 6; i++ {
				if !slotMatches(r.Ring[i], nbrs[perm[i]], g, b, color) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			m := Match{Rule: r, Cell: cell, Color: color}
			if kind == KindVulnerable || kind == KindReversible || kind == KindDominated {
				m.Killer = nbrs[perm[r.KillerSlot]]
			}
			for _, s := range r.CarrierSlots {
				m.Carrier = append(m.Carrier, nbrs[perm[s]])
			}
			out = append(out, m)
			if !collectAll {
				return out
			}
		}
	}
	return out
}
