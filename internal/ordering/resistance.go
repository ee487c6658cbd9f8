package ordering

import (
	"github.com/hexsolve/hexsolve/internal/hexboard"
	"github.com/hexsolve/hexsolve/internal/hexcore"
)

// DirectResistance is the reference Resistance implementation: a 0-1
// BFS shortest-path proxy rather than a true electrical-network solve.
// It measures, for each of color's two edges, the cheapest path to p
// through cells color already owns or could still claim (cost 0 to
// cross an owned stone, cost 1 to cross an empty cell, blocked by the
// opponent's stones and ICE-dead cells), and scores p by the negated
// sum of the two distances — closer to both edges ranks higher. Like
// internal/vc.DirectBuilder, this is a minimal stand-in for a fuller
// external evaluator, not a certified resistance computation.
type DirectResistance struct{}

func (DirectResistance) Score(hb *hexboard.HexBoard, color hexcore.Color, p hexcore.Point) float64 {
	var a, b hexcore.Point
	switch color {
	case hexcore.Black:
		a, b = hb.Geometry.North(), hb.Geometry.South()
	case hexcore.White:
		a, b = hb.Geometry.East(), hb.Geometry.West()
	default:
		return 0
	}
	da := zeroOneBFS(hb, color, a, p)
	db := zeroOneBFS(hb, color, b, p)
	return -float64(da + db)
}

// zeroOneBFS returns the cheapest path cost from src to dst through
// cells playable or owned by color, or a large sentinel if dst is
// unreachable. Implemented with two work queues (0-cost and 1-cost)
// rather than a heap, since every edge weight is 0 or 1.
func zeroOneBFS(hb *hexboard.HexBoard, color hexcore.Color, src, dst hexcore.Point) int {
	const unreachable = 1 << 20
	g := hb.Geometry
	n := g.NumPoints()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = unreachable
	}
	dist[src] = 0
	cur := []hexcore.Point{src}
	next := []hexcore.Point{}
	cost := 0
	for len(cur) > 0 || len(next) > 0 {
		if len(cur) == 0 {
			cur, next = next, cur[:0]
			cost++
			continue
		}
		p := cur[len(cur)-1]
		cur = cur[:len(cur)-1]
		if p == dst {
			return dist[p]
		}
		for _, q := range g.Neighbors(p) {
			if hb.Inferior.IsDead(q) {
				continue
			}
			c := hb.Board.ColorAt(q)
			if c == color.Other() {
				continue
			}
			step := 1
			if c == color {
				step = 0
			}
			nd := dist[p] + step
			if nd < dist[q] {
				dist[q] = nd
				if step == 0 {
					cur = append(cur, q)
				} else {
					next = append(next, q)
				}
			}
		}
	}
	return dist[dst]
}
