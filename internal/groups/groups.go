// Package groups implements the union-find over stones and edge
// sentinels: a partition of occupied cells (dead cells excluded — a
// dead marker has no color for adjacency purposes) into connected
// same-color components, each with a color, size, member set, and
// liberty set (empty neighbors).
//
// Grounded on the cached-derived-bitboard style of board/position.go
// (recomputes Occupied/AllOccupied from Pieces); no prior union-find
// exists in that codebase since chess doesn't need one, so the
// disjoint-set algorithm itself is standard path-compression/union-by-
// rank, written in the same small-struct, explicit-loop idiom.
package groups

import (
	"github.com/hexsolve/hexsolve/internal/cellset"
	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/stoneboard"
)

// Groups is a borrowed view over a StoneBoard: it must be recomputed
// whenever the board's stones change. It does not own the board.
type Groups struct {
	g *hexcore.Geometry

	parent []hexcore.Point
	rank   []int
	active []bool // true if the point participates (Black/White/edge, not Dead/Empty)
	color  []hexcore.Color
}

// New returns an empty Groups for the given geometry. Call Recompute
// before use.
func New(g *hexcore.Geometry) *Groups {
	n := g.NumPoints()
	return &Groups{
		g:      g,
		parent: make([]hexcore.Point, n),
		rank:   make([]int, n),
		active: make([]bool, n),
		color:  make([]hexcore.Color, n),
	}
}

func (gr *Groups) find(p hexcore.Point) hexcore.Point {
	root := p
	for gr.parent[root] != root {
		root = gr.parent[root]
	}
	for p != root {
		next := gr.parent[p]
		gr.parent[p] = root
		p = next
	}
	return root
}

func (gr *Groups) union(a, b hexcore.Point) {
	ra, rb := gr.find(a), gr.find(b)
	if ra == rb {
		return
	}
	if gr.rank[ra] < gr.rank[rb] {
		ra, rb = rb, ra
	}
	gr.parent[rb] = ra
	if gr.rank[ra] == gr.rank[rb] {
		gr.rank[ra]++
	}
}

// Recompute rebuilds the partition from scratch against b's current
// stones. Called after every fillin or move.
func (gr *Groups) Recompute(b *stoneboard.StoneBoard) {
	n := gr.g.NumPoints()
	for p := 0; p < n; p++ {
		pt := hexcore.Point(p)
		gr.parent[p] = pt
		gr.rank[p] = 0
		c := b.ColorAt(pt)
		if gr.g.IsEdge(pt) {
			c = gr.g.EdgeColor(pt)
		}
		if c == hexcore.Black || c == hexcore.White {
			gr.active[p] = true
			gr.color[p] = c
		} else {
			gr.active[p] = false
			gr.color[p] = hexcore.Empty
		}
	}

	for p := 0; p < n; p++ {
		pt := hexcore.Point(p)
		if !gr.active[p] {
			continue
		}
		for _, nb := range gr.g.Neighbors(pt) {
			if gr.active[nb] && gr.color[nb] == gr.color[p] {
				gr.union(pt, nb)
			}
		}
	}
}

// Captain returns the canonical representative of p's group. If p is not
// an active (Black/White/edge) point, it is its own captain.
func (gr *Groups) Captain(p hexcore.Point) hexcore.Point {
	return gr.find(p)
}

// Color returns the color of p's group, or Empty if p holds no stone.
func (gr *Groups) Color(p hexcore.Point) hexcore.Color {
	if !gr.active[p] {
		return hexcore.Empty
	}
	return gr.color[gr.find(p)]
}

// SameGroup reports whether a and b belong to the same group.
func (gr *Groups) SameGroup(a, b hexcore.Point) bool {
	return gr.active[a] && gr.active[b] && gr.find(a) == gr.find(b)
}

// Members returns the set of points in the group captained by the given
// representative (pass any member; it will be normalized to its captain).
func (gr *Groups) Members(p hexcore.Point) cellset.Set {
	root := gr.find(p)
	out := cellset.New(gr.g)
	n := gr.g.NumPoints()
	for i := 0; i < n; i++ {
		pt := hexcore.Point(i)
		if gr.active[i] && gr.find(pt) == root {
			out.Add(pt)
		}
	}
	return out
}

// Liberties returns the empty neighbor cells of p's group (its empty
// neighborhood, used as the carrier basis for patterns and VCs).
func (gr *Groups) Liberties(b *stoneboard.StoneBoard, p hexcore.Point) cellset.Set {
	root := gr.find(p)
	out := cellset.New(gr.g)
	n := gr.g.NumPoints()
	for i := 0; i < n; i++ {
		pt := hexcore.Point(i)
		if !gr.active[i] || gr.find(pt) != root {
			continue
		}
		for _, nb := range gr.g.Neighbors(pt) {
			if b.IsEmpty(nb) {
				out.Add(nb)
			}
		}
	}
	return out
}

// Size returns the number of points in p's group.
func (gr *Groups) Size(p hexcore.Point) int {
	return gr.Members(p).PopCount()
}

// Captains returns the distinct group captains of the given color
// (Black or White), including edge-rooted groups.
func (gr *Groups) Captains(color hexcore.Color) []hexcore.Point {
	seen := make(map[hexcore.Point]bool)
	var out []hexcore.Point
	n := gr.g.NumPoints()
	for i := 0; i < n; i++ {
		if !gr.active[i] || gr.color[i] != color {
			continue
		}
		root := gr.find(hexcore.Point(i))
		if !seen[root] {
			seen[root] = true
			out = append(out, root)
		}
	}
	return out
}

// Connected reports whether a and b (normally two edges of the same
// color) belong to the same group — a full connecting chain.
func (gr *Groups) Connected(a, b hexcore.Point) bool {
	return gr.active[a] && gr.active[b] && gr.find(a) == gr.find(b)
}
