package vc

import (
	"github.com/hexsolve/hexsolve/internal/cellset"
	"github.com/hexsolve/hexsolve/internal/groups"
	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/stoneboard"
)

type pairKey struct {
	a, b hexcore.Point
}

func makeKey(a, b hexcore.Point) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// snapshot is a restore point for Revert: a full copy of the connection
// tables before one AddFilled call. Correctness over asymptotics — this
// reference builder rebuilds from scratch on every AddFilled rather
// than patching connections incrementally, so Revert only needs to pop
// a prior table rather than replay an inverse update.
type snapshot struct {
	conns map[pairKey][]Connection
}

// DirectBuilder is the minimal reference Builder: semi-connections are
// pairs of same-color group captains sharing a common liberty; full
// connections are pairs sharing two or more (the textbook bridge OR-rule:
// with k>=2 common liberties, an opponent reply into one still leaves
// k-1>=1 to complete the link).
type DirectBuilder struct {
	g  *hexcore.Geometry
	b  *stoneboard.StoneBoard
	gr *groups.Groups

	conns   map[pairKey][]Connection
	history []snapshot
}

// NewDirectBuilder returns a Builder bound to b and gr. Call Build
// before use.
func NewDirectBuilder(g *hexcore.Geometry, b *stoneboard.StoneBoard, gr *groups.Groups) *DirectBuilder {
	return &DirectBuilder{g: g, b: b, gr: gr}
}

func (d *DirectBuilder) Build() {
	d.history = nil
	d.conns = d.computeAll()
}

func (d *DirectBuilder) computeAll() map[pairKey][]Connection {
	out := make(map[pairKey][]Connection)
	for _, color := range []hexcore.Color{hexcore.Black, hexcore.White} {
		captains := d.gr.Captains(color)
		for i := 0; i < len(captains); i++ {
			for j := i + 1; j < len(captains); j++ {
				a, bb := captains[i], captains[j]
				common := d.gr.Liberties(d.b, a)
				common.And(d.gr.Liberties(d.b, bb))
				n := common.PopCount()
				if n == 0 {
					continue
				}
				key := makeKey(a, bb)
				if n == 1 {
					out[key] = append(out[key], Connection{A: a, B: bb, Color: color, Carrier: common, Full: false})
				} else {
					out[key] = append(out[key], Connection{A: a, B: bb, Color: color, Carrier: common, Full: true})
				}
			}
		}
	}
	return out
}

func (d *DirectBuilder) AddFilled(p hexcore.Point, c hexcore.Color) {
	d.history = append(d.history, snapshot{conns: d.conns})
	d.gr.Recompute(d.b)
	d.conns = d.computeAll()
}

func (d *DirectBuilder) Revert() {
	n := len(d.history)
	if n == 0 {
		return
	}
	d.conns = d.history[n-1].conns
	d.history = d.history[:n-1]
}

func (d *DirectBuilder) WinningSemis(color hexcore.Color) []Connection {
	var edgeA, edgeB hexcore.Point
	if color == hexcore.Black {
		edgeA, edgeB = d.g.North(), d.g.South()
	} else {
		edgeA, edgeB = d.g.East(), d.g.West()
	}
	key := makeKey(d.gr.Captain(edgeA), d.gr.Captain(edgeB))
	var out []Connection
	for _, conn := range d.conns[key] {
		if conn.Color == color {
			out = append(out, conn)
		}
	}
	return out
}

// DecompositionBoundary brute-forces a single-cell cut: for each empty
// cell p, check (via two-color-blind reachability) whether removing p
// disconnects color's two edges entirely. Board sizes here are small
// enough (<=11x11+4 points) that the O(n^2) scan is cheap compared to
// one DFS search node.
func (d *DirectBuilder) DecompositionBoundary(color hexcore.Color) (hexcore.Point, bool) {
	// reachableExcluding derives the other edge from edgeA itself.
	var edgeA hexcore.Point
	if color == hexcore.Black {
		edgeA = d.g.North()
	} else {
		edgeA = d.g.East()
	}

	for _, p := range d.g.AllCells() {
		if !d.b.IsEmpty(p) {
			continue
		}
		if d.reachableExcluding(edgeA, color, p) {
			continue // still connected through some other path
		}
		// edgeA can't reach edgeB avoiding p: p is a cut point, provided
		// it's also actually on some path (edgeA does reach edgeB when p
		// is included — true whenever the two groups aren't already
		// directly connected, which the caller checks separately).
		return p, true
	}
	return hexcore.NoPoint, false
}

// reachableExcluding reports whether edgeA's group can still reach an
// edge of color through empty-or-own-color cells with excluded removed
// from the graph, and in fact reaches the OTHER edge of color.
func (d *DirectBuilder) reachableExcluding(start hexcore.Point, color hexcore.Color, excluded hexcore.Point) bool {
	var other hexcore.Point
	if color == hexcore.Black {
		if start == d.g.North() {
			other = d.g.South()
		} else {
			other = d.g.North()
		}
	} else {
		if start == d.g.East() {
			other = d.g.West()
		} else {
			other = d.g.East()
		}
	}

	visited := cellset.New(d.g)
	queue := []hexcore.Point{start}
	visited.Add(start)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == other {
			return true
		}
		for _, nb := range d.g.Neighbors(p) {
			if nb == excluded || visited.Has(nb) {
				continue
			}
			if d.g.IsEdge(nb) {
				if d.g.EdgeColor(nb) == color {
					visited.Add(nb)
					queue = append(queue, nb)
				}
				continue
			}
			col := d.b.ColorAt(nb)
			if col == hexcore.Empty || col == color {
				visited.Add(nb)
				queue = append(queue, nb)
			}
		}
	}
	return false
}
