package ice

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hexsolve/hexsolve/internal/cellset"
	"github.com/hexsolve/hexsolve/internal/groups"
	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/stoneboard"
)

// entity is one element of an empty cell's collapsed ring-1
// neighborhood: either a lone empty point, or a stone group represented
// by its captain. Two neighbors belonging to the same group collapse to
// one entity, since the group is already internally connected.
type entity struct {
	empty   bool
	point   hexcore.Point // valid when empty
	captain hexcore.Point // valid when !empty
}

// collapseNeighborhood reduces cell's ring-1 neighbors to their distinct
// entities.
func collapseNeighborhood(b *stoneboard.StoneBoard, gr *groups.Groups, g *hexcore.Geometry, cell hexcore.Point) []entity {
	var out []entity
	seen := make(map[hexcore.Point]bool)
	for _, nb := range g.Neighbors(cell) {
		if g.IsEdge(nb) || b.IsEmpty(nb) {
			if !seen[nb] {
				seen[nb] = true
				out = append(out, entity{empty: true, point: nb})
			}
			continue
		}
		cap := gr.Captain(nb)
		if !seen[cap] {
			seen[cap] = true
			out = append(out, entity{empty: false, captain: cap})
		}
	}
	return out
}

// entitiesAdjacent reports whether two collapsed neighborhood entities
// are mutually connected without needing to pass through cell: two
// empties that are themselves hex-adjacent, an empty that is a liberty
// of a group, or two groups whose liberties intersect.
func entitiesAdjacent(b *stoneboard.StoneBoard, gr *groups.Groups, g *hexcore.Geometry, a, c entity) bool {
	switch {
	case a.empty && c.empty:
		for _, nb := range g.Neighbors(a.point) {
			if nb == c.point {
				return true
			}
		}
		return false
	case a.empty && !c.empty:
		return gr.Liberties(b, c.captain).Has(a.point)
	case !a.empty && c.empty:
		return gr.Liberties(b, a.captain).Has(c.point)
	default:
		return gr.Liberties(b, a.captain).Intersects(gr.Liberties(b, c.captain))
	}
}

// cliqueResult is the outcome of testing an empty cell's neighborhood
// for the clique closure that proves it dead or vulnerable.
type cliqueResult struct {
	dead      bool
	vulnerable bool
	killer    hexcore.Point
	carrier   []hexcore.Point
}

// testClique checks whether cell's collapsed neighborhood forms a
// clique (every pair of entities mutually connected without passing
// through cell), which proves cell dead: any two neighbors that need to
// connect can already do so around it. If removing exactly one empty
// entity from the set completes the clique, cell is vulnerable — a move
// there is refuted by playing the omitted neighbor instead.
func testClique(b *stoneboard.StoneBoard, gr *groups.Groups, g *hexcore.Geometry, cell hexcore.Point) cliqueResult {
	es := collapseNeighborhood(b, gr, g, cell)
	n := len(es)
	if n < 2 {
		return cliqueResult{dead: true}
	}

	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ok := entitiesAdjacent(b, gr, g, es[i], es[j])
			adj[i][j], adj[j][i] = ok, ok
		}
	}

	if isClique(adj, nil, n) {
		return cliqueResult{dead: true}
	}

	for skip := 0; skip < n; skip++ {
		if !es[skip].empty {
			continue
		}
		if isClique(adj, []int{skip}, n) {
			var carrier []hexcore.Point
			for i, e := range es {
				if i != skip && e.empty {
					carrier = append(carrier, e.point)
				}
			}
			return cliqueResult{vulnerable: true, killer: es[skip].point, carrier: carrier}
		}
	}
	return cliqueResult{}
}

func isClique(adj [][]bool, excl []int, n int) bool {
	skip := func(i int) bool {
		for _, e := range excl {
			if e == i {
				return true
			}
		}
		return false
	}
	for i := 0; i < n; i++ {
		if skip(i) {
			continue
		}
		for j := i + 1; j < n; j++ {
			if skip(j) {
				continue
			}
			if !adj[i][j] {
				return false
			}
		}
	}
	return true
}

// edgeReachable runs a BFS from every point of color c's owning edges,
// stepping only through empty cells and c's own stones, and reports
// which empty cells can still reach an edge of c. Used by unreachable-
// region fillin: an empty cell unreachable for BOTH colors can never
// matter to the outcome and is dead.
func edgeReachable(b *stoneboard.StoneBoard, g *hexcore.Geometry, c hexcore.Color) cellset.Set {
	reached := cellset.New(g)
	var queue []hexcore.Point
	push := func(p hexcore.Point) {
		if !reached.Has(p) {
			reached.Add(p)
			queue = append(queue, p)
		}
	}

	var edges [2]hexcore.Point
	if c == hexcore.Black {
		edges = [2]hexcore.Point{g.North(), g.South()}
	} else {
		edges = [2]hexcore.Point{g.East(), g.West()}
	}
	for _, e := range edges {
		push(e)
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, nb := range g.Neighbors(p) {
			if reached.Has(nb) {
				continue
			}
			if g.IsEdge(nb) {
				if g.EdgeColor(nb) == c {
					push(nb)
				}
				continue
			}
			col := b.ColorAt(nb)
			if col == hexcore.Empty || col == c {
				push(nb)
			}
		}
	}
	return reached
}

// deadByUnreachability returns every empty cell that cannot reach an
// edge of EITHER color through empty-or-own-color paths: no matter how
// the game continues, such a cell plays no part in any connection. The
// two colors' reachability searches are independent; when parallel is
// set they run concurrently via errgroup, since on larger boards each
// BFS is the dominant per-call cost.
func deadByUnreachability(b *stoneboard.StoneBoard, g *hexcore.Geometry, parallel bool) cellset.Set {
	var blackReach, whiteReach cellset.Set
	if parallel {
		grp, _ := errgroup.WithContext(context.Background())
		grp.Go(func() error {
			blackReach = edgeReachable(b, g, hexcore.Black)
			return nil
		})
		grp.Go(func() error {
			whiteReach = edgeReachable(b, g, hexcore.White)
			return nil
		})
		_ = grp.Wait()
	} else {
		blackReach = edgeReachable(b, g, hexcore.Black)
		whiteReach = edgeReachable(b, g, hexcore.White)
	}

	dead := cellset.New(g)
	for _, p := range g.AllCells() {
		if !b.IsEmpty(p) {
			continue
		}
		if !blackReach.Has(p) && !whiteReach.Has(p) {
			dead.Add(p)
		}
	}
	return dead
}
