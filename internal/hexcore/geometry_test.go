package hexcore

import "testing"

func TestNewGeometryDimensions(t *testing.T) {
	g := NewGeometry(3, 4)
	if g.NumCells() != 12 {
		t.Fatalf("NumCells() = %d, want 12", g.NumCells())
	}
	if g.NumPoints() != 16 {
		t.Fatalf("NumPoints() = %d, want 16 (12 cells + 4 edges)", g.NumPoints())
	}
}

func TestPointAtRowColRoundTrip(t *testing.T) {
	g := NewGeometry(5, 5)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			p := g.PointAt(r, c)
			gotR, gotC := g.RowCol(p)
			if gotR != r || gotC != c {
				t.Fatalf("RowCol(PointAt(%d,%d)) = (%d,%d)", r, c, gotR, gotC)
			}
		}
	}
}

func TestEdgeSentinelsAreDistinctAndRecognized(t *testing.T) {
	g := NewGeometry(4, 4)
	edges := []Point{g.North(), g.South(), g.East(), g.West()}
	seen := map[Point]bool{}
	for _, e := range edges {
		if !g.IsEdge(e) {
			t.Fatalf("%v should be recognized as an edge", e)
		}
		if seen[e] {
			t.Fatalf("edge %v is not distinct", e)
		}
		seen[e] = true
	}
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.IsEdge(g.PointAt(r, c)) {
				t.Fatalf("interior cell (%d,%d) misreported as edge", r, c)
			}
		}
	}
}

func TestEdgeColorOwnership(t *testing.T) {
	g := NewGeometry(4, 4)
	if g.EdgeColor(g.North()) != Black || g.EdgeColor(g.South()) != Black {
		t.Fatalf("North/South must belong to Black")
	}
	if g.EdgeColor(g.East()) != White || g.EdgeColor(g.West()) != White {
		t.Fatalf("East/West must belong to White")
	}
	if g.EdgeColor(g.PointAt(0, 0)) != Empty {
		t.Fatalf("an interior cell has no edge color")
	}
}

// Every interior cell must border its geometric edge(s): row 0 touches
// North, the last row touches South, column 0 touches West, the last
// column touches East. Adjacency must also be symmetric in both
// directions for Groups.Liberties to see a pure edge group's border.
func TestNeighborsIncludeOwningEdgesSymmetrically(t *testing.T) {
	g := NewGeometry(4, 3)
	for c := 0; c < g.Width; c++ {
		if !containsPoint(g.Neighbors(g.PointAt(0, c)), g.North()) {
			t.Fatalf("(0,%d) must neighbor North", c)
		}
		if !containsPoint(g.Neighbors(g.PointAt(g.Height-1, c)), g.South()) {
			t.Fatalf("(%d,%d) must neighbor South", g.Height-1, c)
		}
	}
	for r := 0; r < g.Height; r++ {
		if !containsPoint(g.Neighbors(g.PointAt(r, 0)), g.West()) {
			t.Fatalf("(%d,0) must neighbor West", r)
		}
		if !containsPoint(g.Neighbors(g.PointAt(r, g.Width-1)), g.East()) {
			t.Fatalf("(%d,%d) must neighbor East", r, g.Width-1)
		}
	}
	if !containsPoint(g.Neighbors(g.North()), g.PointAt(0, 0)) {
		t.Fatalf("North must list (0,0) back as a neighbor")
	}
}

func TestCornerEdgesAreMutuallyAdjacent(t *testing.T) {
	g := NewGeometry(3, 3)
	if !containsPoint(g.Neighbors(g.North()), g.West()) || !containsPoint(g.Neighbors(g.West()), g.North()) {
		t.Fatalf("North and West must be mutually adjacent at the shared corner")
	}
}

func TestStringParsesAlgebraicNotation(t *testing.T) {
	g := NewGeometry(11, 11)
	p := g.PointAt(0, 0)
	if got := g.String(p); got != "a1" {
		t.Fatalf("String(PointAt(0,0)) = %q, want a1", got)
	}
	p2 := g.PointAt(10, 10)
	if got := g.String(p2); got != "k11" {
		t.Fatalf("String(PointAt(10,10)) = %q, want k11", got)
	}
	if g.String(NoPoint) != "-" {
		t.Fatalf("String(NoPoint) should render as -")
	}
}

func TestCenterDistance2IsMinimalAtCenter(t *testing.T) {
	g := NewGeometry(5, 5)
	center := g.PointAt(2, 2)
	corner := g.PointAt(0, 0)
	if g.CenterDistance2(center) >= g.CenterDistance2(corner) {
		t.Fatalf("center distance should be smaller at the board's center than at a corner")
	}
}

func containsPoint(pts []Point, p Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}
