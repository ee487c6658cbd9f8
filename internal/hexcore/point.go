package hexcore

import "fmt"

// Point is a dense integer index identifying either an interior cell or
// one of the four edge sentinels. Interior cells are numbered row-major,
// 0..Width*Height-1; the four edges follow immediately after.
type Point int32

// NoPoint is the invalid/unset point, analogous to a chess engine's NoSquare.
const NoPoint Point = -1

// Edge sentinel identifiers, assigned relative to a Geometry's cell count
// by NewGeometry. North/South belong to Black (connects top-bottom),
// East/West belong to White (connects left-right) — standard Hex
// convention.
type edgeKind int

const (
	North edgeKind = iota
	South
	East
	West
)

// IsEdge reports whether p is one of the four edge sentinels for g.
func (g *Geometry) IsEdge(p Point) bool {
	return p >= g.firstEdge
}

// EdgeColor returns the color that owns an edge sentinel, or Empty if p is
// not an edge.
func (g *Geometry) EdgeColor(p Point) Color {
	if !g.IsEdge(p) {
		return Empty
	}
	switch p - g.firstEdge {
	case Point(North), Point(South):
		return Black
	case Point(East), Point(West):
		return White
	default:
		return Empty
	}
}

// String renders a point as row/col algebraic notation ("a1") for
// interior cells, or the edge name otherwise.
func (g *Geometry) String(p Point) string {
	if p == NoPoint {
		return "-"
	}
	if g.IsEdge(p) {
		switch p - g.firstEdge {
		case Point(North):
			return "NORTH"
		case Point(South):
			return "SOUTH"
		case Point(East):
			return "EAST"
		case Point(West):
			return "WEST"
		}
	}
	r, c := g.RowCol(p)
	return fmt.Sprintf("%c%d", 'a'+c, r+1)
}
