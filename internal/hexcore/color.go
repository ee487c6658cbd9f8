// Package hexcore implements Hex board geometry: cells, colors, and the
// precomputed adjacency tables shared by every other package in this
// module.
package hexcore

import "fmt"

// Color identifies the occupant of a cell.
type Color uint8

const (
	Empty Color = iota
	Black
	White
	Dead
)

// Other returns the opposing player's color. Only meaningful for Black/White.
func (c Color) Other() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return c
	}
}

// IsPlayer returns true for Black or White, false for Empty/Dead.
func (c Color) IsPlayer() bool {
	return c == Black || c == White
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	case Dead:
		return "dead"
	case Empty:
		return "empty"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}
