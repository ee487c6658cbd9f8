// Package stoneboard implements StoneBoard: per-cell color and the
// incremental Zobrist hash, the bottom layer a composed board state
// builds on. Modeled on Position (board/position.go): cached derived
// bitboards, private setPiece/removePiece helpers, a value-copy Copy().
package stoneboard

import (
	"fmt"
	"strings"

	"github.com/hexsolve/hexsolve/internal/cellset"
	"github.com/hexsolve/hexsolve/internal/hexcore"
)

// StoneBoard owns the occupant color of every cell, plus a Zobrist hash
// kept incrementally in sync with every mutation.
type StoneBoard struct {
	Geometry *hexcore.Geometry

	stones [3]cellset.Set // indexed by colorSlot: Black, White, Dead
	hash   uint64

	zobrist *zobristTable
}

// New returns an empty StoneBoard (all interior cells empty, edges
// pre-set to their owning color).
func New(g *hexcore.Geometry) *StoneBoard {
	b := &StoneBoard{
		Geometry: g,
		zobrist:  newZobristTable(g),
	}
	for i := range b.stones {
		b.stones[i] = cellset.New(g)
	}
	b.setRaw(g.North(), hexcore.Black)
	b.setRaw(g.South(), hexcore.Black)
	b.setRaw(g.East(), hexcore.White)
	b.setRaw(g.West(), hexcore.White)
	return b
}

// Copy returns an independent deep copy, used for history snapshots and
// for what-if boards in ICE/solver.
func (b *StoneBoard) Copy() *StoneBoard {
	n := &StoneBoard{Geometry: b.Geometry, hash: b.hash, zobrist: b.zobrist}
	for i := range b.stones {
		n.stones[i] = b.stones[i].Clone()
	}
	return n
}

// CopyFrom overwrites b's contents from src. Both must share Geometry.
func (b *StoneBoard) CopyFrom(src *StoneBoard) {
	for i := range b.stones {
		b.stones[i].CopyFrom(src.stones[i])
	}
	b.hash = src.hash
}

func (b *StoneBoard) setRaw(p hexcore.Point, c hexcore.Color) {
	slot := colorSlot(c)
	if slot >= 0 {
		b.stones[slot].Add(p)
	}
}

// Hash returns the current 64-bit Zobrist hash.
func (b *StoneBoard) Hash() uint64 { return b.hash }

// ColorAt returns the occupant color of p (Black, White, Dead, or Empty).
func (b *StoneBoard) ColorAt(p hexcore.Point) hexcore.Color {
	if b.stones[0].Has(p) {
		return hexcore.Black
	}
	if b.stones[1].Has(p) {
		return hexcore.White
	}
	if b.stones[2].Has(p) {
		return hexcore.Dead
	}
	return hexcore.Empty
}

// IsEmpty reports whether p holds no stone of any kind.
func (b *StoneBoard) IsEmpty(p hexcore.Point) bool {
	return b.ColorAt(p) == hexcore.Empty
}

// Stones returns the (read-only) set of cells held by c. c must be
// Black, White, or Dead.
func (b *StoneBoard) Stones(c hexcore.Color) cellset.Set {
	slot := colorSlot(c)
	if slot < 0 {
		return cellset.New(b.Geometry)
	}
	return b.stones[slot]
}

// Empty returns the set of empty interior cells (edges are never empty).
func (b *StoneBoard) Empty() cellset.Set {
	occupied := cellset.New(b.Geometry)
	occupied.Or(b.stones[0])
	occupied.Or(b.stones[1])
	occupied.Or(b.stones[2])
	empty := cellset.New(b.Geometry)
	empty.Complement(occupied)
	// The edges are always in the occupied sets, so the complement
	// already leaves them out; the mask keeps that explicit.
	empty.AndNot(cellset.Of(b.Geometry, b.Geometry.North(), b.Geometry.South(), b.Geometry.East(), b.Geometry.West()))
	return empty
}

// Play places color c on empty cell p, updating the hash incrementally.
// Panics if p is not empty — callers are expected to validate moves
// against the empty set before calling.
func (b *StoneBoard) Play(p hexcore.Point, c hexcore.Color) {
	if !b.IsEmpty(p) {
		panic(fmt.Sprintf("stoneboard: Play on non-empty cell %v", p))
	}
	b.setRaw(p, c)
	b.hash ^= b.zobrist.key(p, c)
}

// Unplay removes color c from p, restoring it to empty and reverting the
// hash contribution. c must match the color most recently played there.
func (b *StoneBoard) Unplay(p hexcore.Point, c hexcore.Color) {
	slot := colorSlot(c)
	if slot >= 0 {
		b.stones[slot].Remove(p)
	}
	b.hash ^= b.zobrist.key(p, c)
}

// String renders an ASCII rhombic board for diagnostics, in the spirit
// of Bitboard.String()/Position.String().
func (b *StoneBoard) String() string {
	var sb strings.Builder
	g := b.Geometry
	for r := 0; r < g.Height; r++ {
		sb.WriteString(strings.Repeat(" ", r))
		for c := 0; c < g.Width; c++ {
			switch b.ColorAt(g.PointAt(r, c)) {
			case hexcore.Black:
				sb.WriteString("B ")
			case hexcore.White:
				sb.WriteString("W ")
			case hexcore.Dead:
				sb.WriteString(". ")
			default:
				sb.WriteString("+ ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
