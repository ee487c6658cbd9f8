package stoneboard

import "github.com/hexsolve/hexsolve/internal/hexcore"

// Zobrist hash keys for stone-board hashing, one table per board size.
// Mirrors the xorshift64* fixed-seed PRNG of board/zobrist.go,
// generalized from a fixed 64-square table to one sized per Geometry
// since Hex board dimensions vary.

// prng is the xorshift64* generator, same algorithm verbatim.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// zobristColorSlots is the number of occupant colors hashed: Black,
// White, Dead (Empty contributes no key, matching the usual approach of
// only hashing occupied squares).
const zobristColorSlots = 3

func colorSlot(c hexcore.Color) int {
	switch c {
	case hexcore.Black:
		return 0
	case hexcore.White:
		return 1
	case hexcore.Dead:
		return 2
	default:
		return -1
	}
}

// zobristTable holds the (cell, color) keys for one board geometry.
type zobristTable struct {
	keys [][zobristColorSlots]uint64
}

func newZobristTable(g *hexcore.Geometry) *zobristTable {
	rng := newPRNG(0x98F107A2BEEF1234) // same fixed seed used throughout
	t := &zobristTable{keys: make([][zobristColorSlots]uint64, g.NumPoints())}
	for p := range t.keys {
		for s := 0; s < zobristColorSlots; s++ {
			t.keys[p][s] = rng.next()
		}
	}
	return t
}

func (t *zobristTable) key(p hexcore.Point, c hexcore.Color) uint64 {
	slot := colorSlot(c)
	if slot < 0 {
		return 0
	}
	return t.keys[p][slot]
}
