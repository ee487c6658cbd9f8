// Package bitset implements a fixed-capacity set of hexcore.Points,
// generalizing a single-word Bitboard (board/bitboard.go) to an
// arbitrary number of words since Hex boards (up to 11x11+4=125 points)
// exceed the 64 bits a chess board needs.
package bitset

import "math/bits"

const wordBits = 64

// Bitset is a fixed-capacity bit vector over point indices [0, capacity).
type Bitset struct {
	words    []uint64
	capacity int
}

// New returns an empty Bitset capable of holding indices [0, capacity).
func New(capacity int) Bitset {
	return Bitset{words: make([]uint64, (capacity+wordBits-1)/wordBits), capacity: capacity}
}

// Capacity returns the number of representable indices.
func (b Bitset) Capacity() int { return b.capacity }

// Clone returns an independent copy of b.
func (b Bitset) Clone() Bitset {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return Bitset{words: words, capacity: b.capacity}
}

// CopyFrom overwrites b's contents with src's. Both must share capacity.
func (b *Bitset) CopyFrom(src Bitset) {
	copy(b.words, src.words)
}

// Set adds i to the set.
func (b *Bitset) Set(i int) {
	b.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// Clear removes i from the set.
func (b *Bitset) Clear(i int) {
	b.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

// Test reports whether i is in the set.
func (b Bitset) Test(i int) bool {
	return b.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// SetTo sets or clears i according to v.
func (b *Bitset) SetTo(i int, v bool) {
	if v {
		b.Set(i)
	} else {
		b.Clear(i)
	}
}

func (b *Bitset) trimHighBits() {
	extra := len(b.words)*wordBits - b.capacity
	if extra > 0 && len(b.words) > 0 {
		last := len(b.words) - 1
		b.words[last] &= (1 << uint(wordBits-extra)) - 1
	}
}

// Union sets b to the union of a and c (all must share capacity).
func (b *Bitset) Union(a, c Bitset) {
	for i := range b.words {
		b.words[i] = a.words[i] | c.words[i]
	}
}

// Intersect sets b to the intersection of a and c.
func (b *Bitset) Intersect(a, c Bitset) {
	for i := range b.words {
		b.words[i] = a.words[i] & c.words[i]
	}
}

// Difference sets b to a minus c.
func (b *Bitset) Difference(a, c Bitset) {
	for i := range b.words {
		b.words[i] = a.words[i] &^ c.words[i]
	}
}

// Complement sets b to the complement of a, restricted to capacity.
func (b *Bitset) Complement(a Bitset) {
	for i := range b.words {
		b.words[i] = ^a.words[i]
	}
	b.trimHighBits()
}

// Or mutates b to include every member of a (b |= a).
func (b *Bitset) Or(a Bitset) {
	for i := range b.words {
		b.words[i] |= a.words[i]
	}
}

// And mutates b to keep only members also in a (b &= a).
func (b *Bitset) And(a Bitset) {
	for i := range b.words {
		b.words[i] &= a.words[i]
	}
}

// AndNot mutates b to remove every member of a (b &^= a).
func (b *Bitset) AndNot(a Bitset) {
	for i := range b.words {
		b.words[i] &^= a.words[i]
	}
}

// IsEmpty reports whether the set has no members.
func (b Bitset) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Intersects reports whether b and a share any member.
func (b Bitset) Intersects(a Bitset) bool {
	for i := range b.words {
		if b.words[i]&a.words[i] != 0 {
			return true
		}
	}
	return false
}

// Equal reports whether b and a have identical membership.
func (b Bitset) Equal(a Bitset) bool {
	for i := range b.words {
		if b.words[i] != a.words[i] {
			return false
		}
	}
	return true
}

// PopCount returns the number of members.
func (b Bitset) PopCount() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// ClearAll zeroes every member of b.
func (b *Bitset) ClearAll() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// Each calls f for every member of b in increasing index order.
func (b Bitset) Each(f func(i int)) {
	for w := 0; w < len(b.words); w++ {
		word := b.words[w]
		for word != 0 {
			tz := bits.TrailingZeros64(word)
			f(w*wordBits + tz)
			word &= word - 1
		}
	}
}

// Slice returns the members of b as a sorted slice.
func (b Bitset) Slice() []int {
	out := make([]int, 0, b.PopCount())
	b.Each(func(i int) { out = append(out, i) })
	return out
}
