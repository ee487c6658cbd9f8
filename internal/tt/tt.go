// Package tt implements the solver's transposition table: a fixed-size,
// direct-mapped hash table keyed by a StoneBoard's 64-bit Zobrist hash,
// storing one DfsData per solved position. Power-of-2 sizing via
// roundDownToPowerOf2, an upper-32-bits-of-hash key-verification slot,
// and age-based replacement, holding Hex's DfsData (win/numMoves/
// bestMove/numStates) instead of a scored alpha-beta entry.
package tt

import (
	"github.com/hexsolve/hexsolve/internal/cellset"
	"github.com/hexsolve/hexsolve/internal/hexcore"
)

// DfsData is one solved-position record: whether the side to move at
// that position wins, a move count, the move that realizes it (the
// first move tried that won; NoPoint for a loss), and a state count.
// The table does not interpret NumMoves or NumStates; the solver stores
// the search depth at which it solved the position and its running
// node total at that moment.
type DfsData struct {
	Win       bool
	NumMoves  uint16
	BestMove  hexcore.Point
	NumStates uint64
}

// entry is one table slot: a DfsData plus the upper 32 bits of its full
// hash (collision check) and an age generation for replacement.
type entry struct {
	valid bool
	key   uint32
	data  DfsData
	age   uint8
}

// Table is a fixed-size, direct-mapped transposition table. Collision
// policy is replace-on-write by default; Store retains the existing
// entry over a same-generation write only when it recorded more search
// work (NumStates), an acceptable-not-required tiebreak.
type Table struct {
	entries []entry
	mask    uint64
	age     uint8

	probes uint64
	hits   uint64
}

// New returns a Table sized to hold at most numEntries records: the
// count is rounded down to the nearest power of 2 (minimum 1) for fast
// masking.
func New(numEntries int) *Table {
	n := roundDownToPowerOf2(uint64(numEntries))
	if n == 0 {
		n = 1
	}
	return &Table{
		entries: make([]entry, n),
		mask:    n - 1,
	}
}

// NewBySizeMB sizes the table from a memory budget rather than an
// entry count.
func NewBySizeMB(sizeMB int) *Table {
	const approxEntrySize = 24
	numEntries := (uint64(sizeMB) * 1024 * 1024) / approxEntrySize
	return New(int(numEntries))
}

func roundDownToPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Probe looks up hash, returning its stored DfsData and true on a
// verified hit.
func (t *Table) Probe(hash uint64) (DfsData, bool) {
	t.probes++
	idx := hash & t.mask
	e := &t.entries[idx]
	if e.valid && e.key == uint32(hash>>32) {
		t.hits++
		return e.data, true
	}
	return DfsData{}, false
}

// Store records data under hash, replacing whatever was in that slot
// unless it is a same-generation record backed by strictly more search
// work.
func (t *Table) Store(hash uint64, data DfsData) {
	idx := hash & t.mask
	e := &t.entries[idx]
	if e.valid && e.age == t.age && e.data.NumStates > data.NumStates {
		return
	}
	e.valid = true
	e.key = uint32(hash >> 32)
	e.data = data
	e.age = t.age
}

// NewGeneration bumps the age counter, used between independent solves
// sharing one table so stale entries lose replacement priority without
// being cleared outright.
func (t *Table) NewGeneration() { t.age++ }

// Clear empties every slot and resets statistics.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = entry{}
	}
	t.age = 0
	t.probes = 0
	t.hits = 0
}

// Size returns the number of slots in the table.
func (t *Table) Size() int { return len(t.entries) }

// HitRate returns the fraction of Probe calls that were verified hits.
func (t *Table) HitRate() float64 {
	if t.probes == 0 {
		return 0
	}
	return float64(t.hits) / float64(t.probes)
}

// ProofStore holds proof bitsets separately from DfsData records, since
// proof bitsets are large relative to a DfsData record. It is a plain
// map rather than a fixed-size table: proofs are only retained for
// positions a caller explicitly chooses to keep (typically just along
// the principal variation), so unbounded growth isn't a concern at
// solver scale.
type ProofStore struct {
	proofs map[uint64]cellset.Set
}

// NewProofStore returns an empty ProofStore.
func NewProofStore() *ProofStore {
	return &ProofStore{proofs: make(map[uint64]cellset.Set)}
}

// Store records proof under hash.
func (p *ProofStore) Store(hash uint64, proof cellset.Set) {
	p.proofs[hash] = proof
}

// Load returns the proof stored under hash, if any.
func (p *ProofStore) Load(hash uint64) (cellset.Set, bool) {
	pr, ok := p.proofs[hash]
	return pr, ok
}

// Clear empties the store.
func (p *ProofStore) Clear() {
	p.proofs = make(map[uint64]cellset.Set)
}
