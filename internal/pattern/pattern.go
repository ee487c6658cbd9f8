// Package pattern implements the ICE pattern matcher: a small closed set
// of rule kinds (Dead/Captured/PermanentlyInferior/Vulnerable/
// Reversible/Dominated), each matched against the fixed 6-cell ring-1
// neighborhood of an empty cell by a single dispatch routine per kind,
// modeled on the one-function-per-piece-kind attack tables of
// board/attacks.go (KnightAttacks, BishopAttacks, RookAttacks each a
// single lookup, never a virtual-dispatch hierarchy).
//
// Parsing external pattern files is out of scope; this package ships
// the decoded-table shape such a loader would produce, pre-populated
// with a small illustrative built-in table of board-size-independent
// Hex patterns, and callers may load additional Rules at construction
// time.
package pattern

import "github.com/hexsolve/hexsolve/internal/hexcore"

// Kind identifies a pattern's simplification class.
type Kind int

const (
	KindDead Kind = iota
	KindCaptured
	KindPermanentlyInferior
	KindVulnerable
	KindReversible
	KindDominated
)

// Slot describes what a ring-1 neighbor position must hold for a rule to
// match there.
type Slot int

const (
	Any          Slot = iota // matches anything
	MustEmpty                // neighbor must be empty
	MustOwn                  // neighbor must be the rule's color (stone or edge)
	MustOpp                  // neighbor must be the opposing color (stone or edge)
	MustEdgeOwn               // neighbor must be an edge sentinel of the rule's color
	MustOccupied              // neighbor must not be empty (any color, either side)
)

// Rule is one compiled pattern: a required configuration of the 6 ring-1
// neighbors (in cyclic order) plus kind-specific metadata.
type Rule struct {
	Kind Kind

	// Ring gives the required state of each of the 6 neighbor slots in
	// a single fixed cyclic order. Matching tries all 6 rotations and
	// both chiralities (12 symmetries total), so a Rule need only be
	// authored once.
	Ring [6]Slot

	// KillerSlot is the ring index that becomes the killer move of a
	// Vulnerable, Reversible or Dominated rule's match (ignored for
	// other kinds).
	KillerSlot int

	// CarrierSlots are ring indices that form the pattern's carrier:
	// cells that must stay empty (or captured) for the simplification
	// to remain valid.
	CarrierSlots []int

	Name string
}

// Match is the result of a successful pattern match at a cell, resolved
// to absolute board points (not ring-relative indices).
type Match struct {
	Rule    *Rule
	Cell    hexcore.Point
	Color   hexcore.Color   // the rule's parameterized color, if any
	Killer  hexcore.Point   // only for Vulnerable/Reversible/Dominated
	Carrier []hexcore.Point // absolute carrier cells
}

// Table holds the compiled rules for one color-agnostic pattern set.
// Rules are matched once per color where the Kind is color-parameterized
// (Captured/PermanentlyInferior/Vulnerable/Reversible/Dominated); Dead
// rules are color-agnostic.
type Table struct {
	rules []*Rule
}

// NewTable returns a Table seeded with the built-in rule set.
func NewTable() *Table {
	return &Table{rules: builtinRules()}
}

// AddRule registers an additional compiled rule (e.g. loaded from an
// external pattern file by a caller outside this package's scope).
func (t *Table) AddRule(r *Rule) {
	t.rules = append(t.rules, r)
}

// Rules returns every compiled rule of the given kind.
func (t *Table) Rules(k Kind) []*Rule {
	var out []*Rule
	for _, r := range t.rules {
		if r.Kind == k {
			out = append(out, r)
		}
	}
	return out
}

// rotate returns ring rotated by n positions (cyclic).
func rotate(ring [6]Slot, n int) [6]Slot {
	var out [6]Slot
	for i := 0; i < 6; i++ {
		out[i] = ring[(i+n)%6]
	}
	return out
}

// mirror reverses ring order (the board's other chirality).
func mirror(ring [6]Slot) [6]Slot {
	var out [6]Slot
	for i := 0; i < 6; i++ {
		out[i] = ring[(6-i)%6]
	}
	return out
}

// symmetries returns the 12 rotation/mirror permutations of the ring's
// slot indices, so a caller can remap Ring, KillerSlot and CarrierSlots
// together. The contents of ring are not read.
func symmetries(ring [6]Slot) [12][6]int {
	var perms [12][6]int
	idx := 0
	base := [6]int{0, 1, 2, 3, 4, 5}
	for m := 0; m < 2; m++ {
		cur := base
		if m == 1 {
			var rev [6]int
			for i := 0; i < 6; i++ {
				rev[i] = base[(6-i)%6]
			}
			cur = rev
		}
		for n := 0; n < 6; n++ {
			var p [6]int
			for i := 0; i < 6; i++ {
				p[i] = cur[(i+n)%6]
			}
			perms[idx] = p
			idx++
		}
	}
	return perms
}
