// Package cellset adapts internal/bitset's index-based Bitset to
// hexcore.Point-typed operations, so the rest of the module never has to
// convert Point<->int at call sites.
package cellset

import (
	"github.com/hexsolve/hexsolve/internal/bitset"
	"github.com/hexsolve/hexsolve/internal/hexcore"
)

// Set is a fixed-capacity set of hexcore.Points.
type Set struct {
	bits bitset.Bitset
}

// New returns an empty Set over a board with the given geometry.
func New(g *hexcore.Geometry) Set {
	return Set{bits: bitset.New(g.NumPoints())}
}

// Capacity returns the number of representable points, or 0 for a zero
// Set (e.g. a map lookup miss) that was never initialized via New/Of.
func (s Set) Capacity() int { return s.bits.Capacity() }

func (s Set) Add(p hexcore.Point)     { s.bits.Set(int(p)) }
func (s *Set) Remove(p hexcore.Point) { s.bits.Clear(int(p)) }
func (s Set) Has(p hexcore.Point) bool { return s.bits.Test(int(p)) }
func (s *Set) SetTo(p hexcore.Point, v bool) { s.bits.SetTo(int(p), v) }

func (s Set) Clone() Set { return Set{bits: s.bits.Clone()} }
func (s *Set) CopyFrom(o Set) { s.bits.CopyFrom(o.bits) }
func (s *Set) Clear() { s.bits.ClearAll() }

func (s *Set) Union(a, b Set) { s.bits.Union(a.bits, b.bits) }
func (s *Set) Intersect(a, b Set) { s.bits.Intersect(a.bits, b.bits) }
func (s *Set) Difference(a, b Set) { s.bits.Difference(a.bits, b.bits) }
func (s *Set) Complement(a Set) { s.bits.Complement(a.bits) }

func (s *Set) Or(a Set)     { s.bits.Or(a.bits) }
func (s *Set) And(a Set)    { s.bits.And(a.bits) }
func (s *Set) AndNot(a Set) { s.bits.AndNot(a.bits) }

func (s Set) IsEmpty() bool         { return s.bits.IsEmpty() }
func (s Set) Intersects(o Set) bool { return s.bits.Intersects(o.bits) }
func (s Set) Equal(o Set) bool      { return s.bits.Equal(o.bits) }
func (s Set) PopCount() int         { return s.bits.PopCount() }

// Each calls f for every member of s, in increasing Point order.
func (s Set) Each(f func(p hexcore.Point)) {
	s.bits.Each(func(i int) { f(hexcore.Point(i)) })
}

// Slice returns the members of s as a sorted slice of Points.
func (s Set) Slice() []hexcore.Point {
	ints := s.bits.Slice()
	out := make([]hexcore.Point, len(ints))
	for i, v := range ints {
		out[i] = hexcore.Point(v)
	}
	return out
}

// Of builds a Set containing exactly the given points.
func Of(g *hexcore.Geometry, pts ...hexcore.Point) Set {
	s := New(g)
	for _, p := range pts {
		s.Add(p)
	}
	return s
}
