package pattern

import (
	"testing"

	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/stoneboard"
)

func TestMatchAtFullySurroundedCellIsDead(t *testing.T) {
	g := hexcore.NewGeometry(5, 5)
	b := stoneboard.New(g)
	center := g.PointAt(2, 2)
	for _, nb := range g.Neighbors(center) {
		if g.IsEdge(nb) {
			continue
		}
		b.Play(nb, hexcore.Black)
	}

	table := NewTable()
	st := NewState(table, g)
	st.Refresh(b)

	matches := st.Matches(center, hexcore.Black, KindDead, false)
	if len(matches) == 0 {
		t.Fatalf("expected a Dead match at a fully-surrounded interior cell")
	}
}

func TestMatchAtRequiresAnEmptyCenter(t *testing.T) {
	g := hexcore.NewGeometry(5, 5)
	b := stoneboard.New(g)
	p := g.PointAt(2, 2)
	b.Play(p, hexcore.Black)

	table := NewTable()
	matches := table.MatchAt(g, b, p, hexcore.Black, KindDead, true)
	if matches != nil {
		t.Fatalf("MatchAt must refuse to match a non-empty cell, got %v", matches)
	}
}

func TestMatchAtSparseNeighborhoodFindsNoDeadMatch(t *testing.T) {
	g := hexcore.NewGeometry(5, 5)
	b := stoneboard.New(g)
	center := g.PointAt(2, 2)

	table := NewTable()
	matches := table.MatchAt(g, b, center, hexcore.Black, KindDead, true)
	if len(matches) != 0 {
		t.Fatalf("an all-empty neighborhood must not match the fully-surrounded Dead rule, got %v", matches)
	}
}

// CollectAll=false stops at the first successful symmetry; CollectAll=true
// may find more (every rotation/mirror of a rule that happens to match).
func TestMatchAtCollectAllFindsAtLeastAsMany(t *testing.T) {
	g := hexcore.NewGeometry(5, 5)
	b := stoneboard.New(g)
	center := g.PointAt(2, 2)
	for _, nb := range g.Neighbors(center) {
		if g.IsEdge(nb) {
			continue
		}
		b.Play(nb, hexcore.Black)
	}

	table := NewTable()
	first := table.MatchAt(g, b, center, hexcore.Black, KindDead, false)
	all := table.MatchAt(g, b, center, hexcore.Black, KindDead, true)
	if len(first) != 1 {
		t.Fatalf("collectAll=false should return exactly one match, got %d", len(first))
	}
	if len(all) < len(first) {
		t.Fatalf("collectAll=true should find at least as many matches as collectAll=false")
	}
}

func TestVulnerableMatchReportsKillerAndCarrier(t *testing.T) {
	g := hexcore.NewGeometry(5, 5)
	b := stoneboard.New(g)
	center := g.PointAt(2, 2)
	nbrs := g.Neighbors(center)
	// "own-then-empty-killer": ring[0]=MustOwn, ring[1]=MustEmpty (killer),
	// ring[2]=MustEmpty (carrier), the rest Any.
	b.Play(nbrs[0], hexcore.Black)

	table := NewTable()
	matches := table.MatchAt(g, b, center, hexcore.Black, KindVulnerable, true)
	if len(matches) == 0 {
		t.Fatalf("expected a Vulnerable match")
	}
	for _, m := range matches {
		if !containsPoint(nbrs, m.Killer) {
			t.Fatalf("a Vulnerable match's killer must be one of the cell's neighbors, got %v", m.Killer)
		}
		if len(m.Carrier) == 0 {
			t.Fatalf("a Vulnerable match must report a non-empty carrier")
		}
	}
}

func containsPoint(pts []hexcore.Point, p hexcore.Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}

func TestRulesFiltersByKind(t *testing.T) {
	table := NewTable()
	for _, r := range table.Rules(KindDead) {
		if r.Kind != KindDead {
			t.Fatalf("Rules(KindDead) returned a rule of kind %v", r.Kind)
		}
	}
	if len(table.Rules(KindDominated)) == 0 {
		t.Fatalf("expected at least one built-in Dominated rule")
	}
}

func TestAddRuleExtendsTheTable(t *testing.T) {
	table := NewTable()
	before := len(table.Rules(KindDead))
	table.AddRule(&Rule{Kind: KindDead, Name: "custom", Ring: [6]Slot{MustOccupied, MustOccupied, MustOccupied, MustOccupied, MustOccupied, MustOccupied}})
	after := len(table.Rules(KindDead))
	if after != before+1 {
		t.Fatalf("AddRule should add exactly one more Dead rule, got %d -> %d", before, after)
	}
}
