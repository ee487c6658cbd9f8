package solver

import (
	"github.com/hexsolve/hexsolve/internal/cellset"
	"github.com/hexsolve/hexsolve/internal/hexboard"
	"github.com/hexsolve/hexsolve/internal/hexcore"
)

// solveDecomposition handles the case where boundary is a single empty
// cell whose removal splits the remaining empties into independent
// regions. Each side is solved against a worst-case fill of the other
// (the opponent takes every cell of the side not under consideration),
// and the outcomes are composed.
//
// The compose rule is a property of the VC semi-connections in
// general, and left unspecified in full generality here. This
// implementation's decision: color wins the
// decomposed position iff color wins at least one component under that
// component's worst-case fill of the other -- a win secured through one
// independent region cannot be undone by what happens in a region that
// shares no empty cells with it, given boundary is the sole connecting
// cell between them. If either component's result is Unknown, the whole
// decomposition reports Unknown.
func (s *Solver) solveDecomposition(color hexcore.Color, boundary hexcore.Point, depth int) (Result, cellset.Set) {
	g := s.hb.Geometry
	opp := color.Other()

	sideA, sideB := splitSides(s.hb, boundary)

	resA, proofA := s.solveComponent(color, opp, sideA, sideB, depth)
	resB, proofB := s.solveComponent(color, opp, sideB, sideA, depth)

	if resA == Unknown || resB == Unknown {
		return Unknown, cellset.Set{}
	}

	won := resA == Win || resB == Win
	s.stats.bumpDecomposition(depth, won)

	boundaryCarrier := cellset.Of(g, boundary)

	if won {
		proof := cellset.New(g)
		if resA == Win {
			proof.Or(proofA)
		} else {
			proof.Or(proofB)
		}
		proof.Or(boundaryCarrier)
		return Win, proof
	}

	proof := cellset.New(g)
	proof.Or(proofA)
	proof.Or(proofB)
	proof.Or(boundaryCarrier)
	return Loss, proof
}

// solveComponent fills hypothetical with opp's color (the worst-case
// assumption for the side under consideration) via PlayStones (a
// single history frame for the whole batch, so one UndoMove reverts
// it), solves the focus region, and undoes.
func (s *Solver) solveComponent(color, opp hexcore.Color, focus, hypothetical cellset.Set, depth int) (Result, cellset.Set) {
	if focus.IsEmpty() {
		// Nothing to solve on this side: vacuously not a win for color.
		return Loss, cellset.New(s.hb.Geometry)
	}

	stones := make([]hexboard.PlayedStone, 0, hypothetical.PopCount())
	hypothetical.Each(func(p hexcore.Point) {
		stones = append(stones, hexboard.PlayedStone{Point: p, Color: opp})
	})

	if len(stones) > 0 {
		if err := s.hb.PlayStones(stones); err != nil {
			return Loss, cellset.New(s.hb.Geometry)
		}
	}
	res, proof := s.solveState(color, depth+1, false)
	if len(stones) > 0 {
		s.hb.UndoMove()
	}
	return res, proof
}

// splitSides partitions the board's empty cells (other than boundary)
// into the two (or more, folded pairwise into A/B) connected components
// that remain once boundary is removed from the adjacency graph: the
// side-A and side-B empty cells relative to the boundary.
func splitSides(hb *hexboard.HexBoard, boundary hexcore.Point) (cellset.Set, cellset.Set) {
	g := hb.Geometry
	empty := hb.Board.Empty()
	visited := cellset.New(g)
	visited.Add(boundary)

	var components []cellset.Set
	empty.Each(func(start hexcore.Point) {
		if visited.Has(start) {
			return
		}
		comp := cellset.New(g)
		queue := []hexcore.Point{start}
		visited.Add(start)
		comp.Add(start)
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			for _, nb := range g.Neighbors(p) {
				if nb == boundary || visited.Has(nb) || !empty.Has(nb) {
					continue
				}
				visited.Add(nb)
				comp.Add(nb)
				queue = append(queue, nb)
			}
		}
		components = append(components, comp)
	})

	sideA := cellset.New(g)
	sideB := cellset.New(g)
	for i, comp := range components {
		if i%2 == 0 {
			sideA.Or(comp)
		} else {
			sideB.Or(comp)
		}
	}
	return sideA, sideB
}
