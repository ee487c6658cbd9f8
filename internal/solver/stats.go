package solver

// Counters is one bucket of per-branch search statistics: total states
// (if no memoization), explored, expanded, minimal (perfect-ordering
// lower bound), decompositions, decompositions won, moves to consider,
// winning expanded, branches to win, pruned, shrunk, cells removed.
type Counters struct {
	TotalStates       uint64
	Explored          uint64
	Expanded          uint64
	Minimal           uint64
	Decompositions    uint64
	DecompositionsWon uint64
	MovesToConsider   uint64
	WinningExpanded   uint64
	BranchesToWin     uint64
	Pruned            uint64
	Shrunk            uint64
	CellsRemoved      uint64
}

func (c *Counters) add(o Counters) {
	c.TotalStates += o.TotalStates
	c.Explored += o.Explored
	c.Expanded += o.Expanded
	c.Minimal += o.Minimal
	c.Decompositions += o.Decompositions
	c.DecompositionsWon += o.DecompositionsWon
	c.MovesToConsider += o.MovesToConsider
	c.WinningExpanded += o.WinningExpanded
	c.BranchesToWin += o.BranchesToWin
	c.Pruned += o.Pruned
	c.Shrunk += o.Shrunk
	c.CellsRemoved += o.CellsRemoved
}

// Stats is the full statistics report emitted after each solve: the
// aggregate Counters plus the same counters histogrammed by search
// depth.
type Stats struct {
	Counters
	ByDepth []Counters
}

// at returns (growing ByDepth if necessary) the per-depth bucket for
// depth, so solveState can bump counters at its own ply without every
// caller pre-sizing the histogram.
func (s *Stats) at(depth int) *Counters {
	for len(s.ByDepth) <= depth {
		s.ByDepth = append(s.ByDepth, Counters{})
	}
	return &s.ByDepth[depth]
}

// bumpExplored and the other bump* methods each increment both the
// aggregate and the per-depth counter for one field solveState touches.
// Implemented as direct field writes rather than reflection.
func (s *Stats) bumpExplored(depth int) {
	s.Explored++
	s.at(depth).Explored++
}

func (s *Stats) bumpExpanded(depth int, n uint64) {
	s.Expanded += n
	s.at(depth).Expanded += n
}

func (s *Stats) bumpMovesToConsider(depth int, n uint64) {
	s.MovesToConsider += n
	s.at(depth).MovesToConsider += n
}

func (s *Stats) bumpWinningExpanded(depth int, n uint64) {
	s.WinningExpanded += n
	s.at(depth).WinningExpanded += n
}

func (s *Stats) bumpBranchesToWin(depth int) {
	s.BranchesToWin++
	s.at(depth).BranchesToWin++
}

func (s *Stats) bumpPruned(depth int, n uint64) {
	s.Pruned += n
	s.at(depth).Pruned += n
}

func (s *Stats) bumpDecomposition(depth int, won bool) {
	s.Decompositions++
	s.at(depth).Decompositions++
	if won {
		s.DecompositionsWon++
		s.at(depth).DecompositionsWon++
	}
}

func (s *Stats) bumpShrunk(depth int, cellsRemoved int) {
	s.Shrunk++
	s.at(depth).Shrunk++
	s.CellsRemoved += uint64(cellsRemoved)
	s.at(depth).CellsRemoved += uint64(cellsRemoved)
}
