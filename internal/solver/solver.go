// Package solver implements the mustplay-driven DFS core: terminal/
// transposition detection, decomposition dispatch, mustplay
// computation, move ordering, and proof construction/shrinking, with
// search statistics.
//
// Shaped as a TT-probe-before-recursion, make/recurse/unmake loop with
// a periodic abort-flag poll (s.nodes&4095==0), adapted from a scored
// negamax returning an alpha-beta bound to a boolean WIN/LOSS mustplay
// search that returns a proof set instead of a principal variation.
package solver

import (
	"errors"
	"fmt"
	"time"

	"github.com/hexsolve/hexsolve/internal/cellset"
	"github.com/hexsolve/hexsolve/internal/hexboard"
	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/ordering"
	"github.com/hexsolve/hexsolve/internal/posdb"
	"github.com/hexsolve/hexsolve/internal/tt"
)

// Solver owns one HexBoard and drives solve_state recursion against it.
// It holds no game-tree state of its own beyond the board, the shared
// stores, and this solve's statistics -- everything else is
// reconstructed from hb at each node.
type Solver struct {
	hb     *hexboard.HexBoard
	store  *posdb.SolverDB
	proofs *tt.ProofStore
	scorer *ordering.Scorer
	cfg    Config

	stats    Stats
	aborted  bool
	deadline time.Time
	nodes    uint64
	dbFailed bool
	lastErr  error
}

// New returns a Solver over hb, storing solved positions in store
// (in-memory table, optionally backed by an on-disk database -- see
// internal/posdb.SolverDB) and proofs (may be nil to skip proof
// persistence). scorer drives move ordering; cfg.Logger defaults to
// log.Default() if left nil.
func New(hb *hexboard.HexBoard, store *posdb.SolverDB, proofs *tt.ProofStore, scorer *ordering.Scorer, cfg Config) *Solver {
	if cfg.Logger == nil {
		cfg.Logger = DefaultConfig().Logger
	}
	return &Solver{hb: hb, store: store, proofs: proofs, scorer: scorer, cfg: cfg}
}

// Stats returns the statistics accumulated by the most recent Solve.
func (s *Solver) Stats() Stats { return s.stats }

// LastError returns the invariant violation (wrapping ErrInvariantViolation)
// that aborted the most recent Solve, or nil if it ran to completion
// cleanly. Callers that need the search's result to be trustworthy
// (rather than merely Unknown) should check this after every Solve.
func (s *Solver) LastError() error { return s.lastErr }

// Solve is the top-level entry point: solve_state(color_to_play),
// resetting per-solve state first.
func (s *Solver) Solve(color hexcore.Color) (Result, cellset.Set) {
	s.stats = Stats{}
	s.aborted = false
	s.nodes = 0
	s.lastErr = nil
	if s.cfg.TimeLimit > 0 {
		s.deadline = time.Now().Add(s.cfg.TimeLimit)
	} else {
		s.deadline = time.Time{}
	}
	return s.solveState(color, 0, s.cfg.RootAgain)
}

// Abort latches the external abort flag: every recursive call still in
// flight returns Unknown on its next entry.
func (s *Solver) Abort() { s.aborted = true }

func (s *Solver) checkAbort(depth int) bool {
	s.nodes++
	if s.aborted {
		return true
	}
	if s.nodes&4095 == 0 {
		if !s.deadline.IsZero() && time.Now().After(s.deadline) {
			s.aborted = true
			return true
		}
	}
	if s.cfg.DepthLimit > 0 && depth > s.cfg.DepthLimit {
		s.aborted = true
		return true
	}
	return false
}

// solveState is the recursive search skeleton. forceRoot skips the
// transposition lookup (used at depth 0 when Config.RootAgain is set).
func (s *Solver) solveState(color hexcore.Color, depth int, forceRoot bool) (Result, cellset.Set) {
	if s.checkAbort(depth) {
		return Unknown, cellset.Set{}
	}
	s.stats.bumpExplored(depth)

	if res, proof, terminal := s.handleLeaf(color); terminal {
		return res, proof
	}

	hash := s.hb.Board.Hash()
	if !forceRoot {
		if data, dbProof, ok := s.store.Probe(hash); ok {
			proof := dbProof
			if proof.IsEmpty() {
				proof = s.loadProof(hash)
			}
			if data.Win {
				return Win, proof
			}
			return Loss, proof
		}
	}

	if s.cfg.UseDecompositions {
		if boundary, ok := s.hb.Decompose(color); ok {
			return s.solveDecomposition(color, boundary, depth)
		}
	}

	vcMustplay := ordering.Mustplay(s.hb, color)
	candidates := s.restrictByICE(vcMustplay)

	order := s.scorer.Order(s.hb, color, candidates.Slice())
	s.stats.bumpMovesToConsider(depth, uint64(len(order.Order)))

	opp := color.Other()
	accumulated := cellset.New(s.hb.Geometry)
	expanded := uint64(0)

	remaining := order.Order
	for len(remaining) > 0 {
		m := remaining[0]
		remaining = remaining[1:]

		if s.checkAbort(depth) {
			return Unknown, cellset.Set{}
		}
		if err := s.hb.PlayMove(m, color); err != nil {
			continue
		}
		expanded++

		childRes, childProof := s.solveState(opp, depth+1, false)
		if err := s.hb.UndoMove(); err != nil {
			// PlayMove above pushed exactly one history frame, so UndoMove
			// failing here means the board/history state has drifted from
			// what solveState assumes.
			s.invariantViolation(depth, err)
			return Unknown, cellset.Set{}
		}

		if childRes == Unknown {
			return Unknown, cellset.Set{}
		}

		if childRes == Loss {
			// The opponent loses at the resulting position: this move
			// wins for color.
			s.stats.bumpExpanded(depth, expanded)
			s.stats.bumpWinningExpanded(depth, expanded)
			s.stats.bumpBranchesToWin(depth)

			proof := cellset.New(s.hb.Geometry)
			proof.Add(m)
			proof.Or(childProof)
			if s.cfg.ShrinkProofs {
				proof = s.shrinkProof(proof, color, depth)
			}
			s.storeResult(hash, true, depth, m, proof)
			return Win, proof
		}

		// childRes == Win for the opponent: this move loses for color.
		accumulated.Or(childProof)

		if s.cfg.BackupICEInfo && len(remaining) > 0 {
			stillLive := s.restrictByICE(ordering.Mustplay(s.hb, color))
			remaining = pruneToSet(remaining, stillLive)
		}
	}

	s.stats.bumpExpanded(depth, expanded)
	s.stats.bumpPruned(depth, uint64(candidates.PopCount())-expanded)

	proof := cellset.New(s.hb.Geometry)
	proof.Or(accumulated)
	proof.Or(vcMustplay)
	s.storeResult(hash, false, depth, hexcore.NoPoint, proof)
	return Loss, proof
}

// pruneToSet drops every not-yet-tried candidate in order that fell
// outside the freshly recomputed mustplay set live: recompute mustplay
// after the move and prune later candidates that fall outside it.
func pruneToSet(order []hexcore.Point, live cellset.Set) []hexcore.Point {
	out := order[:0]
	for _, p := range order {
		if live.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Solver) storeResult(hash uint64, win bool, depth int, bestMove hexcore.Point, proof cellset.Set) {
	data := tt.DfsData{
		Win:       win,
		NumMoves:  uint16(depth),
		BestMove:  bestMove,
		NumStates: s.nodes,
	}
	if err := s.store.Store(hash, data, proof); err != nil {
		s.handleDbError(err)
	}
	if s.proofs != nil {
		s.proofs.Store(hash, proof)
	}
}

// invariantViolation logs a debug-mode consistency failure once via
// cfg.Logger and aborts the current solve, returning Unknown up the
// recursion instead of continuing on state that's no longer trustworthy.
func (s *Solver) invariantViolation(depth int, cause error) {
	s.aborted = true
	s.lastErr = fmt.Errorf("%w (depth %d): %v", ErrInvariantViolation, depth, cause)
	s.cfg.Logger.Print(s.lastErr)
}

// handleDbError logs a persistent-store I/O failure once and disables
// the on-disk database for the rest of this solve, per spec.md §7: the
// solver continues in-memory-only rather than failing the search.
func (s *Solver) handleDbError(err error) {
	if s.dbFailed || !errors.Is(err, posdb.ErrDbIO) {
		return
	}
	s.dbFailed = true
	s.cfg.Logger.Printf("%v: disabling on-disk position database for the rest of this solve", err)
	if s.store != nil {
		s.store.DB = nil
	}
}

func (s *Solver) loadProof(hash uint64) cellset.Set {
	if s.proofs == nil {
		return cellset.New(s.hb.Geometry)
	}
	if p, ok := s.proofs.Load(hash); ok {
		return p
	}
	return cellset.New(s.hb.Geometry)
}

// handleLeaf runs the terminal checks: a connecting chain for either
// color, or the degenerate all-cells-filled case where neither color
// has connected (which should not arise in a correctly-played Hex
// position, since the board filling always resolves a winner, but is
// handled defensively: no empties remain => LOSS for the side to move).
func (s *Solver) handleLeaf(color hexcore.Color) (Result, cellset.Set, bool) {
	opp := color.Other()
	if proof, ok := s.chainProof(color); ok {
		return Win, proof, true
	}
	if proof, ok := s.chainProof(opp); ok {
		return Loss, proof, true
	}
	if s.hb.Board.Empty().IsEmpty() {
		return Loss, cellset.New(s.hb.Geometry), true
	}
	return Unknown, cellset.Set{}, false
}

// chainProof reports whether color's two edges are already connected,
// returning the interior stones of the connecting chain as the proof.
func (s *Solver) chainProof(color hexcore.Color) (cellset.Set, bool) {
	g := s.hb.Geometry
	var a, b hexcore.Point
	if color == hexcore.Black {
		a, b = g.North(), g.South()
	} else {
		a, b = g.East(), g.West()
	}
	if !s.hb.Groups.Connected(a, b) {
		return cellset.Set{}, false
	}
	members := s.hb.Groups.Members(a)
	proof := cellset.New(g)
	members.Each(func(p hexcore.Point) {
		if !g.IsEdge(p) {
			proof.Add(p)
		}
	})
	return proof, true
}

// restrictByICE intersects the mustplay set with the empties minus
// ICE-dead/captured/vulnerable-where-killer-is-available cells.
// vcMustplay is the raw union of the opponent's winning-semi carriers
// (ordering.Mustplay); an empty vcMustplay means no winning semi exists
// yet, so the side to move is unrestricted and every empty cell is a
// candidate.
func (s *Solver) restrictByICE(vcMustplay cellset.Set) cellset.Set {
	g := s.hb.Geometry
	base := vcMustplay
	if base.IsEmpty() {
		base = s.hb.Board.Empty()
	}

	excluded := cellset.New(g)
	excluded.Or(s.hb.Inferior.Dead)
	excluded.Or(s.hb.Inferior.Captured[0])
	excluded.Or(s.hb.Inferior.Captured[1])
	for p, witnesses := range s.hb.Inferior.Vulnerable {
		for _, w := range witnesses {
			if s.hb.Board.IsEmpty(w.Killer) {
				excluded.Add(p)
				break
			}
		}
	}

	out := cellset.New(g)
	out.Difference(base, excluded)
	out.And(s.hb.Board.Empty())
	return out
}
