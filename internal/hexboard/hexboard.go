// Package hexboard composes StoneBoard, Groups, pattern.State,
// InferiorCells, and a pair of VC builders into the single mutable
// state object the solver plays moves against, with move/undo history.
// Shaped as MakeMove/UnmakeMove over an UndoInfo-style snapshot
// captured before each mutation and consumed by unmake, with a
// scratch-board-from-snapshot restore.
package hexboard

import (
	"errors"

	"github.com/hexsolve/hexsolve/internal/groups"
	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/ice"
	"github.com/hexsolve/hexsolve/internal/pattern"
	"github.com/hexsolve/hexsolve/internal/stoneboard"
	"github.com/hexsolve/hexsolve/internal/vc"
)

// ErrCellOccupied is returned by PlayMove/PlayStones/AddStones when a
// target cell already holds a stone.
var ErrCellOccupied = errors.New("hexboard: cell already occupied")

// ErrInvalidMove is returned by PlayMove/PlayStones/AddStones when asked
// to place a color other than Black or White.
var ErrInvalidMove = errors.New("hexboard: move color must be Black or White")

// ErrNoHistory is returned by UndoMove when there is nothing to undo.
var ErrNoHistory = errors.New("hexboard: no move to undo")

// PlayedStone is one (cell, color) pair, the unit PlayStones/AddStones
// take.
type PlayedStone struct {
	Point hexcore.Point
	Color hexcore.Color
}

// HistoryFrame is the restore point pushed by PlayMove/PlayStones and
// popped by UndoMove.
type HistoryFrame struct {
	boardSnapshot *stoneboard.StoneBoard
	inferior      *ice.InferiorCells
	toPlay        hexcore.Color
}

// HexBoard is the composed, mutable game-position state.
type HexBoard struct {
	Geometry *hexcore.Geometry
	Board    *stoneboard.StoneBoard
	Groups   *groups.Groups
	Patterns *pattern.State
	Inferior *ice.InferiorCells
	ToPlay   hexcore.Color

	ice *ice.Engine
	vc  [2]vc.Builder // indexed by colorSlot(Black)=0, White=1

	history []*HistoryFrame
}

func colorSlot(c hexcore.Color) int {
	if c == hexcore.White {
		return 1
	}
	return 0
}

// New returns a HexBoard over an empty board of the given geometry,
// with ICE run under cfg and the reference DirectBuilder used for both
// colors' virtual connections.
func New(g *hexcore.Geometry, cfg ice.Config) *HexBoard {
	b := stoneboard.New(g)
	gr := groups.New(g)
	gr.Recompute(b)
	table := pattern.NewTable()
	ps := pattern.NewState(table, g)
	ps.Refresh(b)

	hb := &HexBoard{
		Geometry: g,
		Board:    b,
		Groups:   gr,
		Patterns: ps,
		Inferior: ice.New(g),
		ToPlay:   hexcore.Black,
		ice:      ice.NewEngine(table, cfg),
	}
	hb.vc[0] = vc.NewDirectBuilder(g, b, gr)
	hb.vc[1] = vc.NewDirectBuilder(g, b, gr)
	hb.ComputeAll()
	return hb
}

// ComputeAll refreshes Groups, Patterns, Inferior, and both VC builders
// against the current Board from scratch. Exposed for callers that
// mutate Board directly (e.g. a position loader) and need every derived
// view brought back in sync.
func (hb *HexBoard) ComputeAll() {
	hb.Groups.Recompute(hb.Board)
	hb.Patterns.Refresh(hb.Board)
	hb.ice.ComputeFillin(hb.Board, hb.Groups, hb.Patterns, hb.Inferior)
	hb.backupOpponentDead()
	hb.vc[0].Build()
	hb.vc[1].Build()
}

// VC returns the virtual-connection builder for color.
func (hb *HexBoard) VC(color hexcore.Color) vc.Builder {
	return hb.vc[colorSlot(color)]
}

// PatternTable returns the compiled pattern table ICE matches against,
// so callers outside this package (proof shrinking) can run a
// throwaway ICE pass of their own against a scratch board.
func (hb *HexBoard) PatternTable() *pattern.Table {
	return hb.ice.Table
}

// ICEConfig returns the Config this board's ICE engine runs under.
func (hb *HexBoard) ICEConfig() ice.Config {
	return hb.ice.Config
}

func (hb *HexBoard) snapshot() *HistoryFrame {
	return &HistoryFrame{
		boardSnapshot: hb.Board.Copy(),
		inferior:      hb.Inferior.Clone(hb.Geometry),
		toPlay:        hb.ToPlay,
	}
}

// recomputeAfterMutation refreshes every derived view after stones were
// placed directly on Board. pushVC controls whether each VC builder
// records one restorable snapshot: exactly one push per HexBoard history
// frame keeps the builders' internal undo stacks in lockstep with
// HexBoard.history regardless of how many stones the batch placed.
func (hb *HexBoard) recomputeAfterMutation(filled []PlayedStone, pushVC bool) {
	hb.Groups.Recompute(hb.Board)
	hb.Patterns.Refresh(hb.Board)
	hb.ice.ComputeFillin(hb.Board, hb.Groups, hb.Patterns, hb.Inferior)
	if !pushVC {
		hb.vc[0].Build()
		hb.vc[1].Build()
		return
	}
	var p hexcore.Point
	var c hexcore.Color
	if len(filled) > 0 {
		p, c = filled[0].Point, filled[0].Color
	}
	hb.vc[0].AddFilled(p, c)
	hb.vc[1].AddFilled(p, c)
}

// PlayMove plays one stone of c at p, advances ToPlay to the other
// color, and pushes a history frame consumable by UndoMove.
func (hb *HexBoard) PlayMove(p hexcore.Point, c hexcore.Color) error {
	if !c.IsPlayer() {
		return ErrInvalidMove
	}
	if !hb.Board.IsEmpty(p) {
		return ErrCellOccupied
	}
	frame := hb.snapshot()
	hb.Board.Play(p, c)
	hb.recomputeAfterMutation([]PlayedStone{{Point: p, Color: c}}, true)
	hb.history = append(hb.history, frame)
	hb.ToPlay = c.Other()
	hb.backupOpponentDead()
	return nil
}

// PlayStones plays every stone in stones as a single atomic move,
// pushing one history frame for the whole batch. ToPlay advances to the
// other color of the last stone played.
func (hb *HexBoard) PlayStones(stones []PlayedStone) error {
	for _, s := range stones {
		if !s.Color.IsPlayer() {
			return ErrInvalidMove
		}
		if !hb.Board.IsEmpty(s.Point) {
			return ErrCellOccupied
		}
	}
	frame := hb.snapshot()
	for _, s := range stones {
		hb.Board.Play(s.Point, s.Color)
	}
	hb.recomputeAfterMutation(stones, true)
	hb.history = append(hb.history, frame)
	if len(stones) > 0 {
		hb.ToPlay = stones[len(stones)-1].Color.Other()
	}
	hb.backupOpponentDead()
	return nil
}

// AddStones places stones as permanent position setup: no history frame
// is recorded (UndoMove cannot remove them) and ToPlay is left
// untouched. Intended for initializing a position, not for search.
func (hb *HexBoard) AddStones(stones []PlayedStone) error {
	for _, s := range stones {
		if !s.Color.IsPlayer() {
			return ErrInvalidMove
		}
		if !hb.Board.IsEmpty(s.Point) {
			return ErrCellOccupied
		}
	}
	for _, s := range stones {
		hb.Board.Play(s.Point, s.Color)
	}
	hb.recomputeAfterMutation(stones, false)
	hb.backupOpponentDead()
	return nil
}

// UndoMove reverts the most recent PlayMove/PlayStones, restoring the
// board, recomputing every derived view, and merging the popped
// InferiorCells into the restored one so inferior-cell facts proved at
// that position aren't silently dropped if ICE's own rerun misses them
// (e.g. because a config flag was toggled mid-search).
func (hb *HexBoard) UndoMove() error {
	n := len(hb.history)
	if n == 0 {
		return ErrNoHistory
	}
	frame := hb.history[n-1]
	hb.history = hb.history[:n-1]

	hb.Board.CopyFrom(frame.boardSnapshot)
	hb.Groups.Recompute(hb.Board)
	hb.Patterns.Refresh(hb.Board)
	hb.ice.ComputeFillin(hb.Board, hb.Groups, hb.Patterns, hb.Inferior)
	hb.Inferior.Merge(frame.inferior)
	hb.vc[0].Revert()
	hb.vc[1].Revert()
	hb.ToPlay = frame.toPlay
	hb.backupOpponentDead()
	return nil
}

// backupOpponentDead runs the optional backup-opponent-dead ICE pass
// against the current (already-finalized) ToPlay, folding any newly
// found vulnerable witnesses into Inferior. Called after every mutation
// once ToPlay reflects the resulting position, not the one that caused it.
func (hb *HexBoard) backupOpponentDead() {
	hb.ice.BackupOpponentDead(hb.Board, hb.Groups, hb.Patterns, hb.Inferior, hb.ToPlay)
}

// Decompose asks color's VC builder for a single-cell boundary that
// splits the remaining empty region so no path between color's edges
// survives its removal. Solver callers use this to split a position
// into independent subproblems.
func (hb *HexBoard) Decompose(color hexcore.Color) (hexcore.Point, bool) {
	return hb.VC(color).DecompositionBoundary(color)
}

// HistoryDepth returns the number of pending undo frames.
func (hb *HexBoard) HistoryDepth() int {
	return len(hb.history)
}
