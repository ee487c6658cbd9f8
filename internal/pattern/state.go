package pattern

import (
	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/stoneboard"
)

// State is the view ICE consults for pattern matches at a cell. Patterns
// are cheap enough on boards of this scale (<=11x11) to match on demand
// against the current StoneBoard rather than maintain an incremental
// cache; Refresh exists so callers have a single place to point at a
// new board snapshot, keeping matches up to date after any mutation.
type State struct {
	table    *Table
	geometry *hexcore.Geometry
	board    *stoneboard.StoneBoard
}

// NewState returns a State bound to table and geometry. Call Refresh to
// attach the board to query against.
func NewState(table *Table, g *hexcore.Geometry) *State {
	return &State{table: table, geometry: g}
}

// Refresh points the state at the current board snapshot.
func (s *State) Refresh(b *stoneboard.StoneBoard) {
	s.board = b
}

// Matches returns every match of kind at cell for color (subject to
// collectAll short-circuiting).
func (s *State) Matches(cell hexcore.Point, color hexcore.Color, kind Kind, collectAll bool) []Match {
	if s.board == nil {
		return nil
	}
	return s.table.MatchAt(s.geometry, s.board, cell, color, kind, collectAll)
}
