// Package vc implements virtual connections between same-color groups:
// semi-connections (a single empty carrier cell that completes the
// link) and full connections (a carrier no single opposing reply can
// exhaust). Full H-search/AND-OR virtual-connection composition is out
// of scope; this package is a minimal reference Builder — direct
// adjacency semis and bridge-rule fulls — wired behind the same
// interface a fuller implementation would satisfy, so callers never
// need to know which one they're holding.
package vc

import (
	"github.com/hexsolve/hexsolve/internal/cellset"
	"github.com/hexsolve/hexsolve/internal/hexcore"
)

// Connection is one proven virtual connection between two group
// captains (which may be edge sentinels) of the same color.
type Connection struct {
	A, B    hexcore.Point
	Color   hexcore.Color
	Carrier cellset.Set // empty cells the connection depends on
	Full    bool        // false = semi-connection, true = full connection
}

// Builder is the contract HexBoard composes against: build a fresh set
// of connections for a board, then track incremental fillin without a
// full rebuild where possible, supporting undo for search backtracking.
type Builder interface {
	// Build recomputes every connection from scratch against the
	// current board/groups state.
	Build()

	// AddFilled notifies the builder that p was just filled with c (a
	// move or an ICE fillin), pushing a restore point consumable by
	// Revert.
	AddFilled(p hexcore.Point, c hexcore.Color)

	// Revert undoes the most recent AddFilled, restoring the
	// connection set to what it was before.
	Revert()

	// WinningSemis returns every semi-connection directly linking
	// color's two edges: each one's single carrier cell is an
	// immediate winning move for color.
	WinningSemis(color hexcore.Color) []Connection

	// DecompositionBoundary looks for a single empty cell whose
	// removal disconnects every remaining path between color's two
	// edges, returning it (and ok=true) if found.
	DecompositionBoundary(color hexcore.Color) (hexcore.Point, bool)
}
