package solver

import (
	"log"
	"time"

	"github.com/hexsolve/hexsolve/internal/ordering"
)

// Config threads every solver tuning knob through the constructor
// explicitly, rather than through global mutable state.
type Config struct {
	// DepthLimit bounds recursion depth; zero means unlimited.
	DepthLimit int
	// TimeLimit bounds wall-clock search time; zero means unlimited.
	TimeLimit time.Duration

	// ProgressDepth and UpdateDepth are stored (the shell's param_solver
	// sets them) but the search does not read them; it reports no
	// search progress to Logger.
	ProgressDepth int
	UpdateDepth   int

	// UseDecompositions enables VC-decomposition dispatch.
	UseDecompositions bool
	// ShrinkProofs enables proof shrinking after a WIN/LOSS.
	ShrinkProofs bool
	// BackupICEInfo enables the post-move mustplay recompute-and-prune
	// step in the main move loop.
	BackupICEInfo bool
	// RootAgain forces the root position to re-search even if the TT
	// already holds an entry for it, for timing experiments.
	RootAgain bool

	// OrderingFlags is passed straight through to ordering.Scorer.
	OrderingFlags ordering.Flags

	// Logger receives invariant-violation/DB-I/O/pattern-file-missing
	// diagnostics. Defaults to log.Default() if nil -- the standard log
	// package, not a third-party logging framework.
	Logger *log.Logger
}

// DefaultConfig enables every optional rule, matching ice.DefaultConfig's
// "callers pare it down for speed" posture.
func DefaultConfig() Config {
	return Config{
		UseDecompositions: true,
		ShrinkProofs:      true,
		BackupICEInfo:     true,
		OrderingFlags:     ordering.DefaultFlags(),
		Logger:            log.Default(),
	}
}
