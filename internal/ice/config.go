package ice

// Config toggles the optional, more expensive ICE rules. The cheap
// dead+captured loop always runs; everything here trades search-tree
// shrinkage for per-node cost, mirroring the way the search's own
// Config (internal/solver) exposes knobs for move-ordering extras
// rather than hard-coding every heuristic on.
type Config struct {
	FindPermanentlyInferior bool
	FindReversible          bool
	FindDominated           bool
	UnreachableFillin       bool
	BackupOpponentDead      bool
}

// DefaultConfig enables every rule; callers pare it down for speed.
func DefaultConfig() Config {
	return Config{
		FindPermanentlyInferior: true,
		FindReversible:          true,
		FindDominated:           true,
		UnreachableFillin:       true,
		BackupOpponentDead:      true,
	}
}
