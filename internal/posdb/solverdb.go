package posdb

import (
	"github.com/hexsolve/hexsolve/internal/cellset"
	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/tt"
)

// SolverDB composes an in-memory Table with an optional on-disk
// PositionDB: spec.md §4.3's "SolverDB wrapper. Tries TT first, then
// DB. On store, writes to both." DB may be nil, in which case SolverDB
// behaves exactly like a bare Table — spec.md §4.3: "the solver accepts
// a null store."
type SolverDB struct {
	Table *tt.Table
	DB    *PositionDB
	g     *hexcore.Geometry
}

// NewSolverDB returns a SolverDB over table, optionally backed by db
// (pass nil for an in-memory-only solve). g is required to reconstruct
// proof sets read back from db.
func NewSolverDB(table *tt.Table, db *PositionDB, g *hexcore.Geometry) *SolverDB {
	return &SolverDB{Table: table, DB: db, g: g}
}

// Probe tries the in-memory table first, falling back to the on-disk
// database on a miss. A DB hit is not promoted back into the table:
// callers that want that should Store it themselves, keeping the
// promotion policy at the solver layer rather than buried here.
func (s *SolverDB) Probe(hash uint64) (tt.DfsData, cellset.Set, bool) {
	if data, ok := s.Table.Probe(hash); ok {
		return data, cellset.Set{}, true
	}
	if s.DB == nil {
		return tt.DfsData{}, cellset.Set{}, false
	}
	return s.DB.Probe(hash, s.g)
}

// Store writes data (with an optional proof) to the in-memory table
// and, if present, the on-disk database.
func (s *SolverDB) Store(hash uint64, data tt.DfsData, proof cellset.Set) error {
	s.Table.Store(hash, data)
	if s.DB == nil {
		return nil
	}
	return s.DB.Store(hash, data, proof)
}
