package posdb

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/hexsolve/hexsolve/internal/cellset"
	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/tt"
)

// ErrDbIO wraps every failure Open, Store and Compact get from the
// underlying badger store. Probe has no error return: a failed read
// comes back as a miss. Callers use errors.Is(err, ErrDbIO) to decide
// whether to degrade to running without the on-disk database.
var ErrDbIO = errors.New("posdb: I/O error")

// PositionDB is the persistent, badger-backed counterpart to
// internal/tt.Table: same DfsData-keyed-by-hash semantics, durable
// across process restarts. Opened with badger's default single-writer
// exclusive lock.
type PositionDB struct {
	db *badger.DB
}

// Open opens (creating if absent) a PositionDB rooted at dir.
func Open(dir string) (*PositionDB, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // silence badger's own logging
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("posdb: open %s: %w: %w", dir, ErrDbIO, err)
	}
	return &PositionDB{db: db}, nil
}

// Close releases the database's file lock.
func (p *PositionDB) Close() error {
	if p.db == nil {
		return nil
	}
	return p.db.Close()
}

func keyBytes(hash uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], hash)
	return b[:]
}

// Probe looks up hash, returning its DfsData and proof (if one was
// stored alongside it) reconstructed against the caller's Geometry —
// PositionDB stores only point indices, not a self-describing set, so
// the caller's board geometry is required to rebuild one.
func (p *PositionDB) Probe(hash uint64, g *hexcore.Geometry) (tt.DfsData, cellset.Set, bool) {
	var rec record
	found := false
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyBytes(hash))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			decoded, err := decodeRecord(val)
			if err != nil {
				return err
			}
			rec = decoded
			found = true
			return nil
		})
	})
	if err != nil || !found {
		return tt.DfsData{}, cellset.Set{}, false
	}
	proof := cellset.New(g)
	for _, pt := range rec.proof {
		proof.Add(pt)
	}
	return rec.data, proof, true
}

// Store writes data under hash, with an optional proof. The file is
// logically append-only (badger's own LSM-tree storage); Compact runs
// a value-log GC pass to reclaim space from superseded records.
func (p *PositionDB) Store(hash uint64, data tt.DfsData, proof cellset.Set) error {
	rec := record{data: data}
	if proof.PopCount() > 0 {
		rec.proof = proof.Slice()
	}
	raw := encodeRecord(rec)
	if err := p.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keyBytes(hash), raw)
	}); err != nil {
		return fmt.Errorf("posdb: store %d: %w: %w", hash, ErrDbIO, err)
	}
	return nil
}

// Compact runs badger's value-log garbage collection, reclaiming space
// from records superseded by later Store calls to the same key.
// discardRatio follows badger's own convention (0.5 is a reasonable
// default): a value log file is rewritten once that fraction of its
// bytes is garbage.
func (p *PositionDB) Compact(discardRatio float64) error {
	err := p.db.RunValueLogGC(discardRatio)
	if err == nil || err == badger.ErrNoRewrite {
		return nil
	}
	return fmt.Errorf("posdb: compact: %w: %w", ErrDbIO, err)
}

// CanonicalKey picks the smaller of a position's hash and its
// symmetric counterpart (e.g. the hash of the 180°-rotated board, which
// preserves each color's pair of edges and is therefore always a safe
// symmetry to fold together when declared safe). Callers compute both
// hashes; this just picks the canonical representative.
func CanonicalKey(hash, symmetricHash uint64) uint64 {
	if symmetricHash < hash {
		return symmetricHash
	}
	return hash
}
