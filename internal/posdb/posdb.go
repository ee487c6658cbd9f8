// Package posdb implements the persistent solved-position database:
// spec.md §4.3's "PositionDB<DfsData>", an optional on-disk counterpart
// to internal/tt's in-memory table, plus SolverDB, the TT-then-DB
// wrapper the solver actually talks to.
//
// Grounded on the teacher's internal/storage.Storage (badger Open/View/
// Update closures, opts.Logger = nil to silence badger's own logging)
// for the embedded-KV wrapper shape, and internal/book.Book's packed
// binary record decode loop (fixed-field binary.BigEndian reads over an
// io.Reader) for the record codec shape, generalized here to
// varint-per-field per spec.md §6 ("a record per key of (hash, win,
// moves, bestMove, proofBitset?) in a packed binary layout").
package posdb

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/tt"
)

// record is the packed on-disk payload for one solved position:
// DfsData plus an optional proof set, varint-per-field so a record with
// no proof costs only a few bytes. The proof is stored as a sorted,
// delta-encoded list of point indices rather than raw bitset words —
// proofs are typically a small fraction of the board's cells, so a
// sparse list is far more compact than serializing every word.
type record struct {
	data  tt.DfsData
	proof []hexcore.Point // nil if no proof was stored
}

func encodeRecord(r record) []byte {
	var buf bytes.Buffer
	var win byte
	if r.data.Win {
		win = 1
	}
	buf.WriteByte(win)

	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], uint64(r.data.NumMoves))
	buf.Write(tmp[:n])
	n = binary.PutVarint(tmp[:], int64(r.data.BestMove))
	buf.Write(tmp[:n])
	n = binary.PutUvarint(tmp[:], r.data.NumStates)
	buf.Write(tmp[:n])

	n = binary.PutUvarint(tmp[:], uint64(len(r.proof)))
	buf.Write(tmp[:n])
	var prev hexcore.Point
	for _, p := range r.proof {
		n = binary.PutVarint(tmp[:], int64(p-prev))
		buf.Write(tmp[:n])
		prev = p
	}

	return buf.Bytes()
}

func decodeRecord(raw []byte) (record, error) {
	if len(raw) < 1 {
		return record{}, fmt.Errorf("posdb: truncated record")
	}
	r := reader{buf: raw[1:]}
	var rec record
	rec.data.Win = raw[0] != 0

	numMoves, err := r.uvarint()
	if err != nil {
		return record{}, err
	}
	rec.data.NumMoves = uint16(numMoves)

	bestMove, err := r.varint()
	if err != nil {
		return record{}, err
	}
	rec.data.BestMove = hexcore.Point(bestMove)

	numStates, err := r.uvarint()
	if err != nil {
		return record{}, err
	}
	rec.data.NumStates = numStates

	proofLen, err := r.uvarint()
	if err != nil {
		return record{}, err
	}
	if proofLen > 0 {
		rec.proof = make([]hexcore.Point, proofLen)
		var prev hexcore.Point
		for i := uint64(0); i < proofLen; i++ {
			delta, err := r.varint()
			if err != nil {
				return record{}, err
			}
			prev += hexcore.Point(delta)
			rec.proof[i] = prev
		}
	}
	return rec, nil
}

// reader is a small cursor over raw bytes, used instead of a
// bytes.Reader so uvarint/varint decoding can share one buffer slice
// without extra allocations per field.
type reader struct {
	buf []byte
}

func (r *reader) uvarint() (uint64, error) {
	v, n := binary.Uvarint(r.buf)
	if n <= 0 {
		return 0, fmt.Errorf("posdb: bad uvarint field")
	}
	r.buf = r.buf[n:]
	return v, nil
}

func (r *reader) varint() (int64, error) {
	v, n := binary.Varint(r.buf)
	if n <= 0 {
		return 0, fmt.Errorf("posdb: bad varint field")
	}
	r.buf = r.buf[n:]
	return v, nil
}
