package posdb

import (
	"testing"

	"github.com/hexsolve/hexsolve/internal/cellset"
	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/tt"
)

func TestRecordRoundTrip(t *testing.T) {
	g := hexcore.NewGeometry(5, 5)
	proof := cellset.Of(g, g.PointAt(0, 0), g.PointAt(2, 2), g.PointAt(4, 4))

	rec := record{
		data:  tt.DfsData{Win: true, NumMoves: 11, BestMove: g.PointAt(2, 2), NumStates: 9001},
		proof: proof.Slice(),
	}
	raw := encodeRecord(rec)
	got, err := decodeRecord(raw)
	if err != nil {
		t.Fatalf("decodeRecord: %v", err)
	}
	if got.data != rec.data {
		t.Fatalf("expected %+v, got %+v", rec.data, got.data)
	}
	if len(got.proof) != len(rec.proof) {
		t.Fatalf("expected proof len %d, got %d", len(rec.proof), len(got.proof))
	}
	for i := range rec.proof {
		if got.proof[i] != rec.proof[i] {
			t.Fatalf("proof[%d]: expected %v, got %v", i, rec.proof[i], got.proof[i])
		}
	}
}

func TestRecordRoundTripNoProof(t *testing.T) {
	rec := record{data: tt.DfsData{Win: false, NumMoves: 0, BestMove: hexcore.NoPoint, NumStates: 1}}
	raw := encodeRecord(rec)
	got, err := decodeRecord(raw)
	if err != nil {
		t.Fatalf("decodeRecord: %v", err)
	}
	if got.data != rec.data || len(got.proof) != 0 {
		t.Fatalf("expected %+v with no proof, got %+v (proof len %d)", rec.data, got.data, len(got.proof))
	}
}

func TestPositionDBStoreAndProbe(t *testing.T) {
	g := hexcore.NewGeometry(5, 5)
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	data := tt.DfsData{Win: true, NumMoves: 4, BestMove: g.PointAt(1, 1), NumStates: 17}
	proof := cellset.Of(g, g.PointAt(1, 1), g.PointAt(3, 3))
	if err := db.Store(42, data, proof); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, gotProof, ok := db.Probe(42, g)
	if !ok {
		t.Fatalf("expected a hit after Store")
	}
	if got != data {
		t.Fatalf("expected %+v, got %+v", data, got)
	}
	if !gotProof.Equal(proof) {
		t.Fatalf("expected proof %+v, got %+v", proof.Slice(), gotProof.Slice())
	}
}

func TestPositionDBProbeMiss(t *testing.T) {
	g := hexcore.NewGeometry(5, 5)
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if _, _, ok := db.Probe(999, g); ok {
		t.Fatalf("expected a miss on an empty database")
	}
}

func TestSolverDBFallsBackToDB(t *testing.T) {
	g := hexcore.NewGeometry(5, 5)
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	sdb := NewSolverDB(tt.New(64), db, g)
	data := tt.DfsData{Win: true, NumMoves: 2, BestMove: g.PointAt(0, 0), NumStates: 3}
	if err := sdb.Store(7, data, cellset.Set{}); err != nil {
		t.Fatalf("Store: %v", err)
	}

	// Fresh table sharing the same DB should still find the record.
	sdb2 := NewSolverDB(tt.New(64), db, g)
	got, _, ok := sdb2.Probe(7)
	if !ok {
		t.Fatalf("expected SolverDB to fall back to the on-disk database")
	}
	if got != data {
		t.Fatalf("expected %+v, got %+v", data, got)
	}
}

func TestCanonicalKeyPicksSmaller(t *testing.T) {
	if CanonicalKey(5, 3) != 3 {
		t.Fatalf("expected CanonicalKey to pick the smaller hash")
	}
	if CanonicalKey(3, 5) != 3 {
		t.Fatalf("expected CanonicalKey to pick the smaller hash")
	}
}
