package tt

import "testing"

func TestStoreAndProbeRoundTrip(t *testing.T) {
	table := New(1024)
	hash := uint64(0xdeadbeef12345678)
	data := DfsData{Win: true, NumMoves: 3, BestMove: 7, NumStates: 42}

	table.Store(hash, data)
	got, ok := table.Probe(hash)
	if !ok {
		t.Fatalf("expected a hit after Store")
	}
	if got != data {
		t.Fatalf("expected %+v, got %+v", data, got)
	}
}

func TestProbeMissOnEmptyTable(t *testing.T) {
	table := New(64)
	if _, ok := table.Probe(12345); ok {
		t.Fatalf("expected a miss on an empty table")
	}
}

func TestStoreRetainsMoreWorkInSameGeneration(t *testing.T) {
	table := New(1)
	hash := uint64(1) // any hash collides: only one slot

	table.Store(hash, DfsData{NumStates: 100})
	table.Store(hash, DfsData{NumStates: 10})

	got, _ := table.Probe(hash)
	if got.NumStates != 100 {
		t.Fatalf("expected same-generation store with less work to be rejected, got %+v", got)
	}
}

func TestNewGenerationAllowsOverwrite(t *testing.T) {
	table := New(1)
	hash := uint64(1)

	table.Store(hash, DfsData{NumStates: 100})
	table.NewGeneration()
	table.Store(hash, DfsData{NumStates: 10})

	got, _ := table.Probe(hash)
	if got.NumStates != 10 {
		t.Fatalf("expected new-generation store to overwrite regardless of work, got %+v", got)
	}
}

func TestSizeRoundsDownToPowerOfTwo(t *testing.T) {
	table := New(100)
	if table.Size() != 64 {
		t.Fatalf("expected 100 to round down to 64, got %d", table.Size())
	}
}

func TestProofStoreLoadMissesOnEmptyStore(t *testing.T) {
	ps := NewProofStore()
	if _, ok := ps.Load(1); ok {
		t.Fatalf("expected miss on empty ProofStore")
	}
}
