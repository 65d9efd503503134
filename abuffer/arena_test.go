package abuffer

import "testing"

func TestArenaAllocFreeReuse(t *testing.T) {
	a := NewArena()

	idx := a.Alloc()
	if a.Stats().ActiveFragments != 1 {
		t.Fatalf("after one Alloc, ActiveFragments = %d, want 1", a.Stats().ActiveFragments)
	}

	a.Free(idx)
	if a.Stats().ActiveFragments != 0 {
		t.Fatalf("after Free, ActiveFragments = %d, want 0", a.Stats().ActiveFragments)
	}

	reused := a.Alloc()
	if reused != idx {
		t.Errorf("Alloc after Free did not reuse the freed index: got %d, want %d", reused, idx)
	}
}

func TestArenaGrowsAcrossChunks(t *testing.T) {
	a := NewArena()
	for i := 0; i < ChunkSize+1; i++ {
		a.Alloc()
	}
	if got := a.Stats().TotalChunks; got != 2 {
		t.Errorf("TotalChunks = %d, want 2 after allocating past one chunk", got)
	}
}

func TestArenaPeakTracksHighWaterMark(t *testing.T) {
	a := NewArena()
	var idxs []int32
	for i := 0; i < 10; i++ {
		idxs = append(idxs, a.Alloc())
	}
	for _, idx := range idxs {
		a.Free(idx)
	}
	if got := a.Stats().PeakFragments; got != 10 {
		t.Errorf("PeakFragments = %d, want 10", got)
	}
	if got := a.Stats().ActiveFragments; got != 0 {
		t.Errorf("ActiveFragments = %d, want 0", got)
	}
}

func TestArenaResetKeepsOneChunk(t *testing.T) {
	a := NewArena()
	for i := 0; i < ChunkSize*3; i++ {
		a.Alloc()
	}
	a.Reset()

	stats := a.Stats()
	if stats.TotalChunks != 1 {
		t.Errorf("TotalChunks after Reset = %d, want 1", stats.TotalChunks)
	}
	if stats.ActiveFragments != 0 || stats.PeakFragments != 0 {
		t.Errorf("stats after Reset = %+v, want all zero", stats)
	}
}

func TestArenaDisjointIndices(t *testing.T) {
	a := NewArena()
	seen := make(map[int32]bool)
	for i := 0; i < 5000; i++ {
		idx := a.Alloc()
		if seen[idx] {
			t.Fatalf("Alloc returned a duplicate live index %d at iteration %d", idx, i)
		}
		seen[idx] = true
	}
}
