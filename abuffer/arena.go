// Package abuffer implements the per-pixel fragment list used for
// order-independent transparency: a chunked free-list arena of fragment
// records plus one head index per framebuffer pixel, sorted ascending by
// depth.
package abuffer

import "log/slog"

// ChunkSize is the number of fragment records per arena chunk.
const ChunkSize = 4096

// nilIndex marks the end of a linked list (head pointer or next pointer).
const nilIndex = -1

// fragment is one shaded sample stored in the A-buffer: depth, premultiplied
// color, per-channel opacity, and the index of the next fragment at the
// same pixel (sorted ascending by z).
type fragment struct {
	z       float32
	color   [3]float32
	opacity [3]float32
	next    int32
}

// Arena is a growable slice of fixed-size record chunks with a free
// list recycling released records. Every record is in exactly one of three
// disjoint states: live (reachable from some pixel head), on the free list,
// or untouched (beyond the cursor of the newest chunk).
type Arena struct {
	chunks   [][]fragment
	cursor   int
	freeHead int32
	peak     int
	live     int
	logger   *slog.Logger
}

// NewArena returns an arena with one chunk preallocated.
func NewArena() *Arena {
	a := &Arena{freeHead: nilIndex}
	a.chunks = append(a.chunks, make([]fragment, ChunkSize))
	return a
}

// SetLogger attaches a structured logger the arena uses to report chunk
// growth and opacity-cull truncation at [slog.LevelDebug]. A nil logger
// (the default) disables this reporting entirely.
func (a *Arena) SetLogger(l *slog.Logger) {
	a.logger = l
}

func (a *Arena) debugf(msg string, args ...any) {
	if a.logger == nil {
		return
	}
	a.logger.Debug(msg, args...)
}

// packIndex packs a (chunk, slot) pair into the single int32 index used
// throughout the A-buffer so heads/next pointers never hold real pointers.
func packIndex(chunk, slot int) int32 {
	return int32(chunk*ChunkSize + slot)
}

func (a *Arena) at(idx int32) *fragment {
	chunk := int(idx) / ChunkSize
	slot := int(idx) % ChunkSize
	return &a.chunks[chunk][slot]
}

// Alloc returns the index of a fresh fragment record: first from the free
// list, else the next unused slot in the newest chunk, else a newly grown
// chunk. Alloc never fails — Go slices grow on demand, unlike the
// malloc-can-return-NULL arena this is modeled on — so ABuffer.Insert uses
// the returned index without checking it.
func (a *Arena) Alloc() int32 {
	if a.freeHead != nilIndex {
		idx := a.freeHead
		a.freeHead = a.at(idx).next
		a.live++
		if a.live > a.peak {
			a.peak = a.live
		}
		return idx
	}

	if a.cursor >= ChunkSize {
		a.chunks = append(a.chunks, make([]fragment, ChunkSize))
		a.cursor = 0
		a.debugf("abuffer: arena grew", "total_chunks", len(a.chunks))
	}
	idx := packIndex(len(a.chunks)-1, a.cursor)
	a.cursor++
	a.live++
	if a.live > a.peak {
		a.peak = a.live
	}
	return idx
}

// Free returns a record to the free list in O(1).
func (a *Arena) Free(idx int32) {
	a.at(idx).next = a.freeHead
	a.freeHead = idx
	a.live--
}

// Reset implements the "reset world" clear strategy: it keeps chunk 0 as a
// hot cache, drops every other chunk, and empties the free list and cursor.
// This is O(chunks) instead of O(live fragments), because the per-pixel
// head-zeroing done by ABuffer.Reset already drops every reference to a
// live fragment in one pass.
func (a *Arena) Reset() {
	a.chunks = a.chunks[:1]
	a.cursor = 0
	a.freeHead = nilIndex
	a.live = 0
	a.peak = 0
}

// Stats reports the arena's current allocation profile.
type Stats struct {
	// ActiveFragments is the number of records currently reachable from a
	// pixel head (not freed).
	ActiveFragments int
	// PeakFragments is the high-water mark of ActiveFragments since the
	// last Reset.
	PeakFragments int
	// TotalChunks is the number of chunks currently allocated.
	TotalChunks int
}

// Stats returns the arena's current statistics.
func (a *Arena) Stats() Stats {
	return Stats{
		ActiveFragments: a.live,
		PeakFragments:   a.peak,
		TotalChunks:     len(a.chunks),
	}
}
