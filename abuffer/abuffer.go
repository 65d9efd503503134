package abuffer

import "github.com/gogpu/swrast/vecmath"

// CullThreshold is the per-channel accumulated-opacity level above which a
// fragment is considered fully occluded and may be discarded or, for
// fragments further back in the list, culled outright.
const CullThreshold = 0.999

// ABuffer holds one fragment-list head per framebuffer pixel, backed by a
// shared Arena. Traversing next-pointers from any head yields strictly
// non-decreasing z.
type ABuffer struct {
	heads []int32
	arena *Arena
}

// New returns an A-buffer sized for width*height pixels, backed by arena.
func New(width, height int, arena *Arena) *ABuffer {
	b := &ABuffer{
		heads: make([]int32, width*height),
		arena: arena,
	}
	b.clearHeads()
	return b
}

func (b *ABuffer) clearHeads() {
	for i := range b.heads {
		b.heads[i] = nilIndex
	}
}

// Reset clears every pixel's fragment list and resets the backing arena.
// Fragments are not individually freed: zeroing the heads already drops
// every live reference, so the arena can simply reclaim its chunks in bulk.
func (b *ABuffer) Reset() {
	b.clearHeads()
	b.arena.Reset()
}

// Resize replaces the head array for new pixel dimensions and resets the
// arena (any existing fragment lists are invalidated).
func (b *ABuffer) Resize(width, height int) {
	b.heads = make([]int32, width*height)
	b.clearHeads()
	b.arena.Reset()
}

func minComponent(v [3]float32) float32 {
	m := v[0]
	if v[1] < m {
		m = v[1]
	}
	if v[2] < m {
		m = v[2]
	}
	return m
}

func accumulate(acc *[3]float32, opacity [3]float32) {
	acc[0] += (1 - acc[0]) * opacity[0]
	acc[1] += (1 - acc[1]) * opacity[1]
	acc[2] += (1 - acc[2]) * opacity[2]
}

// Insert splices a new fragment at z, color, opacity into pixel's sorted
// list, implementing front-to-back opacity-accumulation culling:
//
//  1. Walk from the head, accumulating opacity, until a node with z >= the
//     new fragment's z is found (or the list ends). If the accumulated
//     opacity is already fully occluding, the new fragment is invisible and
//     is discarded without allocating.
//  2. Otherwise allocate a record and splice it in at the found position.
//  3. Continue accumulating from the newly inserted node; as soon as the
//     running opacity crosses CullThreshold, the remainder of the list is
//     detached and returned to the free list, since every fragment behind
//     it is now invisible.
func (b *ABuffer) Insert(pixel int, z float32, color, opacity vecmath.Vec3) {
	var acc [3]float32
	o := [3]float32{opacity.X, opacity.Y, opacity.Z}

	curr := b.heads[pixel]
	var prev int32 = nilIndex

	for curr != nilIndex {
		node := b.arena.at(curr)
		if node.z >= z {
			break
		}
		accumulate(&acc, node.opacity)
		if minComponent(acc) > CullThreshold {
			return
		}
		prev = curr
		curr = node.next
	}

	newIdx := b.arena.Alloc()
	newNode := b.arena.at(newIdx)
	newNode.z = z
	newNode.color = [3]float32{color.X, color.Y, color.Z}
	newNode.opacity = o
	newNode.next = curr

	if prev == nilIndex {
		b.heads[pixel] = newIdx
	} else {
		b.arena.at(prev).next = newIdx
	}

	accumulate(&acc, o)
	if minComponent(acc) > CullThreshold {
		b.freeChain(curr)
		newNode.next = nilIndex
		return
	}

	curr = newNode.next
	for curr != nilIndex {
		node := b.arena.at(curr)
		accumulate(&acc, node.opacity)
		next := node.next
		if minComponent(acc) > CullThreshold {
			node.next = nilIndex
			b.freeChain(next)
			return
		}
		curr = next
	}
}

// freeChain returns every node in the chain starting at idx to the free
// list, reporting how many fragments an opacity-cull truncation dropped.
func (b *ABuffer) freeChain(idx int32) {
	freed := 0
	for idx != nilIndex {
		next := b.arena.at(idx).next
		b.arena.Free(idx)
		idx = next
		freed++
	}
	if freed > 0 {
		b.arena.debugf("abuffer: opacity cull truncated tail", "freed", freed)
	}
}

// Walk invokes fn for every fragment at pixel, front-to-back (ascending z).
func (b *ABuffer) Walk(pixel int, fn func(z float32, color, opacity vecmath.Vec3)) {
	curr := b.heads[pixel]
	for curr != nilIndex {
		node := b.arena.at(curr)
		fn(node.z, vecmath.Vec3{X: node.color[0], Y: node.color[1], Z: node.color[2]},
			vecmath.Vec3{X: node.opacity[0], Y: node.opacity[1], Z: node.opacity[2]})
		curr = node.next
	}
}

// IsEmpty reports whether pixel has no fragments.
func (b *ABuffer) IsEmpty(pixel int) bool {
	return b.heads[pixel] == nilIndex
}

// Len returns the number of fragments currently stored at pixel (used by
// tests, not the hot path).
func (b *ABuffer) Len(pixel int) int {
	n := 0
	curr := b.heads[pixel]
	for curr != nilIndex {
		n++
		curr = b.arena.at(curr).next
	}
	return n
}
