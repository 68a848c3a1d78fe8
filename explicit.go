package allocator

import "unsafe"

const (
	// minBlockExplicit is MIN_BLOCK_SIZE: the smallest whole block (header
	// + payload) the explicit variant will ever create, since a free
	// block's payload must host two pointers.
	minBlockExplicit = 24

	// minPayloadExplicit is the smallest payload a block may carry so its
	// first 16 bytes can always host free-list pointers once freed.
	minPayloadExplicit = 16
)

// Explicit is a first-fit allocator over a single caller-provided segment
// that locates free blocks by walking a doubly linked free list threaded
// through free payloads, in address order. The list has no separately
// stored head: it is found by forward-walking the segment from base to
// the first free block.
//
// The zero value is not ready for use; call Init (or NewExplicit) before
// any other method.
type Explicit struct {
	segment

	// MaxRequestSize bounds a single Malloc/Realloc request. Zero means
	// DefaultMaxRequestSize; set it before Init to override.
	MaxRequestSize int
}

// NewExplicit initializes an Explicit heap over base[:size] and reports an
// error if the segment cannot hold even one block (header plus the 16
// bytes a free block's payload needs for its list pointers).
func NewExplicit(base unsafe.Pointer, size int) (*Explicit, error) {
	a := &Explicit{}
	if !a.Init(base, size) {
		return nil, newSegmentTooSmallError("explicit", size, minBlockExplicit)
	}
	return a, nil
}

// Init installs a single free block spanning the whole segment, makes it a
// singleton free list, and resets all accounting. It may be called again
// to fully reset the heap; prior payload addresses are invalidated. It
// returns false, and leaves the heap unusable, if size is below
// minBlockExplicit.
func (a *Explicit) Init(base unsafe.Pointer, size int) bool {
	if size < minBlockExplicit {
		return false
	}
	if a.MaxRequestSize == 0 {
		a.MaxRequestSize = DefaultMaxRequestSize
	}
	a.segment.reset(base, size)
	setHeader(base, size-HeaderSize, true)
	node := asNode(payloadOf(base))
	node.prev = nil
	node.next = nil
	a.used = HeaderSize
	return true
}

// Malloc returns the address of a payload of at least n bytes, or nil if n
// is zero, exceeds MaxRequestSize, or no free-list entry fits.
func (a *Explicit) Malloc(n int) unsafe.Pointer {
	if n <= 0 || n > a.MaxRequestSize {
		return nil
	}
	need := roundup(n, Alignment)
	if need < minPayloadExplicit {
		need = minPayloadExplicit
	}
	if a.used+HeaderSize+need > a.size {
		return nil
	}

	for h := a.firstFreeFrom(a.base); h != nil; {
		b := blockSize(h)
		payload := payloadOf(h)
		switch {
		case need == b:
			a.detach(payload)
			setHeader(h, need, false)
			a.used += need
			return payload
		case need+minBlockExplicit <= b:
			a.detach(payload)
			setHeader(h, need, false)
			a.used += need
			rem := unsafe.Add(payload, need)
			setHeader(rem, b-HeaderSize-need, true)
			a.used += HeaderSize
			a.insert(rem)
			return payload
		case b >= need:
			a.detach(payload)
			setHeader(h, b, false)
			a.used += b
			return payload
		}
		next := asNode(payload).next
		if next == nil {
			break
		}
		h = headerOf(next)
	}
	return nil
}

// Free releases the block at payload address p. A nil p, or a p whose
// block is already free, is a no-op. If the immediately following block is
// free, the two are merged (forward coalescing only) and the merged block
// is reinserted into the free list in address order.
func (a *Explicit) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	a.checkPointer(p)
	h := headerOf(p)
	if isFree(h) {
		return
	}
	size := blockSize(h)
	if nxt := a.next(h); nxt != nil && isFree(nxt) {
		nxtSize := blockSize(nxt)
		a.detach(payloadOf(nxt))
		setHeader(h, size+HeaderSize+nxtSize, true)
		a.insert(h)
		a.used -= HeaderSize + size
		return
	}
	setHeader(h, size, true)
	a.insert(h)
	a.used -= size
}

// Realloc returns a new block of n bytes, copies min(old size, n) bytes
// from p's block into it, frees p, and returns the new address. A nil p is
// equivalent to Malloc(n). If n is 0, Malloc yields nil, so p is freed and
// nil is returned. If Malloc fails for a nonzero n, p is likewise freed and
// nil is returned.
func (a *Explicit) Realloc(p unsafe.Pointer, n int) unsafe.Pointer {
	q := a.Malloc(n)
	if p == nil {
		return q
	}
	a.checkPointer(p)
	if q != nil && n != 0 {
		old := blockSize(headerOf(p))
		copyMem(q, p, minInt(old, n))
	}
	a.Free(p)
	return q
}

