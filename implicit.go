package allocator

import "unsafe"

// minBlockImplicit is 2*HeaderSize: the smallest remainder Init or a split
// may ever leave behind (a header plus at least one aligned payload byte).
const minBlockImplicit = 2 * HeaderSize

// Implicit is a first-fit allocator over a single caller-provided segment
// that locates free blocks solely by walking the inline header chain. It
// has no per-heap metadata beyond the segment's base/size/used counters.
//
// The zero value is not ready for use; call Init (or NewImplicit) before
// any other method.
type Implicit struct {
	segment

	// MaxRequestSize bounds a single Malloc/Realloc request. Zero means
	// DefaultMaxRequestSize; set it before Init to override.
	MaxRequestSize int
}

// NewImplicit allocates no memory itself; it initializes an Implicit heap
// over base[:size] and reports an error if the segment cannot hold even one
// block.
func NewImplicit(base unsafe.Pointer, size int) (*Implicit, error) {
	a := &Implicit{}
	if !a.Init(base, size) {
		return nil, newSegmentTooSmallError("implicit", size, minBlockImplicit)
	}
	return a, nil
}

// Init installs a single free block spanning the whole segment and resets
// all accounting. It may be called again on the same value to fully reset
// the heap; prior payload addresses are invalidated. It returns false, and
// leaves the heap unusable, if size cannot hold a header and one aligned
// payload byte.
func (a *Implicit) Init(base unsafe.Pointer, size int) bool {
	if size < minBlockImplicit {
		return false
	}
	if a.MaxRequestSize == 0 {
		a.MaxRequestSize = DefaultMaxRequestSize
	}
	a.segment.reset(base, size)
	setHeader(base, size-HeaderSize, true)
	a.used = HeaderSize
	return true
}

// Malloc returns the address of a payload of at least n bytes, or nil if n
// is zero, exceeds MaxRequestSize, or no free block fits.
func (a *Implicit) Malloc(n int) unsafe.Pointer {
	if n <= 0 || n > a.MaxRequestSize {
		return nil
	}
	need := roundup(n, Alignment)
	if a.used+HeaderSize+need > a.size {
		return nil
	}

	for h := a.base; h != nil; h = a.next(h) {
		if !isFree(h) {
			continue
		}
		b := blockSize(h)
		switch {
		case need == b:
			setHeader(h, need, false)
			a.used += need
			return payloadOf(h)
		case need+minBlockImplicit <= b:
			setHeader(h, need, false)
			a.used += need
			rem := unsafe.Add(payloadOf(h), need)
			setHeader(rem, b-HeaderSize-need, true)
			a.used += HeaderSize
			return payloadOf(h)
		case b >= need:
			// Tight fit: not enough room left over for another header, so
			// the whole block is granted rather than split.
			setHeader(h, b, false)
			a.used += b
			return payloadOf(h)
		}
	}
	return nil
}

// Free releases the block at payload address p. A nil p, or a p whose
// block is already free, is a no-op. If the immediately following block is
// free, the two are merged (forward coalescing only: headers carry no
// boundary tag, so backward coalescing is not supported).
func (a *Implicit) Free(p unsafe.Pointer) {
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
		setHeader(h, size+HeaderSize+nxtSize, true)
		a.used -= HeaderSize + size
		return
	}
	setHeader(h, size, true)
	a.used -= size
}

// Realloc returns a new block of n bytes, copies min(old size, n) bytes
// from p's block into it, frees p, and returns the new address. A nil p is
// equivalent to Malloc(n). If n is 0, Malloc yields nil, so p is freed and
// nil is returned, matching the contract that realloc(p, 0) still triggers
// a free of p. If Malloc fails for a nonzero n, p is likewise freed and nil
// is returned.
func (a *Implicit) Realloc(p unsafe.Pointer, n int) unsafe.Pointer {
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

