package allocator

import "unsafe"

// freeNode overlays the first 16 bytes of a free block's payload. It must
// never be read through a payload the caller believes is still live: the
// Explicit allocator only writes it immediately before inserting a block
// into the free list, and never exposes those bytes to Malloc's caller
// uninitialized-looking (they are simply overwritten once the caller
// writes to the payload).
type freeNode struct {
	prev, next unsafe.Pointer // payload addresses of neighboring free blocks
}

func asNode(payload unsafe.Pointer) *freeNode { return (*freeNode)(payload) }

// firstFreeFrom forward-walks the block chain starting at h (inclusive)
// and returns the header of the first free block found, or nil if none
// remains before the end of the segment. It is the only way the explicit
// allocator locates its list head: no head pointer is kept separately.
func (a *Explicit) firstFreeFrom(h unsafe.Pointer) unsafe.Pointer {
	for ; h != nil; h = a.next(h) {
		if isFree(h) {
			return h
		}
	}
	return nil
}

// freeBlockCount counts the free blocks in the segment by walking the
// block chain, independent of the free list itself. Used by Validate and
// Dump to cross-check list length against the real free-block population.
func (a *Explicit) freeBlockCount() int {
	n := 0
	for h := a.firstFreeFrom(a.base); h != nil; h = a.firstFreeFrom(a.next(h)) {
		n++
	}
	return n
}

// detach splices the free block at payload out of the free list, tolerating
// either neighbor being absent.
func (a *Explicit) detach(payload unsafe.Pointer) {
	n := asNode(payload)
	if n.prev != nil {
		asNode(n.prev).next = n.next
	}
	if n.next != nil {
		asNode(n.next).prev = n.prev
	}
}

// insert threads the free block whose header is h into the free list,
// maintaining address order. h must already be marked free. The block at
// higher addresses is found first by walking forward from h itself; if
// none exists, the insertion point is the tail, found by walking from the
// list head.
func (a *Explicit) insert(h unsafe.Pointer) {
	payload := payloadOf(h)
	node := asNode(payload)

	if after := a.next(h); after != nil {
		if nextHeader := a.firstFreeFrom(after); nextHeader != nil {
			nextPayload := payloadOf(nextHeader)
			nextNode := asNode(nextPayload)
			node.prev = nextNode.prev
			node.next = nextPayload
			if nextNode.prev != nil {
				asNode(nextNode.prev).next = payload
			}
			nextNode.prev = payload
			return
		}
	}

	headHeader := a.firstFreeFrom(a.base)
	if headHeader == h {
		// h is the only free block in the segment.
		node.prev = nil
		node.next = nil
		return
	}

	tailPayload := payloadOf(headHeader)
	tail := asNode(tailPayload)
	for tail.next != nil {
		tailPayload = tail.next
		tail = asNode(tailPayload)
	}
	node.prev = tailPayload
	node.next = nil
	tail.next = payload
}
