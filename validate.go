package allocator

import "unsafe"

// Validate walks the whole segment and reports whether the block tiling
// and used-byte accounting are internally consistent. It never mutates
// state.
func (a *Implicit) Validate() bool {
	if a.used > a.size {
		return false
	}
	var totalBytes, usedBytes int
	for h := a.base; h != nil; h = a.next(h) {
		sz := blockSize(h)
		totalBytes += HeaderSize + sz
		usedBytes += HeaderSize
		if !isFree(h) {
			usedBytes += sz
		}
	}
	return totalBytes == a.size && usedBytes == a.used
}

// Validate walks the whole segment and the free list and reports whether
// the tiling, used-byte accounting, and free-list membership are all
// internally consistent. It never mutates state.
func (a *Explicit) Validate() bool {
	if a.used > a.size {
		return false
	}
	var totalBytes, usedBytes int
	for h := a.base; h != nil; h = a.next(h) {
		sz := blockSize(h)
		totalBytes += HeaderSize + sz
		usedBytes += HeaderSize
		if !isFree(h) {
			usedBytes += sz
		}
	}
	if totalBytes != a.size || usedBytes != a.used {
		return false
	}

	listLen := 0
	var prevPayload unsafe.Pointer
	for h := a.firstFreeFrom(a.base); h != nil; {
		payload := payloadOf(h)
		node := asNode(payload)
		if node.prev != prevPayload {
			return false
		}
		listLen++
		if node.next == nil {
			break
		}
		nextHeader := headerOf(node.next)
		if !isFree(nextHeader) {
			return false
		}
		prevPayload = payload
		h = nextHeader
	}
	return listLen == a.freeBlockCount()
}
