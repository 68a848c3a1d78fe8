// Package allocator implements two variant dynamic memory allocators over a
// single, caller-provided contiguous byte segment: Implicit, which finds
// free blocks by walking the inline header chain, and Explicit, which
// additionally threads free blocks through an address-ordered doubly linked
// free list stored inside their payloads.
//
// Both variants tile the segment with 8-byte-aligned blocks (an 8-byte
// header followed by a payload), support first-fit placement with
// splitting, one-directional (forward-only) coalescing on free, and a
// validator that walks the whole segment to check accounting and
// structural invariants. Neither variant is safe for concurrent use.
package allocator
