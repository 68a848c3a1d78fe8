package allocator

import (
	"fmt"
	"io"
	"os"
	"unsafe"
)

// dumpTable prints the segment's block table to w: one header/payload pair
// per block, plus prev/next columns for free blocks when nodeInfo is
// non-nil. freeBlocks < 0 omits the free-block count line, for variants
// with no free-list to report it from.
func dumpTable(w io.Writer, s *segment, blocks, freeBlocks int, nodeInfo func(h unsafe.Pointer) (prev, next unsafe.Pointer)) {
	fmt.Fprintf(w, "segment start: %p\n", s.base)
	fmt.Fprintf(w, "segment end:   %p\n", s.end)
	fmt.Fprintf(w, "segment size:  %d bytes\n", s.size)
	fmt.Fprintf(w, "used:          %d bytes\n", s.used)
	fmt.Fprintf(w, "blocks:        %d\n", blocks)
	if freeBlocks >= 0 {
		fmt.Fprintf(w, "free blocks:   %d\n", freeBlocks)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%21s %12s %5s\n", "POINTER", "SIZE", "FREE")
	fmt.Fprintln(w, "----------------------------------------")

	for h := s.base; h != nil; h = s.next(h) {
		free := isFree(h)
		p := payloadOf(h)
		sz := blockSize(h)
		fmt.Fprintf(w, "header:  [%p %10d %2d]\n", h, HeaderSize, boolToInt(free))
		fmt.Fprintf(w, "payload: [%p %10d %2d]\n", p, sz, boolToInt(free))
		if free && nodeInfo != nil {
			prev, next := nodeInfo(h)
			fmt.Fprintf(w, "prev:    [%p]\n", prev)
			fmt.Fprintf(w, "next:    [%p]\n", next)
		}
		fmt.Fprintln(w)
	}
}

func writerOrStderr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// Dump prints a diagnostic table of every block in the segment to w (or to
// os.Stderr if w is nil). It is a read-only operation, never called by
// Malloc/Free/Realloc/Validate themselves.
func (a *Implicit) Dump(w io.Writer) {
	dumpTable(writerOrStderr(w), &a.segment, a.blockCount(), -1, nil)
}

// Dump prints a diagnostic table of every block in the segment, including
// the free-block count and free-list prev/next links for free blocks, to w
// (or to os.Stderr if w is nil).
func (a *Explicit) Dump(w io.Writer) {
	dumpTable(writerOrStderr(w), &a.segment, a.blockCount(), a.freeBlockCount(), func(h unsafe.Pointer) (unsafe.Pointer, unsafe.Pointer) {
		node := asNode(payloadOf(h))
		return node.prev, node.next
	})
}
