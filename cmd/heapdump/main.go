// Command heapdump replays a small fixed script of malloc/free operations
// against both allocator variants and prints the resulting block table for
// each, as a worked example of the library.
package main

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/adam211201/cs107-heap-allocator"
	"github.com/bytedance/gopkg/lang/dirtmake"
)

const segmentSize = 256

func main() {
	fmt.Println("=== implicit ===")
	runImplicit(os.Stdout)

	fmt.Println("\n=== explicit ===")
	runExplicit(os.Stdout)
}

func runImplicit(w *os.File) {
	buf := dirtmake.Bytes(segmentSize, segmentSize)
	base := unsafe.Pointer(&buf[0])

	a, err := allocator.NewImplicit(base, segmentSize)
	if err != nil {
		fmt.Fprintln(w, "init failed:", err)
		return
	}

	p1 := a.Malloc(16)
	p2 := a.Malloc(32)
	a.Free(p1)
	_ = a.Malloc(16)
	_ = p2

	if !a.Validate() {
		fmt.Fprintln(w, "validation failed after script")
	}
	a.Dump(w)
}

func runExplicit(w *os.File) {
	buf := dirtmake.Bytes(segmentSize, segmentSize)
	base := unsafe.Pointer(&buf[0])

	a, err := allocator.NewExplicit(base, segmentSize)
	if err != nil {
		fmt.Fprintln(w, "init failed:", err)
		return
	}

	p1 := a.Malloc(16)
	p2 := a.Malloc(32)
	a.Free(p1)
	_ = a.Malloc(16)
	_ = p2

	if !a.Validate() {
		fmt.Fprintln(w, "validation failed after script")
	}
	a.Dump(w)
}
