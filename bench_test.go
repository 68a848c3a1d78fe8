package allocator

import (
	"testing"
	"unsafe"

	"github.com/bytedance/gopkg/lang/dirtmake"
	"github.com/bytedance/gopkg/lang/mcache"
)

// newBenchSegment acquires a pooled, uninitialized backing array for
// benchmarks through mcache instead of make([]byte, n): repeated
// iterations then reuse the same pooled arrays rather than pressuring the
// GC with a fresh allocation per b.N.
func newBenchSegment(size int) []byte { return mcache.Malloc(size) }

func BenchmarkImplicitMallocFree16(b *testing.B) { benchmarkImplicitMallocFree(b, 16) }
func BenchmarkImplicitMallocFree64(b *testing.B) { benchmarkImplicitMallocFree(b, 64) }

func benchmarkImplicitMallocFree(b *testing.B, size int) {
	buf := newBenchSegment(1 << 20)
	defer mcache.Free(buf)
	base := unsafe.Pointer(&buf[0])

	var a Implicit
	if !a.Init(base, len(buf)) {
		b.Fatal("init failed")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := a.Malloc(size)
		if p == nil {
			a.Init(base, len(buf))
			p = a.Malloc(size)
		}
		a.Free(p)
	}
}

func BenchmarkExplicitMallocFree16(b *testing.B) { benchmarkExplicitMallocFree(b, 16) }
func BenchmarkExplicitMallocFree64(b *testing.B) { benchmarkExplicitMallocFree(b, 64) }

func benchmarkExplicitMallocFree(b *testing.B, size int) {
	buf := newBenchSegment(1 << 20)
	defer mcache.Free(buf)
	base := unsafe.Pointer(&buf[0])

	var a Explicit
	if !a.Init(base, len(buf)) {
		b.Fatal("init failed")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := a.Malloc(size)
		if p == nil {
			a.Init(base, len(buf))
			p = a.Malloc(size)
		}
		a.Free(p)
	}
}

// BenchmarkNewSegmentUninitialized measures acquiring a fresh,
// uninitialized-contents backing array via dirtmake.Bytes: a fresh
// segment's payload bytes are never promised to be zeroed, so the zeroing
// make([]byte, n) would do is wasted work for this use.
func BenchmarkNewSegmentUninitialized(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := dirtmake.Bytes(1<<16, 1<<16)
		_ = buf
	}
}
