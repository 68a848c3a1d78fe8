package allocator

import "unsafe"

const (
	// Alignment is the byte boundary every payload size is rounded up to.
	Alignment = 8

	// HeaderSize is the width in bytes of a block header word.
	HeaderSize = 8

	// DefaultMaxRequestSize bounds a single Malloc/Realloc request when an
	// allocator's MaxRequestSize field is left at its zero value.
	DefaultMaxRequestSize = 1 << 30

	freeBit = uint64(1)
)

// roundup rounds n up to the nearest multiple of m. m must be a power of two.
func roundup(n, m int) int { return (n + m - 1) &^ (m - 1) }

// headerWord returns the 8-byte header word at h, reinterpreted in place.
func headerWord(h unsafe.Pointer) *uint64 { return (*uint64)(h) }

// isFree reports the status bit of the header at h.
func isFree(h unsafe.Pointer) bool { return *headerWord(h)&freeBit != 0 }

// blockSize returns the payload size encoded in the header at h.
func blockSize(h unsafe.Pointer) int { return int(*headerWord(h) &^ freeBit) }

// setHeader packs size and status into the header word at h. size must
// already be a multiple of Alignment.
func setHeader(h unsafe.Pointer, size int, free bool) {
	w := uint64(size)
	if free {
		w |= freeBit
	}
	*headerWord(h) = w
}

// payloadOf returns the payload address for the block whose header is h.
func payloadOf(h unsafe.Pointer) unsafe.Pointer { return unsafe.Add(h, HeaderSize) }

// headerOf returns the header address for the block whose payload is p.
func headerOf(p unsafe.Pointer) unsafe.Pointer { return unsafe.Add(p, -HeaderSize) }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// uintptrOf converts p to an integer address, solely for ordering
// comparisons (e.g. free-list address-order checks); the result must never
// be the only reference keeping the pointed-to memory alive.
func uintptrOf(p unsafe.Pointer) uintptr { return uintptr(p) }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// copyMem copies n bytes from src to dst. Both must point to at least n
// readable/writable bytes. It is a no-op for n <= 0.
func copyMem(dst, src unsafe.Pointer, n int) {
	if n <= 0 {
		return
	}
	d := unsafe.Slice((*byte)(dst), n)
	s := unsafe.Slice((*byte)(src), n)
	copy(d, s)
}
