package allocator

import "unsafe"

// newSegmentBytes returns a size-byte backing array and its base pointer,
// suitable as the caller-provided segment Init expects. make zeroes the
// contents, but the segment contract never promises zeroed payload bytes,
// so no call site may rely on that.
func newSegmentBytes(size int) ([]byte, unsafe.Pointer) {
	buf := make([]byte, size)
	return buf, unsafe.Pointer(&buf[0])
}
