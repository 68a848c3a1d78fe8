package allocator

import "unsafe"

// segment tracks the byte range owned by one allocator instance and the
// running `used` accounting both variants must keep exact. It carries no
// placement or free-list policy of its own.
type segment struct {
	base unsafe.Pointer // first byte of the managed region
	end  unsafe.Pointer // base + size
	size int
	used int
}

func (s *segment) reset(base unsafe.Pointer, size int) {
	s.base = base
	s.size = size
	s.end = unsafe.Add(base, size)
	s.used = 0
}

// next returns the header of the block physically following h, or nil if h
// is the last block in the segment. There is no backward link: headers
// carry no boundary tag, so a block is only ever reached by walking
// forward from base.
func (s *segment) next(h unsafe.Pointer) unsafe.Pointer {
	n := unsafe.Add(payloadOf(h), blockSize(h))
	if uintptr(n) < uintptr(s.end) {
		return n
	}
	return nil
}

// contains reports whether p falls within [base, end).
func (s *segment) contains(p unsafe.Pointer) bool {
	return uintptr(p) >= uintptr(s.base) && uintptr(p) < uintptr(s.end)
}

// checkPointer panics if p could not be a payload address this segment
// ever handed out: its header would fall outside the segment, or the
// header's offset from base is not a multiple of Alignment. It does not
// check that the header starts an actual block, so an aligned address
// inside a payload passes. It does not detect every form of caller
// misuse (there is no magic number stamped in the header to catch a
// double free against a byte-for-byte plausible address), but it catches
// the same class of out-of-arena and misaligned pointers buddy/bitmap
// allocators guard against before trusting a header word.
func (s *segment) checkPointer(p unsafe.Pointer) {
	h := headerOf(p)
	if uintptr(h) < uintptr(s.base) || uintptr(p) > uintptr(s.end) {
		panic("allocator: pointer not in segment")
	}
	if (uintptr(h)-uintptr(s.base))%Alignment != 0 {
		panic("allocator: misaligned pointer")
	}
}

// blockCount walks the whole segment and counts blocks, free and allocated.
func (s *segment) blockCount() int {
	n := 0
	for h := s.base; h != nil; h = s.next(h) {
		n++
	}
	return n
}
