package allocator

import "fmt"

// newSegmentTooSmallError reports that a segment cannot hold even the
// smallest block a variant can install at Init, naming the variant, the
// size offered, and the size required.
func newSegmentTooSmallError(variant string, size, min int) error {
	return fmt.Errorf("allocator: %s segment of %d bytes is too small, need at least %d", variant, size, min)
}
