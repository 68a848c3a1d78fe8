package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentWalkCoversWholeSegment(t *testing.T) {
	_, base := newSegmentBytes(128)
	var s segment
	s.reset(base, 128)
	setHeader(base, 120, true)

	n := s.next(base)
	assert.Nil(t, n, "single block must be the last block")
	assert.Equal(t, 1, s.blockCount())
}

func TestSegmentWalkMultipleBlocks(t *testing.T) {
	// 64 bytes tiled exactly as (8+8) + (8+8) + (8+24) = 64.
	_, base := newSegmentBytes(64)
	var s segment
	s.reset(base, 64)

	setHeader(base, 8, false)
	second := s.next(base)
	require.NotNil(t, second)
	setHeader(second, 8, false)
	third := s.next(second)
	require.NotNil(t, third)
	setHeader(third, 24, true)

	assert.Nil(t, s.next(third))
	assert.Equal(t, 3, s.blockCount())
}

func TestSegmentContains(t *testing.T) {
	_, base := newSegmentBytes(32)
	var s segment
	s.reset(base, 32)
	assert.True(t, s.contains(base))
	assert.False(t, s.contains(s.end))
}
