package allocator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplicitDumpReportsFreeBlockCount(t *testing.T) {
	_, base := newSegmentBytes(128)
	a, err := NewExplicit(base, 128)
	require.NoError(t, err)

	p := a.Malloc(16)
	require.NotNil(t, p)

	var buf bytes.Buffer
	a.Dump(&buf)

	assert.Equal(t, a.freeBlockCount(), 1)
	assert.Contains(t, buf.String(), "free blocks:   1")
}

func TestImplicitDumpOmitsFreeBlockCount(t *testing.T) {
	_, base := newSegmentBytes(128)
	a, err := NewImplicit(base, 128)
	require.NoError(t, err)

	var buf bytes.Buffer
	a.Dump(&buf)

	assert.False(t, strings.Contains(buf.String(), "free blocks:"))
}
