package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBuffer(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"zero size", 0},
		{"very small size", 1},
		{"within pool capacity", 1024},
		{"exact pool capacity", DefaultBufferSize},
		{"larger than pool capacity", DefaultBufferSize + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := GetBuffer(tt.size)
			require.Len(t, buf, tt.size)
			require.GreaterOrEqual(t, cap(buf), tt.size)
			ReleaseBuffer(buf)
		})
	}
}

func TestReleaseBuffer_Reuse(t *testing.T) {
	buf := GetBuffer(16)
	copy(buf, "0123456789abcdef")
	ReleaseBuffer(buf)

	// Oversized and empty buffers are dropped without panicking.
	ReleaseBuffer(make([]byte, 0, 8*DefaultBufferSize))
	ReleaseBuffer(nil)

	again := GetBuffer(8)
	require.Len(t, again, 8)
}
