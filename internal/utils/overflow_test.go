package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckMultiplyOverflow(t *testing.T) {
	tests := []struct {
		name    string
		a       uint64
		b       uint64
		wantErr bool
	}{
		{"no overflow - small numbers", 10, 20, false},
		{"no overflow - one zero", 0, math.MaxUint64, false},
		{"no overflow - both zero", 0, 0, false},
		{"overflow - max * 2", math.MaxUint64, 2, true},
		{"boundary - max * 1", math.MaxUint64, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckMultiplyOverflow(tt.a, tt.b)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSafeMultiply(t *testing.T) {
	v, err := SafeMultiply(12, 1000)
	require.NoError(t, err)
	require.Equal(t, uint64(12000), v)

	_, err = SafeMultiply(math.MaxUint64/2, 3)
	require.Error(t, err)
}

func TestRecordBytes(t *testing.T) {
	n, err := RecordBytes(2, 12)
	require.NoError(t, err)
	require.Equal(t, 24, n)

	_, err = RecordBytes(-1, 4)
	require.Error(t, err)

	_, err = RecordBytes(math.MaxInt, 8)
	require.Error(t, err)
}

func TestValidateCount(t *testing.T) {
	require.NoError(t, ValidateCount(0, 10, "rows"))
	require.NoError(t, ValidateCount(10, 10, "rows"))
	require.NoError(t, ValidateCount(1<<40, 0, "rows"))

	err := ValidateCount(11, 10, "list length")
	require.Error(t, err)
	require.Contains(t, err.Error(), "list length")

	require.Error(t, ValidateCount(-1, 10, "rows"))
}
