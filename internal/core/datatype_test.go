package core

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveType(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		size int
	}{
		{"char", KindInt8, 1},
		{"uchar", KindUint8, 1},
		{"short", KindInt16, 2},
		{"ushort", KindUint16, 2},
		{"int", KindInt32, 4},
		{"uint", KindUint32, 4},
		{"float", KindFloat32, 4},
		{"double", KindFloat64, 8},
		{"int8", KindInt8, 1},
		{"uint8", KindUint8, 1},
		{"int16", KindInt16, 2},
		{"uint16", KindUint16, 2},
		{"int32", KindInt32, 4},
		{"uint32", KindUint32, 4},
		{"float16", KindFloat16, 2},
		{"float32", KindFloat32, 4},
		{"float64", KindFloat64, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nt, err := ResolveType(tt.name, FormatBinaryLittleEndian)
			require.NoError(t, err)
			require.Equal(t, tt.kind, nt.Kind)
			require.Equal(t, tt.size, nt.Size())
			require.Equal(t, binary.LittleEndian, nt.Order)

			nt, err = ResolveType(tt.name, FormatBinaryBigEndian)
			require.NoError(t, err)
			require.Equal(t, binary.BigEndian, nt.Order)

			nt, err = ResolveType(tt.name, FormatASCII)
			require.NoError(t, err)
			require.Nil(t, nt.Order)
		})
	}
}

func TestResolveType_Unknown(t *testing.T) {
	_, err := ResolveType("long", FormatASCII)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownType))
	require.Contains(t, err.Error(), "'long'")

	_, err = ResolveType("float", Format(0))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatASCII, FormatBinaryLittleEndian, FormatBinaryBigEndian} {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		require.Equal(t, f, got)
	}

	_, err := ParseFormat("binary_middle_endian")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	require.Nil(t, FormatASCII.ByteOrder())
}

func TestNumericType_String(t *testing.T) {
	le, _ := ResolveType("float32", FormatBinaryLittleEndian)
	be, _ := ResolveType("uchar", FormatBinaryBigEndian)
	asc, _ := ResolveType("int16", FormatASCII)

	require.Equal(t, "<float", le.String())
	require.Equal(t, ">uchar", be.String())
	require.Equal(t, "short", asc.String())
	require.True(t, KindFloat16.IsFloat())
	require.False(t, KindUint32.IsFloat())
}
