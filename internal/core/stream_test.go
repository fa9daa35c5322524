package core

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/scigolib/ply/internal/plytest"
	"github.com/stretchr/testify/require"
)

func TestStream_ReadASCIILine(t *testing.T) {
	s := NewStream(strings.NewReader("a\r\n  b  \nc"))
	require.Equal(t, -1, s.CurrentLine())

	for _, want := range []string{"a", "b", "c"} {
		line, ok, err := s.ReadASCIILine()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, want, line)
	}
	require.Equal(t, 2, s.CurrentLine())

	_, ok, err := s.ReadASCIILine()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStream_ReadKeywordLine(t *testing.T) {
	s := NewStream(strings.NewReader("\n   \nformat  ascii 1.0\nend_header\n"))

	kl, ok, err := s.ReadKeywordLine()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, KeywordLine{Keyword: "format", Rest: "ascii 1.0", Line: 2}, kl)

	kl, ok, err = s.ReadKeywordLine()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "end_header", kl.Keyword)
	require.Empty(t, kl.Rest)

	_, ok, err = s.ReadKeywordLine()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStream_ReadNextKeywordLineOf(t *testing.T) {
	t.Run("skips ignorable", func(t *testing.T) {
		s := NewStream(strings.NewReader("comment one\ncomment two\nformat ascii 1.0\n"))
		kl, ok, err := s.ReadNextKeywordLineOf([]string{"format"}, []string{"comment"}, false)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "format", kl.Keyword)
		require.Equal(t, 2, kl.Line)
	})

	t.Run("rejects unexpected", func(t *testing.T) {
		s := NewStream(strings.NewReader("comment one\nobj_info x\nformat ascii 1.0\n"))
		_, _, err := s.ReadNextKeywordLineOf([]string{"format"}, []string{"comment"}, false)
		require.ErrorIs(t, err, ErrUnexpectedKeyword)

		var perr *Error
		require.True(t, errors.As(err, &perr))
		require.Equal(t, 1, perr.Line)
		require.Contains(t, perr.Msg, "'obj_info'")
	})

	t.Run("ignores all non target", func(t *testing.T) {
		s := NewStream(strings.NewReader("obj_info x\nfoo bar\nend_header\n"))
		kl, ok, err := s.ReadNextKeywordLineOf([]string{"element", "end_header"}, nil, true)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "end_header", kl.Keyword)
	})

	t.Run("reports skipped lines", func(t *testing.T) {
		s := NewStream(strings.NewReader("comment a\nobj_info b\nelement v 1\n"))
		var skipped []string
		s.Skipped = func(kl KeywordLine) { skipped = append(skipped, kl.Keyword+":"+kl.Rest) }

		kl, ok, err := s.ReadNextKeywordLineOf([]string{"element"}, nil, true)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "v 1", kl.Rest)
		require.Equal(t, []string{"comment:a", "obj_info:b"}, skipped)
	})

	t.Run("end of input", func(t *testing.T) {
		s := NewStream(strings.NewReader("comment only\n"))
		_, ok, err := s.ReadNextKeywordLineOf([]string{"format"}, []string{"comment"}, false)
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestKeywordLine_Params(t *testing.T) {
	kl := KeywordLine{Keyword: "element", Rest: "vertex 8", Line: 3}
	params, err := kl.Params(2)
	require.NoError(t, err)
	require.Equal(t, []string{"vertex", "8"}, params)

	_, err = KeywordLine{Keyword: "element", Line: 3}.Params(2)
	require.ErrorIs(t, err, ErrBadKeywordParams)
	require.Contains(t, err.Error(), "found none")

	_, err = KeywordLine{Keyword: "property", Rest: "list uchar int", Line: 4}.Params(2, 4)
	require.ErrorIs(t, err, ErrBadKeywordParams)
	require.Contains(t, err.Error(), "expected 2 or 4 parameters")
}

func TestStream_ReadLineAsTokens(t *testing.T) {
	s := NewStream(strings.NewReader("3 0  1\t2\n"))
	toks, ok, err := s.ReadLineAsTokens()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"3", "0", "1", "2"}, toks)
}

func TestStream_ReadBinaryArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []float32{1.5, -2, 3}))

	f32, _ := ResolveType("float", FormatBinaryLittleEndian)
	col, err := NewStream(&buf).ReadBinaryArray(f32, 3)
	require.NoError(t, err)
	require.Equal(t, Float32s{1.5, -2, 3}, col)
}

func TestStream_ReadBinaryArray_Truncated(t *testing.T) {
	data := []byte{0, 0, 0, 1, 0, 0}
	i32, _ := ResolveType("int", FormatBinaryBigEndian)

	_, err := NewStream(bytes.NewReader(data)).ReadBinaryArray(i32, 2)
	require.ErrorIs(t, err, ErrTruncatedInput)
	require.Contains(t, err.Error(), "input ended after 6")
}

func TestStream_ReadRecords_Chunked(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 5; i++ {
		require.NoError(t, binary.Write(&buf, binary.BigEndian, int16(-i)))
		require.NoError(t, binary.Write(&buf, binary.BigEndian, float64(i)/2))
	}

	s16, _ := ResolveType("short", FormatBinaryBigEndian)
	f64, _ := ResolveType("double", FormatBinaryBigEndian)

	cols, err := NewStream(&buf).ReadRecords([]NumericType{s16, f64}, 5, 2)
	require.NoError(t, err)
	require.Equal(t, Int16s{0, -1, -2, -3, -4}, cols[0])
	require.Equal(t, Float64s{0, 0.5, 1, 1.5, 2}, cols[1])
}

func TestStream_ReadRecords_Invalid(t *testing.T) {
	s := NewStream(bytes.NewReader(nil))

	_, err := s.ReadRecords(nil, 1, 0)
	require.ErrorIs(t, err, ErrInvalidState)

	ascii, _ := ResolveType("float", FormatASCII)
	_, err = s.ReadRecords([]NumericType{ascii}, 1, 0)
	require.ErrorIs(t, err, ErrInvalidState)

	cols, err := s.ReadRecords([]NumericType{{Kind: KindUint8, Order: binary.LittleEndian}}, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, cols[0].Len())
}

func TestStream_ReadCount(t *testing.T) {
	i8, _ := ResolveType("char", FormatBinaryLittleEndian)

	n, err := NewStream(bytes.NewReader([]byte{4})).ReadCount(i8)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	_, err = NewStream(bytes.NewReader([]byte{0xFF})).ReadCount(i8)
	require.ErrorIs(t, err, ErrInvalidValue)

	_, err = NewStream(bytes.NewReader(nil)).ReadCount(i8)
	require.ErrorIs(t, err, ErrTruncatedInput)
}

func TestStream_IOFailure(t *testing.T) {
	s := NewStream(plytest.NewFailingReader([]byte("ply\nform")))

	_, _, err := s.ReadASCIILine()
	require.NoError(t, err)

	_, _, err = s.ReadASCIILine()
	require.ErrorIs(t, err, ErrIO)
	require.ErrorIs(t, err, plytest.ErrInjected)
}
