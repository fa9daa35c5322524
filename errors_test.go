package ply

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/ply/internal/plytest"
)

func mixedFace() []byte {
	return plytest.New("ascii").
		Element("face", 1, "uchar flags", "list uchar int vertex_indices").
		Rows("0 3 0 1 2").
		Bytes()
}

func TestReport(t *testing.T) {
	_, err := Read(bytes.NewReader(mixedFace()))
	require.Error(t, err)

	want := strings.Join([]string{
		"reading from stream",
		"> parsing PLY header",
		">> reading element definitions from header",
		">>> reading element 'face' at line 4",
		">>>> unsupported property 'vertex_indices' for element 'face' at line 4: " +
			"only single list elements or structured scalar elements are supported",
	}, "\n")
	require.Equal(t, want, Report(err, false))
}

func TestReport_WithStack(t *testing.T) {
	_, err := Read(bytes.NewReader(mixedFace()))
	require.Error(t, err)

	report := Report(err, true)
	require.True(t, strings.HasPrefix(report, Report(err, false)))
	require.Contains(t, report, "\nstack:\n")
	require.Contains(t, report, "(*Reader).fail")
}

func TestReport_ForeignErrors(t *testing.T) {
	require.Empty(t, Report(nil, true))

	inner := errors.New("disk on fire")
	err := fmt.Errorf("loading scan: %w", inner)
	require.Equal(t, "loading scan\n> disk on fire", Report(err, true))
}

func TestKindOf(t *testing.T) {
	_, err := Read(bytes.NewReader(mixedFace()))
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, ErrUnsupportedPropertyMix, kind)

	wrapped := &Error{Kind: ErrIO, Msg: "outer", Cause: &Error{Kind: ErrTruncatedInput, Msg: "inner"}}
	kind, ok = KindOf(wrapped)
	require.True(t, ok)
	require.Equal(t, ErrTruncatedInput, kind)

	kind, ok = KindOf(fmt.Errorf("plain: %w", ErrLimitExceeded))
	require.True(t, ok)
	require.Equal(t, ErrLimitExceeded, kind)

	_, ok = KindOf(errors.New("unclassified"))
	require.False(t, ok)
}

func TestErrorKind_Names(t *testing.T) {
	require.Equal(t, "truncated input", ErrTruncatedInput.Error())
	require.Equal(t, "error kind 200", ErrorKind(200).Error())
}
