package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlyError_Error(t *testing.T) {
	tests := []struct {
		name     string
		context  string
		cause    error
		expected string
	}{
		{
			name:     "simple error",
			context:  "parsing PLY header",
			cause:    errors.New("missing format line"),
			expected: "parsing PLY header: missing format line",
		},
		{
			name:     "element context",
			context:  "reading element 'vertex'",
			cause:    errors.New("unexpected end of input"),
			expected: "reading element 'vertex': unexpected end of input",
		},
		{
			name:     "empty context",
			context:  "",
			cause:    errors.New("some error"),
			expected: ": some error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &PlyError{
				Context: tt.context,
				Cause:   tt.cause,
			}
			require.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestWrapError(t *testing.T) {
	require.Nil(t, WrapError("some operation", nil))
	require.Nil(t, WrapErrorWithStack("some operation", nil))

	cause := errors.New("IO error")
	err := WrapError("reading body", cause)
	require.NotNil(t, err)

	var plyErr *PlyError
	require.True(t, errors.As(err, &plyErr))
	require.Equal(t, "reading body", plyErr.Context)
	require.Equal(t, cause, plyErr.Cause)
	require.Nil(t, plyErr.Stack())
}

func TestWrapErrorWithStack(t *testing.T) {
	err := WrapErrorWithStack("reading file 'a.ply'", errors.New("boom"))

	var plyErr *PlyError
	require.True(t, errors.As(err, &plyErr))
	require.NotEmpty(t, plyErr.Stack())
}

func TestWrapError_ChainedWrapping(t *testing.T) {
	baseErr := errors.New("base error")
	level1 := WrapError("level 1", baseErr)
	level2 := WrapError("level 2", level1)
	level3 := WrapError("level 3", level2)

	require.Equal(t, "level 3: level 2: level 1: base error", level3.Error())
	require.True(t, errors.Is(level3, baseErr))

	var plyErr *PlyError
	unwrapped := errors.Unwrap(level3)
	require.True(t, errors.As(unwrapped, &plyErr))
	require.Equal(t, "level 2", plyErr.Context)
}
