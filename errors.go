// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package ply

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/scigolib/ply/internal/core"
	"github.com/scigolib/ply/internal/utils"
)

// ErrorKind classifies failures. Match with errors.Is(err, ply.ErrTruncatedInput).
type ErrorKind = core.ErrorKind

// Error is a classified failure carrying line and element context.
type Error = core.Error

// Error kinds.
const (
	ErrNotAPlyFile            = core.ErrNotAPlyFile
	ErrUnsupportedFormat      = core.ErrUnsupportedFormat
	ErrUnexpectedKeyword      = core.ErrUnexpectedKeyword
	ErrMissingEndHeader       = core.ErrMissingEndHeader
	ErrUnsupportedPropertyMix = core.ErrUnsupportedPropertyMix
	ErrNoPropertiesDeclared   = core.ErrNoPropertiesDeclared
	ErrUnknownType            = core.ErrUnknownType
	ErrRowArityMismatch       = core.ErrRowArityMismatch
	ErrListArityMismatch      = core.ErrListArityMismatch
	ErrTruncatedInput         = core.ErrTruncatedInput
	ErrPropertyNotFound       = core.ErrPropertyNotFound
	ErrAmbiguousProperty      = core.ErrAmbiguousProperty
	ErrIndexOutOfBounds       = core.ErrIndexOutOfBounds
	ErrIO                     = core.ErrIO
	ErrBadKeywordParams       = core.ErrBadKeywordParams
	ErrInvalidValue           = core.ErrInvalidValue
	ErrElementNotFound        = core.ErrElementNotFound
	ErrDuplicateProperty      = core.ErrDuplicateProperty
	ErrInvalidState           = core.ErrInvalidState
	ErrLimitExceeded          = core.ErrLimitExceeded
)

// KindOf returns the kind of the innermost classified error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var perr *core.Error
	if errors.As(err, &perr) {
		// The outermost *Error may wrap another classified cause.
		for {
			var inner *core.Error
			if perr.Cause == nil || !errors.As(perr.Cause, &inner) {
				return perr.Kind, true
			}
			perr = inner
		}
	}
	var kind core.ErrorKind
	if errors.As(err, &kind) {
		return kind, true
	}
	return 0, false
}

// Report renders err as a multi-line diagnostic: the outermost message first,
// then each nested cause on its own line prefixed by one '>' per level.
// With withStack the stack recorded when the reader failed is appended.
func Report(err error, withStack bool) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	var stack []uintptr
	depth := 0
	for e := err; e != nil; e = errors.Unwrap(e) {
		var msg string
		switch v := e.(type) {
		case *utils.PlyError:
			msg = v.Context
			if stack == nil {
				stack = v.Stack()
			}
		case *core.Error:
			msg = v.Msg
		default:
			msg = e.Error()
			if inner := errors.Unwrap(e); inner != nil {
				msg = strings.TrimSuffix(msg, ": "+inner.Error())
			}
		}

		for _, line := range strings.Split(msg, "\n") {
			if depth > 0 {
				b.WriteString(strings.Repeat(">", depth))
				b.WriteByte(' ')
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
		depth++
	}

	if withStack && len(stack) > 0 {
		b.WriteString("\nstack:\n")
		frames := runtime.CallersFrames(stack)
		for {
			frame, more := frames.Next()
			fmt.Fprintf(&b, "  %s\n      %s:%d\n", frame.Function, frame.File, frame.Line)
			if !more {
				break
			}
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}
