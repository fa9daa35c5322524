// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package core

import "fmt"

// ErrorKind classifies a parsing or query failure. An ErrorKind is itself an
// error so callers can match it with errors.Is.
type ErrorKind uint8

// Error kinds.
const (
	ErrNotAPlyFile ErrorKind = iota + 1
	ErrUnsupportedFormat
	ErrUnexpectedKeyword
	ErrMissingEndHeader
	ErrUnsupportedPropertyMix
	ErrNoPropertiesDeclared
	ErrUnknownType
	ErrRowArityMismatch
	ErrListArityMismatch
	ErrTruncatedInput
	ErrPropertyNotFound
	ErrAmbiguousProperty
	ErrIndexOutOfBounds
	ErrIO
	ErrBadKeywordParams
	ErrInvalidValue
	ErrElementNotFound
	ErrDuplicateProperty
	ErrInvalidState
	ErrLimitExceeded
)

var kindNames = map[ErrorKind]string{
	ErrNotAPlyFile:            "not a PLY file",
	ErrUnsupportedFormat:      "unsupported format",
	ErrUnexpectedKeyword:      "unexpected keyword",
	ErrMissingEndHeader:       "missing end_header",
	ErrUnsupportedPropertyMix: "unsupported property mix",
	ErrNoPropertiesDeclared:   "no properties declared",
	ErrUnknownType:            "unknown type",
	ErrRowArityMismatch:       "row arity mismatch",
	ErrListArityMismatch:      "list arity mismatch",
	ErrTruncatedInput:         "truncated input",
	ErrPropertyNotFound:       "property not found",
	ErrAmbiguousProperty:      "ambiguous property",
	ErrIndexOutOfBounds:       "index out of bounds",
	ErrIO:                     "I/O failure",
	ErrBadKeywordParams:       "bad keyword parameters",
	ErrInvalidValue:           "invalid value",
	ErrElementNotFound:        "element not found",
	ErrDuplicateProperty:      "duplicate property",
	ErrInvalidState:           "invalid reader state",
	ErrLimitExceeded:          "limit exceeded",
}

// Error implements the error interface.
func (k ErrorKind) Error() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("error kind %d", uint8(k))
}

// Error is a classified failure. Line is the zero-based input line the
// failure refers to, or -1 when no line applies. Expected and Actual carry
// the token counts of arity mismatches.
type Error struct {
	Kind     ErrorKind
	Msg      string
	Line     int
	Element  string
	Expected int
	Actual   int
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the ErrorKind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// newError builds an Error without line information.
func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Line: -1}
}

// lineError builds an Error pinned to an input line.
func lineError(kind ErrorKind, line int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Line: line}
}

// NewError is the exported form of newError for callers outside core.
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return newError(kind, format, args...)
}

// ioError classifies a failure of the underlying input.
func ioError(line int, cause error) *Error {
	return &Error{Kind: ErrIO, Msg: "reading input", Line: line, Cause: cause}
}
