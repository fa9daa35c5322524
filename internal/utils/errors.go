// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package utils

import (
	"fmt"
	"runtime"
)

// PlyError attaches parsing context (what was being read, and where) to a
// cause. Chains of PlyError form the causal report printed to users.
type PlyError struct {
	Context string
	Cause   error

	stack []uintptr
}

// Error implements the error interface.
func (e *PlyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Cause)
}

// Unwrap provides compatibility with errors.Unwrap().
func (e *PlyError) Unwrap() error {
	return e.Cause
}

// Stack returns the program counters recorded by WrapErrorWithStack, or nil.
func (e *PlyError) Stack() []uintptr {
	return e.stack
}

// WrapError creates a contextual error.
func WrapError(context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &PlyError{
		Context: context,
		Cause:   cause,
	}
}

// WrapErrorWithStack is WrapError that also records the caller's stack.
func WrapErrorWithStack(context string, cause error) error {
	if cause == nil {
		return nil
	}
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	return &PlyError{
		Context: context,
		Cause:   cause,
		stack:   pcs[:n],
	}
}
