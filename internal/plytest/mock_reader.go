// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package plytest provides test utilities for PLY library testing.
package plytest

import (
	"errors"
	"io"
)

// ErrInjected is returned by FailingReader once its data is exhausted.
var ErrInjected = errors.New("injected read failure")

// FailingReader serves data and then fails with Err instead of io.EOF.
type FailingReader struct {
	data []byte
	Err  error
}

// NewFailingReader creates a reader that fails with ErrInjected after data.
func NewFailingReader(data []byte) *FailingReader {
	return &FailingReader{data: data, Err: ErrInjected}
}

// Read implements io.Reader.
func (f *FailingReader) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, f.Err
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

// TrackingReader wraps a ReadSeeker and records Seek and Close calls.
type TrackingReader struct {
	io.ReadSeeker
	Seeks  int
	Closes int
}

// NewTrackingReader wraps rs.
func NewTrackingReader(rs io.ReadSeeker) *TrackingReader {
	return &TrackingReader{ReadSeeker: rs}
}

// Seek implements io.Seeker.
func (t *TrackingReader) Seek(offset int64, whence int) (int64, error) {
	t.Seeks++
	return t.ReadSeeker.Seek(offset, whence)
}

// Close implements io.Closer.
func (t *TrackingReader) Close() error {
	t.Closes++
	return nil
}
