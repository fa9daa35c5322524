// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package utils provides utility functions for the PLY library.
package utils

import "sync"

// DefaultBufferSize is the capacity handed out for small binary reads.
const DefaultBufferSize = 64 * 1024

var bufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, DefaultBufferSize)
		return &buf
	},
}

// GetBuffer returns a byte slice of length size from the pool.
// Sizes above the pool capacity are allocated directly.
func GetBuffer(size int) []byte {
	bp := bufferPool.Get().(*[]byte)
	if cap(*bp) < size {
		bufferPool.Put(bp)
		return make([]byte, size)
	}
	return (*bp)[:size]
}

// ReleaseBuffer returns a buffer to the pool. Oversized buffers are dropped
// so a single large list row does not pin memory.
func ReleaseBuffer(buf []byte) {
	if cap(buf) == 0 || cap(buf) > 4*DefaultBufferSize {
		return
	}
	buf = buf[:0]
	bufferPool.Put(&buf)
}
