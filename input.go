// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package ply

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/scigolib/ply/internal/core"
)

// Magic numbers of the compressed containers accepted around a PLY file.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// decompress sniffs src and, for gzip, zstd or LZ4 frames, returns a reader
// of the decoded bytes. The returned closer, if any, releases the decoder.
func decompress(src io.Reader) (io.Reader, io.Closer, error) {
	br := bufio.NewReader(src)
	magic, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, &core.Error{Kind: core.ErrIO, Msg: "sniffing input compression", Line: -1, Cause: err}
	}

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, &core.Error{Kind: core.ErrIO, Msg: "opening gzip stream", Line: -1, Cause: err}
		}
		return zr, zr, nil
	case bytes.HasPrefix(magic, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, &core.Error{Kind: core.ErrIO, Msg: "opening zstd stream", Line: -1, Cause: err}
		}
		rc := zr.IOReadCloser()
		return rc, rc, nil
	case bytes.HasPrefix(magic, lz4Magic):
		return lz4.NewReader(br), nil, nil
	}
	return br, nil, nil
}
