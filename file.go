// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package ply

import (
	"context"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ReadFile opens and fully parses the PLY file at path.
// With WithHeaderOnly(true) it stops after the header.
func ReadFile(path string, opts ...Option) (*Reader, error) {
	r, err := NewReader(opts...)
	if err != nil {
		return nil, err
	}
	if err := r.OpenFile(path); err != nil {
		return nil, err
	}
	if err := r.Parse(r.cfg.headerOnly); err != nil {
		return nil, err
	}
	return r, nil
}

// Read parses a PLY document from src. If src is an io.Closer it is closed
// before Read returns.
func Read(src io.Reader, opts ...Option) (*Reader, error) {
	r, err := NewReader(opts...)
	if err != nil {
		return nil, err
	}
	if err := r.Open(src); err != nil {
		return nil, err
	}
	if err := r.Parse(r.cfg.headerOnly); err != nil {
		return nil, err
	}
	return r, nil
}

// ReadFiles parses each path with its own Reader, running up to GOMAXPROCS
// parses at once. Results are returned in the order of paths. The first
// failure cancels files not yet started and is returned.
func ReadFiles(ctx context.Context, paths []string, opts ...Option) ([]*Reader, error) {
	if _, err := newConfig(opts); err != nil {
		return nil, err
	}

	readers := make([]*Reader, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := ReadFile(path, opts...)
			if err != nil {
				return err
			}
			readers[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return readers, nil
}
