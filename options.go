// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package ply

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/scigolib/ply/internal/core"
	"github.com/scigolib/ply/internal/utils"
)

// Option configures a Reader during creation.
//
// Example:
//
//	r, err := ply.NewReader(
//	    ply.WithLogger(slog.Default()),
//	    ply.WithMaxListLength(1024),
//	)
type Option func(*config) error

type config struct {
	logger     *slog.Logger
	headerOnly bool
	decompress bool
	limits     core.Limits
}

func defaultConfig() config {
	return config{
		logger:     slog.New(slog.DiscardHandler),
		decompress: true,
		limits: core.Limits{
			MaxElementRows: utils.MaxElementRows,
			MaxListLength:  utils.MaxListLength,
		},
	}
}

func newConfig(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// WithLogger routes debug records about header fields and element decoding
// to logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = logger
		return nil
	}
}

// WithHeaderOnly makes ReadFile, Read and ReadFiles stop after the header.
// Elements are declared but hold no values.
func WithHeaderOnly(headerOnly bool) Option {
	return func(c *config) error {
		c.headerOnly = headerOnly
		return nil
	}
}

// WithDecompression toggles transparent decoding of gzip, zstd and LZ4
// compressed input, detected by magic bytes. Enabled by default.
func WithDecompression(enabled bool) Option {
	return func(c *config) error {
		c.decompress = enabled
		return nil
	}
}

// WithMaxElementRows bounds the row count an element may declare.
// Zero removes the bound. Default: math.MaxInt32.
func WithMaxElementRows(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return fmt.Errorf("max element rows must be >= 0, got %d", n)
		}
		c.limits.MaxElementRows = n
		return nil
	}
}

// WithMaxListLength bounds the length of a single list row.
// Zero removes the bound. Default: 16M values.
func WithMaxListLength(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return fmt.Errorf("max list length must be >= 0, got %d", n)
		}
		c.limits.MaxListLength = n
		return nil
	}
}

// WithBinaryChunkRows sets how many records a binary scalar element reads
// per underlying read. Zero picks a size that fits a 64KB buffer.
func WithBinaryChunkRows(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return fmt.Errorf("binary chunk rows must be >= 0, got %d", n)
		}
		c.limits.ChunkRows = n
		return nil
	}
}
