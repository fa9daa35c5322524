// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package ply

import (
	"errors"
	"fmt"
	"io"

	"github.com/scigolib/ply/internal/core"
)

// WriteHeaderInfo writes a summary of every declared element and its
// properties to w.
//
// Output format:
//
//	Element 'vertex' with 8 data sets of:
//	> x (float)
//	> y (float)
func (r *Reader) WriteHeaderInfo(w io.Writer) error {
	for _, el := range r.elements {
		if _, err := fmt.Fprintf(w, "Element '%s' with %d data sets of:\n", el.Name(), el.Count()); err != nil {
			return err
		}
		for i := range el.PropertyCount() {
			p, err := el.Property(i)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "> %s\n", p); err != nil {
				return err
			}
		}
	}
	return nil
}

// PointCloud holds the vertex positions, and colors when present, of a
// parsed file as float32 columns. Values are converted, not normalized:
// uchar colors stay in 0..255.
type PointCloud struct {
	X, Y, Z          []float32
	Red, Green, Blue []float32
}

// Len returns the number of points.
func (p *PointCloud) Len() int { return len(p.X) }

// HasColor reports whether red, green and blue were all present.
func (p *PointCloud) HasColor() bool { return p.Red != nil && p.Green != nil && p.Blue != nil }

// Points extracts the "vertex" element's x, y and z properties and, if all
// three are declared, its red, green and blue properties.
func (r *Reader) Points() (*PointCloud, error) {
	if r.state != StateDone {
		return nil, core.NewError(core.ErrInvalidState, "reader is %s, no decoded values", r.state)
	}
	vertex, err := r.ElementByName("vertex")
	if err != nil {
		return nil, err
	}

	pc := &PointCloud{}
	for _, f := range []struct {
		name string
		dst  *[]float32
	}{{"x", &pc.X}, {"y", &pc.Y}, {"z", &pc.Z}} {
		if *f.dst, err = vertex.Float32Column(f.name); err != nil {
			return nil, err
		}
	}

	colors := []struct {
		name string
		dst  *[]float32
	}{{"red", &pc.Red}, {"green", &pc.Green}, {"blue", &pc.Blue}}
	for _, c := range colors {
		if _, err := vertex.PropertyByName(c.name); err != nil {
			if errors.Is(err, core.ErrPropertyNotFound) {
				pc.Red, pc.Green, pc.Blue = nil, nil, nil
				return pc, nil
			}
			return nil, err
		}
	}
	for _, c := range colors {
		if *c.dst, err = vertex.Float32Column(c.name); err != nil {
			return nil, err
		}
	}
	return pc, nil
}
