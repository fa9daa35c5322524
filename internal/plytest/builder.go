// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package plytest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// Builder assembles PLY documents for tests.
//
//	data := plytest.New("ascii").
//	    Element("vertex", 2, "float x", "float y").
//	    Rows("0 0", "1 1").
//	    Bytes()
type Builder struct {
	header strings.Builder
	body   bytes.Buffer
	order  binary.ByteOrder
}

// New starts a document with the magic line and a format line.
func New(format string) *Builder {
	b := &Builder{order: binary.LittleEndian}
	if format == "binary_big_endian" {
		b.order = binary.BigEndian
	}
	b.header.WriteString("ply\n")
	b.Line("format " + format + " 1.0")
	return b
}

// Line appends a raw header line.
func (b *Builder) Line(s string) *Builder {
	b.header.WriteString(s)
	b.header.WriteByte('\n')
	return b
}

// Comment appends a comment line to the header.
func (b *Builder) Comment(s string) *Builder {
	return b.Line("comment " + s)
}

// Element declares an element followed by its property lines, e.g.
// "float x" or "list uchar int vertex_indices".
func (b *Builder) Element(name string, count int, props ...string) *Builder {
	b.Line(fmt.Sprintf("element %s %d", name, count))
	for _, p := range props {
		b.Line("property " + p)
	}
	return b
}

// Rows appends ASCII body lines.
func (b *Builder) Rows(lines ...string) *Builder {
	for _, l := range lines {
		b.body.WriteString(l)
		b.body.WriteByte('\n')
	}
	return b
}

// Values appends fixed-size values to the binary body in the document's
// byte order. It panics on values encoding/binary cannot size.
func (b *Builder) Values(vals ...interface{}) *Builder {
	for _, v := range vals {
		if err := binary.Write(&b.body, b.order, v); err != nil {
			panic(fmt.Sprintf("plytest: cannot encode %T: %v", v, err))
		}
	}
	return b
}

// Raw appends bytes to the body unchanged.
func (b *Builder) Raw(p []byte) *Builder {
	b.body.Write(p)
	return b
}

// Header returns the header text including end_header.
func (b *Builder) Header() string {
	return b.header.String() + "end_header\n"
}

// Bytes returns the complete document.
func (b *Builder) Bytes() []byte {
	out := []byte(b.Header())
	return append(out, b.body.Bytes()...)
}

// Truncated returns the document with the last n bytes removed.
func (b *Builder) Truncated(n int) []byte {
	data := b.Bytes()
	return data[:len(data)-n]
}
