// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package ply provides a pure Go reader for PLY (Polygon File Format)
// point clouds and meshes. It parses the textual header, decodes ASCII,
// binary little-endian and binary big-endian bodies, and exposes each
// element's properties as typed columns.
//
// Example:
//
//	r, err := ply.ReadFile("cloud.ply")
//	if err != nil {
//	    fmt.Println(ply.Report(err, false))
//	    return
//	}
//	vertex, _ := r.ElementByName("vertex")
//	x, _ := vertex.Float32Column("x")
package ply

import "github.com/scigolib/ply/internal/core"

// Format is the encoding of a PLY body.
type Format = core.Format

// Body formats.
const (
	FormatASCII              = core.FormatASCII
	FormatBinaryLittleEndian = core.FormatBinaryLittleEndian
	FormatBinaryBigEndian    = core.FormatBinaryBigEndian
)

// Kind identifies a PLY primitive numeric type.
type Kind = core.Kind

// Primitive kinds.
const (
	KindInt8    = core.KindInt8
	KindUint8   = core.KindUint8
	KindInt16   = core.KindInt16
	KindUint16  = core.KindUint16
	KindInt32   = core.KindInt32
	KindUint32  = core.KindUint32
	KindFloat16 = core.KindFloat16
	KindFloat32 = core.KindFloat32
	KindFloat64 = core.KindFloat64
)

// NumericType is a primitive kind with its byte order.
type NumericType = core.NumericType

// Element is one declared element of a PLY file with its decoded rows.
type Element = core.Element

// Property is one declared field of an element.
type Property = core.Property

// PropertyType describes a property's shape and value types.
type PropertyType = core.PropertyType

// Values is the decoded data of one property (Column or Jagged).
type Values = core.Values

// Column is a flat, typed sequence of decoded values.
type Column = core.Column

// Jagged holds the rows of a list property.
type Jagged = core.Jagged

// Float16 is an IEEE 754 binary16 value.
type Float16 = core.Float16

// Concrete column types, one per primitive kind.
type (
	Int8s    = core.Int8s
	Uint8s   = core.Uint8s
	Int16s   = core.Int16s
	Uint16s  = core.Uint16s
	Int32s   = core.Int32s
	Uint32s  = core.Uint32s
	Float16s = core.Float16s
	Float32s = core.Float32s
	Float64s = core.Float64s
)

// ResolveType maps a PLY type name (canonical or legacy alias) to a
// NumericType for the given format.
func ResolveType(name string, f Format) (NumericType, error) {
	return core.ResolveType(name, f)
}
