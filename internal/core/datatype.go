// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package core

import (
	"encoding/binary"
	"fmt"
)

// Format is the encoding of a PLY body.
type Format uint8

// Body formats declared on the header's format line.
const (
	FormatASCII Format = iota + 1
	FormatBinaryLittleEndian
	FormatBinaryBigEndian
)

// ParseFormat maps a format-line token to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "ascii":
		return FormatASCII, nil
	case "binary_little_endian":
		return FormatBinaryLittleEndian, nil
	case "binary_big_endian":
		return FormatBinaryBigEndian, nil
	}
	return 0, newError(ErrUnsupportedFormat, "file format '%s' not supported", name)
}

// String returns the header token of the format.
func (f Format) String() string {
	switch f {
	case FormatASCII:
		return "ascii"
	case FormatBinaryLittleEndian:
		return "binary_little_endian"
	case FormatBinaryBigEndian:
		return "binary_big_endian"
	}
	return fmt.Sprintf("format_%d", uint8(f))
}

// ByteOrder returns the byte order of binary formats and nil for ASCII.
func (f Format) ByteOrder() binary.ByteOrder {
	switch f {
	case FormatBinaryLittleEndian:
		return binary.LittleEndian
	case FormatBinaryBigEndian:
		return binary.BigEndian
	}
	return nil
}

// Kind identifies one of the PLY primitive numeric types.
type Kind uint8

// Primitive kinds.
const (
	KindInt8 Kind = iota + 1
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindFloat16
	KindFloat32
	KindFloat64
)

// Size returns the width of the kind in bytes.
func (k Kind) Size() int {
	switch k {
	case KindInt8, KindUint8:
		return 1
	case KindInt16, KindUint16, KindFloat16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	case KindFloat64:
		return 8
	}
	return 0
}

// IsFloat reports whether the kind is a floating-point type.
func (k Kind) IsFloat() bool {
	return k == KindFloat16 || k == KindFloat32 || k == KindFloat64
}

// String returns the canonical PLY name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt8:
		return "char"
	case KindUint8:
		return "uchar"
	case KindInt16:
		return "short"
	case KindUint16:
		return "ushort"
	case KindInt32:
		return "int"
	case KindUint32:
		return "uint"
	case KindFloat16:
		return "float16"
	case KindFloat32:
		return "float"
	case KindFloat64:
		return "double"
	}
	return fmt.Sprintf("kind_%d", uint8(k))
}

// typeNames maps canonical and legacy PLY type names to kinds.
var typeNames = map[string]Kind{
	"char":    KindInt8,
	"uchar":   KindUint8,
	"short":   KindInt16,
	"ushort":  KindUint16,
	"int":     KindInt32,
	"uint":    KindUint32,
	"float":   KindFloat32,
	"double":  KindFloat64,
	"int8":    KindInt8,
	"uint8":   KindUint8,
	"int16":   KindInt16,
	"uint16":  KindUint16,
	"int32":   KindInt32,
	"uint32":  KindUint32,
	"float16": KindFloat16,
	"float32": KindFloat32,
	"float64": KindFloat64,
}

// NumericType is a primitive kind together with the byte order it is
// stored in. Order is nil for ASCII bodies.
type NumericType struct {
	Kind  Kind
	Order binary.ByteOrder
}

// ResolveType translates a PLY type name into a NumericType for format f.
func ResolveType(name string, f Format) (NumericType, error) {
	k, ok := typeNames[name]
	if !ok {
		return NumericType{}, newError(ErrUnknownType, "unknown PLY type identifier '%s'", name)
	}
	switch f {
	case FormatASCII, FormatBinaryLittleEndian, FormatBinaryBigEndian:
		return NumericType{Kind: k, Order: f.ByteOrder()}, nil
	}
	return NumericType{}, newError(ErrUnsupportedFormat, "unknown PLY format identifier '%s'", f)
}

// Size returns the width in bytes.
func (t NumericType) Size() int {
	return t.Kind.Size()
}

// String renders the type with a byte order marker, e.g. "<float".
func (t NumericType) String() string {
	switch t.Order {
	case binary.LittleEndian:
		return "<" + t.Kind.String()
	case binary.BigEndian:
		return ">" + t.Kind.String()
	}
	return t.Kind.String()
}
