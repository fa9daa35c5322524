// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package core

import (
	"encoding/binary"
	"math"
	"strconv"
)

// Values is the decoded data of one property: a Column for scalar
// properties or a Jagged for list properties.
type Values interface {
	Kind() Kind
	Len() int
}

// Column is a flat, typed sequence of decoded values. Each primitive kind
// has its own concrete slice type so width and signedness survive decoding.
type Column interface {
	Values
	// Float64 returns value i widened to float64.
	Float64(i int) float64
	// Float32 copies the column into a new float32 slice.
	Float32() []float32
	// FormatValue renders value i as an ASCII body token.
	FormatValue(i int) string
}

// Concrete column types.
type (
	Int8s    []int8
	Uint8s   []uint8
	Int16s   []int16
	Uint16s  []uint16
	Int32s   []int32
	Uint32s  []uint32
	Float16s []Float16
	Float32s []float32
	Float64s []float64
)

type number interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~float32 | ~float64
}

func toFloat32[T number](v []T) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}

func (c Int8s) Kind() Kind { return KindInt8 }
func (c Int8s) Len() int { return len(c) }
func (c Int8s) Float64(i int) float64 { return float64(c[i]) }
func (c Int8s) Float32() []float32 { return toFloat32(c) }
func (c Int8s) FormatValue(i int) string { return strconv.FormatInt(int64(c[i]), 10) }
func (c Uint8s) Kind() Kind { return KindUint8 }
func (c Uint8s) Len() int { return len(c) }
func (c Uint8s) Float64(i int) float64 { return float64(c[i]) }
func (c Uint8s) Float32() []float32 { return toFloat32(c) }
func (c Uint8s) FormatValue(i int) string { return strconv.FormatUint(uint64(c[i]), 10) }
func (c Int16s) Kind() Kind { return KindInt16 }
func (c Int16s) Len() int { return len(c) }
func (c Int16s) Float64(i int) float64 { return float64(c[i]) }
func (c Int16s) Float32() []float32 { return toFloat32(c) }
func (c Int16s) FormatValue(i int) string { return strconv.FormatInt(int64(c[i]), 10) }
func (c Uint16s) Kind() Kind { return KindUint16 }
func (c Uint16s) Len() int { return len(c) }
func (c Uint16s) Float64(i int) float64 { return float64(c[i]) }
func (c Uint16s) Float32() []float32 { return toFloat32(c) }
func (c Uint16s) FormatValue(i int) string {
	return strconv.FormatUint(uint64(c[i]), 10)
}
func (c Int32s) Kind() Kind { return KindInt32 }
func (c Int32s) Len() int { return len(c) }
func (c Int32s) Float64(i int) float64 { return float64(c[i]) }
func (c Int32s) Float32() []float32 { return toFloat32(c) }
func (c Int32s) FormatValue(i int) string { return strconv.FormatInt(int64(c[i]), 10) }
func (c Uint32s) Kind() Kind { return KindUint32 }
func (c Uint32s) Len() int { return len(c) }
func (c Uint32s) Float64(i int) float64 { return float64(c[i]) }
func (c Uint32s) Float32() []float32 { return toFloat32(c) }
func (c Uint32s) FormatValue(i int) string {
	return strconv.FormatUint(uint64(c[i]), 10)
}
func (c Float16s) Kind() Kind { return KindFloat16 }
func (c Float16s) Len() int { return len(c) }
func (c Float16s) Float64(i int) float64 { return float64(c[i].Float32()) }
func (c Float16s) Float32() []float32 {
	out := make([]float32, len(c))
	for i, h := range c {
		out[i] = h.Float32()
	}
	return out
}
func (c Float16s) FormatValue(i int) string {
	return strconv.FormatFloat(float64(c[i].Float32()), 'g', -1, 32)
}
func (c Float32s) Kind() Kind { return KindFloat32 }
func (c Float32s) Len() int { return len(c) }
func (c Float32s) Float64(i int) float64 { return float64(c[i]) }
func (c Float32s) Float32() []float32 {
	out := make([]float32, len(c))
	copy(out, c)
	return out
}
func (c Float32s) FormatValue(i int) string {
	return strconv.FormatFloat(float64(c[i]), 'g', -1, 32)
}
func (c Float64s) Kind() Kind { return KindFloat64 }
func (c Float64s) Len() int { return len(c) }
func (c Float64s) Float64(i int) float64 { return c[i] }
func (c Float64s) Float32() []float32 { return toFloat32(c) }
func (c Float64s) FormatValue(i int) string { return strconv.FormatFloat(c[i], 'g', -1, 64) }

// Jagged holds the rows of a list property; each row is a Column of the
// list's element kind with its own length.
type Jagged struct {
	kind Kind
	Rows []Column
}

// Kind returns the element kind of the rows.
func (j Jagged) Kind() Kind { return j.kind }

// Len returns the number of rows.
func (j Jagged) Len() int { return len(j.Rows) }

// NewColumn returns an empty column of kind k with the given capacity.
func NewColumn(k Kind, capacity int) Column {
	switch k {
	case KindInt8:
		return make(Int8s, 0, capacity)
	case KindUint8:
		return make(Uint8s, 0, capacity)
	case KindInt16:
		return make(Int16s, 0, capacity)
	case KindUint16:
		return make(Uint16s, 0, capacity)
	case KindInt32:
		return make(Int32s, 0, capacity)
	case KindUint32:
		return make(Uint32s, 0, capacity)
	case KindFloat16:
		return make(Float16s, 0, capacity)
	case KindFloat32:
		return make(Float32s, 0, capacity)
	case KindFloat64:
		return make(Float64s, 0, capacity)
	}
	return nil
}

// appendBinary decodes rows values from a packed buffer and appends them to
// dst. Value r starts at offset+r*stride and is stored in byte order order.
//
//nolint:gosec // G115: reinterpreting unsigned bit patterns as signed values
func appendBinary(dst Column, buf []byte, rows, offset, stride int, order binary.ByteOrder) Column {
	switch c := dst.(type) {
	case Int8s:
		for r := 0; r < rows; r++ {
			c = append(c, int8(buf[offset+r*stride]))
		}
		return c
	case Uint8s:
		for r := 0; r < rows; r++ {
			c = append(c, buf[offset+r*stride])
		}
		return c
	case Int16s:
		for r := 0; r < rows; r++ {
			p := offset + r*stride
			c = append(c, int16(order.Uint16(buf[p:p+2])))
		}
		return c
	case Uint16s:
		for r := 0; r < rows; r++ {
			p := offset + r*stride
			c = append(c, order.Uint16(buf[p:p+2]))
		}
		return c
	case Int32s:
		for r := 0; r < rows; r++ {
			p := offset + r*stride
			c = append(c, int32(order.Uint32(buf[p:p+4])))
		}
		return c
	case Uint32s:
		for r := 0; r < rows; r++ {
			p := offset + r*stride
			c = append(c, order.Uint32(buf[p:p+4]))
		}
		return c
	case Float16s:
		for r := 0; r < rows; r++ {
			p := offset + r*stride
			c = append(c, Float16(order.Uint16(buf[p:p+2])))
		}
		return c
	case Float32s:
		for r := 0; r < rows; r++ {
			p := offset + r*stride
			c = append(c, math.Float32frombits(order.Uint32(buf[p:p+4])))
		}
		return c
	case Float64s:
		for r := 0; r < rows; r++ {
			p := offset + r*stride
			c = append(c, math.Float64frombits(order.Uint64(buf[p:p+8])))
		}
		return c
	}
	return dst
}

// appendToken parses one ASCII token and appends it to dst.
func appendToken(dst Column, tok string) (Column, error) {
	switch c := dst.(type) {
	case Int8s:
		v, err := strconv.ParseInt(tok, 10, 8)
		return append(c, int8(v)), err
	case Uint8s:
		v, err := strconv.ParseUint(tok, 10, 8)
		return append(c, uint8(v)), err
	case Int16s:
		v, err := strconv.ParseInt(tok, 10, 16)
		return append(c, int16(v)), err
	case Uint16s:
		v, err := strconv.ParseUint(tok, 10, 16)
		return append(c, uint16(v)), err
	case Int32s:
		v, err := strconv.ParseInt(tok, 10, 32)
		return append(c, int32(v)), err
	case Uint32s:
		v, err := strconv.ParseUint(tok, 10, 32)
		return append(c, uint32(v)), err
	case Float16s:
		v, err := strconv.ParseFloat(tok, 32)
		return append(c, Float16FromFloat32(float32(v))), err
	case Float32s:
		v, err := strconv.ParseFloat(tok, 32)
		return append(c, float32(v)), err
	case Float64s:
		v, err := strconv.ParseFloat(tok, 64)
		return append(c, v), err
	}
	return dst, newError(ErrUnknownType, "no decoder for column of kind %s", dst.Kind())
}
