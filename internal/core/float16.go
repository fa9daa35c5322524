// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package core

import "math"

// Float16 is an IEEE 754 binary16 value, the PLY "float16" type.
//
// Format (16 bits total):
//   - Bit 15:     Sign (1 bit)
//   - Bits 14-10: Exponent (5 bits, bias=15)
//   - Bits 9-0:   Mantissa (10 bits)
//
// Values are kept as raw bits so decoding is exact; conversions to float32
// are lossless.
type Float16 uint16

// Float32 widens the value to float32.
func (h Float16) Float32() float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1F
	frac := uint32(h & 0x03FF)

	switch exp {
	case 0:
		if frac == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal: shift until the implicit bit appears.
		e := uint32(127 - 14)
		for frac&0x0400 == 0 {
			frac <<= 1
			e--
		}
		frac &= 0x03FF
		return math.Float32frombits(sign | e<<23 | frac<<13)
	case 0x1F:
		return math.Float32frombits(sign | 0x7F800000 | frac<<13)
	}
	return math.Float32frombits(sign | (exp+127-15)<<23 | frac<<13)
}

// Float16FromFloat32 narrows f to binary16, rounding to nearest even.
// Values beyond the binary16 range become infinities.
func Float16FromFloat32(f float32) Float16 {
	bits := math.Float32bits(f)
	//nolint:gosec // G115: upper half of the float32 bit pattern
	sign := uint16(bits>>16) & 0x8000
	exp := int32(bits>>23) & 0xFF
	frac := bits & 0x007FFFFF

	if exp == 0xFF {
		if frac == 0 {
			return Float16(sign | 0x7C00)
		}
		//nolint:gosec // G115: top mantissa bits of a NaN payload
		return Float16(sign | 0x7E00 | uint16(frac>>13))
	}

	e := exp - 127 + 15
	if e >= 0x1F {
		return Float16(sign | 0x7C00)
	}

	if e <= 0 {
		if e < -10 {
			return Float16(sign)
		}
		m := frac | 0x00800000
		//nolint:gosec // G115: e is in [-10, 0]
		shift := uint32(14 - e)
		return Float16(sign | uint16(roundShift(m, shift)))
	}

	//nolint:gosec // G115: e is in [1, 30]
	h := uint32(e)<<10 | frac>>13
	rem := frac & 0x1FFF
	if rem > 0x1000 || (rem == 0x1000 && h&1 == 1) {
		h++
	}
	//nolint:gosec // G115: h fits 15 bits, a carry into the exponent yields Inf
	return Float16(sign | uint16(h))
}

// roundShift shifts m right by shift bits, rounding to nearest even.
func roundShift(m, shift uint32) uint32 {
	q := m >> shift
	rem := m & (1<<shift - 1)
	half := uint32(1) << (shift - 1)
	if rem > half || (rem == half && q&1 == 1) {
		q++
	}
	return q
}
