// Copyright (c) 2025 SciGo PLY Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package utils

import (
	"fmt"
	"math"
)

// CheckMultiplyOverflow checks if multiplying two uint64 values would overflow.
// Returns an error if overflow would occur.
func CheckMultiplyOverflow(a, b uint64) error {
	if a == 0 || b == 0 {
		return nil
	}

	if a > math.MaxUint64/b {
		return fmt.Errorf("multiplication overflow: %d * %d exceeds uint64 max", a, b)
	}

	return nil
}

// SafeMultiply multiplies two uint64 values and returns the result if no overflow occurs.
// Returns 0 and an error if overflow would occur.
func SafeMultiply(a, b uint64) (uint64, error) {
	if err := CheckMultiplyOverflow(a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// RecordBytes returns rows*stride as an int, failing when the product does
// not fit the address space.
func RecordBytes(rows, stride int) (int, error) {
	if rows < 0 || stride < 0 {
		return 0, fmt.Errorf("negative size: %d rows of %d bytes", rows, stride)
	}
	n, err := SafeMultiply(uint64(rows), uint64(stride))
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt {
		return 0, fmt.Errorf("record size %d exceeds addressable memory", n)
	}
	return int(n), nil
}

// ValidateCount validates that a declared count is within limits.
// A zero maxCount disables the upper bound.
func ValidateCount(count, maxCount int, description string) error {
	if count < 0 {
		return fmt.Errorf("%s: count %d is negative", description, count)
	}

	if maxCount > 0 && count > maxCount {
		return fmt.Errorf("%s: count %d exceeds maximum %d", description, count, maxCount)
	}

	return nil
}

// Default limits applied to declared sizes.
const (
	// MaxListLength limits the length of one list row (16M values).
	MaxListLength = 16 * 1024 * 1024

	// MaxElementRows limits the declared row count of one element.
	MaxElementRows = math.MaxInt32
)
