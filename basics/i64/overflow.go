// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package i64 provides overflow-aware arithmetic for the int64
// accumulators of the LPC statistics.
package i64

// Minimum and maximum value for the int64 type.
const (
	Min = -1 << 63
	Max = 1<<63 - 1
)

// Add adds x and y and detects overflow.
func Add(x, y int64) (z int64, overflow bool) {
	z = x + y
	return z, (z^x)&(z^y)&Min != 0
}

// Sub computes x-y and detects overflow.
func Sub(x, y int64) (z int64, overflow bool) {
	z = x - y
	return z, (z^x) & ^(z^y) & Min != 0
}

// Abs returns the absolute value of x. Abs(Min) overflows and returns Min.
func Abs(x int64) int64 {
	m := x >> 63
	return (x ^ m) - m
}

// Shr shifts x right by s bits and rounds the result to the nearest
// integer; halves are rounded toward positive infinity.
func Shr(x int64, s uint) int64 {
	if s == 0 {
		return x
	}
	return (x + 1<<(s-1)) >> s
}
