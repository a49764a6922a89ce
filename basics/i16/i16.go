// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package i16 provides range checks for 16-bit signal samples.
package i16

// Minimum and maximum value for the int16 type.
const (
	Min = -1 << 15
	Max = 1<<15 - 1
)

// Fits reports whether x can be represented as int16.
func Fits(x int64) bool {
	return Min <= x && x <= Max
}

// Clamp saturates x to the int16 range.
func Clamp(x int64) int16 {
	switch {
	case x < Min:
		return Min
	case x > Max:
		return Max
	}
	return int16(x)
}
