// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i16

import "testing"

func TestClamp(t *testing.T) {
	tests := [...]struct {
		x    int64
		z    int16
		fits bool
	}{
		{0, 0, true},
		{Max, Max, true},
		{Min, Min, true},
		{Max + 1, Max, false},
		{Min - 1, Min, false},
		{1 << 40, Max, false},
		{-1 << 40, Min, false},
	}
	for _, c := range tests {
		if z := Clamp(c.x); z != c.z {
			t.Errorf("Clamp(%d) = %d; want %d", c.x, z, c.z)
		}
		if fits := Fits(c.x); fits != c.fits {
			t.Errorf("Fits(%d) = %t; want %t", c.x, fits, c.fits)
		}
	}
}
