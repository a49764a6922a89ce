// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lpc

import (
	"errors"
	"fmt"
)

// ErrCorrupt indicates a stream that decodes to values outside of the
// int16 range.
var ErrCorrupt = errors.New("lpc: corrupted stream")

// ErrClosed is returned by a Writer after Close.
var ErrClosed = errors.New("lpc: writer closed")

// RangeError reports a decoded residual that moves the reconstructed value
// out of the int16 range. It wraps ErrCorrupt.
type RangeError struct {
	Time       int64
	Prediction int16
	Residual   int32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf(
		"lpc: value out of range at time %d: prediction %d + residual %d",
		e.Time, e.Prediction, e.Residual)
}

// Unwrap returns ErrCorrupt.
func (e *RangeError) Unwrap() error { return ErrCorrupt }

// ConsistencyError reports a residual that doesn't equal the difference of
// value and prediction. It is only returned if Config.Debug is set.
type ConsistencyError struct {
	Time       int64
	Value      int16
	Prediction int16
	Residual   int32
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf(
		"lpc: residual %d at time %d differs from value %d - prediction %d",
		e.Residual, e.Time, e.Value, e.Prediction)
}
