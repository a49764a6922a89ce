// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intstream

import (
	"errors"
	"fmt"
	"io"
	"math/bits"

	"github.com/videodanchik/lilcom/basics/i16"
	"github.com/videodanchik/lilcom/rc"
)

// ErrClosed is returned by a writer that has already been closed.
var ErrClosed = errors.New("intstream: writer closed")

// Writer codes residuals into a byte stream.
type Writer struct {
	cfg TruncationConfig
	e   *rc.Encoder
	m   *model
	err error
}

// NewWriter creates a residual writer. If z doesn't support io.ByteWriter
// every byte is written with a separate Write call; wrap z into a
// bufio.Writer for efficiency.
func NewWriter(z io.Writer, cfg TruncationConfig) (*Writer, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	w := &Writer{
		cfg: cfg,
		e:   rc.NewEncoder(newByteWriter(z)),
		m:   newModel(),
	}
	return w, nil
}

// Len returns the number of bytes written to the underlying writer so far.
func (w *Writer) Len() int64 {
	return w.e.Len()
}

// WriteLimited codes the residual of a sample whose prediction is given.
// It returns the value and the residual the reader will recover. Both
// differ from prediction+residual and residual if the truncation
// configuration dropped low-order bits of the residual. Since the
// magnitude is rounded toward zero the returned value always lies between
// the prediction and the requested value.
func (w *Writer) WriteLimited(residual int32, prediction int16) (value int16, committed int32, err error) {
	if w.err != nil {
		return 0, 0, w.err
	}
	v := int64(prediction) + int64(residual)
	if !i16.Fits(v) {
		return 0, 0, fmt.Errorf(
			"intstream: value %d out of int16 range", v)
	}
	neg := residual < 0
	mag := uint32(residual)
	if neg {
		mag = uint32(-residual)
	}
	width := bits.Len32(mag)
	s := w.cfg.shift(width)
	mag = (mag >> uint(s)) << uint(s)
	if err = w.encode(width, neg, mag, s); err != nil {
		w.err = err
		return 0, 0, err
	}
	committed = int32(mag)
	if neg {
		committed = -committed
	}
	return int16(int64(prediction) + int64(committed)), committed, nil
}

// encode writes the symbols for a magnitude of the given width of which
// the lowest s bits are dropped.
func (w *Writer) encode(width int, neg bool, mag uint32, s int) error {
	m := w.m
	c := ctx(m.prev)
	if err := m.widths[c].Encode(w.e, uint32(width)); err != nil {
		return err
	}
	m.prev = width
	if width == 0 {
		return nil
	}
	var sign rc.Bit
	if neg {
		sign = 1
	}
	c = ctx(width)
	if err := w.e.Encode(sign, &m.sign[c]); err != nil {
		return err
	}
	n := width - 1 - s
	if n <= 0 {
		return nil
	}
	mant := (mag >> uint(s)) & (1<<uint(n) - 1)
	top := rc.Bit(mant >> uint(n-1))
	if err := w.e.Encode(top, &m.mantissa[c]); err != nil {
		return err
	}
	return w.e.EncodeDirectBits(mant, n-1)
}

// Close writes the end-of-stream marker and flushes the range encoder.
// It doesn't close the underlying writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	c := ctx(w.m.prev)
	if err := w.m.widths[c].Encode(w.e, eosWidth); err != nil {
		w.err = err
		return err
	}
	if err := w.e.Flush(); err != nil {
		w.err = err
		return err
	}
	w.err = ErrClosed
	return nil
}
