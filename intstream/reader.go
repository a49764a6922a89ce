// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intstream

import (
	"errors"
	"io"

	"github.com/videodanchik/lilcom/rc"
)

// ErrCorrupt indicates that the end-of-stream marker has been found in a
// position where the stream cannot end.
var ErrCorrupt = errors.New("intstream: corrupted end of stream")

// Reader decodes the residuals written by Writer.
type Reader struct {
	cfg TruncationConfig
	d   *rc.Decoder
	m   *model
	err error
}

// NewReader creates a residual reader. It reads the first five bytes of the
// stream and may therefore return an error. An empty stream is a valid
// stream without residuals.
func NewReader(z io.Reader, cfg TruncationConfig) (*Reader, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	r := &Reader{
		cfg: cfg,
		d:   rc.NewDecoder(newByteReader(z)),
		m:   newModel(),
	}
	if err := r.d.Init(); err != nil {
		if err != io.EOF {
			return nil, err
		}
		r.err = io.EOF
	}
	return r, nil
}

// Read decodes the next residual. It returns io.EOF at the end of the
// stream. If the byte stream ends before the end-of-stream marker
// io.ErrUnexpectedEOF is returned. Errors are sticky.
//
// Corrupted streams may produce residuals that no writer could have
// produced; the caller is responsible for checking the range of the
// reconstructed value.
func (r *Reader) Read() (residual int32, err error) {
	if r.err != nil {
		return 0, r.err
	}
	if residual, err = r.decode(); err != nil {
		r.err = err
		return 0, err
	}
	return residual, nil
}

func (r *Reader) decode() (residual int32, err error) {
	m := r.m
	c := ctx(m.prev)
	w, err := m.widths[c].Decode(r.d)
	if err != nil {
		return 0, err
	}
	width := int(w)
	if width == eosWidth {
		if !r.d.FinishingOK() {
			return 0, ErrCorrupt
		}
		return 0, io.EOF
	}
	m.prev = width
	if width == 0 {
		return 0, nil
	}
	c = ctx(width)
	sign, err := r.d.Decode(&m.sign[c])
	if err != nil {
		return 0, err
	}
	s := r.cfg.shift(width)
	mag := uint32(1) << uint(width-1)
	if n := width - 1 - s; n > 0 {
		top, err := r.d.Decode(&m.mantissa[c])
		if err != nil {
			return 0, err
		}
		rest, err := r.d.DecodeDirectBits(n - 1)
		if err != nil {
			return 0, err
		}
		mant := uint32(top)<<uint(n-1) | rest
		mag |= mant << uint(s)
	}
	residual = int32(mag)
	if sign.Test() {
		residual = -residual
	}
	return residual, nil
}
