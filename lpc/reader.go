// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lpc

import (
	"errors"
	"io"

	"github.com/videodanchik/lilcom/basics/i16"
	"github.com/videodanchik/lilcom/intstream"
	"github.com/videodanchik/lilcom/lpcmath"
)

// Reader decompresses a stream of samples.
type Reader struct {
	c   *Context
	dec ResidualReader
	err error
}

// NewReader creates a reader with the default estimator and residual coder
// reading the code from z. The configuration must match the configuration
// of the writer.
func NewReader(z io.Reader, cfg Config) (*Reader, error) {
	cfg.SetDefaults()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	est, err := lpcmath.NewEstimator(cfg.LPC)
	if err != nil {
		return nil, err
	}
	dec, err := intstream.NewReader(z, cfg.Truncation)
	if err != nil {
		return nil, err
	}
	return NewReaderCoder(dec, est, cfg)
}

// NewReaderCoder creates a reader using the given residual decoder and
// estimator. Only the Observer and Debug fields of cfg are used.
func NewReaderCoder(dec ResidualReader, est Estimator, cfg Config) (*Reader, error) {
	if dec == nil || est == nil {
		return nil, errors.New("lpc: decoder and estimator must not be nil")
	}
	c := NewContext(est)
	c.obs = cfg.Observer
	c.debug = cfg.Debug
	return &Reader{c: c, dec: dec}, nil
}

// Read returns the next sample. At the end of the stream io.EOF is
// returned. A residual that moves the value out of the int16 range results
// in a *RangeError wrapping ErrCorrupt. After an error the reader returns
// the same error for all following calls.
func (r *Reader) Read() (value int16, err error) {
	if r.err != nil {
		return 0, r.err
	}
	residual, err := r.dec.Read()
	if err != nil {
		r.err = err
		return 0, err
	}
	pred := r.c.Predict()
	v := int64(pred) + int64(residual)
	if !i16.Fits(v) {
		r.err = &RangeError{
			Time:       r.c.t,
			Prediction: pred,
			Residual:   residual,
		}
		return 0, r.err
	}
	if err = r.c.Advance(int16(v), residual); err != nil {
		r.err = err
		return 0, err
	}
	return int16(v), nil
}

// ReadSamples fills p with samples. It returns the number of samples read
// and io.EOF if the stream ended before p could be filled.
func (r *Reader) ReadSamples(p []int16) (n int, err error) {
	for n < len(p) {
		v, err := r.Read()
		if err != nil {
			return n, err
		}
		p[n] = v
		n++
	}
	return n, nil
}

// Time returns the number of samples read.
func (r *Reader) Time() int64 { return r.c.Time() }

// State returns a copy of the prediction state.
func (r *Reader) State() State { return r.c.State() }
