// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lpc

import (
	"errors"
	"io"

	"github.com/videodanchik/lilcom/intstream"
	"github.com/videodanchik/lilcom/lpcmath"
)

// Writer compresses a stream of samples.
type Writer struct {
	c   *Context
	enc ResidualWriter
	obs Observer
	err error
}

// NewWriter creates a writer with the default estimator and residual coder
// writing the code to z. If z doesn't support io.ByteWriter it should be
// buffered.
func NewWriter(z io.Writer, cfg Config) (*Writer, error) {
	cfg.SetDefaults()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	est, err := lpcmath.NewEstimator(cfg.LPC)
	if err != nil {
		return nil, err
	}
	enc, err := intstream.NewWriter(z, cfg.Truncation)
	if err != nil {
		return nil, err
	}
	return NewWriterCoder(enc, est, cfg)
}

// NewWriterCoder creates a writer using the given residual coder and
// estimator. Only the Observer and Debug fields of cfg are used.
func NewWriterCoder(enc ResidualWriter, est Estimator, cfg Config) (*Writer, error) {
	if enc == nil || est == nil {
		return nil, errors.New("lpc: coder and estimator must not be nil")
	}
	c := NewContext(est)
	c.obs = cfg.Observer
	c.debug = cfg.Debug
	w := &Writer{c: c, enc: enc, obs: cfg.Observer}
	return w, nil
}

// Write compresses a single sample. It returns the value that the reader
// will produce for the sample, which differs from value if the residual
// coder truncated the residual.
func (w *Writer) Write(value int16) (decompressed int16, err error) {
	if w.err != nil {
		return 0, w.err
	}
	pred := w.c.Predict()
	residual := int32(value) - int32(pred)
	dv, dr, err := w.enc.WriteLimited(residual, pred)
	if err != nil {
		w.err = err
		return 0, err
	}
	if w.obs != nil && (dv != value || dr != residual) {
		w.obs.Mismatch(Mismatch{
			Time:                 w.c.t,
			Value:                value,
			Prediction:           pred,
			Residual:             residual,
			Decompressed:         dv,
			DecompressedResidual: dr,
		})
	}
	if err = w.c.Advance(dv, dr); err != nil {
		w.err = err
		return 0, err
	}
	return dv, nil
}

// WriteSamples writes all samples in p. If decompressed is not nil, it must
// have at least the length of p and receives the values the reader will
// produce.
func (w *Writer) WriteSamples(p []int16, decompressed []int16) (n int, err error) {
	if decompressed != nil && len(decompressed) < len(p) {
		return 0, errors.New("lpc: decompressed slice too short")
	}
	for n < len(p) {
		v, err := w.Write(p[n])
		if err != nil {
			return n, err
		}
		if decompressed != nil {
			decompressed[n] = v
		}
		n++
	}
	return n, nil
}

// Close finishes the stream. It doesn't close the underlying writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if err := w.enc.Close(); err != nil {
		w.err = err
		return err
	}
	w.err = ErrClosed
	return nil
}

// Time returns the number of samples written.
func (w *Writer) Time() int64 { return w.c.Time() }

// State returns a copy of the prediction state.
func (w *Writer) State() State { return w.c.State() }
