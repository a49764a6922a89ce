// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lpc

import "github.com/videodanchik/lilcom/lpcmath"

// Context holds the prediction state shared in identical form by Writer and
// Reader. It contains the reconstructed samples of the current block
// together with Order samples of left context and the residuals of the
// current block.
//
// The coefficients in use have been estimated from the blocks before the
// current block only. After the last sample of a block has been added, the
// block is passed to the estimator and the left context is refreshed, so
// the first prediction of the next block uses the new coefficients and the
// correct history.
type Context struct {
	est       Estimator
	order     int
	blockSize int

	// t counts the samples added
	t int64
	// history[:order] is the left context, history[order:] the current
	// block
	history  []int16
	residual []int32

	obs   Observer
	debug bool
}

// NewContext creates a prediction context using the estimator. It panics if
// the estimator reports a negative order or a block size less than one.
func NewContext(est Estimator) *Context {
	order, bs := est.Order(), est.BlockSize()
	if order < 0 || bs < 1 {
		panic("lpc: invalid estimator dimensions")
	}
	return &Context{
		est:       est,
		order:     order,
		blockSize: bs,
		history:   make([]int16, order+bs),
		residual:  make([]int32, bs),
	}
}

// Time returns the number of samples added to the context.
func (c *Context) Time() int64 { return c.t }

// Coeffs returns the coefficients used for the current block.
func (c *Context) Coeffs() []int32 { return c.est.Coeffs() }

// pos returns the position of the current sample inside the block.
func (c *Context) pos() int {
	return int(c.t % int64(c.blockSize))
}

// Predict returns the prediction for the sample at the current time. It
// doesn't change the context.
func (c *Context) Predict() int16 {
	return lpcmath.Predict(c.history[:c.order+c.pos()], c.est.Coeffs())
}

// Advance adds the reconstructed value and residual for the current time
// and increments the time. If the Debug option is set, the residual is
// checked against value and prediction and a *ConsistencyError is returned
// on a mismatch; the context is not changed in that case.
func (c *Context) Advance(value int16, residual int32) error {
	if c.debug {
		pred := c.Predict()
		if residual != int32(value)-int32(pred) {
			return &ConsistencyError{
				Time:       c.t,
				Value:      value,
				Prediction: pred,
				Residual:   residual,
			}
		}
	}
	k := c.pos()
	c.history[c.order+k] = value
	c.residual[k] = residual
	c.t++
	if k == c.blockSize-1 {
		c.closeBlock()
	}
	return nil
}

// closeBlock estimates the coefficients for the next block and moves the
// last order samples into the left context.
func (c *Context) closeBlock() {
	c.est.AcceptBlock(c.history, c.residual)
	copy(c.history[:c.order], c.history[c.blockSize:])
	if c.obs == nil {
		return
	}
	b := BlockEvent{
		Block:  c.t/int64(c.blockSize) - 1,
		Time:   c.t,
		Coeffs: c.est.Coeffs(),
	}
	if er, ok := c.est.(energyReporter); ok {
		b.SignalEnergy = er.SignalEnergy()
		b.ResidualEnergy = er.ResidualEnergy()
	}
	c.obs.Block(b)
}

// State is a copy of the prediction state.
type State struct {
	Time     int64
	Coeffs   []int32
	History  []int16
	Residual []int32
}

// State returns a copy of the current state. Writer and Reader of the same
// stream have equal states after the same number of samples.
func (c *Context) State() State {
	s := State{
		Time:     c.t,
		Coeffs:   append([]int32(nil), c.est.Coeffs()...),
		History:  append([]int16(nil), c.history[:c.order+c.pos()]...),
		Residual: append([]int32(nil), c.residual[:c.pos()]...),
	}
	return s
}
