// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lpcmath estimates linear predictor coefficients from blocks of
// reconstructed samples. All computations use integer arithmetic, so that
// encoder and decoder derive bit-identical coefficients on every platform.
package lpcmath

import (
	"github.com/videodanchik/lilcom/basics/i16"
	"github.com/videodanchik/lilcom/basics/i64"
)

// CoeffShift is the number of fractional bits of the coefficients returned
// by the estimator.
const CoeffShift = 14

const (
	// levinsonShift is the fixed-point precision of the recursion.
	levinsonShift = 16
	// statBits limits the normalized autocorrelation values.
	statBits = 28
	// coeffBits limits the magnitude of the integer part of a
	// coefficient during the recursion.
	coeffBits = 8
)

// Estimator accumulates autocorrelation statistics over blocks and solves
// the Toeplitz normal equations with a fixed-point Levinson-Durbin
// recursion.
type Estimator struct {
	cfg    Config
	acc    []int64
	r      []int64
	a      []int64
	tmp    []int64
	coeffs []int32

	blocks         int64
	signalEnergy   int64
	residualEnergy int64
}

// NewEstimator creates an estimator for the given configuration. The
// initial coefficients are all zero.
func NewEstimator(cfg Config) (*Estimator, error) {
	cfg.SetDefaults()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	n := cfg.Order + 1
	e := &Estimator{
		cfg:    cfg,
		acc:    make([]int64, n),
		r:      make([]int64, n),
		a:      make([]int64, cfg.Order),
		tmp:    make([]int64, cfg.Order),
		coeffs: make([]int32, cfg.Order),
	}
	return e, nil
}

// Config returns the configuration of the estimator with defaults applied.
func (e *Estimator) Config() Config {
	return e.cfg
}

// Order returns the number of coefficients.
func (e *Estimator) Order() int { return e.cfg.Order }

// BlockSize returns the number of samples per block.
func (e *Estimator) BlockSize() int { return e.cfg.BlockSize }

// Coeffs returns the current coefficients in Q14 format. The slice is owned
// by the estimator and changes with the next call of AcceptBlock.
func (e *Estimator) Coeffs() []int32 {
	return e.coeffs
}

// Blocks returns the number of blocks accepted.
func (e *Estimator) Blocks() int64 { return e.blocks }

// SignalEnergy returns the sum of squares of the last accepted block.
func (e *Estimator) SignalEnergy() int64 { return e.signalEnergy }

// ResidualEnergy returns the sum of squared residuals of the last accepted
// block.
func (e *Estimator) ResidualEnergy() int64 { return e.residualEnergy }

// AcceptBlock updates the statistics with a completed block and
// re-estimates the coefficients. The slice x must contain Order samples of
// left context followed by BlockSize samples of the block; residual must
// have BlockSize entries.
func (e *Estimator) AcceptBlock(x []int16, residual []int32) {
	p, bs := e.cfg.Order, e.cfg.BlockSize
	if len(x) != p+bs {
		panic("lpcmath: sample block has wrong length")
	}
	if len(residual) != bs {
		panic("lpcmath: residual block has wrong length")
	}

	r := e.r
	for k := range r {
		var s int64
		for n := p; n < len(x); n++ {
			s += int64(x[n]) * int64(x[n-k])
		}
		r[k] = s
	}
	var re int64
	for _, v := range residual {
		re += int64(v) * int64(v)
	}
	e.signalEnergy = r[0]
	e.residualEnergy = re
	e.blocks++

	e.accumulate()
	e.estimate()
}

// accumulate decays the old statistics and adds the block statistics in
// e.r. On overflow all values are halved and the addition is repeated.
func (e *Estimator) accumulate() {
	s := uint(e.cfg.DecayShift)
	for k := range e.acc {
		e.acc[k] -= e.acc[k] >> s
	}
	for {
		ok := true
		for k := range e.acc {
			if _, overflow := i64.Add(e.acc[k], e.r[k]); overflow {
				ok = false
				break
			}
		}
		if ok {
			break
		}
		for k := range e.acc {
			e.acc[k] >>= 1
			e.r[k] >>= 1
		}
	}
	for k := range e.acc {
		e.acc[k] += e.r[k]
	}
}

// estimate computes the coefficients from the accumulated statistics.
func (e *Estimator) estimate() {
	p := e.cfg.Order
	if p == 0 {
		return
	}
	r := e.r
	copy(r, e.acc)
	shift := uint(0)
	for r[0]>>shift > 1<<statBits {
		shift++
	}
	for k := range r {
		r[k] >>= shift
	}
	r[0] += r[0]>>uint(e.cfg.DiagShift) + 1

	levinson(e.a, e.tmp, r)

	for j, c := range e.a {
		e.coeffs[j] = int32(i64.Shr(c, levinsonShift-CoeffShift))
	}
}

// levinson solves the Toeplitz system given by the autocorrelation r for
// the coefficients a in Q16. The predictor is x[n] = sum a[j]*x[n-1-j].
// The recursion stops at the highest order that keeps the filter stable
// and the coefficients bounded; the remaining coefficients are zero.
// Extreme statistics may wrap the int64 products; the wrapping is the
// same on every platform and only degrades the prediction.
func levinson(a, tmp, r []int64) {
	const one = 1 << levinsonShift
	for j := range a {
		a[j] = 0
	}
	errv := r[0]
	for i := 0; i < len(a); i++ {
		if errv <= 0 {
			return
		}
		acc := r[i+1] << levinsonShift
		for j := 0; j < i; j++ {
			acc -= a[j] * r[i-j]
		}
		k := acc / errv
		if k >= one || k <= -one {
			return
		}
		copy(tmp, a[:i])
		for j := 0; j < i; j++ {
			c := tmp[j] - (k*tmp[i-1-j])>>levinsonShift
			if i64.Abs(c) >= 1<<(coeffBits+levinsonShift) {
				copy(a, tmp[:i])
				return
			}
			a[j] = c
		}
		a[i] = k
		errv -= (((k * k) >> levinsonShift) * errv) >> levinsonShift
	}
}

// Predict computes the rounded prediction for the sample following x using
// the Q14 coefficients. Samples before the start of x are treated as zero.
// The result is clamped to the int16 range.
func Predict(x []int16, coeffs []int32) int16 {
	var sum int64
	n := len(x)
	for j, c := range coeffs {
		i := n - 1 - j
		if i < 0 {
			break
		}
		sum += int64(c) * int64(x[i])
	}
	return i16.Clamp(i64.Shr(sum, CoeffShift))
}
