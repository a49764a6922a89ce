// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lpc

// Estimator computes predictor coefficients from completed blocks. It must
// be deterministic: the same sequence of blocks must always produce the same
// coefficients. The *lpcmath.Estimator type implements the interface.
type Estimator interface {
	// Order returns the number of coefficients.
	Order() int
	// BlockSize returns the number of samples per block.
	BlockSize() int
	// Coeffs returns the current coefficients in Q14 format.
	Coeffs() []int32
	// AcceptBlock receives Order samples of left context followed by
	// the BlockSize samples of the completed block and the residuals of
	// the block.
	AcceptBlock(x []int16, residual []int32)
}

// ResidualWriter codes residuals. WriteLimited returns the value and the
// residual a ResidualReader will recover, which may differ from the
// arguments for a lossy coder. The *intstream.Writer type implements the
// interface.
type ResidualWriter interface {
	WriteLimited(residual int32, prediction int16) (value int16, committed int32, err error)
	Close() error
}

// ResidualReader decodes residuals. It returns io.EOF at the end of the
// stream. The *intstream.Reader type implements the interface.
type ResidualReader interface {
	Read() (residual int32, err error)
}
