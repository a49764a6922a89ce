// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intstream codes the residuals of the LPC streams. Every residual
// is coded as its bit length, its sign and the bits below the leading one.
// With a truncation configuration the lowest bits of large residuals are
// dropped; the writer reports the value the reader will actually recover.
//
// All symbols are coded with the binary range coder of package rc. The
// stream ends with an end-of-stream marker written by Close.
package intstream

import "github.com/videodanchik/lilcom/rc"

const (
	// widthBits is the size of the bit-length symbol.
	widthBits = 5
	// eosWidth is the bit-length symbol marking the end of the stream.
	eosWidth = 1<<widthBits - 1
	// maxWidth is the bit length of the largest residual between two
	// int16 values.
	maxWidth = 16
	// widthContexts is the number of contexts for the bit-length trees;
	// the context is the bit length of the previous residual.
	widthContexts = maxWidth + 1
)

// model holds the adaptive probabilities shared by the writer and the
// reader. Both sides update it identically.
type model struct {
	widths   [widthContexts]*rc.ProbTree
	sign     [widthContexts]rc.Prob
	mantissa [widthContexts]rc.Prob
	prev     int
}

func newModel() *model {
	m := new(model)
	for i := range m.widths {
		m.widths[i] = rc.NewProbTree(widthBits)
	}
	rc.InitProbs(m.sign[:])
	rc.InitProbs(m.mantissa[:])
	return m
}

// ctx maps a bit length to its context index. Widths beyond maxWidth only
// appear in corrupted streams.
func ctx(width int) int {
	if width > maxWidth {
		return maxWidth
	}
	return width
}
