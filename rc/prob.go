// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rc implements the binary adaptive range coder used for the
// residual codes of the lilcom streams.
package rc

// Bit holds a single bit in its least-significant position.
type Bit byte

// Test reports whether the bit is set.
func (b Bit) Test() bool {
	return b&1 != 0
}

// moveBits defines the number of bits used for the updates of probability
// values.
const moveBits = 5

// ProbBits defines the number of bits of a probability value.
const ProbBits = 11

// Initial value for a probability value. It is 0.5.
const ProbInit Prob = 1 << (ProbBits - 1)

// Type Prob represents the probability that the next bit is zero.
type Prob uint16

// Dec decreases the probability. The decrease is proportional to the
// probability value.
func (p *Prob) Dec() {
	*p -= *p >> moveBits
}

// Inc increases the probability. The Increase is proportional to the
// difference of 1 and the probability value.
func (p *Prob) Inc() {
	*p += ((1 << ProbBits) - *p) >> moveBits
}

// Bound computes the new bound for a given range using the probability value.
func (p Prob) Bound(r uint32) uint32 {
	return (r >> ProbBits) * uint32(p)
}

// InitProbs sets all probabilities in the slice to ProbInit.
func InitProbs(p []Prob) {
	for i := range p {
		p[i] = ProbInit
	}
}
