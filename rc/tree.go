// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rc

// ProbTree stores the probability values for a fixed-bit-size value coded
// most-significant bit first.
type ProbTree struct {
	probs []Prob
	bits  int
}

// NewProbTree creates a tree for values with the given number of bits. The
// function panics if bits is outside of [1,16].
func NewProbTree(bits int) *ProbTree {
	if !(1 <= bits && bits <= 16) {
		panic("rc: bits outside of range [1,16]")
	}
	t := &ProbTree{
		bits:  bits,
		probs: make([]Prob, 1<<uint(bits)),
	}
	InitProbs(t.probs)
	return t
}

// Bits provides the number of bits for the values to de- or encode.
func (t *ProbTree) Bits() int {
	return t.bits
}

// Encode uses the range encoder to encode a fixed-bit-size value.
func (t *ProbTree) Encode(e *Encoder, v uint32) error {
	m := uint32(1)
	for i := t.bits - 1; i >= 0; i-- {
		b := (v >> uint(i)) & 1
		if err := e.Encode(Bit(b), &t.probs[m]); err != nil {
			return err
		}
		m = (m << 1) | b
	}
	return nil
}

// Decode uses the range decoder to decode a fixed-bit-size value.
func (t *ProbTree) Decode(d *Decoder) (v uint32, err error) {
	m := uint32(1)
	for j := 0; j < t.bits; j++ {
		b, err := d.Decode(&t.probs[m])
		if err != nil {
			return 0, err
		}
		m = (m << 1) | uint32(b)
	}
	return m - (1 << uint(t.bits)), nil
}
