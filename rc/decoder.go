// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rc

import (
	"errors"
	"io"
)

// ErrInit indicates that the first bytes of a stream cannot be the start of
// a range-coded stream.
var ErrInit = errors.New("rc: invalid range coder start")

// Decoder decodes single bits of the range encoding stream.
type Decoder struct {
	r      io.ByteReader
	range_ uint32
	code   uint32
}

// NewDecoder creates a decoder reading from r. Init must be called before
// any bit can be decoded.
func NewDecoder(r io.ByteReader) *Decoder {
	return &Decoder{r: r}
}

// Init reads the first five bytes of the stream. An empty stream returns
// io.EOF, a stream ending inside the first five bytes io.ErrUnexpectedEOF.
func (d *Decoder) Init() error {
	d.range_ = 0xffffffff
	d.code = 0

	b, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	if b != 0 {
		return ErrInit
	}

	for i := 0; i < 4; i++ {
		if err = d.updateCode(); err != nil {
			return err
		}
	}

	if d.code >= d.range_ {
		return ErrInit
	}

	return nil
}

// FinishingOK reports whether the decoder may be at the end of the stream.
func (d *Decoder) FinishingOK() bool {
	return d.code == 0
}

func (d *Decoder) updateCode() error {
	b, err := d.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return err
	}
	d.code = (d.code << 8) | uint32(b)
	return nil
}

func (d *Decoder) normalize() error {
	// assume d.code < d.range_
	const top = 1 << 24
	if d.range_ < top {
		d.range_ <<= 8
		// d.code < d.range_ will be maintained
		if err := d.updateCode(); err != nil {
			return err
		}
	}
	return nil
}

// DecodeDirect decodes a bit with probability 1/2.
func (d *Decoder) DecodeDirect() (b Bit, err error) {
	d.range_ >>= 1
	d.code -= d.range_
	t := 0 - (d.code >> 31)
	d.code += d.range_ & t

	// d.code will stay less then d.range_

	if err = d.normalize(); err != nil {
		return 0, err
	}
	return Bit((t + 1) & 1), nil
}

// DecodeDirectBits decodes n bits with probability 1/2, the most
// significant bit first.
func (d *Decoder) DecodeDirectBits(n int) (v uint32, err error) {
	for i := 0; i < n; i++ {
		b, err := d.DecodeDirect()
		if err != nil {
			return 0, err
		}
		v = (v << 1) | uint32(b)
	}
	return v, nil
}

// Decode decodes a single bit. The probability value will be updated.
func (d *Decoder) Decode(p *Prob) (b Bit, err error) {
	bound := p.Bound(d.range_)
	if d.code < bound {
		d.range_ = bound
		p.Inc()
		b = 0
	} else {
		d.code -= bound
		d.range_ -= bound
		p.Dec()
		b = 1
	}

	// d.code will stay less then d.range_

	if err = d.normalize(); err != nil {
		return 0, err
	}
	return b, nil
}
