// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rc

import (
	"errors"
	"io"
)

// Encoder implements range encoding of single bits. The low value can
// overflow therefore we need uint64. The cache value is used to handle
// overflows.
type Encoder struct {
	w         io.ByteWriter
	range_    uint32
	low       uint64
	cacheSize int64
	cache     byte
	n         int64
}

// NewEncoder creates a new range encoder writing to w.
func NewEncoder(w io.ByteWriter) *Encoder {
	return &Encoder{w: w, range_: 0xffffffff, cacheSize: 1}
}

// Len returns the number of bytes written to the underlying writer.
func (e *Encoder) Len() int64 {
	return e.n
}

// Pending returns the number of bytes that Flush will add to the output.
func (e *Encoder) Pending() int64 {
	return e.cacheSize + 4
}

func (e *Encoder) shiftLow() error {
	if uint32(e.low) < 0xff000000 || (e.low>>32) != 0 {
		tmp := e.cache
		for {
			err := e.w.WriteByte(tmp + byte(e.low>>32))
			if err != nil {
				return err
			}
			e.n++
			tmp = 0xff
			e.cacheSize--
			if e.cacheSize <= 0 {
				if e.cacheSize < 0 {
					return errors.New("rc: negative cache size")
				}
				break
			}
		}
		e.cache = byte(uint32(e.low) >> 24)
	}
	e.cacheSize++
	e.low = uint64(uint32(e.low) << 8)
	return nil
}

func (e *Encoder) normalize() error {
	const top = 1 << 24
	if e.range_ >= top {
		return nil
	}
	e.range_ <<= 8
	return e.shiftLow()
}

// EncodeDirect encodes the least-significant bit of b with probability 1/2.
func (e *Encoder) EncodeDirect(b Bit) error {
	e.range_ >>= 1
	e.low += uint64(e.range_) & (0 - (uint64(b) & 1))
	return e.normalize()
}

// EncodeDirectBits encodes the n least-significant bits of v, the most
// significant bit first.
func (e *Encoder) EncodeDirectBits(v uint32, n int) error {
	for i := n - 1; i >= 0; i-- {
		if err := e.EncodeDirect(Bit(v >> uint(i))); err != nil {
			return err
		}
	}
	return nil
}

// Encode encodes the least significant bit of b. The p value will be
// updated by the function depending on the bit encoded.
func (e *Encoder) Encode(b Bit, p *Prob) error {
	bound := p.Bound(e.range_)
	if !b.Test() {
		e.range_ = bound
		p.Inc()
	} else {
		e.low += uint64(bound)
		e.range_ -= bound
		p.Dec()
	}
	return e.normalize()
}

// Flush writes a complete copy of the low value. The encoder must not be
// used afterwards.
func (e *Encoder) Flush() error {
	for i := 0; i < 5; i++ {
		if err := e.shiftLow(); err != nil {
			return err
		}
	}
	return nil
}
