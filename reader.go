// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lilcom

import (
	"bufio"
	"bytes"
	"io"

	"github.com/videodanchik/lilcom/lpc"
)

// Reader decompresses a stream into little-endian 16-bit PCM data.
type Reader struct {
	lr      *lpc.Reader
	hi      byte
	pending bool
	err     error
}

// NewReader creates a reader for the code in z. The reader buffers z and
// may read beyond the end of the stream.
func NewReader(z io.Reader, cfg Config) (r *Reader, err error) {
	if _, ok := z.(io.ByteReader); !ok {
		z = bufio.NewReader(z)
	}
	lr, err := lpc.NewReader(z, cfg)
	if err != nil {
		return nil, err
	}
	return &Reader{lr: lr}, nil
}

// Read fills p with PCM bytes. At the end of the stream io.EOF is
// returned; corrupted streams return errors wrapping lpc.ErrCorrupt or
// io.ErrUnexpectedEOF.
func (r *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if r.pending {
			p[n] = r.hi
			r.pending = false
			n++
			continue
		}
		if r.err != nil {
			break
		}
		v, err := r.lr.Read()
		if err != nil {
			r.err = err
			break
		}
		p[n] = byte(v)
		n++
		r.hi = byte(uint16(v) >> 8)
		r.pending = true
	}
	if n > 0 {
		return n, nil
	}
	return 0, r.err
}

// Samples returns the number of samples decompressed so far.
func (r *Reader) Samples() int64 { return r.lr.Time() }

// Decompress decodes the complete code.
func Decompress(code []byte, cfg Config) (samples []int16, err error) {
	lr, err := lpc.NewReader(bytes.NewReader(code), cfg)
	if err != nil {
		return nil, err
	}
	for {
		v, err := lr.Read()
		if err == io.EOF {
			return samples, nil
		}
		if err != nil {
			return samples, err
		}
		samples = append(samples, v)
	}
}
