// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lilcom

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/videodanchik/lilcom/lpc"
)

// Config is the configuration of a stream. See lpc.Config.
type Config = lpc.Config

// ErrOddLength indicates PCM data that doesn't consist of complete 16-bit
// samples.
var ErrOddLength = errors.New("lilcom: PCM data has odd length")

// Writer compresses little-endian 16-bit PCM data.
type Writer struct {
	bw  *bufio.Writer
	lw  *lpc.Writer
	lo  byte
	odd bool
	err error
}

// NewWriter creates a writer compressing PCM data to z. The code is
// buffered; Close flushes the buffer.
func NewWriter(z io.Writer, cfg Config) (w *Writer, err error) {
	bw := bufio.NewWriter(z)
	lw, err := lpc.NewWriter(bw, cfg)
	if err != nil {
		return nil, err
	}
	return &Writer{bw: bw, lw: lw}, nil
}

// Write compresses the PCM bytes in p. A trailing odd byte is kept until
// the next call.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	for n < len(p) {
		if !w.odd {
			w.lo = p[n]
			w.odd = true
			n++
			continue
		}
		v := int16(uint16(w.lo) | uint16(p[n])<<8)
		if _, err = w.lw.Write(v); err != nil {
			w.err = err
			return n, err
		}
		w.odd = false
		n++
	}
	return n, nil
}

// Close finishes the stream and flushes the buffer. It doesn't close the
// underlying writer. If an odd number of bytes has been written
// ErrOddLength is returned.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.odd {
		w.err = ErrOddLength
		return w.err
	}
	if err := w.lw.Close(); err != nil {
		w.err = err
		return err
	}
	if err := w.bw.Flush(); err != nil {
		w.err = err
		return err
	}
	w.err = lpc.ErrClosed
	return nil
}

// Samples returns the number of samples compressed so far.
func (w *Writer) Samples() int64 { return w.lw.Time() }

// Compress compresses the samples. It returns the code and the samples a
// reader will produce, which differ from the input for lossy
// configurations.
func Compress(samples []int16, cfg Config) (code []byte, decompressed []int16, err error) {
	buf := new(bytes.Buffer)
	lw, err := lpc.NewWriter(buf, cfg)
	if err != nil {
		return nil, nil, err
	}
	decompressed = make([]int16, len(samples))
	if _, err = lw.WriteSamples(samples, decompressed); err != nil {
		return nil, nil, err
	}
	if err = lw.Close(); err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), decompressed, nil
}
