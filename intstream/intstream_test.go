// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intstream

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type pair struct {
	residual   int32
	prediction int16
}

func testPairs(n int) []pair {
	pairs := []pair{
		{0, 0}, {1, 0}, {-1, 0}, {32767, 0}, {-32768, 0},
		{65535, -32768}, {-65535, 32767}, {3, 100}, {-200, -300},
	}
	seed := uint32(7)
	for len(pairs) < n {
		seed = seed*1664525 + 1013904223
		pred := int16(seed >> 16)
		seed = seed*1664525 + 1013904223
		v := int16(seed >> 16)
		// mostly small residuals
		if seed&3 != 0 {
			v = pred + int16(seed>>24&63) - 32
			if (int32(pred) + int32(seed>>24&63) - 32) != int32(v) {
				continue
			}
		}
		pairs = append(pairs, pair{int32(v) - int32(pred), pred})
	}
	return pairs
}

func TestRoundTripLossless(t *testing.T) {
	pairs := testPairs(2000)
	var buf bytes.Buffer
	w, err := NewWriter(&buf, TruncationConfig{})
	if err != nil {
		t.Fatalf("NewWriter error %s", err)
	}
	for _, p := range pairs {
		v, c, err := w.WriteLimited(p.residual, p.prediction)
		if err != nil {
			t.Fatalf("WriteLimited(%d, %d) error %s",
				p.residual, p.prediction, err)
		}
		if c != p.residual {
			t.Fatalf("committed residual %d; want %d", c, p.residual)
		}
		if int32(v) != int32(p.prediction)+p.residual {
			t.Fatalf("value %d; want %d", v,
				int32(p.prediction)+p.residual)
		}
	}
	if err = w.Close(); err != nil {
		t.Fatalf("w.Close() error %s", err)
	}
	if w.Len() != int64(buf.Len()) {
		t.Fatalf("w.Len() %d; want %d", w.Len(), buf.Len())
	}
	t.Logf("%d residuals coded into %d bytes", len(pairs), buf.Len())

	r, err := NewReader(&buf, TruncationConfig{})
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	for i, p := range pairs {
		res, err := r.Read()
		if err != nil {
			t.Fatalf("r.Read() %d error %s", i, err)
		}
		if res != p.residual {
			t.Fatalf("residual %d: got %d; want %d", i, res, p.residual)
		}
	}
	for i := 0; i < 2; i++ {
		if _, err = r.Read(); err != io.EOF {
			t.Fatalf("r.Read() at end error %v; want %v", err, io.EOF)
		}
	}
}

func TestRoundTripTruncated(t *testing.T) {
	for _, nbits := range []int{1, 2, 4, 8} {
		cfg := TruncationConfig{Bits: nbits}
		pairs := testPairs(500)
		var buf bytes.Buffer
		w, err := NewWriter(&buf, cfg)
		if err != nil {
			t.Fatalf("NewWriter error %s", err)
		}
		committed := make([]int32, len(pairs))
		for i, p := range pairs {
			v, c, err := w.WriteLimited(p.residual, p.prediction)
			if err != nil {
				t.Fatalf("WriteLimited error %s", err)
			}
			if (c < 0) != (p.residual < 0) && c != 0 {
				t.Fatalf("Bits %d: sign of %d differs from %d",
					nbits, c, p.residual)
			}
			if abs(c) > abs(p.residual) {
				t.Fatalf("Bits %d: |%d| exceeds |%d|",
					nbits, c, p.residual)
			}
			if int32(v) != int32(p.prediction)+c {
				t.Fatalf("Bits %d: value %d inconsistent with %d+%d",
					nbits, v, p.prediction, c)
			}
			committed[i] = c
		}
		if err = w.Close(); err != nil {
			t.Fatalf("w.Close() error %s", err)
		}
		r, err := NewReader(&buf, cfg)
		if err != nil {
			t.Fatalf("NewReader error %s", err)
		}
		for i, c := range committed {
			res, err := r.Read()
			if err != nil {
				t.Fatalf("Bits %d: r.Read() %d error %s",
					nbits, i, err)
			}
			if res != c {
				t.Fatalf("Bits %d: residual %d: got %d; want %d",
					nbits, i, res, c)
			}
		}
		if _, err = r.Read(); err != io.EOF {
			t.Fatalf("r.Read() at end error %v; want %v", err, io.EOF)
		}
	}
}

func abs(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestTruncation(t *testing.T) {
	cfg := TruncationConfig{Bits: 2}
	var buf bytes.Buffer
	w, err := NewWriter(&buf, cfg)
	if err != nil {
		t.Fatalf("NewWriter error %s", err)
	}
	tests := []struct {
		residual   int32
		prediction int16
		value      int16
		committed  int32
	}{
		{3, 0, 3, 3},
		{7, 0, 6, 6},
		{-7, 10, 4, -6},
		{13, 0, 12, 12},
		{255, 0, 192, 192},
		{-255, 0, -192, -192},
	}
	for _, c := range tests {
		v, res, err := w.WriteLimited(c.residual, c.prediction)
		if err != nil {
			t.Fatalf("WriteLimited error %s", err)
		}
		if v != c.value || res != c.committed {
			t.Errorf("WriteLimited(%d, %d) = %d, %d; want %d, %d",
				c.residual, c.prediction, v, res,
				c.value, c.committed)
		}
	}
}

func TestWriteLimitedRange(t *testing.T) {
	w, err := NewWriter(new(bytes.Buffer), TruncationConfig{})
	if err != nil {
		t.Fatalf("NewWriter error %s", err)
	}
	if _, _, err = w.WriteLimited(1, 32767); err == nil {
		t.Fatalf("WriteLimited(1, 32767) didn't return an error")
	}
}

func TestWriterClosed(t *testing.T) {
	w, err := NewWriter(new(bytes.Buffer), TruncationConfig{})
	if err != nil {
		t.Fatalf("NewWriter error %s", err)
	}
	if err = w.Close(); err != nil {
		t.Fatalf("w.Close() error %s", err)
	}
	if _, _, err = w.WriteLimited(1, 0); err != ErrClosed {
		t.Fatalf("WriteLimited after Close error %v; want %v",
			err, ErrClosed)
	}
	if err = w.Close(); err != ErrClosed {
		t.Fatalf("second Close error %v; want %v", err, ErrClosed)
	}
}

func TestEmptyStream(t *testing.T) {
	r, err := NewReader(bytes.NewReader(nil), TruncationConfig{})
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	if _, err = r.Read(); err != io.EOF {
		t.Fatalf("r.Read() error %v; want %v", err, io.EOF)
	}

	var buf bytes.Buffer
	w, _ := NewWriter(&buf, TruncationConfig{})
	if err = w.Close(); err != nil {
		t.Fatalf("w.Close() error %s", err)
	}
	r, err = NewReader(&buf, TruncationConfig{})
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	if _, err = r.Read(); err != io.EOF {
		t.Fatalf("r.Read() error %v; want %v", err, io.EOF)
	}
}

func TestTruncatedStream(t *testing.T) {
	pairs := testPairs(300)
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, TruncationConfig{})
	for _, p := range pairs {
		if _, _, err := w.WriteLimited(p.residual, p.prediction); err != nil {
			t.Fatalf("WriteLimited error %s", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("w.Close() error %s", err)
	}
	data := buf.Bytes()[:buf.Len()/2]
	r, err := NewReader(bytes.NewReader(data), TruncationConfig{})
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	for {
		_, err = r.Read()
		if err != nil {
			break
		}
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, ErrCorrupt) {
		t.Fatalf("reading truncated stream error %v; want %v",
			err, io.ErrUnexpectedEOF)
	}
}

func TestWideWidth(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, TruncationConfig{})
	// a writer never produces bit lengths beyond 16; corrupted streams
	// may contain them
	if err := w.encode(20, false, 1<<19|5, 0); err != nil {
		t.Fatalf("w.encode error %s", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("w.Close() error %s", err)
	}
	r, err := NewReader(&buf, TruncationConfig{})
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	res, err := r.Read()
	if err != nil {
		t.Fatalf("r.Read() error %s", err)
	}
	if res != 1<<19|5 {
		t.Fatalf("r.Read() = %d; want %d", res, 1<<19|5)
	}
}

func TestVerify(t *testing.T) {
	for _, b := range []int{-1, MaxBits + 1} {
		cfg := TruncationConfig{Bits: b}
		if err := cfg.Verify(); err == nil {
			t.Errorf("Bits %d: Verify didn't return an error", b)
		}
		if _, err := NewWriter(new(bytes.Buffer), cfg); err == nil {
			t.Errorf("Bits %d: NewWriter didn't return an error", b)
		}
	}
}
