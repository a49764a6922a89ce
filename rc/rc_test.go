// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rc

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

var testStrings = []string{
	"S",
	"HalloBallo",
	"funny",
	"Die Nummer Eins der Welt sind wir!",
}

func TestDirectEncoding(t *testing.T) {
	for _, s := range testStrings {
		t.Log(s)
		var buf bytes.Buffer
		e := NewEncoder(&buf)
		b := []byte(s)
		for _, x := range b {
			if err := e.EncodeDirectBits(uint32(x), 8); err != nil {
				t.Fatalf("e.EncodeDirectBits error %s", err)
			}
		}
		if err := e.Flush(); err != nil {
			t.Fatalf("e.Flush error %s", err)
		}
		if e.Len() != int64(buf.Len()) {
			t.Fatalf("e.Len() %d; want %d", e.Len(), buf.Len())
		}
		var out []byte
		d := NewDecoder(&buf)
		if err := d.Init(); err != nil {
			t.Fatalf("d.Init error %s", err)
		}
		for i := 0; i < len(b); i++ {
			x, err := d.DecodeDirectBits(8)
			if err != nil {
				t.Fatalf("d.DecodeDirectBits error %s", err)
			}
			out = append(out, byte(x))
		}
		if !bytes.Equal(out, b) {
			t.Errorf("got %q; want %q", out, b)
		}
	}
}

func TestTreeEncoding(t *testing.T) {
	for _, s := range testStrings {
		t.Log(s)
		var buf bytes.Buffer
		e := NewEncoder(&buf)
		tree := NewProbTree(8)
		b := []byte(s)
		for _, x := range b {
			if err := tree.Encode(e, uint32(x)); err != nil {
				t.Fatalf("tree.Encode error %s", err)
			}
		}
		if err := e.Flush(); err != nil {
			t.Fatalf("e.Flush error %s", err)
		}
		var out []byte
		d := NewDecoder(&buf)
		if err := d.Init(); err != nil {
			t.Fatalf("d.Init error %s", err)
		}
		tree = NewProbTree(8)
		for i := 0; i < len(b); i++ {
			x, err := tree.Decode(d)
			if err != nil {
				t.Fatalf("tree.Decode error %s", err)
			}
			out = append(out, byte(x))
		}
		if !bytes.Equal(out, b) {
			t.Errorf("got %q; want %q", out, b)
		}
	}
}

func TestAdaptiveBits(t *testing.T) {
	bits := make([]Bit, 1000)
	for i := range bits {
		if i%7 == 0 {
			bits[i] = 1
		}
	}
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	p := ProbInit
	for _, b := range bits {
		if err := e.Encode(b, &p); err != nil {
			t.Fatalf("e.Encode error %s", err)
		}
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("e.Flush error %s", err)
	}
	if buf.Len() >= len(bits)/8 {
		t.Errorf("skewed bits compressed to %d bytes; want less than %d",
			buf.Len(), len(bits)/8)
	}
	d := NewDecoder(&buf)
	if err := d.Init(); err != nil {
		t.Fatalf("d.Init error %s", err)
	}
	p = ProbInit
	for i, want := range bits {
		b, err := d.Decode(&p)
		if err != nil {
			t.Fatalf("d.Decode error %s", err)
		}
		if b != want {
			t.Fatalf("bit %d: got %d; want %d", i, b, want)
		}
	}
}

func TestDecoderInit(t *testing.T) {
	tests := []struct {
		data []byte
		err  error
	}{
		{nil, io.EOF},
		{[]byte{0, 1}, io.ErrUnexpectedEOF},
		{[]byte{1, 0, 0, 0, 0}, ErrInit},
		{[]byte{0, 0, 0, 0, 0}, nil},
	}
	for _, tc := range tests {
		d := NewDecoder(bytes.NewReader(tc.data))
		err := d.Init()
		if !errors.Is(err, tc.err) {
			t.Errorf("Init(%x) error %v; want %v", tc.data, err, tc.err)
		}
	}
}
