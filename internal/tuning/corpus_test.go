// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tuning

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"testing"
	"testing/fstest"

	"github.com/ulikunitz/zdata"

	"github.com/videodanchik/lilcom"
	"github.com/videodanchik/lilcom/intstream"
	"github.com/videodanchik/lilcom/lpcmath"
)

func sampleHash(p []int16) [32]byte {
	b := make([]byte, 2*len(p))
	for i, v := range p {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(v))
	}
	return sha256.Sum256(b)
}

func TestSilesia(t *testing.T) {
	if testing.Short() {
		t.Skip("slow test")
	}
	configs := []struct {
		name string
		cfg  lilcom.Config
	}{
		{"default", lilcom.Config{}},
		{"order4", lilcom.Config{
			LPC: lpcmath.Config{Order: 4, BlockSize: 128},
		}},
	}

	files, err := Files(zdata.Silesia)
	if err != nil {
		t.Fatalf("Files(zdata.Silesia) error %s", err)
	}

	for _, c := range configs {
		c := c
		for _, f := range files {
			f := f
			t.Run(c.name+":"+f.Name, func(t *testing.T) {
				t.Parallel()
				hsum := sampleHash(f.Samples)
				code, _, err := lilcom.Compress(f.Samples, c.cfg)
				if err != nil {
					t.Fatalf("%s: Compress error %s", f.Name, err)
				}
				out, err := lilcom.Decompress(code, c.cfg)
				if err != nil {
					t.Fatalf("%s: Decompress error %s", f.Name, err)
				}
				if gsum := sampleHash(out); gsum != hsum {
					t.Errorf("%s: got %x; want %x",
						f.Name, gsum, hsum)
				}
			})
		}
	}
}

func TestFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"a/b.raw": {Data: []byte{1, 0, 0xff, 0xff, 7}},
		"c.raw":   {Data: []byte{0, 0x80}},
	}
	files, err := Files(fsys)
	if err != nil {
		t.Fatalf("Files error %s", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files; want 2", len(files))
	}
	if Size(files) != 3 {
		t.Fatalf("Size(files) %d; want 3", Size(files))
	}
	if files[0].Name != "a/b.raw" || files[0].Samples[1] != -1 {
		t.Fatalf("unexpected file %+v", files[0])
	}
	if files[1].Samples[0] != -32768 {
		t.Fatalf("unexpected file %+v", files[1])
	}
}

func TestCompressResult(t *testing.T) {
	samples := make([]int16, 4000)
	for i := range samples {
		samples[i] = int16(math.Round(9000 * math.Sin(float64(i)*0.07)))
	}
	files := []File{{Name: "sine", Samples: samples}}
	r, err := CompressFiles(files, lilcom.Config{})
	if err != nil {
		t.Fatalf("CompressFiles error %s", err)
	}
	if !math.IsInf(r.SNR(), 1) {
		t.Fatalf("lossless SNR %f; want +Inf", r.SNR())
	}
	if r.BitsPerSample() >= 16 {
		t.Fatalf("BitsPerSample %.2f; want less than 16", r.BitsPerSample())
	}

	cfg := lilcom.Config{Truncation: intstream.TruncationConfig{Bits: 2}}
	lossy, err := CompressFiles(files, cfg)
	if err != nil {
		t.Fatalf("CompressFiles error %s", err)
	}
	if lossy.CodeSize >= r.CodeSize {
		t.Errorf("lossy code size %d; want less than %d",
			lossy.CodeSize, r.CodeSize)
	}
	if snr := lossy.SNR(); math.IsInf(snr, 1) || snr < 10 {
		t.Errorf("lossy SNR %.1f dB; want finite and above 10 dB", snr)
	}
}
