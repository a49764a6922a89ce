// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tuning supports the evaluation of stream configurations on a
// corpus of files. The file contents are interpreted as little-endian
// 16-bit samples.
package tuning

import (
	"encoding/binary"
	"io/fs"
	"math"

	"github.com/videodanchik/lilcom"
)

// File is a corpus file with its samples.
type File struct {
	Name    string
	Samples []int16
}

// Samples converts little-endian PCM bytes into samples. A trailing odd
// byte is ignored.
func Samples(data []byte) []int16 {
	p := make([]int16, len(data)/2)
	for i := range p {
		p[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
	}
	return p
}

// Files loads all regular files of the corpus.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files,
				File{Name: path, Samples: Samples(data)})
			return nil
		})
	return files, err
}

// Size returns the total number of samples of the files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Samples))
	}
	return n
}

// Result describes the compression of a set of files.
type Result struct {
	// Samples is the number of samples compressed.
	Samples int64
	// CodeSize is the number of code bytes.
	CodeSize int64
	// SquaredError is the sum of the squared differences between
	// input and decompressed samples.
	SquaredError float64
	// Energy is the sum of the squared input samples.
	Energy float64
}

// BitsPerSample returns the average code size per sample in bits.
func (r Result) BitsPerSample() float64 {
	if r.Samples == 0 {
		return 0
	}
	return 8 * float64(r.CodeSize) / float64(r.Samples)
}

// SNR returns the signal-to-noise ratio in dB. Lossless results have an
// infinite SNR.
func (r Result) SNR() float64 {
	if r.SquaredError == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(r.Energy/r.SquaredError)
}

// Add accumulates the result s into r.
func (r *Result) Add(s Result) {
	r.Samples += s.Samples
	r.CodeSize += s.CodeSize
	r.SquaredError += s.SquaredError
	r.Energy += s.Energy
}

// Compress compresses the samples and measures the code size and the
// distortion using the decompressed values reported by the writer.
func Compress(samples []int16, cfg lilcom.Config) (r Result, err error) {
	code, dec, err := lilcom.Compress(samples, cfg)
	if err != nil {
		return r, err
	}
	r.Samples = int64(len(samples))
	r.CodeSize = int64(len(code))
	for i, v := range samples {
		d := float64(v) - float64(dec[i])
		r.SquaredError += d * d
		r.Energy += float64(v) * float64(v)
	}
	return r, nil
}

// CompressFiles compresses every file separately and returns the sum of the
// results.
func CompressFiles(files []File, cfg lilcom.Config) (r Result, err error) {
	for _, f := range files {
		s, err := Compress(f.Samples, cfg)
		if err != nil {
			return r, err
		}
		r.Add(s)
	}
	return r, nil
}
