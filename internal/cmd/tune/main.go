// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tune searches stream configurations on the Silesia corpus. For
// every truncation setting it prints the configuration with the smallest
// code.
package main

import (
	"fmt"
	"log"
	"math"
	"sync"
	"testing"

	"github.com/kr/pretty"
	"github.com/ulikunitz/zdata"

	"github.com/videodanchik/lilcom"
	"github.com/videodanchik/lilcom/internal/tuning"
	"github.com/videodanchik/lilcom/intstream"
	"github.com/videodanchik/lilcom/lpcmath"
)

var (
	_silesiaFiles []tuning.File
	silesiaOnce   sync.Once
)

func silesiaFiles() []tuning.File {
	silesiaOnce.Do(func() {
		var err error
		_silesiaFiles, err = tuning.Files(zdata.Silesia)
		if err != nil {
			panic(fmt.Errorf("silesiaFiles() error %w", err))
		}
	})
	return _silesiaFiles
}

// mbPerSec returns the Megabytes (1 000 000 bytes) per seconds that are
// processed.
func mbPerSec(r testing.BenchmarkResult) float64 {
	if r.Bytes <= 0 || r.T <= 0 || r.N <= 0 {
		return 0
	}
	return (float64(r.Bytes) * float64(r.N) / 1e6) / r.T.Seconds()
}

func extra(r testing.BenchmarkResult, key string) float64 {
	if x, ok := r.Extra[key]; ok {
		return x
	}
	return math.NaN()
}

func writerBenchmark(cfg lilcom.Config) func(b *testing.B) {
	return func(b *testing.B) {
		files := silesiaFiles()
		b.SetBytes(2 * tuning.Size(files))
		var (
			err error
			res tuning.Result
		)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			res, err = tuning.CompressFiles(files, cfg)
			if err != nil {
				b.Fatalf("CompressFiles error %s", err)
			}
		}
		b.StopTimer()
		b.ReportMetric(res.BitsPerSample(), "bits/sample")
		b.ReportMetric(res.SNR(), "dB")
	}
}

type candidate struct {
	present bool
	cfg     lilcom.Config
	result  testing.BenchmarkResult
}

func makeConfigs(bits int) []lilcom.Config {
	var configs []lilcom.Config
	for _, order := range []int{4, 8, 16, 32} {
		for blockExp := 5; blockExp <= 9; blockExp++ {
			for _, decay := range []int{1, 2, 4} {
				cfg := lilcom.Config{
					LPC: lpcmath.Config{
						Order:      order,
						BlockSize:  1 << blockExp,
						DecayShift: decay,
					},
					Truncation: intstream.TruncationConfig{
						Bits: bits,
					},
				}
				cfg.SetDefaults()
				configs = append(configs, cfg)
			}
		}
	}
	return configs
}

func findBest(configs []lilcom.Config) candidate {
	var best candidate
	for i, cfg := range configs {
		result := testing.Benchmark(writerBenchmark(cfg))
		fmt.Printf("%d-%d %s\n", i+1, len(configs), result)
		bps := extra(result, "bits/sample")
		if best.present && bps >= extra(best.result, "bits/sample") {
			continue
		}
		best = candidate{present: true, cfg: cfg, result: result}
		fmt.Printf("best - update\n")
		pretty.Println(cfg.LPC)
	}
	return best
}

func main() {
	log.SetPrefix("tune: ")
	log.SetFlags(0)
	testing.Init()

	var results []candidate
	for _, bits := range []int{0, 8, 4} {
		results = append(results, findBest(makeConfigs(bits)))
	}

	fmt.Printf("\n\n### Result ###\n\n")

	for i, c := range results {
		if i > 0 {
			fmt.Printf("\n")
		}
		if !c.present {
			log.Fatalf("no result for truncation %d", i)
		}
		fmt.Printf("bits %d - \t%.3f bits/sample\t%.1f dB\t%.2f MB/s\n",
			c.cfg.Truncation.Bits,
			extra(c.result, "bits/sample"),
			extra(c.result, "dB"), mbPerSec(c.result))
		pretty.Println(c.cfg.LPC)
	}
}
