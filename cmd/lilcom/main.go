// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lilcom compresses raw little-endian 16-bit PCM files.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ogier/pflag"
	"github.com/sirupsen/logrus"

	"github.com/videodanchik/lilcom"
	"github.com/videodanchik/lilcom/intstream"
	"github.com/videodanchik/lilcom/lpcmath"
)

const (
	lilcomExt = ".lc"
	usageStr  = `Usage: lilcom [OPTION]... [FILE]...
Compress or uncompress raw 16-bit little-endian PCM FILEs (by default,
compress FILES in place). The options -o, -b and -t must be repeated for
decompression.

  -c, --stdout       write to standard output and don't delete input files
  -d, --decompress   force decompression
  -f, --force        force overwrite of output file
  -h, --help         give this help
  -k, --keep         keep (don't delete) input files
  -v, --verbose      report truncated samples and coefficient updates
  -o, --order=N      predictor order (default 16)
  -b, --block=N      samples per coefficient block (default 32)
  -t, --bits=N       significant residual bits kept; 0 is lossless

With no file, or when FILE is -, read standard input.
`
)

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

// options collects the command line options.
type options struct {
	stdout     bool
	decompress bool
	force      bool
	keep       bool
	verbose    bool
	order      int
	blockSize  int
	bits       int
}

// config converts the options into the stream configuration.
func (o *options) config(log logrus.FieldLogger) lilcom.Config {
	cfg := lilcom.Config{
		LPC: lpcmath.Config{
			Order:     o.order,
			ZeroOrder: o.order == 0,
			BlockSize: o.blockSize,
		},
		Truncation: intstream.TruncationConfig{Bits: o.bits},
	}
	if o.verbose {
		cfg.Observer = &observer{log: log}
	}
	return cfg
}

func main() {
	cmdName := filepath.Base(os.Args[0])
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	entry := log.WithField("cmd", cmdName)

	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.SetInterspersed(true)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help = pflag.BoolP("help", "h", false, "")
		opts options
	)
	pflag.BoolVarP(&opts.stdout, "stdout", "c", false, "")
	pflag.BoolVarP(&opts.decompress, "decompress", "d", false, "")
	pflag.BoolVarP(&opts.force, "force", "f", false, "")
	pflag.BoolVarP(&opts.keep, "keep", "k", false, "")
	pflag.BoolVarP(&opts.verbose, "verbose", "v", false, "")
	pflag.IntVarP(&opts.order, "order", "o", 16, "")
	pflag.IntVarP(&opts.blockSize, "block", "b", 32, "")
	pflag.IntVarP(&opts.bits, "bits", "t", 0, "")
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := opts.config(entry)
	cfg.SetDefaults()
	if err := cfg.Verify(); err != nil {
		entry.Fatal(err)
	}

	args := pflag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	exit := 0
	for _, path := range args {
		fileOpts := opts
		if path == "-" {
			fileOpts.stdout = true
		}
		if err := processFile(path, &fileOpts, cfg); err != nil {
			entry.WithField("file", path).Warn(userError(err))
			exit = 1
		}
	}
	os.Exit(exit)
}
