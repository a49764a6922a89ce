// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/videodanchik/lilcom"
)

// signalHandler establishes the signal handler for os.Interrupt and
// handles it in its own go routine. The returned quit channel must be
// closed to terminate the signal handler go routine.
func signalHandler(w *writer) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
			return
		case <-sigch:
			w.removeTmpFile()
			os.Exit(7)
		}
	}()
	return quit
}

// targetName finds the correct target name taking the options into
// account.
func targetName(path string, opts *options) (target string, err error) {
	if path == "-" {
		return "", errors.New("path name - has no target")
	}
	if len(path) == 0 {
		return "", errors.New("empty file name not supported")
	}
	if !opts.decompress {
		return path + lilcomExt, nil
	}
	if !strings.HasSuffix(path, lilcomExt) {
		return "", fmt.Errorf("file name %s has no %s suffix",
			path, lilcomExt)
	}
	target = path[:len(path)-len(lilcomExt)]
	if len(target) == 0 {
		return "", fmt.Errorf("file name %s has no base part", path)
	}
	return target, nil
}

// tmpName converts the path string into a temporary name by appending
// .decompress or .compress to the file path.
func tmpName(path string, decompress bool) string {
	var ext string
	if decompress {
		ext = ".decompress"
	} else {
		ext = ".compress"
	}
	return path + ext
}

// writer is used as file writer for decompression and file compressor
// for compression.
type writer struct {
	f    *os.File
	tmp  string
	name string
	bw   *bufio.Writer
	io.Writer
	cmp     io.WriteCloser
	success bool
}

// newWriter creates a new file writer. For compression the data written is
// compressed, for decompression it is written as is.
func newWriter(path string, perm os.FileMode, opts *options, cfg lilcom.Config) (w *writer, err error) {
	w = &writer{name: path}
	if opts.stdout {
		w.f = os.Stdout
		w.name = "-"
	} else {
		name, err := targetName(path, opts)
		if err != nil {
			return nil, err
		}
		if _, err = os.Stat(name); !os.IsNotExist(err) {
			if !opts.force {
				return nil, &userPathError{
					Path: name,
					Err:  errors.New("file exists")}
			}
			if err = os.Remove(name); err != nil {
				return nil, err
			}
		}
		w.tmp = tmpName(path, opts.decompress)
		if w.f, err = os.OpenFile(w.tmp,
			os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm); err != nil {
			return nil, err
		}
		w.name = name
	}
	w.bw = bufio.NewWriter(w.f)
	if opts.decompress {
		w.Writer = w.bw
		return w, nil
	}
	w.cmp, err = lilcom.NewWriter(w.bw, cfg)
	if err != nil {
		if w.tmp != "" {
			w.f.Close()
			os.Remove(w.tmp)
		}
		return nil, err
	}
	w.Writer = w.cmp
	return w, nil
}

var errInval = errors.New("invalid value")

// Close closes the writer. Without success the temporary file is removed,
// otherwise it is renamed to the target name.
func (w *writer) Close() error {
	var err error

	if w.f == nil {
		return errInval
	}
	defer func() { w.f = nil }()

	if !w.success {
		if w.tmp == "" {
			return nil
		}
		if err = w.f.Close(); err != nil {
			return err
		}
		return os.Remove(w.tmp)
	}
	if w.cmp != nil {
		if err = w.cmp.Close(); err != nil {
			return err
		}
	}
	if err = w.bw.Flush(); err != nil {
		return err
	}
	if w.tmp == "" {
		return nil
	}
	if err = w.f.Close(); err != nil {
		return err
	}
	return os.Rename(w.tmp, w.name)
}

// removeTmpFile removes the temporary file for the writer. It is used
// by the signal handler goroutine.
func (w *writer) removeTmpFile() {
	if w.tmp != "" {
		os.Remove(w.tmp)
	}
}

// SetSuccess sets the success variable to true.
func (w *writer) SetSuccess() { w.success = true }

// reader is used as a file reader.
type reader struct {
	f *os.File
	io.Reader
	stdin   bool
	success bool
	keep    bool
}

// errNoRegular indicates that a file is not regular.
var errNoRegular = errors.New("no regular file")

// openFile opens the given path with the given options.
func openFile(path string, opts *options) (f *os.File, err error) {
	if path == "-" {
		return os.Stdin, nil
	}
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, &userPathError{Path: path, Err: errNoRegular}
	}
	return os.Open(path)
}

// newReader creates a new reader for files. For decompression the
// returned reader decompresses the file.
func newReader(path string, opts *options, cfg lilcom.Config) (r *reader, err error) {
	f, err := openFile(path, opts)
	if err != nil {
		return nil, err
	}
	r = &reader{
		f:     f,
		stdin: path == "-",
		keep:  opts.keep || opts.stdout,
	}
	br := bufio.NewReader(f)
	if !opts.decompress {
		r.Reader = br
		return r, nil
	}
	if r.Reader, err = lilcom.NewReader(br, cfg); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

// Close closes the reader. The input file is removed if the processing
// has been successful and the file should not be kept.
func (r *reader) Close() error {
	if r.f == nil {
		return errInval
	}
	defer func() { r.f = nil }()
	if r.stdin {
		return nil
	}
	if err := r.f.Close(); err != nil {
		return err
	}
	if r.keep || !r.success {
		return nil
	}
	return os.Remove(r.f.Name())
}

func (r *reader) SetSuccess() { r.success = true }

func (r *reader) Perm() os.FileMode {
	const defaultPerm os.FileMode = 0666

	fi, err := r.f.Stat()
	if err != nil {
		return defaultPerm
	}

	return fi.Mode() & defaultPerm
}

// userPathError represents a path error presentable to a user. In
// difference to os.PathError it removes the information of the
// operation returning the error.
type userPathError struct {
	Path string
	Err  error
}

// Error provides the error string for the path error.
func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// userError converts path error to an error message that is acceptable for
// users by removing the operation information.
func userError(err error) error {
	var pe *os.PathError
	if !errors.As(err, &pe) {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}

// processFile processes the file with the given path applying the
// provided options.
func processFile(path string, opts *options, cfg lilcom.Config) (err error) {
	r, err := newReader(path, opts, cfg)
	if err != nil {
		return err
	}
	defer r.Close()
	w, err := newWriter(path, r.Perm(), opts, cfg)
	if err != nil {
		return err
	}
	defer w.Close()
	quitSignalHandler := signalHandler(w)
	if _, err = io.Copy(w, r); err != nil {
		close(quitSignalHandler)
		return err
	}
	close(quitSignalHandler)
	w.SetSuccess()
	if err = w.Close(); err != nil {
		return err
	}
	r.SetSuccess()
	return r.Close()
}
