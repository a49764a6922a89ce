// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xlog provides a Logger interface for optional diagnostic output.

The codec packages never write to standard output or standard error. If
diagnostics are wanted, for instance the residuals changed by truncation,
a Logger can be supplied. The *log.Logger type of the standard library
supports the interface. A nil Logger disables the output and the
formatting work is skipped.
*/
package xlog

import "fmt"

// Logger is the interface required for diagnostic output. The log.Logger
// type supports this interface.
type Logger interface {
	Output(calldepth int, s string) error
}

// Print outputs the arguments using the logger. If the logger is nil nothing
// will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger argument
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// prefixLogger puts a fixed prefix in front of every message.
type prefixLogger struct {
	l      Logger
	prefix string
}

func (p prefixLogger) Output(calldepth int, s string) error {
	return p.l.Output(calldepth+1, p.prefix+s)
}

// WithPrefix returns a logger that prefixes all messages. A nil logger stays
// nil.
func WithPrefix(l Logger, prefix string) Logger {
	if l == nil {
		return nil
	}
	return prefixLogger{l: l, prefix: prefix}
}
