// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lilcom compresses 16-bit audio with backward-adaptive linear
// prediction.
//
// The package provides adapters that accept and produce little-endian
// 16-bit PCM bytes on top of the sample streams of package lpc and helpers
// to compress and decompress complete sample slices. The code contains no
// header: the reader must use the configuration of the writer.
package lilcom
