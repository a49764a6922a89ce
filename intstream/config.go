// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intstream

import "fmt"

// MaxBits is the largest number of significant bits that can be requested.
// Residuals of 16-bit samples never need more.
const MaxBits = 16

// TruncationConfig controls the lossy coding of residuals. Encoder and
// decoder must use the same configuration.
type TruncationConfig struct {
	// Bits is the maximum number of significant bits kept for the
	// magnitude of a residual. Zero selects lossless coding.
	Bits int
}

// Lossless reports whether the configuration never truncates residuals.
func (cfg *TruncationConfig) Lossless() bool {
	return cfg.Bits == 0 || cfg.Bits >= MaxBits
}

// Verify checks the configuration.
func (cfg *TruncationConfig) Verify() error {
	if !(0 <= cfg.Bits && cfg.Bits <= MaxBits) {
		return fmt.Errorf("intstream: Bits must be in range [0,%d]",
			MaxBits)
	}
	return nil
}

// shift returns the number of low-order bits dropped from a magnitude with
// the given bit length.
func (cfg *TruncationConfig) shift(width int) int {
	if cfg.Lossless() || width <= cfg.Bits {
		return 0
	}
	return width - cfg.Bits
}
