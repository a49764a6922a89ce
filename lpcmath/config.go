// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lpcmath

import (
	"errors"
	"fmt"
)

// Limits for the configuration values.
const (
	MaxOrder     = 32
	MaxBlockSize = 1 << 16
	maxShift     = 30
)

// Config defines the predictor order and the block structure of the
// estimator. The same configuration must be used for encoding and decoding.
type Config struct {
	// Order is the number of predictor coefficients.
	Order int
	// ZeroOrder indicates that an Order of zero is intended. Without it
	// SetDefaults replaces a zero Order with the default.
	ZeroOrder bool
	// BlockSize is the number of samples sharing one coefficient vector.
	BlockSize int
	// DecayShift controls how fast old blocks are forgotten. Every block
	// the accumulated statistics lose 1/2^DecayShift of their weight.
	DecayShift int
	// DiagShift sets the diagonal loading r[0]/2^DiagShift added before
	// solving the normal equations.
	DiagShift int
}

// SetDefaults replaces zero values with default values.
func (cfg *Config) SetDefaults() {
	if cfg.Order == 0 && !cfg.ZeroOrder {
		cfg.Order = 16
	}
	if cfg.BlockSize == 0 {
		cfg.BlockSize = 32
	}
	if cfg.DecayShift == 0 {
		cfg.DecayShift = 2
	}
	if cfg.DiagShift == 0 {
		cfg.DiagShift = 8
	}
}

// Verify checks whether the configuration is consistent and correct. Usually
// call SetDefaults before this method.
func (cfg *Config) Verify() error {
	if cfg == nil {
		return errors.New("lpcmath: Config pointer must not be nil")
	}
	if !(0 <= cfg.Order && cfg.Order <= MaxOrder) {
		return fmt.Errorf("lpcmath: Order must be in range [0,%d]",
			MaxOrder)
	}
	if !(0 < cfg.BlockSize && cfg.BlockSize <= MaxBlockSize) {
		return fmt.Errorf("lpcmath: BlockSize must be in range [1,%d]",
			MaxBlockSize)
	}
	if !(1 <= cfg.DecayShift && cfg.DecayShift <= maxShift) {
		return fmt.Errorf("lpcmath: DecayShift must be in range [1,%d]",
			maxShift)
	}
	if !(1 <= cfg.DiagShift && cfg.DiagShift <= maxShift) {
		return fmt.Errorf("lpcmath: DiagShift must be in range [1,%d]",
			maxShift)
	}
	return nil
}
