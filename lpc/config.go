// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lpc

import (
	"errors"

	"github.com/videodanchik/lilcom/intstream"
	"github.com/videodanchik/lilcom/lpcmath"
)

// Config provides the parameters of a stream. Writer and Reader of a stream
// must use the same LPC and Truncation values.
type Config struct {
	// LPC configures predictor order, block size and estimator.
	LPC lpcmath.Config
	// Truncation configures the lossy coding of residuals.
	Truncation intstream.TruncationConfig
	// Observer receives diagnostic events. It may be nil.
	Observer Observer
	// Debug enables the consistency check of every residual against the
	// prediction.
	Debug bool
}

// SetDefaults replaces zero values with default values.
func (cfg *Config) SetDefaults() {
	cfg.LPC.SetDefaults()
}

// Verify checks whether the configuration is consistent and correct. Usually
// call SetDefaults before this method.
func (cfg *Config) Verify() error {
	if cfg == nil {
		return errors.New("lpc: Config pointer must not be nil")
	}
	if err := cfg.LPC.Verify(); err != nil {
		return err
	}
	return cfg.Truncation.Verify()
}
