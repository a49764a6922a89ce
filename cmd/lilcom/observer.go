// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/sirupsen/logrus"

	"github.com/videodanchik/lilcom/lpc"
)

// observer reports stream events as debug log entries.
type observer struct {
	log        logrus.FieldLogger
	mismatches int64
}

func (o *observer) Mismatch(m lpc.Mismatch) {
	o.mismatches++
	o.log.WithFields(logrus.Fields{
		"t":            m.Time,
		"value":        m.Value,
		"decompressed": m.Decompressed,
		"residual":     m.Residual,
	}).Debug("sample truncated")
}

func (o *observer) Block(b lpc.BlockEvent) {
	o.log.WithFields(logrus.Fields{
		"block":           b.Block,
		"energy":          b.SignalEnergy,
		"residual_energy": b.ResidualEnergy,
		"coeffs":          b.Coeffs,
		"truncated":       o.mismatches,
	}).Debug("coefficients updated")
}
