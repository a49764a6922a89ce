// Copyright 2014-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lpc

import "github.com/videodanchik/lilcom/xlog"

// Mismatch describes a sample that the residual coder couldn't code
// exactly.
type Mismatch struct {
	Time       int64
	Value      int16
	Prediction int16
	Residual   int32
	// Decompressed is the value the reader will produce.
	Decompressed int16
	// DecompressedResidual is the residual the reader will decode.
	DecompressedResidual int32
}

// BlockEvent describes a completed block and the coefficients estimated
// from it.
type BlockEvent struct {
	// Block is the zero-based index of the completed block.
	Block int64
	// Time is the time of the first sample of the next block.
	Time int64
	// Coeffs are the coefficients for the next block. The slice must
	// not be retained.
	Coeffs []int32
	// SignalEnergy and ResidualEnergy are only set if the estimator
	// reports them.
	SignalEnergy   int64
	ResidualEnergy int64
}

// Observer receives diagnostic events from Writers and Readers. Observers
// must not modify the stream they observe.
type Observer interface {
	Mismatch(m Mismatch)
	Block(b BlockEvent)
}

// energyReporter is implemented by estimators providing block energies.
type energyReporter interface {
	SignalEnergy() int64
	ResidualEnergy() int64
}

type logObserver struct {
	l xlog.Logger
}

// NewLogObserver returns an observer that prints the events using the
// logger. A nil logger prints nothing.
func NewLogObserver(l xlog.Logger) Observer {
	return logObserver{l: xlog.WithPrefix(l, "lpc: ")}
}

func (o logObserver) Mismatch(m Mismatch) {
	xlog.Printf(o.l, "t=%d value=%d decompressed=%d residual=%d decompressed=%d",
		m.Time, m.Value, m.Decompressed, m.Residual,
		m.DecompressedResidual)
}

func (o logObserver) Block(b BlockEvent) {
	xlog.Printf(o.l, "block %d energy %d residual energy %d coeffs %v",
		b.Block, b.SignalEnergy, b.ResidualEnergy, b.Coeffs)
}
