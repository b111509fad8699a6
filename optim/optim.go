// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"log/slog"

	"github.com/born-ml/nnlib/internal/optim"
	"github.com/born-ml/nnlib/nn"
)

// SGD is a mini-batch stochastic gradient descent trainer.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD.
type SGDConfig = optim.SGDConfig

// TrainOption adjusts the configuration built by Sgd.
type TrainOption = optim.TrainOption

// Errors.
var (
	ErrInvalidBatchSize  = optim.ErrInvalidBatchSize
	ErrNonDivisibleBatch = optim.ErrNonDivisibleBatch
	ErrInvalidEpochs     = optim.ErrInvalidEpochs
)

// NewSGD creates a new SGD trainer.
//
// Example:
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{Epochs: 10, MiniBatchSize: 10, LR: 1})
func NewSGD(config SGDConfig) (*SGD, error) {
	return optim.NewSGD(config)
}

// Sgd trains net for the given number of epochs.
func Sgd(net *nn.Network, training nn.AnnotatedData, epochs, miniBatchSize int, eta float64,
	test Optional[nn.AnnotatedData], opts ...TrainOption,
) error {
	return optim.Sgd(net, training, epochs, miniBatchSize, eta, test, opts...)
}

// Training options.
var (
	WithSeed     = optim.WithSeed
	WithReporter = optim.WithReporter
)

// Reporting

// Reporter receives training progress.
type Reporter = optim.Reporter

// NopReporter discards progress.
type NopReporter = optim.NopReporter

// SlogReporter writes progress to a *slog.Logger.
type SlogReporter = optim.SlogReporter

// NewSlogReporter creates a reporter logging to logger.
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	return optim.NewSlogReporter(logger)
}

// Optional values

// Optional holds a value that may be absent.
type Optional[T any] = optim.Optional[T]

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return optim.Some(v)
}

// None returns an absent value.
func None[T any]() Optional[T] {
	return optim.None[T]()
}
