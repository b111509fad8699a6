// Package optim implements the training loop for nn.Network.
//
// This package provides:
//   - SGD: mini-batch stochastic gradient descent over epochs
//   - Reporter: sink for per-epoch progress (slog, no-op)
//   - Optional: explicit present/absent wrapper for held-out data
//
// Example usage:
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{
//	    Epochs:        30,
//	    MiniBatchSize: 10,
//	    LR:            3.0,
//	    Seed:          1,
//	    Reporter:      optim.NewSlogReporter(slog.Default()),
//	})
//	if err != nil {
//	    return err
//	}
//	err = sgd.Train(net, trainData, optim.Some(testData))
package optim

import (
	"context"
	"log/slog"
)

// Reporter receives training progress.
type Reporter interface {
	// InitialEvaluation is called once before the first epoch when test
	// data is present.
	InitialEvaluation(correct, total int)
	// EpochEvaluated is called after each epoch when test data is present.
	EpochEvaluated(epoch, correct, total int)
	// EpochComplete is called after each epoch when no test data is present.
	EpochComplete(epoch int)
}

// NopReporter discards all progress.
type NopReporter struct{}

func (NopReporter) InitialEvaluation(int, int)   {}
func (NopReporter) EpochEvaluated(int, int, int) {}
func (NopReporter) EpochComplete(int)            {}

// SlogReporter writes progress as structured log records.
type SlogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter creates a reporter logging to logger (slog.Default() if nil).
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogReporter{logger: logger}
}

// InitialEvaluation logs the accuracy before training.
func (r *SlogReporter) InitialEvaluation(correct, total int) {
	r.logger.LogAttrs(context.Background(), slog.LevelInfo, "initial evaluation",
		slog.Int("correct", correct), slog.Int("total", total))
}

// EpochEvaluated logs the accuracy after an epoch.
func (r *SlogReporter) EpochEvaluated(epoch, correct, total int) {
	r.logger.LogAttrs(context.Background(), slog.LevelInfo, "epoch evaluated",
		slog.Int("epoch", epoch), slog.Int("correct", correct), slog.Int("total", total))
}

// EpochComplete logs the end of an epoch.
func (r *SlogReporter) EpochComplete(epoch int) {
	r.logger.LogAttrs(context.Background(), slog.LevelInfo, "epoch complete", slog.Int("epoch", epoch))
}

// Optional holds a value that may be absent.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool {
	return o.ok
}
