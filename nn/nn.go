// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/nnlib/internal/nn"
	"github.com/born-ml/nnlib/linalg"
)

// Network is a fully connected feedforward network.
type Network = nn.Network

// Option configures a Network built by New.
type Option = nn.Option

// Gradients holds per-layer bias and weight gradients.
type Gradients = nn.Gradients

// Example is one labelled input.
type Example = nn.Example

// AnnotatedData is a list of labelled inputs.
type AnnotatedData = nn.AnnotatedData

// Errors.
var (
	ErrInvalidTopology   = nn.ErrInvalidTopology
	ErrMalformedOneHot   = nn.ErrMalformedOneHot
	ErrIndexOutOfRange   = nn.ErrIndexOutOfRange
	ErrEmptyBatch        = nn.ErrEmptyBatch
	ErrUnknownActivation = nn.ErrUnknownActivation
	ErrEmptyVector       = nn.ErrEmptyVector
)

// New creates a network with the given layer sizes.
//
// Example:
//
//	net, err := nn.New([]int{2, 3, 1}, nn.WithRand(rand.NewPCG(1, 2)))
func New(layerSizes []int, opts ...Option) (*Network, error) {
	return nn.New(layerSizes, opts...)
}

// Configuration options for New.
var (
	WithActivation = nn.WithActivation
	WithRand       = nn.WithRand
	WithWorkers    = nn.WithWorkers
)

// Activations

// Activation is an elementwise nonlinearity with its derivative.
type Activation = nn.Activation

// Sigmoid is the logistic activation 1 / (1 + e^-x).
type Sigmoid = nn.Sigmoid

// ReLU is max(0, x).
type ReLU = nn.ReLU

// ParseActivation maps "sigmoid" or "relu" to an Activation.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Cost

// Cost returns the quadratic cost ½‖output − target‖².
func Cost(output, target *linalg.Vector) float64 {
	return nn.Cost(output, target)
}

// CostDerivative returns output − target.
func CostDerivative(output, target *linalg.Vector) *linalg.Vector {
	return nn.CostDerivative(output, target)
}

// One-hot helpers

// IndexToOneHot returns a length nClasses vector with a single 1 at index.
func IndexToOneHot(index, nClasses int) (*linalg.Vector, error) {
	return nn.IndexToOneHot(index, nClasses)
}

// OneHotToIndex returns the position of the single 1 in v.
func OneHotToIndex(v *linalg.Vector) (int, error) {
	return nn.OneHotToIndex(v)
}

// GetMaxIndex returns the position of the largest element of v.
// Ties resolve to the first occurrence.
func GetMaxIndex(v *linalg.Vector) (int, error) {
	return nn.GetMaxIndex(v)
}
