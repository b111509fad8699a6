// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides fully connected feedforward networks.
//
// # Overview
//
// This package contains:
//   - Network: dense layers with one shared activation, N(0, 1) initialisation
//   - Activations: Sigmoid, ReLU (the Activation strategy interface)
//   - Backprop and UpdateMiniBatch for the quadratic cost ½‖a − y‖²
//   - Evaluate: argmax accuracy over labelled data
//   - One-hot helpers: IndexToOneHot, OneHotToIndex, GetMaxIndex
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/nnlib/linalg"
//	    "github.com/born-ml/nnlib/nn"
//	)
//
//	func main() {
//	    net, err := nn.New([]int{784, 30, 10}, nn.WithActivation(nn.Sigmoid{}))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    output, err := net.FeedForward(input)
//	    digit, _ := nn.GetMaxIndex(output)
//	}
//
// # Training
//
// A Network is trained by repeatedly applying UpdateMiniBatch; package optim
// wraps that loop into epochs with shuffling and evaluation.
//
// # Parallelism
//
// WithWorkers lets the network compute the per-example gradients of a
// mini-batch on several goroutines. Gradients are summed in example order, so
// the result is identical to a sequential run.
package nn
