// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim trains networks with mini-batch stochastic gradient descent.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/nnlib/nn"
//	    "github.com/born-ml/nnlib/optim"
//	)
//
//	func main() {
//	    net, _ := nn.New([]int{784, 30, 10})
//
//	    sgd, err := optim.NewSGD(optim.SGDConfig{
//	        Epochs:        30,
//	        MiniBatchSize: 10,
//	        LR:            3.0,
//	        Reporter:      optim.NewSlogReporter(slog.Default()),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    err = sgd.Train(net, train, optim.Some(test))
//	}
//
// Or in one call:
//
//	err := optim.Sgd(net, train, 30, 10, 3.0, optim.Some(test), optim.WithSeed(42))
//
// # Mini-batches
//
// The training set must split into whole mini-batches: a remainder is
// rejected with ErrNonDivisibleBatch before any parameter changes.
//
// # Progress
//
// A Reporter receives the test accuracy before training and after every
// epoch, or a completion notice per epoch when no test data is supplied.
package optim
