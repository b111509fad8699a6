// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides the dense float64 vectors and matrices used by nnlib.
//
// # Overview
//
// This package contains:
//   - Vector: length-n column vector with elementwise arithmetic, dot and outer products
//   - Matrix: row-major height x width matrix with transpose and matrix-vector products
//   - Random constructors drawing from N(mean, stddev) with an injected source
//   - gonum interop (Vector.VecDense, Matrix.Dense)
//
// # Basic Usage
//
//	import "github.com/born-ml/nnlib/linalg"
//
//	func main() {
//	    w := linalg.MatrixOf(2, 3,
//	        1, 2, 3,
//	        4, 5, 6)
//	    x := linalg.VectorOf(1, 0, -1)
//
//	    y := w.MulVec(x)        // [-2, -2]
//	    z := y.Hadamard(y)      // [4, 4]
//	    fmt.Println(z.Sub(y))   // [6, 6]
//	}
//
// # Dimension checks
//
// Every binary operation checks the operand shapes before computing and
// panics with a *DimensionError on mismatch; no partial result is produced.
// The error satisfies errors.Is(err, ErrDimensionMismatch). Use ExpectLen and
// ExpectShape to validate input ahead of time and get an error instead.
package linalg
