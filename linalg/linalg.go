// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"math/rand/v2"

	"github.com/born-ml/nnlib/internal/linalg"
)

// Vector is a dense float64 vector.
type Vector = linalg.Vector

// Matrix is a dense row-major float64 matrix.
type Matrix = linalg.Matrix

// DimensionError describes the operand shapes of a failed operation.
type DimensionError = linalg.DimensionError

// ErrDimensionMismatch is matched by every DimensionError.
var ErrDimensionMismatch = linalg.ErrDimensionMismatch

// NewVector creates a zero vector of length n.
func NewVector(n int) *Vector {
	return linalg.NewVector(n)
}

// ZeroVector is an alias for NewVector.
func ZeroVector(n int) *Vector {
	return linalg.ZeroVector(n)
}

// VectorOf creates a vector holding a copy of values.
//
// Example:
//
//	v := linalg.VectorOf(1, 2, 3)
func VectorOf(values ...float64) *Vector {
	return linalg.VectorOf(values...)
}

// NewMatrix creates a zero matrix of the given shape.
func NewMatrix(height, width int) *Matrix {
	return linalg.NewMatrix(height, width)
}

// ZeroMatrix is an alias for NewMatrix.
func ZeroMatrix(height, width int) *Matrix {
	return linalg.ZeroMatrix(height, width)
}

// MatrixOf creates a matrix from row-major values.
// It panics if len(values) != height*width.
func MatrixOf(height, width int, values ...float64) *Matrix {
	return linalg.MatrixOf(height, width, values...)
}

// MatrixFromRows creates a matrix from equally long rows.
func MatrixFromRows(rows ...[]float64) *Matrix {
	return linalg.MatrixFromRows(rows...)
}

// RandomVector draws n elements from N(mean, stddev) using src.
func RandomVector(n int, mean, stddev float64, src rand.Source) *Vector {
	return linalg.RandomVector(n, mean, stddev, src)
}

// RandomMatrix draws height*width elements from N(mean, stddev) using src.
func RandomMatrix(height, width int, mean, stddev float64, src rand.Source) *Matrix {
	return linalg.RandomMatrix(height, width, mean, stddev, src)
}

// ExpectLen returns a *DimensionError if v does not have length n.
func ExpectLen(op string, v *Vector, n int) error {
	return linalg.ExpectLen(op, v, n)
}

// ExpectShape returns a *DimensionError if m is not height x width.
func ExpectShape(op string, m *Matrix, height, width int) error {
	return linalg.ExpectShape(op, m, height, width)
}
