package linalg

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is reported when an operation receives operands of
// incompatible lengths or shapes.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// DimensionError describes which operation rejected which shapes.
// It matches ErrDimensionMismatch with errors.Is.
type DimensionError struct {
	Op    string // Operation name (e.g. "add", "mulvec")
	Left  []int  // Shape of the receiver / first operand
	Right []int  // Shape of the second operand or the expected shape
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s: %v vs %v", e.Op, ErrDimensionMismatch, e.Left, e.Right)
}

// Unwrap returns ErrDimensionMismatch.
func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

func mismatch(op string, left, right []int) *DimensionError {
	return &DimensionError{Op: op, Left: left, Right: right}
}

// ExpectLen returns a *DimensionError if v does not have length n.
//
// Arithmetic operators panic on mismatched operands; callers that accept
// vectors from the outside validate them with ExpectLen first and return the
// error instead.
func ExpectLen(op string, v *Vector, n int) error {
	if v == nil {
		return mismatch(op, nil, []int{n})
	}
	if v.Len() != n {
		return mismatch(op, []int{v.Len()}, []int{n})
	}
	return nil
}

// ExpectShape returns a *DimensionError if m is not height x width.
func ExpectShape(op string, m *Matrix, height, width int) error {
	if m == nil {
		return mismatch(op, nil, []int{height, width})
	}
	if m.rows != height || m.cols != width {
		return mismatch(op, []int{m.rows, m.cols}, []int{height, width})
	}
	return nil
}
