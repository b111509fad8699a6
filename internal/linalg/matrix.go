package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnlib/internal/parallel"
)

// Matrix is a height x width grid of float64 values stored in a single
// contiguous row-major buffer.
type Matrix struct {
	rows int
	cols int
	data []float64 // len == rows*cols, element (i, j) at i*cols+j
}

// NewMatrix creates a zero matrix with the given height and width.
func NewMatrix(height, width int) *Matrix {
	if height < 0 || width < 0 {
		panic(fmt.Sprintf("linalg: negative matrix shape [%d %d]", height, width))
	}
	return &Matrix{rows: height, cols: width, data: make([]float64, height*width)}
}

// ZeroMatrix is an alias of NewMatrix.
func ZeroMatrix(height, width int) *Matrix {
	return NewMatrix(height, width)
}

// MatrixOf creates a height x width matrix from a copy of row-major values.
// It panics with a *DimensionError if len(values) != height*width.
//
// Example:
//
//	m := linalg.MatrixOf(2, 3,
//	    1, 2, 3,
//	    4, 5, 6)
func MatrixOf(height, width int, values ...float64) *Matrix {
	m := NewMatrix(height, width)
	if len(values) != len(m.data) {
		panic(mismatch("matrix", []int{len(values)}, []int{height, width}))
	}
	copy(m.data, values)
	return m
}

// MatrixFromRows creates a matrix from equally sized rows.
func MatrixFromRows(rows ...[]float64) *Matrix {
	if len(rows) == 0 {
		return NewMatrix(0, 0)
	}
	m := NewMatrix(len(rows), len(rows[0]))
	for i, r := range rows {
		if len(r) != m.cols {
			panic(mismatch("matrix rows", []int{len(r)}, []int{m.cols}))
		}
		copy(m.Row(i), r)
	}
	return m
}

// Height returns the number of rows.
func (m *Matrix) Height() int { return m.rows }

// Width returns the number of columns.
func (m *Matrix) Width() int { return m.cols }

// Shape returns [height, width].
func (m *Matrix) Shape() []int { return []int{m.rows, m.cols} }

// At returns element (i, j).
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

// Set assigns element (i, j).
func (m *Matrix) Set(i, j int, x float64) {
	m.data[i*m.cols+j] = x
}

// Row returns row i as a slice sharing the matrix buffer.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// RowVector returns a copy of row i.
func (m *Matrix) RowVector(i int) *Vector {
	return VectorOf(m.Row(i)...)
}

// Data returns the row-major backing slice.
func (m *Matrix) Data() []float64 {
	return m.data
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return MatrixOf(m.rows, m.cols, m.data...)
}

func (m *Matrix) mustMatch(op string, other *Matrix) {
	if m.rows != other.rows || m.cols != other.cols {
		panic(mismatch(op, m.Shape(), other.Shape()))
	}
}

// Add returns m + other.
func (m *Matrix) Add(other *Matrix) *Matrix {
	m.mustMatch("add", other)
	out := NewMatrix(m.rows, m.cols)
	floats.AddTo(out.data, m.data, other.data)
	return out
}

// Sub returns m - other.
func (m *Matrix) Sub(other *Matrix) *Matrix {
	m.mustMatch("sub", other)
	out := NewMatrix(m.rows, m.cols)
	floats.SubTo(out.data, m.data, other.data)
	return out
}

// Scale returns s * m.
func (m *Matrix) Scale(s float64) *Matrix {
	out := NewMatrix(m.rows, m.cols)
	floats.ScaleTo(out.data, s, m.data)
	return out
}

// Neg returns -m.
func (m *Matrix) Neg() *Matrix {
	return m.Scale(-1)
}

// AddInPlace performs m += other and returns m.
func (m *Matrix) AddInPlace(other *Matrix) *Matrix {
	m.mustMatch("add", other)
	floats.Add(m.data, other.data)
	return m
}

// SubInPlace performs m -= other and returns m.
func (m *Matrix) SubInPlace(other *Matrix) *Matrix {
	m.mustMatch("sub", other)
	floats.Sub(m.data, other.data)
	return m
}

// Transpose returns the width x height matrix with out[j][i] = m[i][j].
func (m *Matrix) Transpose() *Matrix {
	out := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// MulVec returns the matrix-vector product m * v.
// v must have length m.Width(); the result has length m.Height().
func (m *Matrix) MulVec(v *Vector) *Vector {
	return m.MulVecParallel(v, parallel.Sequential())
}

// MulVecParallel is MulVec with rows spread over workers according to cfg.
// Each output element is computed by exactly one worker, so the result is
// identical to the sequential product.
func (m *Matrix) MulVecParallel(v *Vector, cfg parallel.Config) *Vector {
	if v.Len() != m.cols {
		panic(mismatch("mulvec", m.Shape(), []int{v.Len()}))
	}
	out := NewVector(m.rows)
	parallel.For(m.rows, func(i int) {
		out.data[i] = floats.Dot(m.Row(i), v.data)
	}, cfg)
	return out
}

// TransposeMulVec returns mᵗ * v without materialising the transpose.
// v must have length m.Height(); the result has length m.Width().
func (m *Matrix) TransposeMulVec(v *Vector) *Vector {
	if v.Len() != m.rows {
		panic(mismatch("transpose mulvec", []int{m.cols, m.rows}, []int{v.Len()}))
	}
	out := NewVector(m.cols)
	for i := 0; i < m.rows; i++ {
		floats.AddScaled(out.data, v.data[i], m.Row(i))
	}
	return out
}

// Equal reports whether m and other have the same shape and elements.
func (m *Matrix) Equal(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols && floats.Equal(m.data, other.data)
}

// EqualApprox reports whether m and other have the same shape and all
// elements are within tol of each other.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	return m.rows == other.rows && m.cols == other.cols && floats.EqualApprox(m.data, other.data, tol)
}

// Dense returns a gonum copy of m. Like gonum, it panics if m is empty.
func (m *Matrix) Dense() *mat.Dense {
	return mat.NewDense(m.rows, m.cols, m.Clone().data)
}
