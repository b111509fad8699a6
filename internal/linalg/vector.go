// Package linalg implements the dense vector and matrix primitives used by
// the network engine.
//
// All binary elementwise operators require operands of identical shape and
// panic with a *DimensionError otherwise; nothing is broadcast or truncated.
// Operators return fresh values and never alias their operands, except for
// the explicit *InPlace variants and the Data/Row accessors.
package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Vector is a fixed-length sequence of float64 values.
type Vector struct {
	data []float64
}

// NewVector creates a zero vector of length n.
func NewVector(n int) *Vector {
	if n < 0 {
		panic(fmt.Sprintf("linalg: negative vector length %d", n))
	}
	return &Vector{data: make([]float64, n)}
}

// ZeroVector is an alias of NewVector that reads better at call sites
// building accumulators.
func ZeroVector(n int) *Vector {
	return NewVector(n)
}

// VectorOf creates a vector holding a copy of values.
//
// Example:
//
//	v := linalg.VectorOf(1, 2, 3)
func VectorOf(values ...float64) *Vector {
	data := make([]float64, len(values))
	copy(data, values)
	return &Vector{data: data}
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	return len(v.data)
}

// At returns element i.
func (v *Vector) At(i int) float64 {
	return v.data[i]
}

// Set assigns element i.
func (v *Vector) Set(i int, x float64) {
	v.data[i] = x
}

// Data returns the backing slice. Writes through it modify the vector.
func (v *Vector) Data() []float64 {
	return v.data
}

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector {
	return VectorOf(v.data...)
}

func (v *Vector) mustMatch(op string, other *Vector) {
	if len(v.data) != len(other.data) {
		panic(mismatch(op, []int{len(v.data)}, []int{len(other.data)}))
	}
}

// Add returns v + other.
func (v *Vector) Add(other *Vector) *Vector {
	v.mustMatch("add", other)
	out := NewVector(len(v.data))
	floats.AddTo(out.data, v.data, other.data)
	return out
}

// Sub returns v - other.
func (v *Vector) Sub(other *Vector) *Vector {
	v.mustMatch("sub", other)
	out := NewVector(len(v.data))
	floats.SubTo(out.data, v.data, other.data)
	return out
}

// Hadamard returns the elementwise product v ⊙ other.
func (v *Vector) Hadamard(other *Vector) *Vector {
	v.mustMatch("hadamard", other)
	out := NewVector(len(v.data))
	floats.MulTo(out.data, v.data, other.data)
	return out
}

// Dot returns the inner product of v and other.
func (v *Vector) Dot(other *Vector) float64 {
	v.mustMatch("dot", other)
	return floats.Dot(v.data, other.data)
}

// Scale returns s * v.
func (v *Vector) Scale(s float64) *Vector {
	out := NewVector(len(v.data))
	floats.ScaleTo(out.data, s, v.data)
	return out
}

// ScalarSub returns s - v, broadcasting s over every element.
func (v *Vector) ScalarSub(s float64) *Vector {
	out := NewVector(len(v.data))
	for i, x := range v.data {
		out.data[i] = s - x
	}
	return out
}

// Neg returns -v.
func (v *Vector) Neg() *Vector {
	return v.Scale(-1)
}

// Apply returns a new vector with f applied to every element.
func (v *Vector) Apply(f func(float64) float64) *Vector {
	out := NewVector(len(v.data))
	for i, x := range v.data {
		out.data[i] = f(x)
	}
	return out
}

// AddInPlace performs v += other and returns v.
func (v *Vector) AddInPlace(other *Vector) *Vector {
	v.mustMatch("add", other)
	floats.Add(v.data, other.data)
	return v
}

// SubInPlace performs v -= other and returns v.
func (v *Vector) SubInPlace(other *Vector) *Vector {
	v.mustMatch("sub", other)
	floats.Sub(v.data, other.data)
	return v
}

// Outer returns the len(v) x len(other) matrix with out[i][j] = v[i] * other[j].
func (v *Vector) Outer(other *Vector) *Matrix {
	out := NewMatrix(len(v.data), len(other.data))
	for i, x := range v.data {
		floats.ScaleTo(out.Row(i), x, other.data)
	}
	return out
}

// Equal reports whether v and other have the same length and elements.
func (v *Vector) Equal(other *Vector) bool {
	return floats.Equal(v.data, other.data)
}

// EqualApprox reports whether v and other have the same length and all
// elements are within tol of each other.
func (v *Vector) EqualApprox(other *Vector, tol float64) bool {
	return floats.EqualApprox(v.data, other.data, tol)
}

// VecDense returns a gonum copy of v. Like gonum, it panics if v is empty.
func (v *Vector) VecDense() *mat.VecDense {
	return mat.NewVecDense(len(v.data), v.Clone().data)
}
