package linalg

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/nnlib/internal/parallel"
)

// recoverDimensionError runs f and returns the *DimensionError it panicked with.
func recoverDimensionError(t *testing.T, f func()) (derr *DimensionError) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, ErrDimensionMismatch))
		require.True(t, errors.As(err, &derr))
	}()
	f()
	return nil
}

func TestVector_Arithmetic(t *testing.T) {
	a := VectorOf(1, 2, 3)
	b := VectorOf(4, -5, 6)

	assert.Equal(t, []float64{5, -3, 9}, a.Add(b).Data())
	assert.Equal(t, []float64{-3, 7, -3}, a.Sub(b).Data())
	assert.Equal(t, []float64{4, -10, 18}, a.Hadamard(b).Data())
	assert.Equal(t, []float64{2, 4, 6}, a.Scale(2).Data())
	assert.Equal(t, []float64{0, -1, -2}, a.ScalarSub(1).Data())
	assert.Equal(t, []float64{-1, -2, -3}, a.Neg().Data())
	assert.InDelta(t, 12.0, a.Dot(b), 1e-12)

	// Operands are untouched.
	assert.Equal(t, []float64{1, 2, 3}, a.Data())
	assert.Equal(t, []float64{4, -5, 6}, b.Data())
}

func TestVector_InPlace(t *testing.T) {
	a := VectorOf(1, 2)
	a.AddInPlace(VectorOf(1, 1)).SubInPlace(VectorOf(0.5, 0.5))
	assert.Equal(t, []float64{1.5, 2.5}, a.Data())
}

func TestVector_AddSubRoundTrip(t *testing.T) {
	src := rand.NewPCG(1, 2)
	for n := 1; n < 20; n++ {
		a := RandomVector(n, 0, 3, src)
		b := RandomVector(n, 1, 2, src)
		assert.True(t, a.Add(b).Sub(b).EqualApprox(a, 1e-12), "n=%d", n)
	}
}

func TestVector_ScaleRoundTrip(t *testing.T) {
	src := rand.NewPCG(3, 4)
	a := RandomVector(16, 0, 1, src)
	for _, s := range []float64{0.1, 3, -7.5, 1e3} {
		assert.True(t, a.Scale(s).Scale(1/s).EqualApprox(a, 1e-12), "s=%v", s)
	}
}

func TestVector_DimensionMismatch(t *testing.T) {
	a := VectorOf(1, 2, 3)
	b := VectorOf(1, 2)

	derr := recoverDimensionError(t, func() { a.Add(b) })
	assert.Equal(t, "add", derr.Op)
	assert.Equal(t, []int{3}, derr.Left)
	assert.Equal(t, []int{2}, derr.Right)

	recoverDimensionError(t, func() { a.Sub(b) })
	recoverDimensionError(t, func() { a.Hadamard(b) })
	recoverDimensionError(t, func() { a.AddInPlace(b) })
	recoverDimensionError(t, func() { a.SubInPlace(b) })
	recoverDimensionError(t, func() { a.Dot(b) })

	// Nothing was written before the check.
	assert.Equal(t, []float64{1, 2, 3}, a.Data())
}

func TestVector_Outer(t *testing.T) {
	u := VectorOf(1, 2, 3)
	v := VectorOf(4, 5)

	m := u.Outer(v)
	require.Equal(t, 3, m.Height())
	require.Equal(t, 2, m.Width())
	for i := 0; i < u.Len(); i++ {
		for j := 0; j < v.Len(); j++ {
			assert.Equal(t, u.At(i)*v.At(j), m.At(i, j))
		}
	}
}

func TestVector_CloneIsIndependent(t *testing.T) {
	a := VectorOf(1, 2)
	c := a.Clone()
	c.Set(0, 42)
	assert.Equal(t, 1.0, a.At(0))
}

func TestVector_String(t *testing.T) {
	assert.Equal(t, "[1, -2.5, 3]", VectorOf(1, -2.5, 3).String())
	assert.Equal(t, "[]", NewVector(0).String())
}

func TestMatrix_ConstructionAndAccess(t *testing.T) {
	m := MatrixOf(2, 3,
		1, 2, 3,
		4, 5, 6)
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 6.0, m.At(1, 2))
	assert.Equal(t, []float64{4, 5, 6}, m.Row(1))

	m.Row(0)[1] = 20
	assert.Equal(t, 20.0, m.At(0, 1))

	r := m.RowVector(0)
	r.Set(0, -1)
	assert.Equal(t, 1.0, m.At(0, 0))

	assert.True(t, m.Equal(MatrixFromRows([]float64{1, 20, 3}, []float64{4, 5, 6})))

	recoverDimensionError(t, func() { MatrixOf(2, 2, 1, 2, 3) })
	recoverDimensionError(t, func() { MatrixFromRows([]float64{1, 2}, []float64{3}) })
}

func TestMatrix_Arithmetic(t *testing.T) {
	a := MatrixOf(2, 2, 1, 2, 3, 4)
	b := MatrixOf(2, 2, 0.5, 0.5, -1, 2)

	assert.Equal(t, []float64{1.5, 2.5, 2, 6}, a.Add(b).Data())
	assert.Equal(t, []float64{0.5, 1.5, 4, 2}, a.Sub(b).Data())
	assert.Equal(t, []float64{3, 6, 9, 12}, a.Scale(3).Data())
	assert.Equal(t, []float64{-1, -2, -3, -4}, a.Neg().Data())

	c := a.Clone()
	c.AddInPlace(b).SubInPlace(b)
	assert.True(t, c.EqualApprox(a, 1e-15))

	recoverDimensionError(t, func() { a.Add(NewMatrix(2, 3)) })
	recoverDimensionError(t, func() { a.Sub(NewMatrix(3, 2)) })
	recoverDimensionError(t, func() { a.AddInPlace(NewMatrix(1, 4)) })
}

func TestMatrix_RoundTrips(t *testing.T) {
	src := rand.NewPCG(5, 6)
	for _, shape := range [][2]int{{1, 1}, {2, 3}, {7, 4}, {16, 1}} {
		a := RandomMatrix(shape[0], shape[1], 0, 1, src)
		b := RandomMatrix(shape[0], shape[1], 2, 1, src)
		assert.True(t, a.Add(b).Sub(b).EqualApprox(a, 1e-12), "shape=%v", shape)
		assert.True(t, a.Scale(4).Scale(0.25).EqualApprox(a, 1e-12), "shape=%v", shape)
		assert.True(t, a.Transpose().Transpose().Equal(a), "shape=%v", shape)
	}
}

func TestMatrix_Transpose(t *testing.T) {
	m := MatrixOf(2, 3, 1, 2, 3, 4, 5, 6)
	tr := m.Transpose()
	require.Equal(t, []int{3, 2}, tr.Shape())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, m.At(i, j), tr.At(j, i))
		}
	}
}

func TestMatrix_MulVec(t *testing.T) {
	m := MatrixOf(2, 3,
		1, 2, 3,
		4, 5, 6)
	v := VectorOf(1, 0, -1)

	out := m.MulVec(v)
	assert.Equal(t, []float64{-2, -2}, out.Data())

	derr := recoverDimensionError(t, func() { m.MulVec(VectorOf(1, 2)) })
	assert.Equal(t, "mulvec", derr.Op)

	tv := m.TransposeMulVec(VectorOf(1, 2))
	assert.True(t, tv.EqualApprox(m.Transpose().MulVec(VectorOf(1, 2)), 1e-12))
	recoverDimensionError(t, func() { m.TransposeMulVec(v) })
}

func TestMatrix_MulVecParallelMatchesSequential(t *testing.T) {
	src := rand.NewPCG(7, 8)
	m := RandomMatrix(300, 40, 0, 1, src)
	v := RandomVector(40, 0, 1, src)

	cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}
	assert.True(t, m.MulVec(v).Equal(m.MulVecParallel(v, cfg)))
}

func TestRandom_Reproducible(t *testing.T) {
	a := RandomMatrix(4, 5, 0, 1, rand.NewPCG(9, 9))
	b := RandomMatrix(4, 5, 0, 1, rand.NewPCG(9, 9))
	assert.True(t, a.Equal(b))

	c := RandomMatrix(4, 5, 0, 1, rand.NewPCG(9, 10))
	assert.False(t, a.Equal(c))
}

func TestRandom_Moments(t *testing.T) {
	v := RandomVector(20000, 3, 2, rand.NewPCG(11, 12))
	var sum, sq float64
	for _, x := range v.Data() {
		sum += x
	}
	mean := sum / float64(v.Len())
	for _, x := range v.Data() {
		sq += (x - mean) * (x - mean)
	}
	std := sq / float64(v.Len()-1)
	assert.InDelta(t, 3.0, mean, 0.1)
	assert.InDelta(t, 4.0, std, 0.2) // variance
}

func TestZeros(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0}, ZeroVector(3).Data())
	m := ZeroMatrix(2, 2)
	assert.Equal(t, []float64{0, 0, 0, 0}, m.Data())
}

func TestExpectHelpers(t *testing.T) {
	require.NoError(t, ExpectLen("input", VectorOf(1, 2), 2))
	err := ExpectLen("input", VectorOf(1, 2), 3)
	require.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Equal(t, "input: dimension mismatch: [2] vs [3]", err.Error())

	require.ErrorIs(t, ExpectLen("input", nil, 3), ErrDimensionMismatch)
	require.NoError(t, ExpectShape("weights", NewMatrix(2, 3), 2, 3))
	require.ErrorIs(t, ExpectShape("weights", NewMatrix(3, 2), 2, 3), ErrDimensionMismatch)
}

func TestGonumInterop(t *testing.T) {
	m := MatrixOf(2, 2, 1, 2, 3, 4)
	d := m.Dense()
	r, c := d.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3.0, d.At(1, 0))

	// The gonum copy does not alias the matrix.
	d.Set(0, 0, 100)
	assert.Equal(t, 1.0, m.At(0, 0))

	vd := VectorOf(5, 6).VecDense()
	assert.Equal(t, 2, vd.Len())
	assert.Equal(t, 6.0, vd.AtVec(1))
}

func TestMatrix_String(t *testing.T) {
	m := MatrixOf(2, 2, 1, 2, 3, 4)
	assert.Equal(t, "[[1, 2],\n [3, 4]]", m.String())
	assert.Equal(t, "[[5]]", MatrixOf(1, 1, 5).String())
}
