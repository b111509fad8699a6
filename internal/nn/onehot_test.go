package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/nnlib/internal/linalg"
)

func TestOneHotRoundTrip(t *testing.T) {
	for n := 1; n <= 10; n++ {
		for i := 0; i < n; i++ {
			v, err := IndexToOneHot(i, n)
			require.NoError(t, err)
			require.Equal(t, n, v.Len())

			got, err := OneHotToIndex(v)
			require.NoError(t, err)
			assert.Equal(t, i, got)
		}
	}
}

func TestIndexToOneHot_OutOfRange(t *testing.T) {
	for _, tc := range [][2]int{{-1, 3}, {3, 3}, {0, 0}} {
		_, err := IndexToOneHot(tc[0], tc[1])
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index=%d n=%d", tc[0], tc[1])
	}
}

func TestOneHotToIndex_Malformed(t *testing.T) {
	cases := map[string]*linalg.Vector{
		"all zeros":   linalg.VectorOf(0, 0, 0),
		"two ones":    linalg.VectorOf(1, 0, 1),
		"fractional":  linalg.VectorOf(0, 0.9, 0),
		"stray value": linalg.VectorOf(1, 0, 0.1),
		"empty":       linalg.NewVector(0),
		"nil":         nil,
	}
	for name, v := range cases {
		idx, err := OneHotToIndex(v)
		assert.ErrorIs(t, err, ErrMalformedOneHot, name)
		assert.Equal(t, -1, idx, name)
	}
}

func TestGetMaxIndex(t *testing.T) {
	idx, err := GetMaxIndex(linalg.VectorOf(0.1, 0.7, 0.2))
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	// Ties go to the lowest index.
	idx, err = GetMaxIndex(linalg.VectorOf(0.2, 0.9, 0.9, 0.9))
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = GetMaxIndex(linalg.VectorOf(-3, -3))
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = GetMaxIndex(linalg.NewVector(0))
	require.ErrorIs(t, err, ErrEmptyVector)

	_, err = GetMaxIndex(nil)
	require.ErrorIs(t, err, ErrEmptyVector)
}

func TestAnnotatedDataClone(t *testing.T) {
	d := AnnotatedData{
		{Input: linalg.VectorOf(1)},
		{Input: linalg.VectorOf(2)},
	}
	c := d.Clone()
	c[0], c[1] = c[1], c[0]
	assert.Equal(t, 1.0, d[0].Input.At(0))
}
