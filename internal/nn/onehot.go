package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/nnlib/internal/linalg"
)

// IndexToOneHot returns a vector of length nClasses with a 1 at index.
func IndexToOneHot(index, nClasses int) (*linalg.Vector, error) {
	if index < 0 || index >= nClasses {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, nClasses)
	}
	v := linalg.ZeroVector(nClasses)
	v.Set(index, 1)
	return v, nil
}

// OneHotToIndex returns the position of the single 1 in v.
//
// Every other element must be exactly 0; anything else returns
// ErrMalformedOneHot rather than a guessed index.
func OneHotToIndex(v *linalg.Vector) (int, error) {
	if v == nil {
		return -1, fmt.Errorf("%w: nil vector", ErrMalformedOneHot)
	}
	index := -1
	for i, x := range v.Data() {
		switch x {
		case 0:
		case 1:
			if index >= 0 {
				return -1, fmt.Errorf("%w: ones at %d and %d", ErrMalformedOneHot, index, i)
			}
			index = i
		default:
			return -1, fmt.Errorf("%w: element %d is %v", ErrMalformedOneHot, i, x)
		}
	}
	if index < 0 {
		return -1, fmt.Errorf("%w: no element equals 1", ErrMalformedOneHot)
	}
	return index, nil
}

// GetMaxIndex returns the index of the largest element of v.
// Ties resolve to the lowest index.
func GetMaxIndex(v *linalg.Vector) (int, error) {
	if v == nil || v.Len() == 0 {
		return -1, ErrEmptyVector
	}
	return floats.MaxIdx(v.Data()), nil
}
