package linalg

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// RandomVector creates a vector of length n with independent draws from
// N(mean, stddev²) taken from src.
//
// A nil src falls back to the global math/rand/v2 source, which is not
// reproducible; pass a seeded source (e.g. rand.NewPCG) for deterministic runs.
func RandomVector(n int, mean, stddev float64, src rand.Source) *Vector {
	v := NewVector(n)
	fillNormal(v.data, mean, stddev, src)
	return v
}

// RandomMatrix creates a height x width matrix with independent draws from
// N(mean, stddev²) taken from src, filled in row-major order.
func RandomMatrix(height, width int, mean, stddev float64, src rand.Source) *Matrix {
	m := NewMatrix(height, width)
	fillNormal(m.data, mean, stddev, src)
	return m
}

func fillNormal(dst []float64, mean, stddev float64, src rand.Source) {
	dist := distuv.Normal{Mu: mean, Sigma: stddev, Src: src}
	for i := range dst {
		dst[i] = dist.Rand()
	}
}
