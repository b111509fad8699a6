package dataset

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/born-ml/nnlib/internal/linalg"
	"github.com/born-ml/nnlib/internal/nn"
)

// SignData generates n single-input examples x ~ N(0, 1) labelled by sign:
// target [1, 0] for x > 0 and [0, 1] otherwise.
func SignData(n int, src rand.Source) nn.AnnotatedData {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	data := make(nn.AnnotatedData, n)
	for i := range data {
		x := dist.Rand()
		target := linalg.VectorOf(0, 1)
		if x > 0 {
			target = linalg.VectorOf(1, 0)
		}
		data[i] = nn.Example{Input: linalg.VectorOf(x), Target: target}
	}
	return data
}
