package nn

import "github.com/born-ml/nnlib/internal/linalg"

// Gradients holds the cost gradient with respect to every bias and weight of
// a network, layer by layer. Biases[i] and Weights[i] have the shapes of the
// network's biases[i] and weights[i].
type Gradients struct {
	Biases  []*linalg.Vector
	Weights []*linalg.Matrix
}

// zeroGradients returns zero-valued gradients shaped like the network's
// parameters.
func (n *Network) zeroGradients() *Gradients {
	g := &Gradients{
		Biases:  make([]*linalg.Vector, len(n.biases)),
		Weights: make([]*linalg.Matrix, len(n.weights)),
	}
	for i, b := range n.biases {
		g.Biases[i] = linalg.ZeroVector(b.Len())
	}
	for i, w := range n.weights {
		g.Weights[i] = linalg.ZeroMatrix(w.Height(), w.Width())
	}
	return g
}

// Add accumulates other into g in place.
func (g *Gradients) Add(other *Gradients) {
	for i := range g.Biases {
		g.Biases[i].AddInPlace(other.Biases[i])
		g.Weights[i].AddInPlace(other.Weights[i])
	}
}

// Scale returns s * g as new gradients.
func (g *Gradients) Scale(s float64) *Gradients {
	out := &Gradients{
		Biases:  make([]*linalg.Vector, len(g.Biases)),
		Weights: make([]*linalg.Matrix, len(g.Weights)),
	}
	for i := range g.Biases {
		out.Biases[i] = g.Biases[i].Scale(s)
		out.Weights[i] = g.Weights[i].Scale(s)
	}
	return out
}
