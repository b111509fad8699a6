package nn

import (
	"fmt"

	"github.com/born-ml/nnlib/internal/linalg"
	"github.com/born-ml/nnlib/internal/parallel"
)

// CostDerivative returns ∂C/∂a for the quadratic cost C = ½‖a − y‖²,
// i.e. output − target.
func CostDerivative(output, target *linalg.Vector) *linalg.Vector {
	return output.Sub(target)
}

// Cost returns the quadratic cost ½‖output − target‖².
func Cost(output, target *linalg.Vector) float64 {
	d := output.Sub(target)
	return 0.5 * d.Dot(d)
}

// Backprop returns the gradient of the quadratic cost of a single example
// with respect to every bias and weight of the network.
func (n *Network) Backprop(ex Example) (*Gradients, error) {
	if err := n.ValidateExample(ex); err != nil {
		return nil, fmt.Errorf("backprop: %w", err)
	}
	return n.backprop(ex), nil
}

func (n *Network) backprop(ex Example) *Gradients {
	layers := len(n.weights)
	grads := &Gradients{
		Biases:  make([]*linalg.Vector, layers),
		Weights: make([]*linalg.Matrix, layers),
	}

	// Forward pass, keeping every weighted input and activation.
	activations := make([]*linalg.Vector, 0, layers+1)
	zs := make([]*linalg.Vector, 0, layers)
	activations = append(activations, ex.Input)
	for i := 0; i < layers; i++ {
		z := n.weighted(i, activations[i])
		zs = append(zs, z)
		activations = append(activations, n.activation.Activate(z))
	}

	// Output layer.
	last := layers - 1
	delta := CostDerivative(activations[layers], ex.Target).Hadamard(n.activation.ActivateDerivative(zs[last]))
	grads.Biases[last] = delta
	grads.Weights[last] = delta.Outer(activations[last])

	// Hidden layers, from the back.
	for l := last - 1; l >= 0; l-- {
		delta = n.weights[l+1].TransposeMulVec(delta).Hadamard(n.activation.ActivateDerivative(zs[l]))
		grads.Biases[l] = delta
		grads.Weights[l] = delta.Outer(activations[l])
	}

	return grads
}

// UpdateMiniBatch applies one gradient descent step using the average
// gradient of batch:
//
//	biases[l]  -= (eta / len(batch)) * Σ nabla_b[l]
//	weights[l] -= (eta / len(batch)) * Σ nabla_w[l]
//
// All examples are validated before any gradient is computed, so a malformed
// example leaves the parameters untouched. Per-example gradients run on the
// network's worker configuration and are summed in batch order.
func (n *Network) UpdateMiniBatch(batch AnnotatedData, eta float64) error {
	if len(batch) == 0 {
		return ErrEmptyBatch
	}
	for i, ex := range batch {
		if err := n.ValidateExample(ex); err != nil {
			return fmt.Errorf("update mini-batch: example %d: %w", i, err)
		}
	}
	n.updateMiniBatch(batch, eta)
	return nil
}

func (n *Network) updateMiniBatch(batch AnnotatedData, eta float64) {
	// Matrix-vector products stay sequential inside a worker; the batch is
	// the unit of parallelism here.
	inner := *n
	inner.par = parallel.Sequential()

	perExample := parallel.Map(len(batch), func(i int) *Gradients {
		return inner.backprop(batch[i])
	}, n.par)

	nabla := n.zeroGradients()
	for _, g := range perExample {
		nabla.Add(g)
	}

	step := nabla.Scale(eta / float64(len(batch)))
	for l := range n.weights {
		n.biases[l].SubInPlace(step.Biases[l])
		n.weights[l].SubInPlace(step.Weights[l])
	}
}
