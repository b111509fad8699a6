package nn

import (
	"fmt"
	"math"
	"strings"

	"github.com/born-ml/nnlib/internal/linalg"
)

// Activation is the elementwise nonlinearity applied after every layer
// transform, together with its derivative.
//
// A Network holds exactly one Activation for its whole lifetime; the forward
// and backward passes only talk to this interface.
type Activation interface {
	// Activate applies the nonlinearity to every element of z.
	Activate(z *linalg.Vector) *linalg.Vector
	// ActivateDerivative returns the derivative of the nonlinearity at every
	// element of z.
	ActivateDerivative(z *linalg.Vector) *linalg.Vector
}

// Sigmoid is the logistic activation.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
// with derivative σ'(x) = σ(x) * (1 - σ(x)).
//
// Example:
//
//	net, err := nn.New([]int{784, 30, 10}, nn.WithActivation(nn.Sigmoid{}))
type Sigmoid struct{}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Activate applies σ elementwise.
func (Sigmoid) Activate(z *linalg.Vector) *linalg.Vector {
	return z.Apply(sigmoid)
}

// ActivateDerivative returns σ(z) ⊙ (1 - σ(z)).
func (s Sigmoid) ActivateDerivative(z *linalg.Vector) *linalg.Vector {
	a := s.Activate(z)
	return a.Hadamard(a.ScalarSub(1))
}

// String returns "sigmoid".
func (Sigmoid) String() string { return "sigmoid" }

// ReLU is the rectified linear activation.
//
// Applies the element-wise function: f(x) = max(0, x).
// The derivative is 1 where x > 0 and 0 elsewhere, including x == 0.
type ReLU struct{}

// Activate applies max(x, 0) elementwise.
func (ReLU) Activate(z *linalg.Vector) *linalg.Vector {
	return z.Apply(func(x float64) float64 {
		if x > 0 {
			return x
		}
		return 0
	})
}

// ActivateDerivative returns the 0/1 step of z.
func (ReLU) ActivateDerivative(z *linalg.Vector) *linalg.Vector {
	return z.Apply(func(x float64) float64 {
		if x > 0 {
			return 1
		}
		return 0
	})
}

// String returns "relu".
func (ReLU) String() string { return "relu" }

// ParseActivation maps a name ("sigmoid", "relu") to an Activation.
func ParseActivation(name string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sigmoid", "":
		return Sigmoid{}, nil
	case "relu":
		return ReLU{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivation, name)
	}
}
