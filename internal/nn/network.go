package nn

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/born-ml/nnlib/internal/linalg"
	"github.com/born-ml/nnlib/internal/parallel"
)

// Network is a fully connected feedforward network.
//
// For layer sizes [n0, n1, ..., nL] it owns one weight matrix of shape
// [n(i+1), n(i)] and one bias vector of length n(i+1) per layer transition.
// Parameters only change through UpdateMiniBatch (or SetParameters).
//
// Example:
//
//	net, err := nn.New([]int{784, 16, 16, 10},
//	    nn.WithActivation(nn.Sigmoid{}),
//	    nn.WithRand(rand.NewPCG(1, 2)),
//	)
//	if err != nil {
//	    return err
//	}
//	output, err := net.FeedForward(input)
type Network struct {
	layerSizes []int
	weights    []*linalg.Matrix
	biases     []*linalg.Vector
	activation Activation
	par        parallel.Config
}

// Option configures a Network.
type Option func(*networkOptions)

type networkOptions struct {
	activation Activation
	src        rand.Source
	par        parallel.Config
}

// WithActivation sets the nonlinearity used by every layer. Default: Sigmoid.
func WithActivation(a Activation) Option {
	return func(o *networkOptions) {
		o.activation = a
	}
}

// WithRand sets the random source used for parameter initialisation.
// Default: a time-seeded PCG source.
func WithRand(src rand.Source) Option {
	return func(o *networkOptions) {
		o.src = src
	}
}

// WithParallel sets the worker configuration for matrix-vector products and
// per-example gradients. Default: sequential.
func WithParallel(cfg parallel.Config) Option {
	return func(o *networkOptions) {
		o.par = cfg
	}
}

// WithWorkers runs matrix-vector products and per-example gradients on n
// worker goroutines. n <= 1 is sequential.
func WithWorkers(n int) Option {
	return WithParallel(parallel.DefaultConfig().WithWorkers(n))
}

// New creates a network with the given layer sizes.
//
// Weights and biases are drawn independently from N(0, 1). At least two
// layers are required and every layer must have a positive size, otherwise
// ErrInvalidTopology is returned.
func New(layerSizes []int, opts ...Option) (*Network, error) {
	if len(layerSizes) < 2 {
		return nil, fmt.Errorf("%w: got %d layers", ErrInvalidTopology, len(layerSizes))
	}
	for i, size := range layerSizes {
		if size <= 0 {
			return nil, fmt.Errorf("%w: layer %d has size %d", ErrInvalidTopology, i, size)
		}
	}

	options := &networkOptions{
		activation: Sigmoid{},
		par:        parallel.Sequential(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.src == nil {
		//nolint:gosec // G404: parameter initialisation, not security-critical
		options.src = rand.NewPCG(uint64(time.Now().UnixNano()), 0)
	}

	n := &Network{
		layerSizes: append([]int(nil), layerSizes...),
		activation: options.activation,
		par:        options.par,
	}

	const mean, stddev = 0, 1
	for i := 1; i < len(layerSizes); i++ {
		n.biases = append(n.biases, linalg.RandomVector(layerSizes[i], mean, stddev, options.src))
	}
	for i := 1; i < len(layerSizes); i++ {
		n.weights = append(n.weights, linalg.RandomMatrix(layerSizes[i], layerSizes[i-1], mean, stddev, options.src))
	}

	return n, nil
}

// LayerSizes returns a copy of the layer sizes.
func (n *Network) LayerSizes() []int {
	return append([]int(nil), n.layerSizes...)
}

// NumLayers returns the number of layers, input and output included.
func (n *Network) NumLayers() int {
	return len(n.layerSizes)
}

// InputSize returns the expected input length.
func (n *Network) InputSize() int {
	return n.layerSizes[0]
}

// OutputSize returns the output length.
func (n *Network) OutputSize() int {
	return n.layerSizes[len(n.layerSizes)-1]
}

// Activation returns the network's nonlinearity.
func (n *Network) Activation() Activation {
	return n.activation
}

// Weights returns deep copies of the weight matrices.
func (n *Network) Weights() []*linalg.Matrix {
	out := make([]*linalg.Matrix, len(n.weights))
	for i, w := range n.weights {
		out[i] = w.Clone()
	}
	return out
}

// Biases returns deep copies of the bias vectors.
func (n *Network) Biases() []*linalg.Vector {
	out := make([]*linalg.Vector, len(n.biases))
	for i, b := range n.biases {
		out[i] = b.Clone()
	}
	return out
}

// SetParameters replaces all weights and biases with copies of the given
// values. Shapes must match the network topology exactly.
func (n *Network) SetParameters(weights []*linalg.Matrix, biases []*linalg.Vector) error {
	transitions := len(n.layerSizes) - 1
	if len(weights) != transitions || len(biases) != transitions {
		return fmt.Errorf("set parameters: %w: got %d weights and %d biases for %d transitions",
			linalg.ErrDimensionMismatch, len(weights), len(biases), transitions)
	}
	for i := 0; i < transitions; i++ {
		if err := linalg.ExpectShape(fmt.Sprintf("weights[%d]", i), weights[i], n.layerSizes[i+1], n.layerSizes[i]); err != nil {
			return fmt.Errorf("set parameters: %w", err)
		}
		if err := linalg.ExpectLen(fmt.Sprintf("biases[%d]", i), biases[i], n.layerSizes[i+1]); err != nil {
			return fmt.Errorf("set parameters: %w", err)
		}
	}
	for i := 0; i < transitions; i++ {
		n.weights[i] = weights[i].Clone()
		n.biases[i] = biases[i].Clone()
	}
	return nil
}

// ValidateExample checks that ex fits the network: the input has the input
// layer's length and the target is a one-hot vector of the output layer's
// length.
func (n *Network) ValidateExample(ex Example) error {
	if err := linalg.ExpectLen("input", ex.Input, n.InputSize()); err != nil {
		return err
	}
	if err := linalg.ExpectLen("target", ex.Target, n.OutputSize()); err != nil {
		return err
	}
	if _, err := OneHotToIndex(ex.Target); err != nil {
		return err
	}
	return nil
}

// FeedForward returns the network output for input.
// It fails with a dimension error if input does not match the input layer.
func (n *Network) FeedForward(input *linalg.Vector) (*linalg.Vector, error) {
	if err := linalg.ExpectLen("feedforward", input, n.InputSize()); err != nil {
		return nil, err
	}
	return n.feedForward(input), nil
}

func (n *Network) feedForward(input *linalg.Vector) *linalg.Vector {
	a := input
	for i := range n.weights {
		a = n.activation.Activate(n.weighted(i, a))
	}
	return a
}

// weighted returns z = weights[i] * a + biases[i].
func (n *Network) weighted(i int, a *linalg.Vector) *linalg.Vector {
	return n.weights[i].MulVecParallel(a, n.par).AddInPlace(n.biases[i])
}

// Evaluate returns how many examples the network classifies correctly: the
// index of the largest output must equal the index of the target's 1.
//
// Every example is validated before any is evaluated; a malformed target
// fails the whole evaluation with ErrMalformedOneHot.
func (n *Network) Evaluate(data AnnotatedData) (int, error) {
	for i, ex := range data {
		if err := n.ValidateExample(ex); err != nil {
			return 0, fmt.Errorf("evaluate: example %d: %w", i, err)
		}
	}

	correct := 0
	for _, ex := range data {
		got, err := GetMaxIndex(n.feedForward(ex.Input))
		if err != nil {
			return 0, err
		}
		want, _ := OneHotToIndex(ex.Target)
		if got == want {
			correct++
		}
	}
	return correct, nil
}
