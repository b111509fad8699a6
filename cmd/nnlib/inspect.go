package main

import (
	"flag"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnlib/internal/linalg"
	"github.com/born-ml/nnlib/internal/nn"
	"github.com/born-ml/nnlib/internal/optim"
)

// runInspect prints the parameters of a fresh [1 1 1 1] network and its
// output for an all-ones input, then runs a zero-epoch training pass.
func runInspect(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stdout)
	seed := fs.Uint64("seed", 0, "Random seed (0 = clock)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	net, err := nn.New([]int{1, 1, 1, 1}, nn.WithRand(source(*seed, 0)))
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Initial weights:")
	for _, w := range net.Weights() {
		fmt.Fprintf(stdout, "%v\n", mat.Formatted(w.Dense(), mat.Squeeze()))
	}
	fmt.Fprintln(stdout, "Initial biases:")
	for _, b := range net.Biases() {
		fmt.Fprintf(stdout, "%v\n", mat.Formatted(b.VecDense().T(), mat.Squeeze()))
	}

	ones := make([]float64, net.InputSize())
	for i := range ones {
		ones[i] = 1
	}
	input := linalg.VectorOf(ones...)
	output, err := net.FeedForward(input)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Input: %v\nOutput: %v\n", input, output)

	if err := optim.Sgd(net, nil, 0, 1, 0, optim.None[nn.AnnotatedData]()); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Done.")
	return nil
}
