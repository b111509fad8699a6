package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/born-ml/nnlib/internal/config"
	"github.com/born-ml/nnlib/internal/dataset"
	"github.com/born-ml/nnlib/internal/nn"
	"github.com/born-ml/nnlib/internal/parallel"
)

const mnistUsage = `Usage: nnlib mnist [flags] TRAIN_IMAGES TRAIN_LABELS TEST_IMAGES TEST_LABELS

Arguments are paths to the uncompressed MNIST files, in this order:
  1. train-images-idx3-ubyte: training set images
  2. train-labels-idx1-ubyte: training set labels
  3. t10k-images-idx3-ubyte:  test set images
  4. t10k-labels-idx1-ubyte:  test set labels
Download from http://yann.lecun.com/exdb/mnist/ and gunzip.

Flags:
`

// runMNIST trains a [784 16 16 10] network on MNIST, then draws every test
// image next to its label and the network's answer.
func runMNIST(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("mnist", flag.ContinueOnError)
	fs.SetOutput(stdout)
	show := fs.Int("show", 0, "Test images to draw after training (0 = all)")
	overrides := overrideFlags(fs)
	fs.Usage = func() {
		fmt.Fprint(stdout, mnistUsage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 4 {
		fs.Usage()
		return nil
	}

	cfg := config.Default()
	cfg.LayerSizes = []int{784, 16, 16, 10}
	cfg.Epochs = 30
	cfg.MiniBatchSize = 10
	cfg.Eta = 3
	cfg.Workers = parallel.DefaultConfig().NumWorkers
	cfg.TrainImages, cfg.TrainLabels = fs.Arg(0), fs.Arg(1)
	cfg.TestImages, cfg.TestLabels = fs.Arg(2), fs.Arg(3)
	cfg.ApplyOverrides(overrides())

	s, err := newSession(cfg, slog.New(slog.NewTextHandler(stdout, nil)))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w (run 'nnlib mnist -h' for where to get the files)", err)
	}
	if err != nil {
		return err
	}
	if err := s.run(); err != nil {
		return err
	}
	return showPredictions(stdout, s.net, s.tests, *show)
}

// showPredictions draws the first limit images of set (all when limit <= 0)
// with the true label and the network's most activated output.
func showPredictions(w io.Writer, net *nn.Network, set *dataset.Set, limit int) error {
	n := len(set.Images)
	if limit > 0 && limit < n {
		n = limit
	}

	for i := range n {
		if err := dataset.DrawImage(w, set.Images[i]); err != nil {
			return err
		}
		output, err := net.FeedForward(set.Data[i].Input)
		if err != nil {
			return err
		}
		guess, err := nn.GetMaxIndex(output)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Actual: %d, Network: %d\n", set.Labels[i], guess)
	}
	return nil
}
