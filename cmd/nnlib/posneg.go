package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/born-ml/nnlib/internal/config"
	"github.com/born-ml/nnlib/internal/linalg"
	"github.com/born-ml/nnlib/internal/nn"
)

// runPosNeg trains a [1 2] network to tell positive numbers from negative
// ones, then classifies every number read from stdin until EOF.
//
//	nnlib posneg [-seed N] [sigmoid|relu]
func runPosNeg(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("posneg", flag.ContinueOnError)
	fs.SetOutput(stdout)
	overrides := overrideFlags(fs)
	fs.Usage = func() {
		fmt.Fprintln(stdout, "Usage: nnlib posneg [flags] [sigmoid|relu]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("expected at most one argument, got %d", fs.NArg())
	}
	o := overrides()
	if fs.NArg() == 1 {
		activation := fs.Arg(0)
		o.Activation = &activation
	}

	cfg := config.Default()
	cfg.ApplyOverrides(o)

	s, err := newSession(cfg, slog.New(slog.NewTextHandler(stdout, nil)))
	if err != nil {
		return err
	}
	if err := s.run(); err != nil {
		return err
	}
	return classifySigns(s.net, stdin, stdout)
}

// classifySigns reads one number per line and prints the network's verdict.
// Lines that are not numbers are reported and skipped.
func classifySigns(net *nn.Network, stdin io.Reader, stdout io.Writer) error {
	sc := bufio.NewScanner(stdin)
	fmt.Fprint(stdout, "Ctrl+D to quit, or enter a number to try out the network: ")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		x, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintf(stdout, "not a number: %q\n", line)
		} else {
			input := linalg.VectorOf(x)
			output, err := net.FeedForward(input)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Input: %v\nOutput: %v\n", input, output)
			if output.At(0) > output.At(1) {
				fmt.Fprintln(stdout, "Prediction: positive!")
			} else {
				fmt.Fprintln(stdout, "Prediction: negative!")
			}
		}
		fmt.Fprint(stdout, "Ctrl+D to quit, or enter a number to try out the network: ")
	}
	fmt.Fprintln(stdout)
	return sc.Err()
}
