// Package main provides the nnlib CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage(os.Stdout)
		return
	}

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "version":
		fmt.Printf("nnlib %s\n", version)
		return
	case "help", "-h", "--help":
		usage(os.Stdout)
		return
	case "train":
		err = runTrain(args, os.Stdout)
	case "posneg":
		err = runPosNeg(args, os.Stdin, os.Stdout)
	case "mnist":
		err = runMNIST(args, os.Stdout)
	case "inspect":
		err = runInspect(args, os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage(os.Stderr)
		os.Exit(2)
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "nnlib %s: %v\n", cmd, err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "nnlib %s - feedforward networks trained with mini-batch SGD\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  train      Train from a YAML config (-config run.yaml)")
	fmt.Fprintln(w, "  posneg     Learn the sign of a number, then classify numbers read from stdin")
	fmt.Fprintln(w, "  mnist      Train a [784 16 16 10] digit classifier on IDX files")
	fmt.Fprintln(w, "  inspect    Print the parameters of a tiny [1 1 1 1] network")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'nnlib <command> -h' for command flags.")
}
