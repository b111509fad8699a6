// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset loads labelled data for nnlib networks.
//
// IDX files (the MNIST distribution format) decode into images scaled to
// [0, 1]; FromImages turns them into one-hot labelled examples. SignData
// generates the synthetic positive/negative task.
package dataset

import (
	"io"
	"math/rand/v2"

	"github.com/born-ml/nnlib/internal/dataset"
	"github.com/born-ml/nnlib/linalg"
	"github.com/born-ml/nnlib/nn"
)

// Set is a decoded labelled image corpus.
type Set = dataset.Set

// Errors.
var (
	ErrInvalidMagic   = dataset.ErrInvalidMagic
	ErrTruncated      = dataset.ErrTruncated
	ErrTrailingData   = dataset.ErrTrailingData
	ErrCountMismatch  = dataset.ErrCountMismatch
	ErrLabelTooLarge  = dataset.ErrLabelTooLarge
	ErrEmptyDimension = dataset.ErrEmptyDimension
	ErrImageTooLarge  = dataset.ErrImageTooLarge
	ErrOddHeight      = dataset.ErrOddHeight
)

// ReadIDXImages decodes an IDX3 image stream.
func ReadIDXImages(r io.Reader) ([]*linalg.Matrix, error) {
	return dataset.ReadIDXImages(r)
}

// ReadIDXLabels decodes an IDX1 label stream.
func ReadIDXLabels(r io.Reader) ([]byte, error) {
	return dataset.ReadIDXLabels(r)
}

// LoadMNIST reads an image file and its label file.
//
// Example:
//
//	train, err := dataset.LoadMNIST("data/train-images-idx3-ubyte", "data/train-labels-idx1-ubyte")
func LoadMNIST(imagesPath, labelsPath string) (*Set, error) {
	return dataset.LoadMNIST(imagesPath, labelsPath)
}

// FromImages pairs every image with the one-hot encoding of its label.
func FromImages(images []*linalg.Matrix, labels []byte, nClasses int) (nn.AnnotatedData, error) {
	return dataset.FromImages(images, labels, nClasses)
}

// Flatten returns the pixels of img in row-major order.
func Flatten(img *linalg.Matrix) *linalg.Vector {
	return dataset.Flatten(img)
}

// SignData generates n examples labelled by the sign of their single input.
func SignData(n int, src rand.Source) nn.AnnotatedData {
	return dataset.SignData(n, src)
}

// DrawImage renders img to w with half-block characters.
func DrawImage(w io.Writer, img *linalg.Matrix) error {
	return dataset.DrawImage(w, img)
}
