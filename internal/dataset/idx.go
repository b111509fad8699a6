// Package dataset turns external data into nn.AnnotatedData: IDX (MNIST)
// files, synthetic demo sets, and a console renderer for image matrices.
package dataset

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/nnlib/internal/linalg"
)

// IDX magic numbers: two zero bytes, type 0x08 (unsigned byte), dimension count.
const (
	magicImages = 0x00000803 // 2051
	magicLabels = 0x00000801 // 2049

	// maxImagePixels bounds rows*cols of a single image.
	maxImagePixels = 1 << 24
)

// Decoding errors.
var (
	ErrInvalidMagic   = errors.New("invalid IDX magic number")
	ErrTruncated      = errors.New("IDX payload shorter than header declares")
	ErrTrailingData   = errors.New("IDX payload longer than header declares")
	ErrCountMismatch  = errors.New("image and label counts differ")
	ErrLabelTooLarge  = errors.New("label exceeds class count")
	ErrEmptyDimension = errors.New("IDX header declares an empty dimension")
	ErrImageTooLarge  = errors.New("IDX header declares an oversized image")
)

// ReadIDXImages reads an IDX image file.
//
// IDX file format for images:
//
//	magic number: 0x00000803 (2051)
//	number of images: 4 bytes, big-endian
//	number of rows: 4 bytes
//	number of cols: 4 bytes
//	pixel data: unsigned bytes (0-255), row-major
//
// Pixels are normalised to [0, 1] by dividing by 255.
func ReadIDXImages(r io.Reader) ([]*linalg.Matrix, error) {
	br := bufio.NewReader(r)

	var magic uint32
	if err := binary.Read(br, binary.BigEndian, &magic); err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", err)
	}
	if magic != magicImages {
		return nil, fmt.Errorf("%w: got %#08x, want %#08x", ErrInvalidMagic, magic, magicImages)
	}

	var numImages, numRows, numCols uint32
	for _, dst := range []*uint32{&numImages, &numRows, &numCols} {
		if err := binary.Read(br, binary.BigEndian, dst); err != nil {
			return nil, fmt.Errorf("failed to read dimensions: %w", err)
		}
	}
	if numRows == 0 || numCols == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyDimension, numRows, numCols)
	}

	if pixels := uint64(numRows) * uint64(numCols); pixels > maxImagePixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, numRows, numCols)
	}

	rows, cols := int(numRows), int(numCols)
	images := make([]*linalg.Matrix, 0, min(int(numImages), 1<<16))
	pixels := make([]byte, rows*cols)

	for i := 0; i < int(numImages); i++ {
		if _, err := io.ReadFull(br, pixels); err != nil {
			return nil, fmt.Errorf("%w: image %d of %d: %v", ErrTruncated, i, numImages, err)
		}
		img := linalg.NewMatrix(rows, cols)
		data := img.Data()
		for j, p := range pixels {
			data[j] = float64(p) / 255
		}
		images = append(images, img)
	}

	if err := expectEOF(br); err != nil {
		return nil, err
	}
	return images, nil
}

// ReadIDXLabels reads an IDX label file.
//
// IDX file format for labels:
//
//	magic number: 0x00000801 (2049)
//	number of labels: 4 bytes, big-endian
//	label data: unsigned bytes
func ReadIDXLabels(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)

	var magic uint32
	if err := binary.Read(br, binary.BigEndian, &magic); err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", err)
	}
	if magic != magicLabels {
		return nil, fmt.Errorf("%w: got %#08x, want %#08x", ErrInvalidMagic, magic, magicLabels)
	}

	var numLabels uint32
	if err := binary.Read(br, binary.BigEndian, &numLabels); err != nil {
		return nil, fmt.Errorf("failed to read label count: %w", err)
	}

	labels, err := io.ReadAll(io.LimitReader(br, int64(numLabels)))
	if err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}
	if len(labels) != int(numLabels) {
		return nil, fmt.Errorf("%w: %d of %d labels", ErrTruncated, len(labels), numLabels)
	}

	if err := expectEOF(br); err != nil {
		return nil, err
	}
	return labels, nil
}

func expectEOF(r io.ByteReader) error {
	if _, err := r.ReadByte(); err == nil {
		return ErrTrailingData
	} else if !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// LoadIDXImages reads an IDX image file from disk.
func LoadIDXImages(path string) ([]*linalg.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	images, err := ReadIDXImages(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return images, nil
}

// LoadIDXLabels reads an IDX label file from disk.
func LoadIDXLabels(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	labels, err := ReadIDXLabels(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return labels, nil
}
