package dataset

import (
	"fmt"

	"github.com/born-ml/nnlib/internal/linalg"
	"github.com/born-ml/nnlib/internal/nn"
)

// Set is a decoded labeled image corpus.
type Set struct {
	Images []*linalg.Matrix
	Labels []byte
	Data   nn.AnnotatedData
}

// Flatten returns the pixels of img in row-major order as a vector.
func Flatten(img *linalg.Matrix) *linalg.Vector {
	return linalg.VectorOf(img.Data()...)
}

// FromImages pairs every image with the one-hot encoding of its label.
func FromImages(images []*linalg.Matrix, labels []byte, nClasses int) (nn.AnnotatedData, error) {
	if len(images) != len(labels) {
		return nil, fmt.Errorf("%w: %d images, %d labels", ErrCountMismatch, len(images), len(labels))
	}

	data := make(nn.AnnotatedData, len(images))
	for i, img := range images {
		if int(labels[i]) >= nClasses {
			return nil, fmt.Errorf("%w: label %d at %d, %d classes", ErrLabelTooLarge, labels[i], i, nClasses)
		}
		target, err := nn.IndexToOneHot(int(labels[i]), nClasses)
		if err != nil {
			return nil, err
		}
		data[i] = nn.Example{Input: Flatten(img), Target: target}
	}
	return data, nil
}

// LoadMNIST reads an image file and its label file and builds a Set with
// ten classes.
func LoadMNIST(imagesPath, labelsPath string) (*Set, error) {
	images, err := LoadIDXImages(imagesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}
	labels, err := LoadIDXLabels(labelsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}

	data, err := FromImages(images, labels, 10)
	if err != nil {
		return nil, err
	}
	return &Set{Images: images, Labels: labels, Data: data}, nil
}
