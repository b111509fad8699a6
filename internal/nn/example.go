package nn

import "github.com/born-ml/nnlib/internal/linalg"

// Example is one labeled training sample: an input vector and its one-hot
// ground truth.
type Example struct {
	Input  *linalg.Vector
	Target *linalg.Vector
}

// AnnotatedData is an ordered collection of examples.
type AnnotatedData []Example

// Clone returns a copy of the slice. The vectors themselves are shared;
// reordering the copy leaves d untouched.
func (d AnnotatedData) Clone() AnnotatedData {
	out := make(AnnotatedData, len(d))
	copy(out, d)
	return out
}
