package nn

import "errors"

// Common errors.
var (
	ErrInvalidTopology   = errors.New("network needs at least two layers of positive size")
	ErrMalformedOneHot   = errors.New("target is not a one-hot vector")
	ErrIndexOutOfRange   = errors.New("class index out of range")
	ErrEmptyBatch        = errors.New("mini-batch is empty")
	ErrUnknownActivation = errors.New("unknown activation")
	ErrEmptyVector       = errors.New("vector is empty")
)
