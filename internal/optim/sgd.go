package optim

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/born-ml/nnlib/internal/nn"
)

// Training errors.
var (
	ErrInvalidBatchSize  = errors.New("mini-batch size must be positive")
	ErrNonDivisibleBatch = errors.New("training set size is not divisible by mini-batch size")
	ErrInvalidEpochs     = errors.New("epoch count must not be negative")
)

// SGD trains a network with mini-batch stochastic gradient descent.
//
// Each epoch shuffles a private copy of the training data with a freshly
// seeded permutation, cuts it into contiguous mini-batches of exactly
// MiniBatchSize examples and applies nn.Network.UpdateMiniBatch to each in
// turn. Training stops after Epochs epochs; there is no early stopping.
//
// Example:
//
//	sgd, _ := optim.NewSGD(optim.SGDConfig{Epochs: 10, MiniBatchSize: 10, LR: 1})
//	err := sgd.Train(net, train, optim.None[nn.AnnotatedData]())
type SGD struct {
	epochs        int
	miniBatchSize int
	lr            float64
	seed          uint64
	reporter      Reporter
}

// SGDConfig holds configuration for SGD.
type SGDConfig struct {
	Epochs        int      // Number of passes over the training data
	MiniBatchSize int      // Examples per gradient step (must divide the training set)
	LR            float64  // Learning rate, eta
	Seed          uint64   // Base shuffle seed (0 = derived from the clock)
	Reporter      Reporter // Progress sink (default: NopReporter)
}

// NewSGD creates a new SGD trainer.
func NewSGD(config SGDConfig) (*SGD, error) {
	if config.MiniBatchSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, config.MiniBatchSize)
	}
	if config.Epochs < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidEpochs, config.Epochs)
	}
	if config.Reporter == nil {
		config.Reporter = NopReporter{}
	}
	if config.Seed == 0 {
		config.Seed = uint64(time.Now().UnixNano())
	}

	return &SGD{
		epochs:        config.Epochs,
		miniBatchSize: config.MiniBatchSize,
		lr:            config.LR,
		seed:          config.Seed,
		reporter:      config.Reporter,
	}, nil
}

// GetLR returns the learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling between Train calls.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// Train runs the configured number of epochs on net.
//
// Preconditions are checked before any parameter changes: the training set
// size must be a multiple of the mini-batch size (ErrNonDivisibleBatch) and
// every training example must fit the network. When test data is present it
// is evaluated before the first epoch and after every epoch; otherwise each
// epoch reports completion. The caller's training slice is never reordered.
func (s *SGD) Train(net *nn.Network, training nn.AnnotatedData, test Optional[nn.AnnotatedData]) error {
	if len(training)%s.miniBatchSize != 0 {
		return fmt.Errorf("%w: %d examples, mini-batch size %d",
			ErrNonDivisibleBatch, len(training), s.miniBatchSize)
	}
	for i, ex := range training {
		if err := net.ValidateExample(ex); err != nil {
			return fmt.Errorf("training example %d: %w", i, err)
		}
	}

	testData, hasTest := test.Get()
	if hasTest {
		correct, err := net.Evaluate(testData)
		if err != nil {
			return err
		}
		s.reporter.InitialEvaluation(correct, len(testData))
	}

	data := training.Clone()
	for epoch := 0; epoch < s.epochs; epoch++ {
		s.shuffle(data, epoch)

		for start := 0; start < len(data); start += s.miniBatchSize {
			if err := net.UpdateMiniBatch(data[start:start+s.miniBatchSize], s.lr); err != nil {
				return fmt.Errorf("epoch %d: %w", epoch, err)
			}
		}

		if hasTest {
			correct, err := net.Evaluate(testData)
			if err != nil {
				return err
			}
			s.reporter.EpochEvaluated(epoch, correct, len(testData))
		} else {
			s.reporter.EpochComplete(epoch)
		}
	}
	return nil
}

// shuffle permutes data in place with a generator seeded by (seed, epoch),
// so every epoch gets a different yet reproducible order.
func (s *SGD) shuffle(data nn.AnnotatedData, epoch int) {
	//nolint:gosec // G404: data shuffling, not security-critical
	rng := rand.New(rand.NewPCG(s.seed, uint64(epoch)))
	rng.Shuffle(len(data), func(i, j int) {
		data[i], data[j] = data[j], data[i]
	})
}

// Sgd is a one-call form of NewSGD + Train.
func Sgd(net *nn.Network, training nn.AnnotatedData, epochs, miniBatchSize int, eta float64,
	test Optional[nn.AnnotatedData], opts ...TrainOption,
) error {
	cfg := SGDConfig{Epochs: epochs, MiniBatchSize: miniBatchSize, LR: eta}
	for _, opt := range opts {
		opt(&cfg)
	}
	sgd, err := NewSGD(cfg)
	if err != nil {
		return err
	}
	return sgd.Train(net, training, test)
}

// TrainOption adjusts the SGDConfig built by Sgd.
type TrainOption func(*SGDConfig)

// WithSeed sets the base shuffle seed.
func WithSeed(seed uint64) TrainOption {
	return func(c *SGDConfig) {
		c.Seed = seed
	}
}

// WithReporter sets the progress sink.
func WithReporter(r Reporter) TrainOption {
	return func(c *SGDConfig) {
		c.Reporter = r
	}
}
