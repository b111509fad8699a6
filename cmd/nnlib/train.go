package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/born-ml/nnlib/internal/config"
	"github.com/born-ml/nnlib/internal/dataset"
	"github.com/born-ml/nnlib/internal/nn"
	"github.com/born-ml/nnlib/internal/optim"
)

// session is a network plus the data it is trained and evaluated on.
type session struct {
	cfg    *config.Config
	net    *nn.Network
	train  nn.AnnotatedData
	test   nn.AnnotatedData
	tests  *dataset.Set // decoded test images, IDX runs only
	logger *slog.Logger
}

// source returns a PCG stream for seed, or a clock-seeded one when seed is 0.
func source(seed, stream uint64) rand.Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	//nolint:gosec // G404: data generation, not security-critical
	return rand.NewPCG(seed, stream)
}

func newSession(cfg *config.Config, logger *slog.Logger) (*session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, logger: logger}

	if cfg.UsesIDX() {
		trainSet, err := dataset.LoadMNIST(cfg.TrainImages, cfg.TrainLabels)
		if err != nil {
			return nil, fmt.Errorf("training set: %w", err)
		}
		s.train = trainSet.Data
		if cfg.TestImages != "" {
			s.tests, err = dataset.LoadMNIST(cfg.TestImages, cfg.TestLabels)
			if err != nil {
				return nil, fmt.Errorf("test set: %w", err)
			}
			s.test = s.tests.Data
		}
	} else {
		src := source(cfg.Seed, 1)
		s.train = dataset.SignData(cfg.SyntheticTrain, src)
		if cfg.SyntheticTest > 0 {
			s.test = dataset.SignData(cfg.SyntheticTest, src)
		}
	}

	act, err := nn.ParseActivation(cfg.Activation)
	if err != nil {
		return nil, err
	}
	s.net, err = nn.New(cfg.LayerSizes,
		nn.WithActivation(act),
		nn.WithRand(source(cfg.Seed, 0)),
		nn.WithWorkers(cfg.Workers),
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) run() error {
	sgd, err := optim.NewSGD(optim.SGDConfig{
		Epochs:        s.cfg.Epochs,
		MiniBatchSize: s.cfg.MiniBatchSize,
		LR:            s.cfg.Eta,
		Seed:          s.cfg.Seed,
		Reporter:      optim.NewSlogReporter(s.logger),
	})
	if err != nil {
		return err
	}

	test := optim.None[nn.AnnotatedData]()
	if len(s.test) > 0 {
		test = optim.Some(s.test)
	}

	s.logger.Info("training",
		slog.Any("layers", s.cfg.LayerSizes),
		slog.Any("activation", s.net.Activation()),
		slog.Int("examples", len(s.train)),
		slog.Int("epochs", s.cfg.Epochs),
		slog.Int("mini_batch_size", s.cfg.MiniBatchSize),
		slog.Float64("eta", s.cfg.Eta),
		slog.Int("workers", s.cfg.Workers))

	start := time.Now()
	if err := sgd.Train(s.net, s.train, test); err != nil {
		return err
	}
	s.logger.Info("training finished", slog.Duration("elapsed", time.Since(start)))

	return nil
}

// overrideFlags registers the flags shared by the training commands. The
// returned func, called after fs.Parse, reports only the flags given on the
// command line.
func overrideFlags(fs *flag.FlagSet) func() config.Overrides {
	var (
		activation string
		epochs     int
		batch      int
		eta        float64
		seed       uint64
		workers    int
	)
	fs.StringVar(&activation, "activation", "", "Activation function: sigmoid or relu")
	fs.IntVar(&epochs, "epochs", 0, "Number of training epochs")
	fs.IntVar(&batch, "batch", 0, "Mini-batch size")
	fs.Float64Var(&eta, "eta", 0, "Learning rate")
	fs.Uint64Var(&seed, "seed", 0, "Random seed (0 = clock)")
	fs.IntVar(&workers, "workers", 0, "Worker goroutines for gradients and products")

	return func() config.Overrides {
		var o config.Overrides
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "activation":
				o.Activation = &activation
			case "epochs":
				o.Epochs = &epochs
			case "batch":
				o.MiniBatchSize = &batch
			case "eta":
				o.Eta = &eta
			case "seed":
				o.Seed = &seed
			case "workers":
				o.Workers = &workers
			}
		})
		return o
	}
}

func runTrain(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML run configuration (default: the sign task)")
	overrides := overrideFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	cfg.ApplyOverrides(overrides())

	s, err := newSession(cfg, slog.New(slog.NewTextHandler(stdout, nil)))
	if err != nil {
		return err
	}
	return s.run()
}
