// Package config holds the runtime knobs of a training run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/nnlib/internal/nn"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config captures the runtime knobs for a training run.
//
// Training data comes either from IDX files (TrainImages/TrainLabels) or,
// when those are empty, from the synthetic sign task (SyntheticTrain
// examples).
type Config struct {
	LayerSizes    []int   `yaml:"layer_sizes"`
	Activation    string  `yaml:"activation"`
	Epochs        int     `yaml:"epochs"`
	MiniBatchSize int     `yaml:"mini_batch_size"`
	Eta           float64 `yaml:"eta"`
	Seed          uint64  `yaml:"seed"`
	Workers       int     `yaml:"workers"`

	TrainImages string `yaml:"train_images"`
	TrainLabels string `yaml:"train_labels"`
	TestImages  string `yaml:"test_images"`
	TestLabels  string `yaml:"test_labels"`

	SyntheticTrain int `yaml:"synthetic_train"`
	SyntheticTest  int `yaml:"synthetic_test"`
}

// Overrides captures CLI supplied values. Nil fields were not given and
// leave the config untouched.
type Overrides struct {
	Activation    *string
	Epochs        *int
	MiniBatchSize *int
	Eta           *float64
	Seed          *uint64
	Workers       *int
}

// Default returns the sign-task demo configuration.
func Default() *Config {
	return &Config{
		LayerSizes:     []int{1, 2},
		Activation:     "sigmoid",
		Epochs:         10,
		MiniBatchSize:  10,
		Eta:            1,
		Workers:        1,
		SyntheticTrain: 80,
		SyntheticTest:  20,
	}
}

// Load reads and validates a Config from a YAML file. Keys missing from the
// file keep their Default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML from r. Unknown keys are rejected and a
// workers value <= 0 means one worker.
func Parse(r io.Reader) (*Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides copies every set override into c, zero values included.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Activation != nil {
		c.Activation = *o.Activation
	}
	if o.Epochs != nil {
		c.Epochs = *o.Epochs
	}
	if o.MiniBatchSize != nil {
		c.MiniBatchSize = *o.MiniBatchSize
	}
	if o.Eta != nil {
		c.Eta = *o.Eta
	}
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	if o.Workers != nil {
		c.Workers = *o.Workers
	}
}

// UsesIDX reports whether training data is read from IDX files.
func (c *Config) UsesIDX() bool {
	return c.TrainImages != "" || c.TrainLabels != ""
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if len(c.LayerSizes) < 2 {
		return fmt.Errorf("%w: layer_sizes needs at least 2 entries (got %d)", ErrInvalidConfig, len(c.LayerSizes))
	}
	for i, s := range c.LayerSizes {
		if s <= 0 {
			return fmt.Errorf("%w: layer_sizes[%d] must be > 0 (got %d)", ErrInvalidConfig, i, s)
		}
	}
	if _, err := nn.ParseActivation(c.Activation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Epochs < 0 {
		return fmt.Errorf("%w: epochs must be >= 0 (got %d)", ErrInvalidConfig, c.Epochs)
	}
	if c.MiniBatchSize <= 0 {
		return fmt.Errorf("%w: mini_batch_size must be > 0 (got %d)", ErrInvalidConfig, c.MiniBatchSize)
	}
	if c.Eta <= 0 {
		return fmt.Errorf("%w: eta must be > 0 (got %v)", ErrInvalidConfig, c.Eta)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be > 0 (got %d)", ErrInvalidConfig, c.Workers)
	}

	if c.UsesIDX() {
		if c.TrainImages == "" || c.TrainLabels == "" {
			return fmt.Errorf("%w: train_images and train_labels must be set together", ErrInvalidConfig)
		}
		if (c.TestImages == "") != (c.TestLabels == "") {
			return fmt.Errorf("%w: test_images and test_labels must be set together", ErrInvalidConfig)
		}
		return nil
	}

	if c.SyntheticTrain <= 0 {
		return fmt.Errorf("%w: synthetic_train must be > 0 without IDX files (got %d)", ErrInvalidConfig, c.SyntheticTrain)
	}
	if c.SyntheticTrain%c.MiniBatchSize != 0 {
		return fmt.Errorf("%w: synthetic_train %d is not divisible by mini_batch_size %d",
			ErrInvalidConfig, c.SyntheticTrain, c.MiniBatchSize)
	}
	if c.SyntheticTest < 0 {
		return fmt.Errorf("%w: synthetic_test must be >= 0 (got %d)", ErrInvalidConfig, c.SyntheticTest)
	}
	if c.LayerSizes[0] != 1 || c.LayerSizes[len(c.LayerSizes)-1] != 2 {
		return fmt.Errorf("%w: the synthetic sign task needs 1 input and 2 outputs (got %v)", ErrInvalidConfig, c.LayerSizes)
	}
	return nil
}
