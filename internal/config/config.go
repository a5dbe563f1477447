package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	DefaultAlgorithm  = sorting.Bubble
	DefaultSize       = driver.DefaultSize
	DefaultIntervalMs = 100
	DefaultTheme      = "classic"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Algorithm  string `yaml:"algorithm"`
	Size       int    `yaml:"size"`
	IntervalMs int    `yaml:"interval_ms"`
	Seed       int64  `yaml:"seed"`
	Pattern    string `yaml:"pattern"`
	MinValue   int    `yaml:"min_value"`
	MaxValue   int    `yaml:"max_value"`
	Theme      string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm:  string(DefaultAlgorithm),
		Size:       DefaultSize,
		IntervalMs: DefaultIntervalMs,
		Pattern:    string(dataset.Random),
		MinValue:   dataset.DefaultMin,
		MaxValue:   dataset.DefaultMax,
		Theme:      DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field against the ranges the driver accepts.
// The interval is not checked; the driver clamps it.
func (c *Config) Validate() error {
	if _, err := sorting.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Size < driver.MinSize || c.Size > driver.MaxSize {
		return fmt.Errorf("%w: size %d outside [%d,%d]", ErrInvalid, c.Size, driver.MinSize, driver.MaxSize)
	}
	if _, err := dataset.ParsePattern(c.Pattern); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.MinValue > c.MaxValue {
		return fmt.Errorf("%w: min_value %d > max_value %d", ErrInvalid, c.MinValue, c.MaxValue)
	}
	return nil
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// DriverOptions builds driver options from a validated config. A zero seed
// draws one from the clock.
func (c *Config) DriverOptions(logger *slog.Logger) (driver.Options, error) {
	if err := c.Validate(); err != nil {
		return driver.Options{}, err
	}
	alg, _ := sorting.ParseAlgorithm(c.Algorithm)
	pattern, _ := dataset.ParsePattern(c.Pattern)

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen, err := dataset.New(seed).WithRange(c.MinValue, c.MaxValue)
	if err != nil {
		return driver.Options{}, err
	}

	return driver.Options{
		Algorithm: alg,
		Size:      c.Size,
		Interval:  c.Interval(),
		Pattern:   pattern,
		Generator: gen,
		Logger:    logger,
	}, nil
}
