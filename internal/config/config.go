package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/modharm/internal/render"
	"github.com/san-kum/modharm/internal/sequence"
	"github.com/san-kum/modharm/internal/synth"
)

const (
	DefaultBase       = 2
	DefaultModulus    = 9
	DefaultWidth      = 80
	DefaultHeight     = 24
	DefaultIntervalMs = 50

	MinWidth      = 40
	MinHeight     = 16
	MinIntervalMs = 10
	MaxIntervalMs = 200
)

var (
	// ErrZeroModulus rejects a modulus of zero before any generation runs.
	ErrZeroModulus = errors.New("config: modulus must be greater than zero")

	// ErrCanvasTooSmall rejects dimensions below the 40x16 floor.
	ErrCanvasTooSmall = errors.New("config: canvas below minimum size")

	// ErrIntervalRange rejects frame intervals outside [10,200] ms.
	ErrIntervalRange = errors.New("config: frame interval out of range")

	// ErrUnknownMode rejects render mode tags outside 1..3.
	ErrUnknownMode = errors.New("config: unknown render mode")
)

// Config is the full tool configuration: generation inputs, canvas shape,
// frame pacing, and safety caps.
type Config struct {
	Base        uint64 `yaml:"base"`
	Modulus     uint64 `yaml:"modulus"`
	Mode        int    `yaml:"mode"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	IntervalMs  int    `yaml:"interval_ms"`
	MaxSequence int    `yaml:"max_sequence"`
	MaxPartials int    `yaml:"max_partials"`
}

func Default() *Config {
	return &Config{
		Base:        DefaultBase,
		Modulus:     DefaultModulus,
		Mode:        int(render.ModeOscilloscope),
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		IntervalMs:  DefaultIntervalMs,
		MaxSequence: sequence.DefaultMaxLen,
		MaxPartials: synth.DefaultMaxPartials,
	}
}

// Load reads a yaml config from path on top of defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
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

func (c *Config) Validate() error {
	if c.Modulus == 0 {
		return ErrZeroModulus
	}
	if c.Width < MinWidth || c.Height < MinHeight {
		return fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrCanvasTooSmall, c.Width, c.Height, MinWidth, MinHeight)
	}
	if c.IntervalMs < MinIntervalMs || c.IntervalMs > MaxIntervalMs {
		return fmt.Errorf("%w: %dms (allowed %d-%d)", ErrIntervalRange, c.IntervalMs, MinIntervalMs, MaxIntervalMs)
	}
	if !render.Mode(c.Mode).Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, c.Mode)
	}
	return nil
}
