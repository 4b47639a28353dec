// SPDX-License-Identifier: MIT

// Package config loads solver settings from YAML or TOML and turns them into
// eigengame options. Every value is validated here, so the option
// constructors never see input that would make them panic.
//
// Example file:
//
//	k: 3
//	epochs: 2000
//	learning_rate: 0.1
//	discipline: sequential
//	penalty: coefficient
//	init: random
//	seed: 42
//	decay: {every: 500, factor: 0.1}
//	tolerance: 1e-9
//	centering: true
//	explained_variance: true
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eigengame/eigengame"
)

// Config mirrors the Solve arguments and options.
type Config struct {
	K                 int     `yaml:"k" toml:"k"`
	Epochs            int     `yaml:"epochs" toml:"epochs"`
	LearningRate      float64 `yaml:"learning_rate" toml:"learning_rate"`
	Discipline        string  `yaml:"discipline" toml:"discipline"`
	Penalty           string  `yaml:"penalty" toml:"penalty"`
	Init              string  `yaml:"init" toml:"init"`
	Seed              int64   `yaml:"seed" toml:"seed"`
	Decay             Decay   `yaml:"decay" toml:"decay"`
	Tolerance         float64 `yaml:"tolerance" toml:"tolerance"`
	DegeneracyEps     float64 `yaml:"degeneracy_eps" toml:"degeneracy_eps"`
	Centering         bool    `yaml:"centering" toml:"centering"`
	Transpose         bool    `yaml:"transpose" toml:"transpose"`
	SecondMoment      bool    `yaml:"second_moment" toml:"second_moment"`
	ExplainedVariance bool    `yaml:"explained_variance" toml:"explained_variance"`
	History           bool    `yaml:"history" toml:"history"`
}

// Decay is the step schedule; Every == 0 keeps the step constant.
type Decay struct {
	Every  int     `yaml:"every" toml:"every"`
	Factor float64 `yaml:"factor" toml:"factor"`
}

// Default returns the settings used when a key is absent.
func Default() Config {
	return Config{
		K:             1,
		Epochs:        1000,
		LearningRate:  0.1,
		Discipline:    eigengame.DefaultDiscipline.String(),
		Penalty:       eigengame.DefaultPenalty.String(),
		Init:          eigengame.DefaultInit.String(),
		Decay:         Decay{Every: eigengame.DefaultDecayEvery, Factor: eigengame.DefaultDecayFactor},
		Tolerance:     eigengame.DefaultTolerance,
		DegeneracyEps: eigengame.DefaultDegeneracyEps,
	}
}

// Load reads a YAML file (or TOML, by .toml extension) over Default().
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}

	return Parse(data)
}

// Parse decodes YAML over Default() and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParseTOML is Parse for TOML documents.
func ParseTOML(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every field. Errors wrap eigengame.ErrInvalidParameter.
func (c *Config) Validate() error {
	switch {
	case c.K < 1:
		return invalid("k=%d", c.K)
	case c.Epochs < 1:
		return invalid("epochs=%d", c.Epochs)
	case !finitePositive(c.LearningRate):
		return invalid("learning_rate=%g", c.LearningRate)
	case c.Decay.Every < 0:
		return invalid("decay.every=%d", c.Decay.Every)
	case !(c.Decay.Factor > 0 && c.Decay.Factor <= 1):
		return invalid("decay.factor=%g", c.Decay.Factor)
	case !finiteNonNegative(c.Tolerance):
		return invalid("tolerance=%g", c.Tolerance)
	case !finiteNonNegative(c.DegeneracyEps):
		return invalid("degeneracy_eps=%g", c.DegeneracyEps)
	}
	if _, err := ParseDiscipline(c.Discipline); err != nil {
		return err
	}
	if _, err := ParsePenalty(c.Penalty); err != nil {
		return err
	}
	if _, err := ParseInit(c.Init); err != nil {
		return err
	}

	return nil
}

// Options converts a validated Config into Solve options.
func (c *Config) Options() ([]eigengame.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	d, _ := ParseDiscipline(c.Discipline)
	p, _ := ParsePenalty(c.Penalty)
	i, _ := ParseInit(c.Init)

	opts := []eigengame.Option{
		eigengame.WithDiscipline(d),
		eigengame.WithPenalty(p),
		eigengame.WithInit(i),
		eigengame.WithSeed(c.Seed),
		eigengame.WithDecay(c.Decay.Every, c.Decay.Factor),
		eigengame.WithTolerance(c.Tolerance),
		eigengame.WithDegeneracyEps(c.DegeneracyEps),
	}
	if c.Centering {
		opts = append(opts, eigengame.WithCentering())
	}
	if c.SecondMoment {
		opts = append(opts, eigengame.WithSecondMoment())
	}
	if c.ExplainedVariance {
		opts = append(opts, eigengame.WithExplainedVariance())
	}
	if c.History {
		opts = append(opts, eigengame.WithHistory())
	}

	return opts, nil
}

// ParseDiscipline maps "synchronous" / "sequential" (case-insensitive).
func ParseDiscipline(s string) (eigengame.Discipline, error) {
	for _, d := range []eigengame.Discipline{eigengame.Synchronous, eigengame.Sequential} {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}

	return 0, invalid("discipline %q", s)
}

// ParsePenalty maps "coefficient" / "projection" (case-insensitive).
func ParsePenalty(s string) (eigengame.Penalty, error) {
	for _, p := range []eigengame.Penalty{eigengame.PenaltyCoefficient, eigengame.PenaltyProjection} {
		if strings.EqualFold(strings.TrimSpace(s), p.String()) {
			return p, nil
		}
	}

	return 0, invalid("penalty %q", s)
}

// ParseInit maps "random" / "ones" (case-insensitive).
func ParseInit(s string) (eigengame.Init, error) {
	for _, i := range []eigengame.Init{eigengame.InitRandom, eigengame.InitOnes} {
		if strings.EqualFold(strings.TrimSpace(s), i.String()) {
			return i, nil
		}
	}

	return 0, invalid("init %q", s)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %s: %w", fmt.Sprintf(format, args...), eigengame.ErrInvalidParameter)
}

func finitePositive(x float64) bool { return x > 0 && !math.IsInf(x, 0) }

func finiteNonNegative(x float64) bool { return x >= 0 && !math.IsInf(x, 0) }
