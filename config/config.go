// SPDX-License-Identifier: MIT

// Package config loads the YAML description of the phases to model.
//
//	log:
//	  level: debug
//	  no_color: false
//	phases:
//	  - name: illite/smectite
//	    reichweite: 1
//	    components: 2
//	    parameters:
//	      W1: 0.25
//	      P11_or_P22: 0.5
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/reichweite/phase"
)

var (
	// ErrNoPhases is returned by Validate when the config lists no phase.
	ErrNoPhases = errors.New("config: no phases defined")

	// ErrInvalidPhase is returned by Validate for a malformed phase entry.
	ErrInvalidPhase = errors.New("config: invalid phase")

	// ErrInvalidLevel is returned for an unknown log level name.
	ErrInvalidLevel = errors.New("config: invalid log level")
)

// Config is the root of the YAML document.
type Config struct {
	Log    LogConfig     `yaml:"log"`
	Phases []PhaseConfig `yaml:"phases"`
}

// LogConfig selects the CLI log level and colouring.
type LogConfig struct {
	Level   string `yaml:"level"`
	NoColor bool   `yaml:"no_color"`
}

// PhaseConfig describes one phase and the initial values of its independent
// parameters, keyed by label-map name.
type PhaseConfig struct {
	Name       string             `yaml:"name"`
	Reichweite int                `yaml:"reichweite"`
	Components int                `yaml:"components"`
	Parameters map[string]float64 `yaml:"parameters,omitempty"`
}

// Default returns a config with one uncorrelated two-component phase.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Phases: []PhaseConfig{
			{Name: "illite/smectite", Reichweite: 0, Components: 2},
		},
	}
}

// Load reads and validates the config at path. Missing keys keep their
// Default values; a phases list in the file replaces the default one.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	cfg.Phases = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Phases) == 0 {
		cfg.Phases = Default().Phases
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault returns Default when path is empty or does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return Load(path)
}

// Save writes c as YAML, creating the parent directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the static shape of c. Whether an (R, G) pair is
// supported is decided by the probability package when phases are built.
func (c *Config) Validate() error {
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if len(c.Phases) == 0 {
		return ErrNoPhases
	}
	seen := make(map[string]bool, len(c.Phases))
	for i, pc := range c.Phases {
		switch {
		case strings.TrimSpace(pc.Name) == "":
			return fmt.Errorf("%w: phases[%d]: empty name", ErrInvalidPhase, i)
		case seen[pc.Name]:
			return fmt.Errorf("%w: phases[%d]: duplicate name %q", ErrInvalidPhase, i, pc.Name)
		case pc.Reichweite < 0:
			return fmt.Errorf("%w: phases[%d]: negative reichweite %d", ErrInvalidPhase, i, pc.Reichweite)
		case pc.Components < 1:
			return fmt.Errorf("%w: phases[%d]: components must be >= 1, got %d", ErrInvalidPhase, i, pc.Components)
		}
		seen[pc.Name] = true
	}

	return nil
}

// SlogLevel maps the configured level name onto slog; empty means info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, l.Level)
}

// BuildPhases constructs every configured phase in order. The first failure
// aborts and names the offending phase.
func (c *Config) BuildPhases(opts ...phase.Option) ([]*phase.Phase, error) {
	out := make([]*phase.Phase, 0, len(c.Phases))
	for _, pc := range c.Phases {
		po := append([]phase.Option{phase.WithValues(pc.Parameters)}, opts...)
		ph, err := phase.New(pc.Name, pc.Reichweite, pc.Components, po...)
		if err != nil {
			return nil, err
		}
		out = append(out, ph)
	}

	return out, nil
}
