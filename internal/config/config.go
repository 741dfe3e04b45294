// Package config provides configuration loading for drift sweeps.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DriftConfig contains all simulation configuration settings.
type DriftConfig struct {
	// Sweep contains the experiment sweep parameters.
	Sweep SweepConfig `json:"sweep" yaml:"sweep"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SweepConfig defines the parameter grid for an experiment sweep. Every
// chain length is crossed with every sensitivity; each combination is one
// run with its own freshly built chain graph.
type SweepConfig struct {
	// ChainLengths are the node counts of the chain graphs to build.
	// Every length must be at least 2.
	ChainLengths []int `json:"chain_lengths" yaml:"chain_lengths"`

	// Sensitivities are the global drift scaling factors to sweep.
	// Every value must be positive.
	Sensitivities []float64 `json:"sensitivities" yaml:"sensitivities"`

	// BiasMin and BiasMax bound the uniform range node bias multipliers
	// are drawn from. Both must be positive with BiasMin <= BiasMax.
	BiasMin float64 `json:"bias_min" yaml:"bias_min"`
	BiasMax float64 `json:"bias_max" yaml:"bias_max"`

	// Seed initializes the random source for node ideology and bias
	// generation. The same seed reproduces the sweep byte for byte.
	Seed int64 `json:"seed" yaml:"seed"`
}

// LoggingConfig configures operational logging.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "trace" additionally logs every hop of every run.
	Level string `json:"level" yaml:"level"`
}

// Default returns a DriftConfig with the standard sweep grid.
func Default() *DriftConfig {
	return &DriftConfig{
		Sweep: SweepConfig{
			ChainLengths:  []int{3, 5, 7, 10},
			Sensitivities: []float64{0.5, 1.0, 1.5, 2.0},
			BiasMin:       0.5,
			BiasMax:       3.0,
			Seed:          1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadFromFile loads configuration from a YAML file, applying defaults for
// absent fields and environment variable overrides on top.
func LoadFromFile(path string) (*DriftConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(config)
	return config, nil
}

// Load returns the default configuration with environment variable
// overrides applied.
func Load() *DriftConfig {
	config := Default()
	applyEnvOverrides(config)
	return config
}

// Validate checks that the configuration is usable for a sweep.
func (c *DriftConfig) Validate() error {
	if len(c.Sweep.ChainLengths) == 0 {
		return fmt.Errorf("chain_lengths must not be empty")
	}
	for _, n := range c.Sweep.ChainLengths {
		if n < 2 {
			return fmt.Errorf("chain lengths must be at least 2, got %d", n)
		}
	}

	if len(c.Sweep.Sensitivities) == 0 {
		return fmt.Errorf("sensitivities must not be empty")
	}
	for _, s := range c.Sweep.Sensitivities {
		if s <= 0 {
			return fmt.Errorf("sensitivities must be positive, got %v", s)
		}
	}

	if c.Sweep.BiasMin <= 0 {
		return fmt.Errorf("bias_min must be positive, got %v", c.Sweep.BiasMin)
	}
	if c.Sweep.BiasMax < c.Sweep.BiasMin {
		return fmt.Errorf("bias_max (%v) must not be below bias_min (%v)", c.Sweep.BiasMax, c.Sweep.BiasMin)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies DRIFT_* environment variable overrides.
func applyEnvOverrides(config *DriftConfig) {
	if v := os.Getenv("DRIFT_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	if v := os.Getenv("DRIFT_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Sweep.Seed = seed
		}
	}
}
