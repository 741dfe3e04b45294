package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	config := Default()

	wantLengths := []int{3, 5, 7, 10}
	if len(config.Sweep.ChainLengths) != len(wantLengths) {
		t.Fatalf("chain lengths = %v, want %v", config.Sweep.ChainLengths, wantLengths)
	}
	for i, n := range wantLengths {
		if config.Sweep.ChainLengths[i] != n {
			t.Errorf("chain lengths = %v, want %v", config.Sweep.ChainLengths, wantLengths)
			break
		}
	}

	wantSens := []float64{0.5, 1.0, 1.5, 2.0}
	for i, s := range wantSens {
		if config.Sweep.Sensitivities[i] != s {
			t.Errorf("sensitivities = %v, want %v", config.Sweep.Sensitivities, wantSens)
			break
		}
	}

	if config.Sweep.BiasMin != 0.5 || config.Sweep.BiasMax != 3.0 {
		t.Errorf("bias range = [%v, %v], want [0.5, 3.0]", config.Sweep.BiasMin, config.Sweep.BiasMax)
	}
	if config.Logging.Level != "info" {
		t.Errorf("expected Logging.Level 'info', got '%s'", config.Logging.Level)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
sweep:
  chain_lengths: [4, 6]
  sensitivities: [0.25, 2.5]
  bias_min: 1.0
  bias_max: 2.0
  seed: 99

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if len(config.Sweep.ChainLengths) != 2 || config.Sweep.ChainLengths[0] != 4 || config.Sweep.ChainLengths[1] != 6 {
		t.Errorf("chain lengths = %v, want [4 6]", config.Sweep.ChainLengths)
	}
	if config.Sweep.Seed != 99 {
		t.Errorf("seed = %d, want 99", config.Sweep.Seed)
	}
	if config.Sweep.BiasMin != 1.0 || config.Sweep.BiasMax != 2.0 {
		t.Errorf("bias range = [%v, %v], want [1.0, 2.0]", config.Sweep.BiasMin, config.Sweep.BiasMax)
	}
	if config.Logging.Level != "debug" {
		t.Errorf("level = %s, want debug", config.Logging.Level)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromFileMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("sweep: [not a map"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadFromFile(configPath); err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DriftConfig)
	}{
		{"empty chain lengths", func(c *DriftConfig) { c.Sweep.ChainLengths = nil }},
		{"chain length below 2", func(c *DriftConfig) { c.Sweep.ChainLengths = []int{1} }},
		{"empty sensitivities", func(c *DriftConfig) { c.Sweep.Sensitivities = nil }},
		{"zero sensitivity", func(c *DriftConfig) { c.Sweep.Sensitivities = []float64{0} }},
		{"negative sensitivity", func(c *DriftConfig) { c.Sweep.Sensitivities = []float64{-1} }},
		{"zero bias min", func(c *DriftConfig) { c.Sweep.BiasMin = 0 }},
		{"inverted bias range", func(c *DriftConfig) { c.Sweep.BiasMin = 2; c.Sweep.BiasMax = 1 }},
		{"bad log level", func(c *DriftConfig) { c.Logging.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.mutate(config)
			if err := config.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DRIFT_LOG_LEVEL", "trace")
	t.Setenv("DRIFT_SEED", "123")

	config := Load()
	if config.Logging.Level != "trace" {
		t.Errorf("level = %s, want trace", config.Logging.Level)
	}
	if config.Sweep.Seed != 123 {
		t.Errorf("seed = %d, want 123", config.Sweep.Seed)
	}
}
