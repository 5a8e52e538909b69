// Package config assembles the pipeline tunables and loads optional
// YAML overrides. The compiled defaults match the reference 300 DPI
// rasterization; a config file changes thresholds, never behavior.
package config

import (
	"fmt"
	"os"

	"casting-inspector/internal/analyze"

	"gopkg.in/yaml.v3"
)

// Config is the full caller-facing configuration surface.
type Config struct {
	Pipeline analyze.Options `yaml:"pipeline"`

	// Workers bounds page parallelism; <= 0 means one per CPU
	Workers int `yaml:"workers"`

	// TitleBlockOCR enables local title-block text extraction
	TitleBlockOCR bool `yaml:"title_block_ocr"`

	// OutputDir receives reports and overlays
	OutputDir string `yaml:"output_dir"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		Pipeline:  analyze.DefaultOptions(),
		Workers:   0,
		OutputDir: "analysis",
	}
}

// Load reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
