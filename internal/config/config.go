// Package config loads the processing configuration.
//
// Every setting has a working default, so the tool runs without any config
// file. A YAML file, when given, is overlaid onto the defaults: only the
// keys it sets change.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/ironbark/ordersheet/internal/extract"
	"github.com/ironbark/ordersheet/internal/prep"
	"github.com/ironbark/ordersheet/internal/render"
)

// Config is the full processing configuration.
type Config struct {
	// Output is the path of the dispatch-schedule workbook.
	Output string `yaml:"output"`

	// DPI used when rendering PDF pages.
	DPI int `yaml:"dpi"`

	// Language passed to Tesseract, e.g. "eng".
	Language string `yaml:"language"`

	// Workers bounds how many pages are rendered and recognized
	// concurrently.
	Workers int `yaml:"workers"`

	Prep   prep.Options   `yaml:"prep"`
	Engine extract.Config `yaml:"engine"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Output:   "Dispatch Schedule.xlsx",
		DPI:      render.DefaultDPI,
		Language: "eng",
		Workers:  runtime.NumCPU(),
		Prep:     prep.DefaultOptions(),
		Engine:   extract.DefaultConfig(),
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.DPI <= 0 {
		return cfg, fmt.Errorf("dpi must be positive, got %d", cfg.DPI)
	}
	if cfg.Workers <= 0 {
		return cfg, fmt.Errorf("workers must be positive, got %d", cfg.Workers)
	}
	return cfg, nil
}
