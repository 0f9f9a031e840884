// Package config holds the kernel tuning parameters and their JSON loader.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Tuning collects the knobs of the geometry kernel's serving layer. The
// zero value is not useful; start from Default.
type Tuning struct {
	// CurveSamplesPerEdge is the smoothed-envelope sampling density per
	// hull edge.
	CurveSamplesPerEdge int
	// DefaultSmoothingFactor is used when an envelope request omits
	// smoothing_factor.
	DefaultSmoothingFactor float64
	// MaxDisks caps envelope input size. Hull computation is the only
	// superlinear operation in the kernel, so bounding the input is how
	// callers bound latency.
	MaxDisks int
}

// Default returns the production defaults.
func Default() Tuning {
	return Tuning{
		CurveSamplesPerEdge:    16,
		DefaultSmoothingFactor: 0.8,
		MaxDisks:               10000,
	}
}

// tuningFile is the JSON schema. Fields are pointers so a partial file
// overrides only what it names.
type tuningFile struct {
	CurveSamplesPerEdge    *int     `json:"curve_samples_per_edge,omitempty"`
	DefaultSmoothingFactor *float64 `json:"default_smoothing_factor,omitempty"`
	MaxDisks               *int     `json:"max_disks,omitempty"`
}

// Load reads a JSON tuning file over the defaults. The path must end in
// .json and the file must be under 1MB.
func Load(path string) (Tuning, error) {
	cfg := Default()

	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return cfg, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return cfg, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	var f tuningFile
	if err := json.Unmarshal(data, &f); err != nil {
		return cfg, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if f.CurveSamplesPerEdge != nil {
		cfg.CurveSamplesPerEdge = *f.CurveSamplesPerEdge
	}
	if f.DefaultSmoothingFactor != nil {
		cfg.DefaultSmoothingFactor = *f.DefaultSmoothingFactor
	}
	if f.MaxDisks != nil {
		cfg.MaxDisks = *f.MaxDisks
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c Tuning) Validate() error {
	if c.CurveSamplesPerEdge < 2 {
		return fmt.Errorf("curve_samples_per_edge must be at least 2, got %d", c.CurveSamplesPerEdge)
	}
	if c.DefaultSmoothingFactor < 0 || c.DefaultSmoothingFactor > 1 {
		return fmt.Errorf("default_smoothing_factor must be between 0 and 1, got %f", c.DefaultSmoothingFactor)
	}
	if c.MaxDisks < 1 {
		return fmt.Errorf("max_disks must be positive, got %d", c.MaxDisks)
	}
	return nil
}
