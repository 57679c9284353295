// SPDX-License-Identifier: MIT
// Package: lpgen/cmd/lpgen

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/lpgen/builder"
	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML parameter file accepted by generate and naive.
// Omitted sections keep their defaults. With random set, parameters are drawn
// per seed instead (RandomEncodedParams / RandomNaiveParams).
type fileConfig struct {
	Random  bool                  `yaml:"random"`
	Encoded builder.EncodedParams `yaml:"encoded"`
	Naive   builder.NaiveParams   `yaml:"naive"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Encoded: builder.DefaultEncodedParams(),
		Naive:   builder.DefaultNaiveParams(),
	}
}

// loadConfig reads path over the defaults. An empty path returns the
// defaults.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if !cfg.Random {
		if err = cfg.Encoded.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		if err = cfg.Naive.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	}
	return cfg, nil
}

// loadSeeds returns the seeds in file (a JSON array) or, when file is
// empty, count system random seeds.
func loadSeeds(file string, count int) ([]int64, error) {
	if file == "" {
		return builder.SystemSeeds(count)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var seeds []int64
	if err = json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", file, err)
	}
	return seeds, nil
}

// writeJSON writes v indented to path.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
