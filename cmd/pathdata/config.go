package main

import (
	"fmt"
	"os"

	"github.com/benoitkugler/svgpathdata/geom"
	"github.com/pelletier/go-toml/v2"
)

// config holds the defaults which may be set with -config.
// Command line flags take precedence.
type config struct {
	Form    string              `toml:"form"`
	Flatten geom.FlattenOptions `toml:"flatten"`
	// Strict fails on unsupported SVG elements instead of logging them.
	Strict bool `toml:"strict"`
}

var defaultConfig = config{Flatten: geom.DefaultFlatten}

// loadConfig reads the TOML file at path over the defaults.
// Unknown keys are rejected.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
