package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-yaml"
)

func LoadYAML(fsys FS, filename string, v any) error {
	data, err := fsys.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}
	if err = yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filename, err)
	}
	return nil
}

// ConfigFile is the file LoadConfig reads. Developer mode uses a variant with
// a window instead of fullscreen, debug logs, visible shadows and recording
// turned on.
func ConfigFile(devModeEnabled bool) string {
	if devModeEnabled {
		return "data/config-dev.yaml"
	}
	return "data/config.yaml"
}

// LoadConfig reads the yaml config, applies environment overrides and
// validates the result.
func LoadConfig(fsys FS, devModeEnabled bool) (cfg Config, err error) {
	if err = LoadYAML(fsys, ConfigFile(devModeEnabled), &cfg); err != nil {
		return
	}
	if err = env.Parse(&cfg); err != nil {
		err = fmt.Errorf("parse env: %w", err)
		return
	}
	if err = cfg.Validate(); err != nil {
		err = fmt.Errorf("invalid config: %w", err)
	}
	return
}
