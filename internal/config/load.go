package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve loads the explicit path when given, otherwise the nearest config above
// startDir. With no config anywhere it returns Default and an empty path.
func Resolve(explicitPath, startDir string) (Config, string, error) {
	path := strings.TrimSpace(explicitPath)
	if path == "" {
		found, err := FindConfigPath(startDir)
		if errors.Is(err, ErrConfigNotFound) {
			return Default(), "", nil
		}
		if err != nil {
			return Config{}, "", err
		}
		path = found
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}
