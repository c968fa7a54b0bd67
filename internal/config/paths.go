package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigDirName is the per-project directory holding the config file.
const ConfigDirName = ".quizdeck"

// configFileNames are tried in order inside ConfigDirName; the first is what init writes.
var configFileNames = []string{"config.yml", "config.yaml"}

// ErrConfigNotFound reports that no config file exists in the searched directories.
var ErrConfigNotFound = errors.New("config not found")

// ConfigPath is where init writes the config for a project rooted at root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigDirName, configFileNames[0])
}

// FindConfigPath walks from startDir (the working directory when blank) toward the
// filesystem root and returns the first .quizdeck config file found.
func FindConfigPath(startDir string) (string, error) {
	start := strings.TrimSpace(startDir)
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		start = wd
	}
	start, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	for dir := start; ; {
		path, err := configIn(dir)
		if err != nil || path != "" {
			return path, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s/config.yml in %s or its parents", ErrConfigNotFound, ConfigDirName, start)
		}
		dir = parent
	}
}

// configIn returns the config file inside dir/.quizdeck, or "" when there is none.
func configIn(dir string) (string, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, ConfigDirName, name)
		info, err := os.Stat(path)
		switch {
		case err == nil && info.IsDir():
			return "", fmt.Errorf("config path %q is a directory", path)
		case err == nil:
			return path, nil
		case !os.IsNotExist(err):
			return "", fmt.Errorf("stat config path %q: %w", path, err)
		}
	}
	return "", nil
}
