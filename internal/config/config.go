// Package config loads the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/cursor-reset/cursor-reset/internal/process"
)

const (
	DefaultAppName        = "Cursor"
	DefaultProcessPattern = "cursor"
	DefaultSelfPattern    = "cursor-reset"

	fileName = ".cursor-reset"
)

type Config struct {
	AppName        string   `yaml:"appName"`
	ProcessPattern string   `yaml:"processPattern"`
	SelfPattern    string   `yaml:"selfPattern"`
	GracePeriod    string   `yaml:"gracePeriod"`
	InstallPaths   []string `yaml:"installPaths"`
}

func Default() Config {
	return Config{
		AppName:        DefaultAppName,
		ProcessPattern: DefaultProcessPattern,
		SelfPattern:    DefaultSelfPattern,
		GracePeriod:    process.DefaultGracePeriod.String(),
	}
}

// DefaultPath is the settings file in the user's home directory.
func DefaultPath(homeDir string) string {
	return filepath.Join(homeDir, fileName)
}

// Load reads the settings file at path. A missing file yields the defaults;
// fields left empty in the file keep their default values.
func Load(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config file: %w", err)
	}

	if file.AppName != "" {
		config.AppName = file.AppName
	}
	if file.ProcessPattern != "" {
		config.ProcessPattern = file.ProcessPattern
	}
	if file.SelfPattern != "" {
		config.SelfPattern = file.SelfPattern
	}
	if file.GracePeriod != "" {
		config.GracePeriod = file.GracePeriod
	}
	config.InstallPaths = file.InstallPaths

	if _, err := config.Grace(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Grace() (time.Duration, error) {
	d, err := time.ParseDuration(c.GracePeriod)
	if err != nil {
		return 0, fmt.Errorf("invalid gracePeriod %q: %w", c.GracePeriod, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid gracePeriod %q: must be positive", c.GracePeriod)
	}
	return d, nil
}
