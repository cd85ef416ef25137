package cliconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigFileName is the name of the local config file
const LocalConfigFileName = ".schemafakerrc.yaml"

// fileConfig distinguishes absent keys from zero values.
type fileConfig struct {
	Seed      *uint64 `yaml:"seed"`
	LogLevel  *string `yaml:"logLevel"`
	LogFormat *string `yaml:"logFormat"`
	Resolve   *bool   `yaml:"resolve"`
}

// FindLocalConfig returns the path of the local config file in dir, or ""
// when there is none.
func FindLocalConfig(dir string) string {
	path := filepath.Join(dir, LocalConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// LoadConfigFile merges the config file at path into cfg.
func LoadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ConfigError{Path: path, Message: err.Error()}
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return &ConfigError{Path: path, Message: err.Error()}
	}

	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
		cfg.Sources["seed"] = SourceLocal
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
		cfg.Sources["logLevel"] = SourceLocal
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
		cfg.Sources["logFormat"] = SourceLocal
	}
	if fc.Resolve != nil {
		cfg.Resolve = *fc.Resolve
		cfg.Sources["resolve"] = SourceLocal
	}
	return nil
}

// ConfigError represents a configuration error with its origin.
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Path + ": " + e.Message
}

// LoadAll loads configuration from all sources below flags.
// Precedence: env > local config > defaults
func LoadAll(dir string) (*Config, error) {
	cfg := NewDefault()

	if path := FindLocalConfig(dir); path != "" {
		if err := LoadConfigFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := LoadEnvConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
