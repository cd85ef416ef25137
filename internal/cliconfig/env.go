package cliconfig

import (
	"errors"
	"os"

	"github.com/joeshaw/envdecode"
)

// Environment variable names
const (
	EnvSeed      = "SCHEMAFAKER_SEED"
	EnvLogLevel  = "SCHEMAFAKER_LOG_LEVEL"
	EnvLogFormat = "SCHEMAFAKER_LOG_FORMAT"
	EnvResolve   = "SCHEMAFAKER_RESOLVE"
)

// envKeys maps each variable to the Sources key it sets.
var envKeys = map[string]string{
	EnvSeed:      "seed",
	EnvLogLevel:  "logLevel",
	EnvLogFormat: "logFormat",
	EnvResolve:   "resolve",
}

// LoadEnvConfig applies environment variables to cfg. Only variables that
// are set to a non-empty value are applied; a value that does not parse is
// an error.
func LoadEnvConfig(cfg *Config) error {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return &ConfigError{Path: "environment", Message: err.Error()}
	}

	for name, key := range envKeys {
		if os.Getenv(name) != "" {
			cfg.Sources[key] = SourceEnv
		}
	}
	return nil
}
