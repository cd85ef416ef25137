package cliconfig

// Config sources
const (
	SourceDefault = "default"
	SourceLocal   = "local"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// Default values
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds the CLI settings shared by every command.
type Config struct {
	// Seed makes generation reproducible. Zero means unseeded.
	Seed uint64 `yaml:"seed" env:"SCHEMAFAKER_SEED,strict"`

	LogLevel  string `yaml:"logLevel" env:"SCHEMAFAKER_LOG_LEVEL"`
	LogFormat string `yaml:"logFormat" env:"SCHEMAFAKER_LOG_FORMAT"`

	// Resolve dereferences "$ref" pointers before generating.
	Resolve bool `yaml:"resolve" env:"SCHEMAFAKER_RESOLVE,strict"`

	// Sources tracks where each value came from.
	Sources map[string]string `yaml:"-"`
}

// NewDefault returns a Config holding default values.
func NewDefault() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources: map[string]string{
			"seed":      SourceDefault,
			"logLevel":  SourceDefault,
			"logFormat": SourceDefault,
			"resolve":   SourceDefault,
		},
	}
}

// SetFlag records a value supplied on the command line.
func (c *Config) SetFlag(key string, apply func(*Config)) {
	apply(c)
	if c.Sources == nil {
		c.Sources = make(map[string]string)
	}
	c.Sources[key] = SourceFlag
}
