package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/getmockd/schemafaker/internal/cliconfig"
	"github.com/getmockd/schemafaker/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	logLevel   string
	logFormat  string
	jsonOutput bool

	// cfg and log are set up before any subcommand runs.
	cfg *cliconfig.Config
	log *slog.Logger

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "schemafaker",
	Short: "schemafaker generates example data from JSON Schema, Swagger and OpenAPI models",
	Long: `schemafaker produces realistic example objects for the models declared in a
schema document. Generation honours types, enums, numeric bounds and string
formats, and example blocks can name generators such as "internet.email".

Configuration can be provided via flags, SCHEMAFAKER_* environment variables,
or a .schemafakerrc.yaml file in the current directory.`,
	SilenceUsage:      true,
	SilenceErrors:     true, // We handle errors in Main()
	PersistentPreRunE: setup,
}

// setup layers flags over environment and file configuration and builds
// the logger.
func setup(cmd *cobra.Command, _ []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err = cliconfig.LoadAll(dir)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.SetFlag("logLevel", func(c *cliconfig.Config) { c.LogLevel = logLevel })
	}
	if flags.Changed("log-format") {
		cfg.SetFlag("logFormat", func(c *cliconfig.Config) { c.LogFormat = logFormat })
	}

	level, err := logging.LookupLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log = logging.New(logging.Config{
		Level:  level,
		Format: logging.ParseFormat(cfg.LogFormat),
		Output: cmd.ErrOrStderr(),
	})
	log.Debug("configuration loaded", "sources", cfg.Sources)
	return nil
}

// Main runs the CLI and returns the process exit code.
func Main() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// Execute runs the CLI and exits on failure.
// This is called by main.main().
func Execute() {
	os.Exit(Main())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cliconfig.DefaultLogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", cliconfig.DefaultLogFormat, "Log format: text or json")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
}
