// Package logging provides structured logging configuration for schemafaker.
//
// This package wraps log/slog so the library and the CLI share one way of
// building loggers.
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//
// Library components accept a *slog.Logger through an option and fall back
// to logging.Nop(). The generator logs missing models at warn level and
// unresolved references or unusable example hints at debug level.
package logging
