// Package cliconfig provides configuration loading for the schemafaker CLI.
//
// Values are layered with the following precedence (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (SCHEMAFAKER_* prefix)
//  3. Local config file (.schemafakerrc.yaml in the current directory)
//  4. Default values
//
// The source of each value is tracked in Config.Sources for diagnostics.
package cliconfig
