// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

// Package config loads the geovalid runtime configuration by merging values
// from environment variables, command-line flags, and an optional JSON file,
// in that order of precedence, on top of built-in defaults.
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for geovalid.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// Validation holds the validation engine settings.
	Validation Validation `envPrefix:"VALIDATION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged behind the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum emitted log level, one of zerolog's level names
	// ("debug", "info", "warn", "error").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Validation holds the settings of the complex-input validation engine.
type Validation struct {
	// DefaultMode is the strictness level applied when the caller requests
	// none explicitly: "none", "simple", "strict" or "verystrict".
	// Env: VALIDATION_DEFAULT_MODE
	DefaultMode string `env:"DEFAULT_MODE"`

	// SchemaFetchTimeout bounds the HTTP fetch of a reference XML Schema
	// during verystrict GML validation (e.g. "30s", "1m").
	// Env: VALIDATION_SCHEMA_FETCH_TIMEOUT
	SchemaFetchTimeout time.Duration `env:"SCHEMA_FETCH_TIMEOUT"`

	// GMLSchemaURL overrides the schema URL of the GML format descriptor
	// for inputs whose declared format carries none.
	// Env: VALIDATION_GML_SCHEMA_URL
	GMLSchemaURL string `env:"GML_SCHEMA_URL"`
}

// defaults returns the built-in configuration merged in last.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Log: Log{
			Level: "info",
		},
		Validation: Validation{
			DefaultMode:        "simple",
			SchemaFetchTimeout: 30 * time.Second,
		},
	}
}

var validModes = map[string]bool{
	"none":       true,
	"simple":     true,
	"strict":     true,
	"verystrict": true,
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func (c *StructuredConfig) validate() error {
	if !validLogLevels[c.Log.Level] {
		return ErrInvalidLogConfigs
	}
	if !validModes[c.Validation.DefaultMode] {
		return ErrInvalidValidationConfigs
	}
	if c.Validation.SchemaFetchTimeout <= 0 {
		return ErrInvalidValidationConfigs
	}
	return nil
}

// New loads, merges and validates the full configuration.
func New() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
