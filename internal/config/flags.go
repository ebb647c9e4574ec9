// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-log-level minimum log level (debug, info, warn, error)
//	-mode default validation mode (none, simple, strict, verystrict)
//	-schema-fetch-timeout timeout for fetching reference XML schemas (e.g. "30s")
//	-gml-schema override URL for the GML reference schema
//	-c/-config json file path with configs
//
// Callers registering their own flags (e.g. the CLI's -format) must do so
// before invoking this function, since it calls flag.Parse.
func ParseFlags() *StructuredConfig {
	var logLevel string
	var defaultMode string
	var schemaFetchTimeout time.Duration
	var gmlSchemaURL string
	var jsonConfigPath string

	flag.StringVar(&logLevel, "log-level", "", "Minimum log level")
	flag.StringVar(&defaultMode, "mode", "", "Default validation mode")
	flag.DurationVar(&schemaFetchTimeout, "schema-fetch-timeout", 0, "Reference schema fetch timeout (e.g., 30s, 1m)")
	flag.StringVar(&gmlSchemaURL, "gml-schema", "", "GML reference schema URL override")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Log: Log{
			Level: logLevel,
		},
		Validation: Validation{
			DefaultMode:        defaultMode,
			SchemaFetchTimeout: schemaFetchTimeout,
			GMLSchemaURL:       gmlSchemaURL,
		},
		JSONFilePath: jsonConfigPath,
	}
}
