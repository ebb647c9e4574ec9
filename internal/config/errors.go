// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a merged
// configuration is incomplete or inconsistent.
var (
	// ErrInvalidLogConfigs indicates an unknown log level name.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidValidationConfigs indicates invalid validation engine
	// settings (unknown default mode or non-positive fetch timeout).
	ErrInvalidValidationConfigs = errors.New("invalid validation configuration")
)
