// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and a
// string-friendly duration type for file-based configuration.
type StructuredJSONConfig struct {
	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Validation struct {
		DefaultMode        string   `json:"default_mode"`
		SchemaFetchTimeout Duration `json:"schema_fetch_timeout"`
		GMLSchemaURL       string   `json:"gml_schema_url"`
	} `json:"validation,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		Validation: Validation{
			DefaultMode:        jsonCfg.Validation.DefaultMode,
			SchemaFetchTimeout: time.Duration(jsonCfg.Validation.SchemaFetchTimeout),
			GMLSchemaURL:       jsonCfg.Validation.GMLSchemaURL,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
