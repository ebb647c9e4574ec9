// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

package validator

import (
	"context"
	"io"

	"github.com/owslab/geovalid/internal/formats"
)

// ValidateGeoJSON validates a GeoJSON complex input at the requested mode.
//
//	ModeNone        always true
//	ModeSimple      declared mimetype matches guessed or canonical type
//	ModeStrict      vector driver recognises the file as "GeoJSON"
//	ModeVeryStrict  document validates against the bundled GeoJSON schema;
//	                sub-schema references resolve locally, so this level
//	                performs no network I/O
func (v *ComplexValidator) ValidateGeoJSON(ctx context.Context, in *Input, mode Mode) bool {
	v.log.Info().Stringer("mode", mode).Str("file", in.File).Msg("validating GeoJSON")
	passed := false

	if mode >= ModeNone {
		passed = true
	}

	if mode >= ModeSimple {
		passed = v.checkMIMEType(in, formats.GeoJSON.MIMEType)
	}

	if mode >= ModeStrict {
		passed = v.checkVectorDriver(in.File, "GeoJSON")
	}

	if mode >= ModeVeryStrict {
		passed = v.checkGeoJSONSchema(in)
	}

	return passed
}

// checkGeoJSONSchema reads the input document and validates it against the
// bundled GeoJSON JSON Schema. Read and validation failures are logged as
// warnings and become a failed verdict.
func (v *ComplexValidator) checkGeoJSONSchema(in *Input) bool {
	doc, closeDoc, err := in.open()
	if err != nil {
		v.log.Warn().Err(err).Msg("geojson schema validation failed")
		return false
	}
	defer closeDoc()

	data, err := io.ReadAll(doc)
	if err != nil {
		v.log.Warn().Err(err).Msg("geojson schema validation failed")
		return false
	}

	if err := v.geojson.Validate(data); err != nil {
		v.log.Warn().Err(err).Msg("geojson schema validation failed")
		return false
	}

	return true
}
