// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

package validator

import (
	"context"

	"github.com/owslab/geovalid/internal/formats"
)

// ValidateGeoTIFF validates a GeoTIFF complex input at the requested mode.
//
//	ModeNone    always true
//	ModeSimple  declared mimetype matches guessed or canonical type
//	ModeStrict  raster driver recognises the file with short name "GTiff"
//
// No VERYSTRICT level exists for GeoTIFF; requesting it yields the STRICT
// verdict.
func (v *ComplexValidator) ValidateGeoTIFF(ctx context.Context, in *Input, mode Mode) bool {
	v.log.Info().Stringer("mode", mode).Str("file", in.File).Msg("validating GeoTIFF")
	passed := false

	if mode >= ModeNone {
		passed = true
	}

	if mode >= ModeSimple {
		passed = v.checkMIMEType(in, formats.GeoTIFF.MIMEType)
	}

	if mode >= ModeStrict {
		passed = v.checkRasterDriver(in.File, "GTiff")
	}

	return passed
}
