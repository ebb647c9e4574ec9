// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

package validator

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/owslab/geovalid/internal/formats"
)

// ValidateShapefile validates a zipped ESRI Shapefile complex input at the
// requested mode.
//
//	ModeNone    always true
//	ModeSimple  declared mimetype matches guessed or canonical type
//	ModeStrict  every archive member is extracted into the input's scratch
//	            directory and the .shp member must be recognised by the
//	            vector driver as "ESRI Shapefile"
//
// No VERYSTRICT level exists for shapefiles; requesting it yields the
// STRICT verdict.
func (v *ComplexValidator) ValidateShapefile(ctx context.Context, in *Input, mode Mode) bool {
	v.log.Info().Stringer("mode", mode).Str("file", in.File).Msg("validating Shapefile")
	passed := false

	if mode >= ModeNone {
		passed = true
	}

	if mode >= ModeSimple {
		passed = v.checkMIMEType(in, formats.Shapefile.MIMEType)
	}

	if mode >= ModeStrict {
		passed = v.checkShapefileArchive(in)
	}

	return passed
}

// checkShapefileArchive unpacks the zip archive into the scratch directory
// and probes the main .shp member with the vector driver. A missing .shp
// member, an unreadable archive, or an unrecognised shapefile all yield a
// failed verdict without raising.
func (v *ComplexValidator) checkShapefileArchive(in *Input) bool {
	members, err := v.archive.List(in.File)
	if err != nil {
		v.log.Warn().Err(err).Str("file", in.File).Msg("cannot read shapefile archive")
		return false
	}

	var shapePath string
	for _, member := range members {
		extracted, err := v.archive.Extract(in.File, member, in.TempDir)
		if err != nil {
			v.log.Warn().Err(err).Str("member", member).Msg("cannot extract archive member")
			return false
		}
		if strings.EqualFold(filepath.Ext(member), ".shp") {
			shapePath = extracted
		}
	}

	if shapePath == "" {
		v.log.Debug().Str("file", in.File).Msg("archive contains no .shp member")
		return false
	}

	return v.checkVectorDriver(shapePath, "ESRI Shapefile")
}
