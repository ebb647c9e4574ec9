// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

package validator

import (
	"context"

	"github.com/owslab/geovalid/internal/formats"
)

// ValidateGML validates a GML complex input at the requested mode.
//
// Levels are evaluated in ascending order and each level overwrites the
// verdict of the one before it; the result is the outcome of the highest
// level evaluated, not a conjunction of all of them.
//
//	ModeNone        always true
//	ModeSimple      declared mimetype matches guessed or canonical GML type
//	ModeStrict      vector driver recognises the file as "GML"
//	ModeVeryStrict  XML stream validates against the schema URL of the
//	                input's declared format (the OGC GML base schema when
//	                the descriptor carries none)
func (v *ComplexValidator) ValidateGML(ctx context.Context, in *Input, mode Mode) bool {
	v.log.Info().Stringer("mode", mode).Str("file", in.File).Msg("validating GML")
	passed := false

	if mode >= ModeNone {
		passed = true
	}

	if mode >= ModeSimple {
		passed = v.checkMIMEType(in, formats.GML.MIMEType)
	}

	if mode >= ModeStrict {
		passed = v.checkVectorDriver(in.File, "GML")
	}

	if mode >= ModeVeryStrict {
		passed = v.checkGMLSchema(ctx, in)
	}

	return passed
}

// checkGMLSchema fetches the reference XML Schema and validates the input
// stream against it. Every failure along the way, from an unreachable
// schema URL to a malformed document, is logged as a warning and becomes a
// failed verdict; nothing escapes the call.
func (v *ComplexValidator) checkGMLSchema(ctx context.Context, in *Input) bool {
	schemaURL := in.Format.Schema
	if schemaURL == "" {
		schemaURL = formats.GML.Schema
	}

	doc, closeDoc, err := in.open()
	if err != nil {
		v.log.Warn().Err(err).Msg("gml schema validation failed")
		return false
	}
	defer closeDoc()

	if err := v.xml.Validate(ctx, schemaURL, doc); err != nil {
		v.log.Warn().Err(err).Str("schema", schemaURL).Msg("gml schema validation failed")
		return false
	}

	return true
}
