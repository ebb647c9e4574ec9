// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

// Package validator implements the tiered validation engine for file-based
// complex inputs.
//
// One validation method exists per supported format (ValidateGML,
// ValidateGeoJSON, ValidateShapefile, ValidateGeoTIFF), each a pure function
// of an [Input] and a [Mode]. Checks escalate with the mode: NONE trusts the
// caller, SIMPLE compares MIME types, STRICT asks a format-detection driver
// to recognise the file, and VERYSTRICT validates content against the
// format's reference schema. The verdict is a single boolean; failure
// reasons are only logged.
//
// Actual parsing and schema checking is delegated to the collaborator
// interfaces below. [New] binds default implementations; callers can inject
// substitutes (a cgo GDAL binding, a stub in tests) through the With...
// options. All heavy work happens inside the STRICT/VERYSTRICT branches, so
// calls at lower modes never touch a collaborator.
package validator

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/collaborators_mock.go -package=mock

// VectorDriver detects the format of a vector dataset, in the manner of an
// OGR open call: it reports the name of the driver that recognised the file.
//
// Open returns "" (and no error) for a file no driver recognises; an error
// is reserved for environmental failures such as an unreadable path.
type VectorDriver interface {
	Open(path string) (driverName string, err error)
}

// RasterDriver detects the format of a raster dataset and reports the short
// name of the recognising driver (e.g. "GTiff"). Same contract as
// [VectorDriver]: unrecognised input is ("", nil), not an error.
type RasterDriver interface {
	Open(path string) (shortName string, err error)
}

// XMLSchemaEngine validates an XML document against an XML Schema fetched
// from schemaURL. A nil return means the document is valid; every failure
// mode (fetch, compile, parse, schema violation) is an error.
type XMLSchemaEngine interface {
	Validate(ctx context.Context, schemaURL string, doc io.Reader) error
}

// JSONSchemaEngine validates a JSON document against the engine's schema.
// Implementations resolve any sub-schema references locally; Validate must
// not perform network I/O.
type JSONSchemaEngine interface {
	Validate(doc []byte) error
}

// ArchiveReader lists and extracts members of an archive file.
type ArchiveReader interface {
	// List returns the member names of the archive at path.
	List(path string) ([]string, error)

	// Extract writes the named member under destDir and returns the path of
	// the extracted file. Members escaping destDir must be rejected.
	Extract(path, member, destDir string) (string, error)
}
