// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

// Package formats defines the registry of complex-input formats supported by
// the validation engine.
//
// Each supported format is described by a [Format] value: its canonical name,
// the single MIME type the engine treats as ground truth for that format, the
// conventional file extension, and, for schema-bearing formats, the URL of
// the reference schema used at the strictest validation level.
//
// Registry values are package-level constants in spirit: they are initialised
// once and never mutated, so concurrent reads need no coordination.
package formats

import (
	"mime"
	"path/filepath"
	"strings"
)

// Format is an immutable descriptor of a supported complex-input format.
type Format struct {
	// Name is the canonical format identifier, e.g. "GML".
	Name string

	// MIMEType is the canonical MIME type associated with the format. It is
	// the ground truth for the mimetype comparison at the SIMPLE validation
	// level.
	MIMEType string

	// Extension is the conventional file extension, including the leading
	// dot, e.g. ".gml".
	Extension string

	// Schema is the URL of the reference schema document for schema-bearing
	// formats. Empty for formats validated without a schema.
	Schema string
}

// Supported format descriptors.
var (
	GML = Format{
		Name:      "GML",
		MIMEType:  "application/gml+xml",
		Extension: ".gml",
		Schema:    "http://schemas.opengis.net/gml/3.1.1/base/gml.xsd",
	}

	GeoJSON = Format{
		Name:      "GeoJSON",
		MIMEType:  "application/vnd.geo+json",
		Extension: ".geojson",
	}

	Shapefile = Format{
		Name:      "Shapefile",
		MIMEType:  "application/x-zipped-shp",
		Extension: ".zip",
	}

	GeoTIFF = Format{
		Name:      "GeoTIFF",
		MIMEType:  "image/tiff; subtype=geotiff",
		Extension: ".tiff",
	}
)

var registry = map[string]Format{
	"gml":       GML,
	"geojson":   GeoJSON,
	"shapefile": Shapefile,
	"shp":       Shapefile,
	"geotiff":   GeoTIFF,
	"gtiff":     GeoTIFF,
}

// Lookup resolves a format name to its descriptor. Matching is
// case-insensitive and accepts the common short aliases "shp" and "gtiff".
func Lookup(name string) (Format, bool) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// GuessMIMEType guesses a MIME type from the file name extension, the way
// the SIMPLE validation level expects: the registry's own extensions take
// precedence over the platform mime database, and any media-type parameters
// from the platform database are stripped. Returns "" when nothing matches.
func GuessMIMEType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return ""
	}

	switch ext {
	case GML.Extension:
		return GML.MIMEType
	case GeoJSON.Extension:
		return GeoJSON.MIMEType
	case Shapefile.Extension:
		return Shapefile.MIMEType
	case ".tif", ".tiff":
		return "image/tiff"
	}

	mtype := mime.TypeByExtension(ext)
	if mtype == "" {
		return ""
	}
	if parsed, _, err := mime.ParseMediaType(mtype); err == nil {
		return parsed
	}
	return mtype
}
