// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

package validator

import (
	"github.com/owslab/geovalid/internal/archive"
	"github.com/owslab/geovalid/internal/driver"
	"github.com/owslab/geovalid/internal/formats"
	"github.com/owslab/geovalid/internal/logger"
	"github.com/owslab/geovalid/internal/schema"
)

// ComplexValidator validates complex inputs against their declared format at
// an escalating strictness level.
//
// The zero value is not usable; construct with [New]. A single validator is
// safe for concurrent use: it holds no per-call state, and the only write a
// validation performs is archive extraction into the input's own scratch
// directory. Two concurrent validations sharing one Input's scratch
// directory must be serialised by the caller.
type ComplexValidator struct {
	log     *logger.Logger
	vector  VectorDriver
	raster  RasterDriver
	xml     XMLSchemaEngine
	geojson JSONSchemaEngine
	archive ArchiveReader
}

// Option overrides one of the validator's collaborators.
type Option func(*ComplexValidator)

// WithVectorDriver replaces the default vector format-detection driver.
func WithVectorDriver(d VectorDriver) Option {
	return func(v *ComplexValidator) { v.vector = d }
}

// WithRasterDriver replaces the default raster format-detection driver.
func WithRasterDriver(d RasterDriver) Option {
	return func(v *ComplexValidator) { v.raster = d }
}

// WithXMLSchemaEngine replaces the default XML Schema engine, e.g. to set a
// custom fetch timeout or HTTP client.
func WithXMLSchemaEngine(e XMLSchemaEngine) Option {
	return func(v *ComplexValidator) { v.xml = e }
}

// WithJSONSchemaEngine replaces the bundled GeoJSON schema engine.
func WithJSONSchemaEngine(e JSONSchemaEngine) Option {
	return func(v *ComplexValidator) { v.geojson = e }
}

// WithArchiveReader replaces the default zip archive reader.
func WithArchiveReader(a ArchiveReader) Option {
	return func(v *ComplexValidator) { v.archive = a }
}

// New constructs a ComplexValidator with the default collaborators: the
// pure-Go content sniffers, the fetching XML Schema engine, the bundled
// GeoJSON schema engine, and the zip reader. Construction is cheap; schema
// compilation and network access are deferred until a VERYSTRICT check runs.
func New(log *logger.Logger, opts ...Option) *ComplexValidator {
	v := &ComplexValidator{
		log:     log,
		vector:  driver.NewVectorSniffer(),
		raster:  driver.NewRasterSniffer(),
		xml:     schema.NewXMLValidator(nil),
		geojson: schema.NewGeoJSONValidator(),
		archive: archive.NewZipReader(),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// checkMIMEType implements the SIMPLE level: the input's declared MIME type
// must equal either the type guessed from the file name or the canonical
// type for the format under validation.
func (v *ComplexValidator) checkMIMEType(in *Input, canonical string) bool {
	guessed := formats.GuessMIMEType(in.File)
	declared := in.Format.MIMEType

	passed := declared == guessed || declared == canonical
	if !passed {
		v.log.Debug().
			Str("declared", declared).
			Str("guessed", guessed).
			Str("canonical", canonical).
			Msg("mimetype mismatch")
	}
	return passed
}

// checkVectorDriver implements the STRICT level for vector formats: the
// detection driver must recognise the file under exactly the expected
// driver name. A file no driver recognises is a plain failed verdict.
func (v *ComplexValidator) checkVectorDriver(path, want string) bool {
	name, err := v.vector.Open(path)
	if err != nil {
		v.log.Error().Err(err).Str("file", path).Msg("vector driver open failed")
		return false
	}
	if name == "" {
		return false
	}
	return name == want
}

// checkRasterDriver is the raster counterpart of checkVectorDriver,
// comparing the recognising driver's short name.
func (v *ComplexValidator) checkRasterDriver(path, want string) bool {
	name, err := v.raster.Open(path)
	if err != nil {
		v.log.Error().Err(err).Str("file", path).Msg("raster driver open failed")
		return false
	}
	if name == "" {
		return false
	}
	return name == want
}
