// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

package schema

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Bundled GeoJSON draft-04 schema set. The auxiliary schemas are registered
// with the loader under their canonical ids, so the $ref targets inside the
// base schema resolve locally and validation performs no network I/O.
var (
	//go:embed schemas/geojson/geojson.json
	geoJSONBaseSchema []byte

	//go:embed schemas/geojson/crs.json
	crsSchema []byte

	//go:embed schemas/geojson/bbox.json
	bboxSchema []byte

	//go:embed schemas/geojson/geometry.json
	geometrySchema []byte
)

// GeoJSONValidator validates documents against the bundled GeoJSON schema.
// It implements the validator.JSONSchemaEngine contract.
//
// The schema set is compiled lazily on first use and reused afterwards, so
// constructing the validator costs nothing when no VERYSTRICT check ever
// runs.
type GeoJSONValidator struct {
	once       sync.Once
	schema     *gojsonschema.Schema
	compileErr error
}

// NewGeoJSONValidator returns a validator over the bundled schema set.
func NewGeoJSONValidator() *GeoJSONValidator {
	return &GeoJSONValidator{}
}

func (g *GeoJSONValidator) compile() {
	sl := gojsonschema.NewSchemaLoader()
	if err := sl.AddSchemas(
		gojsonschema.NewBytesLoader(crsSchema),
		gojsonschema.NewBytesLoader(bboxSchema),
		gojsonschema.NewBytesLoader(geometrySchema),
	); err != nil {
		g.compileErr = fmt.Errorf("register geojson sub-schemas: %w", err)
		return
	}

	schema, err := sl.Compile(gojsonschema.NewBytesLoader(geoJSONBaseSchema))
	if err != nil {
		g.compileErr = fmt.Errorf("compile geojson schema: %w", err)
		return
	}
	g.schema = schema
}

// Validate checks doc against the GeoJSON schema. It returns nil for a
// conforming document and an error describing every violation otherwise.
func (g *GeoJSONValidator) Validate(doc []byte) error {
	g.once.Do(g.compile)
	if g.compileErr != nil {
		return g.compileErr
	}

	result, err := g.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("parse geojson document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return errors.New("invalid geojson: " + strings.Join(msgs, "; "))
}
