// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

// Package driver provides the default format-detection drivers used at the
// STRICT validation level.
//
// The drivers probe file content (magic numbers and lightweight structure
// checks) and report the name of the format they recognised, mirroring the
// open-and-ask-the-driver contract of the OGR/GDAL libraries without a cgo
// dependency. Unrecognised input is reported as an empty name, never as an
// error; errors are reserved for environmental failures such as an
// unreadable path.
package driver

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// shapefileMagic is the big-endian file code at offset 0 of a shapefile
// main file (.shp).
const shapefileMagic = 9994

// sniffLimit bounds how much of a file the structure probes read.
const sniffLimit = 64 * 1024

// geoJSONTypes are the values of the top-level "type" member that mark a
// JSON document as GeoJSON.
var geoJSONTypes = map[string]bool{
	"Point":              true,
	"MultiPoint":         true,
	"LineString":         true,
	"MultiLineString":    true,
	"Polygon":            true,
	"MultiPolygon":       true,
	"GeometryCollection": true,
	"Feature":            true,
	"FeatureCollection":  true,
}

// gmlMarkers are byte sequences whose presence in the leading chunk of an
// XML document identifies it as GML.
var gmlMarkers = [][]byte{
	[]byte("www.opengis.net/gml"),
	[]byte("<gml:"),
	[]byte(`xmlns:gml`),
}

// VectorSniffer is the default [validator.VectorDriver]: a content probe
// recognising shapefile main files, GML documents and GeoJSON documents.
type VectorSniffer struct{}

// NewVectorSniffer returns a ready-to-use vector sniffer. The sniffer is
// stateless and safe for concurrent use.
func NewVectorSniffer() *VectorSniffer {
	return &VectorSniffer{}
}

// Open probes the file at path and returns the name of the recognising
// driver: "ESRI Shapefile", "GML" or "GeoJSON". An unrecognised file yields
// ("", nil).
func (s *VectorSniffer) Open(path string) (string, error) {
	head, err := readHead(path, sniffLimit)
	if err != nil {
		return "", err
	}
	if len(head) == 0 {
		return "", nil
	}

	if len(head) >= 4 && binary.BigEndian.Uint32(head[:4]) == shapefileMagic {
		return "ESRI Shapefile", nil
	}

	trimmed := bytes.TrimLeft(head, " \t\r\n\xef\xbb\xbf")
	switch {
	case len(trimmed) > 0 && trimmed[0] == '<':
		if isGML(trimmed) {
			return "GML", nil
		}
	case len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '['):
		if isGeoJSON(path) {
			return "GeoJSON", nil
		}
	}

	return "", nil
}

// isGML reports whether an XML chunk carries a GML namespace or element.
func isGML(head []byte) bool {
	for _, marker := range gmlMarkers {
		if bytes.Contains(head, marker) {
			return true
		}
	}
	return false
}

// isGeoJSON decodes the whole document and checks that the top-level "type"
// member names a GeoJSON object. Truncated probes are not enough here: the
// document must at least be well-formed JSON to be recognised.
func isGeoJSON(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	var doc struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return false
	}
	return geoJSONTypes[doc.Type]
}

// readHead returns up to limit leading bytes of the file at path.
func readHead(path string, limit int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	head := make([]byte, limit)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return head[:n], nil
}
