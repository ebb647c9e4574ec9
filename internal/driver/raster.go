// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

package driver

import "bytes"

// Raster magic numbers. Non-TIFF formats are recognised under their own
// driver names so that, say, a PNG renamed to .tif fails a GTiff comparison
// instead of falling through as unknown.
var rasterMagics = []struct {
	name  string
	magic []byte
}{
	{name: "GTiff", magic: []byte("II*\x00")},
	{name: "GTiff", magic: []byte("MM\x00*")},
	{name: "PNG", magic: []byte("\x89PNG\r\n\x1a\n")},
	{name: "JPEG", magic: []byte("\xff\xd8\xff")},
	{name: "GIF", magic: []byte("GIF8")},
	{name: "BMP", magic: []byte("BM")},
}

// RasterSniffer is the default [validator.RasterDriver]: a magic-number
// probe reporting the short name of the recognising raster driver.
type RasterSniffer struct{}

// NewRasterSniffer returns a ready-to-use raster sniffer. The sniffer is
// stateless and safe for concurrent use.
func NewRasterSniffer() *RasterSniffer {
	return &RasterSniffer{}
}

// Open probes the file at path and returns the short name of the
// recognising driver ("GTiff", "PNG", ...). An unrecognised file yields
// ("", nil).
func (s *RasterSniffer) Open(path string) (string, error) {
	head, err := readHead(path, 16)
	if err != nil {
		return "", err
	}

	for _, m := range rasterMagics {
		if bytes.HasPrefix(head, m.magic) {
			return m.name, nil
		}
	}
	return "", nil
}
