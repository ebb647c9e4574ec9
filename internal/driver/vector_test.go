package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestVectorSniffer_Open(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{
			name:    "shapefile main file",
			content: []byte{0x00, 0x00, 0x27, 0x0A, 0x00, 0x00, 0x00, 0x00},
			want:    "ESRI Shapefile",
		},
		{
			name: "gml with namespace declaration",
			content: []byte(`<?xml version="1.0"?>
<gml:FeatureCollection xmlns:gml="http://www.opengis.net/gml"></gml:FeatureCollection>`),
			want: "GML",
		},
		{
			name:    "gml without xml declaration",
			content: []byte(`<gml:Point xmlns:gml="http://www.opengis.net/gml/3.2"/>`),
			want:    "GML",
		},
		{
			name:    "plain xml is not gml",
			content: []byte(`<?xml version="1.0"?><note><body>hello</body></note>`),
			want:    "",
		},
		{
			name:    "geojson feature",
			content: []byte(`{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[8.58,22.88]}}`),
			want:    "GeoJSON",
		},
		{
			name:    "geojson with leading whitespace",
			content: []byte("\n\t {\"type\":\"FeatureCollection\",\"features\":[]}"),
			want:    "GeoJSON",
		},
		{
			name:    "json that is not geojson",
			content: []byte(`{"type":"configuration","version":2}`),
			want:    "",
		},
		{
			name:    "truncated json",
			content: []byte(`{"type":"Feature","proper`),
			want:    "",
		},
		{
			name:    "arbitrary binary",
			content: []byte{0xde, 0xad, 0xbe, 0xef},
			want:    "",
		},
		{
			name:    "empty file",
			content: []byte{},
			want:    "",
		},
	}

	s := NewVectorSniffer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "input", tt.content)

			got, err := s.Open(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// An unreadable path is an environmental error, not a quiet non-match.
func TestVectorSniffer_OpenMissingFile(t *testing.T) {
	s := NewVectorSniffer()
	_, err := s.Open(filepath.Join(t.TempDir(), "absent.shp"))
	require.Error(t, err)
}
