package archive

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, members map[string][]byte) string {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range members {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "test.zip")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestZipReader_List(t *testing.T) {
	path := writeZip(t, map[string][]byte{
		"parcels.shp":  []byte("shp"),
		"parcels.dbf":  []byte("dbf"),
		"doc/info.txt": []byte("nested"),
	})

	names, err := NewZipReader().List(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"parcels.shp", "parcels.dbf", "doc/info.txt"}, names)
}

func TestZipReader_ListNotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.zip")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o600))

	_, err := NewZipReader().List(path)
	require.Error(t, err)
}

func TestZipReader_Extract(t *testing.T) {
	path := writeZip(t, map[string][]byte{
		"parcels.shp":  []byte("shp content"),
		"doc/info.txt": []byte("nested content"),
	})
	dest := t.TempDir()
	z := NewZipReader()

	extracted, err := z.Extract(path, "parcels.shp", dest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "parcels.shp"), extracted)

	content, err := os.ReadFile(extracted)
	require.NoError(t, err)
	assert.Equal(t, []byte("shp content"), content)

	// nested members keep their relative path
	extracted, err = z.Extract(path, "doc/info.txt", dest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "doc", "info.txt"), extracted)
}

func TestZipReader_ExtractMissingMember(t *testing.T) {
	path := writeZip(t, map[string][]byte{"parcels.shp": []byte("shp")})

	_, err := NewZipReader().Extract(path, "absent.shp", t.TempDir())
	require.Error(t, err)
}

func TestZipReader_ExtractRejectsTraversal(t *testing.T) {
	path := writeZip(t, map[string][]byte{"../evil.txt": []byte("escape attempt")})
	dest := t.TempDir()

	_, err := NewZipReader().Extract(path, "../evil.txt", dest)
	require.ErrorIs(t, err, ErrUnsafeMemberPath)

	_, statErr := os.Stat(filepath.Join(filepath.Dir(dest), "evil.txt"))
	assert.True(t, os.IsNotExist(statErr))
}
