// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

// Package archive reads the zip archives that zipped-shapefile inputs
// arrive in.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsafeMemberPath is returned when an archive member would be written
// outside the destination directory.
var ErrUnsafeMemberPath = errors.New("archive member escapes destination directory")

// ZipReader implements [validator.ArchiveReader] over zip files.
type ZipReader struct{}

// NewZipReader returns a ready-to-use zip reader. The reader is stateless
// and safe for concurrent use.
func NewZipReader() *ZipReader {
	return &ZipReader{}
}

// List returns the member names of the zip archive at path, in archive
// order. Directory entries are skipped.
func (z *ZipReader) List(path string) ([]string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	defer r.Close()

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		names = append(names, f.Name)
	}
	return names, nil
}

// Extract writes the named member of the archive at path under destDir,
// preserving the member's relative path, and returns the path of the
// extracted file. Members resolving outside destDir are rejected with
// [ErrUnsafeMemberPath].
func (z *ZipReader) Extract(path, member, destDir string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open archive %s: %w", path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != member {
			continue
		}
		return extractFile(f, destDir)
	}

	return "", fmt.Errorf("archive %s has no member %q", path, member)
}

func extractFile(f *zip.File, destDir string) (string, error) {
	dest := filepath.Join(destDir, filepath.FromSlash(f.Name))
	if !strings.HasPrefix(dest, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s", ErrUnsafeMemberPath, f.Name)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create member directory: %w", err)
	}

	src, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open member %s: %w", f.Name, err)
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dest, err)
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return "", fmt.Errorf("extract member %s: %w", f.Name, err)
	}

	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", dest, err)
	}
	return dest, nil
}
