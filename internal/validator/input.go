// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

package validator

import (
	"fmt"
	"io"
	"os"

	"github.com/owslab/geovalid/internal/formats"
)

// Input is the validator's view of a complex input owned by the surrounding
// service. The validator never mutates it beyond writing extracted files into
// TempDir.
type Input struct {
	// File is the filesystem path to the submitted data.
	File string

	// Stream optionally provides the data as a byte stream. When nil, the
	// validator opens File instead. Levels that consume the stream (schema
	// validation) read it exactly once.
	Stream io.Reader

	// Format is the descriptor the caller declared for this input. Its
	// MIMEType is compared at the SIMPLE level and its Schema is fetched at
	// the VERYSTRICT level for GML.
	Format formats.Format

	// TempDir is a caller-provided scratch directory for any extraction a
	// validation level needs (archive unpacking). It must exist and be
	// writable; a missing scratch directory is a defect in the caller, not
	// a property of the data.
	TempDir string
}

// open returns the input's byte stream: the explicit Stream when set,
// otherwise a reader over File. The returned closer is a no-op for an
// explicit stream.
func (in *Input) open() (io.Reader, func() error, error) {
	if in.Stream != nil {
		return in.Stream, func() error { return nil }, nil
	}

	f, err := os.Open(in.File)
	if err != nil {
		return nil, nil, fmt.Errorf("open input %s: %w", in.File, err)
	}
	return f, f.Close, nil
}
