// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

package validator

import (
	"fmt"
	"strings"
)

// Mode is the requested strictness level for complex-input validation.
//
// Modes form a total order: ModeNone < ModeSimple < ModeStrict <
// ModeVeryStrict. A validator invoked at mode M evaluates every level up to
// and including M in ascending order; the verdict returned is the result of
// the highest level actually evaluated.
type Mode int

const (
	// ModeNone performs no checking; the input is trusted unconditionally.
	ModeNone Mode = iota

	// ModeSimple compares the input's declared MIME type against the type
	// guessed from the file name and the format's canonical type.
	ModeSimple

	// ModeStrict asks a format-detection driver to open the input and
	// requires the reported driver name to match the expected one.
	ModeStrict

	// ModeVeryStrict validates the input content against the format's
	// reference schema. Only GML and GeoJSON define checks at this level;
	// for other formats the ModeStrict verdict stands.
	ModeVeryStrict
)

// String returns the lowercase level name.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeSimple:
		return "simple"
	case ModeStrict:
		return "strict"
	case ModeVeryStrict:
		return "verystrict"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode resolves a level name to its Mode. Unknown names are an error
// rather than a default, so a typo cannot silently validate at ModeNone.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return ModeNone, nil
	case "simple":
		return ModeSimple, nil
	case "strict":
		return ModeStrict, nil
	case "verystrict":
		return ModeVeryStrict, nil
	default:
		return ModeNone, fmt.Errorf("unknown validation mode %q", s)
	}
}
