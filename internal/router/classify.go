// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ROUTER: Intent classification for free-text chat input
package router

import (
	"strconv"
	"strings"
	"unicode"
)

// =============================================================================
// INTENT TYPES
// =============================================================================

// Kind identifies what a line of chat input denotes.
type Kind int

const (
	// KindEmpty is a trimmed-empty line. Callers ignore it entirely:
	// no message is appended and no state changes.
	KindEmpty Kind = iota
	// KindLocation is a place name; it triggers a weather fetch.
	KindLocation
	// KindVolume is a water volume statement; it logs intake directly.
	KindVolume
	// KindUnknown is anything else; it yields a help message only.
	KindUnknown
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindLocation:
		return "Location"
	case KindVolume:
		return "Volume"
	case KindUnknown:
		return "Unknown"
	default:
		return "Invalid"
	}
}

// Intent is the classification result for one line of input.
type Intent struct {
	Kind Kind

	// Place is the trimmed place name (Location only).
	Place string

	// Milliliters is the logged amount (Volume only). Zero when the
	// first digit run cannot be parsed.
	Milliliters int
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Classify decides what a line of chat input denotes.
//
// Classification rules (in order of priority):
//  1. Empty: nothing left after trimming whitespace
//  2. Location: only letters and whitespace (no digits, no punctuation)
//  3. Volume: a digit run followed anywhere later by the literal unit
//     token "ml" (case-insensitive); the first digit run is the amount
//  4. Unknown: everything else, including bare digits with no unit
func Classify(text string) Intent {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Intent{Kind: KindEmpty}
	}

	if lettersAndSpaceOnly(trimmed) {
		return Intent{Kind: KindLocation, Place: trimmed}
	}

	if ml, ok := parseVolume(trimmed); ok {
		return Intent{Kind: KindVolume, Milliliters: ml}
	}

	return Intent{Kind: KindUnknown}
}

// lettersAndSpaceOnly reports whether s contains only letters and
// whitespace. A place name carries no digits or punctuation.
func lettersAndSpaceOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// parseVolume matches a volume statement: the unit token "ml"
// (case-insensitive) must occur somewhere after a digit. The search starts
// at the first digit, so an incidental "ml" earlier in the text ("html
// 50ml") does not mask a real unit after the amount. The returned amount
// is the FIRST digit run in the whole string; it defaults to 0 when that
// run does not parse as an integer.
func parseVolume(s string) (int, bool) {
	digitIdx := firstDigitIndex(s)
	if digitIdx < 0 {
		return 0, false
	}

	if !strings.Contains(strings.ToLower(s[digitIdx:]), "ml") {
		return 0, false
	}

	first := firstDigitRun(s)
	ml, err := strconv.Atoi(first)
	if err != nil {
		return 0, true
	}
	return ml, true
}

// firstDigitIndex returns the byte index of the first ASCII digit, or -1.
func firstDigitIndex(s string) int {
	for i, r := range s {
		if r >= '0' && r <= '9' {
			return i
		}
	}
	return -1
}

// firstDigitRun returns the first maximal run of ASCII digits in s.
func firstDigitRun(s string) string {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return s[start:i]
		}
	}
	if start >= 0 {
		return s[start:]
	}
	return ""
}
