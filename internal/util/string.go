// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// ============================================================================
// String helpers
// ============================================================================

// TruncateRunes shortens s to at most max runes, appending "..." when a cut
// happens. Rune-safe: never splits a multi-byte character.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// TruncateWidth shortens s to at most max terminal cells, appending an
// ellipsis when a cut happens. Unlike TruncateRunes this accounts for
// wide characters (CJK, emoji) that occupy two cells.
func TruncateWidth(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, "…")
}

// PadRight pads s with spaces to exactly width terminal cells, truncating
// if it is already wider.
func PadRight(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(s, width)
}

// FormatMilliliters renders a volume for display. Values of a litre or
// more use litres with one decimal; smaller values stay in ml.
func FormatMilliliters(ml int) string {
	if ml >= 1000 {
		return fmt.Sprintf("%.1fL", float64(ml)/1000)
	}
	return fmt.Sprintf("%dml", ml)
}
