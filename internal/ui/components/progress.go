// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/thirstiq/thirstiq-tui/internal/model"
	"github.com/thirstiq/thirstiq-tui/internal/ui/styles"
	"github.com/thirstiq/thirstiq-tui/internal/util"
)

// =============================================================================
// HYDRATION PROGRESS BAR
// =============================================================================

// HydrationBar renders intake progress toward the daily goal.
type HydrationBar struct {
	theme *styles.Theme
	Width int
}

// NewHydrationBar creates a hydration progress bar.
func NewHydrationBar(theme *styles.Theme) *HydrationBar {
	return &HydrationBar{
		theme: theme,
		Width: 40,
	}
}

// SetWidth updates the bar width.
func (b *HydrationBar) SetWidth(width int) {
	b.Width = width
}

// View renders the progress bar for the given session.
func (b *HydrationBar) View(sess *model.Session) string {
	if sess == nil || sess.GoalMilliliters == 0 {
		return ""
	}

	pct := sess.ProgressPercent()
	label := fmt.Sprintf("%s / %s (%d%%)",
		util.FormatMilliliters(sess.IntakeMilliliters),
		util.FormatMilliliters(sess.GoalMilliliters),
		pct)

	barWidth := b.Width - len(label) - 4
	if barWidth < 10 {
		barWidth = 10
	}

	filled := barWidth * pct / 100
	if filled > barWidth {
		filled = barWidth
	}

	fillStyle := b.theme.ProgressFilled
	if pct >= 100 {
		fillStyle = b.theme.ProgressComplete
	}

	bar := fillStyle.Render(strings.Repeat("=", filled)) +
		b.theme.ProgressEmpty.Render(strings.Repeat("-", barWidth-filled))

	return b.theme.ProgressLabel.Render(label) + " [" + bar + "]"
}
