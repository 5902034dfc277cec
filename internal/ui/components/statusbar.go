// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thirstiq/thirstiq-tui/internal/model"
	"github.com/thirstiq/thirstiq-tui/internal/ui/styles"
	"github.com/thirstiq/thirstiq-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the current application status.
type Status int

const (
	StatusReady Status = iota
	StatusFetching
	StatusError
	StatusSigningIn
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusFetching:
		return "Fetching weather..."
	case StatusError:
		return "Error"
	case StatusSigningIn:
		return "Signing in..."
	default:
		return "Unknown"
	}
}

// Icon returns a shape indicator for the status, distinct beyond color.
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusFetching, StatusSigningIn:
		return styles.StatusIndicators.Pending
	case StatusError:
		return styles.StatusIndicators.Error
	default:
		return "?"
	}
}

// StatusBar is the bottom status bar: goal, intake, status, shortcuts.
type StatusBar struct {
	Status        Status
	Width         int
	ShowShortcuts bool
	theme         *styles.Theme
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Status:        StatusReady,
		Width:         80,
		ShowShortcuts: true,
		theme:         theme,
	}
}

// SetWidth updates the bar width.
func (sb *StatusBar) SetWidth(width int) {
	sb.Width = width
}

// SetStatus updates the displayed status.
func (sb *StatusBar) SetStatus(status Status) {
	sb.Status = status
}

// View renders the status bar for the given session.
func (sb *StatusBar) View(sess *model.Session) string {
	var left []string

	statusStyle := sb.theme.ShortcutDesc
	if sb.Status == StatusError {
		statusStyle = lipgloss.NewStyle().Foreground(styles.Rose).Bold(true)
	}
	left = append(left, statusStyle.Render(sb.Status.Icon()+" "+sb.Status.String()))

	if sess != nil && sess.GoalMilliliters > 0 {
		goal := sb.theme.StatusGoal.Render("Goal " + util.FormatMilliliters(sess.GoalMilliliters))
		intake := sb.theme.StatusIntake.Render("Drunk " + util.FormatMilliliters(sess.IntakeMilliliters))
		left = append(left, goal, intake)
	}

	leftView := strings.Join(left, sb.theme.ShortcutDesc.Render(" | "))

	var rightView string
	if sb.ShowShortcuts && sb.Width >= 60 {
		rightView = sb.renderShortcuts()
	}

	gap := sb.Width - lipgloss.Width(leftView) - lipgloss.Width(rightView) - 2
	if gap < 1 {
		gap = 1
	}

	return sb.theme.StatusBar.Width(sb.Width).Render(
		leftView + strings.Repeat(" ", gap) + rightView)
}

// renderShortcuts renders the keyboard hint cluster.
func (sb *StatusBar) renderShortcuts() string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"/help", "commands"},
		{"ctrl+c", "quit"},
	}

	var parts []string
	for _, s := range shortcuts {
		parts = append(parts, fmt.Sprintf("%s %s",
			sb.theme.ShortcutKey.Render(s.key),
			sb.theme.ShortcutDesc.Render(s.desc)))
	}
	return strings.Join(parts, "  ")
}
