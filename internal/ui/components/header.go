// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/thirstiq/thirstiq-tui/internal/model"
	"github.com/thirstiq/thirstiq-tui/internal/ui/styles"
	"github.com/thirstiq/thirstiq-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

var placeCaser = cases.Title(language.English)

// Header is the title bar. It shows the app name, and once a location is
// known, the current observation summary.
type Header struct {
	Title       string
	UserName    string
	Observation *model.Observation
	Width       int
	theme       *styles.Theme
}

// NewHeader creates a Header with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "ThirstIQ",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetUserName updates the signed-in user shown in the subtitle.
func (h *Header) SetUserName(name string) {
	h.UserName = name
}

// SetObservation updates the weather summary shown in the subtitle.
func (h *Header) SetObservation(obs *model.Observation) {
	h.Observation = obs
}

// DisplayPlace returns the observation place title-cased for display.
func (h *Header) DisplayPlace() string {
	if h.Observation == nil {
		return ""
	}
	return placeCaser.String(strings.ToLower(h.Observation.Place))
}

// View renders the header.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}
	innerWidth := width - 6

	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Aqua)

	accentStyle := lipgloss.NewStyle().
		Foreground(styles.Blue)

	brand := accentStyle.Render("~ ") +
		brandStyle.Render(h.Title) +
		accentStyle.Render(" ~")

	var subtitleParts []string

	if h.UserName != "" {
		nameStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
		subtitleParts = append(subtitleParts, nameStyle.Render(h.UserName))
	}

	if h.Observation != nil {
		placeStyle := lipgloss.NewStyle().Foreground(styles.Blue).Bold(true)
		obsStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
		summary := util.TruncateWidth(h.Observation.Summary(), innerWidth-2)
		subtitleParts = append(subtitleParts,
			placeStyle.Render(h.DisplayPlace()),
			obsStyle.Render(summary))
	}

	lines := []string{brand}
	if len(subtitleParts) > 0 {
		lines = append(lines, strings.Join(subtitleParts, "  "))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)

	return lipgloss.NewStyle().
		Width(width - 2).
		Background(styles.SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Blue).
		Align(lipgloss.Center).
		Render(content)
}
