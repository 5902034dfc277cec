// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thirstiq/thirstiq-tui/internal/ui/styles"
)

// =============================================================================
// WELCOME / SIGN-IN SCREEN
// =============================================================================

const logo = `
 _____ _     _          _   ___ ___
|_   _| |_  (_)_ _ ___| |_|_ _/ _ \
  | | | ' \ | | '_(_-<|  _|| | (_) |
  |_| |_||_||_|_| /__/ \__|___\__\_\
`

// Welcome renders the sign-in screen shown before the chat starts.
type Welcome struct {
	Version   string
	UserName  string
	SigningIn bool
	Width     int
	Height    int
	theme     *styles.Theme
}

// NewWelcome creates a welcome screen.
func NewWelcome(theme *styles.Theme, version string) *Welcome {
	return &Welcome{
		Version: version,
		Width:   80,
		Height:  24,
		theme:   theme,
	}
}

// SetSize updates the screen dimensions.
func (w *Welcome) SetSize(width, height int) {
	w.Width = width
	w.Height = height
}

// View renders the welcome box centered on screen.
func (w *Welcome) View() string {
	logoView := w.theme.WelcomeLogo.Render(strings.TrimPrefix(logo, "\n"))
	versionView := w.theme.WelcomeVersion.Render("v" + w.Version)

	var status string
	if w.SigningIn {
		status = w.theme.WelcomeInfo.Render("Signing in as " + w.UserName + "...")
	} else {
		status = w.theme.WelcomeInfo.Render("Your hydration assistant") + "\n\n" +
			w.theme.WelcomePressKey.Render("Type your name and press Enter")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		logoView,
		versionView,
		"",
		status,
	)

	box := w.theme.WelcomeBox.Render(content)

	if w.Width > 0 && w.Height > 0 {
		return lipgloss.Place(
			w.Width, w.Height,
			lipgloss.Center, lipgloss.Center,
			box,
		)
	}
	return box
}
