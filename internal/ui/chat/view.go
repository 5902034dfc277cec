// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/thirstiq/thirstiq-tui/internal/ui/components"
	"github.com/thirstiq/thirstiq-tui/internal/ui/styles"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the current state.
func (m *Model) View() string {
	switch m.state {
	case StateSignIn, StateSigningIn:
		return m.signInView()
	default:
		return m.chatView()
	}
}

// signInView renders the welcome screen with the name prompt.
func (m *Model) signInView() string {
	welcome := m.welcome.View()

	if m.state == StateSignIn {
		prompt := m.theme.InputContainer.Width(m.width - 2).Render(
			m.theme.InputPrompt.Render("> ") + m.input.View())
		welcome = lipgloss.JoinVertical(lipgloss.Left, welcome, prompt)
	}

	return m.overlayToasts(welcome)
}

// chatView renders the main chat layout.
func (m *Model) chatView() string {
	if m.showHelp {
		return m.helpView()
	}

	var sections []string

	sections = append(sections, m.header.View())

	transcript := m.viewport.View()
	if m.taskPanelVisible() {
		panel := m.taskPanel.View(m.session.Tasks)
		transcript = lipgloss.JoinHorizontal(lipgloss.Top, transcript, " ", panel)
	}
	sections = append(sections, transcript)

	if bar := m.bar.View(m.session); bar != "" {
		sections = append(sections, bar)
	}

	if m.spinner.IsActive() {
		sections = append(sections, m.spinner.View())
	}

	inputView := m.theme.InputPrompt.Render("> ") + m.input.View()
	if m.fetchPending {
		inputView = m.theme.InputDisabled.Render("Waiting for the weather...")
	}
	sections = append(sections, m.theme.InputContainer.Width(m.width-2).Render(inputView))

	sections = append(sections, m.statusBar.View(m.session))

	return m.overlayToasts(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// taskPanelVisible reports whether the side panel fits the current width.
func (m *Model) taskPanelVisible() bool {
	return m.theme.GetLayoutMode() != styles.LayoutNarrow
}

// overlayToasts appends the toast stack when any toasts are active.
func (m *Model) overlayToasts(view string) string {
	if !m.toasts.HasToasts() {
		return view
	}
	stack := m.toasts.GetToasts()
	rendered := make([]string, 0, len(stack))
	for _, toast := range stack {
		rendered = append(rendered, components.RenderToast(toast, m.width))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		view, lipgloss.JoinVertical(lipgloss.Right, rendered...))
}

// =============================================================================
// HELP OVERLAY
// =============================================================================

// helpView renders the command reference as Markdown via glamour.
func (m *Model) helpView() string {
	md := m.helpMarkdown()

	style := "light"
	if m.theme.IsDark {
		style = "dark"
	}

	rendered, err := glamour.Render(md, style)
	if err != nil {
		rendered = md
	}

	box := m.theme.HelpBox.Width(m.width - 4).Render(
		m.theme.HelpTitle.Render("ThirstIQ help") + "\n" + rendered +
			"\n" + m.theme.ShortcutDesc.Render("Press any key to close."))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// helpMarkdown builds the help text from the command registry.
func (m *Model) helpMarkdown() string {
	var b strings.Builder

	b.WriteString("Tell me a **place** to get a weather-based goal, or log a drink ")
	b.WriteString("like `250ml`. Commands:\n\n")

	groups := m.registry.ByCategory()
	categories := make([]string, 0, len(groups))
	for category := range groups {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		fmt.Fprintf(&b, "## %s\n\n", category)
		cmds := groups[category]
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
		for _, cmd := range cmds {
			usage := cmd.Usage
			if usage == "" {
				usage = cmd.Name
			}
			fmt.Fprintf(&b, "- `%s` %s\n", usage, cmd.Description)
		}
		b.WriteString("\n")
	}

	return b.String()
}
