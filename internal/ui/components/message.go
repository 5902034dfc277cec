// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thirstiq/thirstiq-tui/internal/model"
	"github.com/thirstiq/thirstiq-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLE RENDERING
// =============================================================================

// MessageRenderer renders chat messages as styled bubbles.
type MessageRenderer struct {
	theme          *styles.Theme
	width          int
	showTimestamps bool
}

// NewMessageRenderer creates a message renderer.
func NewMessageRenderer(theme *styles.Theme) *MessageRenderer {
	return &MessageRenderer{
		theme: theme,
		width: 80,
	}
}

// SetWidth updates the available width.
func (r *MessageRenderer) SetWidth(width int) {
	r.width = width
}

// SetShowTimestamps toggles timestamp display under each bubble.
func (r *MessageRenderer) SetShowTimestamps(show bool) {
	r.showTimestamps = show
}

// Render renders a single message as a bubble aligned by role.
func (r *MessageRenderer) Render(msg *model.Message) string {
	maxBubble := r.width * 3 / 4
	if maxBubble < 20 {
		maxBubble = 20
	}

	var bubble lipgloss.Style
	var align lipgloss.Position

	switch msg.Role {
	case model.RoleUser:
		bubble = r.theme.UserBubble
		align = lipgloss.Right
	case model.RoleAssistant:
		bubble = r.theme.AssistantBubble
		align = lipgloss.Left
	default:
		bubble = r.theme.SystemBubble
		align = lipgloss.Center
	}

	name := r.theme.MessageMeta.Render(msg.Role.DisplayName())
	body := bubble.MaxWidth(maxBubble).Render(msg.Content)

	lines := []string{name, body}
	if r.showTimestamps {
		lines = append(lines, r.theme.MessageMeta.Render(msg.Timestamp.Format("15:04")))
	}

	block := lipgloss.JoinVertical(align, lines...)

	return lipgloss.PlaceHorizontal(r.width, align, block)
}

// RenderAll renders the full transcript, one bubble per message.
func (r *MessageRenderer) RenderAll(msgs []*model.Message) string {
	if len(msgs) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		rendered = append(rendered, r.Render(msg))
	}
	return strings.Join(rendered, "\n\n")
}
