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
// TASK PANEL COMPONENT
// =============================================================================

// TaskPanel renders the day's reminder schedule beside the chat.
type TaskPanel struct {
	theme  *styles.Theme
	width  int
	height int

	showCompleted bool
}

// NewTaskPanel creates a task panel.
func NewTaskPanel(theme *styles.Theme) *TaskPanel {
	return &TaskPanel{
		theme:         theme,
		showCompleted: true,
	}
}

// SetSize sets the component dimensions.
func (p *TaskPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetShowCompleted sets whether completed reminders stay visible.
func (p *TaskPanel) SetShowCompleted(show bool) {
	p.showCompleted = show
}

// View renders the reminder schedule.
func (p *TaskPanel) View(batch model.TaskBatch) string {
	if len(batch) == 0 {
		return p.renderEmpty()
	}

	title := p.theme.TaskPanelTitle.Render("Today's reminders")

	var rows []string
	for _, task := range batch {
		if task.Completed && !p.showCompleted {
			continue
		}
		rows = append(rows, p.renderTask(task))
	}

	footer := p.theme.ShortcutDesc.Render(
		fmt.Sprintf("%d of %d remaining", batch.Remaining(), len(batch)))

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{title, ""}, append(rows, "", footer)...)...)

	return p.theme.TaskPanel.Width(p.innerWidth()).Render(content)
}

// renderTask renders a single reminder line.
func (p *TaskPanel) renderTask(task model.IntakeTask) string {
	indicator := styles.StatusIndicators.Pending
	lineStyle := p.theme.TaskPending
	if task.Completed {
		indicator = styles.StatusIndicators.Done
		lineStyle = p.theme.TaskDone
	}

	when := p.theme.TaskTime.Render(task.Clock())
	volume := p.theme.TaskVolume.Render(util.FormatMilliliters(task.Milliliters))

	line := fmt.Sprintf("%s %s %s", indicator, when, volume)
	return lineStyle.Render(util.TruncateWidth(line, p.innerWidth()-2))
}

// renderEmpty renders the placeholder shown before a location is set.
func (p *TaskPanel) renderEmpty() string {
	title := p.theme.TaskPanelTitle.Render("Today's reminders")
	hint := p.theme.ShortcutDesc.Render("Tell me where you are to get a schedule.")

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", hint)
	return p.theme.TaskPanel.Width(p.innerWidth()).Render(content)
}

func (p *TaskPanel) innerWidth() int {
	if p.width < 24 {
		return 24
	}
	return p.width
}

// SummaryLine renders a compact one-line schedule summary for narrow layouts.
func (p *TaskPanel) SummaryLine(batch model.TaskBatch) string {
	if len(batch) == 0 {
		return ""
	}
	var parts []string
	for _, task := range batch {
		mark := " "
		if task.Completed {
			mark = "x"
		}
		parts = append(parts, fmt.Sprintf("[%s]%s", mark, task.Clock()))
	}
	return strings.Join(parts, " ")
}
