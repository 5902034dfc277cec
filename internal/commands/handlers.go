// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// These messages are sent by command handlers to update the application state.

// ShowHelpMsg triggers the help overlay.
type ShowHelpMsg struct{}

// FetchWeatherMsg requests a weather lookup for a place.
type FetchWeatherMsg struct {
	Place string
}

// LogIntakeMsg logs a drink of the given size.
type LogIntakeMsg struct {
	Milliliters int
}

// CompleteTaskMsg completes the reminder at the given 1-based position.
type CompleteTaskMsg struct {
	Number int
}

// ShowTasksMsg triggers showing the reminder schedule in the transcript.
type ShowTasksMsg struct{}

// ShowGoalMsg triggers showing the goal derivation.
type ShowGoalMsg struct{}

// ShowStatsMsg triggers showing session statistics.
type ShowStatsMsg struct{}

// ThemeChangedMsg switches the color theme.
type ThemeChangedMsg struct {
	Mode string // "auto", "dark", "light"
}

// ExportSessionMsg triggers exporting the session.
type ExportSessionMsg struct {
	Format string // "markdown" or "json"
}

// ClearTranscriptMsg triggers clearing the transcript.
type ClearTranscriptMsg struct{}

// SystemMessageMsg displays an informational system message.
type SystemMessageMsg struct {
	Content string
}

// ErrorMsg displays a command error.
type ErrorMsg struct {
	Title   string
	Message string
	Tip     string
}

// =============================================================================
// HANDLERS
// =============================================================================

// HandleHelp shows the help overlay.
func HandleHelp(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg {
		return ShowHelpMsg{}
	}
}

// HandleQuit exits the application.
func HandleQuit(ctx *Context, args []string) tea.Cmd {
	return tea.Quit
}

// HandleClear clears the transcript.
func HandleClear(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg {
		return ClearTranscriptMsg{}
	}
}

// HandleWeather requests a weather lookup for the given place.
func HandleWeather(ctx *Context, args []string) tea.Cmd {
	if len(args) == 0 {
		return func() tea.Msg {
			return ErrorMsg{
				Title:   "Missing place",
				Message: "Tell me where you are.",
				Tip:     "Usage: /weather <place>",
			}
		}
	}
	place := strings.Join(args, " ")
	return func() tea.Msg {
		return FetchWeatherMsg{Place: place}
	}
}

// HandleLog logs a drink. Accepts "250" or "250ml".
func HandleLog(ctx *Context, args []string) tea.Cmd {
	if len(args) == 0 {
		return func() tea.Msg {
			return ErrorMsg{
				Title:   "Missing amount",
				Message: "How much did you drink?",
				Tip:     "Usage: /log 250 or /log 250ml",
			}
		}
	}

	ml, err := ParseVolumeArg(args[0])
	if err != nil {
		return func() tea.Msg {
			return ErrorMsg{
				Title:   "Invalid amount",
				Message: fmt.Sprintf("Could not read %q as a volume.", args[0]),
				Tip:     "Use a number of milliliters, e.g. /log 250",
			}
		}
	}
	if ml <= 0 {
		return func() tea.Msg {
			return ErrorMsg{
				Title:   "Invalid amount",
				Message: "The amount must be positive.",
				Tip:     "Use a number of milliliters, e.g. /log 250",
			}
		}
	}

	return func() tea.Msg {
		return LogIntakeMsg{Milliliters: ml}
	}
}

// HandleDone completes a reminder by its number from /tasks.
func HandleDone(ctx *Context, args []string) tea.Cmd {
	if len(args) == 0 {
		return func() tea.Msg {
			return ErrorMsg{
				Title:   "Missing reminder number",
				Message: "Which reminder did you finish?",
				Tip:     "Usage: /done <n> where n comes from /tasks",
			}
		}
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return func() tea.Msg {
			return ErrorMsg{
				Title:   "Invalid reminder number",
				Message: fmt.Sprintf("%q is not a reminder number.", args[0]),
				Tip:     "Use the number shown by /tasks",
			}
		}
	}

	return func() tea.Msg {
		return CompleteTaskMsg{Number: n}
	}
}

// HandleTasks shows the reminder schedule.
func HandleTasks(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg {
		return ShowTasksMsg{}
	}
}

// HandleGoal shows the goal derivation.
func HandleGoal(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg {
		return ShowGoalMsg{}
	}
}

// HandleStats shows session statistics.
func HandleStats(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg {
		return ShowStatsMsg{}
	}
}

// HandleTheme shows or switches the theme.
func HandleTheme(ctx *Context, args []string) tea.Cmd {
	if len(args) == 0 {
		current := "auto"
		if ctx != nil && ctx.Config != nil {
			current = ctx.Config.UI.Theme
		}
		return func() tea.Msg {
			return SystemMessageMsg{Content: "Current theme: " + current}
		}
	}

	mode := strings.ToLower(args[0])
	switch mode {
	case "auto", "dark", "light":
		if ctx != nil && ctx.Config != nil {
			ctx.Config.UI.Theme = mode
		}
		return func() tea.Msg {
			return ThemeChangedMsg{Mode: mode}
		}
	default:
		return func() tea.Msg {
			return ErrorMsg{
				Title:   "Invalid theme",
				Message: fmt.Sprintf("Unknown theme: %s", mode),
				Tip:     "Valid themes: auto, dark, light",
			}
		}
	}
}

// HandleExport exports the session transcript and schedule.
func HandleExport(ctx *Context, args []string) tea.Cmd {
	format := "markdown"
	if len(args) > 0 {
		format = strings.ToLower(args[0])
		if format == "md" {
			format = "markdown"
		}
	}

	switch format {
	case "markdown", "json":
	default:
		return func() tea.Msg {
			return ErrorMsg{
				Title:   "Invalid export format",
				Message: fmt.Sprintf("Unknown format: %s", format),
				Tip:     "Supported formats: markdown, json",
			}
		}
	}

	return func() tea.Msg {
		return ExportSessionMsg{Format: format}
	}
}

// =============================================================================
// ARGUMENT HELPERS
// =============================================================================

// ParseVolumeArg parses a milliliter amount, with or without an "ml" suffix.
func ParseVolumeArg(arg string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(arg))
	s = strings.TrimSuffix(s, "ml")
	s = strings.TrimSpace(s)
	return strconv.Atoi(s)
}
