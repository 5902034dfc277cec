// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thirstiq/thirstiq-tui/internal/config"
	"github.com/thirstiq/thirstiq-tui/internal/model"
	"github.com/thirstiq/thirstiq-tui/internal/session"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command represents a slash command that can be executed.
type Command struct {
	// Name is the primary command name (e.g., "/help")
	Name string

	// Aliases are alternative names (e.g., "/h", "/?")
	Aliases []string

	// Description is shown in help
	Description string

	// Usage shows argument syntax (e.g., "/weather <place>")
	Usage string

	// Args defines the expected arguments
	Args []ArgDef

	// Handler is the function that executes the command
	Handler func(ctx *Context, args []string) tea.Cmd

	// Hidden commands don't appear in help
	Hidden bool

	// Category for grouping in help display
	Category string
}

// ArgDef defines an argument for a command.
type ArgDef struct {
	// Name of the argument
	Name string

	// Required indicates if the argument must be provided
	Required bool

	// Type determines validation behavior
	Type ArgType

	// Description explains the argument
	Description string

	// Values for enum types
	Values []string
}

// ArgType indicates what kind of validation to apply.
type ArgType int

const (
	ArgTypeString ArgType = iota // Free-form string
	ArgTypeVolume                // Milliliter amount, with or without "ml"
	ArgTypeNumber                // Plain integer (task index)
	ArgTypeEnum                  // One of predefined values
)

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds all registered commands.
type Registry struct {
	commands map[string]*Command
	aliases  map[string]*Command
}

// NewRegistry creates a new command registry with all built-in commands.
func NewRegistry() *Registry {
	r := &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]*Command),
	}
	r.registerBuiltins()
	return r
}

// Register adds a command to the registry.
func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	for _, alias := range cmd.Aliases {
		r.aliases[alias] = cmd
	}
}

// Get retrieves a command by name or alias.
func (r *Registry) Get(name string) *Command {
	if cmd, ok := r.commands[name]; ok {
		return cmd
	}
	if cmd, ok := r.aliases[name]; ok {
		return cmd
	}
	return nil
}

// All returns all registered commands.
func (r *Registry) All() []*Command {
	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	return cmds
}

// ByCategory returns visible commands grouped by category.
func (r *Registry) ByCategory() map[string][]*Command {
	result := make(map[string][]*Command)
	for _, cmd := range r.commands {
		if cmd.Hidden {
			continue
		}
		category := cmd.Category
		if category == "" {
			category = "General"
		}
		result[category] = append(result[category], cmd)
	}
	return result
}

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

func (r *Registry) registerBuiltins() {
	// Navigation commands
	r.Register(&Command{
		Name:        "/help",
		Aliases:     []string{"/h", "/?"},
		Description: "Show help and available commands",
		Category:    "Navigation",
		Handler:     handleHelp,
	})

	r.Register(&Command{
		Name:        "/quit",
		Aliases:     []string{"/q", "/exit"},
		Description: "Exit thirstiq",
		Category:    "Navigation",
		Handler:     handleQuit,
	})

	r.Register(&Command{
		Name:        "/clear",
		Description: "Clear the chat transcript",
		Category:    "Navigation",
		Handler:     handleClear,
	})

	// Hydration commands
	r.Register(&Command{
		Name:        "/weather",
		Aliases:     []string{"/w"},
		Description: "Fetch weather for a place and rebuild the schedule",
		Usage:       "/weather <place>",
		Args: []ArgDef{
			{Name: "place", Required: true, Type: ArgTypeString, Description: "City or place name"},
		},
		Category: "Hydration",
		Handler:  handleWeather,
	})

	r.Register(&Command{
		Name:        "/log",
		Aliases:     []string{"/l"},
		Description: "Log a drink",
		Usage:       "/log <amount>",
		Args: []ArgDef{
			{Name: "amount", Required: true, Type: ArgTypeVolume, Description: "Amount in milliliters, e.g. 250 or 250ml"},
		},
		Category: "Hydration",
		Handler:  handleLog,
	})

	r.Register(&Command{
		Name:        "/done",
		Aliases:     []string{"/d"},
		Description: "Complete a reminder by number",
		Usage:       "/done <n>",
		Args: []ArgDef{
			{Name: "n", Required: true, Type: ArgTypeNumber, Description: "Reminder number from /tasks"},
		},
		Category: "Hydration",
		Handler:  handleDone,
	})

	r.Register(&Command{
		Name:        "/tasks",
		Aliases:     []string{"/t"},
		Description: "Show the reminder schedule",
		Category:    "Hydration",
		Handler:     handleTasks,
	})

	r.Register(&Command{
		Name:        "/goal",
		Aliases:     []string{"/g"},
		Description: "Show the daily goal and how it was derived",
		Category:    "Hydration",
		Handler:     handleGoal,
	})

	r.Register(&Command{
		Name:        "/stats",
		Description: "Show session statistics",
		Category:    "Hydration",
		Handler:     handleStats,
	})

	// Settings commands
	r.Register(&Command{
		Name:        "/theme",
		Description: "Show or switch the color theme",
		Usage:       "/theme [auto|dark|light]",
		Args: []ArgDef{
			{Name: "mode", Required: false, Type: ArgTypeEnum,
				Values: []string{"auto", "dark", "light"}, Description: "Theme mode"},
		},
		Category: "Settings",
		Handler:  handleTheme,
	})

	r.Register(&Command{
		Name:        "/export",
		Aliases:     []string{"/e"},
		Description: "Export the session transcript and schedule",
		Usage:       "/export [markdown|json]",
		Args: []ArgDef{
			{Name: "format", Required: false, Type: ArgTypeEnum,
				Values: []string{"markdown", "md", "json"}, Description: "Export format"},
		},
		Category: "Settings",
		Handler:  handleExport,
	})
}

// =============================================================================
// HANDLER WRAPPERS
// =============================================================================

func handleHelp(ctx *Context, args []string) tea.Cmd {
	return HandleHelp(ctx, args)
}

func handleQuit(ctx *Context, args []string) tea.Cmd {
	return HandleQuit(ctx, args)
}

func handleClear(ctx *Context, args []string) tea.Cmd {
	return HandleClear(ctx, args)
}

func handleWeather(ctx *Context, args []string) tea.Cmd {
	return HandleWeather(ctx, args)
}

func handleLog(ctx *Context, args []string) tea.Cmd {
	return HandleLog(ctx, args)
}

func handleDone(ctx *Context, args []string) tea.Cmd {
	return HandleDone(ctx, args)
}

func handleTasks(ctx *Context, args []string) tea.Cmd {
	return HandleTasks(ctx, args)
}

func handleGoal(ctx *Context, args []string) tea.Cmd {
	return HandleGoal(ctx, args)
}

func handleStats(ctx *Context, args []string) tea.Cmd {
	return HandleStats(ctx, args)
}

func handleTheme(ctx *Context, args []string) tea.Cmd {
	return HandleTheme(ctx, args)
}

func handleExport(ctx *Context, args []string) tea.Cmd {
	return HandleExport(ctx, args)
}

// =============================================================================
// CONTEXT TYPE
// =============================================================================

// Context provides access to application state for command handlers.
// All fields are optional and may be nil; handlers check before use.
type Context struct {
	// Config provides access to application configuration
	Config *config.Config

	// Hydration is the current hydration session state
	Hydration *model.Session

	// Session manages session metadata (ID, activity)
	Session *session.Manager
}

// NewContext creates a command context with the given dependencies.
// All parameters can be nil.
func NewContext(cfg *config.Config, hydration *model.Session, sess *session.Manager) *Context {
	return &Context{
		Config:    cfg,
		Hydration: hydration,
		Session:   sess,
	}
}

// RecordActivity records user activity in the session manager if available.
func (c *Context) RecordActivity() {
	if c.Session != nil {
		c.Session.RecordActivity()
	}
}
