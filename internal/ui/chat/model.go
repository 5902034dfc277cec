// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thirstiq/thirstiq-tui/internal/auth"
	"github.com/thirstiq/thirstiq-tui/internal/commands"
	"github.com/thirstiq/thirstiq-tui/internal/config"
	"github.com/thirstiq/thirstiq-tui/internal/model"
	"github.com/thirstiq/thirstiq-tui/internal/plan"
	"github.com/thirstiq/thirstiq-tui/internal/session"
	"github.com/thirstiq/thirstiq-tui/internal/ui/components"
	"github.com/thirstiq/thirstiq-tui/internal/ui/styles"
	"github.com/thirstiq/thirstiq-tui/internal/weather"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat model.
type State int

const (
	StateSignIn    State = iota // Waiting for the user's name
	StateSigningIn              // Simulated sign-in delay running
	StateChat                   // Normal chat operation
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the application.
type Model struct {
	// State
	state State

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Application state
	cfg     *config.Config
	session *model.Session
	sessMgr *session.Manager
	profile *auth.Profile

	// Services
	gate      *auth.Gate
	fetcher   weather.Fetcher
	scheduler *plan.Scheduler

	// Slash commands
	registry *commands.Registry
	parser   *commands.Parser

	// UI components
	viewport  viewport.Model
	input     textinput.Model
	spinner   components.Spinner
	header    *components.Header
	statusBar *components.StatusBar
	taskPanel *components.TaskPanel
	bar       *components.HydrationBar
	renderer  *components.MessageRenderer
	welcome   *components.Welcome
	toasts    *components.ToastManager

	// Key bindings
	keyMap KeyMap

	// Weather fetch in flight. Input stays disabled until the result
	// arrives; only one fetch runs at a time.
	fetchPending bool
	pendingPlace string

	// Help overlay
	showHelp bool

	version string
}

// Options bundles the dependencies for a chat model.
type Options struct {
	Config    *config.Config
	Fetcher   weather.Fetcher
	Gate      *auth.Gate
	Scheduler *plan.Scheduler
	Session   *session.Manager
	Version   string
}

// New creates the chat model in the sign-in state.
func New(opts Options) *Model {
	theme := styles.NewThemeWithMode(styles.Mode(opts.Config.UI.Theme))

	input := textinput.New()
	input.Placeholder = "Enter your name"
	input.CharLimit = 200
	input.Width = 50
	input.Focus()

	// A configured profile name pre-fills the sign-in prompt.
	if opts.Config.Profile.Name != "" {
		input.SetValue(opts.Config.Profile.Name)
	}

	vp := viewport.New(80, 20)

	registry := commands.NewRegistry()

	m := &Model{
		state:     StateSignIn,
		theme:     theme,
		width:     80,
		height:    24,
		cfg:       opts.Config,
		session:   model.NewSession(),
		sessMgr:   opts.Session,
		gate:      opts.Gate,
		fetcher:   opts.Fetcher,
		scheduler: opts.Scheduler,
		registry:  registry,
		parser:    commands.NewParser(registry),
		viewport:  vp,
		input:     input,
		spinner:   components.NewWeatherSpinner(),
		header:    components.NewHeader(theme),
		statusBar: components.NewStatusBar(theme),
		taskPanel: components.NewTaskPanel(theme),
		bar:       components.NewHydrationBar(theme),
		renderer:  components.NewMessageRenderer(theme),
		welcome:   components.NewWelcome(theme, opts.Version),
		toasts:    components.NewToastManager(),
		keyMap:    DefaultKeyMap(),
		version:   opts.Version,
	}

	m.renderer.SetShowTimestamps(opts.Config.UI.ShowTimestamps)

	return m
}

// Init starts the Bubble Tea program.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// State returns the current state, for tests and the status line.
func (m *Model) State() State {
	return m.state
}

// Session exposes the hydration session, for tests and export.
func (m *Model) Session() *model.Session {
	return m.session
}

// commandContext builds the context passed to slash command handlers.
func (m *Model) commandContext() *commands.Context {
	return commands.NewContext(m.cfg, m.session, m.sessMgr)
}
