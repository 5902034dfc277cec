// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode selects the palette the theme renders with.
type Mode string

const (
	ModeAuto  Mode = "auto"  // follow the terminal background
	ModeDark  Mode = "dark"  // force the dark palette
	ModeLight Mode = "light" // force the light palette
)

// NextMode cycles auto -> dark -> light -> auto, for the /theme command.
func NextMode(m Mode) Mode {
	switch m {
	case ModeAuto:
		return ModeDark
	case ModeDark:
		return ModeLight
	default:
		return ModeAuto
	}
}

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	Mode         Mode
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	HeaderPlace    lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	SystemBubble    lipgloss.Style
	MessageMeta     lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	InputDisabled    lipgloss.Style

	// ==========================================================================
	// TASK PANEL STYLES
	// ==========================================================================

	TaskPanel     lipgloss.Style
	TaskPanelTitle lipgloss.Style
	TaskPending   lipgloss.Style
	TaskDone      lipgloss.Style
	TaskTime      lipgloss.Style
	TaskVolume    lipgloss.Style

	// ==========================================================================
	// PROGRESS BAR STYLES
	// ==========================================================================

	ProgressLabel    lipgloss.Style
	ProgressFilled   lipgloss.Style
	ProgressEmpty    lipgloss.Style
	ProgressComplete lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatusGoal   lipgloss.Style
	StatusIntake lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// SPINNER AND LOADING STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	FetchingText lipgloss.Style

	// ==========================================================================
	// TOAST STYLES
	// ==========================================================================

	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style

	// ==========================================================================
	// WELCOME / SIGN-IN SCREEN STYLES
	// ==========================================================================

	WelcomeBox      lipgloss.Style
	WelcomeLogo     lipgloss.Style
	WelcomeVersion  lipgloss.Style
	WelcomeInfo     lipgloss.Style
	WelcomePressKey lipgloss.Style

	// ==========================================================================
	// HELP OVERLAY STYLES
	// ==========================================================================

	HelpBox   lipgloss.Style
	HelpTitle lipgloss.Style
}

// NewTheme creates a theme in auto mode, following the terminal background.
func NewTheme() *Theme {
	return NewThemeWithMode(ModeAuto)
}

// NewThemeWithMode creates a theme with the given palette mode.
func NewThemeWithMode(mode Mode) *Theme {
	colorProfile := termenv.ColorProfile()
	t := &Theme{
		ColorProfile: colorProfile,
		HasTrueColor: colorProfile == termenv.TrueColor,
	}
	t.SetMode(mode)
	return t
}

// SetMode switches the palette and re-derives every style.
func (t *Theme) SetMode(mode Mode) {
	t.Mode = mode
	switch mode {
	case ModeDark:
		t.IsDark = true
		lipgloss.SetHasDarkBackground(true)
	case ModeLight:
		t.IsDark = false
		lipgloss.SetHasDarkBackground(false)
	default:
		t.IsDark = termenv.HasDarkBackground()
	}
	t.initStyles()
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Aqua).
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Blue).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Aqua)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.HeaderPlace = lipgloss.NewStyle().
		Bold(true).
		Foreground(Blue)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(AssistantBubbleFg).
		Background(AssistantBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.SystemBubble = lipgloss.NewStyle().
		Foreground(SystemBubbleFg).
		Background(SystemBubbleBg).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(SystemBubbleBorder).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.MessageMeta = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderBottom(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Aqua).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.InputDisabled = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Faint(true)

	// Task panel
	t.TaskPanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.TaskPanelTitle = lipgloss.NewStyle().
		Foreground(Aqua).
		Bold(true)

	t.TaskPending = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.TaskDone = lipgloss.NewStyle().
		Foreground(TextMuted).
		Strikethrough(true)

	t.TaskTime = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Width(6)

	t.TaskVolume = lipgloss.NewStyle().
		Foreground(Blue).
		Bold(true)

	// Progress bar
	t.ProgressLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.ProgressFilled = lipgloss.NewStyle().
		Foreground(Blue)

	t.ProgressEmpty = lipgloss.NewStyle().
		Foreground(Overlay)

	t.ProgressComplete = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.StatusGoal = lipgloss.NewStyle().
		Foreground(Aqua).
		Bold(true)

	t.StatusIntake = lipgloss.NewStyle().
		Foreground(Blue).
		Bold(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Aqua).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Spinner and loading
	t.Spinner = lipgloss.NewStyle().
		Foreground(Aqua)

	t.FetchingText = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Toasts
	t.ToastError = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Rose).
		Foreground(TextPrimary).
		Padding(0, 1)

	t.ToastWarning = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Amber).
		Foreground(TextPrimary).
		Padding(0, 1)

	t.ToastInfo = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Aqua).
		Foreground(TextPrimary).
		Padding(0, 1)

	t.ToastSuccess = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Emerald).
		Foreground(TextPrimary).
		Padding(0, 1)

	// Welcome / sign-in screen
	t.WelcomeBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Blue).
		Padding(2, 4).
		Align(lipgloss.Center)

	t.WelcomeLogo = lipgloss.NewStyle().
		Foreground(Aqua).
		Bold(true)

	t.WelcomeVersion = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.WelcomeInfo = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.WelcomePressKey = lipgloss.NewStyle().
		Foreground(Blue).
		Blink(true)

	// Help overlay
	t.HelpBox = lipgloss.NewStyle().
		Background(Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Aqua).
		Padding(1, 2)

	t.HelpTitle = lipgloss.NewStyle().
		Foreground(Aqua).
		Bold(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}
