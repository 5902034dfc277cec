// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thirstiq/thirstiq-tui/internal/commands"
	"github.com/thirstiq/thirstiq-tui/internal/model"
	"github.com/thirstiq/thirstiq-tui/internal/plan"
	"github.com/thirstiq/thirstiq-tui/internal/router"
	"github.com/thirstiq/thirstiq-tui/internal/ui/components"
	"github.com/thirstiq/thirstiq-tui/internal/ui/styles"
	"github.com/thirstiq/thirstiq-tui/internal/util"
	"github.com/thirstiq/thirstiq-tui/internal/weather"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles all Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SignInDoneMsg:
		return m.handleSignInDone(msg)

	case WeatherResultMsg:
		return m.handleWeatherResult(msg)

	case ExportDoneMsg:
		if msg.Err != nil {
			m.toasts.AddError("Export failed: " + msg.Err.Error())
		} else {
			m.toasts.AddSuccess("Exported to " + msg.Path)
		}
		return m, components.ToastTickCmd()

	case components.ToastTickMsg:
		m.toasts.TickToasts()
		if m.toasts.HasToasts() {
			return m, components.ToastTickCmd()
		}
		return m, nil

	// Slash command outcomes.
	case commands.ShowHelpMsg:
		m.showHelp = true
		return m, nil

	case commands.FetchWeatherMsg:
		return m.startFetch(msg.Place)

	case commands.LogIntakeMsg:
		m.logIntake(msg.Milliliters)
		return m, nil

	case commands.CompleteTaskMsg:
		m.completeTask(msg.Number)
		return m, nil

	case commands.ShowTasksMsg:
		m.showTasks()
		return m, nil

	case commands.ShowGoalMsg:
		m.showGoal()
		return m, nil

	case commands.ShowStatsMsg:
		m.showStats()
		return m, nil

	case commands.ThemeChangedMsg:
		m.theme.SetMode(styles.Mode(msg.Mode))
		m.toasts.AddStatus("Theme changed to " + msg.Mode)
		return m, components.ToastTickCmd()

	case commands.ExportSessionMsg:
		userName := ""
		if m.profile != nil {
			userName = m.profile.Name
		}
		return m, ExportCmd(m.session, msg.Format, userName)

	case commands.ClearTranscriptMsg:
		m.session.Messages = nil
		m.refreshViewport()
		return m, nil

	case commands.SystemMessageMsg:
		m.appendSystem(msg.Content)
		return m, nil

	case commands.ErrorMsg:
		m.toasts.AddError(msg.Title + ": " + msg.Message)
		return m, components.ToastTickCmd()
	}

	// Spinner ticks and other component messages.
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.spinner, cmd = m.spinner.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.state {
	case StateSignIn:
		return m.handleSignInKey(msg)
	case StateSigningIn:
		// Ignore input while the sign-in delay runs.
		return m, nil
	default:
		return m.handleChatKey(msg)
	}
}

func (m *Model) handleSignInKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Submit) {
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.toasts.AddWarning("Please enter your name.")
			return m, components.ToastTickCmd()
		}

		m.state = StateSigningIn
		m.welcome.SigningIn = true
		m.welcome.UserName = name
		m.statusBar.SetStatus(components.StatusSigningIn)
		return m, SignInCmd(m.gate, name)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keyMap.Clear):
		m.session.Messages = nil
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.Up), key.Matches(msg, m.keyMap.Down),
		key.Matches(msg, m.keyMap.PageUp), key.Matches(msg, m.keyMap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keyMap.Submit):
		// Input is disabled while a fetch is in flight.
		if m.fetchPending {
			return m, nil
		}
		content := m.input.Value()
		m.input.Reset()
		return m.handleSubmit(content)
	}

	// Typing is disabled while a fetch is in flight.
	if m.fetchPending {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// INPUT SUBMISSION
// =============================================================================

// handleSubmit routes one line of input: slash command or free text.
func (m *Model) handleSubmit(content string) (tea.Model, tea.Cmd) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return m, nil
	}

	if m.sessMgr != nil {
		m.sessMgr.RecordActivity()
	}

	m.appendUser(trimmed)

	if commands.IsCommand(trimmed) {
		return m.handleCommand(trimmed)
	}

	intent := router.Classify(trimmed)
	switch intent.Kind {
	case router.KindLocation:
		return m.startFetch(intent.Place)

	case router.KindVolume:
		m.logIntake(intent.Milliliters)
		return m, nil

	default:
		m.appendAssistant("Sorry, I didn't catch that. Tell me where you are, " +
			"or log a drink like \"250ml\". Type /help for commands.")
		return m, nil
	}
}

// handleCommand parses and executes a slash command.
func (m *Model) handleCommand(input string) (tea.Model, tea.Cmd) {
	result := m.parser.Parse(input)

	if result.Command == nil {
		m.appendAssistant(fmt.Sprintf("Unknown command %s. Type /help to see what I can do.",
			result.CommandName))
		return m, nil
	}

	if err := commands.ValidateArgs(result.Command, result.Args); err != nil {
		m.toasts.AddError(err.Error())
		return m, components.ToastTickCmd()
	}

	return m, result.Command.Handler(m.commandContext(), result.Args)
}

// =============================================================================
// SIGN-IN
// =============================================================================

func (m *Model) handleSignInDone(msg SignInDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.state = StateSignIn
		m.welcome.SigningIn = false
		m.statusBar.SetStatus(components.StatusReady)
		m.toasts.AddError("Sign-in failed: " + msg.Err.Error())
		return m, components.ToastTickCmd()
	}

	m.profile = msg.Profile
	m.state = StateChat
	m.statusBar.SetStatus(components.StatusReady)
	m.header.SetUserName(msg.Profile.Name)

	m.input.Reset()
	m.input.Placeholder = "Where are you? Or log a drink like \"250ml\""

	m.appendAssistant(fmt.Sprintf(
		"Hi %s! I'm ThirstIQ, your hydration assistant. "+
			"Tell me where you are and I'll build a drinking schedule from today's weather.",
		msg.Profile.Name))

	return m, textinput.Blink
}

// =============================================================================
// WEATHER
// =============================================================================

// startFetch kicks off a weather lookup and disables input until it lands.
func (m *Model) startFetch(place string) (tea.Model, tea.Cmd) {
	if m.fetchPending {
		return m, nil
	}

	m.fetchPending = true
	m.pendingPlace = place
	m.statusBar.SetStatus(components.StatusFetching)

	return m, tea.Batch(m.spinner.Start(), FetchWeatherCmd(m.fetcher, place))
}

func (m *Model) handleWeatherResult(msg WeatherResultMsg) (tea.Model, tea.Cmd) {
	m.fetchPending = false
	m.pendingPlace = ""
	m.spinner.Stop()

	if msg.Err != nil {
		m.statusBar.SetStatus(components.StatusError)
		m.appendAssistant(weatherErrorReply(msg.Place, msg.Err))
		m.toasts.AddError("Weather lookup failed")
		return m, components.ToastTickCmd()
	}

	m.statusBar.SetStatus(components.StatusReady)

	obs := msg.Observation
	goal := plan.ComputeGoal(*obs)
	tasks := m.scheduler.GenerateSchedule(goal)
	m.session.ApplyObservation(obs, goal, tasks)
	m.header.SetObservation(obs)

	m.appendAssistant(fmt.Sprintf(
		"Weather in %s: %d°C, %d%% humidity. Your daily goal is %s, "+
			"split into %d reminders. Type /tasks to see the schedule.",
		obs.Place, obs.TemperatureC, obs.HumidityPct,
		util.FormatMilliliters(goal), len(tasks)))

	return m, nil
}

// weatherErrorReply maps a lookup failure to a friendly assistant line.
func weatherErrorReply(place string, err error) string {
	switch {
	case weather.IsUnauthorized(err):
		return "I couldn't sign in to the weather service. Check the API key in your config (thirstiq status shows where it lives)."
	case weather.IsNotFound(err):
		return fmt.Sprintf("I couldn't find a place called %q. Try a nearby city name.", place)
	default:
		return "The weather service isn't answering right now. Your goal and schedule are unchanged; try again in a bit."
	}
}

// =============================================================================
// INTAKE AND TASKS
// =============================================================================

// logIntake credits an intake amount and reports progress.
func (m *Model) logIntake(ml int) {
	if ml <= 0 {
		m.appendAssistant("I couldn't read the amount. Try something like \"250ml\".")
		return
	}

	m.session.AddIntake(ml)

	if m.session.GoalMilliliters == 0 {
		m.appendAssistant(fmt.Sprintf("Logged %s. Tell me where you are and I'll set a daily goal.",
			util.FormatMilliliters(ml)))
		return
	}

	// Every log at or above the goal gets the congratulation, not just
	// the one that crosses it.
	if m.session.GoalReached() {
		m.appendAssistant(fmt.Sprintf(
			"Logged %s. That's %s of %s: you've hit your goal for today, congratulations!",
			util.FormatMilliliters(ml),
			util.FormatMilliliters(m.session.IntakeMilliliters),
			util.FormatMilliliters(m.session.GoalMilliliters)))
		return
	}

	m.appendAssistant(fmt.Sprintf("Logged %s. You're at %s of %s (%d%%).",
		util.FormatMilliliters(ml),
		util.FormatMilliliters(m.session.IntakeMilliliters),
		util.FormatMilliliters(m.session.GoalMilliliters),
		m.session.ProgressPercent()))
}

// completeTask marks the n-th reminder done and credits its amount.
func (m *Model) completeTask(number int) {
	if number < 1 || number > len(m.session.Tasks) {
		m.toasts.AddError(fmt.Sprintf("No reminder number %d. /tasks shows the schedule.", number))
		return
	}

	task := m.session.Tasks[number-1]
	delta, done := plan.CompleteTask(m.session.Tasks, task.ID)
	if !done {
		m.appendSystem(fmt.Sprintf("Reminder %d (%s) is already done.", number, task.Clock()))
		return
	}

	m.logIntake(delta)
}

// showTasks prints the numbered schedule into the transcript.
func (m *Model) showTasks() {
	if len(m.session.Tasks) == 0 {
		m.appendAssistant("No schedule yet. Tell me where you are first.")
		return
	}

	var b strings.Builder
	b.WriteString("Today's reminders:\n")
	for i, task := range m.session.Tasks {
		mark := styles.StatusIndicators.Pending
		if task.Completed {
			mark = styles.StatusIndicators.Done
		}
		fmt.Fprintf(&b, "%d. %s %s  %s\n",
			i+1, mark, task.Clock(), util.FormatMilliliters(task.Milliliters))
	}
	fmt.Fprintf(&b, "%d remaining. Complete one with /done <n>.", m.session.Tasks.Remaining())

	m.appendAssistant(b.String())
}

// showGoal explains how the current goal was derived.
func (m *Model) showGoal() {
	if m.session.GoalMilliliters == 0 || m.session.Observation == nil {
		m.appendAssistant("No goal yet. Tell me where you are first.")
		return
	}

	obs := m.session.Observation
	tempExtra := 0
	if obs.TemperatureC > plan.TemperatureThresholdC {
		tempExtra = (obs.TemperatureC - plan.TemperatureThresholdC) * plan.MillilitersPerDegree
	}
	humidityExtra := 0
	if obs.HumidityPct > plan.HumidityThresholdPct {
		humidityExtra = (obs.HumidityPct - plan.HumidityThresholdPct) * plan.MillilitersPerHumidityPoint
	}

	m.appendAssistant(fmt.Sprintf(
		"Your goal is %s: a %s base, plus %s for the heat (%d°C) and %s for the humidity (%d%%).",
		util.FormatMilliliters(m.session.GoalMilliliters),
		util.FormatMilliliters(plan.BaseGoalMilliliters),
		util.FormatMilliliters(tempExtra), obs.TemperatureC,
		util.FormatMilliliters(humidityExtra), obs.HumidityPct))
}

// showStats prints session statistics.
func (m *Model) showStats() {
	var b strings.Builder
	b.WriteString("Session stats:\n")
	if m.sessMgr != nil {
		fmt.Fprintf(&b, "- Session %s, running %s\n",
			m.sessMgr.SessionID(), m.sessMgr.Duration().Round(1e9))
	}
	fmt.Fprintf(&b, "- Messages: %d\n", len(m.session.Messages))
	if m.session.GoalMilliliters > 0 {
		fmt.Fprintf(&b, "- Intake: %s of %s (%d%%)\n",
			util.FormatMilliliters(m.session.IntakeMilliliters),
			util.FormatMilliliters(m.session.GoalMilliliters),
			m.session.ProgressPercent())
		fmt.Fprintf(&b, "- Reminders: %d of %d remaining",
			m.session.Tasks.Remaining(), len(m.session.Tasks))
	} else {
		b.WriteString("- No goal yet")
	}

	m.appendAssistant(b.String())
}

// =============================================================================
// TRANSCRIPT HELPERS
// =============================================================================

func (m *Model) appendUser(content string) {
	m.session.Append(model.NewUserMessage(content))
	m.refreshViewport()
}

func (m *Model) appendAssistant(content string) {
	m.session.Append(model.NewAssistantMessage(content))
	m.refreshViewport()
}

func (m *Model) appendSystem(content string) {
	m.session.Append(model.NewSystemMessage(content))
	m.refreshViewport()
}

// refreshViewport re-renders the transcript and scrolls to the bottom.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderer.RenderAll(m.session.Messages))
	m.viewport.GotoBottom()
}

// resize propagates new dimensions to every component.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)

	m.header.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.welcome.SetSize(width, height)
	m.bar.SetWidth(width / 2)

	panelWidth := 0
	if m.theme.GetLayoutMode() != styles.LayoutNarrow {
		panelWidth = 30
		m.taskPanel.SetSize(panelWidth, height)
	}

	transcriptWidth := width - panelWidth - 4
	if transcriptWidth < 20 {
		transcriptWidth = 20
	}
	m.renderer.SetWidth(transcriptWidth)
	m.viewport.Width = transcriptWidth
	m.viewport.Height = height - 10
	if m.viewport.Height < 5 {
		m.viewport.Height = 5
	}
	m.input.Width = transcriptWidth - 4

	m.refreshViewport()
}
