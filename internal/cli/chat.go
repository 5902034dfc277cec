// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Plain-terminal chat command handler for the thirstiq CLI.
//
// Handles the "thirstiq chat" command: the same sign-in, classifier and
// planner loop as the TUI, line-oriented on stdin/stdout. No alternate
// screen, so it works over ssh, in pipes and in minimal terminals.
//
// Interactive commands (during chat):
//   /help, /h           Show available commands
//   /tasks, /t          Show today's reminders
//   /done <n>, /d       Complete reminder n
//   /log <ml>, /l       Log a drink
//   /goal, /g           Explain the goal derivation
//   /stats              Session statistics
//   /export [format]    Write transcript to markdown or json
//   /clear              Clear the transcript
//   /quit, /q           Exit chat
//   Ctrl+D              Exit chat
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/thirstiq/thirstiq-tui/internal/auth"
	"github.com/thirstiq/thirstiq-tui/internal/config"
	"github.com/thirstiq/thirstiq-tui/internal/export"
	"github.com/thirstiq/thirstiq-tui/internal/model"
	"github.com/thirstiq/thirstiq-tui/internal/plan"
	"github.com/thirstiq/thirstiq-tui/internal/router"
	"github.com/thirstiq/thirstiq-tui/internal/session"
	"github.com/thirstiq/thirstiq-tui/internal/ui/styles"
	"github.com/thirstiq/thirstiq-tui/internal/util"
	"github.com/thirstiq/thirstiq-tui/internal/weather"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Aqua).
			Bold(true)

	assistantStyle = lipgloss.NewStyle().
			Foreground(styles.Aqua)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ReplInput provides input history and line editing for the plain chat mode.
type ReplInput struct {
	line        *liner.State
	historyFile string
}

// NewReplInput creates a ReplInput with history loaded from the config dir.
func NewReplInput() *ReplInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	r := &ReplInput{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	r.loadHistory()
	return r
}

func (r *ReplInput) loadHistory() {
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line with the given prompt. Non-empty lines are added
// to the arrow-key history.
func (r *ReplInput) ReadInput(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// saveHistory persists history with owner-only permissions.
func (r *ReplInput) saveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	r.line.WriteHistory(f)
}

// Close saves history and restores the terminal.
func (r *ReplInput) Close() {
	r.saveHistory()
	r.line.Close()
}

// =============================================================================
// REPL SESSION
// =============================================================================

// Repl holds the state for one plain-terminal chat session. All replies are
// written to Out, which tests point at a buffer.
type Repl struct {
	Config    *config.Config
	Fetcher   weather.Fetcher
	Scheduler *plan.Scheduler
	Session   *model.Session
	Manager   *session.Manager
	Profile   *auth.Profile
	Out       io.Writer
	Quiet     bool
}

// NewRepl assembles a REPL session from configuration.
func NewRepl(cfg *config.Config, out io.Writer) *Repl {
	return &Repl{
		Config: cfg,
		Fetcher: weather.NewClientWithConfig(&weather.ClientConfig{
			APIKey:            cfg.Weather.APIKey,
			BaseURL:           cfg.Weather.BaseURL,
			Timeout:           time.Duration(cfg.Weather.TimeoutSecs) * time.Second,
			RequestsPerMinute: cfg.Weather.RequestsPerMinute,
		}),
		Scheduler: plan.NewScheduler(),
		Session:   model.NewSession(),
		Manager:   session.NewManager(),
		Out:       out,
	}
}

// HandleChatCommand handles the "chat" command.
func HandleChatCommand(args Args) error {
	if !IsTTY() {
		return fmt.Errorf("chat mode needs an interactive terminal (stdin is not a TTY)")
	}

	cfg := config.Global()
	repl := NewRepl(cfg, os.Stdout)
	repl.Quiet = args.Quiet

	input := NewReplInput()
	defer input.Close()

	if !args.Quiet {
		fmt.Fprintln(repl.Out, welcomeStyle.Render("ThirstIQ")+
			infoStyle.Render("  hydration assistant (plain mode, /help for commands)"))
	}

	name := strings.TrimSpace(args.Name)
	if name == "" {
		name = strings.TrimSpace(cfg.Profile.Name)
	}
	for name == "" {
		entered, err := input.ReadInput(promptStyle.Render("Your name: "))
		if err != nil {
			return replExitError(err)
		}
		name = strings.TrimSpace(entered)
	}

	if err := repl.SignIn(context.Background(), name); err != nil {
		return err
	}

	for {
		line, err := input.ReadInput(promptStyle.Render("you> "))
		if err != nil {
			if replEOF(err) {
				repl.printGoodbye()
				return nil
			}
			return replExitError(err)
		}

		if repl.HandleLine(line) {
			repl.printGoodbye()
			return nil
		}
	}
}

func replEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted)
}

func replExitError(err error) error {
	if replEOF(err) {
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}

// SignIn runs the gate and greets the user.
func (r *Repl) SignIn(ctx context.Context, name string) error {
	delay := time.Duration(r.Config.Profile.SignInDelayMillis) * time.Millisecond
	if !r.Quiet {
		fmt.Fprintln(r.Out, infoStyle.Render(fmt.Sprintf("Signing in as %s...", name)))
	}

	profile, err := auth.NewGate(delay).SignIn(ctx, name)
	if err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}
	r.Profile = profile

	r.reply(fmt.Sprintf("Hi %s! Tell me where you are and I'll build a drinking "+
		"schedule from today's weather, or log a drink like \"250ml\".", profile.Name))
	return nil
}

// HandleLine processes one line of input. Returns true when the session
// should end.
func (r *Repl) HandleLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	r.Manager.RecordActivity()
	r.Session.Append(model.NewUserMessage(trimmed))

	if strings.HasPrefix(trimmed, "/") {
		return r.handleCommand(trimmed)
	}

	intent := router.Classify(trimmed)
	switch intent.Kind {
	case router.KindLocation:
		r.fetchWeather(intent.Place)
	case router.KindVolume:
		r.logIntake(intent.Milliliters)
	default:
		r.reply("Sorry, I didn't catch that. Tell me where you are, " +
			"or log a drink like \"250ml\". Type /help for commands.")
	}
	return false
}

// handleCommand dispatches a slash command. Returns true on /quit.
func (r *Repl) handleCommand(input string) bool {
	fields := strings.Fields(input)
	name := strings.TrimPrefix(fields[0], "/")
	args := fields[1:]

	switch name {
	case "quit", "q", "exit":
		return true

	case "help", "h", "?":
		r.printHelp()

	case "tasks", "t":
		r.showTasks()

	case "done", "d":
		if len(args) == 0 {
			r.warn("Usage: /done <n>")
			break
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			r.warn("Usage: /done <n>, where n is a reminder number from /tasks")
			break
		}
		r.completeTask(n)

	case "log", "l":
		if len(args) == 0 {
			r.warn("Usage: /log <amount>, e.g. /log 250ml")
			break
		}
		ml, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(args[0]), "ml"))
		if err != nil || ml <= 0 {
			r.warn("I couldn't read that amount. Try /log 250ml")
			break
		}
		r.logIntake(ml)

	case "weather", "w":
		if len(args) == 0 {
			r.warn("Usage: /weather <place>")
			break
		}
		r.fetchWeather(strings.Join(args, " "))

	case "goal", "g":
		r.showGoal()

	case "stats":
		r.showStats()

	case "export", "e":
		format := "markdown"
		if len(args) > 0 {
			format = strings.ToLower(args[0])
		}
		r.exportTranscript(format)

	case "clear":
		r.Session.Messages = nil
		fmt.Fprintln(r.Out, infoStyle.Render("Transcript cleared."))

	default:
		r.reply(fmt.Sprintf("Unknown command /%s. Type /help to see what I can do.", name))
	}
	return false
}

// =============================================================================
// WEATHER AND INTAKE
// =============================================================================

// fetchWeather looks up a place synchronously and installs the goal and
// schedule on success. The REPL has no spinner; it prints one status line
// and blocks on the request.
func (r *Repl) fetchWeather(place string) {
	r.info(fmt.Sprintf("Checking the weather in %s...", place))

	timeout := time.Duration(r.Config.Weather.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	obs, err := r.Fetcher.Current(ctx, place)
	if err != nil {
		r.replyWeatherError(place, err)
		return
	}

	goal := plan.ComputeGoal(*obs)
	tasks := r.Scheduler.GenerateSchedule(goal)
	r.Session.ApplyObservation(obs, goal, tasks)

	r.reply(fmt.Sprintf("Weather in %s: %d°C, %d%% humidity. Your daily goal is %s, "+
		"split into %d reminders. Type /tasks to see the schedule.",
		obs.Place, obs.TemperatureC, obs.HumidityPct,
		util.FormatMilliliters(goal), len(tasks)))
}

func (r *Repl) replyWeatherError(place string, err error) {
	switch {
	case weather.IsUnauthorized(err):
		r.fail("I couldn't sign in to the weather service. Check the API key in your config (thirstiq status shows where it lives).")
	case weather.IsNotFound(err):
		r.fail(fmt.Sprintf("I couldn't find a place called %q. Try a nearby city name.", place))
	default:
		r.fail("The weather service isn't answering right now. Your goal and schedule are unchanged; try again in a bit.")
	}
}

func (r *Repl) logIntake(ml int) {
	if ml <= 0 {
		r.reply("I couldn't read the amount. Try something like \"250ml\".")
		return
	}

	r.Session.AddIntake(ml)

	switch {
	case r.Session.GoalMilliliters == 0:
		r.reply(fmt.Sprintf("Logged %s. Tell me where you are and I'll set a daily goal.",
			util.FormatMilliliters(ml)))
	// Every log at or above the goal congratulates, not just the crossing.
	case r.Session.GoalReached():
		r.reply(fmt.Sprintf("Logged %s. That's %s of %s: you've hit your goal for today, congratulations!",
			util.FormatMilliliters(ml),
			util.FormatMilliliters(r.Session.IntakeMilliliters),
			util.FormatMilliliters(r.Session.GoalMilliliters)))
	default:
		r.reply(fmt.Sprintf("Logged %s. You're at %s of %s (%d%%).",
			util.FormatMilliliters(ml),
			util.FormatMilliliters(r.Session.IntakeMilliliters),
			util.FormatMilliliters(r.Session.GoalMilliliters),
			r.Session.ProgressPercent()))
	}
}

func (r *Repl) completeTask(number int) {
	if number < 1 || number > len(r.Session.Tasks) {
		r.warn(fmt.Sprintf("No reminder number %d. /tasks shows the schedule.", number))
		return
	}

	task := r.Session.Tasks[number-1]
	delta, done := plan.CompleteTask(r.Session.Tasks, task.ID)
	if !done {
		r.info(fmt.Sprintf("Reminder %d (%s) is already done.", number, task.Clock()))
		return
	}
	r.logIntake(delta)
}

// =============================================================================
// OUTPUT
// =============================================================================

func (r *Repl) showTasks() {
	if len(r.Session.Tasks) == 0 {
		r.reply("No schedule yet. Tell me where you are first.")
		return
	}

	var b strings.Builder
	b.WriteString("Today's reminders:\n")
	for i, task := range r.Session.Tasks {
		mark := styles.StatusIndicators.Pending
		if task.Completed {
			mark = styles.StatusIndicators.Done
		}
		fmt.Fprintf(&b, "%d. %s %s  %s\n",
			i+1, mark, task.Clock(), util.FormatMilliliters(task.Milliliters))
	}
	fmt.Fprintf(&b, "%d remaining. Complete one with /done <n>.", r.Session.Tasks.Remaining())
	r.reply(b.String())
}

func (r *Repl) showGoal() {
	if r.Session.GoalMilliliters == 0 || r.Session.Observation == nil {
		r.reply("No goal yet. Tell me where you are first.")
		return
	}

	obs := r.Session.Observation
	tempExtra := 0
	if obs.TemperatureC > plan.TemperatureThresholdC {
		tempExtra = (obs.TemperatureC - plan.TemperatureThresholdC) * plan.MillilitersPerDegree
	}
	humidityExtra := 0
	if obs.HumidityPct > plan.HumidityThresholdPct {
		humidityExtra = (obs.HumidityPct - plan.HumidityThresholdPct) * plan.MillilitersPerHumidityPoint
	}

	r.reply(fmt.Sprintf("Your goal is %s: a %s base, plus %s for the heat (%d°C) and %s for the humidity (%d%%).",
		util.FormatMilliliters(r.Session.GoalMilliliters),
		util.FormatMilliliters(plan.BaseGoalMilliliters),
		util.FormatMilliliters(tempExtra), obs.TemperatureC,
		util.FormatMilliliters(humidityExtra), obs.HumidityPct))
}

func (r *Repl) showStats() {
	var b strings.Builder
	b.WriteString("Session stats:\n")
	fmt.Fprintf(&b, "- Session %s, running %s\n",
		r.Manager.SessionID(), r.Manager.Duration().Round(time.Second))
	fmt.Fprintf(&b, "- Messages: %d\n", len(r.Session.Messages))
	if r.Session.GoalMilliliters > 0 {
		fmt.Fprintf(&b, "- Intake: %s of %s (%d%%)\n",
			util.FormatMilliliters(r.Session.IntakeMilliliters),
			util.FormatMilliliters(r.Session.GoalMilliliters),
			r.Session.ProgressPercent())
		fmt.Fprintf(&b, "- Reminders: %d of %d remaining",
			r.Session.Tasks.Remaining(), len(r.Session.Tasks))
	} else {
		b.WriteString("- No goal yet")
	}
	r.reply(b.String())
}

func (r *Repl) exportTranscript(format string) {
	opts := export.DefaultOptions()
	if r.Profile != nil {
		opts.UserName = r.Profile.Name
	}
	if dir, err := config.ConfigDir(); err == nil {
		opts.OutputDir = dir
	}

	exporter, err := export.ForFormat(format, opts)
	if err != nil {
		r.warn(fmt.Sprintf("Unknown export format %q. Use markdown or json.", format))
		return
	}

	path, err := export.ExportToFile(r.Session, exporter, opts)
	if err != nil {
		r.fail("Export failed: " + err.Error())
		return
	}
	r.info("Transcript written to " + path)
}

func (r *Repl) printHelp() {
	r.reply("Commands: /tasks, /done <n>, /log <ml>, /weather <place>, /goal, " +
		"/stats, /export [markdown|json], /clear, /quit. " +
		"Or just tell me where you are, or log a drink like \"250ml\".")
}

func (r *Repl) printGoodbye() {
	if r.Quiet {
		return
	}
	if r.Session.GoalMilliliters > 0 {
		fmt.Fprintln(r.Out, infoStyle.Render(fmt.Sprintf("Bye! You drank %s of %s today.",
			util.FormatMilliliters(r.Session.IntakeMilliliters),
			util.FormatMilliliters(r.Session.GoalMilliliters))))
		return
	}
	fmt.Fprintln(r.Out, infoStyle.Render("Bye!"))
}

// reply writes an assistant message to the transcript and the terminal.
func (r *Repl) reply(text string) {
	r.Session.Append(model.NewAssistantMessage(text))
	fmt.Fprintln(r.Out, assistantStyle.Render("thirstiq> ")+text)
}

func (r *Repl) info(text string) {
	r.Session.Append(model.NewSystemMessage(text))
	fmt.Fprintln(r.Out, infoStyle.Render(text))
}

func (r *Repl) warn(text string) {
	fmt.Fprintln(r.Out, warningStyle.Render(text))
}

func (r *Repl) fail(text string) {
	r.Session.Append(model.NewAssistantMessage(text))
	fmt.Fprintln(r.Out, errorStyle.Render(text))
}
