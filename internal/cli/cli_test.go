// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/thirstiq/thirstiq-tui/internal/config"
	"github.com/thirstiq/thirstiq-tui/internal/model"
	"github.com/thirstiq/thirstiq-tui/internal/plan"
	"github.com/thirstiq/thirstiq-tui/internal/session"
	"github.com/thirstiq/thirstiq-tui/internal/weather"
)

// =============================================================================
// ARGUMENT PARSING
// =============================================================================

func TestParseCommands(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"no args defaults to TUI", nil, CmdTUI},
		{"explicit tui", []string{"tui"}, CmdTUI},
		{"chat", []string{"chat"}, CmdChat},
		{"repl alias", []string{"repl"}, CmdChat},
		{"status", []string{"status"}, CmdStatus},
		{"status alias", []string{"s"}, CmdStatus},
		{"version", []string{"version"}, CmdVersion},
		{"version flag", []string{"--version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"help flag", []string{"-h"}, CmdHelp},
		{"unknown word falls back to TUI", []string{"paris"}, CmdTUI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Parse(tt.argv)
			if got != tt.want {
				t.Errorf("Parse(%v) = %v, want %v", tt.argv, got, tt.want)
			}
		})
	}
}

func TestParseGlobalFlags(t *testing.T) {
	cmd, args := Parse([]string{"--name", "Sam", "--json", "-q", "status"})
	if cmd != CmdStatus {
		t.Errorf("command = %v, want CmdStatus", cmd)
	}
	if args.Name != "Sam" {
		t.Errorf("Name = %q, want %q", args.Name, "Sam")
	}
	if !args.JSON || !args.Quiet {
		t.Errorf("JSON = %v, Quiet = %v, want both true", args.JSON, args.Quiet)
	}
}

func TestParseEqualsFlagForms(t *testing.T) {
	_, args := Parse([]string{"--name=Sam", "--config=/tmp/alt.toml", "chat"})
	if args.Name != "Sam" {
		t.Errorf("Name = %q, want %q", args.Name, "Sam")
	}
	if args.ConfigPath != "/tmp/alt.toml" {
		t.Errorf("ConfigPath = %q, want /tmp/alt.toml", args.ConfigPath)
	}
}

func TestParseKeepsUnknownWordAsRaw(t *testing.T) {
	_, args := Parse([]string{"paris"})
	if len(args.Raw) != 1 || args.Raw[0] != "paris" {
		t.Errorf("Raw = %v, want [paris]", args.Raw)
	}
}

// =============================================================================
// REPL
// =============================================================================

type cannedFetcher struct {
	obs *model.Observation
	err error
}

func (c *cannedFetcher) Current(_ context.Context, place string) (*model.Observation, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.obs, nil
}

func testMinutes() plan.MinuteSource { return fixedMinuteSource{} }

type fixedMinuteSource struct{}

func (fixedMinuteSource) Intn(n int) int { return 0 }

func newTestRepl(fetcher weather.Fetcher) (*Repl, *bytes.Buffer) {
	var out bytes.Buffer
	return &Repl{
		Config:  config.Default(),
		Fetcher: fetcher,
		Scheduler: plan.NewSchedulerWith(testMinutes(), func() time.Time {
			return time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
		}),
		Session: model.NewSession(),
		Manager: session.NewManager(),
		Out:     &out,
		Quiet:   true,
	}, &out
}

func TestReplLocationBuildsSchedule(t *testing.T) {
	fetcher := &cannedFetcher{obs: &model.Observation{Place: "Paris", TemperatureC: 30, HumidityPct: 70}}
	repl, out := newTestRepl(fetcher)

	if quit := repl.HandleLine("Paris"); quit {
		t.Fatal("location input should not quit")
	}
	if repl.Session.GoalMilliliters != 2450 {
		t.Errorf("goal = %d, want 2450", repl.Session.GoalMilliliters)
	}
	if len(repl.Session.Tasks) != 8 {
		t.Errorf("tasks = %d, want 8", len(repl.Session.Tasks))
	}
	if !strings.Contains(out.String(), "8 reminders") {
		t.Errorf("output should announce the schedule: %q", out.String())
	}
}

func TestReplWeatherErrorLeavesSessionAlone(t *testing.T) {
	repl, out := newTestRepl(&cannedFetcher{err: weather.ErrNotFound})

	repl.HandleLine("Atlantis")
	if repl.Session.GoalMilliliters != 0 {
		t.Error("goal should stay zero after a failed lookup")
	}
	if !strings.Contains(out.String(), "couldn't find") {
		t.Errorf("output = %q, want not-found reply", out.String())
	}
}

func TestReplVolumeAndGoalCrossing(t *testing.T) {
	fetcher := &cannedFetcher{obs: &model.Observation{Place: "Oslo", TemperatureC: 10, HumidityPct: 40}}
	repl, out := newTestRepl(fetcher)

	repl.HandleLine("Oslo")
	repl.HandleLine("1500ml")
	if repl.Session.IntakeMilliliters != 1500 {
		t.Fatalf("intake = %d, want 1500", repl.Session.IntakeMilliliters)
	}

	out.Reset()
	repl.HandleLine("500ml")
	if !strings.Contains(out.String(), "congratulations") {
		t.Errorf("crossing the goal should congratulate: %q", out.String())
	}

	out.Reset()
	repl.HandleLine("250ml")
	if !strings.Contains(out.String(), "congratulations") {
		t.Errorf("logging past the goal should congratulate again: %q", out.String())
	}
}

func TestReplCommands(t *testing.T) {
	fetcher := &cannedFetcher{obs: &model.Observation{Place: "Paris", TemperatureC: 30, HumidityPct: 70}}
	repl, out := newTestRepl(fetcher)
	repl.HandleLine("Paris")

	tests := []struct {
		line string
		want string
	}{
		{"/tasks", "8 remaining"},
		{"/goal", "2.0L base"},
		{"/stats", "Session stats"},
		{"/log 250ml", "Logged 250ml"},
		{"/done 1", "Logged"},
		{"/done 1", "already done"},
		{"/done 99", "No reminder number 99"},
		{"/frobnicate", "Unknown command"},
		{"/help", "/tasks"},
	}
	for _, tt := range tests {
		out.Reset()
		if quit := repl.HandleLine(tt.line); quit {
			t.Fatalf("%s should not quit", tt.line)
		}
		if !strings.Contains(out.String(), tt.want) {
			t.Errorf("%s output = %q, want substring %q", tt.line, out.String(), tt.want)
		}
	}
}

func TestReplQuit(t *testing.T) {
	repl, _ := newTestRepl(&cannedFetcher{})
	if !repl.HandleLine("/quit") {
		t.Error("/quit should end the session")
	}
	if !repl.HandleLine("/q") {
		t.Error("/q should end the session")
	}
}

func TestReplClear(t *testing.T) {
	repl, _ := newTestRepl(&cannedFetcher{})
	repl.HandleLine("what's up 42?")
	repl.HandleLine("/clear")
	if len(repl.Session.Messages) != 0 {
		t.Errorf("messages after /clear = %d, want 0", len(repl.Session.Messages))
	}
}

func TestReplEmptyLineIgnored(t *testing.T) {
	repl, _ := newTestRepl(&cannedFetcher{})
	repl.HandleLine("   ")
	if len(repl.Session.Messages) != 0 {
		t.Error("blank input should not touch the transcript")
	}
}
