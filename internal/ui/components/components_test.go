// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/thirstiq/thirstiq-tui/internal/model"
	"github.com/thirstiq/thirstiq-tui/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewThemeWithMode(styles.ModeDark)
}

func testBatch() model.TaskBatch {
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	return model.TaskBatch{
		{ID: "a", ScheduledAt: day.Add(9 * time.Hour), Milliliters: 300},
		{ID: "b", ScheduledAt: day.Add(12 * time.Hour), Milliliters: 300, Completed: true},
		{ID: "c", ScheduledAt: day.Add(15 * time.Hour), Milliliters: 300},
	}
}

func TestHeaderDisplayPlace(t *testing.T) {
	h := NewHeader(testTheme())
	if got := h.DisplayPlace(); got != "" {
		t.Errorf("DisplayPlace with no observation = %q, want empty", got)
	}

	h.SetObservation(&model.Observation{Place: "new york", TemperatureC: 30, HumidityPct: 70})
	if got := h.DisplayPlace(); got != "New York" {
		t.Errorf("DisplayPlace = %q, want %q", got, "New York")
	}
}

func TestHeaderViewShowsUser(t *testing.T) {
	h := NewHeader(testTheme())
	h.SetUserName("Sam")
	h.SetWidth(80)
	out := h.View()
	if !strings.Contains(out, "ThirstIQ") {
		t.Error("header missing title")
	}
	if !strings.Contains(out, "Sam") {
		t.Error("header missing user name")
	}
}

func TestTaskPanelEmpty(t *testing.T) {
	p := NewTaskPanel(testTheme())
	p.SetSize(40, 20)
	out := p.View(nil)
	if !strings.Contains(out, "Tell me where you are") {
		t.Errorf("empty panel missing hint: %q", out)
	}
}

func TestTaskPanelRemainingCount(t *testing.T) {
	p := NewTaskPanel(testTheme())
	p.SetSize(40, 20)
	out := p.View(testBatch())
	if !strings.Contains(out, "2 of 3 remaining") {
		t.Errorf("panel missing remaining count: %q", out)
	}
}

func TestTaskPanelHidesCompleted(t *testing.T) {
	p := NewTaskPanel(testTheme())
	p.SetSize(40, 20)
	p.SetShowCompleted(false)
	out := p.View(testBatch())
	if strings.Contains(out, "12:00") {
		t.Errorf("panel should hide completed task at 12:00: %q", out)
	}
}

func TestTaskPanelSummaryLine(t *testing.T) {
	p := NewTaskPanel(testTheme())
	got := p.SummaryLine(testBatch())
	want := "[ ]09:00 [x]12:00 [ ]15:00"
	if got != want {
		t.Errorf("SummaryLine = %q, want %q", got, want)
	}
}

func TestHydrationBarEmptySession(t *testing.T) {
	b := NewHydrationBar(testTheme())
	if got := b.View(model.NewSession()); got != "" {
		t.Errorf("bar with no goal should be empty, got %q", got)
	}
	if got := b.View(nil); got != "" {
		t.Errorf("bar with nil session should be empty, got %q", got)
	}
}

func TestHydrationBarLabel(t *testing.T) {
	sess := model.NewSession()
	sess.GoalMilliliters = 2000
	sess.AddIntake(500)

	b := NewHydrationBar(testTheme())
	b.SetWidth(60)
	out := b.View(sess)
	if !strings.Contains(out, "(25%)") {
		t.Errorf("bar missing percentage: %q", out)
	}
	if !strings.Contains(out, "500ml") || !strings.Contains(out, "2.0L") {
		t.Errorf("bar missing volumes: %q", out)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusReady, "Ready"},
		{StatusFetching, "Fetching weather..."},
		{StatusError, "Error"},
		{StatusSigningIn, "Signing in..."},
		{Status(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestStatusBarShowsGoal(t *testing.T) {
	sess := model.NewSession()
	sess.GoalMilliliters = 2450
	sess.AddIntake(250)

	sb := NewStatusBar(testTheme())
	sb.SetWidth(100)
	out := sb.View(sess)
	if !strings.Contains(out, "Goal") {
		t.Errorf("status bar missing goal: %q", out)
	}
	if !strings.Contains(out, "250ml") {
		t.Errorf("status bar missing intake: %q", out)
	}
}

func TestSpinnerLifecycle(t *testing.T) {
	s := NewWeatherSpinner()
	if s.IsActive() {
		t.Error("spinner should start inactive")
	}
	if got := s.View(); got != "" {
		t.Errorf("inactive spinner should render empty, got %q", got)
	}

	cmd := s.Start()
	if cmd == nil {
		t.Error("Start should return a tick command")
	}
	if !s.IsActive() {
		t.Error("spinner should be active after Start")
	}
	if got := s.View(); !strings.Contains(got, "Checking the weather") {
		t.Errorf("active spinner missing message: %q", got)
	}

	s.Stop()
	if s.IsActive() {
		t.Error("spinner should be inactive after Stop")
	}
}

func TestMessageRendererRoles(t *testing.T) {
	r := NewMessageRenderer(testTheme())
	r.SetWidth(80)

	user := r.Render(model.NewUserMessage("Paris"))
	if !strings.Contains(user, "You") {
		t.Errorf("user bubble missing display name: %q", user)
	}

	assistant := r.Render(model.NewAssistantMessage("Hello!"))
	if !strings.Contains(assistant, "ThirstIQ") {
		t.Errorf("assistant bubble missing display name: %q", assistant)
	}
}

func TestMessageRendererTranscript(t *testing.T) {
	r := NewMessageRenderer(testTheme())
	r.SetWidth(80)

	msgs := []*model.Message{
		model.NewUserMessage("hi"),
		model.NewAssistantMessage("hello"),
	}
	out := r.RenderAll(msgs)
	if !strings.Contains(out, "hi") || !strings.Contains(out, "hello") {
		t.Errorf("transcript missing messages: %q", out)
	}

	if got := r.RenderAll(nil); got != "" {
		t.Errorf("empty transcript should render empty, got %q", got)
	}
}

func TestWelcomeView(t *testing.T) {
	w := NewWelcome(testTheme(), "1.0.0")
	w.SetSize(80, 24)
	out := w.View()
	if !strings.Contains(out, "v1.0.0") {
		t.Errorf("welcome missing version: %q", out)
	}
	if !strings.Contains(out, "press Enter") {
		t.Errorf("welcome missing prompt hint: %q", out)
	}

	w.SigningIn = true
	w.UserName = "Sam"
	out = w.View()
	if !strings.Contains(out, "Signing in as Sam") {
		t.Errorf("welcome missing sign-in status: %q", out)
	}
}
