// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"
)

func TestToastManagerAddAndRemove(t *testing.T) {
	m := NewToastManager()

	if m.HasToasts() {
		t.Error("new manager should have no toasts")
	}

	id := m.AddError("weather lookup failed")
	if !m.HasToasts() {
		t.Error("manager should have a toast after AddError")
	}

	m.RemoveToast(id)
	if m.HasToasts() {
		t.Error("manager should be empty after RemoveToast")
	}
}

func TestToastManagerNewestFirst(t *testing.T) {
	m := NewToastManager()
	m.AddStatus("first")
	m.AddStatus("second")

	toasts := m.GetToasts()
	if len(toasts) != 2 {
		t.Fatalf("expected 2 toasts, got %d", len(toasts))
	}
	if toasts[0].Message != "second" {
		t.Errorf("newest toast should be first, got %q", toasts[0].Message)
	}
}

func TestToastManagerCapsStack(t *testing.T) {
	m := NewToastManager()
	for i := 0; i < 10; i++ {
		m.AddStatus("toast")
	}
	if got := len(m.GetToasts()); got > 5 {
		t.Errorf("stack should be capped at 5, got %d", got)
	}
}

func TestToastExpiry(t *testing.T) {
	m := NewToastManager()
	toast := NewStatusToast("old news")
	toast.CreatedAt = time.Now().Add(-time.Minute)
	m.AddToast(toast)
	m.AddStatus("fresh")

	remaining := m.TickToasts()
	if len(remaining) != 1 {
		t.Fatalf("expected 1 toast after tick, got %d", len(remaining))
	}
	if remaining[0].Message != "fresh" {
		t.Errorf("surviving toast = %q, want %q", remaining[0].Message, "fresh")
	}
}

func TestToastDurationsByKind(t *testing.T) {
	tests := []struct {
		name  string
		toast Toast
		want  time.Duration
	}{
		{"error", NewErrorToast("x"), ErrorToastDuration},
		{"warning", NewWarningToast("x"), WarningToastDuration},
		{"status", NewStatusToast("x"), DefaultToastDuration},
		{"success", NewSuccessToast("x"), DefaultToastDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.toast.Duration != tt.want {
				t.Errorf("duration = %v, want %v", tt.toast.Duration, tt.want)
			}
		})
	}
}

func TestRenderToastIncludesMessage(t *testing.T) {
	toast := NewErrorToast("city not found")
	out := RenderToast(toast, 80)
	if !strings.Contains(out, "city not found") {
		t.Errorf("rendered toast missing message: %q", out)
	}
}

func TestRenderToastStackEmpty(t *testing.T) {
	if got := RenderToastStack(nil, 80, 24); got != "" {
		t.Errorf("empty stack should render empty, got %q", got)
	}
}

func TestWrapToastText(t *testing.T) {
	out := wrapToastText("one two three four five", 9)
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 9 {
			t.Errorf("line %q exceeds width 9", line)
		}
	}
}
