// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNextMode(t *testing.T) {
	tests := []struct {
		in   Mode
		want Mode
	}{
		{ModeAuto, ModeDark},
		{ModeDark, ModeLight},
		{ModeLight, ModeAuto},
		{Mode("bogus"), ModeAuto},
	}
	for _, tt := range tests {
		if got := NextMode(tt.in); got != tt.want {
			t.Errorf("NextMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewThemeWithMode(t *testing.T) {
	dark := NewThemeWithMode(ModeDark)
	if !dark.IsDark {
		t.Error("dark mode theme should report IsDark")
	}
	if dark.Mode != ModeDark {
		t.Errorf("Mode = %q, want %q", dark.Mode, ModeDark)
	}

	light := NewThemeWithMode(ModeLight)
	if light.IsDark {
		t.Error("light mode theme should not report IsDark")
	}
}

func TestSetModeReinitializesStyles(t *testing.T) {
	theme := NewThemeWithMode(ModeDark)
	theme.SetMode(ModeLight)
	if theme.Mode != ModeLight {
		t.Errorf("Mode = %q after SetMode, want %q", theme.Mode, ModeLight)
	}
	// Styles must stay usable after a mode switch.
	if got := theme.HeaderTitle.Render("ThirstIQ"); got == "" {
		t.Error("HeaderTitle renders empty after mode switch")
	}
}

func TestGetLayoutMode(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{40, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
		{200, LayoutWide},
	}
	theme := NewTheme()
	for _, tt := range tests {
		theme.SetSize(tt.width, 24)
		if got := theme.GetLayoutMode(); got != tt.want {
			t.Errorf("width %d: layout = %v, want %v", tt.width, got, tt.want)
		}
	}
}
