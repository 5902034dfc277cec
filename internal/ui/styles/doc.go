// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the thirstiq TUI.
//
// All colors use Lip Gloss AdaptiveColor so the palette adjusts to light
// and dark terminal backgrounds. The Theme type bundles every styled
// surface the application renders (header, message bubbles, input area,
// task panel, progress bar, status bar, toasts, welcome screen) and can
// be forced to a light or dark palette at runtime via SetMode.
package styles
