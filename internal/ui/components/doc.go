// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the thirstiq TUI:
// the header bar, message bubbles, the reminder task panel, the hydration
// progress bar, the bottom status bar, loading spinners, toast notifications,
// and the welcome/sign-in screen.
//
// Components are plain view types. They hold no update loop of their own
// beyond what bubbles requires (the spinner); the chat model owns all state
// transitions and feeds components the data they render.
package components
