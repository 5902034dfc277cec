// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main Bubble Tea model for the thirstiq TUI.
//
// The model moves through three states: the sign-in screen, a short
// simulated sign-in delay, and the chat itself. In the chat state every
// line of input is either a slash command (handled by the commands
// package) or free text (classified by the router package into a
// location, a volume statement, or neither).
//
// A weather lookup is the only asynchronous operation. While one is in
// flight the input is disabled and a spinner runs; the result arrives as
// a WeatherResultMsg and rebuilds the goal and reminder schedule.
package chat
