// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the slash command system for the TUI.
//
// Commands are registered in a Registry, parsed from user input by a
// Parser, and executed by handlers that return Bubble Tea commands.
// Handlers never mutate UI state directly; they emit messages that the
// chat model consumes. The registry is also used to render /help.
//
// Built-in commands:
//
//	/help             show available commands
//	/weather <place>  fetch weather and rebuild the schedule
//	/log <amount>     log a drink (e.g. /log 250 or /log 250ml)
//	/done <n>         complete reminder number n
//	/tasks            show the reminder schedule
//	/goal             show the daily goal and how it was derived
//	/stats            show session statistics
//	/theme [mode]     show or switch the color theme
//	/export [format]  export the session (markdown or json)
//	/clear            clear the transcript
//	/quit             exit
package commands
