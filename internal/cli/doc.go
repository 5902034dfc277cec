// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the thirstiq command-line surface.
//
// The default invocation starts the full-screen TUI. Subcommands provide a
// plain-terminal alternative for environments where Bubble Tea is unwelcome
// (pipes, CI, minimal terminals):
//
//   - chat:    line-oriented REPL over the same classifier and planner
//   - status:  configuration and weather provider health
//   - version: build information
//
// Argument parsing is hand-rolled: the flag surface is small and a single
// Parse returning (Command, Args) keeps main trivial.
package cli
