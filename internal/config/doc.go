// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management
// for thirstiq.
//
// Supports both TOML and JSON configuration formats, with sensible
// defaults, environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.thirstiq/config.toml
//   - ~/.thirstiq/config.json
//   - Built-in defaults
//
// A fsnotify-based watcher reloads the global configuration while the
// application runs, so an API key dropped into the file takes effect
// without a restart.
package config
