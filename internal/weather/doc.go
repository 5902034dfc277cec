// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package weather provides the HTTP client for the current-weather provider.
//
// The client resolves a place name to a single observation: temperature in
// Celsius, relative humidity as a percentage, and a short text description.
// Failures collapse into three kinds the chat layer maps to distinct
// user-facing messages: Unauthorized (bad credentials), NotFound (unknown
// place), and Unavailable (everything else). All failures are recoverable;
// the session state is never touched on error.
package weather
