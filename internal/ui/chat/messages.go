// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Bubble Tea message types for the chat model. Slash-command messages
// live in the commands package; these cover the asynchronous flows the
// chat model starts itself.
package chat

import (
	"github.com/thirstiq/thirstiq-tui/internal/auth"
	"github.com/thirstiq/thirstiq-tui/internal/model"
)

// =============================================================================
// SIGN-IN MESSAGES
// =============================================================================

// SignInDoneMsg reports the outcome of the simulated sign-in.
type SignInDoneMsg struct {
	Profile *auth.Profile
	Err     error
}

// =============================================================================
// WEATHER MESSAGES
// =============================================================================

// WeatherResultMsg delivers the outcome of a weather lookup.
type WeatherResultMsg struct {
	Place       string
	Observation *model.Observation
	Err         error
}

// =============================================================================
// EXPORT MESSAGES
// =============================================================================

// ExportDoneMsg reports the outcome of a session export.
type ExportDoneMsg struct {
	Path string
	Err  error
}
