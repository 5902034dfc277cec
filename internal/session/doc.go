// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks the lifetime of one chat session: a generated
// session ID, start time, and last-activity timestamp for the status bar.
// Nothing here persists; a session ends when the process exits.
package session
