// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package router classifies free-text chat input and decides which action
// runs next: a weather fetch for a place name, an intake log for a volume
// statement, or a help response for anything else.
//
// Classification is a pure function over the input text. The two observable
// edge cases are contractual: the "ml" unit token is mandatory for a volume
// statement (bare digits are not a volume), and only the FIRST digit run in
// the text is used as the amount.
package router
