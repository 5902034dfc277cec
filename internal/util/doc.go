// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the thirstiq application:
// rune- and width-aware string truncation, volume formatting, and atomic
// file writes for exports.
package util
