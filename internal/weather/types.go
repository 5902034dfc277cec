// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package weather provides the HTTP client for the current-weather provider.
package weather

// =============================================================================
// WIRE TYPES
// =============================================================================

// currentResponse mirrors the provider's current-weather payload.
// Only the fields the planner needs are decoded.
type currentResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
}

// apiError is the provider's error payload shape.
type apiError struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
