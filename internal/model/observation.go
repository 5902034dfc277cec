// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the hydration session.
package model

import "strconv"

// =============================================================================
// WEATHER OBSERVATION
// =============================================================================

// Observation is a current-weather reading for a place, as returned by the
// weather provider. Immutable once received; the session keeps only the
// latest one.
type Observation struct {
	Place        string `json:"place"`
	TemperatureC int    `json:"temperature_c"`
	HumidityPct  int    `json:"humidity_pct"`
	Description  string `json:"description"`
}

// Summary returns a one-line human-readable summary of the observation.
func (o Observation) Summary() string {
	return o.Place + ": " + strconv.Itoa(o.TemperatureC) + "°C, " +
		strconv.Itoa(o.HumidityPct) + "% humidity, " + o.Description
}
