// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the hydration session.
package model

import (
	"time"
)

// =============================================================================
// SESSION STATE
// =============================================================================

// Session is the explicit state for one chat session: the latest weather
// observation, the derived daily goal, the current task batch, the running
// intake, and the transcript. The UI layer owns the lifecycle (created on
// start, discarded on exit); nothing here survives the process.
type Session struct {
	// Latest weather observation, nil until the first successful fetch.
	Observation *Observation

	// GoalMilliliters is the daily fluid goal. Zero until the first
	// observation arrives.
	GoalMilliliters int

	// IntakeMilliliters is the running intake for this session.
	// Monotonically non-decreasing; there is no day-boundary reset.
	IntakeMilliliters int

	// Tasks is the current reminder batch. Replaced wholesale whenever
	// the goal is recomputed.
	Tasks TaskBatch

	// Messages is the append-only chat transcript.
	Messages []*Message

	// StartedAt records when the session began.
	StartedAt time.Time
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{StartedAt: time.Now()}
}

// =============================================================================
// STATE TRANSITIONS
// =============================================================================

// Append adds a message to the transcript and returns it.
func (s *Session) Append(msg *Message) *Message {
	s.Messages = append(s.Messages, msg)
	return msg
}

// ApplyObservation installs a new observation together with the goal and
// task batch derived from it. The previous batch is discarded, completed
// tasks included.
func (s *Session) ApplyObservation(obs *Observation, goal int, tasks TaskBatch) {
	s.Observation = obs
	s.GoalMilliliters = goal
	s.Tasks = tasks
}

// AddIntake increases the running intake by delta milliliters.
// Negative deltas are ignored so intake stays monotonic.
func (s *Session) AddIntake(delta int) {
	if delta <= 0 {
		return
	}
	s.IntakeMilliliters += delta
}

// GoalReached reports whether the running intake has met the goal.
// Always false before the first goal is computed.
func (s *Session) GoalReached() bool {
	return s.GoalMilliliters > 0 && s.IntakeMilliliters >= s.GoalMilliliters
}

// ProgressPercent returns the intake progress as a rounded percentage of
// the goal, or 0 when no goal is set yet.
func (s *Session) ProgressPercent() int {
	if s.GoalMilliliters <= 0 {
		return 0
	}
	return int(float64(s.IntakeMilliliters)/float64(s.GoalMilliliters)*100 + 0.5)
}
