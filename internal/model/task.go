// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the hydration session.
package model

import (
	"time"
)

// =============================================================================
// INTAKE TASK
// =============================================================================

// IntakeTask is a single scheduled drinking reminder. Tasks are generated
// as a batch of eight whenever the goal is recomputed; a new batch replaces
// the previous one wholesale, including any completed tasks.
type IntakeTask struct {
	ID          string    `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Milliliters int       `json:"milliliters"`
	Completed   bool      `json:"completed"`
}

// Clock returns the scheduled time formatted as "15:04".
func (t IntakeTask) Clock() string {
	return t.ScheduledAt.Format("15:04")
}

// TaskBatch is an ordered set of intake tasks, ascending by scheduled time.
type TaskBatch []IntakeTask

// Find returns the index of the task with the given ID, or -1.
func (b TaskBatch) Find(id string) int {
	for i := range b {
		if b[i].ID == id {
			return i
		}
	}
	return -1
}

// Remaining returns the number of tasks not yet completed.
func (b TaskBatch) Remaining() int {
	n := 0
	for i := range b {
		if !b[i].Completed {
			n++
		}
	}
	return n
}

// TotalMilliliters returns the sum of all task amounts in the batch.
func (b TaskBatch) TotalMilliliters() int {
	total := 0
	for i := range b {
		total += b[i].Milliliters
	}
	return total
}
