// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package plan derives hydration goals and intake schedules.
package plan

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/thirstiq/thirstiq-tui/internal/model"
)

// =============================================================================
// GOAL COMPUTATION
// =============================================================================

const (
	// BaseGoalMilliliters is the daily goal before weather surcharges.
	BaseGoalMilliliters = 2000

	// TemperatureThresholdC is the temperature above which the goal grows.
	TemperatureThresholdC = 25

	// MillilitersPerDegree is the surcharge per degree above the threshold.
	MillilitersPerDegree = 50

	// HumidityThresholdPct is the humidity above which the goal grows.
	HumidityThresholdPct = 60

	// MillilitersPerHumidityPoint is the surcharge per point above the threshold.
	MillilitersPerHumidityPoint = 20

	// TasksPerBatch is the fixed number of reminders per schedule.
	TasksPerBatch = 8

	// firstTaskHour is the hour of day the first reminder lands on.
	firstTaskHour = 9

	// hoursPerTask is the hour spacing between consecutive reminders.
	hoursPerTask = 1.5
)

// ComputeGoal derives the daily fluid goal in milliliters from a weather
// observation. Hot days add 50 ml per degree above 25 C; humid days add
// 20 ml per point above 60%. Inputs at or below the thresholds leave the
// base goal untouched. There is no upper clamp.
func ComputeGoal(obs model.Observation) int {
	goal := BaseGoalMilliliters
	if obs.TemperatureC > TemperatureThresholdC {
		goal += (obs.TemperatureC - TemperatureThresholdC) * MillilitersPerDegree
	}
	if obs.HumidityPct > HumidityThresholdPct {
		goal += (obs.HumidityPct - HumidityThresholdPct) * MillilitersPerHumidityPoint
	}
	return goal
}

// =============================================================================
// SCHEDULE GENERATION
// =============================================================================

// MinuteSource supplies the randomized minute component for task times.
// The production source wraps math/rand; tests inject a fixed sequence.
type MinuteSource interface {
	// Intn returns a non-negative value in [0, n).
	Intn(n int) int
}

// Clock supplies the current time. Injected so generated dates are stable
// under test; only the date portion is used.
type Clock func() time.Time

// Scheduler generates intake task batches.
type Scheduler struct {
	minutes MinuteSource
	now     Clock
}

// NewScheduler creates a scheduler seeded from the current time.
func NewScheduler() *Scheduler {
	return &Scheduler{
		minutes: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

// NewSchedulerWith creates a scheduler with explicit minute and clock
// sources. Either may be nil to use the production default.
func NewSchedulerWith(minutes MinuteSource, now Clock) *Scheduler {
	s := NewScheduler()
	if minutes != nil {
		s.minutes = minutes
	}
	if now != nil {
		s.now = now
	}
	return s
}

// GenerateSchedule spreads the goal over exactly eight tasks. Each task
// carries round(goal/8) milliliters; the rounding remainder is NOT folded
// into the last task, so batch totals may differ from the goal by a few
// milliliters. Task hours start at 09:00 and advance by 1.5 hours per
// index; minutes are randomized. The batch is returned sorted ascending
// by scheduled time, all tasks incomplete.
func (s *Scheduler) GenerateSchedule(goal int) model.TaskBatch {
	perTask := int(float64(goal)/TasksPerBatch + 0.5)

	today := s.now()
	year, month, day := today.Date()

	batch := make(model.TaskBatch, 0, TasksPerBatch)
	for i := 0; i < TasksPerBatch; i++ {
		hour := firstTaskHour + int(float64(i)*hoursPerTask)
		minute := s.minutes.Intn(60)
		batch = append(batch, model.IntakeTask{
			ID:          uuid.NewString(),
			ScheduledAt: time.Date(year, month, day, hour, minute, 0, 0, today.Location()),
			Milliliters: perTask,
		})
	}

	sort.SliceStable(batch, func(i, j int) bool {
		return batch[i].ScheduledAt.Before(batch[j].ScheduledAt)
	})

	return batch
}

// =============================================================================
// TASK COMPLETION
// =============================================================================

// CompleteTask marks the task with the given ID as completed and returns
// the intake delta the caller should credit. Unknown IDs and tasks that
// are already completed return a zero delta, so repeated completion never
// double-counts. The second return reports whether a task flipped state.
func CompleteTask(batch model.TaskBatch, id string) (int, bool) {
	idx := batch.Find(id)
	if idx < 0 {
		return 0, false
	}
	if batch[idx].Completed {
		return 0, false
	}
	batch[idx].Completed = true
	return batch[idx].Milliliters, true
}
