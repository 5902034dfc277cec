// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package plan

import (
	"testing"
	"time"

	"github.com/thirstiq/thirstiq-tui/internal/model"
)

// fixedMinutes cycles through a fixed sequence of minute values.
type fixedMinutes struct {
	values []int
	next   int
}

func (f *fixedMinutes) Intn(n int) int {
	v := f.values[f.next%len(f.values)] % n
	f.next++
	return v
}

func fixedClock() time.Time {
	return time.Date(2025, time.July, 14, 12, 0, 0, 0, time.UTC)
}

// =============================================================================
// GOAL COMPUTATION TESTS
// =============================================================================

func TestComputeGoal(t *testing.T) {
	tests := []struct {
		name     string
		tempC    int
		humidity int
		expected int
	}{
		{
			name:     "at both thresholds no surcharge",
			tempC:    25,
			humidity: 60,
			expected: 2000,
		},
		{
			name:     "below thresholds no surcharge",
			tempC:    10,
			humidity: 30,
			expected: 2000,
		},
		{
			name:     "temperature surcharge only",
			tempC:    35,
			humidity: 60,
			expected: 2500,
		},
		{
			name:     "humidity surcharge only",
			tempC:    25,
			humidity: 80,
			expected: 2400,
		},
		{
			name:     "both surcharges",
			tempC:    30,
			humidity: 70,
			expected: 2450,
		},
		{
			name:     "extreme heat unclamped",
			tempC:    50,
			humidity: 100,
			expected: 2000 + 25*50 + 40*20,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			obs := model.Observation{TemperatureC: tc.tempC, HumidityPct: tc.humidity}
			if got := ComputeGoal(obs); got != tc.expected {
				t.Errorf("ComputeGoal(%d C, %d%%) = %d, want %d",
					tc.tempC, tc.humidity, got, tc.expected)
			}
		})
	}
}

// =============================================================================
// SCHEDULE GENERATION TESTS
// =============================================================================

func TestGenerateSchedule_Shape(t *testing.T) {
	s := NewScheduler()

	for _, goal := range []int{2000, 2450, 2500, 3100} {
		batch := s.GenerateSchedule(goal)

		if len(batch) != TasksPerBatch {
			t.Fatalf("goal %d: len(batch) = %d, want %d", goal, len(batch), TasksPerBatch)
		}

		for i, task := range batch {
			if task.Completed {
				t.Errorf("goal %d: task %d starts completed", goal, i)
			}
			if task.ID == "" {
				t.Errorf("goal %d: task %d has empty ID", goal, i)
			}
			if i > 0 && task.ScheduledAt.Before(batch[i-1].ScheduledAt) {
				t.Errorf("goal %d: batch not sorted ascending at index %d", goal, i)
			}
		}

		// Uniform split: total within one rounding step per task of the goal.
		total := batch.TotalMilliliters()
		if total < goal-TasksPerBatch || total > goal+TasksPerBatch {
			t.Errorf("goal %d: batch total %d outside [%d, %d]",
				goal, total, goal-TasksPerBatch, goal+TasksPerBatch)
		}
	}
}

func TestGenerateSchedule_HourSpacing(t *testing.T) {
	// Zero minutes everywhere isolates the deterministic hour component.
	s := NewSchedulerWith(&fixedMinutes{values: []int{0}}, fixedClock)
	batch := s.GenerateSchedule(2000)

	wantHours := []int{9, 10, 12, 13, 15, 16, 18, 19}
	for i, task := range batch {
		if task.ScheduledAt.Hour() != wantHours[i] {
			t.Errorf("task %d hour = %d, want %d", i, task.ScheduledAt.Hour(), wantHours[i])
		}
		if task.ScheduledAt.Year() != 2025 || task.ScheduledAt.Day() != 14 {
			t.Errorf("task %d not scheduled on the clock's date: %v", i, task.ScheduledAt)
		}
	}
}

func TestGenerateSchedule_RandomMinutesStaySorted(t *testing.T) {
	// Descending minute values cannot break the ascending ordering because
	// the batch is sorted before being returned.
	s := NewSchedulerWith(&fixedMinutes{values: []int{59, 45, 30, 15, 7, 3, 1, 0}}, fixedClock)
	batch := s.GenerateSchedule(2400)

	for i := 1; i < len(batch); i++ {
		if batch[i].ScheduledAt.Before(batch[i-1].ScheduledAt) {
			t.Fatalf("batch not sorted at index %d: %v before %v",
				i, batch[i].ScheduledAt, batch[i-1].ScheduledAt)
		}
	}
}

func TestGenerateSchedule_PerTaskAmountRounds(t *testing.T) {
	s := NewSchedulerWith(&fixedMinutes{values: []int{0}}, fixedClock)

	// 2450 / 8 = 306.25 -> 306 per task, total 2448 (remainder dropped).
	batch := s.GenerateSchedule(2450)
	if batch[0].Milliliters != 306 {
		t.Errorf("per-task amount = %d, want 306", batch[0].Milliliters)
	}
	if batch.TotalMilliliters() != 2448 {
		t.Errorf("batch total = %d, want 2448", batch.TotalMilliliters())
	}

	// 2500 / 8 = 312.5 -> rounds to 313, total 2504 (overshoot accepted).
	batch = s.GenerateSchedule(2500)
	if batch[0].Milliliters != 313 {
		t.Errorf("per-task amount = %d, want 313", batch[0].Milliliters)
	}
}

// =============================================================================
// TASK COMPLETION TESTS
// =============================================================================

func TestCompleteTask_Idempotent(t *testing.T) {
	s := NewSchedulerWith(&fixedMinutes{values: []int{0}}, fixedClock)
	batch := s.GenerateSchedule(2000)
	id := batch[3].ID

	delta, ok := CompleteTask(batch, id)
	if !ok {
		t.Fatal("first completion reported not ok")
	}
	if delta != batch[3].Milliliters {
		t.Errorf("delta = %d, want %d", delta, batch[3].Milliliters)
	}
	if !batch[3].Completed {
		t.Error("task not marked completed")
	}

	// Second completion is a no-op.
	delta, ok = CompleteTask(batch, id)
	if ok || delta != 0 {
		t.Errorf("second completion: delta = %d, ok = %v; want 0, false", delta, ok)
	}
}

func TestCompleteTask_UnknownID(t *testing.T) {
	s := NewScheduler()
	batch := s.GenerateSchedule(2000)

	delta, ok := CompleteTask(batch, "not-a-task")
	if ok || delta != 0 {
		t.Errorf("unknown ID: delta = %d, ok = %v; want 0, false", delta, ok)
	}
	if batch.Remaining() != TasksPerBatch {
		t.Error("unknown ID mutated the batch")
	}
}
