// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package plan derives the daily hydration goal from a weather observation
// and spreads it over a batch of scheduled intake tasks.
//
// # Key Types
//
//   - Scheduler: Generates task batches with an injectable randomness
//     source, so schedules are deterministic under test
//   - ComputeGoal: Weather observation -> daily goal in milliliters
//   - CompleteTask: Idempotent single-task completion
//
// # Usage
//
// Compute a goal and schedule it:
//
//	goal := plan.ComputeGoal(obs)
//	batch := plan.NewScheduler().GenerateSchedule(goal)
//
// Complete a task (double completion never double-counts):
//
//	delta, ok := plan.CompleteTask(batch, taskID)
//	session.AddIntake(delta)
//
// # Goal Formula
//
// The goal starts at a 2000 ml base. Temperature above 25 C adds 50 ml per
// degree; relative humidity above 60% adds 20 ml per point. No upper bound
// is applied to extreme inputs.
package plan
