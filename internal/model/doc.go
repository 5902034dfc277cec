// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the hydration session:
// chat messages, intake tasks, and the session state that ties the
// current weather observation, daily goal, and running intake together.
//
// All types here are plain data. Mutation happens through the small set
// of Session methods so the invariants (monotonic intake, single-count
// task completion) hold no matter which surface drives them.
package model
