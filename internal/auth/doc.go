// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth provides the simulated sign-in gate.
//
// There is no real authentication service: any non-empty name is accepted
// after a short fixed delay, mirroring the latency of a real credential
// check. The resulting profile only personalizes greetings for the
// lifetime of the session.
package auth
