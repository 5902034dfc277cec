// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth provides the simulated sign-in gate.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrEmptyName is returned when sign-in is attempted with a blank name.
var ErrEmptyName = errors.New("name must not be empty")

// =============================================================================
// PROFILE
// =============================================================================

// Profile identifies the signed-in user for the current session.
type Profile struct {
	Name       string
	SignedInAt time.Time
}

// =============================================================================
// GATE
// =============================================================================

// Gate performs the simulated sign-in.
type Gate struct {
	delay time.Duration
}

// NewGate creates a gate with the given simulated delay.
func NewGate(delay time.Duration) *Gate {
	return &Gate{delay: delay}
}

// SignIn validates the name, waits out the simulated delay, and returns
// a profile. The only failure modes are a blank name and a canceled
// context; there are no credentials to reject.
func (g *Gate) SignIn(ctx context.Context, name string) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return &Profile{
		Name:       name,
		SignedInAt: time.Now(),
	}, nil
}
