// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"math"

	"github.com/jeranaias/glint/diag"
)

// =============================================================================
// SPRING PHYSICS
// =============================================================================

// Default spring parameters: a moderately stiff, well-damped spring that
// settles in roughly a third of a second.
const (
	DefaultStiffness = 150.0
	DefaultDamping   = 15.0
	DefaultMass      = 1.0
)

// Spring animates a scalar toward a movable target with hookean physics,
// integrated with semi-implicit Euler. Use a spring when responsiveness
// matters more than exact timing; use a tween when the duration is known.
type Spring struct {
	current   float64
	velocity  float64
	target    float64
	stiffness float64
	damping   float64
	mass      float64
}

// NewSpring creates a spring at start heading for target with default
// parameters.
func NewSpring(start, target float64) *Spring {
	return &Spring{
		current:   start,
		target:    target,
		stiffness: DefaultStiffness,
		damping:   DefaultDamping,
		mass:      DefaultMass,
	}
}

// Params sets stiffness and damping. Non-positive stiffness and negative
// damping are misconfigurations: they clamp to safe floors and warn once.
func (s *Spring) Params(stiffness, damping float64) *Spring {
	if stiffness <= 0 {
		diag.WarnOnce("anim/spring/stiffness", "spring stiffness must be positive; clamped",
			map[string]any{"stiffness": stiffness})
		stiffness = 1
	}
	if damping < 0 {
		diag.WarnOnce("anim/spring/damping", "spring damping must be non-negative; clamped",
			map[string]any{"damping": damping})
		damping = 0
	}
	s.stiffness = stiffness
	s.damping = damping
	return s
}

// Mass sets the mass. Non-positive mass clamps to a safe floor and warns
// once.
func (s *Spring) Mass(m float64) *Spring {
	if m <= 0 {
		diag.WarnOnce("anim/spring/mass", "spring mass must be positive; clamped",
			map[string]any{"mass": m})
		m = 1e-3
	}
	s.mass = m
	return s
}

// SetTarget retargets the spring without resetting position or velocity,
// which is what makes springs interruptible mid-flight.
func (s *Spring) SetTarget(v float64) { s.target = v }

// Target returns the value the spring is heading for.
func (s *Spring) Target() float64 { return s.target }

// Update integrates one step of dt seconds with semi-implicit Euler:
// velocity first, then position from the new velocity.
func (s *Spring) Update(dt float64) {
	if dt <= 0 {
		return
	}
	f := s.stiffness*(s.target-s.current) - s.damping*s.velocity
	s.velocity += (f / s.mass) * dt
	s.current += s.velocity * dt
}

// Value returns the current position.
func (s *Spring) Value() float64 { return s.current }

// Velocity returns the current velocity.
func (s *Spring) Velocity() float64 { return s.velocity }

// IsSettled reports whether the spring is within epsPos of the target and
// moving slower than epsVel. Widgets stop requesting repaints once settled.
func (s *Spring) IsSettled(epsPos, epsVel float64) bool {
	return math.Abs(s.target-s.current) < epsPos && math.Abs(s.velocity) < epsVel
}
