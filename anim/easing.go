// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package anim is the frame-driven animation kernel: easing curves, timed
// tweens over any lerpable value, spring physics, looping playback,
// staggered sequences, and wall-clock sampling for drift-free decoratives.
package anim

import "math"

// EasingFunc maps normalized progress (0-1) to eased output (0-1).
// Elastic and back easings briefly leave [0,1]; every easing satisfies
// e(0) = 0 and e(1) = 1.
type EasingFunc func(t float64) float64

// =============================================================================
// QUADRATIC
// =============================================================================

// EaseLinear - constant speed
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad - accelerating from zero
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad - decelerating to zero
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

// EaseInOutQuad - acceleration until halfway, then deceleration
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// =============================================================================
// CUBIC
// =============================================================================

// EaseInCubic - accelerating from zero, stronger than quad
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutCubic - decelerating to zero (smoother)
func EaseOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

// EaseInOutCubic - cubic acceleration and deceleration
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 1 + u*u*u/2
}

// =============================================================================
// QUARTIC
// =============================================================================

// EaseInQuart - fourth-power acceleration
func EaseInQuart(t float64) float64 {
	return t * t * t * t
}

// EaseOutQuart - fourth-power deceleration
func EaseOutQuart(t float64) float64 {
	u := t - 1
	return 1 - u*u*u*u
}

// EaseInOutQuart - fourth-power both ways
func EaseInOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	u := t - 1
	return 1 - 8*u*u*u*u
}

// =============================================================================
// EXPONENTIAL
// =============================================================================

// EaseInExpo - exponential acceleration
func EaseInExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

// EaseOutExpo - exponential deceleration
func EaseOutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// EaseInOutExpo - exponential both ways
func EaseInOutExpo(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	default:
		return (2 - math.Pow(2, -20*t+10)) / 2
	}
}

// =============================================================================
// ELASTIC / BACK / BOUNCE
// =============================================================================

// EaseOutElastic - overshoot with elastic settle
func EaseOutElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	const c = 2 * math.Pi / 3
	return math.Pow(2, -10*t)*math.Sin((10*t-0.75)*c) + 1
}

// EaseOutBack - slight overshoot past the target, then return
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// EaseOutBounce - decaying bounces against the target
func EaseOutBounce(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}
