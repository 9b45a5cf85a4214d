// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

// =============================================================================
// LERPABLE VALUES
// =============================================================================

// Lerper is the capability that makes a value type animatable: anything
// providing lerp(a, b, t). Scalars use Float; ui.Color blends per-channel
// in linear space; ui.Vec2 blends per-axis.
type Lerper[T any] interface {
	Lerp(other T, t float64) T
}

// Float is a lerpable scalar.
type Float float64

// Lerp interpolates linearly; t outside [0,1] extrapolates.
func (f Float) Lerp(o Float, t float64) Float {
	return f + Float(float64(o-f)*t)
}

// =============================================================================
// TWEEN
// =============================================================================

// State is a tween's lifecycle position.
type State int

const (
	NotStarted State = iota
	Running
	Paused
	Complete
)

// Animation is a timed interpolation from start to end through an easing
// curve. Durations are seconds. The zero duration completes on the first
// running update.
type Animation[T Lerper[T]] struct {
	start, end T
	duration   float64
	elapsed    float64
	state      State
	easing     EasingFunc
}

// New creates a tween in NotStarted with linear easing.
func New[T Lerper[T]](start, end T, duration float64) *Animation[T] {
	if duration < 0 {
		duration = 0
	}
	return &Animation[T]{
		start:    start,
		end:      end,
		duration: duration,
		easing:   EaseLinear,
	}
}

// WithEasing sets the easing curve; nil restores linear.
func (a *Animation[T]) WithEasing(e EasingFunc) *Animation[T] {
	if e == nil {
		e = EaseLinear
	}
	a.easing = e
	return a
}

// Start moves NotStarted or Paused to Running. No-op otherwise.
func (a *Animation[T]) Start() {
	if a.state == NotStarted || a.state == Paused {
		a.state = Running
	}
}

// Pause suspends a Running tween.
func (a *Animation[T]) Pause() {
	if a.state == Running {
		a.state = Paused
	}
}

// Resume continues a Paused tween.
func (a *Animation[T]) Resume() {
	if a.state == Paused {
		a.state = Running
	}
}

// Reset returns to NotStarted with zero elapsed time.
func (a *Animation[T]) Reset() {
	a.elapsed = 0
	a.state = NotStarted
}

// Update advances elapsed time by dt seconds. Only a Running tween moves;
// reaching the duration transitions to Complete.
func (a *Animation[T]) Update(dt float64) {
	if a.state != Running || dt < 0 {
		return
	}
	a.elapsed += dt
	if a.elapsed >= a.duration {
		a.elapsed = a.duration
		a.state = Complete
	}
}

// Value returns the current interpolated value: start before the tween has
// run, end once complete, the eased blend in between.
func (a *Animation[T]) Value() T {
	switch a.state {
	case NotStarted:
		return a.start
	case Complete:
		return a.end
	}
	return a.start.Lerp(a.end, a.easing(a.Progress()))
}

// Progress returns elapsed/duration clamped to [0,1], before easing.
func (a *Animation[T]) Progress() float64 {
	if a.duration <= 0 {
		if a.state == Complete {
			return 1
		}
		return 0
	}
	p := a.elapsed / a.duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// State reports the lifecycle position.
func (a *Animation[T]) State() State { return a.state }

// IsComplete reports whether the tween has finished.
func (a *Animation[T]) IsComplete() bool { return a.state == Complete }

// SetRange retargets start and end without touching elapsed time. Used by
// wrappers that reverse playback.
func (a *Animation[T]) SetRange(start, end T) {
	a.start = start
	a.end = end
}
