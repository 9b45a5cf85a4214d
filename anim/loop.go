// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

// LoopMode selects what happens when a wrapped tween completes.
type LoopMode int

const (
	// Once holds the end value after completion.
	Once LoopMode = iota
	// Loop wraps back to the start, carrying the overshoot so the value
	// is exactly periodic.
	Loop
	// PingPong swaps start and end and plays back the other way; the
	// value function is continuous across every reflection.
	PingPong
)

// Looping wraps an Animation with repeat playback.
type Looping[T Lerper[T]] struct {
	anim *Animation[T]
	mode LoopMode
}

// NewLooping wraps anim with the given mode. The wrapper owns the tween;
// callers drive playback through the wrapper only.
func NewLooping[T Lerper[T]](anim *Animation[T], mode LoopMode) *Looping[T] {
	return &Looping[T]{anim: anim, mode: mode}
}

// Start begins playback.
func (l *Looping[T]) Start() { l.anim.Start() }

// Pause suspends playback.
func (l *Looping[T]) Pause() { l.anim.Pause() }

// Resume continues playback.
func (l *Looping[T]) Resume() { l.anim.Resume() }

// Reset returns the wrapped tween to NotStarted.
func (l *Looping[T]) Reset() { l.anim.Reset() }

// Update advances playback by dt seconds, applying the loop action each
// time the underlying tween completes. Overshoot carries into the next
// cycle so looping values never stutter at the seam.
func (l *Looping[T]) Update(dt float64) {
	if l.anim.state != Running || dt < 0 {
		return
	}
	l.anim.elapsed += dt
	d := l.anim.duration
	if d <= 0 {
		l.anim.elapsed = 0
		if l.mode == Once {
			l.anim.state = Complete
		}
		return
	}
	for l.anim.elapsed >= d {
		switch l.mode {
		case Once:
			l.anim.elapsed = d
			l.anim.state = Complete
			return
		case Loop:
			l.anim.elapsed -= d
		case PingPong:
			l.anim.elapsed -= d
			l.anim.start, l.anim.end = l.anim.end, l.anim.start
		}
	}
}

// Value returns the wrapped tween's current value.
func (l *Looping[T]) Value() T { return l.anim.Value() }

// Progress returns the wrapped tween's normalized progress.
func (l *Looping[T]) Progress() float64 { return l.anim.Progress() }

// IsComplete reports completion; only Once mode ever completes.
func (l *Looping[T]) IsComplete() bool { return l.anim.IsComplete() }

// Mode returns the loop mode.
func (l *Looping[T]) Mode() LoopMode { return l.mode }
