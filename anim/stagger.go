// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import "github.com/jeranaias/glint/diag"

// Staggered drives one entrance animation across a list of items, each
// item's window offset by its index: item i runs from
// baseDelay + i*staggerDelay for duration seconds.
type Staggered struct {
	baseDelay    float64
	staggerDelay float64
	duration     float64
	easing       EasingFunc
	elapsed      float64
	itemCount    int
	start, end   float64
}

// NewStaggered creates a staggered sequence over itemCount items animating
// from start to end. Zero items is a misconfiguration that degrades to an
// immediately-complete sequence with one warning.
func NewStaggered(itemCount int, start, end float64) *Staggered {
	if itemCount <= 0 {
		if itemCount < 0 {
			itemCount = 0
		}
		diag.WarnOnce("anim/stagger/items", "staggered animation with no items",
			map[string]any{"item_count": itemCount})
	}
	return &Staggered{
		staggerDelay: 0.05,
		duration:     0.3,
		easing:       EaseOutCubic,
		itemCount:    itemCount,
		start:        start,
		end:          end,
	}
}

// Delays sets the lead-in before the first item and the gap between items.
func (s *Staggered) Delays(base, stagger float64) *Staggered {
	s.baseDelay = base
	s.staggerDelay = stagger
	return s
}

// Duration sets each item's animation length in seconds.
func (s *Staggered) Duration(d float64) *Staggered {
	if d < 0 {
		d = 0
	}
	s.duration = d
	return s
}

// WithEasing sets the per-item easing curve; nil restores linear.
func (s *Staggered) WithEasing(e EasingFunc) *Staggered {
	if e == nil {
		e = EaseLinear
	}
	s.easing = e
	return s
}

// Update advances global elapsed time by dt seconds.
func (s *Staggered) Update(dt float64) {
	if dt > 0 {
		s.elapsed += dt
	}
}

// Progress returns item i's raw progress: 0 before its window opens,
// 1 after it closes, linear within. Out-of-range items report 0.
func (s *Staggered) Progress(i int) float64 {
	if i < 0 || i >= s.itemCount {
		return 0
	}
	begin := s.baseDelay + float64(i)*s.staggerDelay
	if s.duration <= 0 {
		if s.elapsed >= begin {
			return 1
		}
		return 0
	}
	p := (s.elapsed - begin) / s.duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Value returns item i's eased value between start and end. Out-of-range
// items hold start.
func (s *Staggered) Value(i int) float64 {
	if i < 0 || i >= s.itemCount {
		return s.start
	}
	t := s.easing(s.Progress(i))
	return s.start + (s.end-s.start)*t
}

// Opacity returns item i's eased progress as a 0-1 alpha factor,
// independent of the start/end range.
func (s *Staggered) Opacity(i int) float64 {
	return s.easing(s.Progress(i))
}

// Scale returns item i's scale growing from `from` to 1.
func (s *Staggered) Scale(i int, from float64) float64 {
	return from + (1-from)*s.easing(s.Progress(i))
}

// YOffset returns item i's vertical entrance offset shrinking from
// distance to 0.
func (s *Staggered) YOffset(i int, distance float64) float64 {
	return distance * (1 - s.easing(s.Progress(i)))
}

// IsComplete reports whether every item's window has closed. An empty
// sequence is complete immediately.
func (s *Staggered) IsComplete() bool {
	if s.itemCount == 0 {
		return true
	}
	last := s.baseDelay + float64(s.itemCount-1)*s.staggerDelay + s.duration
	// Summing the window terms accumulates float error, so exact boundary
	// frames need a tolerance to count as closed.
	return s.elapsed >= last-1e-9
}

// Elapsed returns the global elapsed time in seconds.
func (s *Staggered) Elapsed() float64 { return s.elapsed }
