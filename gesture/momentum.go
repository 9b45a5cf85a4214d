// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gesture

import (
	"math"

	"github.com/jeranaias/glint/diag"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// MOMENTUM POSITION
// =============================================================================

// BehaviorKind selects what happens to a MomentumPosition after release.
type BehaviorKind int

const (
	// ContinuousWithMomentum coasts with the release velocity, decaying
	// by a damping factor each update until it drops under a floor.
	ContinuousWithMomentum BehaviorKind = iota
	// SnapToPageBoundaries eases to the nearest integer position, biased
	// one page onward when released with a fast fling.
	SnapToPageBoundaries
)

// Sampling constants for release-velocity estimation.
const (
	// velocitySampleMinDt ignores drag samples closer together than 5 ms;
	// they produce wildly noisy velocity estimates.
	velocitySampleMinDt = 0.005
	// velocityRecordFloor discards velocities under 0.2 units/s so a
	// still finger does not register as a fling.
	velocityRecordFloor = 0.2
	// snapBiasVelocity is the fling speed past which the snap target
	// moves one page in the fling direction.
	snapBiasVelocity = 0.5
	// snapEpsilon ends a snap when the position is this close to target.
	snapEpsilon = 0.001
)

// MomentumPosition is a one-dimensional scrolled or paged position with
// drag physics. The position is clamped to [min, max] at all times, under
// any call sequence.
type MomentumPosition struct {
	position         float64
	grabbedPosition  float64
	releaseVelocity  float64
	min, max         float64
	lastDragTime     float64
	lastDragPosition float64
	dragging         bool
	animating        bool

	kind BehaviorKind

	// ContinuousWithMomentum state.
	velocity    float64
	damping     float64
	minVelocity float64

	// SnapToPageBoundaries state.
	targetPosition float64
	snapSpeed      float64
}

// NewMomentum creates a momentum position over [min, max] with the
// continuous coasting behavior. Swapped limits are a misconfiguration;
// they are reordered with a warning.
func NewMomentum(min, max float64) *MomentumPosition {
	if min > max {
		diag.WarnOnce("gesture/momentum/limits", "momentum limits reversed; swapping",
			map[string]any{"min": min, "max": max})
		min, max = max, min
	}
	return &MomentumPosition{
		min:         min,
		max:         max,
		position:    min,
		kind:        ContinuousWithMomentum,
		damping:     0.95,
		minVelocity: 0.5,
	}
}

// WithMomentum selects continuous coasting: velocity decays by damping
// each update and coasting stops under minVelocity.
func (m *MomentumPosition) WithMomentum(damping, minVelocity float64) *MomentumPosition {
	m.kind = ContinuousWithMomentum
	m.damping = ui.Clamp(damping, 0, 1)
	m.minVelocity = math.Abs(minVelocity)
	return m
}

// WithSnap selects page snapping at the given approach speed (fraction of
// remaining distance per second).
func (m *MomentumPosition) WithSnap(snapSpeed float64) *MomentumPosition {
	m.kind = SnapToPageBoundaries
	m.snapSpeed = math.Abs(snapSpeed)
	return m
}

// Position returns the current position, always within limits.
func (m *MomentumPosition) Position() float64 { return m.position }

// SetPosition jumps the position, cancelling any animation.
func (m *MomentumPosition) SetPosition(p float64) {
	m.position = ui.Clamp(p, m.min, m.max)
	m.animating = false
	m.velocity = 0
}

// IsDragging reports whether a drag is in progress.
func (m *MomentumPosition) IsDragging() bool { return m.dragging }

// IsAnimating reports whether release physics are still running; owners
// keep requesting repaints while true.
func (m *MomentumPosition) IsAnimating() bool { return m.animating }

// BeginDrag snapshots the grab position and stops any running animation.
func (m *MomentumPosition) BeginDrag(now float64) {
	m.grabbedPosition = m.position
	m.releaseVelocity = 0
	m.velocity = 0
	m.dragging = true
	m.animating = false
	m.lastDragTime = now
	m.lastDragPosition = m.position
}

// Drag moves the position to grab+delta (delta is cumulative since
// BeginDrag, in position units) and samples release velocity.
func (m *MomentumPosition) Drag(delta, now float64) {
	if !m.dragging {
		return
	}
	m.position = ui.Clamp(m.grabbedPosition+delta, m.min, m.max)

	dt := now - m.lastDragTime
	if dt > velocitySampleMinDt {
		v := (m.position - m.lastDragPosition) / dt
		if math.Abs(v) > velocityRecordFloor {
			m.releaseVelocity = v
		}
		m.lastDragTime = now
		m.lastDragPosition = m.position
	}
}

// EndDrag hands the sampled release velocity to the behavior.
func (m *MomentumPosition) EndDrag() {
	if !m.dragging {
		return
	}
	m.dragging = false

	switch m.kind {
	case ContinuousWithMomentum:
		m.velocity = m.releaseVelocity
		m.animating = math.Abs(m.velocity) >= m.minVelocity
	case SnapToPageBoundaries:
		target := math.Round(m.position)
		if m.releaseVelocity > snapBiasVelocity {
			target = math.Ceil(m.position)
		} else if m.releaseVelocity < -snapBiasVelocity {
			target = math.Floor(m.position)
		}
		m.targetPosition = ui.Clamp(target, m.min, m.max)
		m.animating = true
	}
}

// Update advances release physics by dt seconds and reports whether the
// position changed. A false return with IsAnimating() false means the
// owner can stop requesting repaints.
func (m *MomentumPosition) Update(dt float64) bool {
	if !m.animating || dt <= 0 {
		return false
	}
	before := m.position

	switch m.kind {
	case ContinuousWithMomentum:
		m.position = ui.Clamp(m.position+m.velocity*dt, m.min, m.max)
		m.velocity *= m.damping
		if math.Abs(m.velocity) < m.minVelocity || m.position == m.min || m.position == m.max {
			m.animating = false
			m.velocity = 0
		}
	case SnapToPageBoundaries:
		step := ui.Clamp(m.snapSpeed*dt, 0, 1)
		m.position = ui.Clamp(m.position+(m.targetPosition-m.position)*step, m.min, m.max)
		if math.Abs(m.targetPosition-m.position) < snapEpsilon {
			m.position = m.targetPosition
			m.animating = false
		}
	}
	return m.position != before
}
