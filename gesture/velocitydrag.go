// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gesture provides the higher-level interaction controllers
// composite widgets share: velocity-sensitive value dragging, momentum
// scrolling with snap and fling behaviors, magnifying-dock falloff, the
// focus card grid, and the automation curve editor model.
package gesture

import (
	"math"

	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// VELOCITY DRAG
// =============================================================================

// DragMode is the drag state machine's position.
type DragMode int

const (
	// DragNone - no active drag.
	DragNone DragMode = iota
	// DragAbsolute - pixels map linearly onto the value range.
	DragAbsolute
	// DragVelocity - per-frame motion maps onto value deltas, so fast
	// flicks cover the range and slow motion fine-tunes.
	DragVelocity
)

// DragConfig tunes a VelocityDrag.
type DragConfig struct {
	// Sensitivity multiplies per-frame pixel motion in velocity mode.
	Sensitivity float64
	// ThresholdPixels ignores motion smaller than this, killing jitter.
	ThresholdPixels float64
	// Offset is added to every velocity-mode step, a minimum movement.
	Offset float64
	// DragPixels is the pixel travel that spans the full value range in
	// absolute mode.
	DragPixels float64
	// VelocityToggle selects velocity mode when the press carries this
	// modifier; otherwise drags are absolute.
	VelocityToggle ui.Modifiers
}

// DefaultDragConfig matches the audio-control feel the kit ships with.
func DefaultDragConfig() DragConfig {
	return DragConfig{
		Sensitivity:     1.0,
		ThresholdPixels: 1.0,
		Offset:          0,
		DragPixels:      200,
		VelocityToggle:  ui.Modifiers{Shift: true},
	}
}

// VelocityDrag turns pixel motion into value deltas for knobs, sliders and
// curve handles. The accumulated delta survives release so a re-acquired
// drag continues from the last committed value.
type VelocityDrag struct {
	mode        DragMode
	startValue  float64
	startPos    ui.Vec2
	lastPos     ui.Vec2
	accumulated float64
	cfg         DragConfig
}

// NewVelocityDrag creates an idle controller.
func NewVelocityDrag(cfg DragConfig) *VelocityDrag {
	if cfg.DragPixels <= 0 {
		cfg.DragPixels = 200
	}
	return &VelocityDrag{cfg: cfg}
}

// Mode reports the state machine's position.
func (d *VelocityDrag) Mode() DragMode { return d.mode }

// Begin starts a drag at pos over startValue. The held modifiers select
// the mode: the configured toggle picks velocity, anything else absolute.
func (d *VelocityDrag) Begin(startValue float64, pos ui.Vec2, mods ui.Modifiers) {
	d.startValue = startValue
	d.startPos = pos
	d.lastPos = pos
	d.accumulated = 0
	if mods == d.cfg.VelocityToggle && mods.Any() {
		d.mode = DragVelocity
	} else {
		d.mode = DragAbsolute
	}
}

// Update feeds one frame's pixel delta (positive = increasing value
// direction) and returns the resulting value delta for a control spanning
// valueRange. Motion under the threshold returns 0 regardless of mode.
func (d *VelocityDrag) Update(pixelDelta, valueRange float64) float64 {
	if d.mode == DragNone {
		return 0
	}
	if math.Abs(pixelDelta) < d.cfg.ThresholdPixels {
		return 0
	}

	var delta float64
	switch d.mode {
	case DragAbsolute:
		delta = pixelDelta * valueRange / d.cfg.DragPixels
	case DragVelocity:
		step := math.Abs(pixelDelta)*d.cfg.Sensitivity + d.cfg.Offset
		delta = math.Copysign(step, pixelDelta) * valueRange / 200
	}
	d.accumulated += delta
	return delta
}

// Value returns the committed value: start plus everything accumulated.
func (d *VelocityDrag) Value() float64 { return d.startValue + d.accumulated }

// End releases the drag, returning the state machine to DragNone. The
// accumulated delta is kept for Value until the next Begin.
func (d *VelocityDrag) End() { d.mode = DragNone }
