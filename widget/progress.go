// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"math"

	"github.com/jeranaias/glint/anim"
	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// PROGRESS
// =============================================================================

const (
	progressTrackH = 6.0
	// indeterminateSpeed is the spinning arc's rate in turns per second.
	indeterminateSpeed = 0.9
)

// Progress is a determinate 0-100 indicator. Out-of-range values clamp
// on construction and on every update, so the internal value is always
// displayable.
type Progress struct {
	value float64
}

// NewProgress creates a progress indicator at v, clamped to [0,100].
func NewProgress(v float64) Progress {
	return Progress{value: ui.Clamp(v, 0, 100)}
}

// SetValue updates the value, clamped to [0,100].
func (pr *Progress) SetValue(v float64) { pr.value = ui.Clamp(v, 0, 100) }

// Value returns the clamped value.
func (pr Progress) Value() float64 { return pr.value }

// ShowLinear draws a horizontal bar of the given width at the cursor.
func (pr Progress) ShowLinear(ctx *ui.Context, width float64) ui.Rect {
	th := theme.Current(ctx)
	p := ctx.Painter()
	r := flowRect(ctx, ui.V(width, progressTrackH))

	p.RectFilled(ui.ZMiddle, r, progressTrackH/2, th.SurfaceVariant())
	if pr.value > 0 {
		fill := ui.RectXYWH(r.Left(), r.Top(), width*pr.value/100, progressTrackH)
		p.RectFilled(ui.ZMiddle, fill, progressTrackH/2, th.Primary())
	}
	return r
}

// ShowCircular draws a ring of the given radius at the cursor. The arc
// starts at twelve o'clock and sweeps clockwise in proportion to the
// value.
func (pr Progress) ShowCircular(ctx *ui.Context, radius float64) ui.Rect {
	th := theme.Current(ctx)
	p := ctx.Painter()
	r := flowRect(ctx, ui.V(2*radius, 2*radius))
	c := r.Center()

	p.CircleStroke(ui.ZMiddle, c, radius, ui.Stroke{Width: 3, Color: th.SurfaceVariant()})
	if pr.value > 0 {
		p.Arc(ui.ZMiddle, c, radius, -math.Pi/2, 2*math.Pi*pr.value/100,
			ui.Stroke{Width: 3, Color: th.Primary()})
	}
	return r
}

// ShowIndeterminate draws a spinning arc for unknown durations. The arc's
// length breathes between a quarter and a half turn while it rotates;
// both derive from the wall clock, so every instance on screen is in
// phase and pausing is impossible by construction.
func ShowIndeterminate(ctx *ui.Context, radius float64) ui.Rect {
	th := theme.Current(ctx)
	p := ctx.Painter()
	r := flowRect(ctx, ui.V(2*radius, 2*radius))
	c := r.Center()

	t := ctx.Time()
	start := anim.RotationAt(t, indeterminateSpeed)
	sweep := math.Pi/2 + math.Pi/2*anim.Pulse(t, 0.8)
	p.Arc(ui.ZMiddle, c, radius, start, sweep, ui.Stroke{Width: 3, Color: th.Primary()})
	ctx.RequestRepaint()
	return r
}
