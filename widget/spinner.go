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
// SPINNER
// =============================================================================

// Spinner is a purely time-derived loading indicator: rotation is
// t·speed mod 2π off the wall clock, never integrated, so spinners in
// different panels always agree.
type Spinner struct {
	// Radius of the spinner circle.
	Radius float64
	// Speed in full turns per second; 1 when zero.
	Speed float64
	// Label drawn to the spinner's right.
	Label string
}

// Show draws the spinner at the layout cursor.
func (s Spinner) Show(ctx *ui.Context) ui.Rect {
	th := theme.Current(ctx)
	p := ctx.Painter()
	radius := s.Radius
	if radius <= 0 {
		radius = 8
	}
	speed := s.Speed
	if speed <= 0 {
		speed = 1
	}
	style := ui.TextStyle{Size: 13}

	w := 2 * radius
	if s.Label != "" {
		w += 8 + p.MeasureText(s.Label, style).X
	}
	r := flowRect(ctx, ui.V(w, 2*radius))
	c := ui.V(r.Left()+radius, r.Center().Y)

	rot := anim.RotationAt(ctx.Time(), speed)
	// Three-quarter arc reads as motion better than dots at small sizes.
	p.Arc(ui.ZMiddle, c, radius, rot, 1.5*math.Pi, ui.Stroke{Width: 2, Color: th.Primary()})
	if s.Label != "" {
		tp := ui.V(r.Left()+2*radius+8, textCenterY(r.Top(), r.H(), p.MeasureText(s.Label, style).Y))
		p.Text(ui.ZMiddle, tp, s.Label, style, th.OnSurfaceVariant())
	}
	ctx.RequestRepaint()
	return r
}
