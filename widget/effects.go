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
// DECORATIVE EFFECTS
// =============================================================================

// Sparkles scatters twinkling points over a region. Everything derives
// from the wall clock and the particle index: no state, no drift, and
// two sparkle fields over the same region render identically.
type Sparkles struct {
	// Count is the particle count; 24 when zero.
	Count int
	// Frequency is twinkles per second per particle; 0.8 when zero.
	Frequency float64
	// MaxRadius is the largest particle radius; 2 when zero.
	MaxRadius float64
}

// Show draws the field into r.
func (s Sparkles) Show(ctx *ui.Context, r ui.Rect) {
	th := theme.Current(ctx)
	p := ctx.Painter()
	count := s.Count
	if count <= 0 {
		count = 24
	}
	freq := s.Frequency
	if freq <= 0 {
		freq = 0.8
	}
	maxR := s.MaxRadius
	if maxR <= 0 {
		maxR = 2
	}

	t := ctx.Time()
	for i := 0; i < count; i++ {
		seed := uint64(i)
		// Deterministic scatter: two phases per particle.
		x := r.Left() + anim.Phase(seed*2+1)*r.W()
		y := r.Top() + anim.Phase(seed*2+2)*r.H()
		tw := anim.Twinkle(t, freq, seed)
		if tw < 0.05 {
			continue
		}
		c := th.Primary().ScaleAlpha(tw)
		p.CircleFilled(ui.ZBackground, ui.V(x, y), maxR*tw, c)
	}
	ctx.RequestRepaint()
}

// Shimmer sweeps a soft diagonal highlight across a region, the
// decorative cousin of the skeleton sweep. Used behind hero cards and
// empty states.
type Shimmer struct {
	// Frequency is sweeps per second; 0.5 when zero.
	Frequency float64
}

// Show draws the sweep into r.
func (s Shimmer) Show(ctx *ui.Context, r ui.Rect) {
	th := theme.Current(ctx)
	p := ctx.Painter()
	freq := s.Frequency
	if freq <= 0 {
		freq = 0.5
	}

	phase := anim.Saw(ctx.Time(), freq)
	band := r.W() * 0.25
	x := r.Left() - band + phase*(r.W()+2*band)

	p.ClipPush(r)
	// Three nested bands approximate a soft gradient.
	for i, a := range []float64{0.03, 0.05, 0.08} {
		inset := band * float64(i) * 0.25
		bandRect := ui.RectXYWH(x+inset, r.Top(), band-2*inset, r.H())
		p.RectFilled(ui.ZBackground, bandRect, 0, th.OnSurface().ScaleAlpha(a))
	}
	p.ClipPop()
	ctx.RequestRepaint()
}

// MovingBorder runs a bright dash around a rectangle's perimeter, phase
// locked to the wall clock.
type MovingBorder struct {
	// Frequency is laps per second; 0.25 when zero.
	Frequency float64
	// DashFrac is the lit fraction of the perimeter; 0.15 when zero.
	DashFrac float64
}

// Show draws the border on r.
func (mb MovingBorder) Show(ctx *ui.Context, r ui.Rect) {
	th := theme.Current(ctx)
	p := ctx.Painter()
	freq := mb.Frequency
	if freq <= 0 {
		freq = 0.25
	}
	frac := mb.DashFrac
	if frac <= 0 {
		frac = 0.15
	}

	p.RectStroke(ui.ZBackground, r, 0, ui.Stroke{Width: 1, Color: th.OutlineVariant()})

	perim := 2 * (r.W() + r.H())
	head := anim.Saw(ctx.Time(), freq) * perim
	steps := 24
	for i := 0; i < steps; i++ {
		d := head - float64(i)/float64(steps)*frac*perim
		for d < 0 {
			d += perim
		}
		fade := 1 - float64(i)/float64(steps)
		pt := perimeterPoint(r, d)
		p.CircleFilled(ui.ZBackground, pt, 1.2, th.Primary().ScaleAlpha(fade))
	}
	ctx.RequestRepaint()
}

// perimeterPoint walks distance d clockwise around r from the top-left
// corner.
func perimeterPoint(r ui.Rect, d float64) ui.Vec2 {
	d = math.Mod(d, 2*(r.W()+r.H()))
	switch {
	case d < r.W():
		return ui.V(r.Left()+d, r.Top())
	case d < r.W()+r.H():
		return ui.V(r.Right(), r.Top()+(d-r.W()))
	case d < 2*r.W()+r.H():
		return ui.V(r.Right()-(d-r.W()-r.H()), r.Bottom())
	default:
		return ui.V(r.Left(), r.Bottom()-(d-2*r.W()-r.H()))
	}
}
