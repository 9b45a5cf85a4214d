// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package overlay places floating content in screen-space: popovers,
// tooltips, menus, modals, drawers and the command palette. All of them
// share one placement algorithm, one open/close animation and one
// dismissal scheme (a full-viewport transparent hit-area one z-order
// below the content).
package overlay

import (
	"github.com/jeranaias/glint/anim"
	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// OPEN/CLOSE ANIMATION
// =============================================================================

const (
	// openDuration is the fade/scale time for every overlay kind.
	openDuration = 0.150
	// closedScale is where the scale animation starts from.
	closedScale = 0.95
	// arrowHalf is the arrow triangle's half width.
	arrowHalf = 6.0
)

// Overlay is the shared open/close state behind every floating surface.
// A single tween drives both opacity and scale; closing reverses it from
// wherever it is, so rapid toggling never jumps.
type Overlay struct {
	// Preferred side for placement; SideAuto picks one with room.
	Preferred Side
	// MaxWidth caps the content width when positive.
	MaxWidth float64
	// ShowArrow draws a triangular cap toward the anchor.
	ShowArrow bool

	progress *anim.Animation[anim.Float]
	open     bool
}

// Open starts the fade-in. Opening an open overlay is a no-op.
func (o *Overlay) Open() { o.setOpen(true) }

// Close starts the fade-out. The overlay keeps drawing until it ends.
func (o *Overlay) Close() { o.setOpen(false) }

// Toggle flips between open and closed.
func (o *Overlay) Toggle() { o.setOpen(!o.open) }

// IsOpen reports the logical state, not the animation's.
func (o *Overlay) IsOpen() bool { return o.open }

// Visible reports whether anything should draw this frame: open, or still
// fading out.
func (o *Overlay) Visible() bool { return o.open || o.Progress() > 0 }

// Progress returns the open fraction in [0,1].
func (o *Overlay) Progress() float64 {
	if o.progress == nil {
		return 0
	}
	return float64(o.progress.Value())
}

func (o *Overlay) setOpen(open bool) {
	if open == o.open && o.progress != nil {
		return
	}
	o.open = open
	target := anim.Float(0)
	if open {
		target = 1
	}
	cur := anim.Float(o.Progress())
	o.progress = anim.New(cur, target, openDuration).WithEasing(anim.EaseOutCubic)
	o.progress.Start()
}

// step advances the animation off the smoothed frame delta and keeps
// repaints coming while it runs.
func (o *Overlay) step(ctx *ui.Context) {
	if o.progress == nil {
		return
	}
	o.progress.Update(ctx.StableDt())
	if !o.progress.IsComplete() {
		ctx.RequestRepaint()
	}
}

// scaledRect shrinks r about its center by the current scale.
func (o *Overlay) scaledRect(r ui.Rect) ui.Rect {
	s := closedScale + (1-closedScale)*o.Progress()
	c := r.Center()
	half := r.Size().Mul(s / 2)
	return ui.Rect{Min: c.Sub(half), Max: c.Add(half)}
}

// fade multiplies a color's alpha by the open progress.
func (o *Overlay) fade(c ui.Color) ui.Color {
	return c.ScaleAlpha(o.Progress())
}

// =============================================================================
// POPOVER
// =============================================================================

// Popover shows floating content anchored to a control. The content only
// receives input once fully open; during the transition it is drawn but
// inert. Returns the placed content rect for callers that anchor further
// overlays to it.
func (o *Overlay) Popover(ctx *ui.Context, anchor ui.Rect, contentSize ui.Vec2, draw func(*ui.Context, ui.Rect)) ui.Rect {
	o.step(ctx)
	if !o.Visible() {
		return ui.Rect{}
	}
	if o.MaxWidth > 0 && contentSize.X > o.MaxWidth {
		contentSize.X = o.MaxWidth
	}

	rect, side := Place(anchor, contentSize, o.Preferred, ctx.Viewport())
	th := theme.Current(ctx)
	p := ctx.Painter()

	// Dismissal backdrop: transparent, full viewport, one z-order below
	// the content. Clicking it closes; clicks on the content rect land on
	// the content's own hit-areas first.
	if o.open {
		backdrop := ctx.InteractOverlay(ctx.Viewport(), ctx.DeriveID("popover-backdrop", ""), ui.SenseClick)
		if backdrop.Clicked && !rect.Contains(backdrop.PointerPos) {
			o.Close()
		}
	}

	drawn := o.scaledRect(rect)
	bg := o.fade(th.Surface())
	p.RectFilled(ui.ZForeground, drawn, float64(th.Spacing.CornerRadius), bg)
	p.RectStroke(ui.ZForeground, drawn, float64(th.Spacing.CornerRadius),
		ui.Stroke{Width: 1, Color: o.fade(th.Outline())})
	if o.ShowArrow {
		p.ConvexPolygon(ui.ZForeground, ArrowPoints(drawn, anchor, side, arrowHalf),
			bg, ui.Stroke{Width: 1, Color: o.fade(th.Outline())})
	}

	if o.open && o.Progress() >= 1 {
		ctx.PushID("popover")
		draw(ctx, rect)
		ctx.PopID()
	}
	return rect
}
