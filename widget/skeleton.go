// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"github.com/jeranaias/glint/anim"
	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// SKELETON
// =============================================================================

// skeletonSweepFrac is the shimmer band's width as a fraction of the
// placeholder's width.
const skeletonSweepFrac = 0.3

// Skeleton is a loading placeholder with a shimmer sweep. The shimmer
// phase is (t·speed) mod 1 off the wall clock, so a page of skeletons
// sweeps in unison.
type Skeleton struct {
	Size ui.Vec2
	// Speed in sweeps per second; 1 when zero.
	Speed float64
}

// Show draws the placeholder at the layout cursor.
func (s Skeleton) Show(ctx *ui.Context) ui.Rect {
	th := theme.Current(ctx)
	p := ctx.Painter()
	size := s.Size
	if size.X <= 0 {
		size.X = 160
	}
	if size.Y <= 0 {
		size.Y = 16
	}
	speed := s.Speed
	if speed <= 0 {
		speed = 1
	}
	r := flowRect(ctx, size)
	radius := float64(th.Spacing.CornerRadiusSmall)

	p.RectFilled(ui.ZMiddle, r, radius, th.SurfaceVariant())

	// Translucent highlight travels from fully left of the rect to fully
	// right of it, so the sweep enters and exits cleanly.
	phase := anim.Saw(ctx.Time(), speed)
	band := size.X * skeletonSweepFrac
	x := r.Left() - band + phase*(size.X+2*band)
	highlight := ui.RectXYWH(x, r.Top(), band, size.Y)
	p.ClipPush(r)
	p.RectFilled(ui.ZMiddle, highlight, radius, th.OnSurface().ScaleAlpha(0.08))
	p.ClipPop()

	ctx.RequestRepaint()
	return r
}
