// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package overlay

import (
	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// DRAWER
// =============================================================================

// Drawer is a panel that slides in from one viewport edge over a dimming
// backdrop. Dismissal rules match Modal: Escape always, backdrop click
// when Closable.
type Drawer struct {
	Overlay
	// Edge is the viewport edge the panel slides from. SideAuto is
	// treated as SideLeft.
	Edge Side
	// Closable lets a backdrop click dismiss the drawer.
	Closable bool
}

// Show draws the drawer when visible. thickness is the panel's extent
// perpendicular to its edge; the other axis spans the viewport.
func (d *Drawer) Show(ctx *ui.Context, thickness float64, draw func(*ui.Context, ui.Rect)) {
	d.step(ctx)
	if !d.Visible() {
		return
	}
	ctx.BlockPointer(true)

	th := theme.Current(ctx)
	p := ctx.Painter()
	vp := ctx.Viewport()

	dim := ui.Color{A: uint8(255 * backdropMaxAlpha * d.Progress())}
	p.RectFilled(ui.ZMiddle, vp, 0, dim)

	rect := d.panelRect(vp, thickness)

	if d.open {
		backdrop := ctx.InteractOverlay(vp, ctx.DeriveID("drawer-backdrop", ""), ui.SenseClick)
		if d.Closable && backdrop.Clicked && !rect.Contains(backdrop.PointerPos) {
			d.Close()
		}
		if ctx.Input().KeyPressed(ui.KeyEscape) {
			d.Close()
		}
	}

	p.RectFilled(ui.ZForeground, rect, 0, th.Surface())
	p.RectStroke(ui.ZForeground, rect, 0, ui.Stroke{Width: 1, Color: th.Outline()})

	if d.open && d.Progress() >= 1 {
		ctx.PushID("drawer")
		draw(ctx, rect)
		ctx.PopID()
	}
}

// panelRect positions the panel with the closed fraction hanging off its
// edge, so the open animation reads as a slide rather than a fade.
func (d *Drawer) panelRect(vp ui.Rect, thickness float64) ui.Rect {
	off := thickness * (1 - d.Progress())
	switch d.Edge {
	case SideRight:
		return ui.RectXYWH(vp.Right()-thickness+off, vp.Top(), thickness, vp.H())
	case SideTop:
		return ui.RectXYWH(vp.Left(), vp.Top()-off, vp.W(), thickness)
	case SideBottom:
		return ui.RectXYWH(vp.Left(), vp.Bottom()-thickness+off, vp.W(), thickness)
	default:
		return ui.RectXYWH(vp.Left()-off, vp.Top(), thickness, vp.H())
	}
}
