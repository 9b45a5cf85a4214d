// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package overlay

import (
	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// MODAL
// =============================================================================

// backdropMaxAlpha is the fully-open backdrop opacity, 50%.
const backdropMaxAlpha = 0.5

// Modal is a centered dialog over a dimming backdrop. While visible it
// blocks pointer input to everything underneath. Escape always closes;
// clicking the backdrop closes only when Closable.
type Modal struct {
	Overlay
	// Closable lets a backdrop click dismiss the dialog.
	Closable bool
}

// Show draws the modal when visible. The dialog is centered in the
// viewport at contentSize (narrowed to fit). Content receives input only
// once the open animation has finished.
func (m *Modal) Show(ctx *ui.Context, contentSize ui.Vec2, draw func(*ui.Context, ui.Rect)) {
	m.step(ctx)
	if !m.Visible() {
		return
	}
	ctx.BlockPointer(true)

	th := theme.Current(ctx)
	p := ctx.Painter()
	vp := ctx.Viewport()

	// Dim everything underneath; the alpha rides the same tween as the
	// dialog's fade and scale.
	dim := ui.Color{A: uint8(255 * backdropMaxAlpha * m.Progress())}
	p.RectFilled(ui.ZMiddle, vp, 0, dim)

	if m.open {
		backdrop := ctx.InteractOverlay(vp, ctx.DeriveID("modal-backdrop", ""), ui.SenseClick)
		rect := m.contentRect(vp, contentSize)
		if m.Closable && backdrop.Clicked && !rect.Contains(backdrop.PointerPos) {
			m.Close()
		}
		if ctx.Input().KeyPressed(ui.KeyEscape) {
			m.Close()
		}
	}

	rect := m.contentRect(vp, contentSize)
	drawn := m.scaledRect(rect)
	p.RectFilled(ui.ZForeground, drawn, float64(th.Spacing.CornerRadiusLarge), m.fade(th.Surface()))
	p.RectStroke(ui.ZForeground, drawn, float64(th.Spacing.CornerRadiusLarge),
		ui.Stroke{Width: 1, Color: m.fade(th.Outline())})

	if m.open && m.Progress() >= 1 {
		ctx.PushID("modal")
		draw(ctx, rect)
		ctx.PopID()
	}
}

func (m *Modal) contentRect(vp ui.Rect, size ui.Vec2) ui.Rect {
	bounds := vp.Inset(Inset)
	if size.X > bounds.W() {
		size.X = bounds.W()
	}
	if size.Y > bounds.H() {
		size.Y = bounds.H()
	}
	origin := vp.Center().Sub(size.Mul(0.5))
	return ui.RectFromSize(origin, size)
}
