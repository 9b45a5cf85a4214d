// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package widget is the kit's component set: buttons, inputs, tabs,
// accordions, progress indicators, sliders and a handful of decorative
// effects. Every widget is an immediate-mode value: construct it, call
// Show with the frame's Context, read the response. State that must
// survive the frame lives in the context's keyed store, never on the
// widget value itself.
package widget

import (
	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// SIZES
// =============================================================================

// Size selects a control's vertical metric and text size.
type Size int

const (
	SizeXS Size = iota
	SizeSM
	SizeDefault
	SizeLG
)

// metrics are the per-size constants shared by button-like controls.
type metrics struct {
	Height   float64
	PadX     float64
	TextSize float64
}

func (s Size) metrics() metrics {
	switch s {
	case SizeXS:
		return metrics{Height: 22, PadX: 8, TextSize: 11}
	case SizeSM:
		return metrics{Height: 28, PadX: 10, TextSize: 12}
	case SizeLG:
		return metrics{Height: 44, PadX: 20, TextSize: 15}
	default:
		return metrics{Height: 36, PadX: 14, TextSize: 13}
	}
}

// disabledAlpha halves every color channel's alpha on disabled controls.
const disabledAlpha = 0.5

// hoverGamma darkens filled backgrounds on hover.
const hoverGamma = 0.9

// flowRect places a widget of the given size at the layout cursor and
// advances the cursor below it with the theme's small gap. Widgets that
// keep per-id state interact against this rect with their own id rather
// than going through Context.Allocate, so pointer capture lands on the
// same id the state lives under.
func flowRect(ctx *ui.Context, size ui.Vec2) ui.Rect {
	r := ui.RectFromSize(ctx.Cursor(), size)
	ctx.SetCursor(ui.V(r.Left(), r.Bottom()+theme.Current(ctx).Spacing.XS))
	return r
}

// textCenterY returns the y that vertically centers text of height th in
// a rect of height h starting at top.
func textCenterY(top, h, th float64) float64 {
	return top + (h-th)/2
}

// centeredText draws s centered in r and returns nothing; small shared
// helper so every control lines labels up the same way.
func centeredText(p ui.Painter, z ui.ZOrder, r ui.Rect, s string, style ui.TextStyle, c ui.Color) {
	sz := p.MeasureText(s, style)
	pos := ui.V(r.Center().X-sz.X/2, textCenterY(r.Top(), r.H(), sz.Y))
	p.Text(z, pos, s, style, c)
}
