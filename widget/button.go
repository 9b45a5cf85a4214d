// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// BUTTON
// =============================================================================

// ButtonVariant selects a button's visual treatment. Colors come from
// theme roles only; variants never carry literal colors.
type ButtonVariant int

const (
	// VariantDefault is a filled primary button.
	VariantDefault ButtonVariant = iota
	// VariantSecondary is a filled secondary button.
	VariantSecondary
	// VariantOutline is transparent with a border.
	VariantOutline
	// VariantGhost is transparent until hovered.
	VariantGhost
	// VariantLink looks like inline text with an underline.
	VariantLink
)

// Button is a clickable label.
type Button struct {
	Label    string
	Variant  ButtonVariant
	Size     Size
	Disabled bool
	// Tag overrides the structural id, for buttons that move around.
	Tag string
}

// ButtonResponse extends the base response with keyboard focus.
type ButtonResponse struct {
	ui.Response
	Focused bool
}

// Show draws the button at the layout cursor and reports interaction.
func (b Button) Show(ctx *ui.Context) ButtonResponse {
	m := b.Size.metrics()
	style := ui.TextStyle{Size: m.TextSize}
	p := ctx.Painter()
	labelW := p.MeasureText(b.Label, style).X
	size := ui.V(labelW+2*m.PadX, m.Height)

	id := ctx.DeriveID("button", b.Tag+b.Label)
	sense := ui.SenseClick | ui.SenseHover
	if b.Disabled {
		sense = 0
	}
	return b.show(ctx, flowRect(ctx, size), id, sense)
}

// ShowAt draws the button in an explicit rect instead of the cursor flow.
func (b Button) ShowAt(ctx *ui.Context, r ui.Rect) ButtonResponse {
	id := ctx.DeriveID("button", b.Tag+b.Label)
	sense := ui.SenseClick | ui.SenseHover
	if b.Disabled {
		sense = 0
	}
	return b.show(ctx, r, id, sense)
}

func (b Button) show(ctx *ui.Context, r ui.Rect, id ui.ID, sense ui.Sense) ButtonResponse {
	resp := ctx.Interact(r, id, sense)

	focused := ui.GetOr(ctx, id, false)
	if resp.Clicked {
		focused = true
	} else if ctx.Input().PointerPressed && !resp.Hovered {
		focused = false
	}
	ui.Put(ctx, id, focused)

	b.draw(ctx, r, resp.Hovered, focused)
	return ButtonResponse{Response: resp, Focused: focused}
}

func (b Button) draw(ctx *ui.Context, r ui.Rect, hovered, focused bool) {
	th := theme.Current(ctx)
	p := ctx.Painter()
	m := b.Size.metrics()
	style := ui.TextStyle{Size: m.TextSize}
	radius := float64(th.Spacing.CornerRadiusSmall)

	var bg, fg ui.Color
	var border ui.Color
	hasBorder := false

	switch b.Variant {
	case VariantSecondary:
		bg, fg = th.Secondary(), th.Background()
	case VariantOutline:
		fg = th.OnSurface()
		border, hasBorder = th.Outline(), true
	case VariantGhost:
		fg = th.OnSurface()
	case VariantLink:
		fg = th.Primary()
	default:
		bg, fg = th.Primary(), th.Background()
	}

	if hovered && !b.Disabled {
		switch b.Variant {
		case VariantDefault, VariantSecondary:
			bg = bg.Gamma(hoverGamma)
		case VariantGhost, VariantOutline:
			p.RectFilled(ui.ZMiddle, r, radius, th.Hover())
		case VariantLink:
			fg = fg.Gamma(hoverGamma)
		}
	}
	if b.Disabled {
		bg = bg.ScaleAlpha(disabledAlpha)
		fg = fg.ScaleAlpha(disabledAlpha)
		border = border.ScaleAlpha(disabledAlpha)
	}

	if bg.A > 0 {
		p.RectFilled(ui.ZMiddle, r, radius, bg)
	}
	if hasBorder {
		p.RectStroke(ui.ZMiddle, r, radius, ui.Stroke{Width: 1, Color: border})
	}
	if focused && !b.Disabled {
		p.RectStroke(ui.ZMiddle, r.Inset(-2), radius+2, ui.Stroke{Width: 2, Color: th.Focus()})
	}

	centeredText(p, ui.ZMiddle, r, b.Label, style, fg)
	if b.Variant == VariantLink {
		sz := p.MeasureText(b.Label, style)
		y := textCenterY(r.Top(), r.H(), sz.Y) + sz.Y + 1
		x := r.Center().X - sz.X/2
		p.LineSegment(ui.ZMiddle, ui.V(x, y), ui.V(x+sz.X, y), ui.Stroke{Width: 1, Color: fg})
	}
}
