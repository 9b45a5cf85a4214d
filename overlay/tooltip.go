// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package overlay

import (
	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// TOOLTIP
// =============================================================================

const (
	// tooltipDelay is how long the pointer must rest before a tooltip
	// appears, in seconds.
	tooltipDelay = 0.5
	// tooltipFade is the fade-in/out time once the delay has elapsed.
	tooltipFade = 0.150
	tooltipPad  = 6.0
)

// tooltipState is the per-target hover bookkeeping kept in the store.
type tooltipState struct {
	HoverStart float64
	Hovering   bool
}

// Tooltip shows text near anchor after the pointer has hovered it for
// half a second. The hover start is a wall-clock timestamp compared each
// frame, so the delay never drifts with frame rate. Tooltips draw on the
// topmost layer and never take input.
func Tooltip(ctx *ui.Context, anchor ui.Rect, hovered bool, text string) {
	TooltipDelayed(ctx, anchor, hovered, text, tooltipDelay)
}

// TooltipDelayed is Tooltip with an explicit delay in seconds.
func TooltipDelayed(ctx *ui.Context, anchor ui.Rect, hovered bool, text string, delay float64) {
	if text == "" {
		return
	}
	id := ctx.DeriveID("tooltip", text)
	st := ui.GetOr(ctx, id, tooltipState{})
	now := ctx.Time()

	if hovered && !st.Hovering {
		st = tooltipState{HoverStart: now, Hovering: true}
	} else if !hovered && st.Hovering {
		st = tooltipState{}
	}
	ui.Put(ctx, id, st)

	if !st.Hovering {
		return
	}
	held := now - st.HoverStart
	if held < delay {
		// Wake up when the delay elapses.
		ctx.RequestRepaint()
		return
	}

	alpha := ui.Clamp((held-delay)/tooltipFade, 0, 1)
	if alpha < 1 {
		ctx.RequestRepaint()
	}

	th := theme.Current(ctx)
	p := ctx.Painter()
	style := ui.TextStyle{Size: 12}
	size := p.MeasureText(text, style).Add(ui.V(2*tooltipPad, 2*tooltipPad))
	rect, _ := Place(anchor, size, SideTop, ctx.Viewport())

	p.RectFilled(ui.ZTooltip, rect, float64(th.Spacing.CornerRadiusSmall),
		th.SurfaceVariant().ScaleAlpha(alpha))
	p.RectStroke(ui.ZTooltip, rect, float64(th.Spacing.CornerRadiusSmall),
		ui.Stroke{Width: 1, Color: th.OutlineVariant().ScaleAlpha(alpha)})
	p.Text(ui.ZTooltip, rect.Min.Add(ui.V(tooltipPad, tooltipPad)), text, style,
		th.OnSurfaceVariant().ScaleAlpha(alpha))
}
