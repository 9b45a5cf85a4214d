// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"math"

	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// TABS
// =============================================================================

const (
	// tabIndicatorSpeed is the chase rate in index units per second.
	tabIndicatorSpeed = 12.0
	tabPadX           = 14.0
	tabHeight         = 34.0
	tabIndicatorH     = 2.0
	// tabSettleEps is when the indicator counts as arrived; well under a
	// pixel for any realistic tab width.
	tabSettleEps = 0.002
)

// Tabs is a horizontal tab strip with an animated active indicator. The
// active index persists across restarts under the structural key, so a
// relaunched application reopens on the same tab.
type Tabs struct {
	Labels []string
	// Tag disambiguates multiple tab strips in one scope.
	Tag string
	// Speed overrides the indicator chase rate when positive.
	Speed float64
}

// tabsState is the persisted slice of Tabs' cross-frame data.
type tabsState struct {
	Active int
	// IndicatorPos is in index space: 0 is the first tab's span, 1 the
	// second's, fractional between during the chase.
	IndicatorPos float64
}

// TabsResponse reports the strip's selection and the indicator's
// index-space position, fractional while it chases a new tab.
type TabsResponse struct {
	Active       int
	Changed      bool
	IndicatorPos float64
	Rect         ui.Rect
}

// Show draws the strip at the layout cursor and returns the selection.
func (t Tabs) Show(ctx *ui.Context) TabsResponse {
	if len(t.Labels) == 0 {
		return TabsResponse{Rect: ui.RectFromSize(ctx.Cursor(), ui.Vec2{})}
	}
	th := theme.Current(ctx)
	p := ctx.Painter()
	style := ui.TextStyle{Size: 13}

	// Tab widths follow their labels.
	widths := make([]float64, len(t.Labels))
	total := 0.0
	for i, l := range t.Labels {
		widths[i] = p.MeasureText(l, style).X + 2*tabPadX
		total += widths[i]
	}
	r := flowRect(ctx, ui.V(total, tabHeight))

	id := ctx.DeriveID("tabs", t.Tag)
	st := ui.GetPersistedOr(ctx, id, tabsState{})
	if st.Active >= len(t.Labels) {
		st.Active = 0
	}

	changed := false
	x := r.Left()
	starts := make([]float64, len(t.Labels))
	for i := range t.Labels {
		starts[i] = x
		tab := ui.RectXYWH(x, r.Top(), widths[i], tabHeight)
		resp := ctx.Interact(tab, ctx.DeriveID("tab", t.Tag+t.Labels[i]), ui.SenseClick|ui.SenseHover)
		if resp.Clicked && st.Active != i {
			st.Active = i
			changed = true
		}
		fg := th.OnSurfaceVariant()
		if i == st.Active {
			fg = th.OnSurface()
		}
		if resp.Hovered && i != st.Active {
			p.RectFilled(ui.ZMiddle, tab, float64(th.Spacing.CornerRadiusSmall), th.Hover())
		}
		centeredText(p, ui.ZMiddle, tab, t.Labels[i], style, fg)
		x += widths[i]
	}

	// Indicator chases the active index with a proportional step; the
	// step is clamped so a long frame cannot overshoot.
	speed := t.Speed
	if speed <= 0 {
		speed = tabIndicatorSpeed
	}
	target := float64(st.Active)
	step := ui.Clamp(speed*ctx.StableDt(), 0, 1)
	st.IndicatorPos += (target - st.IndicatorPos) * step
	if math.Abs(target-st.IndicatorPos) < tabSettleEps {
		st.IndicatorPos = target
	} else {
		ctx.RequestRepaint()
	}
	ui.PutPersisted(ctx, id, st)

	// Interpolate the indicator span between neighboring tab spans.
	lo := int(math.Floor(st.IndicatorPos))
	lo = int(ui.Clamp(float64(lo), 0, float64(len(t.Labels)-1)))
	hi := lo
	if lo+1 < len(t.Labels) {
		hi = lo + 1
	}
	frac := st.IndicatorPos - float64(lo)
	ix := starts[lo] + (starts[hi]-starts[lo])*frac
	iw := widths[lo] + (widths[hi]-widths[lo])*frac
	bar := ui.RectXYWH(ix+tabPadX/2, r.Bottom()-tabIndicatorH, iw-tabPadX, tabIndicatorH)
	p.RectFilled(ui.ZMiddle, bar, tabIndicatorH/2, th.Primary())

	// Baseline under the whole strip.
	p.LineSegment(ui.ZMiddle, ui.V(r.Left(), r.Bottom()), ui.V(r.Right(), r.Bottom()),
		ui.Stroke{Width: 1, Color: th.OutlineVariant()})

	return TabsResponse{Active: st.Active, Changed: changed, IndicatorPos: st.IndicatorPos, Rect: r}
}
