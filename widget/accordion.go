// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// ACCORDION
// =============================================================================

const (
	// accordionSpeed is the open/close rate in t units per second.
	accordionSpeed = 8.0
	// accordionSkip is the t under which content is not rendered at all.
	accordionSkip = 0.01
	accordionHeaderH = 36.0
)

// AccordionItem is one collapsible section. ContentHeight is the fully
// open content extent; Content paints into the clipped sub-rect.
type AccordionItem struct {
	Title         string
	ContentHeight float64
	Content       func(*ui.Context, ui.Rect)
}

// Accordion is a stack of collapsible sections. Open state and the
// open/close animation live in the session store under each item's
// structural key.
type Accordion struct {
	Items []AccordionItem
	// Tag disambiguates multiple accordions in one scope.
	Tag string
	// AllowMultiple keeps other sections open when one expands.
	AllowMultiple bool
}

// accordionItemState is one section's cross-frame data.
type accordionItemState struct {
	Open bool
	// T is the open fraction, integrated toward 0 or 1 at accordionSpeed.
	T float64
}

// AccordionResponse reports which section toggled this frame, -1 if none.
type AccordionResponse struct {
	Toggled int
	Rect    ui.Rect
}

// Show draws the accordion at the layout cursor.
func (a Accordion) Show(ctx *ui.Context, width float64) AccordionResponse {
	th := theme.Current(ctx)
	p := ctx.Painter()
	style := ui.TextStyle{Size: 13}
	dt := ctx.StableDt()

	top := ctx.Cursor()
	toggled := -1
	y := top.Y

	ids := make([]ui.ID, len(a.Items))
	states := make([]accordionItemState, len(a.Items))
	for i, it := range a.Items {
		ids[i] = ctx.DeriveID("accordion", a.Tag+it.Title)
		states[i] = ui.GetOr(ctx, ids[i], accordionItemState{})
	}

	for i, it := range a.Items {
		st := states[i]

		header := ui.RectXYWH(top.X, y, width, accordionHeaderH)
		resp := ctx.Interact(header, ids[i], ui.SenseClick|ui.SenseHover)
		if resp.Clicked {
			st.Open = !st.Open
			toggled = i
			if st.Open && !a.AllowMultiple {
				for j := range states {
					if j != i {
						states[j].Open = false
					}
				}
			}
		}

		if resp.Hovered {
			p.RectFilled(ui.ZMiddle, header, float64(th.Spacing.CornerRadiusSmall), th.Hover())
		}
		chevron := "▸"
		if st.T > 0.5 {
			chevron = "▾"
		}
		tp := ui.V(header.Left()+10, textCenterY(header.Top(), header.H(), p.MeasureText(it.Title, style).Y))
		p.Text(ui.ZMiddle, tp, chevron+" "+it.Title, style, th.OnSurface())
		p.LineSegment(ui.ZMiddle, ui.V(header.Left(), header.Bottom()), ui.V(header.Right(), header.Bottom()),
			ui.Stroke{Width: 1, Color: th.OutlineVariant()})
		y = header.Bottom()

		// Integrate t toward the target at a fixed rate; linear, not
		// proportional, so open and close take the same time.
		target := 0.0
		if st.Open {
			target = 1.0
		}
		if st.T < target {
			st.T = ui.Clamp(st.T+accordionSpeed*dt, 0, target)
		} else if st.T > target {
			st.T = ui.Clamp(st.T-accordionSpeed*dt, target, 1)
		}
		if st.T != target {
			ctx.RequestRepaint()
		}

		if st.T >= accordionSkip && it.Content != nil {
			h := it.ContentHeight * st.T
			content := ui.RectXYWH(top.X, y, width, h)
			p.ClipPush(content)
			// Content paints at full height; the clip reveals it.
			it.Content(ctx, ui.RectXYWH(top.X, y, width, it.ContentHeight))
			p.ClipPop()
			y += h
		}

		states[i] = st
	}

	for i := range a.Items {
		ui.Put(ctx, ids[i], states[i])
	}

	r := ui.RectXYWH(top.X, top.Y, width, y-top.Y)
	ctx.SetCursor(ui.V(top.X, r.Bottom()+th.Spacing.XS))
	return AccordionResponse{Toggled: toggled, Rect: r}
}
