// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"github.com/jeranaias/glint/gesture"
	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// XY PAD
// =============================================================================

const xyCrossR = 6.0

// XYPad is a two-dimensional control editing a normalized point, one
// velocity drag per axis. Shift-drags switch both axes to velocity mode;
// a double click re-centers. Values are in [0,1] on each axis with y
// increasing downward, matching screen space.
type XYPad struct {
	Size ui.Vec2
	Tag  string
	// Drag overrides the drag tuning; zero value means the kit default.
	Drag gesture.DragConfig
}

// XYPadResponse reports the edited point.
type XYPadResponse struct {
	ui.Response
	Value   ui.Vec2
	Changed bool
}

type xypadState struct {
	dragX *gesture.VelocityDrag
	dragY *gesture.VelocityDrag
}

// Show draws the pad at the layout cursor and returns the edited point.
func (x XYPad) Show(ctx *ui.Context, value ui.Vec2) XYPadResponse {
	size := x.Size
	if size.X <= 0 {
		size.X = 120
	}
	if size.Y <= 0 {
		size.Y = 120
	}

	id := ctx.DeriveID("xypad", x.Tag)
	r := flowRect(ctx, size)
	resp := ctx.Interact(r, id, ui.SenseClickAndDrag)

	st := ui.GetOrElse(ctx, id, func() xypadState {
		mk := func(travel float64) *gesture.VelocityDrag {
			cfg := x.Drag
			if cfg.DragPixels <= 0 {
				cfg = gesture.DefaultDragConfig()
				cfg.DragPixels = travel
			}
			return gesture.NewVelocityDrag(cfg)
		}
		return xypadState{dragX: mk(size.X), dragY: mk(size.Y)}
	})

	value = ui.V(ui.Clamp(value.X, 0, 1), ui.Clamp(value.Y, 0, 1))
	changed := false

	switch {
	case resp.DoubleClicked:
		value = ui.V(0.5, 0.5)
		changed = true
	case resp.DragStarted:
		mods := ctx.Input().Mods
		st.dragX.Begin(value.X, resp.PointerPos, mods)
		st.dragY.Begin(value.Y, resp.PointerPos, mods)
	case resp.Dragged:
		st.dragX.Update(resp.DragDelta.X, 1)
		st.dragY.Update(resp.DragDelta.Y, 1)
		next := ui.V(ui.Clamp(st.dragX.Value(), 0, 1), ui.Clamp(st.dragY.Value(), 0, 1))
		if next != value {
			value = next
			changed = true
		}
	case resp.DragStopped:
		st.dragX.End()
		st.dragY.End()
	}
	ui.Put(ctx, id, st)

	x.draw(ctx, r, value, resp.Hovered || resp.Pressed)
	return XYPadResponse{Response: resp, Value: value, Changed: changed}
}

func (x XYPad) draw(ctx *ui.Context, r ui.Rect, v ui.Vec2, hot bool) {
	th := theme.Current(ctx)
	p := ctx.Painter()
	radius := float64(th.Spacing.CornerRadiusSmall)

	p.RectFilled(ui.ZMiddle, r, radius, th.SurfaceVariant())
	border := th.Outline()
	if hot {
		border = th.Focus()
	}
	p.RectStroke(ui.ZMiddle, r, radius, ui.Stroke{Width: 1, Color: border})

	at := ui.V(r.Left()+r.W()*v.X, r.Top()+r.H()*v.Y)
	guide := ui.Stroke{Width: 1, Color: th.OutlineVariant()}
	p.LineSegment(ui.ZMiddle, ui.V(r.Left(), at.Y), ui.V(r.Right(), at.Y), guide)
	p.LineSegment(ui.ZMiddle, ui.V(at.X, r.Top()), ui.V(at.X, r.Bottom()), guide)
	p.CircleFilled(ui.ZMiddle, at, xyCrossR, th.Primary())
}
