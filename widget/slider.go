// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"github.com/jeranaias/glint/diag"
	"github.com/jeranaias/glint/gesture"
	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// SLIDER
// =============================================================================

const (
	sliderTrackH   = 4.0
	sliderThumbR   = 7.0
	sliderDefaultW = 180.0
)

// Slider is a horizontal value control driven by a velocity drag: plain
// drags map pixels to value linearly, shift-drags switch to velocity mode
// for fine adjustment, and a double click restores Default. The caller
// owns the value; Show returns the edited one.
type Slider struct {
	Min, Max float64
	// Default is the double-click reset value; clamped into range.
	Default float64
	Width   float64
	Tag     string
	// Drag overrides the drag tuning; zero value means the kit default.
	Drag gesture.DragConfig
}

// SliderResponse reports the edited value.
type SliderResponse struct {
	ui.Response
	Value   float64
	Changed bool
}

// sliderState keeps the drag controller across frames.
type sliderState struct {
	drag *gesture.VelocityDrag
}

// Show draws the slider at the layout cursor and returns the new value.
func (s Slider) Show(ctx *ui.Context, value float64) SliderResponse {
	min, max := s.Min, s.Max
	if min > max {
		diag.WarnOnce("widget/slider/range"+s.Tag, "slider range reversed; swapping",
			map[string]any{"min": min, "max": max})
		min, max = max, min
	}
	if min == max {
		max = min + 1
	}
	w := s.Width
	if w <= 0 {
		w = sliderDefaultW
	}

	id := ctx.DeriveID("slider", s.Tag)
	r := flowRect(ctx, ui.V(w, 2*sliderThumbR))
	resp := ctx.Interact(r, id, ui.SenseClickAndDrag)

	st := ui.GetOrElse(ctx, id, func() sliderState {
		cfg := s.Drag
		if cfg.DragPixels <= 0 {
			cfg = gesture.DefaultDragConfig()
			cfg.DragPixels = w
		}
		return sliderState{drag: gesture.NewVelocityDrag(cfg)}
	})

	value = ui.Clamp(value, min, max)
	changed := false

	switch {
	case resp.DoubleClicked:
		value = ui.Clamp(s.Default, min, max)
		changed = true
	case resp.DragStarted:
		st.drag.Begin(value, resp.PointerPos, ctx.Input().Mods)
	case resp.Dragged:
		st.drag.Update(resp.DragDelta.X, max-min)
		next := ui.Clamp(st.drag.Value(), min, max)
		if next != value {
			value = next
			changed = true
		}
	case resp.DragStopped:
		st.drag.End()
	}
	ui.Put(ctx, id, st)

	s.draw(ctx, r, (value-min)/(max-min), resp.Hovered || resp.Pressed)
	return SliderResponse{Response: resp, Value: value, Changed: changed}
}

func (s Slider) draw(ctx *ui.Context, r ui.Rect, frac float64, hot bool) {
	th := theme.Current(ctx)
	p := ctx.Painter()
	cy := r.Center().Y
	track := ui.RectXYWH(r.Left(), cy-sliderTrackH/2, r.W(), sliderTrackH)

	p.RectFilled(ui.ZMiddle, track, sliderTrackH/2, th.SurfaceVariant())
	fill := ui.RectXYWH(track.Left(), track.Top(), track.W()*frac, sliderTrackH)
	p.RectFilled(ui.ZMiddle, fill, sliderTrackH/2, th.Primary())

	tx := r.Left() + r.W()*frac
	p.CircleFilled(ui.ZMiddle, ui.V(tx, cy), sliderThumbR, th.Primary())
	if hot {
		p.CircleStroke(ui.ZMiddle, ui.V(tx, cy), sliderThumbR+2, ui.Stroke{Width: 2, Color: th.Focus()})
	}
}
