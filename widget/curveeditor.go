// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"github.com/jeranaias/glint/gesture"
	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// CURVE EDITOR
// =============================================================================

const (
	curveHandleR   = 5.0
	curveHitRadius = 8.0
	// curveFillAlpha is the area-under-curve tint.
	curveFillAlpha = 0.15
)

// CurveEditor paints and edits a gesture.Curve: grid, sampled polyline,
// tinted fill, playhead and draggable breakpoint handles. The caller owns
// the Curve; the editor mutates it through its public operations.
type CurveEditor struct {
	Curve *gesture.Curve
	Tag   string
	// Playhead is a time marker line; hidden when negative.
	Playhead float64
	// GridDivisions is the number of vertical grid lines; 8 when zero.
	GridDivisions int
}

// curveEditorState tracks the handle drag in flight.
type curveEditorState struct {
	dragIndex int
}

// Show draws the editor into size at the layout cursor and reports
// whether the curve changed this frame.
func (ce CurveEditor) Show(ctx *ui.Context, size ui.Vec2) bool {
	if ce.Curve == nil {
		return false
	}
	th := theme.Current(ctx)
	p := ctx.Painter()

	id := ctx.DeriveID("curve-editor", ce.Tag)
	r := flowRect(ctx, size)
	ce.Curve.SetCanvas(r.Inset(curveHandleR))
	resp := ctx.Interact(r, id, ui.SenseClickAndDrag)

	st := ui.GetOr(ctx, id, curveEditorState{dragIndex: -1})
	changed := false

	switch {
	case resp.DoubleClicked:
		// Double click on empty canvas adds a point; on a handle removes it.
		if hit := ce.Curve.HitTest(resp.PointerPos, curveHitRadius); hit >= 0 {
			ce.Curve.RemovePoint(hit)
		} else {
			ce.Curve.AddPoint(ce.Curve.XToTime(resp.PointerPos.X), ce.Curve.YToValue(resp.PointerPos.Y))
		}
		st.dragIndex = -1
		changed = true
	case resp.DragStarted:
		st.dragIndex = ce.Curve.HitTest(resp.PointerPos, curveHitRadius)
	case resp.Dragged && st.dragIndex >= 0:
		t := ce.Curve.XToTime(resp.PointerPos.X)
		v := ce.Curve.YToValue(resp.PointerPos.Y)
		st.dragIndex = ce.Curve.MovePoint(st.dragIndex, t, v)
		changed = true
	case resp.DragStopped:
		st.dragIndex = -1
	}
	ui.Put(ctx, id, st)

	// Frame and grid.
	radius := float64(th.Spacing.CornerRadiusSmall)
	p.RectFilled(ui.ZMiddle, r, radius, th.SurfaceVariant())
	p.RectStroke(ui.ZMiddle, r, radius, ui.Stroke{Width: 1, Color: th.Outline()})
	div := ce.GridDivisions
	if div <= 0 {
		div = 8
	}
	grid := ui.Stroke{Width: 1, Color: th.OutlineVariant()}
	for i := 1; i < div; i++ {
		x := r.Left() + r.W()*float64(i)/float64(div)
		p.LineSegment(ui.ZMiddle, ui.V(x, r.Top()), ui.V(x, r.Bottom()), grid)
	}
	for i := 1; i < 4; i++ {
		y := r.Top() + r.H()*float64(i)/4
		p.LineSegment(ui.ZMiddle, ui.V(r.Left(), y), ui.V(r.Right(), y), grid)
	}

	ce.drawCurve(ctx, r)

	if ce.Playhead >= 0 {
		x := ce.Curve.TimeToX(ce.Playhead)
		p.LineSegment(ui.ZMiddle, ui.V(x, r.Top()), ui.V(x, r.Bottom()),
			ui.Stroke{Width: 1, Color: th.Secondary()})
	}

	// Handles on top.
	for _, pt := range ce.Curve.Points() {
		at := ui.V(ce.Curve.TimeToX(pt.Time), ce.Curve.ValueToY(pt.Value))
		p.CircleFilled(ui.ZMiddle, at, curveHandleR, th.Primary())
		p.CircleStroke(ui.ZMiddle, at, curveHandleR, ui.Stroke{Width: 1, Color: th.Background()})
	}

	return changed
}

func (ce CurveEditor) drawCurve(ctx *ui.Context, r ui.Rect) {
	th := theme.Current(ctx)
	p := ctx.Painter()
	samples := ce.Curve.Sample(int(r.W()))
	if len(samples) < 2 {
		return
	}

	canvas := r.Inset(curveHandleR)
	fill := th.Primary().ScaleAlpha(curveFillAlpha)
	stroke := ui.Stroke{Width: 2, Color: th.Primary()}
	segment := func(a, b ui.Vec2) {
		// Fill under the segment down to the canvas floor, then the line.
		p.ConvexPolygon(ui.ZMiddle, []ui.Vec2{
			a, b,
			ui.V(b.X, canvas.Bottom()), ui.V(a.X, canvas.Bottom()),
		}, fill, ui.Stroke{})
		p.LineSegment(ui.ZMiddle, a, b, stroke)
	}

	// Samples cover the breakpoint span; outside it the curve holds its
	// end values flat to the canvas edges.
	lo, hi := ce.Curve.SampleSpan()
	x0, x1 := ce.Curve.TimeToX(lo), ce.Curve.TimeToX(hi)
	y0 := ce.Curve.ValueToY(samples[0])
	yN := ce.Curve.ValueToY(samples[len(samples)-1])
	if x0 > canvas.Left() {
		segment(ui.V(canvas.Left(), y0), ui.V(x0, y0))
	}
	if x1 > x0 {
		stepX := (x1 - x0) / float64(len(samples)-1)
		prev := ui.V(x0, y0)
		for i := 1; i < len(samples); i++ {
			at := ui.V(x0+float64(i)*stepX, ce.Curve.ValueToY(samples[i]))
			segment(prev, at)
			prev = at
		}
	}
	if x1 < canvas.Right() {
		segment(ui.V(x1, yN), ui.V(canvas.Right(), yN))
	}
}
