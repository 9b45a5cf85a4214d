// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gesture

import (
	"math"
	"sort"

	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// AUTOMATION CURVE EDITOR
// =============================================================================

// CurvePoint is one breakpoint on an automation curve. Points are kept
// sorted by Time; Value lives in the curve's configured value range.
type CurvePoint struct {
	Time  float64
	Value float64
}

// Curve is the model behind an automation curve editor: a sorted list of
// breakpoints over a time range, rendered into and edited through a
// canvas rectangle. Values between points are linearly interpolated.
type Curve struct {
	points   []CurvePoint
	timeMax  float64
	valueMin float64
	valueMax float64

	canvas ui.Rect

	snapEnabled  bool
	snapInterval float64
}

// NewCurve creates a curve spanning [0, timeMax] in time and
// [valueMin, valueMax] in value.
func NewCurve(timeMax, valueMin, valueMax float64) *Curve {
	if timeMax <= 0 {
		timeMax = 1
	}
	if valueMax < valueMin {
		valueMin, valueMax = valueMax, valueMin
	}
	return &Curve{
		timeMax:  timeMax,
		valueMin: valueMin,
		valueMax: valueMax,
	}
}

// SetCanvas sets the pixel rectangle the curve is drawn into. All the
// coordinate transforms below are relative to it.
func (c *Curve) SetCanvas(r ui.Rect) { c.canvas = r }

// SetSnap enables or disables time snapping at the given interval.
// A non-positive interval disables snapping regardless of enabled.
func (c *Curve) SetSnap(enabled bool, interval float64) {
	c.snapEnabled = enabled && interval > 0
	c.snapInterval = interval
}

// Points returns the breakpoints in time order. The slice is shared;
// callers must not mutate it.
func (c *Curve) Points() []CurvePoint { return c.points }

// -----------------------------------------------------------------------------
// Canvas transforms
// -----------------------------------------------------------------------------

// TimeToX maps a time to a canvas x coordinate.
func (c *Curve) TimeToX(t float64) float64 {
	return c.canvas.Min.X + (t/c.timeMax)*c.canvas.W()
}

// XToTime maps a canvas x coordinate to a time, clamped to [0, timeMax].
func (c *Curve) XToTime(x float64) float64 {
	if c.canvas.W() <= 0 {
		return 0
	}
	t := (x - c.canvas.Min.X) / c.canvas.W() * c.timeMax
	return ui.Clamp(t, 0, c.timeMax)
}

// ValueToY maps a value to a canvas y coordinate. Larger values sit
// higher on the canvas, so the axis is flipped.
func (c *Curve) ValueToY(v float64) float64 {
	span := c.valueMax - c.valueMin
	if span <= 0 {
		return c.canvas.Min.Y
	}
	frac := (v - c.valueMin) / span
	return c.canvas.Max.Y - frac*c.canvas.H()
}

// YToValue maps a canvas y coordinate to a value, clamped to the value
// range.
func (c *Curve) YToValue(y float64) float64 {
	if c.canvas.H() <= 0 {
		return c.valueMin
	}
	frac := (c.canvas.Max.Y - y) / c.canvas.H()
	v := c.valueMin + frac*(c.valueMax-c.valueMin)
	return ui.Clamp(v, c.valueMin, c.valueMax)
}

// snapTime rounds t to the nearest snap interval when snapping is on.
func (c *Curve) snapTime(t float64) float64 {
	if !c.snapEnabled {
		return t
	}
	return math.Round(t/c.snapInterval) * c.snapInterval
}

// -----------------------------------------------------------------------------
// Editing
// -----------------------------------------------------------------------------

// AddPoint inserts a breakpoint at (t, v), snapped and clamped, and
// returns its index in the sorted list.
func (c *Curve) AddPoint(t, v float64) int {
	t = ui.Clamp(c.snapTime(t), 0, c.timeMax)
	v = ui.Clamp(v, c.valueMin, c.valueMax)
	c.points = append(c.points, CurvePoint{Time: t, Value: v})
	sort.SliceStable(c.points, func(i, j int) bool {
		return c.points[i].Time < c.points[j].Time
	})
	for i, p := range c.points {
		if p.Time == t && p.Value == v {
			return i
		}
	}
	return len(c.points) - 1
}

// RemovePoint deletes breakpoint i. Out-of-range indices are ignored.
func (c *Curve) RemovePoint(i int) {
	if i < 0 || i >= len(c.points) {
		return
	}
	c.points = append(c.points[:i], c.points[i+1:]...)
}

// MovePoint drags breakpoint i to (t, v). The time is snapped and
// clamped, the value clamped, and the list re-sorted; the point's new
// index is returned so callers can keep a live drag attached to it.
func (c *Curve) MovePoint(i int, t, v float64) int {
	if i < 0 || i >= len(c.points) {
		return i
	}
	moved := CurvePoint{
		Time:  ui.Clamp(c.snapTime(t), 0, c.timeMax),
		Value: ui.Clamp(v, c.valueMin, c.valueMax),
	}
	c.points[i] = moved
	sort.SliceStable(c.points, func(a, b int) bool {
		return c.points[a].Time < c.points[b].Time
	})
	for j, p := range c.points {
		if p == moved {
			return j
		}
	}
	return i
}

// HitTest returns the index of the breakpoint whose canvas position is
// within radius pixels of pos, or -1.
func (c *Curve) HitTest(pos ui.Vec2, radius float64) int {
	best, bestDist := -1, radius
	for i, p := range c.points {
		at := ui.V(c.TimeToX(p.Time), c.ValueToY(p.Value))
		if d := pos.Sub(at).Len(); d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// -----------------------------------------------------------------------------
// Evaluation
// -----------------------------------------------------------------------------

// ValueAt evaluates the curve at time t by linear interpolation between
// the surrounding breakpoints. Before the first point it holds the
// first value; after the last it holds the last. An empty curve yields
// valueMin.
func (c *Curve) ValueAt(t float64) float64 {
	if len(c.points) == 0 {
		return c.valueMin
	}
	if t <= c.points[0].Time {
		return c.points[0].Value
	}
	last := c.points[len(c.points)-1]
	if t >= last.Time {
		return last.Value
	}
	for i := 1; i < len(c.points); i++ {
		a, b := c.points[i-1], c.points[i]
		if t > b.Time {
			continue
		}
		span := b.Time - a.Time
		if span <= 0 {
			return b.Value
		}
		frac := (t - a.Time) / span
		return a.Value + (b.Value-a.Value)*frac
	}
	return last.Value
}

// Sample evaluates the curve at evenly spaced times between the first
// and last breakpoints for rendering; outside that span the curve only
// holds its end values. An empty curve samples the whole time range.
// The sample count follows the canvas width with a floor of 100 so
// narrow canvases still draw a smooth polyline.
func (c *Curve) Sample(canvasWidth int) []float64 {
	n := canvasWidth
	if n < 100 {
		n = 100
	}
	lo, hi := 0.0, c.timeMax
	if len(c.points) > 0 {
		lo = c.points[0].Time
		hi = c.points[len(c.points)-1].Time
	}
	out := make([]float64, n)
	if hi <= lo {
		for i := range out {
			out[i] = c.ValueAt(lo)
		}
		return out
	}
	for i := range out {
		t := lo + (hi-lo)*float64(i)/float64(n-1)
		out[i] = c.ValueAt(t)
	}
	return out
}

// SampleSpan returns the time range Sample covers: the first and last
// breakpoint times, or the full range for an empty curve.
func (c *Curve) SampleSpan() (lo, hi float64) {
	if len(c.points) == 0 {
		return 0, c.timeMax
	}
	return c.points[0].Time, c.points[len(c.points)-1].Time
}
