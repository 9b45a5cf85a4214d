// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui defines the host-toolkit contract the widget kit renders
// through: geometry and color value types, the per-frame ambient Context,
// the Painter and Input interfaces, and the keyed widget state store.
package ui

import "math"

// =============================================================================
// VECTORS
// =============================================================================

// Vec2 is a point or extent in screen space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns v + o component-wise.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o component-wise.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul scales both components by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Lerp interpolates per-axis; t outside [0,1] extrapolates.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
	}
}

// =============================================================================
// RECTANGLES
// =============================================================================

// Rect is an axis-aligned rectangle, Min inclusive, Max exclusive.
type Rect struct {
	Min, Max Vec2
}

// RectXYWH builds a Rect from an origin and a size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Min: Vec2{x, y}, Max: Vec2{x + w, y + h}}
}

// RectFromSize builds a Rect at origin with the given size.
func RectFromSize(origin, size Vec2) Rect {
	return Rect{Min: origin, Max: origin.Add(size)}
}

func (r Rect) W() float64    { return r.Max.X - r.Min.X }
func (r Rect) H() float64    { return r.Max.Y - r.Min.Y }
func (r Rect) Size() Vec2    { return Vec2{r.W(), r.H()} }
func (r Rect) Center() Vec2  { return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2} }
func (r Rect) Left() float64 { return r.Min.X }
func (r Rect) Right() float64  { return r.Max.X }
func (r Rect) Top() float64    { return r.Min.Y }
func (r Rect) Bottom() float64 { return r.Max.Y }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Translate shifts the rectangle by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Inset shrinks the rectangle by m on every side. A negative m expands.
func (r Rect) Inset(m float64) Rect {
	return Rect{
		Min: Vec2{r.Min.X + m, r.Min.Y + m},
		Max: Vec2{r.Max.X - m, r.Max.Y - m},
	}
}

// Intersect returns the overlapping region, possibly empty.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Min: Vec2{math.Max(r.Min.X, o.Min.X), math.Max(r.Min.Y, o.Min.Y)},
		Max: Vec2{math.Min(r.Max.X, o.Max.X), math.Min(r.Max.Y, o.Max.Y)},
	}
	if out.Max.X < out.Min.X {
		out.Max.X = out.Min.X
	}
	if out.Max.Y < out.Min.Y {
		out.Max.Y = out.Min.Y
	}
	return out
}

// ContainsRect reports whether o lies entirely within r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Min.X >= r.Min.X && o.Min.Y >= r.Min.Y &&
		o.Max.X <= r.Max.X && o.Max.Y <= r.Max.Y
}

// ClampOrigin moves r the minimal distance so it fits inside bounds.
// If r is larger than bounds on an axis it is pinned to bounds.Min.
func (r Rect) ClampOrigin(bounds Rect) Rect {
	d := Vec2{}
	if r.Min.X < bounds.Min.X {
		d.X = bounds.Min.X - r.Min.X
	} else if r.Max.X > bounds.Max.X {
		d.X = bounds.Max.X - r.Max.X
		if r.Min.X+d.X < bounds.Min.X {
			d.X = bounds.Min.X - r.Min.X
		}
	}
	if r.Min.Y < bounds.Min.Y {
		d.Y = bounds.Min.Y - r.Min.Y
	} else if r.Max.Y > bounds.Max.Y {
		d.Y = bounds.Max.Y - r.Max.Y
		if r.Min.Y+d.Y < bounds.Min.Y {
			d.Y = bounds.Min.Y - r.Min.Y
		}
	}
	return r.Translate(d)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
