// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

// =============================================================================
// Z-ORDERS
// =============================================================================

// ZOrder selects which of the host's layers a draw command lands on.
// Ascending: Background < Middle < Foreground < Tooltip.
type ZOrder int

const (
	ZBackground ZOrder = iota
	// ZMiddle carries overlay dismissal backdrops, one below their content.
	ZMiddle
	// ZForeground carries overlay content: popovers, modals, menus.
	ZForeground
	// ZTooltip is always on top; tooltips never eat input.
	ZTooltip
)

// =============================================================================
// PAINTER CONTRACT
// =============================================================================

// TextStyle configures a text draw call. Size is in the host's units
// (points for pixel hosts, always 1 for cell-grid hosts).
type TextStyle struct {
	Size   float64
	Bold   bool
	Italic bool
	Mono   bool
}

// Stroke is a line width plus color.
type Stroke struct {
	Width float64
	Color Color
}

// Painter is the drawing surface the host supplies. All coordinates are
// screen-space; colors are 8-bit sRGB with straight alpha. Implementations
// are free to batch; command order within one ZOrder is preserved.
type Painter interface {
	RectFilled(z ZOrder, r Rect, cornerRadius float64, c Color)
	RectStroke(z ZOrder, r Rect, cornerRadius float64, s Stroke)
	LineSegment(z ZOrder, a, b Vec2, s Stroke)
	CircleFilled(z ZOrder, center Vec2, radius float64, c Color)
	CircleStroke(z ZOrder, center Vec2, radius float64, s Stroke)
	// Arc draws a circular arc from startAngle sweeping sweep radians,
	// angles in radians with 0 at +x and positive sweep clockwise.
	Arc(z ZOrder, center Vec2, radius, startAngle, sweep float64, s Stroke)
	ConvexPolygon(z ZOrder, points []Vec2, fill Color, stroke Stroke)
	Text(z ZOrder, pos Vec2, text string, style TextStyle, c Color)
	// MeasureText returns the size the given text would occupy.
	MeasureText(text string, style TextStyle) Vec2
	// ClipPush limits subsequent commands on all layers to r until ClipPop.
	ClipPush(r Rect)
	ClipPop()
}
