// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package overlay

import (
	"github.com/jeranaias/glint/diag"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// PLACEMENT
// =============================================================================

// Side selects where floating content sits relative to its anchor.
type Side int

const (
	// SideAuto tries Bottom, Top, Right, Left in that order, taking the
	// first with room.
	SideAuto Side = iota
	SideBottom
	SideTop
	SideRight
	SideLeft
)

func (s Side) String() string {
	switch s {
	case SideBottom:
		return "bottom"
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideLeft:
		return "left"
	default:
		return "auto"
	}
}

const (
	// Spacing is the gap between the anchor edge and the content.
	Spacing = 8.0
	// Inset is how far the content keeps from the viewport edges.
	Inset = 8.0
)

// Place positions floating content of contentSize relative to anchor
// within viewport. Auto evaluates Bottom, Top, Right, Left and takes the
// first side whose free space fits the content plus Spacing; an explicit
// side is honored regardless of room. The result is clamped to the
// viewport inset by Inset, and narrowed to fit when even clamping cannot
// contain it. The chosen side is returned for arrow drawing.
func Place(anchor ui.Rect, contentSize ui.Vec2, preferred Side, viewport ui.Rect) (ui.Rect, Side) {
	side := preferred
	if side == SideAuto {
		side = autoSide(anchor, contentSize, viewport)
	}

	var origin ui.Vec2
	switch side {
	case SideBottom:
		origin = ui.V(anchor.Center().X-contentSize.X/2, anchor.Bottom()+Spacing)
	case SideTop:
		origin = ui.V(anchor.Center().X-contentSize.X/2, anchor.Top()-contentSize.Y-Spacing)
	case SideRight:
		origin = ui.V(anchor.Right()+Spacing, anchor.Center().Y-contentSize.Y/2)
	case SideLeft:
		origin = ui.V(anchor.Left()-contentSize.X-Spacing, anchor.Center().Y-contentSize.Y/2)
	}

	bounds := viewport.Inset(Inset)
	// Never crop by clamping alone; narrow the content when the viewport
	// genuinely cannot hold it.
	size := contentSize
	if size.X > bounds.W() {
		size.X = bounds.W()
	}
	if size.Y > bounds.H() {
		size.Y = bounds.H()
	}
	r := ui.RectFromSize(origin, size).ClampOrigin(bounds)
	return r, side
}

func autoSide(anchor ui.Rect, contentSize ui.Vec2, viewport ui.Rect) Side {
	fits := func(s Side) bool {
		switch s {
		case SideBottom:
			return viewport.Bottom()-anchor.Bottom() >= contentSize.Y+Spacing
		case SideTop:
			return anchor.Top()-viewport.Top() >= contentSize.Y+Spacing
		case SideRight:
			return viewport.Right()-anchor.Right() >= contentSize.X+Spacing
		default:
			return anchor.Left()-viewport.Left() >= contentSize.X+Spacing
		}
	}
	for _, s := range []Side{SideBottom, SideTop, SideRight, SideLeft} {
		if fits(s) {
			return s
		}
	}
	// Nothing fits anywhere; fall back to Bottom and let the clamp and
	// narrowing keep it on screen.
	diag.WarnOnce("overlay/place/overflow",
		"overlay content exceeds available space on every side",
		map[string]any{"content_w": contentSize.X, "content_h": contentSize.Y})
	return SideBottom
}

// ArrowPoints returns the triangle for an overlay arrow pointing from the
// content rect back toward the anchor's mid-edge, for the given side and
// arrow half-width. Callers draw it with the content background color.
func ArrowPoints(content ui.Rect, anchor ui.Rect, side Side, half float64) []ui.Vec2 {
	switch side {
	case SideBottom:
		x := ui.Clamp(anchor.Center().X, content.Left()+half, content.Right()-half)
		tip := ui.V(x, content.Top()-half)
		return []ui.Vec2{tip, ui.V(x-half, content.Top()), ui.V(x+half, content.Top())}
	case SideTop:
		x := ui.Clamp(anchor.Center().X, content.Left()+half, content.Right()-half)
		tip := ui.V(x, content.Bottom()+half)
		return []ui.Vec2{tip, ui.V(x+half, content.Bottom()), ui.V(x-half, content.Bottom())}
	case SideRight:
		y := ui.Clamp(anchor.Center().Y, content.Top()+half, content.Bottom()-half)
		tip := ui.V(content.Left()-half, y)
		return []ui.Vec2{tip, ui.V(content.Left(), y-half), ui.V(content.Left(), y+half)}
	default:
		y := ui.Clamp(anchor.Center().Y, content.Top()+half, content.Bottom()-half)
		tip := ui.V(content.Right()+half, y)
		return []ui.Vec2{tip, ui.V(content.Right(), y+half), ui.V(content.Right(), y-half)}
	}
}
