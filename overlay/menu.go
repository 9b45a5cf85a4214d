// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package overlay

import (
	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// MENU
// =============================================================================

const (
	menuItemHeight = 28.0
	menuPadX       = 12.0
	menuSepHeight  = 9.0
	menuMinWidth   = 160.0
)

// MenuItem is one row of a menu. A Separator renders as a rule and is
// never selectable.
type MenuItem struct {
	Label     string
	Shortcut  string
	Disabled  bool
	Separator bool
}

// Menu is an anchored popover of selectable rows. Selecting a row closes
// the menu; so does clicking anywhere outside it.
type Menu struct {
	Overlay
	Items []MenuItem
}

// Show draws the menu when visible and returns the index of the item
// picked this frame, or -1.
func (m *Menu) Show(ctx *ui.Context, anchor ui.Rect) int {
	if !m.Visible() {
		return -1
	}

	th := theme.Current(ctx)
	p := ctx.Painter()
	style := ui.TextStyle{Size: 13}

	w := menuMinWidth
	h := 0.0
	for _, it := range m.Items {
		if it.Separator {
			h += menuSepHeight
			continue
		}
		h += menuItemHeight
		lw := p.MeasureText(it.Label, style).X + 2*menuPadX
		if it.Shortcut != "" {
			lw += p.MeasureText(it.Shortcut, style).X + menuPadX
		}
		if lw > w {
			w = lw
		}
	}
	size := ui.V(w, h+2*float64(th.Spacing.CornerRadiusSmall))

	picked := -1
	m.ShowArrow = false
	m.Popover(ctx, anchor, size, func(ctx *ui.Context, rect ui.Rect) {
		y := rect.Top() + float64(th.Spacing.CornerRadiusSmall)
		for i, it := range m.Items {
			if it.Separator {
				mid := y + menuSepHeight/2
				p.LineSegment(ui.ZForeground,
					ui.V(rect.Left()+menuPadX/2, mid), ui.V(rect.Right()-menuPadX/2, mid),
					ui.Stroke{Width: 1, Color: th.OutlineVariant()})
				y += menuSepHeight
				continue
			}
			row := ui.RectXYWH(rect.Left(), y, rect.W(), menuItemHeight)
			fg := th.OnSurface()
			if it.Disabled {
				fg = fg.ScaleAlpha(0.5)
			} else {
				resp := ctx.InteractOverlay(row, ctx.DeriveID("menu-item", it.Label), ui.SenseClick|ui.SenseHover)
				if resp.Hovered {
					p.RectFilled(ui.ZForeground, row.Inset(2), float64(th.Spacing.CornerRadiusSmall), th.Hover())
				}
				if resp.Clicked {
					picked = i
				}
			}
			ty := y + (menuItemHeight-p.MeasureText(it.Label, style).Y)/2
			p.Text(ui.ZForeground, ui.V(rect.Left()+menuPadX, ty), it.Label, style, fg)
			if it.Shortcut != "" {
				sw := p.MeasureText(it.Shortcut, style).X
				p.Text(ui.ZForeground, ui.V(rect.Right()-menuPadX-sw, ty), it.Shortcut, style,
					th.OnSurfaceVariant())
			}
			y += menuItemHeight
		}
	})

	if picked >= 0 {
		m.Close()
	}
	return picked
}
