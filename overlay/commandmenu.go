// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package overlay

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// COMMAND MENU
// =============================================================================

const (
	cmdWidth      = 480.0
	cmdRowHeight  = 32.0
	cmdInputBar   = 40.0
	cmdMaxRows    = 8
	cmdPad        = 10.0
	cmdEmptyLabel = "No matching commands"
)

// Command is one palette entry. Keywords extend matching beyond the
// visible title.
type Command struct {
	Title    string
	Category string
	Keywords string
}

// CommandMenu is a centered command palette: type to filter, arrows to
// move, Enter to run, Escape to leave. Matching is case-insensitive via
// Unicode folding, so it behaves for non-ASCII titles too.
type CommandMenu struct {
	Overlay
	Commands []Command

	query    string
	selected int
}

// Query returns the current filter text.
func (cm *CommandMenu) Query() string { return cm.query }

// SetQuery replaces the filter text and resets the selection.
func (cm *CommandMenu) SetQuery(q string) {
	cm.query = q
	cm.selected = 0
}

var fold = cases.Fold()

// filtered returns the indices of commands matching the current query.
func (cm *CommandMenu) filtered() []int {
	q := fold.String(strings.TrimSpace(cm.query))
	out := make([]int, 0, len(cm.Commands))
	for i, c := range cm.Commands {
		if q == "" || strings.Contains(fold.String(c.Title+" "+c.Category+" "+c.Keywords), q) {
			out = append(out, i)
		}
	}
	return out
}

// Show draws the palette when visible and returns the index into Commands
// of the command run this frame, or -1. Running a command closes the
// palette, as does Escape or an outside click.
func (cm *CommandMenu) Show(ctx *ui.Context) int {
	cm.step(ctx)
	if !cm.Visible() {
		return -1
	}
	ctx.BlockPointer(true)

	th := theme.Current(ctx)
	p := ctx.Painter()
	vp := ctx.Viewport()
	style := ui.TextStyle{Size: 13}

	matches := cm.filtered()
	if cm.selected >= len(matches) {
		cm.selected = 0
	}

	ran := -1
	if cm.open {
		in := ctx.Input()
		for _, r := range in.Runes {
			cm.query += string(r)
			cm.selected = 0
		}
		if in.KeyPressed(ui.KeyBackspace) && cm.query != "" {
			rs := []rune(cm.query)
			cm.query = string(rs[:len(rs)-1])
			cm.selected = 0
		}
		if in.KeyPressed(ui.KeyDown) && len(matches) > 0 {
			cm.selected = (cm.selected + 1) % len(matches)
		}
		if in.KeyPressed(ui.KeyUp) && len(matches) > 0 {
			cm.selected = (cm.selected + len(matches) - 1) % len(matches)
		}
		if in.KeyPressed(ui.KeyEnter) && cm.selected < len(matches) {
			ran = matches[cm.selected]
		}
		if in.KeyPressed(ui.KeyEscape) {
			cm.Close()
		}
	}

	rows := len(matches)
	if rows == 0 {
		rows = 1
	}
	if rows > cmdMaxRows {
		rows = cmdMaxRows
	}
	size := ui.V(cmdWidth, cmdInputBar+float64(rows)*cmdRowHeight)

	// Sit in the upper third rather than dead center, palette style.
	origin := ui.V(vp.Center().X-size.X/2, vp.Top()+vp.H()*0.18)
	rect := ui.RectFromSize(origin, size).ClampOrigin(vp.Inset(Inset))
	drawn := cm.scaledRect(rect)

	dim := ui.Color{A: uint8(255 * backdropMaxAlpha * cm.Progress())}
	p.RectFilled(ui.ZMiddle, vp, 0, dim)
	if cm.open {
		backdrop := ctx.InteractOverlay(vp, ctx.DeriveID("command-backdrop", ""), ui.SenseClick)
		if backdrop.Clicked && !rect.Contains(backdrop.PointerPos) {
			cm.Close()
		}
	}

	p.RectFilled(ui.ZForeground, drawn, float64(th.Spacing.CornerRadius), cm.fade(th.Surface()))
	p.RectStroke(ui.ZForeground, drawn, float64(th.Spacing.CornerRadius),
		ui.Stroke{Width: 1, Color: cm.fade(th.Outline())})

	if cm.open && cm.Progress() >= 1 {
		// Filter bar.
		queryText := cm.query
		fg := th.OnSurface()
		if queryText == "" {
			queryText = "Type a command…"
			fg = th.OnSurfaceVariant()
		}
		ty := rect.Top() + (cmdInputBar-p.MeasureText(queryText, style).Y)/2
		p.Text(ui.ZForeground, ui.V(rect.Left()+cmdPad, ty), queryText, style, fg)
		barY := rect.Top() + cmdInputBar
		p.LineSegment(ui.ZForeground, ui.V(rect.Left(), barY), ui.V(rect.Right(), barY),
			ui.Stroke{Width: 1, Color: th.OutlineVariant()})

		// Result rows.
		if len(matches) == 0 {
			p.Text(ui.ZForeground, ui.V(rect.Left()+cmdPad, barY+cmdPad), cmdEmptyLabel, style,
				th.OnSurfaceVariant())
		}
		y := barY
		for vi, ci := range matches {
			if vi >= cmdMaxRows {
				break
			}
			c := cm.Commands[ci]
			row := ui.RectXYWH(rect.Left(), y, rect.W(), cmdRowHeight)
			resp := ctx.InteractOverlay(row, ctx.DeriveID("command-row", c.Title), ui.SenseClick|ui.SenseHover)
			if resp.Hovered {
				cm.selected = vi
			}
			if vi == cm.selected {
				p.RectFilled(ui.ZForeground, row.Inset(2), float64(th.Spacing.CornerRadiusSmall), th.Hover())
			}
			if resp.Clicked {
				ran = ci
			}
			rowTy := y + (cmdRowHeight-p.MeasureText(c.Title, style).Y)/2
			p.Text(ui.ZForeground, ui.V(rect.Left()+cmdPad, rowTy), c.Title, style, th.OnSurface())
			if c.Category != "" {
				cw := p.MeasureText(c.Category, style).X
				p.Text(ui.ZForeground, ui.V(rect.Right()-cmdPad-cw, rowTy), c.Category, style,
					th.OnSurfaceVariant())
			}
			y += cmdRowHeight
		}
	}

	if ran >= 0 {
		cm.query = ""
		cm.selected = 0
		cm.Close()
	}
	return ran
}
