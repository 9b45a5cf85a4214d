// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/glint/internal/util"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// CELL GRID
// =============================================================================

// cell is one character position. bg accumulates alpha blends; ch and fg
// hold the last glyph painted on top of it.
type cell struct {
	ch     rune
	fg     ui.Color
	bg     ui.Color
	bold   bool
	italic bool
}

type grid struct {
	w, h  int
	cells []cell
}

func newGrid(w, h int, clear ui.Color) *grid {
	g := &grid{w: w, h: h, cells: make([]cell, w*h)}
	for i := range g.cells {
		g.cells[i] = cell{ch: ' ', bg: clear}
	}
	return g
}

func (g *grid) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return nil
	}
	return &g.cells[y*g.w+x]
}

// blend composites src over dst with straight alpha.
func blend(dst, src ui.Color) ui.Color {
	if src.A == 255 {
		return src
	}
	if src.A == 0 {
		return dst
	}
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a) + 0.5)
	}
	return ui.Color{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}

func (g *grid) fill(x, y int, c ui.Color) {
	if cl := g.at(x, y); cl != nil {
		cl.bg = blend(cl.bg, c)
		// An opaque fill buries whatever glyph was there.
		if c.A == 255 {
			cl.ch = ' '
		}
	}
}

func (g *grid) glyph(x, y int, ch rune, c ui.Color, bold, italic bool) {
	if cl := g.at(x, y); cl != nil {
		cl.ch = ch
		cl.fg = blend(cl.bg, c)
		cl.bold = bold
		cl.italic = italic
	}
}

// =============================================================================
// PAINTER
// =============================================================================

// Painter is the terminal cell-grid implementation of ui.Painter. One
// coordinate unit is one cell. Draw calls are buffered per z-order and
// rasterized front to back at Render time, so layer ordering holds no
// matter the call order.
type Painter struct {
	w, h  int
	clear ui.Color

	clips  []ui.Rect
	layers [4][]func(*grid)
}

// NewPainter creates a painter for a w×h cell viewport cleared to bg.
func NewPainter(w, h int, bg ui.Color) *Painter {
	return &Painter{w: w, h: h, clear: bg}
}

// Resize drops buffered commands and adopts the new cell dimensions.
func (p *Painter) Resize(w, h int) {
	p.w, p.h = w, h
	p.Reset()
}

// SetClear sets the background the grid clears to each frame.
func (p *Painter) SetClear(bg ui.Color) { p.clear = bg }

// Size returns the viewport in cells.
func (p *Painter) Size() (w, h int) { return p.w, p.h }

// Reset discards all buffered commands. Called at the top of each frame.
func (p *Painter) Reset() {
	for i := range p.layers {
		p.layers[i] = nil
	}
	p.clips = p.clips[:0]
}

func (p *Painter) clip() ui.Rect {
	if len(p.clips) == 0 {
		return ui.RectXYWH(0, 0, float64(p.w), float64(p.h))
	}
	return p.clips[len(p.clips)-1]
}

func (p *Painter) push(z ui.ZOrder, f func(*grid)) {
	p.layers[z] = append(p.layers[z], f)
}

// cellsIn visits every cell whose center lies inside r∩clip.
func cellsIn(r, clip ui.Rect, visit func(x, y int)) {
	r = r.Intersect(clip)
	if r.W() <= 0 || r.H() <= 0 {
		return
	}
	for y := int(math.Floor(r.Min.Y)); y < int(math.Ceil(r.Max.Y)); y++ {
		for x := int(math.Floor(r.Min.X)); x < int(math.Ceil(r.Max.X)); x++ {
			if r.Contains(ui.V(float64(x)+0.5, float64(y)+0.5)) {
				visit(x, y)
			}
		}
	}
}

func (p *Painter) RectFilled(z ui.ZOrder, r ui.Rect, _ float64, c ui.Color) {
	clip := p.clip()
	p.push(z, func(g *grid) {
		cellsIn(r, clip, func(x, y int) { g.fill(x, y, c) })
	})
}

func (p *Painter) RectStroke(z ui.ZOrder, r ui.Rect, _ float64, s ui.Stroke) {
	clip := p.clip()
	p.push(z, func(g *grid) {
		x0, y0 := int(r.Min.X), int(r.Min.Y)
		x1, y1 := int(r.Max.X)-1, int(r.Max.Y)-1
		if x1 <= x0 || y1 <= y0 {
			return
		}
		put := func(x, y int, ch rune) {
			if clip.Contains(ui.V(float64(x)+0.5, float64(y)+0.5)) {
				g.glyph(x, y, ch, s.Color, false, false)
			}
		}
		for x := x0 + 1; x < x1; x++ {
			put(x, y0, '─')
			put(x, y1, '─')
		}
		for y := y0 + 1; y < y1; y++ {
			put(x0, y, '│')
			put(x1, y, '│')
		}
		put(x0, y0, '╭')
		put(x1, y0, '╮')
		put(x0, y1, '╰')
		put(x1, y1, '╯')
	})
}

func (p *Painter) LineSegment(z ui.ZOrder, a, b ui.Vec2, s ui.Stroke) {
	clip := p.clip()
	p.push(z, func(g *grid) {
		dx, dy := b.X-a.X, b.Y-a.Y
		steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
		ch := lineGlyph(dx, dy)
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			pt := ui.V(a.X+dx*t, a.Y+dy*t)
			if clip.Contains(pt) {
				g.glyph(int(pt.X), int(pt.Y), ch, s.Color, false, false)
			}
		}
	})
}

func lineGlyph(dx, dy float64) rune {
	switch {
	case math.Abs(dy) < 0.5:
		return '─'
	case math.Abs(dx) < 0.5:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func (p *Painter) CircleFilled(z ui.ZOrder, center ui.Vec2, radius float64, c ui.Color) {
	clip := p.clip()
	p.push(z, func(g *grid) {
		box := ui.RectXYWH(center.X-radius, center.Y-radius, 2*radius, 2*radius)
		cellsIn(box, clip, func(x, y int) {
			d := center.Sub(ui.V(float64(x)+0.5, float64(y)+0.5)).Len()
			if d <= radius {
				g.fill(x, y, c)
			}
		})
	})
}

func (p *Painter) CircleStroke(z ui.ZOrder, center ui.Vec2, radius float64, s ui.Stroke) {
	p.Arc(z, center, radius, 0, 2*math.Pi, s)
}

func (p *Painter) Arc(z ui.ZOrder, center ui.Vec2, radius, startAngle, sweep float64, s ui.Stroke) {
	clip := p.clip()
	p.push(z, func(g *grid) {
		// Walk the arc at sub-cell resolution. Positive sweep is clockwise,
		// which in y-down screen space is increasing angle.
		steps := int(math.Ceil(radius*math.Abs(sweep)*2)) + 1
		for i := 0; i <= steps; i++ {
			ang := startAngle + sweep*float64(i)/float64(steps)
			pt := ui.V(center.X+radius*math.Cos(ang), center.Y+radius*math.Sin(ang))
			if clip.Contains(pt) {
				g.glyph(int(pt.X), int(pt.Y), '•', s.Color, false, false)
			}
		}
	})
}

func (p *Painter) ConvexPolygon(z ui.ZOrder, points []ui.Vec2, fill ui.Color, stroke ui.Stroke) {
	if len(points) < 3 {
		return
	}
	pts := append([]ui.Vec2(nil), points...)
	clip := p.clip()
	p.push(z, func(g *grid) {
		box := boundsOf(pts)
		if fill.A > 0 {
			cellsIn(box, clip, func(x, y int) {
				if insideConvex(pts, ui.V(float64(x)+0.5, float64(y)+0.5)) {
					g.fill(x, y, fill)
				}
			})
		}
	})
	if stroke.Width > 0 && stroke.Color.A > 0 {
		for i := range pts {
			p.LineSegment(z, pts[i], pts[(i+1)%len(pts)], stroke)
		}
	}
}

func boundsOf(pts []ui.Vec2) ui.Rect {
	r := ui.Rect{Min: pts[0], Max: pts[0]}
	for _, pt := range pts[1:] {
		r.Min.X = math.Min(r.Min.X, pt.X)
		r.Min.Y = math.Min(r.Min.Y, pt.Y)
		r.Max.X = math.Max(r.Max.X, pt.X)
		r.Max.Y = math.Max(r.Max.Y, pt.Y)
	}
	return r
}

// insideConvex tests p against every edge's half-plane. Accepts either
// winding by requiring a consistent sign.
func insideConvex(pts []ui.Vec2, p ui.Vec2) bool {
	sign := 0.0
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

func (p *Painter) Text(z ui.ZOrder, pos ui.Vec2, text string, style ui.TextStyle, c ui.Color) {
	clip := p.clip()
	p.push(z, func(g *grid) {
		x, y := int(pos.X), int(pos.Y)
		for _, r := range text {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if clip.Contains(ui.V(float64(x)+0.5, float64(y)+0.5)) {
				g.glyph(x, y, r, c, style.Bold, style.Italic)
				// Wide runes shadow the following cell.
				if w == 2 {
					if cl := g.at(x+1, y); cl != nil {
						cl.ch = 0
					}
				}
			}
			x += w
		}
	})
}

// MeasureText sizes text in cells; height is always one row.
func (p *Painter) MeasureText(text string, _ ui.TextStyle) ui.Vec2 {
	return ui.V(float64(util.StringWidth(text)), 1)
}

func (p *Painter) ClipPush(r ui.Rect) {
	p.clips = append(p.clips, r.Intersect(p.clip()))
}

func (p *Painter) ClipPop() {
	if len(p.clips) > 0 {
		p.clips = p.clips[:len(p.clips)-1]
	}
}

// =============================================================================
// RENDER
// =============================================================================

// Render rasterizes the buffered frame and returns it as styled lines.
func (p *Painter) Render() string {
	g := newGrid(p.w, p.h, p.clear)
	for _, layer := range p.layers {
		for _, f := range layer {
			f(g)
		}
	}

	var sb strings.Builder
	sb.Grow(p.w * p.h * 4)
	for y := 0; y < p.h; y++ {
		var run strings.Builder
		var runStyle lipgloss.Style
		haveRun := false
		flushRun := func() {
			if haveRun {
				sb.WriteString(runStyle.Render(run.String()))
				run.Reset()
				haveRun = false
			}
		}
		for x := 0; x < p.w; x++ {
			cl := g.at(x, y)
			if cl.ch == 0 {
				continue // shadowed by a wide rune
			}
			st := p.cellStyle(cl)
			if !haveRun || !sameStyle(st, runStyle) {
				flushRun()
				runStyle = st
				haveRun = true
			}
			run.WriteRune(cl.ch)
		}
		flushRun()
		if y < p.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (p *Painter) cellStyle(cl *cell) lipgloss.Style {
	st := lipgloss.NewStyle().Background(lipgloss.Color(cl.bg.HexString()))
	if cl.ch != ' ' {
		st = st.Foreground(lipgloss.Color(cl.fg.HexString()))
		if cl.bold {
			st = st.Bold(true)
		}
		if cl.italic {
			st = st.Italic(true)
		}
	}
	return st
}

func sameStyle(a, b lipgloss.Style) bool {
	return a.GetForeground() == b.GetForeground() &&
		a.GetBackground() == b.GetBackground() &&
		a.GetBold() == b.GetBold() &&
		a.GetItalic() == b.GetItalic()
}
