// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package term

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/glint/ui"
)

// rasterize runs the buffered commands into a fresh grid for inspection.
func rasterize(p *Painter) *grid {
	g := newGrid(p.w, p.h, p.clear)
	for _, layer := range p.layers {
		for _, f := range layer {
			f(g)
		}
	}
	return g
}

func TestPainterRectFilled(t *testing.T) {
	p := NewPainter(10, 5, ui.Color{A: 255})
	red := ui.RGB(255, 0, 0)
	p.RectFilled(ui.ZBackground, ui.RectXYWH(2, 1, 3, 2), 0, red)
	g := rasterize(p)

	assert.Equal(t, red, g.at(2, 1).bg)
	assert.Equal(t, red, g.at(4, 2).bg)
	// Outside the rect stays cleared.
	assert.Equal(t, ui.Color{A: 255}, g.at(1, 1).bg)
	assert.Equal(t, ui.Color{A: 255}, g.at(5, 1).bg)
}

func TestPainterAlphaBlends(t *testing.T) {
	p := NewPainter(4, 2, ui.RGB(0, 0, 0))
	p.RectFilled(ui.ZBackground, ui.RectXYWH(0, 0, 4, 2), 0, ui.RGBA(255, 255, 255, 128))
	g := rasterize(p)

	c := g.at(0, 0).bg
	assert.InDelta(t, 128, int(c.R), 2)
	assert.Equal(t, uint8(255), c.A)
}

func TestPainterZOrderWins(t *testing.T) {
	p := NewPainter(4, 2, ui.Color{A: 255})
	blue := ui.RGB(0, 0, 255)
	red := ui.RGB(255, 0, 0)
	// Issued foreground first; background must still end up underneath.
	p.RectFilled(ui.ZForeground, ui.RectXYWH(0, 0, 4, 2), 0, blue)
	p.RectFilled(ui.ZBackground, ui.RectXYWH(0, 0, 4, 2), 0, red)
	g := rasterize(p)
	assert.Equal(t, blue, g.at(1, 1).bg)
}

func TestPainterClipLimitsDrawing(t *testing.T) {
	p := NewPainter(10, 4, ui.Color{A: 255})
	red := ui.RGB(255, 0, 0)
	p.ClipPush(ui.RectXYWH(0, 0, 3, 4))
	p.RectFilled(ui.ZMiddle, ui.RectXYWH(0, 0, 10, 4), 0, red)
	p.ClipPop()
	g := rasterize(p)

	assert.Equal(t, red, g.at(2, 0).bg)
	assert.Equal(t, ui.Color{A: 255}, g.at(3, 0).bg)
}

func TestPainterTextAndWideRunes(t *testing.T) {
	p := NewPainter(12, 2, ui.Color{A: 255})
	p.Text(ui.ZMiddle, ui.V(1, 0), "a日b", ui.TextStyle{}, ui.RGB(255, 255, 255))
	g := rasterize(p)

	assert.Equal(t, 'a', g.at(1, 0).ch)
	assert.Equal(t, '日', g.at(2, 0).ch)
	assert.Equal(t, rune(0), g.at(3, 0).ch) // shadowed by the wide rune
	assert.Equal(t, 'b', g.at(4, 0).ch)

	assert.Equal(t, ui.V(4, 1), p.MeasureText("a日b", ui.TextStyle{}))
}

func TestPainterRenderShape(t *testing.T) {
	p := NewPainter(6, 3, ui.Color{A: 255})
	p.Text(ui.ZMiddle, ui.V(0, 1), "hi", ui.TextStyle{}, ui.RGB(255, 255, 255))
	out := p.Render()

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "hi")
}

func TestPainterResetDropsCommands(t *testing.T) {
	p := NewPainter(4, 2, ui.Color{A: 255})
	p.RectFilled(ui.ZMiddle, ui.RectXYWH(0, 0, 4, 2), 0, ui.RGB(255, 0, 0))
	p.Reset()
	g := rasterize(p)
	assert.Equal(t, ui.Color{A: 255}, g.at(0, 0).bg)
}

func TestLineGlyphOrientation(t *testing.T) {
	assert.Equal(t, '─', lineGlyph(5, 0))
	assert.Equal(t, '│', lineGlyph(0, 5))
	assert.Equal(t, '╲', lineGlyph(4, 4))
	assert.Equal(t, '╱', lineGlyph(4, -4))
}

func TestTranslateKeyNavigation(t *testing.T) {
	ev, runes, ok := translateKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, ok)
	assert.Empty(t, runes)
	assert.Equal(t, ui.KeyEnter, ev.Key)

	ev, _, ok = translateKey(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.True(t, ok)
	assert.Equal(t, ui.KeyTab, ev.Key)
	assert.True(t, ev.Mods.Shift)
}

func TestTranslateKeyRunes(t *testing.T) {
	_, runes, ok := translateKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("é")})
	require.True(t, ok)
	assert.Equal(t, []rune("é"), runes)

	_, runes, ok = translateKey(tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, ok)
	assert.Equal(t, []rune{' '}, runes)

	// Alt-chords are host chrome, not text.
	_, _, ok = translateKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true})
	assert.False(t, ok)
}

func TestMouseDoubleClickDetection(t *testing.T) {
	h := New(func(*ui.Context) {}, Options{})

	h.onMouse(tea.MouseMsg{X: 5, Y: 3, Type: tea.MouseLeft})
	assert.True(t, h.in.PointerPressed)
	assert.Equal(t, 1, h.in.ClickCount)

	h.clearFrameInput()
	h.onMouse(tea.MouseMsg{X: 5, Y: 3, Type: tea.MouseRelease})
	assert.True(t, h.in.PointerReleased)
	h.clearFrameInput()

	// Second press at the same cell inside the window: double.
	h.onMouse(tea.MouseMsg{X: 5, Y: 3, Type: tea.MouseLeft})
	assert.Equal(t, 2, h.in.ClickCount)
}

func TestMouseDragRepeatsAreNotPresses(t *testing.T) {
	h := New(func(*ui.Context) {}, Options{})

	h.onMouse(tea.MouseMsg{X: 2, Y: 2, Type: tea.MouseLeft})
	h.clearFrameInput()
	h.onMouse(tea.MouseMsg{X: 3, Y: 2, Type: tea.MouseLeft})

	assert.False(t, h.in.PointerPressed)
	assert.True(t, h.in.PointerDown)
	assert.Equal(t, ui.V(3, 2), h.in.Pointer)
}
