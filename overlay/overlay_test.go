// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// recPainter records draw calls so tests can assert what was emitted.
type recPainter struct {
	rects []ui.Rect
	zs    []ui.ZOrder
	texts []string
}

func (p *recPainter) RectFilled(z ui.ZOrder, r ui.Rect, _ float64, _ ui.Color) {
	p.rects = append(p.rects, r)
	p.zs = append(p.zs, z)
}
func (p *recPainter) RectStroke(ui.ZOrder, ui.Rect, float64, ui.Stroke)      {}
func (p *recPainter) LineSegment(ui.ZOrder, ui.Vec2, ui.Vec2, ui.Stroke)     {}
func (p *recPainter) CircleFilled(ui.ZOrder, ui.Vec2, float64, ui.Color)     {}
func (p *recPainter) CircleStroke(ui.ZOrder, ui.Vec2, float64, ui.Stroke)    {}
func (p *recPainter) Arc(ui.ZOrder, ui.Vec2, float64, float64, float64, ui.Stroke) {}
func (p *recPainter) ConvexPolygon(ui.ZOrder, []ui.Vec2, ui.Color, ui.Stroke) {}
func (p *recPainter) Text(z ui.ZOrder, _ ui.Vec2, s string, _ ui.TextStyle, _ ui.Color) {
	p.texts = append(p.texts, s)
	p.zs = append(p.zs, z)
}
func (p *recPainter) MeasureText(s string, _ ui.TextStyle) ui.Vec2 {
	return ui.V(float64(len(s))*7, 14)
}
func (p *recPainter) ClipPush(ui.Rect) {}
func (p *recPainter) ClipPop()         {}

func (p *recPainter) reset() { p.rects, p.zs, p.texts = nil, nil, nil }

type harness struct {
	mem   *ui.Memory
	paint *recPainter
	now   float64
}

func newHarness() *harness {
	return &harness{mem: ui.NewMemory(nil), paint: &recPainter{}}
}

// frame runs one paint pass with the given input, advancing time by one
// 60 Hz tick.
func (h *harness) frame(in *ui.Input, f func(*ui.Context)) bool {
	h.now += 1.0 / 60.0
	// Any pointer activity marks the pointer present, the way a host would.
	if in.Pointer != (ui.Vec2{}) || in.PointerDown || in.PointerPressed || in.PointerReleased {
		in.HasPointer = true
	}
	h.paint.reset()
	ctx := h.mem.BeginFrame(ui.FrameInfo{
		Input:    in,
		Painter:  h.paint,
		Viewport: ui.RectXYWH(0, 0, 800, 600),
		Time:     h.now,
		StableDt: 1.0 / 60.0,
	})
	theme.Install(ctx, theme.Dark())
	f(ctx)
	return h.mem.EndFrame(ctx)
}

// =============================================================================
// PLACEMENT
// =============================================================================

func TestPlaceAutoPrefersBottom(t *testing.T) {
	vp := ui.RectXYWH(0, 0, 800, 600)
	anchor := ui.RectXYWH(300, 100, 120, 30)
	r, side := Place(anchor, ui.V(200, 150), SideAuto, vp)
	assert.Equal(t, SideBottom, side)
	assert.Equal(t, anchor.Bottom()+Spacing, r.Top())
	assert.InDelta(t, anchor.Center().X, r.Center().X, 1e-9)
	assert.True(t, vp.Inset(Inset).ContainsRect(r))
}

func TestPlaceAutoFlipsToTopAtViewportBottom(t *testing.T) {
	// Anchor hugging the bottom edge: no room below, plenty above.
	vp := ui.RectXYWH(0, 0, 800, 600)
	anchor := ui.RectXYWH(20, 590, 100, 10)
	r, side := Place(anchor, ui.V(200, 200), SideAuto, vp)
	assert.Equal(t, SideTop, side)
	assert.Equal(t, anchor.Top()-200-Spacing, r.Top())
	// The left clamp keeps it inside the inset viewport.
	assert.True(t, vp.Inset(Inset).ContainsRect(r))
	assert.Equal(t, Inset, r.Left())
}

func TestPlaceHonorsExplicitSide(t *testing.T) {
	vp := ui.RectXYWH(0, 0, 800, 600)
	anchor := ui.RectXYWH(300, 550, 100, 40)
	// Bottom has no room, but an explicit side is not second-guessed;
	// the clamp keeps the result on screen.
	r, side := Place(anchor, ui.V(150, 100), SideBottom, vp)
	assert.Equal(t, SideBottom, side)
	assert.True(t, vp.Inset(Inset).ContainsRect(r))
}

func TestPlaceOverflowNarrowsAndClamps(t *testing.T) {
	vp := ui.RectXYWH(0, 0, 800, 600)
	anchor := ui.RectXYWH(390, 290, 20, 20)
	r, side := Place(anchor, ui.V(900, 700), SideAuto, vp)
	// Nothing fits anywhere; fall back to Bottom, narrowed to the inset
	// viewport instead of failing.
	assert.Equal(t, SideBottom, side)
	assert.Equal(t, vp.W()-2*Inset, r.W())
	assert.Equal(t, vp.H()-2*Inset, r.H())
	assert.True(t, vp.Inset(Inset).ContainsRect(r))
}

func TestPlaceSideRight(t *testing.T) {
	vp := ui.RectXYWH(0, 0, 800, 600)
	anchor := ui.RectXYWH(100, 280, 40, 40)
	r, side := Place(anchor, ui.V(120, 80), SideRight, vp)
	assert.Equal(t, SideRight, side)
	assert.Equal(t, anchor.Right()+Spacing, r.Left())
	assert.InDelta(t, anchor.Center().Y, r.Center().Y, 1e-9)
}

// =============================================================================
// OPEN/CLOSE LIFECYCLE
// =============================================================================

func TestOverlayOpenCloseLifecycle(t *testing.T) {
	h := newHarness()
	o := &Overlay{}
	anchor := ui.RectXYWH(100, 100, 80, 30)
	show := func(ctx *ui.Context) {
		o.Popover(ctx, anchor, ui.V(200, 100), func(*ui.Context, ui.Rect) {})
	}
	// Hidden overlays draw nothing and request nothing.
	repaint := h.frame(&ui.Input{}, show)
	assert.False(t, repaint)
	assert.Empty(t, h.paint.rects)

	o.Open()
	repaint = h.frame(&ui.Input{}, show)
	assert.True(t, repaint)
	assert.NotEmpty(t, h.paint.rects)
	assert.Greater(t, o.Progress(), 0.0)
	assert.Less(t, o.Progress(), 1.0)

	// 150 ms at 60 Hz is ten frames; leave slack for the first partial.
	for i := 0; i < 15; i++ {
		repaint = h.frame(&ui.Input{}, show)
	}
	assert.Equal(t, 1.0, o.Progress())
	assert.False(t, repaint)

	// Closing reverses; once settled nothing draws or repaints.
	o.Close()
	h.frame(&ui.Input{}, show)
	assert.Less(t, o.Progress(), 1.0)
	for i := 0; i < 15; i++ {
		repaint = h.frame(&ui.Input{}, show)
	}
	assert.Equal(t, 0.0, o.Progress())
	assert.False(t, o.Visible())
	assert.Empty(t, h.paint.rects)
}

func TestOverlayRapidToggleNoJump(t *testing.T) {
	h := newHarness()
	o := &Overlay{}
	show := func(ctx *ui.Context) {
		o.Popover(ctx, ui.RectXYWH(0, 0, 50, 20), ui.V(100, 60), func(*ui.Context, ui.Rect) {})
	}
	o.Open()
	for i := 0; i < 4; i++ {
		h.frame(&ui.Input{}, show)
	}
	mid := o.Progress()
	require.Greater(t, mid, 0.0)
	require.Less(t, mid, 1.0)

	// Closing mid-flight resumes from the current progress.
	o.Close()
	assert.InDelta(t, mid, o.Progress(), 1e-9)
	h.frame(&ui.Input{}, show)
	assert.Less(t, o.Progress(), mid)
}

func TestPopoverOutsideClickCloses(t *testing.T) {
	h := newHarness()
	o := &Overlay{}
	anchor := ui.RectXYWH(100, 100, 80, 30)
	show := func(ctx *ui.Context) {
		o.Popover(ctx, anchor, ui.V(200, 100), func(*ui.Context, ui.Rect) {})
	}
	o.Open()
	for i := 0; i < 15; i++ {
		h.frame(&ui.Input{}, show)
	}
	require.True(t, o.IsOpen())

	// Click far away from the content: the backdrop intercepts it.
	click := &ui.Input{Pointer: ui.V(700, 500), PointerPressed: true, PointerDown: true, ClickCount: 1}
	h.frame(click, show)
	h.frame(&ui.Input{Pointer: ui.V(700, 500), PointerReleased: true}, show)
	assert.False(t, o.IsOpen())
}

// =============================================================================
// MODAL
// =============================================================================

func TestModalEscapeClosesAndBackdropClears(t *testing.T) {
	h := newHarness()
	m := &Modal{Closable: true}
	show := func(ctx *ui.Context) {
		m.Show(ctx, ui.V(300, 200), func(*ui.Context, ui.Rect) {})
	}
	m.Open()
	var blocked bool
	for i := 0; i < 15; i++ {
		h.frame(&ui.Input{}, func(ctx *ui.Context) {
			show(ctx)
			blocked = ctx.PointerBlocked()
		})
	}
	require.True(t, m.IsOpen())
	assert.True(t, blocked)

	esc := &ui.Input{Keys: []ui.KeyEvent{{Key: ui.KeyEscape}}}
	h.frame(esc, show)
	assert.False(t, m.IsOpen())

	// Let the close animation finish: no lingering backdrop rect.
	for i := 0; i < 15; i++ {
		h.frame(&ui.Input{}, show)
	}
	assert.Empty(t, h.paint.rects)
	h.frame(&ui.Input{}, func(ctx *ui.Context) {
		show(ctx)
		assert.False(t, ctx.PointerBlocked())
	})
}

func TestModalNotClosableIgnoresBackdropClick(t *testing.T) {
	h := newHarness()
	m := &Modal{Closable: false}
	show := func(ctx *ui.Context) {
		m.Show(ctx, ui.V(300, 200), func(*ui.Context, ui.Rect) {})
	}
	m.Open()
	for i := 0; i < 15; i++ {
		h.frame(&ui.Input{}, show)
	}
	click := &ui.Input{Pointer: ui.V(10, 10), PointerPressed: true, PointerDown: true, ClickCount: 1}
	h.frame(click, show)
	h.frame(&ui.Input{Pointer: ui.V(10, 10), PointerReleased: true}, show)
	assert.True(t, m.IsOpen())
}

// =============================================================================
// DRAWER
// =============================================================================

func TestDrawerSlidesFromEdge(t *testing.T) {
	h := newHarness()
	d := &Drawer{Edge: SideLeft, Closable: true}
	show := func(ctx *ui.Context) {
		d.Show(ctx, 240, func(*ui.Context, ui.Rect) {})
	}
	d.Open()
	h.frame(&ui.Input{}, show)
	// Mid-animation the panel still hangs off the left edge.
	require.GreaterOrEqual(t, len(h.paint.rects), 2)
	panel := h.paint.rects[len(h.paint.rects)-1]
	assert.Less(t, panel.Left(), 0.0)

	for i := 0; i < 15; i++ {
		h.frame(&ui.Input{}, show)
	}
	panel = h.paint.rects[len(h.paint.rects)-1]
	assert.Equal(t, 0.0, panel.Left())
	assert.Equal(t, 240.0, panel.W())
}

// =============================================================================
// TOOLTIP
// =============================================================================

func TestTooltipDelayAndDismissal(t *testing.T) {
	h := newHarness()
	anchor := ui.RectXYWH(100, 300, 60, 24)
	show := func(hovered bool) func(*ui.Context) {
		return func(ctx *ui.Context) { Tooltip(ctx, anchor, hovered, "hint") }
	}

	// Hovering under the delay draws nothing but keeps frames coming.
	repaint := h.frame(&ui.Input{}, show(true))
	assert.True(t, repaint)
	assert.Empty(t, h.paint.texts)

	// 0.5 s at 60 Hz is 30 frames.
	for i := 0; i < 35; i++ {
		h.frame(&ui.Input{}, show(true))
	}
	assert.Contains(t, h.paint.texts, "hint")
	// Tooltips live on the topmost layer.
	assert.Contains(t, h.paint.zs, ui.ZTooltip)

	// Losing hover kills it immediately.
	h.frame(&ui.Input{}, show(false))
	assert.Empty(t, h.paint.texts)

	// Re-hovering restarts the delay from zero.
	h.frame(&ui.Input{}, show(true))
	assert.Empty(t, h.paint.texts)
}

// =============================================================================
// COMMAND MENU
// =============================================================================

func testCommands() []Command {
	return []Command{
		{Title: "Open File", Category: "File"},
		{Title: "Save All", Category: "File", Keywords: "write"},
		{Title: "Toggle Sidebar", Category: "View"},
		{Title: "Größe anpassen", Category: "View"},
	}
}

func TestCommandMenuFiltering(t *testing.T) {
	cm := &CommandMenu{Commands: testCommands()}
	assert.Len(t, cm.filtered(), 4)

	cm.SetQuery("file")
	assert.Equal(t, []int{0, 1}, cm.filtered())

	// Keywords match even when the title does not.
	cm.SetQuery("write")
	assert.Equal(t, []int{1}, cm.filtered())

	// Unicode folding: ß matches ss and case is ignored.
	cm.SetQuery("GRÖSSE")
	assert.Equal(t, []int{3}, cm.filtered())

	cm.SetQuery("zzz")
	assert.Empty(t, cm.filtered())
}

func TestCommandMenuKeyboardFlow(t *testing.T) {
	h := newHarness()
	cm := &CommandMenu{Commands: testCommands()}
	var ran int
	show := func(ctx *ui.Context) { ran = cm.Show(ctx) }

	cm.Open()
	for i := 0; i < 15; i++ {
		h.frame(&ui.Input{}, show)
	}
	require.True(t, cm.IsOpen())

	// Type to filter.
	h.frame(&ui.Input{Runes: []rune("sid")}, show)
	assert.Equal(t, "sid", cm.Query())
	assert.Equal(t, []int{2}, cm.filtered())

	// Backspace trims one rune.
	h.frame(&ui.Input{Keys: []ui.KeyEvent{{Key: ui.KeyBackspace}}}, show)
	assert.Equal(t, "si", cm.Query())

	// Enter runs the selected command and closes the palette.
	h.frame(&ui.Input{Keys: []ui.KeyEvent{{Key: ui.KeyEnter}}}, show)
	assert.Equal(t, 2, ran)
	assert.False(t, cm.IsOpen())
	assert.Equal(t, "", cm.Query())
}

func TestCommandMenuArrowNavigation(t *testing.T) {
	h := newHarness()
	cm := &CommandMenu{Commands: testCommands()}
	var ran int
	show := func(ctx *ui.Context) { ran = cm.Show(ctx) }

	cm.Open()
	for i := 0; i < 15; i++ {
		h.frame(&ui.Input{}, show)
	}
	h.frame(&ui.Input{Keys: []ui.KeyEvent{{Key: ui.KeyDown}}}, show)
	h.frame(&ui.Input{Keys: []ui.KeyEvent{{Key: ui.KeyDown}}}, show)
	h.frame(&ui.Input{Keys: []ui.KeyEvent{{Key: ui.KeyUp}}}, show)
	h.frame(&ui.Input{Keys: []ui.KeyEvent{{Key: ui.KeyEnter}}}, show)
	assert.Equal(t, 1, ran)

	// Escape closes without running anything.
	cm.Open()
	for i := 0; i < 15; i++ {
		h.frame(&ui.Input{}, show)
	}
	h.frame(&ui.Input{Keys: []ui.KeyEvent{{Key: ui.KeyEscape}}}, show)
	assert.Equal(t, -1, ran)
	assert.False(t, cm.IsOpen())
}

// =============================================================================
// MENU
// =============================================================================

func TestMenuClosedReturnsNothing(t *testing.T) {
	h := newHarness()
	m := &Menu{Items: []MenuItem{{Label: "Cut"}, {Separator: true}, {Label: "Paste"}}}
	picked := 0
	h.frame(&ui.Input{}, func(ctx *ui.Context) {
		picked = m.Show(ctx, ui.RectXYWH(10, 10, 40, 20))
	})
	assert.Equal(t, -1, picked)
	assert.Empty(t, h.paint.rects)
}

func TestMenuOpensAndLists(t *testing.T) {
	h := newHarness()
	m := &Menu{Items: []MenuItem{{Label: "Cut", Shortcut: "⌘X"}, {Label: "Copy"}, {Separator: true}, {Label: "Paste", Disabled: true}}}
	show := func(ctx *ui.Context) { m.Show(ctx, ui.RectXYWH(10, 10, 40, 20)) }

	m.Open()
	for i := 0; i < 15; i++ {
		h.frame(&ui.Input{}, show)
	}
	assert.Contains(t, h.paint.texts, "Cut")
	assert.Contains(t, h.paint.texts, "Paste")
	assert.Contains(t, h.paint.texts, "⌘X")
}
