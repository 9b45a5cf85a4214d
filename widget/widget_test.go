// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/glint/gesture"
	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

func newTestCurve() *gesture.Curve { return gesture.NewCurve(1, 0, 1) }

// recPainter records draw calls for assertions.
type recPainter struct {
	rects   []ui.Rect
	circles []ui.Vec2
	arcs    int
	texts   []string
}

func (p *recPainter) RectFilled(_ ui.ZOrder, r ui.Rect, _ float64, _ ui.Color) {
	p.rects = append(p.rects, r)
}
func (p *recPainter) RectStroke(ui.ZOrder, ui.Rect, float64, ui.Stroke)  {}
func (p *recPainter) LineSegment(ui.ZOrder, ui.Vec2, ui.Vec2, ui.Stroke) {}
func (p *recPainter) CircleFilled(_ ui.ZOrder, c ui.Vec2, _ float64, _ ui.Color) {
	p.circles = append(p.circles, c)
}
func (p *recPainter) CircleStroke(ui.ZOrder, ui.Vec2, float64, ui.Stroke) {}
func (p *recPainter) Arc(ui.ZOrder, ui.Vec2, float64, float64, float64, ui.Stroke) {
	p.arcs++
}
func (p *recPainter) ConvexPolygon(ui.ZOrder, []ui.Vec2, ui.Color, ui.Stroke) {}
func (p *recPainter) Text(_ ui.ZOrder, _ ui.Vec2, s string, _ ui.TextStyle, _ ui.Color) {
	p.texts = append(p.texts, s)
}
func (p *recPainter) MeasureText(s string, _ ui.TextStyle) ui.Vec2 {
	return ui.V(float64(len([]rune(s)))*7, 14)
}
func (p *recPainter) ClipPush(ui.Rect) {}
func (p *recPainter) ClipPop()         {}

func (p *recPainter) reset() { p.rects, p.circles, p.arcs, p.texts = nil, nil, 0, nil }

type harness struct {
	mem   *ui.Memory
	paint *recPainter
	now   float64
}

func newHarness() *harness {
	return &harness{mem: ui.NewMemory(nil), paint: &recPainter{}}
}

func newHarnessWith(kv ui.KV) *harness {
	return &harness{mem: ui.NewMemory(kv), paint: &recPainter{}}
}

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

// click runs a press frame then a release frame at pos.
func (h *harness) click(pos ui.Vec2, f func(*ui.Context)) {
	h.frame(&ui.Input{Pointer: pos, PointerPressed: true, PointerDown: true, ClickCount: 1}, f)
	h.frame(&ui.Input{Pointer: pos, PointerReleased: true}, f)
}

// =============================================================================
// BUTTON
// =============================================================================

func TestButtonClickAndFocus(t *testing.T) {
	h := newHarness()
	var resp ButtonResponse
	show := func(ctx *ui.Context) {
		resp = Button{Label: "Save"}.Show(ctx)
	}
	h.frame(&ui.Input{}, show)
	require.Greater(t, resp.Rect.W(), 0.0)

	center := resp.Rect.Center()
	h.frame(&ui.Input{Pointer: center, PointerPressed: true, PointerDown: true, ClickCount: 1}, show)
	assert.True(t, resp.Hovered)
	h.frame(&ui.Input{Pointer: center, PointerReleased: true}, show)
	assert.True(t, resp.Clicked)
	assert.True(t, resp.Focused)

	// Clicking elsewhere clears focus.
	h.frame(&ui.Input{Pointer: ui.V(700, 500), PointerPressed: true, PointerDown: true, ClickCount: 1}, show)
	h.frame(&ui.Input{Pointer: ui.V(700, 500), PointerReleased: true}, show)
	assert.False(t, resp.Focused)
}

func TestButtonDisabledNeverClicks(t *testing.T) {
	h := newHarness()
	var resp ButtonResponse
	show := func(ctx *ui.Context) {
		resp = Button{Label: "Delete", Disabled: true}.Show(ctx)
	}
	h.frame(&ui.Input{}, show)
	center := resp.Rect.Center()
	h.click(center, show)
	assert.False(t, resp.Clicked)
	assert.False(t, resp.Hovered)
	assert.False(t, resp.Focused)
}

// =============================================================================
// TEXT INPUT
// =============================================================================

func TestTextInputTyping(t *testing.T) {
	h := newHarness()
	var resp InputResponse
	show := func(ctx *ui.Context) {
		resp = TextInput{Placeholder: "name"}.Show(ctx)
	}
	h.frame(&ui.Input{}, show)
	center := resp.Rect.Center()
	h.click(center, show)
	require.True(t, resp.Focused)

	h.frame(&ui.Input{Runes: []rune("héllo")}, show)
	assert.Equal(t, "héllo", resp.Text)
	assert.True(t, resp.Changed)

	h.frame(&ui.Input{Keys: []ui.KeyEvent{{Key: ui.KeyBackspace}}}, show)
	assert.Equal(t, "héll", resp.Text)

	// Cursor editing: home then delete removes the head rune.
	h.frame(&ui.Input{Keys: []ui.KeyEvent{{Key: ui.KeyHome}, {Key: ui.KeyDelete}}}, show)
	assert.Equal(t, "éll", resp.Text)
}

func TestTextInputMaxChars(t *testing.T) {
	h := newHarness()
	var resp InputResponse
	show := func(ctx *ui.Context) {
		resp = TextInput{MaxChars: 3}.Show(ctx)
	}
	h.frame(&ui.Input{}, show)
	h.click(resp.Rect.Center(), show)
	h.frame(&ui.Input{Runes: []rune("abcdef")}, show)
	assert.Equal(t, "abc", resp.Text)
}

func TestTextInputPersistsAcrossRestart(t *testing.T) {
	kv := newMemKV()

	h := newHarnessWith(kv)
	var resp InputResponse
	show := func(ctx *ui.Context) {
		resp = TextInput{ID: "profile-name"}.Show(ctx)
	}
	h.frame(&ui.Input{}, show)
	h.click(resp.Rect.Center(), show)
	h.frame(&ui.Input{Runes: []rune("ada")}, show)
	require.Equal(t, "ada", resp.Text)
	require.NoError(t, h.mem.Flush())

	// Fresh Memory over the same backing store: text survives.
	h2 := newHarnessWith(kv)
	var resp2 InputResponse
	h2.frame(&ui.Input{}, func(ctx *ui.Context) {
		resp2 = TextInput{ID: "profile-name"}.Show(ctx)
	})
	assert.Equal(t, "ada", resp2.Text)
}

// memKV is a minimal in-process ui.KV for persistence tests.
type memKV struct{ m map[uint64][]byte }

func newMemKV() *memKV { return &memKV{m: map[uint64][]byte{}} }

func (k *memKV) Load(key uint64) ([]byte, bool, error) {
	b, ok := k.m[key]
	return b, ok, nil
}

func (k *memKV) Store(key uint64, blob []byte) error {
	k.m[key] = append([]byte(nil), blob...)
	return nil
}

// =============================================================================
// TABS
// =============================================================================

func TestTabsIndicatorChase(t *testing.T) {
	h := newHarness()
	var resp TabsResponse
	show := func(ctx *ui.Context) {
		resp = Tabs{Labels: []string{"One", "Two"}}.Show(ctx)
	}
	h.frame(&ui.Input{}, show)
	require.Equal(t, 0, resp.Active)
	require.Equal(t, 0.0, resp.IndicatorPos)

	// Click the second tab.
	tabW := resp.Rect.W() / 2
	pos := ui.V(resp.Rect.Left()+tabW*1.5, resp.Rect.Center().Y)
	h.frame(&ui.Input{Pointer: pos, PointerPressed: true, PointerDown: true, ClickCount: 1}, show)
	h.frame(&ui.Input{Pointer: pos, PointerReleased: true}, show)
	assert.Equal(t, 1, resp.Active)

	// 200 ms of 60 Hz frames at speed 12: indicator well on its way.
	for i := 0; i < 12; i++ {
		h.frame(&ui.Input{}, show)
	}
	assert.Greater(t, resp.IndicatorPos, 0.9)

	// By 500 ms it has settled on the target.
	for i := 0; i < 18; i++ {
		h.frame(&ui.Input{}, show)
	}
	assert.InDelta(t, 1.0, resp.IndicatorPos, 0.001)
}

func TestTabsEmptyLabels(t *testing.T) {
	h := newHarness()
	var resp TabsResponse
	h.frame(&ui.Input{}, func(ctx *ui.Context) {
		resp = Tabs{}.Show(ctx)
	})
	assert.Equal(t, 0, resp.Active)
	assert.Zero(t, resp.Rect.W())
}

func TestTabsActivePersists(t *testing.T) {
	kv := newMemKV()
	h := newHarnessWith(kv)
	var resp TabsResponse
	show := func(ctx *ui.Context) {
		resp = Tabs{Labels: []string{"A", "B", "C"}}.Show(ctx)
	}
	h.frame(&ui.Input{}, show)
	tabW := resp.Rect.W() / 3
	pos := ui.V(resp.Rect.Left()+tabW*2.5, resp.Rect.Center().Y)
	h.click(pos, show)
	require.Equal(t, 2, resp.Active)
	require.NoError(t, h.mem.Flush())

	h2 := newHarnessWith(kv)
	h2.frame(&ui.Input{}, func(ctx *ui.Context) {
		resp = Tabs{Labels: []string{"A", "B", "C"}}.Show(ctx)
	})
	assert.Equal(t, 2, resp.Active)
}

// =============================================================================
// ACCORDION
// =============================================================================

func TestAccordionOpenCloseRoundTrip(t *testing.T) {
	h := newHarness()
	var resp AccordionResponse
	baseH := 0.0
	show := func(ctx *ui.Context) {
		resp = Accordion{Items: []AccordionItem{
			{Title: "Details", ContentHeight: 120, Content: func(*ui.Context, ui.Rect) {}},
		}}.Show(ctx, 300)
	}
	h.frame(&ui.Input{}, show)
	baseH = resp.Rect.H()

	header := ui.V(resp.Rect.Left()+20, resp.Rect.Top()+18)
	h.click(header, show)
	// 8/s closes the 0→1 gap in 125 ms; give it 20 frames.
	for i := 0; i < 20; i++ {
		h.frame(&ui.Input{}, show)
	}
	openH := resp.Rect.H()
	assert.InDelta(t, baseH+120, openH, 0.5)

	// Close again: height returns to the header-only baseline.
	h.click(header, show)
	repaint := true
	for i := 0; i < 20; i++ {
		repaint = h.frame(&ui.Input{}, show)
	}
	assert.InDelta(t, baseH, resp.Rect.H(), 0.5)
	assert.False(t, repaint)
}

// =============================================================================
// PROGRESS
// =============================================================================

func TestProgressClamping(t *testing.T) {
	cases := map[float64]float64{-10: 0, 0: 0, 50: 50, 100: 100, 200: 100}
	for in, want := range cases {
		assert.Equal(t, want, NewProgress(in).Value())
	}
	pr := NewProgress(50)
	pr.SetValue(140)
	assert.Equal(t, 100.0, pr.Value())
}

func TestProgressCircularDrawsArc(t *testing.T) {
	h := newHarness()
	h.frame(&ui.Input{}, func(ctx *ui.Context) {
		pr := NewProgress(75)
		pr.ShowCircular(ctx, 20)
	})
	assert.Equal(t, 1, h.paint.arcs)

	// Zero progress draws the track only.
	h.frame(&ui.Input{}, func(ctx *ui.Context) {
		pr := NewProgress(0)
		pr.ShowCircular(ctx, 20)
	})
	assert.Zero(t, h.paint.arcs)
}

func TestIndeterminateRequestsRepaint(t *testing.T) {
	h := newHarness()
	repaint := h.frame(&ui.Input{}, func(ctx *ui.Context) {
		ShowIndeterminate(ctx, 16)
	})
	assert.True(t, repaint)
	assert.Equal(t, 1, h.paint.arcs)
}

// =============================================================================
// SPINNER / SKELETON
// =============================================================================

func TestSpinnerAndSkeletonAreWallClockDriven(t *testing.T) {
	h := newHarness()
	repaint := h.frame(&ui.Input{}, func(ctx *ui.Context) {
		Spinner{Label: "loading"}.Show(ctx)
		Skeleton{}.Show(ctx)
	})
	assert.True(t, repaint)
	assert.Contains(t, h.paint.texts, "loading")
	// Base rect plus shimmer highlight.
	assert.GreaterOrEqual(t, len(h.paint.rects), 2)
}

// =============================================================================
// SLIDER
// =============================================================================

func TestSliderDragAndReset(t *testing.T) {
	h := newHarness()
	value := 0.25
	var resp SliderResponse
	show := func(ctx *ui.Context) {
		resp = Slider{Min: 0, Max: 1, Default: 0.5, Width: 200}.Show(ctx, value)
		value = resp.Value
	}
	h.frame(&ui.Input{}, show)
	start := resp.Rect.Center()

	// Press, then drag 50 px right: a quarter of the 200 px travel.
	h.frame(&ui.Input{Pointer: start, PointerPressed: true, PointerDown: true, ClickCount: 1}, show)
	h.frame(&ui.Input{Pointer: start.Add(ui.V(50, 0)), PointerDown: true}, show)
	assert.InDelta(t, 0.5, value, 1e-9)
	assert.True(t, resp.Changed)
	h.frame(&ui.Input{Pointer: start.Add(ui.V(50, 0)), PointerReleased: true}, show)

	// Dragging past the end clamps.
	h.frame(&ui.Input{Pointer: start, PointerPressed: true, PointerDown: true, ClickCount: 1}, show)
	h.frame(&ui.Input{Pointer: start.Add(ui.V(500, 0)), PointerDown: true}, show)
	assert.Equal(t, 1.0, value)
	h.frame(&ui.Input{Pointer: start.Add(ui.V(500, 0)), PointerReleased: true}, show)

	// Double click restores the default.
	h.frame(&ui.Input{Pointer: start, PointerPressed: true, PointerDown: true, ClickCount: 2}, show)
	assert.Equal(t, 0.5, value)
}

func TestSliderReversedRangeIsSafe(t *testing.T) {
	h := newHarness()
	var resp SliderResponse
	h.frame(&ui.Input{}, func(ctx *ui.Context) {
		resp = Slider{Min: 10, Max: 0, Default: 5}.Show(ctx, 5)
	})
	assert.Equal(t, 5.0, resp.Value)
}

// =============================================================================
// XY PAD
// =============================================================================

func TestXYPadDragAndRecenter(t *testing.T) {
	h := newHarness()
	value := ui.V(0.5, 0.5)
	var resp XYPadResponse
	show := func(ctx *ui.Context) {
		resp = XYPad{Size: ui.V(100, 100)}.Show(ctx, value)
		value = resp.Value
	}
	h.frame(&ui.Input{}, show)
	start := resp.Rect.Center()

	h.frame(&ui.Input{Pointer: start, PointerPressed: true, PointerDown: true, ClickCount: 1}, show)
	h.frame(&ui.Input{Pointer: start.Add(ui.V(25, -25)), PointerDown: true}, show)
	assert.InDelta(t, 0.75, value.X, 1e-9)
	assert.InDelta(t, 0.25, value.Y, 1e-9)
	h.frame(&ui.Input{Pointer: start.Add(ui.V(25, -25)), PointerReleased: true}, show)

	h.frame(&ui.Input{Pointer: start, PointerPressed: true, PointerDown: true, ClickCount: 2}, show)
	assert.Equal(t, ui.V(0.5, 0.5), value)
}

// =============================================================================
// TILT CARD
// =============================================================================

func TestTiltCardLeansTowardPointer(t *testing.T) {
	h := newHarness()
	var tilt ui.Vec2
	var rect ui.Rect
	show := func(ctx *ui.Context) {
		resp := TiltCard{Size: ui.V(200, 120), Content: func(_ *ui.Context, _ ui.Rect, tv ui.Vec2) {
			tilt = tv
		}}.Show(ctx)
		rect = resp.Rect
	}
	h.frame(&ui.Input{}, show)
	assert.Equal(t, ui.Vec2{}, tilt)

	// Hover near the right edge: the card leans right over a few frames.
	hover := ui.V(rect.Right()-5, rect.Center().Y)
	var repaint bool
	for i := 0; i < 30; i++ {
		repaint = h.frame(&ui.Input{Pointer: hover}, show)
	}
	assert.True(t, repaint)
	assert.Greater(t, tilt.X, 0.5)
	assert.InDelta(t, 0.0, tilt.Y, 0.15)

	// Pointer leaves: the spring settles back and repaints stop.
	for i := 0; i < 240; i++ {
		repaint = h.frame(&ui.Input{Pointer: ui.V(700, 500)}, show)
	}
	assert.False(t, repaint)
	assert.InDelta(t, 0.0, tilt.X, 0.01)
}

// =============================================================================
// CODE BLOCK
// =============================================================================

func TestCodeBlockTokenizesAndDraws(t *testing.T) {
	h := newHarness()
	var r ui.Rect
	h.frame(&ui.Input{}, func(ctx *ui.Context) {
		r = CodeBlock{
			Language:    "go",
			Code:        "package main\n\nfunc main() {}\n",
			LineNumbers: true,
		}.Show(ctx)
	})
	assert.Greater(t, r.W(), 0.0)
	assert.Greater(t, r.H(), 2*codeLineH)
	// Gutter numbers and at least the keyword tokens were painted.
	assert.Contains(t, h.paint.texts, "1")
	joined := ""
	for _, s := range h.paint.texts {
		joined += s
	}
	assert.Contains(t, joined, "package")
	assert.Contains(t, joined, "func")
}

func TestCodeBlockUnknownLanguageDegrades(t *testing.T) {
	h := newHarness()
	var r ui.Rect
	h.frame(&ui.Input{}, func(ctx *ui.Context) {
		r = CodeBlock{Language: "not-a-language", Code: "hello world"}.Show(ctx)
	})
	assert.Greater(t, r.W(), 0.0)
	joined := ""
	for _, s := range h.paint.texts {
		joined += s
	}
	assert.Contains(t, joined, "hello world")
}

// =============================================================================
// CURVE EDITOR
// =============================================================================

func TestCurveEditorDoubleClickAddsPoint(t *testing.T) {
	h := newHarness()
	c := newTestCurve()
	var rect ui.Rect
	show := func(ctx *ui.Context) {
		ce := CurveEditor{Curve: c, Playhead: -1}
		ce.Show(ctx, ui.V(300, 150))
		rect = ui.RectXYWH(0, 0, 300, 150)
	}
	h.frame(&ui.Input{}, show)
	require.Empty(t, c.Points())

	h.frame(&ui.Input{Pointer: rect.Center(), PointerPressed: true, PointerDown: true, ClickCount: 2}, show)
	assert.Len(t, c.Points(), 1)
}
