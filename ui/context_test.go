// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import "testing"

func inputFrame(m *Memory, in *Input) *Context {
	if in.Pointer != (Vec2{}) || in.PointerDown || in.PointerPressed || in.PointerReleased {
		in.HasPointer = true
	}
	return m.BeginFrame(FrameInfo{
		Input:    in,
		Viewport: RectXYWH(0, 0, 800, 600),
		StableDt: 1.0 / 60,
	})
}

func TestInteractHoverAndClick(t *testing.T) {
	m := NewMemory(nil)
	r := RectXYWH(10, 10, 100, 30)

	// Frame 1: press inside.
	ctx := inputFrame(m, &Input{Pointer: V(50, 20), PointerDown: true, PointerPressed: true, ClickCount: 1})
	id := ctx.DeriveID("button", "ok")
	resp := ctx.Interact(r, id, SenseClickAndDrag)
	if !resp.Hovered || !resp.Pressed || resp.Clicked {
		t.Errorf("press frame: %+v", resp)
	}
	m.EndFrame(ctx)

	// Frame 2: release inside -> click.
	ctx = inputFrame(m, &Input{Pointer: V(52, 22), PointerReleased: true})
	resp = ctx.Interact(r, ctx.DeriveID("button", "ok"), SenseClickAndDrag)
	if !resp.Clicked {
		t.Errorf("release frame should click: %+v", resp)
	}
	m.EndFrame(ctx)
}

func TestInteractReleaseOutsideIsNotClick(t *testing.T) {
	m := NewMemory(nil)
	r := RectXYWH(10, 10, 100, 30)

	ctx := inputFrame(m, &Input{Pointer: V(50, 20), PointerDown: true, PointerPressed: true, ClickCount: 1})
	ctx.Interact(r, ctx.DeriveID("button", "ok"), SenseClickAndDrag)
	m.EndFrame(ctx)

	ctx = inputFrame(m, &Input{Pointer: V(400, 400), PointerReleased: true})
	resp := ctx.Interact(r, ctx.DeriveID("button", "ok"), SenseClickAndDrag)
	if resp.Clicked {
		t.Error("release outside must not click")
	}
	if !resp.DragStopped {
		t.Error("release must end the drag either way")
	}
	m.EndFrame(ctx)
}

func TestInteractDragDelta(t *testing.T) {
	m := NewMemory(nil)
	r := RectXYWH(0, 0, 100, 100)

	ctx := inputFrame(m, &Input{Pointer: V(50, 50), PointerDown: true, PointerPressed: true, ClickCount: 1})
	resp := ctx.Interact(r, ctx.DeriveID("slider", "vol"), SenseDrag|SenseHover)
	if !resp.DragStarted {
		t.Error("press should start drag")
	}
	m.EndFrame(ctx)

	ctx = inputFrame(m, &Input{Pointer: V(60, 45), PointerDown: true})
	resp = ctx.Interact(r, ctx.DeriveID("slider", "vol"), SenseDrag|SenseHover)
	if !resp.Dragged || resp.DragDelta != V(10, -5) {
		t.Errorf("drag frame: %+v", resp)
	}
	m.EndFrame(ctx)
}

func TestInteractDoubleClick(t *testing.T) {
	m := NewMemory(nil)
	r := RectXYWH(0, 0, 50, 50)

	ctx := inputFrame(m, &Input{Pointer: V(10, 10), PointerDown: true, PointerPressed: true, ClickCount: 2})
	resp := ctx.Interact(r, ctx.DeriveID("pad", "xy"), SenseClickAndDrag)
	if !resp.DoubleClicked {
		t.Error("ClickCount=2 press should report DoubleClicked")
	}
	m.EndFrame(ctx)
}

func TestNoPointerNeverHovers(t *testing.T) {
	m := NewMemory(nil)
	r := RectXYWH(0, 0, 100, 30)

	// A keyboard-only session leaves Input at its zero value; the rect at
	// the origin contains (0,0) but nothing is pointing at it.
	ctx := inputFrame(m, &Input{})
	resp := ctx.Interact(r, ctx.DeriveID("button", "first"), SenseClickAndDrag)
	if resp.Hovered {
		t.Errorf("zero input hovered: %+v", resp)
	}
	m.EndFrame(ctx)

	// The same position hovers once a pointer has actually been seen.
	ctx = inputFrame(m, &Input{HasPointer: true})
	resp = ctx.Interact(r, ctx.DeriveID("button", "first"), SenseClickAndDrag)
	if !resp.Hovered {
		t.Errorf("observed pointer at origin should hover: %+v", resp)
	}
	m.EndFrame(ctx)
}

func TestPointerBlockedSuppressesMainPass(t *testing.T) {
	m := NewMemory(nil)
	r := RectXYWH(0, 0, 100, 100)

	ctx := inputFrame(m, &Input{Pointer: V(10, 10), PointerDown: true, PointerPressed: true, ClickCount: 1})
	ctx.BlockPointer(true)
	resp := ctx.Interact(r, ctx.DeriveID("button", "behind-modal"), SenseClickAndDrag)
	if resp.Hovered || resp.Pressed {
		t.Errorf("blocked pointer leaked into main pass: %+v", resp)
	}
	over := ctx.InteractOverlay(r, ctx.DeriveID("modal", "content"), SenseClickAndDrag)
	if !over.Hovered {
		t.Error("overlay pass must still see the pointer")
	}
	m.EndFrame(ctx)
}

func TestAllocateAdvancesCursor(t *testing.T) {
	m := NewMemory(nil)
	ctx := inputFrame(m, &Input{})
	ctx.SetSpacing(8)

	r1, _ := ctx.Allocate(V(100, 30), SenseHover)
	r2, _ := ctx.Allocate(V(100, 30), SenseHover)
	if r2.Min.Y != r1.Max.Y+8 {
		t.Errorf("flow cursor: r1=%v r2=%v", r1, r2)
	}
	m.EndFrame(ctx)
}

func TestRepaintRequest(t *testing.T) {
	m := NewMemory(nil)
	ctx := inputFrame(m, &Input{})
	if m.EndFrame(ctx) {
		t.Error("no repaint requested")
	}
	ctx = inputFrame(m, &Input{})
	ctx.RequestRepaint()
	if !m.EndFrame(ctx) {
		t.Error("repaint request lost")
	}
}

func TestAnonymousIDsAreDistinct(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := AnonymousID()
		if seen[id] {
			t.Fatalf("duplicate anonymous id %d", id)
		}
		seen[id] = true
	}
}
