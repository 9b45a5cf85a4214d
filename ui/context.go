// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
)

// =============================================================================
// FRAME MEMORY (lives across frames)
// =============================================================================

// Memory is the host-owned state that survives between frames: the widget
// state store, the pointer-capture record, and the repaint flag. Create one
// per window and call BeginFrame each time the host paints.
type Memory struct {
	store *Store

	// Pointer capture and click bookkeeping.
	activeID    ID
	lastPointer Vec2
	hasPointer  bool

	repaintRequested bool

	// Ambient values installed by subsystems (theme, overlay manager).
	ambient map[string]any
}

// NewMemory creates frame memory. persist may be nil, in which case the
// persistent scope silently degrades to session-only storage.
func NewMemory(persist KV) *Memory {
	return &Memory{
		store:   newStore(persist),
		ambient: make(map[string]any),
	}
}

// FrameInfo is everything the host hands the kit for one frame.
type FrameInfo struct {
	Input    *Input
	Painter  Painter
	Viewport Rect
	// Time is the host's monotonic clock in seconds. Drives wall-clock
	// (drift-free) animations.
	Time float64
	// StableDt is the host's smoothed frame delta in seconds. Drives
	// integrated (pausable) animations.
	StableDt float64
}

// BeginFrame opens a frame and returns its Context. The returned Context is
// only valid until EndFrame.
func (m *Memory) BeginFrame(info FrameInfo) *Context {
	m.repaintRequested = false
	if info.Input == nil {
		info.Input = &Input{}
	}
	ctx := &Context{
		mem:    m,
		frame:  info,
		cursor: info.Viewport.Min,
	}
	return ctx
}

// EndFrame closes the frame: sweeps idle temporary state, clears pointer
// capture on release, and reports whether any widget requested a repaint.
func (m *Memory) EndFrame(ctx *Context) (repaint bool) {
	if ctx.frame.Input.PointerReleased {
		m.activeID = 0
	}
	m.lastPointer = ctx.frame.Input.Pointer
	m.hasPointer = ctx.frame.Input.HasPointer
	m.store.endFrame()
	return m.repaintRequested
}

// Flush writes all dirty persistent entries through to the backing KV.
// Hosts call this on shutdown and may call it periodically.
func (m *Memory) Flush() error { return m.store.flush() }

// =============================================================================
// AMBIENT CONTEXT
// =============================================================================

// Context is the per-frame ambient object every widget renders through.
// It carries input, time, the painter, the layout cursor, the id path and
// the keyed state store.
type Context struct {
	mem   *Memory
	frame FrameInfo

	// Structural id path. Widgets push scopes; ordinals disambiguate
	// siblings of the same kind.
	idPath   []uint64
	ordinals map[uint64]int

	// Vertical flow cursor for the minimal allocator.
	cursor  Vec2
	spacing float64

	// When true, main-pass widgets see no pointer input (a modal backdrop
	// is up). Key input still flows so Escape reaches the overlay.
	pointerBlocked bool
}

// Input returns this frame's input snapshot.
func (c *Context) Input() *Input { return c.frame.Input }

// Painter returns the host's drawing surface.
func (c *Context) Painter() Painter { return c.frame.Painter }

// Viewport returns the screen rectangle available this frame.
func (c *Context) Viewport() Rect { return c.frame.Viewport }

// Time returns the monotonic wall clock in seconds.
func (c *Context) Time() float64 { return c.frame.Time }

// StableDt returns the smoothed frame delta in seconds.
func (c *Context) StableDt() float64 { return c.frame.StableDt }

// RequestRepaint asks the host to schedule another frame. Widgets owning an
// unfinished animation must call this every frame while work remains.
func (c *Context) RequestRepaint() { c.mem.repaintRequested = true }

// RepaintRequested reports whether any widget asked for another frame.
func (c *Context) RepaintRequested() bool { return c.mem.repaintRequested }

// BlockPointer diverts pointer input away from main-pass widgets while a
// modal surface is up. The overlay layer owns this; widgets only read it.
func (c *Context) BlockPointer(blocked bool) { c.pointerBlocked = blocked }

// PointerBlocked reports whether a modal surface is eating pointer input.
func (c *Context) PointerBlocked() bool { return c.pointerBlocked }

// SetAmbient installs a value under a well-known key for the life of the
// Memory, not just the frame. The theme system and overlay manager use
// this; applications rarely call it directly.
func (c *Context) SetAmbient(key string, v any) { c.mem.ambient[key] = v }

// Ambient reads a value installed with SetAmbient, or nil.
func (c *Context) Ambient(key string) any { return c.mem.ambient[key] }

// =============================================================================
// ID DERIVATION
// =============================================================================

// ID is a stable 64-bit widget identifier, the state-store key.
type ID uint64

// PushID opens an id scope named tag; callers must pair it with PopID.
// Widgets rendered inside derive their structural ids under this scope.
func (c *Context) PushID(tag string) {
	h := fnv.New64a()
	if n := len(c.idPath); n > 0 {
		var b [8]byte
		putUint64(b[:], c.idPath[n-1])
		h.Write(b[:])
	}
	h.Write([]byte(tag))
	c.idPath = append(c.idPath, h.Sum64())
}

// PopID closes the innermost id scope.
func (c *Context) PopID() {
	if len(c.idPath) > 0 {
		c.idPath = c.idPath[:len(c.idPath)-1]
	}
}

// DeriveID produces the id for a widget. When the caller supplied a tag the
// id depends only on the scope path and the tag, so it is stable under
// reordering. With an empty tag the id is structural: scope path plus kind
// plus the ordinal of that kind within the scope this frame.
func (c *Context) DeriveID(kind, tag string) ID {
	h := fnv.New64a()
	if n := len(c.idPath); n > 0 {
		var b [8]byte
		putUint64(b[:], c.idPath[n-1])
		h.Write(b[:])
	}
	h.Write([]byte(kind))
	if tag != "" {
		h.Write([]byte(tag))
		id := ID(h.Sum64())
		c.mem.store.recordIdentity(id, kind+"/"+tag)
		return id
	}
	seed := h.Sum64()
	if c.ordinals == nil {
		c.ordinals = make(map[uint64]int)
	}
	ord := c.ordinals[seed]
	c.ordinals[seed] = ord + 1
	var b [8]byte
	putUint64(b[:], uint64(ord))
	h.Write(b[:])
	id := ID(h.Sum64())
	c.mem.store.recordIdentity(id, fmt.Sprintf("%s/#%d", kind, ord))
	return id
}

// AnonymousID mints a one-off id with no structural anchor. Used by
// overlays created outside any widget scope.
func AnonymousID() ID {
	h := fnv.New64a()
	h.Write([]byte(uuid.NewString()))
	return ID(h.Sum64())
}

func putUint64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

// =============================================================================
// LAYOUT ALLOCATOR
// =============================================================================

// SetSpacing sets the gap the flow allocator leaves between widgets.
func (c *Context) SetSpacing(s float64) { c.spacing = s }

// Cursor returns the current flow position.
func (c *Context) Cursor() Vec2 { return c.cursor }

// SetCursor moves the flow position, for hosts doing their own layout.
func (c *Context) SetCursor(p Vec2) { c.cursor = p }

// Allocate places a widget of the given size at the flow cursor, advances
// the cursor downward, and returns the placed rect plus its interaction
// summary.
func (c *Context) Allocate(size Vec2, sense Sense) (Rect, Response) {
	r := RectFromSize(c.cursor, size)
	c.cursor.Y = r.Max.Y + c.spacing
	return r, c.Interact(r, c.DeriveID("alloc", ""), sense)
}

// AllocateAt hit-tests an explicitly placed rect. Overlays and free-form
// widgets use this instead of the flow allocator.
func (c *Context) AllocateAt(r Rect, id ID, sense Sense) Response {
	return c.Interact(r, id, sense)
}

// Interact computes the interaction summary for a rect without allocating
// layout space.
func (c *Context) Interact(r Rect, id ID, sense Sense) Response {
	return c.interact(r, id, sense, c.pointerBlocked)
}

// InteractOverlay is Interact for overlay-layer rects, which see pointer
// input even while the main pass is blocked.
func (c *Context) InteractOverlay(r Rect, id ID, sense Sense) Response {
	return c.interact(r, id, sense, false)
}

func (c *Context) interact(r Rect, id ID, sense Sense, blocked bool) Response {
	in := c.frame.Input
	resp := Response{Rect: r, PointerPos: in.Pointer}
	if blocked {
		return resp
	}

	inside := in.HasPointer && r.Contains(in.Pointer)
	if sense.Has(SenseHover) {
		resp.Hovered = inside
	}

	if in.PointerPressed && inside && sense&(SenseClick|SenseDrag) != 0 {
		c.mem.activeID = id
		if sense.Has(SenseDrag) {
			resp.DragStarted = true
		}
		if in.ClickCount >= 2 {
			resp.DoubleClicked = true
		}
	}

	captured := c.mem.activeID == id
	if captured && in.PointerDown {
		resp.Pressed = true
		if sense.Has(SenseDrag) && c.mem.hasPointer {
			delta := in.Pointer.Sub(c.mem.lastPointer)
			if delta != (Vec2{}) {
				resp.Dragged = true
				resp.DragDelta = delta
			}
		}
	}
	if captured && in.PointerReleased {
		if sense.Has(SenseClick) && inside {
			resp.Clicked = true
		}
		if sense.Has(SenseDrag) {
			resp.DragStopped = true
		}
	}
	return resp
}
