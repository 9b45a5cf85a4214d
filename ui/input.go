// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

// =============================================================================
// INPUT SNAPSHOT
// =============================================================================

// Modifiers is the set of modifier keys held this frame.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Cmd   bool
}

// Any reports whether at least one modifier is held.
func (m Modifiers) Any() bool { return m.Shift || m.Ctrl || m.Alt || m.Cmd }

// Key identifies a non-text key event the kit cares about. Hosts translate
// their native events into these; anything else arrives as typed runes.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// KeyEvent is one key press observed this frame.
type KeyEvent struct {
	Key  Key
	Mods Modifiers
}

// Input is the host's per-frame input snapshot. It is immutable for the
// duration of the frame; widgets read it through Context.
type Input struct {
	// HasPointer reports that a pointer position has been observed. While
	// false the Pointer field is meaningless and nothing hovers; a
	// keyboard-only session never flips it.
	HasPointer       bool
	Pointer          Vec2
	PointerDown      bool // primary button held
	PointerPressed   bool // went down this frame
	PointerReleased  bool
	SecondaryPressed bool
	ClickCount       int // 1 single, 2 double; valid when PointerPressed
	Scroll           Vec2
	Mods             Modifiers
	Keys             []KeyEvent
	Runes            []rune // text typed this frame
}

// KeyPressed reports whether k was pressed this frame.
func (in *Input) KeyPressed(k Key) bool {
	for _, ev := range in.Keys {
		if ev.Key == k {
			return true
		}
	}
	return false
}

// =============================================================================
// SENSE AND RESPONSE
// =============================================================================

// Sense is the set of interactions a hit-area opts into.
type Sense uint8

const (
	SenseHover Sense = 1 << iota
	SenseClick
	SenseDrag
)

// SenseClickAndDrag is the common interactive sense.
const SenseClickAndDrag = SenseClick | SenseDrag | SenseHover

// Has reports whether s includes all bits of q.
func (s Sense) Has(q Sense) bool { return s&q == q }

// Response is the interaction summary for one allocated hit-area. Every
// widget response embeds one; show() never fails, it only reports.
type Response struct {
	Rect Rect

	Hovered     bool
	Clicked     bool
	DoubleClicked bool
	Pressed     bool // pointer down inside, still held
	Dragged     bool
	DragStarted bool
	DragStopped bool
	DragDelta   Vec2

	// PointerPos is the pointer position when any of the above fired.
	PointerPos Vec2
}

// Union merges another response into r, keeping the union of events. Used
// by composite widgets that expose one response for several hit-areas.
func (r Response) Union(o Response) Response {
	out := r
	out.Hovered = r.Hovered || o.Hovered
	out.Clicked = r.Clicked || o.Clicked
	out.DoubleClicked = r.DoubleClicked || o.DoubleClicked
	out.Pressed = r.Pressed || o.Pressed
	out.Dragged = r.Dragged || o.Dragged
	out.DragStarted = r.DragStarted || o.DragStarted
	out.DragStopped = r.DragStopped || o.DragStopped
	out.DragDelta = r.DragDelta.Add(o.DragDelta)
	return out
}
