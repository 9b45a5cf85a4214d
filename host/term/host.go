// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package term is the reference terminal host. It drives the kit from a
// Bubble Tea program: translating terminal events into input snapshots,
// running one frame per tick, and rasterizing the painter's command
// buffer into styled cell rows. Core packages never import this one.
package term

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"golang.org/x/time/rate"

	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a Host. The zero value is usable.
type Options struct {
	// Theme overrides terminal background detection.
	Theme *theme.Theme
	// FPS caps the frame rate while animations run; 60 when zero.
	FPS float64
	// Store persists widget state across runs; nil keeps state in memory.
	Store ui.KV
	// Keys overrides the host bindings.
	Keys *KeyMap
}

// doubleClickWindow is the longest gap between two presses that still
// counts as a double click.
const doubleClickWindow = 400 * time.Millisecond

// =============================================================================
// HOST
// =============================================================================

// frameMsg asks for one frame of the UI.
type frameMsg struct{}

// Host runs a root draw function inside a Bubble Tea program.
type Host struct {
	root func(*ui.Context)
	mem  *ui.Memory
	th   *theme.Theme
	keys KeyMap

	paint         *Painter
	width, height int

	in           ui.Input
	pointerDown  bool
	lastClickAt  time.Time
	lastClickPos ui.Vec2

	start        time.Time
	lastFrameAt  float64
	limiter      *rate.Limiter
	framePending bool

	view string
}

// New creates a host that renders root every frame.
func New(root func(*ui.Context), opts Options) *Host {
	th := opts.Theme
	if th == nil {
		if termenv.HasDarkBackground() {
			th = theme.Dark()
		} else {
			th = theme.Light()
		}
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		w, h = 80, 24
	}

	return &Host{
		root:    root,
		mem:     ui.NewMemory(opts.Store),
		th:      th,
		keys:    keys,
		paint:   NewPainter(w, h, th.Background()),
		width:   w,
		height:  h,
		start:   time.Now(),
		limiter: rate.NewLimiter(rate.Limit(fps), 1),
	}
}

// Run starts the program and blocks until quit. Persistent widget state
// is flushed on the way out.
func (h *Host) Run() error {
	p := tea.NewProgram(
		h,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	if ferr := h.mem.Flush(); err == nil {
		err = ferr
	}
	return err
}

// =============================================================================
// BUBBLE TEA MODEL
// =============================================================================

func (h *Host) Init() tea.Cmd {
	return h.scheduleFrame()
}

func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, h.keys.ForceQuit) || key.Matches(msg, h.keys.Quit) {
			return h, tea.Quit
		}
		if ev, runes, ok := translateKey(msg); ok {
			if len(runes) > 0 {
				h.in.Runes = append(h.in.Runes, runes...)
			} else {
				h.in.Keys = append(h.in.Keys, ev)
			}
		}
		return h, h.scheduleFrame()

	case tea.MouseMsg:
		h.onMouse(msg)
		return h, h.scheduleFrame()

	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height
		h.paint.Resize(h.width, h.height)
		return h, h.scheduleFrame()

	case frameMsg:
		h.framePending = false
		if h.runFrame() {
			return h, h.scheduleFrame()
		}
		return h, nil
	}
	return h, nil
}

func (h *Host) View() string { return h.view }

// =============================================================================
// INPUT ACCUMULATION
// =============================================================================

func (h *Host) onMouse(msg tea.MouseMsg) {
	pos := ui.V(float64(msg.X), float64(msg.Y))
	h.in.HasPointer = true
	h.in.Pointer = pos
	h.in.Mods.Alt = msg.Alt
	h.in.Mods.Ctrl = msg.Ctrl

	switch msg.Type {
	case tea.MouseLeft:
		// Cell-motion mode repeats MouseLeft while dragging; only the
		// first one is a press.
		if !h.pointerDown {
			h.pointerDown = true
			h.in.PointerPressed = true
			h.in.ClickCount = 1
			now := time.Now()
			if now.Sub(h.lastClickAt) < doubleClickWindow &&
				pos.Sub(h.lastClickPos).Len() <= 1 {
				h.in.ClickCount = 2
			}
			h.lastClickAt = now
			h.lastClickPos = pos
		}
		h.in.PointerDown = true
	case tea.MouseRelease:
		h.pointerDown = false
		h.in.PointerDown = false
		h.in.PointerReleased = true
	case tea.MouseWheelUp:
		h.in.Scroll.Y -= 3
	case tea.MouseWheelDown:
		h.in.Scroll.Y += 3
	}
}

// =============================================================================
// FRAME LOOP
// =============================================================================

// scheduleFrame requests one frame, throttled to the configured rate.
// Coalesces: at most one tick is ever in flight.
func (h *Host) scheduleFrame() tea.Cmd {
	if h.framePending {
		return nil
	}
	h.framePending = true
	delay := h.limiter.Reserve().Delay()
	return tea.Tick(delay, func(time.Time) tea.Msg { return frameMsg{} })
}

// runFrame executes one immediate-mode frame and reports whether another
// is wanted.
func (h *Host) runFrame() bool {
	now := time.Since(h.start).Seconds()
	dt := now - h.lastFrameAt
	if dt <= 0 || dt > 1.0/30 {
		dt = 1.0 / 30
	}
	h.lastFrameAt = now

	h.paint.Reset()
	h.paint.SetClear(h.th.Background())

	ctx := h.mem.BeginFrame(ui.FrameInfo{
		Input:    &h.in,
		Painter:  h.paint,
		Viewport: ui.RectXYWH(0, 0, float64(h.width), float64(h.height)),
		Time:     now,
		StableDt: dt,
	})
	theme.Install(ctx, h.th)
	h.root(ctx)
	repaint := h.mem.EndFrame(ctx)

	h.view = h.paint.Render()
	h.clearFrameInput()
	return repaint
}

// clearFrameInput drops the one-frame edge events, keeping held state.
func (h *Host) clearFrameInput() {
	h.in.PointerPressed = false
	h.in.PointerReleased = false
	h.in.SecondaryPressed = false
	h.in.ClickCount = 0
	h.in.Scroll = ui.Vec2{}
	h.in.Keys = h.in.Keys[:0]
	h.in.Runes = h.in.Runes[:0]
}
