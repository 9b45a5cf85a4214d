// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// TEXT INPUT
// =============================================================================

// InputState gates the border and description colors.
type InputState int

const (
	InputNormal InputState = iota
	InputSuccess
	InputWarning
	InputError
)

// TextInput is a single-line editable field. With an ID set its text
// survives application restarts through the persistent store; without
// one it lives only as long as the widget is shown.
type TextInput struct {
	// ID keys persistent text. Empty means session-only structural state.
	ID          string
	Placeholder string
	// Description renders under the field in the state's color.
	Description string
	State       InputState
	// MaxChars truncates input beyond this rune count when positive.
	MaxChars int
	Width    float64
	Size     Size
	Disabled bool
}

// inputState is the cross-frame editing state.
type inputState struct {
	Text    string
	Cursor  int
	Focused bool
}

// InputResponse reports the field's content and edits this frame.
type InputResponse struct {
	ui.Response
	Text    string
	Changed bool
	Focused bool
}

// Show draws the field at the layout cursor.
func (ti TextInput) Show(ctx *ui.Context) InputResponse {
	m := ti.Size.metrics()
	w := ti.Width
	if w <= 0 {
		w = 240
	}
	h := m.Height
	if ti.Description != "" {
		h += m.TextSize + 6
	}
	r := flowRect(ctx, ui.V(w, h))
	field := ui.RectXYWH(r.Left(), r.Top(), w, m.Height)
	return ti.showIn(ctx, field)
}

// ShowAt draws the field in an explicit rect.
func (ti TextInput) ShowAt(ctx *ui.Context, field ui.Rect) InputResponse {
	return ti.showIn(ctx, field)
}

func (ti TextInput) showIn(ctx *ui.Context, field ui.Rect) InputResponse {
	id := ctx.DeriveID("input", ti.ID)
	th := theme.Current(ctx)
	p := ctx.Painter()
	m := ti.Size.metrics()

	st := ti.load(ctx, id)

	sense := ui.SenseClick | ui.SenseHover
	if ti.Disabled {
		sense = 0
	}
	resp := ctx.Interact(field, id, sense)

	if resp.Clicked {
		st.Focused = true
		st.Cursor = len([]rune(st.Text))
	} else if ctx.Input().PointerPressed && !resp.Hovered {
		st.Focused = false
	}

	changed := false
	if st.Focused && !ti.Disabled {
		st, changed = ti.edit(ctx, st)
	}
	if ti.MaxChars > 0 {
		if rs := []rune(st.Text); len(rs) > ti.MaxChars {
			st.Text = string(rs[:ti.MaxChars])
			if st.Cursor > ti.MaxChars {
				st.Cursor = ti.MaxChars
			}
			changed = true
		}
	}
	ti.store(ctx, id, st)

	ti.draw(ctx, field, st, resp.Hovered)

	if ti.Description != "" {
		pos := ui.V(field.Left(), field.Bottom()+4)
		p.Text(ui.ZMiddle, pos, ti.Description, ui.TextStyle{Size: m.TextSize - 1}, ti.stateColor(th))
	}

	return InputResponse{Response: resp, Text: st.Text, Changed: changed, Focused: st.Focused}
}

func (ti TextInput) edit(ctx *ui.Context, st inputState) (inputState, bool) {
	in := ctx.Input()
	rs := []rune(st.Text)
	if st.Cursor > len(rs) {
		st.Cursor = len(rs)
	}
	changed := false

	for _, r := range in.Runes {
		rs = append(rs[:st.Cursor], append([]rune{r}, rs[st.Cursor:]...)...)
		st.Cursor++
		changed = true
	}
	for _, ev := range in.Keys {
		switch ev.Key {
		case ui.KeyBackspace:
			if st.Cursor > 0 {
				rs = append(rs[:st.Cursor-1], rs[st.Cursor:]...)
				st.Cursor--
				changed = true
			}
		case ui.KeyDelete:
			if st.Cursor < len(rs) {
				rs = append(rs[:st.Cursor], rs[st.Cursor+1:]...)
				changed = true
			}
		case ui.KeyLeft:
			if st.Cursor > 0 {
				st.Cursor--
			}
		case ui.KeyRight:
			if st.Cursor < len(rs) {
				st.Cursor++
			}
		case ui.KeyHome:
			st.Cursor = 0
		case ui.KeyEnd:
			st.Cursor = len(rs)
		case ui.KeyEscape:
			st.Focused = false
		}
	}
	st.Text = string(rs)
	return st, changed
}

func (ti TextInput) draw(ctx *ui.Context, field ui.Rect, st inputState, hovered bool) {
	th := theme.Current(ctx)
	p := ctx.Painter()
	m := ti.Size.metrics()
	style := ui.TextStyle{Size: m.TextSize}
	radius := float64(th.Spacing.CornerRadiusSmall)

	bg := th.SurfaceVariant()
	border := ti.borderColor(th, st.Focused, hovered)
	fg := th.OnSurface()
	if ti.Disabled {
		bg = bg.ScaleAlpha(disabledAlpha)
		border = border.ScaleAlpha(disabledAlpha)
		fg = fg.ScaleAlpha(disabledAlpha)
	}

	p.RectFilled(ui.ZMiddle, field, radius, bg)
	p.RectStroke(ui.ZMiddle, field, radius, ui.Stroke{Width: 1, Color: border})

	text := st.Text
	if text == "" && !st.Focused {
		text = ti.Placeholder
		fg = th.OnSurfaceVariant()
	}
	p.ClipPush(field.Inset(1))
	tp := ui.V(field.Left()+m.PadX, textCenterY(field.Top(), field.H(), p.MeasureText(text, style).Y))
	p.Text(ui.ZMiddle, tp, text, style, fg)
	if st.Focused && !ti.Disabled {
		// Caret blinks off the wall clock so all fields stay in phase.
		if int(ctx.Time()*2)%2 == 0 {
			rs := []rune(st.Text)
			cx := tp.X + p.MeasureText(string(rs[:st.Cursor]), style).X
			p.LineSegment(ui.ZMiddle,
				ui.V(cx, field.Top()+4), ui.V(cx, field.Bottom()-4),
				ui.Stroke{Width: 1, Color: th.Primary()})
		}
		ctx.RequestRepaint()
	}
	p.ClipPop()
}

// borderColor gates the frame color on the field's state; Normal fields
// show focus instead.
func (ti TextInput) borderColor(th *theme.Theme, focused, hovered bool) ui.Color {
	switch ti.State {
	case InputSuccess:
		return th.Success()
	case InputWarning:
		return th.Warning()
	case InputError:
		return th.Error()
	default:
		if focused {
			return th.Focus().WithAlpha(255)
		}
		if hovered {
			return th.Outline().WithAlpha(255)
		}
		return th.Outline()
	}
}

func (ti TextInput) stateColor(th *theme.Theme) ui.Color {
	switch ti.State {
	case InputSuccess:
		return th.Success()
	case InputWarning:
		return th.Warning()
	case InputError:
		return th.Error()
	default:
		return th.OnSurfaceVariant()
	}
}

func (ti TextInput) load(ctx *ui.Context, id ui.ID) inputState {
	if ti.ID != "" {
		return ui.GetPersistedOr(ctx, id, inputState{})
	}
	return ui.GetOr(ctx, id, inputState{})
}

func (ti TextInput) store(ctx *ui.Context, id ui.ID, st inputState) {
	if ti.ID != "" {
		ui.PutPersisted(ctx, id, st)
		return
	}
	ui.Put(ctx, id, st)
}
