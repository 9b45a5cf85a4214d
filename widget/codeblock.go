// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// CODE BLOCK
// =============================================================================

const (
	codePad     = 10.0
	codeLineH   = 18.0
	codeGutterW = 34.0
)

// CodeBlock renders source code with syntax colors drawn from the theme
// rather than a highlighter stylesheet, so code blocks recolor with the
// rest of the application when the theme changes. The tokenizer is
// chroma; this widget only maps token categories to theme roles and
// paints.
type CodeBlock struct {
	Language string
	Code     string
	// MaxWidth clips long lines when positive.
	MaxWidth float64
	// LineNumbers draws a right-aligned gutter.
	LineNumbers bool
}

// span is one colored run within a line.
type span struct {
	text  string
	color ui.Color
}

// Show draws the block at the layout cursor and returns its rect.
func (cb CodeBlock) Show(ctx *ui.Context) ui.Rect {
	th := theme.Current(ctx)
	p := ctx.Painter()
	style := ui.TextStyle{Size: 12, Mono: true}

	lines := cb.tokenize(th)

	w := 0.0
	for _, line := range lines {
		lw := 0.0
		for _, s := range line {
			lw += p.MeasureText(s.text, style).X
		}
		if lw > w {
			w = lw
		}
	}
	w += 2 * codePad
	if cb.LineNumbers {
		w += codeGutterW
	}
	if cb.MaxWidth > 0 && w > cb.MaxWidth {
		w = cb.MaxWidth
	}
	h := float64(len(lines))*codeLineH + 2*codePad

	r := flowRect(ctx, ui.V(w, h))
	radius := float64(th.Spacing.CornerRadius)
	p.RectFilled(ui.ZMiddle, r, radius, th.SurfaceVariant())
	p.RectStroke(ui.ZMiddle, r, radius, ui.Stroke{Width: 1, Color: th.OutlineVariant()})

	p.ClipPush(r.Inset(1))
	y := r.Top() + codePad
	for i, line := range lines {
		x := r.Left() + codePad
		if cb.LineNumbers {
			num := fmt.Sprintf("%d", i+1)
			nw := p.MeasureText(num, style).X
			p.Text(ui.ZMiddle, ui.V(x+codeGutterW-8-nw, y), num, style, th.OnSurfaceVariant())
			x += codeGutterW
		}
		for _, s := range line {
			p.Text(ui.ZMiddle, ui.V(x, y), s.text, style, s.color)
			x += p.MeasureText(s.text, style).X
		}
		y += codeLineH
	}
	p.ClipPop()
	return r
}

// tokenize splits the code into per-line colored spans. A failed lexer
// degrades to monochrome text rather than failing the frame.
func (cb CodeBlock) tokenize(th *theme.Theme) [][]span {
	code := strings.TrimRight(cb.Code, "\n")

	lexer := lexers.Get(cb.Language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plainLines(code, th.OnSurface())
	}

	lines := [][]span{nil}
	for tok := it(); tok != chroma.EOF; tok = it() {
		color := tokenColor(tok.Type, th)
		parts := strings.Split(tok.Value, "\n")
		for pi, part := range parts {
			if pi > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			cur := len(lines) - 1
			lines[cur] = append(lines[cur], span{text: part, color: color})
		}
	}
	return lines
}

func plainLines(code string, c ui.Color) [][]span {
	raw := strings.Split(code, "\n")
	out := make([][]span, len(raw))
	for i, l := range raw {
		if l != "" {
			out[i] = []span{{text: l, color: c}}
		}
	}
	return out
}

// tokenColor maps a chroma token category to a theme role.
func tokenColor(t chroma.TokenType, th *theme.Theme) ui.Color {
	switch {
	case t == chroma.NameFunction || t == chroma.NameClass:
		return th.Info()
	case t.InCategory(chroma.Keyword):
		return th.Primary()
	case t.InCategory(chroma.LiteralString):
		return th.Success()
	case t.InCategory(chroma.LiteralNumber):
		return th.Warning()
	case t.InCategory(chroma.Comment):
		return th.OnSurfaceVariant()
	case t.InCategory(chroma.Error):
		return th.Error()
	case t.InCategory(chroma.Operator), t.InCategory(chroma.Punctuation):
		return th.OnSurfaceVariant()
	default:
		return th.OnSurface()
	}
}
