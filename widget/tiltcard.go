// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"github.com/charmbracelet/harmonica"

	"github.com/jeranaias/glint/anim"
	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// TILT CARD
// =============================================================================

const (
	// tiltMax is the largest tilt magnitude on each axis.
	tiltMax = 1.0
	// tiltSettleEps ends repaint requests once the springs calm down.
	tiltSettleEps = 0.001
	// glareDuration is the highlight fade on hover enter/leave.
	glareDuration = 0.25
	glareAlpha    = 0.10
)

// TiltCard is a hoverable panel that leans toward the pointer. The tilt
// follows two springs so it stays responsive to a moving pointer; the
// glare highlight is a fixed-duration tween. Springs where the target
// moves, tweens where the end state is known.
type TiltCard struct {
	Size ui.Vec2
	Tag  string
	// Content paints inside the card; tilt is the spring's current lean
	// in [-1,1] per axis for parallax effects.
	Content func(ctx *ui.Context, r ui.Rect, tilt ui.Vec2)
}

type tiltState struct {
	tiltX, tiltY float64
	velX, velY   float64
	glare        *anim.Animation[anim.Float]
	hovered      bool
}

// Show draws the card at the layout cursor and returns its response.
func (tc TiltCard) Show(ctx *ui.Context) ui.Response {
	size := tc.Size
	if size.X <= 0 {
		size.X = 220
	}
	if size.Y <= 0 {
		size.Y = 140
	}

	id := ctx.DeriveID("tiltcard", tc.Tag)
	r := flowRect(ctx, size)
	resp := ctx.Interact(r, id, ui.SenseHover|ui.SenseClick)

	st := ui.GetOrElse(ctx, id, func() tiltState {
		return tiltState{glare: anim.New(anim.Float(0), anim.Float(0), glareDuration)}
	})

	// Tilt target: pointer offset from the card center, normalized to
	// [-1,1] per axis; resting pose when the pointer leaves.
	var targetX, targetY float64
	if resp.Hovered {
		off := resp.PointerPos.Sub(r.Center())
		targetX = ui.Clamp(off.X/(r.W()/2), -1, 1) * tiltMax
		targetY = ui.Clamp(off.Y/(r.H()/2), -1, 1) * tiltMax
	}

	spring := harmonica.NewSpring(harmonica.FPS(60), 8.0, 0.6)
	st.tiltX, st.velX = spring.Update(st.tiltX, st.velX, targetX)
	st.tiltY, st.velY = spring.Update(st.tiltY, st.velY, targetY)

	if resp.Hovered != st.hovered {
		st.hovered = resp.Hovered
		target := anim.Float(0)
		if resp.Hovered {
			target = 1
		}
		st.glare = anim.New(st.glare.Value(), target, glareDuration).WithEasing(anim.EaseOutCubic)
		st.glare.Start()
	}
	st.glare.Update(ctx.StableDt())

	settled := abs(st.tiltX-targetX) < tiltSettleEps && abs(st.tiltY-targetY) < tiltSettleEps &&
		abs(st.velX) < tiltSettleEps && abs(st.velY) < tiltSettleEps
	if !settled || !st.glare.IsComplete() || resp.Hovered {
		ctx.RequestRepaint()
	}
	ui.Put(ctx, id, st)

	tc.draw(ctx, r, st)
	if tc.Content != nil {
		tc.Content(ctx, r.Inset(10), ui.V(st.tiltX, st.tiltY))
	}
	return resp
}

func (tc TiltCard) draw(ctx *ui.Context, r ui.Rect, st tiltState) {
	th := theme.Current(ctx)
	p := ctx.Painter()
	radius := float64(th.Spacing.CornerRadius)

	// Fake depth: the shadow slides opposite the lean.
	shadow := r.Translate(ui.V(-st.tiltX*4, -st.tiltY*4+2))
	p.RectFilled(ui.ZBackground, shadow, radius, ui.Color{A: 60})

	p.RectFilled(ui.ZMiddle, r, radius, th.Surface())
	p.RectStroke(ui.ZMiddle, r, radius, ui.Stroke{Width: 1, Color: th.Outline()})

	// Glare: a highlight that rides the lean direction, faded by the
	// hover tween.
	if g := float64(st.glare.Value()); g > 0 {
		gp := ui.V(
			r.Center().X+st.tiltX*r.W()/3,
			r.Center().Y+st.tiltY*r.H()/3,
		)
		p.CircleFilled(ui.ZMiddle, gp, r.W()/3, th.OnSurface().ScaleAlpha(glareAlpha*g))
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
