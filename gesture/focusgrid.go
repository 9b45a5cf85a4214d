// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gesture

import "github.com/jeranaias/glint/anim"

// =============================================================================
// FOCUS CARD GRID
// =============================================================================

// focusBlurDuration is how long a card takes to blur or sharpen.
const focusBlurDuration = 0.3

// FocusGrid dims every card except the hovered one. Each card's blur
// factor chases its target (0 focused, 1 blurred) with a CubicOut tween,
// retargeted from the current value whenever hover moves so mid-flight
// changes never jump.
type FocusGrid struct {
	blurs   []*anim.Animation[anim.Float]
	targets []float64
	hovered int
}

// NewFocusGrid creates a grid of n cards, all sharp, none hovered.
func NewFocusGrid(n int) *FocusGrid {
	if n < 0 {
		n = 0
	}
	g := &FocusGrid{
		blurs:   make([]*anim.Animation[anim.Float], n),
		targets: make([]float64, n),
		hovered: -1,
	}
	for i := range g.blurs {
		g.blurs[i] = anim.New(anim.Float(0), anim.Float(0), focusBlurDuration).
			WithEasing(anim.EaseOutCubic)
	}
	return g
}

// Len returns the card count.
func (g *FocusGrid) Len() int { return len(g.blurs) }

// SetHovered declares card k hovered (-1 for none) and retargets every
// card's blur tween accordingly.
func (g *FocusGrid) SetHovered(k int) {
	if k == g.hovered {
		return
	}
	g.hovered = k
	for i := range g.blurs {
		target := 0.0
		if k >= 0 && i != k {
			target = 1.0
		}
		if g.targets[i] == target {
			continue
		}
		g.targets[i] = target
		cur := g.blurs[i].Value()
		g.blurs[i] = anim.New(cur, anim.Float(target), focusBlurDuration).
			WithEasing(anim.EaseOutCubic)
		g.blurs[i].Start()
	}
}

// Update advances all blur tweens and reports whether any is still
// running, i.e. whether the owner should request a repaint.
func (g *FocusGrid) Update(dt float64) bool {
	running := false
	for _, a := range g.blurs {
		a.Update(dt)
		if a.State() == anim.Running {
			running = true
		}
	}
	return running
}

// Blur returns card i's current blur factor in [0,1].
func (g *FocusGrid) Blur(i int) float64 {
	if i < 0 || i >= len(g.blurs) {
		return 0
	}
	return float64(g.blurs[i].Value())
}

// Opacity returns the content opacity factor for card i: 1 - 0.6*blur.
// Card closures receive this when rendering.
func (g *FocusGrid) Opacity(i int) float64 {
	return 1 - 0.6*g.Blur(i)
}
