// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gesture

import (
	"math"

	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// MAGNIFYING DOCK
// =============================================================================

// Dock computes per-item magnification for a row of items that swell as
// the pointer nears them. Scales are a pure function of the pointer
// position, recomputed every frame; owners request repaints while the
// pointer is inside the dock.
type Dock struct {
	// ItemSize is the resting size of one item along the dock axis.
	ItemSize float64
	// MaxScale is the magnification at zero pointer distance.
	MaxScale float64
	// Gap is the spacing between resting items.
	Gap float64
}

// NewDock creates a dock with the given resting item size and peak scale.
func NewDock(itemSize, maxScale float64) *Dock {
	if maxScale < 1 {
		maxScale = 1
	}
	return &Dock{ItemSize: itemSize, MaxScale: maxScale, Gap: 8}
}

// Scale returns the magnification for an item centered at itemCenter with
// the pointer at pointer (both along the dock axis). The falloff is a
// raised cosine over an influence radius of twice the item size.
func (d *Dock) Scale(pointer, itemCenter float64) float64 {
	influence := d.ItemSize * 2
	if influence <= 0 {
		return 1
	}
	t := 1 - ui.Clamp(math.Abs(pointer-itemCenter)/influence, 0, 1)
	return 1 + (d.MaxScale-1)*(1-math.Cos(math.Pi*t))/2
}

// Scales lays out n items starting at origin and returns each item's
// center and scale for the given pointer position. When the pointer is
// not over the dock pass hovering=false to get resting scales.
func (d *Dock) Scales(origin, pointer float64, n int, hovering bool) (centers, scales []float64) {
	if n < 0 {
		n = 0
	}
	centers = make([]float64, n)
	scales = make([]float64, n)
	x := origin
	for i := 0; i < n; i++ {
		centers[i] = x + d.ItemSize/2
		if hovering {
			scales[i] = d.Scale(pointer, centers[i])
		} else {
			scales[i] = 1
		}
		x += d.ItemSize + d.Gap
	}
	return centers, scales
}
