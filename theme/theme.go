// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package theme resolves semantic design tokens (color roles, spacing
// steps, corner radii) to concrete values. A Theme is constructed once,
// installed into the ambient ui context, and replaced wholesale when the
// application switches palettes; widgets never mutate it.
package theme

import "github.com/jeranaias/glint/ui"

// =============================================================================
// PALETTE
// =============================================================================

// Palette holds the 18 semantic color roles as RGB triplets. Default
// alphas are applied by the Theme accessors, not stored here, so the
// serialized form stays three bytes per role.
type Palette struct {
	Primary        ui.Color
	Secondary      ui.Color
	Background     ui.Color
	Surface        ui.Color
	SurfaceVariant ui.Color

	OnBackground     ui.Color
	OnSurface        ui.Color
	OnSurfaceVariant ui.Color

	Outline        ui.Color
	OutlineVariant ui.Color

	Hover ui.Color
	Focus ui.Color

	Error   ui.Color
	Warning ui.Color
	Success ui.Color
	Info    ui.Color

	Chart1 ui.Color
	Chart2 ui.Color
}

// =============================================================================
// SPACING
// =============================================================================

// Spacing is the six-step spacing scale plus the three corner radii.
// Invariant: XS < SM < MD < LG < XL < XXL.
type Spacing struct {
	XS  float64
	SM  float64
	MD  float64
	LG  float64
	XL  float64
	XXL float64

	CornerRadiusSmall uint8
	CornerRadius      uint8
	CornerRadiusLarge uint8
}

// valid reports whether the spacing steps strictly increase.
func (s Spacing) valid() bool {
	return s.XS < s.SM && s.SM < s.MD && s.MD < s.LG && s.LG < s.XL && s.XL < s.XXL
}

// =============================================================================
// THEME
// =============================================================================

// Theme is a palette plus spacing scale. Copy by value; replace, don't
// mutate.
type Theme struct {
	Colors  Palette
	Spacing Spacing
}

// Default alphas applied per role by the accessors. Outline roles are
// translucent so separators read as hairlines over any surface; hover and
// focus are wash overlays composited on top of the base fill.
const (
	alphaOutline        = 77  // 30%
	alphaOutlineVariant = 38  // 15%
	alphaHover          = 26  // 10%
	alphaFocus          = 102 // 40%
)

func opaque(c ui.Color) ui.Color { return c.WithAlpha(255) }

// Primary returns the primary accent, opaque.
func (t *Theme) Primary() ui.Color { return opaque(t.Colors.Primary) }

// Secondary returns the secondary accent, opaque.
func (t *Theme) Secondary() ui.Color { return opaque(t.Colors.Secondary) }

// Background returns the window background, opaque.
func (t *Theme) Background() ui.Color { return opaque(t.Colors.Background) }

// Surface returns the card/panel fill, opaque.
func (t *Theme) Surface() ui.Color { return opaque(t.Colors.Surface) }

// SurfaceVariant returns the alternate panel fill, opaque.
func (t *Theme) SurfaceVariant() ui.Color { return opaque(t.Colors.SurfaceVariant) }

// OnBackground returns body text over the background.
func (t *Theme) OnBackground() ui.Color { return opaque(t.Colors.OnBackground) }

// OnSurface returns text over surfaces.
func (t *Theme) OnSurface() ui.Color { return opaque(t.Colors.OnSurface) }

// OnSurfaceVariant returns secondary text over surfaces.
func (t *Theme) OnSurfaceVariant() ui.Color { return opaque(t.Colors.OnSurfaceVariant) }

// Outline returns the border hairline at its 30% default alpha.
func (t *Theme) Outline() ui.Color { return t.Colors.Outline.WithAlpha(alphaOutline) }

// OutlineVariant returns the subtle separator at 15% alpha.
func (t *Theme) OutlineVariant() ui.Color { return t.Colors.OutlineVariant.WithAlpha(alphaOutlineVariant) }

// Hover returns the hover wash at 10% alpha.
func (t *Theme) Hover() ui.Color { return t.Colors.Hover.WithAlpha(alphaHover) }

// Focus returns the focus ring color at 40% alpha.
func (t *Theme) Focus() ui.Color { return t.Colors.Focus.WithAlpha(alphaFocus) }

// Error returns the error role, opaque.
func (t *Theme) Error() ui.Color { return opaque(t.Colors.Error) }

// Warning returns the warning role, opaque.
func (t *Theme) Warning() ui.Color { return opaque(t.Colors.Warning) }

// Success returns the success role, opaque.
func (t *Theme) Success() ui.Color { return opaque(t.Colors.Success) }

// Info returns the info role, opaque.
func (t *Theme) Info() ui.Color { return opaque(t.Colors.Info) }

// Chart1 returns the first chart accent, opaque.
func (t *Theme) Chart1() ui.Color { return opaque(t.Colors.Chart1) }

// Chart2 returns the second chart accent, opaque.
func (t *Theme) Chart2() ui.Color { return opaque(t.Colors.Chart2) }

// Gradient returns the (primary, secondary, primary) triple animated
// borders sweep through.
func (t *Theme) Gradient() [3]ui.Color {
	return [3]ui.Color{t.Primary(), t.Secondary(), t.Primary()}
}

// =============================================================================
// AMBIENT INSTALL
// =============================================================================

// ambientKey is the well-known ambient-context slot themes live under.
const ambientKey = "glint/theme"

// Install makes th the ambient theme for every widget rendered through
// ctx's Memory. Installing replaces any previous theme; per-scope theming
// must install and restore around the scoped region.
func Install(ctx *ui.Context, th *Theme) {
	ctx.SetAmbient(ambientKey, th)
}

// Current returns the ambient theme, or the dark preset when none was
// installed.
func Current(ctx *ui.Context) *Theme {
	if th, ok := ctx.Ambient(ambientKey).(*Theme); ok && th != nil {
		return th
	}
	return Dark()
}
