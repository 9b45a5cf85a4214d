// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit-per-channel sRGB color with straight alpha, the format
// the painter contract consumes.
type Color struct {
	R, G, B, A uint8
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color { return Color{r, g, b, 255} }

// RGBA builds a color with explicit alpha.
func RGBA(r, g, b, a uint8) Color { return Color{r, g, b, a} }

// Hex parses "#RRGGBB" into an opaque color. Malformed input yields black;
// theme loading validates before calling this.
func Hex(s string) Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{A: 255}
	}
	return Color{r, g, b, 255}
}

// HexString renders the color as "#RRGGBB", dropping alpha.
func (c Color) HexString() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// WithAlpha returns the color with alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// ScaleAlpha multiplies alpha by f, clamped to [0,1].
func (c Color) ScaleAlpha(f float64) Color {
	f = Clamp(f, 0, 1)
	c.A = uint8(float64(c.A)*f + 0.5)
	return c
}

// Gamma multiplies the RGB channels in gamma space, the hover-darkening
// operation buttons use. f > 1 brightens, f < 1 darkens.
func (c Color) Gamma(f float64) Color {
	mul := func(ch uint8) uint8 {
		v := float64(ch) * f
		if v > 255 {
			v = 255
		}
		if v < 0 {
			v = 0
		}
		return uint8(v + 0.5)
	}
	return Color{mul(c.R), mul(c.G), mul(c.B), c.A}
}

// Lerp blends toward o in linear RGB space so midpoints do not muddy,
// interpolating alpha linearly. Satisfies the animation kernel's Lerper.
func (c Color) Lerp(o Color, t float64) Color {
	ca := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	cb := colorful.Color{R: float64(o.R) / 255, G: float64(o.G) / 255, B: float64(o.B) / 255}
	r1, g1, b1 := ca.LinearRgb()
	r2, g2, b2 := cb.LinearRgb()
	blended := colorful.LinearRgb(
		r1+(r2-r1)*t,
		g1+(g2-g1)*t,
		b1+(b2-b1)*t,
	).Clamped()
	a := float64(c.A) + (float64(o.A)-float64(c.A))*t
	return Color{
		R: uint8(blended.R*255 + 0.5),
		G: uint8(blended.G*255 + 0.5),
		B: uint8(blended.B*255 + 0.5),
		A: uint8(Clamp(a, 0, 255) + 0.5),
	}
}
