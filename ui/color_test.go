// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import "testing"

func TestHexRoundTrip(t *testing.T) {
	tests := []string{"#000000", "#FFFFFF", "#A78BFA", "#22D3EE", "#1E1E2E"}
	for _, hex := range tests {
		if got := Hex(hex).HexString(); got != hex {
			t.Errorf("Hex(%s).HexString() = %s", hex, got)
		}
	}
}

func TestHexMalformed(t *testing.T) {
	if got := Hex("not-a-color"); got != (Color{A: 255}) {
		t.Errorf("malformed hex should yield opaque black, got %v", got)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := RGB(10, 20, 30)
	b := RGB(200, 100, 50)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
}

func TestLerpAlphaLinear(t *testing.T) {
	a := RGBA(0, 0, 0, 0)
	b := RGBA(0, 0, 0, 200)
	if got := a.Lerp(b, 0.5).A; got != 100 {
		t.Errorf("alpha midpoint = %d, want 100", got)
	}
}

func TestGamma(t *testing.T) {
	c := RGB(100, 200, 250)
	dark := c.Gamma(0.9)
	if dark.R >= c.R || dark.G >= c.G || dark.B >= c.B {
		t.Errorf("Gamma(0.9) should darken, got %v", dark)
	}
	if dark.A != c.A {
		t.Error("Gamma must not touch alpha")
	}
	bright := RGB(250, 250, 250).Gamma(2)
	if bright.R != 255 {
		t.Errorf("Gamma overflow should clamp to 255, got %d", bright.R)
	}
}

func TestScaleAlpha(t *testing.T) {
	c := RGBA(1, 2, 3, 200)
	if got := c.ScaleAlpha(0.5).A; got != 100 {
		t.Errorf("ScaleAlpha(0.5) = %d, want 100", got)
	}
	if got := c.ScaleAlpha(2).A; got != 200 {
		t.Errorf("ScaleAlpha clamps factor to 1, got %d", got)
	}
}

func TestLerpMidpointIsLinearSpace(t *testing.T) {
	// Black to white halfway in linear RGB lands well above the naive
	// sRGB midpoint of 127, near 188 after gamma encoding.
	got := RGB(0, 0, 0).Lerp(RGB(255, 255, 255), 0.5)
	if got.R < 180 || got.R > 195 {
		t.Errorf("linear midpoint R = %d, want ~188", got.R)
	}
	if got.G != got.R || got.B != got.R {
		t.Errorf("gray midpoint should stay gray, got %v", got)
	}
}
