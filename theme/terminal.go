// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// TERMINAL COLOR SUPPORT
// =============================================================================

// TermColor converts a resolved theme color to a lipgloss color, degraded
// to the given terminal profile (truecolor passes through; 256-color and
// ANSI terminals get the nearest palette entry).
func TermColor(c ui.Color, profile termenv.Profile) lipgloss.Color {
	conv := profile.Convert(termenv.RGBColor(c.HexString()))
	if conv == nil {
		return lipgloss.Color(c.HexString())
	}
	// RGBColor stringifies to "#rrggbb", ANSI variants to their index,
	// both of which lipgloss.Color accepts.
	return lipgloss.Color(fmt.Sprint(conv))
}

// DetectProfile returns the running terminal's color capability.
func DetectProfile() termenv.Profile {
	return termenv.ColorProfile()
}

// Styles bundles the lipgloss styles a terminal host derives from a
// theme. Built once per theme install, not per frame.
type Styles struct {
	Body      lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	ErrorText lipgloss.Style
	Panel     lipgloss.Style
}

// TermStyles derives terminal styles from the theme at the given profile.
func TermStyles(t *Theme, profile termenv.Profile) Styles {
	return Styles{
		Body:      lipgloss.NewStyle().Foreground(TermColor(t.OnSurface(), profile)),
		Muted:     lipgloss.NewStyle().Foreground(TermColor(t.OnSurfaceVariant(), profile)),
		Accent:    lipgloss.NewStyle().Foreground(TermColor(t.Primary(), profile)).Bold(true),
		ErrorText: lipgloss.NewStyle().Foreground(TermColor(t.Error(), profile)),
		Panel: lipgloss.NewStyle().
			Background(TermColor(t.Surface(), profile)).
			Foreground(TermColor(t.OnSurface(), profile)),
	}
}
