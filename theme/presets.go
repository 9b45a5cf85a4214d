// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import "github.com/jeranaias/glint/ui"

// Built-in presets. The dark palette is Catppuccin Mocha-derived, the
// light palette Latte-derived, matching the terminal styling the kit
// shipped with from the start. Dark is also the fallback source when a
// deserialized document is missing roles.

func defaultSpacing() Spacing {
	return Spacing{
		XS:  4,
		SM:  8,
		MD:  16,
		LG:  24,
		XL:  32,
		XXL: 48,

		CornerRadiusSmall: 4,
		CornerRadius:      6,
		CornerRadiusLarge: 12,
	}
}

// Dark returns the built-in dark theme.
func Dark() *Theme {
	return &Theme{
		Colors: Palette{
			Primary:        ui.Hex("#A78BFA"),
			Secondary:      ui.Hex("#22D3EE"),
			Background:     ui.Hex("#181825"),
			Surface:        ui.Hex("#1E1E2E"),
			SurfaceVariant: ui.Hex("#313244"),

			OnBackground:     ui.Hex("#CDD6F4"),
			OnSurface:        ui.Hex("#CDD6F4"),
			OnSurfaceVariant: ui.Hex("#A6ADC8"),

			Outline:        ui.Hex("#6C7086"),
			OutlineVariant: ui.Hex("#45475A"),

			Hover: ui.Hex("#CDD6F4"),
			Focus: ui.Hex("#22D3EE"),

			Error:   ui.Hex("#FB7185"),
			Warning: ui.Hex("#FBBF24"),
			Success: ui.Hex("#34D399"),
			Info:    ui.Hex("#89B4FA"),

			Chart1: ui.Hex("#F5C2E7"),
			Chart2: ui.Hex("#FAB387"),
		},
		Spacing: defaultSpacing(),
	}
}

// Light returns the built-in light theme.
func Light() *Theme {
	return &Theme{
		Colors: Palette{
			Primary:        ui.Hex("#7C3AED"),
			Secondary:      ui.Hex("#0891B2"),
			Background:     ui.Hex("#FFFFFF"),
			Surface:        ui.Hex("#F5F5F5"),
			SurfaceVariant: ui.Hex("#E5E5E5"),

			OnBackground:     ui.Hex("#1F2937"),
			OnSurface:        ui.Hex("#1F2937"),
			OnSurfaceVariant: ui.Hex("#6B7280"),

			Outline:        ui.Hex("#9CA3AF"),
			OutlineVariant: ui.Hex("#D4D4D4"),

			Hover: ui.Hex("#1F2937"),
			Focus: ui.Hex("#0891B2"),

			Error:   ui.Hex("#E11D48"),
			Warning: ui.Hex("#D97706"),
			Success: ui.Hex("#059669"),
			Info:    ui.Hex("#1E66F5"),

			Chart1: ui.Hex("#EA76CB"),
			Chart2: ui.Hex("#FE640B"),
		},
		Spacing: defaultSpacing(),
	}
}
