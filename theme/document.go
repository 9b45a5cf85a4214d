// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/glint/diag"
	"github.com/jeranaias/glint/internal/util"
	"github.com/jeranaias/glint/ui"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrMalformedDocument reports a theme document that could not be parsed
// at the top level. Individual missing or malformed roles never produce
// this; they fall back to the dark preset with a warning.
var ErrMalformedDocument = errors.New("theme: malformed document")

// =============================================================================
// WIRE FORMAT
// =============================================================================

// The on-disk document is TOML (the kit's native config format) with a
// JSON twin for hosts that prefer it:
//
//	[colors]
//	primary = [167, 139, 250]
//	...
//	[spacing]
//	xs = 4.0
//	...
//	corner_radius = 6
//
// Colors are R,G,B triplets of 0-255 integers; role alphas are applied by
// the accessors and never serialized.

type document struct {
	Colors  map[string][]int `toml:"colors" json:"colors"`
	Spacing spacingDoc       `toml:"spacing" json:"spacing"`
}

type spacingDoc struct {
	XS  *float64 `toml:"xs" json:"xs"`
	SM  *float64 `toml:"sm" json:"sm"`
	MD  *float64 `toml:"md" json:"md"`
	LG  *float64 `toml:"lg" json:"lg"`
	XL  *float64 `toml:"xl" json:"xl"`
	XXL *float64 `toml:"xxl" json:"xxl"`

	CornerRadiusSmall *uint8 `toml:"corner_radius_small" json:"corner_radius_small"`
	CornerRadius      *uint8 `toml:"corner_radius" json:"corner_radius"`
	CornerRadiusLarge *uint8 `toml:"corner_radius_large" json:"corner_radius_large"`
}

// roleNames lists the 18 mandatory color keys in document order, paired
// with palette field accessors.
var roleNames = []string{
	"primary", "secondary", "background", "surface", "surface_variant",
	"on_background", "on_surface", "on_surface_variant",
	"outline", "outline_variant", "hover", "focus",
	"error", "warning", "success", "info",
	"chart_1", "chart_2",
}

func paletteFields(p *Palette) map[string]*ui.Color {
	return map[string]*ui.Color{
		"primary":            &p.Primary,
		"secondary":          &p.Secondary,
		"background":         &p.Background,
		"surface":            &p.Surface,
		"surface_variant":    &p.SurfaceVariant,
		"on_background":      &p.OnBackground,
		"on_surface":         &p.OnSurface,
		"on_surface_variant": &p.OnSurfaceVariant,
		"outline":            &p.Outline,
		"outline_variant":    &p.OutlineVariant,
		"hover":              &p.Hover,
		"focus":              &p.Focus,
		"error":              &p.Error,
		"warning":            &p.Warning,
		"success":            &p.Success,
		"info":               &p.Info,
		"chart_1":            &p.Chart1,
		"chart_2":            &p.Chart2,
	}
}

// =============================================================================
// DESERIALIZATION
// =============================================================================

// FromDocument parses a TOML theme document. A document that does not
// parse returns ErrMalformedDocument and installs nothing. Missing or
// malformed roles fall back to the dark preset's value with one warning
// each; unknown keys are ignored with a warning.
func FromDocument(data []byte) (*Theme, error) {
	var doc document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	for _, k := range md.Undecoded() {
		diag.WarnOnce("theme/unknown/"+k.String(), "theme document has an unknown key; ignored",
			map[string]any{"key": k.String()})
	}
	return themeFromDoc(&doc), nil
}

// FromJSONDocument parses the JSON twin of the theme document.
func FromJSONDocument(data []byte) (*Theme, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return themeFromDoc(&doc), nil
}

func themeFromDoc(doc *document) *Theme {
	fallback := Dark()
	th := &Theme{}

	fields := paletteFields(&th.Colors)
	fbFields := paletteFields(&fallback.Colors)

	// Unknown color keys decode into the map; report and ignore them.
	for key := range doc.Colors {
		if _, known := fields[key]; !known {
			diag.WarnOnce("theme/unknown/colors."+key, "theme document has an unknown key; ignored",
				map[string]any{"key": "colors." + key})
		}
	}

	for _, role := range roleNames {
		triplet, ok := doc.Colors[role]
		if !ok {
			diag.WarnOnce("theme/missing/"+role, "theme document is missing a color role; using dark preset value",
				map[string]any{"role": role})
			*fields[role] = *fbFields[role]
			continue
		}
		c, ok := colorFromTriplet(triplet)
		if !ok {
			diag.WarnOnce("theme/malformed/"+role, "theme color role is not a valid [r,g,b] triplet; using dark preset value",
				map[string]any{"role": role, "value": triplet})
			*fields[role] = *fbFields[role]
			continue
		}
		*fields[role] = c
	}

	th.Spacing = spacingFromDoc(&doc.Spacing, fallback.Spacing)
	return th
}

func colorFromTriplet(v []int) (ui.Color, bool) {
	if len(v) != 3 {
		return ui.Color{}, false
	}
	for _, ch := range v {
		if ch < 0 || ch > 255 {
			return ui.Color{}, false
		}
	}
	return ui.RGB(uint8(v[0]), uint8(v[1]), uint8(v[2])), true
}

func spacingFromDoc(doc *spacingDoc, fallback Spacing) Spacing {
	s := fallback
	warnMissing := func(key string) {
		diag.WarnOnce("theme/missing/spacing."+key, "theme document is missing a spacing key; using dark preset value",
			map[string]any{"key": key})
	}

	pickF := func(v *float64, dst *float64, key string) {
		if v == nil {
			warnMissing(key)
			return
		}
		*dst = *v
	}
	pickF(doc.XS, &s.XS, "xs")
	pickF(doc.SM, &s.SM, "sm")
	pickF(doc.MD, &s.MD, "md")
	pickF(doc.LG, &s.LG, "lg")
	pickF(doc.XL, &s.XL, "xl")
	pickF(doc.XXL, &s.XXL, "xxl")

	pickU := func(v *uint8, dst *uint8, key string) {
		if v == nil {
			warnMissing(key)
			return
		}
		*dst = *v
	}
	pickU(doc.CornerRadiusSmall, &s.CornerRadiusSmall, "corner_radius_small")
	pickU(doc.CornerRadius, &s.CornerRadius, "corner_radius")
	pickU(doc.CornerRadiusLarge, &s.CornerRadiusLarge, "corner_radius_large")

	if !s.valid() {
		diag.WarnOnce("theme/spacing-order", "theme spacing steps must strictly increase; using dark preset scale",
			map[string]any{"spacing": fmt.Sprintf("%+v", s)})
		radii := [3]uint8{s.CornerRadiusSmall, s.CornerRadius, s.CornerRadiusLarge}
		s = fallback
		s.CornerRadiusSmall, s.CornerRadius, s.CornerRadiusLarge = radii[0], radii[1], radii[2]
	}
	return s
}

// =============================================================================
// SERIALIZATION
// =============================================================================

func (t *Theme) toDoc() *document {
	colors := make(map[string][]int, len(roleNames))
	fields := paletteFields(&t.Colors)
	for _, role := range roleNames {
		c := *fields[role]
		colors[role] = []int{int(c.R), int(c.G), int(c.B)}
	}
	sp := t.Spacing
	return &document{
		Colors: colors,
		Spacing: spacingDoc{
			XS: &sp.XS, SM: &sp.SM, MD: &sp.MD,
			LG: &sp.LG, XL: &sp.XL, XXL: &sp.XXL,
			CornerRadiusSmall: &sp.CornerRadiusSmall,
			CornerRadius:      &sp.CornerRadius,
			CornerRadiusLarge: &sp.CornerRadiusLarge,
		},
	}
}

// Document serializes the theme as TOML. deserialize(serialize(t)) == t
// for every valid theme.
func (t *Theme) Document() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(t.toDoc()); err != nil {
		return nil, fmt.Errorf("theme: encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// JSONDocument serializes the theme as JSON.
func (t *Theme) JSONDocument() ([]byte, error) {
	data, err := json.MarshalIndent(t.toDoc(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("theme: encode json document: %w", err)
	}
	return data, nil
}

// =============================================================================
// FILES
// =============================================================================

// LoadFile reads and parses a TOML theme file.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return FromDocument(data)
}

// SaveFile writes the theme document atomically so a crash mid-save never
// leaves a half-written palette.
func (t *Theme) SaveFile(path string) error {
	data, err := t.Document()
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(path, data, 0o644)
}
