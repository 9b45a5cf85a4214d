// glint gallery - every widget, overlay, and effect on one screen.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jeranaias/glint/diag"
	"github.com/jeranaias/glint/gesture"
	hostterm "github.com/jeranaias/glint/host/term"
	"github.com/jeranaias/glint/overlay"
	"github.com/jeranaias/glint/theme"
	"github.com/jeranaias/glint/ui"
	"github.com/jeranaias/glint/ui/persist"
	"github.com/jeranaias/glint/widget"
)

func main() {
	themePath := flag.String("theme", "", "theme document to load and live-reload")
	statePath := flag.String("state", "", "sqlite file for persistent widget state")
	light := flag.Bool("light", false, "use the light preset")
	flag.Parse()

	opts := hostterm.Options{}
	if *light {
		opts.Theme = theme.Light()
	}

	var watcher *theme.Watcher
	if *themePath != "" {
		th, err := theme.LoadFile(*themePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading theme: %v\n", err)
			os.Exit(1)
		}
		opts.Theme = th
		// Live-reload edits while the gallery runs.
		watcher, err = theme.Watch(*themePath, func(next *theme.Theme) {
			*th = *next
		})
		if err != nil {
			diag.WarnOnce("gallery/theme-watch", "theme watch unavailable",
				map[string]any{"error": err.Error()})
		} else {
			defer watcher.Close()
		}
	}

	if *statePath != "" {
		store, err := persist.OpenSQLite(*statePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening state store: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		opts.Store = store
	}

	g := newGallery()
	if err := hostterm.New(g.draw, opts).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running gallery: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// GALLERY
// =============================================================================

// gallery holds the demo's cross-frame values. Widget internals live in
// the kit's own store; only application data sits here.
type gallery struct {
	progress float64
	slider   float64
	pad      ui.Vec2
	curve    *gesture.Curve

	settings overlay.Modal
	palette  overlay.CommandMenu
}

func newGallery() *gallery {
	c := gesture.NewCurve(1, 0, 1)
	c.AddPoint(0, 0.2)
	c.AddPoint(0.5, 0.9)
	c.AddPoint(1, 0.4)
	g := &gallery{
		progress: 40,
		slider:   0.5,
		pad:      ui.V(0.5, 0.5),
		curve:    c,
	}
	g.settings.Closable = true
	g.palette.Commands = []overlay.Command{
		{Title: "Toggle settings", Category: "View"},
		{Title: "Reset slider", Category: "Edit", Keywords: "default restore"},
		{Title: "Fill progress", Category: "Edit"},
	}
	return g
}

func (g *gallery) draw(ctx *ui.Context) {
	th := theme.Current(ctx)
	vp := ctx.Viewport()
	ctx.SetCursor(vp.Min.Add(ui.V(2, 1)))

	settings := (widget.Button{Label: "Settings", Tag: "open-settings"}).Show(ctx)
	if settings.Clicked {
		g.settings.Open()
	}
	overlay.Tooltip(ctx, settings.Rect, settings.Hovered, "Open the settings modal")
	if (widget.Button{Label: "Commands", Variant: widget.VariantOutline, Tag: "open-palette"}).Show(ctx).Clicked {
		g.palette.Open()
	}

	widget.TextInput{ID: "gallery-name", Placeholder: "Theme name", Description: "persisted across runs"}.Show(ctx)

	tabs := widget.Tabs{Labels: []string{"Widgets", "Motion", "Code"}, Tag: "gallery"}.Show(ctx)

	switch tabs.Active {
	case 0:
		g.slider = widget.Slider{Min: 0, Max: 1, Default: 0.5, Tag: "volume"}.Show(ctx, g.slider).Value
		g.pad = widget.XYPad{Tag: "filter"}.Show(ctx, g.pad).Value
		pr := widget.NewProgress(g.progress)
		pr.ShowLinear(ctx, 180)
		widget.Spinner{Label: "syncing"}.Show(ctx)
		widget.Skeleton{}.Show(ctx)
	case 1:
		widget.TiltCard{Tag: "hero", Content: func(ctx *ui.Context, r ui.Rect, _ ui.Vec2) {
			ctx.Painter().Text(ui.ZMiddle, r.Min.Add(ui.V(2, 1)), "tilt me", ui.TextStyle{Bold: true}, th.OnSurface())
		}}.Show(ctx)
		widget.CurveEditor{Curve: g.curve, Tag: "envelope", Playhead: -1}.Show(ctx, ui.V(48, 14))
		widget.Sparkles{}.Show(ctx, ui.RectFromSize(ctx.Cursor(), ui.V(40, 5)))
	case 2:
		widget.CodeBlock{
			Language:    "go",
			Code:        "func main() {\n\tfmt.Println(\"hello\")\n}\n",
			LineNumbers: true,
		}.Show(ctx)
	}

	g.settings.Show(ctx, ui.V(50, 12), func(ctx *ui.Context, r ui.Rect) {
		ctx.SetCursor(r.Min.Add(ui.V(2, 1)))
		widget.Accordion{Tag: "settings", Items: []widget.AccordionItem{
			{Title: "Appearance", ContentHeight: 4, Content: func(ctx *ui.Context, r ui.Rect) {
				ctx.Painter().Text(ui.ZForeground, r.Min, "theme, spacing, contrast", ui.TextStyle{}, th.OnSurfaceVariant())
			}},
			{Title: "Input", ContentHeight: 4, Content: func(ctx *ui.Context, r ui.Rect) {
				ctx.Painter().Text(ui.ZForeground, r.Min, "drag sensitivity, bindings", ui.TextStyle{}, th.OnSurfaceVariant())
			}},
		}}.Show(ctx, r.W()-4)
	})

	switch g.palette.Show(ctx) {
	case 0:
		g.settings.Toggle()
	case 1:
		g.slider = 0.5
	case 2:
		g.progress = 100
	}
}
