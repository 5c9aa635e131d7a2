// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package theme

import "github.com/sufra-dev/sufra/internal/style"

// Presets returns the built-in themes shown in the selection gallery.
// Every preset is already complete; Normalize is still applied at the
// edges so presets and custom themes flow through one path.
func Presets() []Descriptor {
	return []Descriptor{
		Default(),
		{
			Name: "Majlis Gold",
			Colors: map[string]string{
				ColorPrimary:    "#78350f",
				ColorSecondary:  "#92400e",
				ColorAccent:     "#ca8a04",
				ColorBackground: "#1c1917",
				ColorSurface:    "#292524",
				ColorText:       "#fafaf9",
				ColorTextMuted:  "#a8a29e",
				ColorBadge:      "#ca8a04",
				ColorPrice:      "#fbbf24",
				ColorBorder:     "#44403c",
			},
			Typography: Typography{HeadingFont: "Amiri", BodyFont: "Cairo"},
			Layout: Layout{
				ItemStyle:     string(style.ItemCards),
				CategoryStyle: string(style.CategoryElegant),
				Nav:           string(style.NavScroll),
			},
			Decoration: Decoration{Type: string(style.DecorationGoldLines), Color: "#ca8a04"},
			Features:   Features{ShowPhotos: true, ShowDecorations: true, CustomFont: true},
		},
		{
			Name: "Seaside",
			Colors: map[string]string{
				ColorPrimary:    "#0c4a6e",
				ColorSecondary:  "#075985",
				ColorAccent:     "#0ea5e9",
				ColorBackground: "#f0f9ff",
				ColorSurface:    "#ffffff",
				ColorText:       "#0f172a",
				ColorTextMuted:  "#64748b",
				ColorBadge:      "#0284c7",
				ColorPrice:      "#0c4a6e",
				ColorBorder:     "#e0f2fe",
			},
			Typography: Typography{HeadingFont: "Rubik", BodyFont: "Rubik"},
			Layout: Layout{
				ItemStyle:     string(style.ItemGrid),
				CategoryStyle: string(style.CategoryWave),
				Nav:           string(style.NavScroll),
			},
			Decoration: Decoration{Type: string(style.DecorationWaves)},
			Features:   Features{ShowPhotos: true, ShowDecorations: true},
		},
		{
			Name: "Midnight Oud",
			Colors: map[string]string{
				ColorPrimary:    "#4c1d95",
				ColorSecondary:  "#5b21b6",
				ColorAccent:     "#a78bfa",
				ColorBackground: "#0f0a1e",
				ColorSurface:    "#1e1b2e",
				ColorText:       "#ede9fe",
				ColorTextMuted:  "#a5a0b8",
				ColorBadge:      "#7c3aed",
				ColorPrice:      "#c4b5fd",
				ColorBorder:     "#312e45",
			},
			Typography: Typography{HeadingFont: "Changa", BodyFont: "Tajawal"},
			Layout: Layout{
				ItemStyle:     string(style.ItemOverlay),
				CategoryStyle: string(style.CategoryGlow),
				Nav:           string(style.NavScroll),
			},
			Decoration: Decoration{Type: string(style.DecorationStars)},
			Features:   Features{ShowPhotos: true, ShowDecorations: true, CustomFont: true},
		},
		{
			Name: "Souq",
			Colors: map[string]string{
				ColorPrimary:    "#9f1239",
				ColorSecondary:  "#be123c",
				ColorAccent:     "#f59e0b",
				ColorBackground: "#fff7ed",
				ColorSurface:    "#ffffff",
				ColorText:       "#1c1917",
				ColorTextMuted:  "#78716c",
				ColorBadge:      "#be123c",
				ColorPrice:      "#9f1239",
				ColorBorder:     "#fed7aa",
			},
			Typography: Typography{HeadingFont: "Lalezar", BodyFont: "Almarai"},
			Layout: Layout{
				ItemStyle:     string(style.ItemMagazine),
				CategoryStyle: string(style.CategoryAccent),
				Nav:           string(style.NavScroll),
			},
			Decoration: Decoration{Type: string(style.DecorationGeometric)},
			Features:   Features{ShowPhotos: true, ShowDecorations: true},
		},
		{
			Name: "Qahwa Minimal",
			Colors: map[string]string{
				ColorPrimary:    "#292524",
				ColorSecondary:  "#44403c",
				ColorAccent:     "#a16207",
				ColorBackground: "#fafaf9",
				ColorSurface:    "#ffffff",
				ColorText:       "#1c1917",
				ColorTextMuted:  "#78716c",
				ColorBadge:      "#a16207",
				ColorPrice:      "#292524",
				ColorBorder:     "#e7e5e4",
			},
			Typography: Typography{HeadingFont: "IBM Plex Sans Arabic", BodyFont: "IBM Plex Sans Arabic"},
			Layout: Layout{
				ItemStyle:     string(style.ItemCompact),
				CategoryStyle: string(style.CategoryModern),
				Nav:           string(style.NavScroll),
			},
			Decoration: Decoration{Type: string(style.DecorationNone)},
			Features:   Features{ShowPhotos: false, ShowDecorations: false},
		},
	}
}

// PresetByName returns a preset by name, or the default descriptor when
// no preset matches.
func PresetByName(name string) Descriptor {
	for _, p := range Presets() {
		if p.Name == name {
			return p
		}
	}
	return Default()
}
