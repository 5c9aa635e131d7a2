// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package theme defines the declarative theme descriptor driving menu
// rendering: palette, typography, layout archetype, decoration motif,
// and feature flags. Descriptors read from storage may be partial or
// absent; Normalize completes them with full defaults before any
// renderer runs.
package theme

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/sufra-dev/sufra/internal/style"
)

// Semantic color roles in a palette.
const (
	ColorPrimary    = "primary"
	ColorSecondary  = "secondary"
	ColorAccent     = "accent"
	ColorBackground = "background"
	ColorSurface    = "surface"
	ColorText       = "text"
	ColorTextMuted  = "textMuted"
	ColorBadge      = "badge"
	ColorPrice      = "price"
	ColorBorder     = "border"
)

// colorRoles lists every role a complete palette carries.
var colorRoles = []string{
	ColorPrimary, ColorSecondary, ColorAccent, ColorBackground, ColorSurface,
	ColorText, ColorTextMuted, ColorBadge, ColorPrice, ColorBorder,
}

// ColorRoles returns the palette roles in their canonical order.
func ColorRoles() []string {
	roles := make([]string, len(colorRoles))
	copy(roles, colorRoles)
	return roles
}

// Typography holds the theme's font identifiers.
type Typography struct {
	HeadingFont string `json:"headingFont" validate:"required"`
	BodyFont    string `json:"bodyFont" validate:"required"`
}

// Layout holds the item and category archetypes and the navigation mode.
type Layout struct {
	ItemStyle     string `json:"itemStyle" validate:"omitempty,oneof=list cards grid compact overlay magazine"`
	CategoryStyle string `json:"categoryStyle" validate:"omitempty,oneof=simple elegant modern accent glow wave"`
	Nav           string `json:"nav,omitempty" validate:"omitempty,oneof=scroll tabs"`
}

// Decoration holds the background/divider motif and its color.
type Decoration struct {
	Type  string `json:"type" validate:"omitempty,oneof=none gold-dividers geometric floral stars waves"`
	Color string `json:"color"`
}

// Features holds the theme's boolean feature flags.
type Features struct {
	ShowPhotos      bool `json:"showPhotos"`
	ShowDecorations bool `json:"showDecorations"`
	CustomFont      bool `json:"customFont"`
}

// Descriptor is the full theme descriptor. It is owned by the
// restaurant, mutated only through the editor, and read-only to the
// public renderer.
type Descriptor struct {
	Name       string            `json:"name"`
	Colors     map[string]string `json:"colors"`
	Typography Typography        `json:"typography"`
	Layout     Layout            `json:"layout"`
	Decoration Decoration        `json:"decoration"`
	Features   Features          `json:"features"`
}

// Default returns the complete built-in default descriptor.
func Default() Descriptor {
	return Descriptor{
		Name: "Classic",
		Colors: map[string]string{
			ColorPrimary:    "#7c2d12",
			ColorSecondary:  "#9a3412",
			ColorAccent:     "#d97706",
			ColorBackground: "#fffbeb",
			ColorSurface:    "#ffffff",
			ColorText:       "#1c1917",
			ColorTextMuted:  "#78716c",
			ColorBadge:      "#b91c1c",
			ColorPrice:      "#7c2d12",
			ColorBorder:     "#e7e5e4",
		},
		Typography: Typography{
			HeadingFont: "Cairo",
			BodyFont:    "Tajawal",
		},
		Layout: Layout{
			ItemStyle:     string(style.ItemList),
			CategoryStyle: string(style.CategorySimple),
			Nav:           string(style.NavScroll),
		},
		Decoration: Decoration{
			Type: string(style.DecorationNone),
		},
		Features: Features{
			ShowPhotos:      true,
			ShowDecorations: true,
		},
	}
}

// Normalize completes a possibly partial descriptor with defaults:
// missing color roles, fonts, layout values, and decoration types are
// filled in; unknown enum values collapse to their defaults.
func Normalize(d Descriptor) Descriptor {
	def := Default()

	if d.Name == "" {
		d.Name = def.Name
	}

	if d.Colors == nil {
		d.Colors = make(map[string]string, len(colorRoles))
	}
	for _, role := range colorRoles {
		if d.Colors[role] == "" {
			d.Colors[role] = def.Colors[role]
		}
	}

	if d.Typography.HeadingFont == "" {
		d.Typography.HeadingFont = def.Typography.HeadingFont
	}
	if d.Typography.BodyFont == "" {
		d.Typography.BodyFont = def.Typography.BodyFont
	}

	d.Layout.ItemStyle = string(style.ParseItemStyle(d.Layout.ItemStyle))
	d.Layout.CategoryStyle = string(style.ParseCategoryStyle(d.Layout.CategoryStyle))
	d.Layout.Nav = string(style.ParseNavMode(d.Layout.Nav))
	d.Decoration.Type = string(style.ParseDecorationType(d.Decoration.Type))

	return d
}

// Parse decodes a stored descriptor JSON and normalizes it.
// Empty or malformed input resolves to the full default descriptor.
func Parse(raw string) Descriptor {
	if raw == "" {
		return Default()
	}
	var d Descriptor
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return Default()
	}
	return Normalize(d)
}

// Marshal serializes a descriptor for storage.
func Marshal(d Descriptor) (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("marshaling theme descriptor: %w", err)
	}
	return string(data), nil
}

// ItemStyle returns the typed item style of a normalized descriptor.
func (d Descriptor) ItemStyle() style.ItemStyle {
	return style.ParseItemStyle(d.Layout.ItemStyle)
}

// CategoryStyle returns the typed category style.
func (d Descriptor) CategoryStyle() style.CategoryStyle {
	return style.ParseCategoryStyle(d.Layout.CategoryStyle)
}

// DecorationType returns the typed decoration motif.
func (d Descriptor) DecorationType() style.DecorationType {
	return style.ParseDecorationType(d.Decoration.Type)
}

// NavMode returns the typed navigation mode.
func (d Descriptor) NavMode() style.NavMode {
	return style.ParseNavMode(d.Layout.Nav)
}

// Color returns a palette color by role, falling back to the default
// palette when the role is missing.
func (d Descriptor) Color(role string) string {
	if c, ok := d.Colors[role]; ok && c != "" {
		return c
	}
	return Default().Colors[role]
}

// DecorationColor returns the motif color, falling back to the palette's
// accent and then primary color when the theme does not set one.
func (d Descriptor) DecorationColor() string {
	if d.Decoration.Color != "" {
		return d.Decoration.Color
	}
	if c := d.Colors[ColorAccent]; c != "" {
		return c
	}
	return d.Color(ColorPrimary)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a descriptor submitted by the editor. Rendering never
// calls this; unknown values degrade to defaults instead. Saving does,
// so typos surface to the owner rather than silently collapsing.
func Validate(d Descriptor) error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("validating theme descriptor: %w", err)
	}
	return nil
}
