// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package style defines the closed sets of menu layout archetypes and the
// registry mapping each one onto a rendering strategy. The same registry
// drives the public page, the editor live preview, and the gallery
// thumbnails, so a theme can never look different between the three.
package style

// ItemStyle is one of the six item-card archetypes.
type ItemStyle string

// Item style values.
const (
	ItemList     ItemStyle = "list"
	ItemCards    ItemStyle = "cards"
	ItemGrid     ItemStyle = "grid"
	ItemCompact  ItemStyle = "compact"
	ItemOverlay  ItemStyle = "overlay"
	ItemMagazine ItemStyle = "magazine"
)

// CategoryStyle is one of the six category-heading archetypes.
type CategoryStyle string

// Category style values.
const (
	CategorySimple  CategoryStyle = "simple"
	CategoryElegant CategoryStyle = "elegant"
	CategoryModern  CategoryStyle = "modern"
	CategoryAccent  CategoryStyle = "accent"
	CategoryGlow    CategoryStyle = "glow"
	CategoryWave    CategoryStyle = "wave"
)

// DecorationType is one of the six background/divider motifs.
type DecorationType string

// Decoration type values.
const (
	DecorationNone      DecorationType = "none"
	DecorationGoldLines DecorationType = "gold-dividers"
	DecorationGeometric DecorationType = "geometric"
	DecorationFloral    DecorationType = "floral"
	DecorationStars     DecorationType = "stars"
	DecorationWaves     DecorationType = "waves"
)

// NavMode is the category navigation archetype: one long scrollable
// page, or a tab bar with one category shown at a time.
type NavMode string

// Nav mode values.
const (
	NavScroll NavMode = "scroll"
	NavTabs   NavMode = "tabs"
)

// AllNavModes lists every nav mode in display order.
var AllNavModes = []NavMode{NavScroll, NavTabs}

// AllItemStyles lists every item style in display order.
var AllItemStyles = []ItemStyle{ItemList, ItemCards, ItemGrid, ItemCompact, ItemOverlay, ItemMagazine}

// AllCategoryStyles lists every category style in display order.
var AllCategoryStyles = []CategoryStyle{CategorySimple, CategoryElegant, CategoryModern, CategoryAccent, CategoryGlow, CategoryWave}

// AllDecorationTypes lists every decoration type in display order.
var AllDecorationTypes = []DecorationType{DecorationNone, DecorationGoldLines, DecorationGeometric, DecorationFloral, DecorationStars, DecorationWaves}

// ParseItemStyle maps a raw string onto an ItemStyle.
// Unknown or empty input resolves to the list default, never an error.
func ParseItemStyle(s string) ItemStyle {
	for _, v := range AllItemStyles {
		if string(v) == s {
			return v
		}
	}
	return ItemList
}

// ParseCategoryStyle maps a raw string onto a CategoryStyle, defaulting to simple.
func ParseCategoryStyle(s string) CategoryStyle {
	for _, v := range AllCategoryStyles {
		if string(v) == s {
			return v
		}
	}
	return CategorySimple
}

// ParseDecorationType maps a raw string onto a DecorationType, defaulting to none.
func ParseDecorationType(s string) DecorationType {
	for _, v := range AllDecorationTypes {
		if string(v) == s {
			return v
		}
	}
	return DecorationNone
}

// ParseNavMode maps a raw string onto a NavMode, defaulting to scroll.
func ParseNavMode(s string) NavMode {
	for _, v := range AllNavModes {
		if string(v) == s {
			return v
		}
	}
	return NavScroll
}
