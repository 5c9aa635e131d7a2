// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package style

// Fidelity selects how much detail a strategy renders. The full public
// page, the editor live preview, and the gallery thumbnail all consume
// the same strategy at different fidelity levels.
type Fidelity int

// Fidelity levels, highest first.
const (
	FidelityFull Fidelity = iota
	FidelityPreview
	FidelityThumbnail
)

// magazineFeatureEvery is the frozen positional rule of the magazine
// layout: item at position i is featured iff i is a multiple of this.
const magazineFeatureEvery = 3

// ItemStrategy describes how one item style lays out its cards.
type ItemStrategy struct {
	Style    ItemStyle
	Template string // template fragment name under web/templates/menu/items
	Columns  int    // grid columns at full fidelity (1 = stacked)
	// PhotoProminent marks styles whose card leads with the photo.
	PhotoProminent bool
	// Alternating marks styles with a position-dependent template shape.
	Alternating bool
}

// Featured reports whether the item at the given position renders with
// the featured (larger, photo-prominent) shape. Only alternating styles
// feature anything; for magazine that is every third position.
func (s ItemStrategy) Featured(position int) bool {
	return s.Alternating && position%magazineFeatureEvery == 0
}

// CategoryStrategy describes how one category style renders its heading.
type CategoryStrategy struct {
	Style    CategoryStyle
	Template string // fragment name under web/templates/menu/headers
	// Ornament names the heading's decoration element, "" for plain.
	Ornament string
}

// DecorationStrategy describes a background or divider motif.
type DecorationStrategy struct {
	Type     DecorationType
	Template string // fragment name under web/templates/menu/decorations, "" for none
	// Divider motifs render between categories rather than behind the page.
	Divider bool
}

// HasOverlay reports whether the motif renders anything at all.
func (s DecorationStrategy) HasOverlay() bool {
	return s.Template != ""
}

var itemStrategies = map[ItemStyle]ItemStrategy{
	ItemList:     {Style: ItemList, Template: "item_list", Columns: 1},
	ItemCards:    {Style: ItemCards, Template: "item_cards", Columns: 2, PhotoProminent: true},
	ItemGrid:     {Style: ItemGrid, Template: "item_grid", Columns: 3, PhotoProminent: true},
	ItemCompact:  {Style: ItemCompact, Template: "item_compact", Columns: 1},
	ItemOverlay:  {Style: ItemOverlay, Template: "item_overlay", Columns: 2, PhotoProminent: true},
	ItemMagazine: {Style: ItemMagazine, Template: "item_magazine", Columns: 1, PhotoProminent: true, Alternating: true},
}

var categoryStrategies = map[CategoryStyle]CategoryStrategy{
	CategorySimple:  {Style: CategorySimple, Template: "header_simple"},
	CategoryElegant: {Style: CategoryElegant, Template: "header_elegant", Ornament: "divider"},
	CategoryModern:  {Style: CategoryModern, Template: "header_modern", Ornament: "accent-bar"},
	CategoryAccent:  {Style: CategoryAccent, Template: "header_accent", Ornament: "pill"},
	CategoryGlow:    {Style: CategoryGlow, Template: "header_glow", Ornament: "glow"},
	CategoryWave:    {Style: CategoryWave, Template: "header_wave", Ornament: "wave"},
}

var decorationStrategies = map[DecorationType]DecorationStrategy{
	DecorationNone:      {Type: DecorationNone},
	DecorationGoldLines: {Type: DecorationGoldLines, Template: "deco_gold_dividers", Divider: true},
	DecorationGeometric: {Type: DecorationGeometric, Template: "deco_geometric"},
	DecorationFloral:    {Type: DecorationFloral, Template: "deco_floral"},
	DecorationStars:     {Type: DecorationStars, Template: "deco_stars"},
	DecorationWaves:     {Type: DecorationWaves, Template: "deco_waves", Divider: true},
}

// ItemStrategyFor returns the strategy for an item style.
// Unknown values dispatch to the list default.
func ItemStrategyFor(s ItemStyle) ItemStrategy {
	if st, ok := itemStrategies[s]; ok {
		return st
	}
	return itemStrategies[ItemList]
}

// CategoryStrategyFor returns the strategy for a category style,
// defaulting to simple.
func CategoryStrategyFor(s CategoryStyle) CategoryStrategy {
	if st, ok := categoryStrategies[s]; ok {
		return st
	}
	return categoryStrategies[CategorySimple]
}

// DecorationStrategyFor returns the strategy for a decoration type,
// defaulting to none (no overlay).
func DecorationStrategyFor(t DecorationType) DecorationStrategy {
	if st, ok := decorationStrategies[t]; ok {
		return st
	}
	return decorationStrategies[DecorationNone]
}
