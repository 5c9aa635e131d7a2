// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package menurender composes the style strategies, the content
// resolver and the theme descriptor into renderable menu pages. It is
// the single rendering path behind the public page, the editor live
// preview and the gallery thumbnails.
package menurender

import (
	"strings"

	"github.com/sufra-dev/sufra/internal/model"
	"github.com/sufra-dev/sufra/internal/util"
)

// Filter is the conjunctive item filter: favorites, free-text search
// and a single dietary tag. A zero Filter passes every item.
type Filter struct {
	Query         string
	DietaryTag    string
	FavoritesOnly bool
	// Favorites is the diner's favorite item set, consulted only when
	// FavoritesOnly is set.
	Favorites map[int64]bool
}

// Active reports whether any constraint is set. Category visibility
// depends on this: with no active constraint empty categories still
// render, with one they are hidden.
func (f Filter) Active() bool {
	return f.FavoritesOnly || strings.TrimSpace(f.Query) != "" || f.DietaryTag != ""
}

// Matches applies all constraints conjunctively to one item.
func (f Filter) Matches(item model.Item) bool {
	if f.FavoritesOnly && !f.Favorites[item.ID] {
		return false
	}
	if q := strings.TrimSpace(f.Query); q != "" && !matchesQuery(item, q) {
		return false
	}
	if f.DietaryTag != "" && !item.HasDietaryTag(f.DietaryTag) {
		return false
	}
	return true
}

// matchesQuery does a case-insensitive substring match against both
// languages' name and description.
func matchesQuery(item model.Item, query string) bool {
	q := strings.ToLower(query)
	fields := []string{
		item.NameAr,
		item.NameEn,
		util.StringOrEmpty(item.DescriptionAr),
		util.StringOrEmpty(item.DescriptionEn),
	}
	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Apply filters every category's items. The returned slice preserves
// category order; categories left without items are dropped when the
// filter is active and kept (empty) otherwise.
func (f Filter) Apply(categories []model.CategoryWithItems) []model.CategoryWithItems {
	active := f.Active()
	out := make([]model.CategoryWithItems, 0, len(categories))
	for _, cat := range categories {
		kept := make([]model.ItemWithVariants, 0, len(cat.Items))
		for _, it := range cat.Items {
			if f.Matches(it.Item) {
				kept = append(kept, it)
			}
		}
		if len(kept) == 0 && active {
			continue
		}
		out = append(out, model.CategoryWithItems{Category: cat.Category, Items: kept})
	}
	return out
}

// FavoriteSet builds the lookup map the filter consumes.
func FavoriteSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
