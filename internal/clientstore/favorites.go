// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package clientstore

import (
	"sort"
	"strconv"
	"strings"
)

// Favorites wraps a Store with typed access to a menu's favorite item
// set. The set is stored as a comma-separated list of item IDs.
type Favorites struct {
	store Store
	slug  string
}

// NewFavorites creates a favorites view over store for one menu.
func NewFavorites(store Store, slug string) *Favorites {
	return &Favorites{store: store, slug: slug}
}

// IDs returns the favorited item IDs. Malformed entries are skipped.
func (f *Favorites) IDs() []int64 {
	raw := f.store.Get(FavoritesKey(f.slug))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// Has reports whether itemID is currently favorited.
func (f *Favorites) Has(itemID int64) bool {
	for _, id := range f.IDs() {
		if id == itemID {
			return true
		}
	}
	return false
}

// Toggle flips the favorite state of itemID and returns the new state.
// Toggling twice restores the original set.
func (f *Favorites) Toggle(itemID int64) bool {
	ids := f.IDs()
	out := make([]int64, 0, len(ids)+1)
	found := false
	for _, id := range ids {
		if id == itemID {
			found = true
			continue
		}
		out = append(out, id)
	}
	if !found {
		out = append(out, itemID)
	}
	f.save(out)
	return !found
}

func (f *Favorites) save(ids []int64) {
	if len(ids) == 0 {
		f.store.Delete(FavoritesKey(f.slug))
		return
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	f.store.Set(FavoritesKey(f.slug), strings.Join(parts, ","))
}

// Count returns the number of favorited items.
func (f *Favorites) Count() int {
	return len(f.IDs())
}
