// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/sufra-dev/sufra/internal/model"
	"github.com/sufra-dev/sufra/internal/store"
)

// MenuCache provides cached access to fully loaded menu graphs, keyed
// by menu slug. The editor invalidates a slug on every save so the
// public page never serves a stale menu. Editor previews and gallery
// thumbnails bypass this cache entirely.
type MenuCache struct {
	graphs  *TypedCache[model.MenuGraph]
	queries *store.Queries
}

// NewMenuCache creates a menu cache on top of the shared cache backend.
func NewMenuCache(backend Cacher, queries *store.Queries, ttl time.Duration) *MenuCache {
	return &MenuCache{
		graphs:  NewTypedCache[model.MenuGraph](backend, ttl),
		queries: queries,
	}
}

func menuGraphKey(slug string) string {
	return fmt.Sprintf("menu-graph:%s", slug)
}

// Get loads the menu graph for a slug, from cache when possible.
func (c *MenuCache) Get(ctx context.Context, slug string) (*model.MenuGraph, error) {
	return c.graphs.GetOrSet(ctx, menuGraphKey(slug), func() (*model.MenuGraph, error) {
		menu, err := c.queries.GetMenuBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		graph, err := c.queries.GetMenuGraph(ctx, menu.ID)
		if err != nil {
			return nil, err
		}
		return &graph, nil
	})
}

// Invalidate drops the cached graph for a slug.
func (c *MenuCache) Invalidate(ctx context.Context, slug string) {
	_ = c.graphs.Delete(ctx, menuGraphKey(slug))
}
