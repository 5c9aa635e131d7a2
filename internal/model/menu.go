// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"strings"
	"time"
)

// Item availability states.
const (
	AvailabilityAvailable   = "AVAILABLE"
	AvailabilityUnavailable = "UNAVAILABLE"
)

// Time-slot tags an item can be limited to.
const (
	TimeSlotAll       = ""
	TimeSlotBreakfast = "breakfast"
	TimeSlotLunch     = "lunch"
	TimeSlotDinner    = "dinner"
)

// Menu represents a restaurant's published menu.
type Menu struct {
	ID           int64
	RestaurantID int64
	Slug         string
	NameAr       string
	NameEn       string
	Currency     string // ISO 4217, e.g. "SAR"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Category is an ordered group of items within a menu.
type Category struct {
	ID            int64
	MenuID        int64
	NameAr        string
	NameEn        string
	DescriptionAr sql.NullString
	DescriptionEn sql.NullString
	Position      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Item is a single dish or drink within a category.
type Item struct {
	ID            int64
	CategoryID    int64
	NameAr        string
	NameEn        string
	DescriptionAr sql.NullString
	DescriptionEn sql.NullString
	Price         float64 // base price in menu currency
	PhotoURL      sql.NullString
	Allergens     string // comma-separated allergen codes
	DietaryTags   string // comma-separated tags (vegan, vegetarian, gluten-free, ...)
	Availability  string // AVAILABLE, UNAVAILABLE
	IsSpecial     bool
	TimeSlot      string // empty = all day
	Position      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Variant is a size/option of an item whose price is a signed delta
// relative to the parent item's base price, never an absolute price.
type Variant struct {
	ID         int64
	ItemID     int64
	NameAr     string
	NameEn     string
	PriceDelta float64
	Position   int
}

// MenuGraph is the fully loaded menu hierarchy used by the renderer.
// Categories, items, and variants keep their explicit stored ordering.
type MenuGraph struct {
	Menu       Menu
	Categories []CategoryWithItems
}

// CategoryWithItems pairs a category with its ordered items.
type CategoryWithItems struct {
	Category Category
	Items    []ItemWithVariants
}

// ItemWithVariants pairs an item with its ordered variants.
type ItemWithVariants struct {
	Item     Item
	Variants []Variant
}

// IsUnavailable reports whether the item is marked unavailable.
func (i Item) IsUnavailable() bool {
	return i.Availability == AvailabilityUnavailable
}

// AllergenList splits the stored allergen codes into a slice.
func (i Item) AllergenList() []string {
	return splitTagList(i.Allergens)
}

// DietaryTagList splits the stored dietary tags into a slice.
func (i Item) DietaryTagList() []string {
	return splitTagList(i.DietaryTags)
}

// HasDietaryTag checks the item's dietary-tag set for a tag.
func (i Item) HasDietaryTag(tag string) bool {
	for _, t := range i.DietaryTagList() {
		if t == tag {
			return true
		}
	}
	return false
}

func splitTagList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
