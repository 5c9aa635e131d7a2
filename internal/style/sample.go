// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package style

import (
	"github.com/sufra-dev/sufra/internal/model"
	"github.com/sufra-dev/sufra/internal/util"
)

// SampleMenu returns the fixed synthetic 3-item menu rendered by the
// editor live preview and the theme gallery thumbnails. It exercises the
// interesting states: a special item with a variant, a plain item, and
// an unavailable item.
func SampleMenu() model.MenuGraph {
	return model.MenuGraph{
		Menu: model.Menu{
			ID:       -1,
			Slug:     "sample",
			NameAr:   "قائمة تجريبية",
			NameEn:   "Sample Menu",
			Currency: "SAR",
		},
		Categories: []model.CategoryWithItems{
			{
				Category: model.Category{
					ID:            -1,
					NameAr:        "الأطباق الرئيسية",
					NameEn:        "Main Dishes",
					DescriptionEn: util.NullStringFromValue("A taste of the house"),
				},
				Items: []model.ItemWithVariants{
					{
						Item: model.Item{
							ID:            -1,
							NameAr:        "كبسة لحم",
							NameEn:        "Lamb Kabsa",
							DescriptionEn: util.NullStringFromValue("Slow-cooked lamb over spiced rice"),
							Price:         52,
							IsSpecial:     true,
							DietaryTags:   "halal",
							Availability:  model.AvailabilityAvailable,
						},
						Variants: []model.Variant{
							{ID: -1, NameAr: "عائلي", NameEn: "Family", PriceDelta: 30},
						},
					},
					{
						Item: model.Item{
							ID:           -2,
							NameAr:       "سلطة فتوش",
							NameEn:       "Fattoush",
							Price:        16,
							DietaryTags:  "vegan",
							Allergens:    "gluten",
							Availability: model.AvailabilityAvailable,
						},
					},
					{
						Item: model.Item{
							ID:           -3,
							NameAr:       "مشروب الموسم",
							NameEn:       "Seasonal Drink",
							Price:        12,
							Availability: model.AvailabilityUnavailable,
						},
					},
				},
			},
		},
	}
}
