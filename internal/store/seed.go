// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sufra-dev/sufra/internal/auth"
	"github.com/sufra-dev/sufra/internal/model"
	"github.com/sufra-dev/sufra/internal/util"
)

// Default owner credentials for the seeded demo restaurant.
const (
	DefaultOwnerEmail    = "owner@example.com"
	DefaultOwnerPassword = "changeme"
)

// Seed creates a demo restaurant with a bilingual menu if none exists yet.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	_, err := queries.GetRestaurantByEmail(ctx, DefaultOwnerEmail)
	if err == nil {
		slog.Info("demo restaurant already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for demo restaurant: %w", err)
	}

	passwordHash, err := auth.HashPassword(DefaultOwnerPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	restaurantID, err := queries.CreateRestaurant(ctx, CreateRestaurantParams{
		Slug:         "bayt-al-sufra",
		NameAr:       "بيت السفرة",
		NameEn:       "Bayt Al Sufra",
		AboutMD:      util.NullStringFromValue("Family recipes from the Levant, served since **1987**."),
		Email:        DefaultOwnerEmail,
		PasswordHash: passwordHash,
		Plan:         model.PlanFree,
		QRCodeID:     uuid.NewString(),
	})
	if err != nil {
		return fmt.Errorf("creating demo restaurant: %w", err)
	}

	menuID, err := queries.CreateMenu(ctx, CreateMenuParams{
		RestaurantID: restaurantID,
		Slug:         "bayt-al-sufra",
		NameAr:       "قائمة الطعام",
		NameEn:       "Main Menu",
		Currency:     "SAR",
	})
	if err != nil {
		return fmt.Errorf("creating demo menu: %w", err)
	}

	if err := seedCategories(ctx, queries, menuID); err != nil {
		return err
	}

	slog.Info("seeded demo restaurant", "email", DefaultOwnerEmail, "menu_id", menuID)
	return nil
}

func seedCategories(ctx context.Context, queries *Queries, menuID int64) error {
	coldID, err := queries.CreateCategory(ctx, CreateCategoryParams{
		MenuID:        menuID,
		NameAr:        "المقبلات الباردة",
		NameEn:        "Cold Mezze",
		DescriptionAr: util.NullStringFromValue("تقدم مع خبز طازج"),
		DescriptionEn: util.NullStringFromValue("Served with fresh bread"),
		Position:      0,
	})
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	grillID, err := queries.CreateCategory(ctx, CreateCategoryParams{
		MenuID:   menuID,
		NameAr:   "المشاوي",
		NameEn:   "From the Grill",
		Position: 1,
	})
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	hummusID, err := queries.CreateItem(ctx, CreateItemParams{
		CategoryID:    coldID,
		NameAr:        "حمص",
		NameEn:        "Hummus",
		DescriptionAr: util.NullStringFromValue("حمص بالطحينة وزيت الزيتون"),
		DescriptionEn: util.NullStringFromValue("Chickpeas with tahini and olive oil"),
		Price:         18,
		Allergens:     "sesame",
		DietaryTags:   "vegan,gluten-free",
		Availability:  model.AvailabilityAvailable,
		Position:      0,
	})
	if err != nil {
		return fmt.Errorf("creating item: %w", err)
	}

	if _, err := queries.CreateVariant(ctx, CreateVariantParams{
		ItemID: hummusID, NameAr: "كبير", NameEn: "Large", PriceDelta: 7, Position: 0,
	}); err != nil {
		return fmt.Errorf("creating variant: %w", err)
	}

	if _, err := queries.CreateItem(ctx, CreateItemParams{
		CategoryID:   coldID,
		NameAr:       "متبل باذنجان",
		NameEn:       "Moutabal",
		Price:        20,
		Allergens:    "sesame",
		DietaryTags:  "vegetarian",
		Availability: model.AvailabilityAvailable,
		Position:     1,
	}); err != nil {
		return fmt.Errorf("creating item: %w", err)
	}

	if _, err := queries.CreateItem(ctx, CreateItemParams{
		CategoryID:    grillID,
		NameAr:        "مشاوي مشكلة",
		NameEn:        "Mixed Grill",
		DescriptionEn: util.NullStringFromValue("Lamb kofta, shish tawook, and kebab"),
		Price:         78,
		IsSpecial:     true,
		Availability:  model.AvailabilityAvailable,
		TimeSlot:      model.TimeSlotDinner,
		Position:      0,
	}); err != nil {
		return fmt.Errorf("creating item: %w", err)
	}

	return nil
}
