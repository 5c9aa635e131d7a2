package store_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/sufra-dev/sufra/internal/model"
	"github.com/sufra-dev/sufra/internal/store"
	"github.com/sufra-dev/sufra/internal/testutil"
)

// buildShuffledMenu inserts a restaurant and menu whose categories, items,
// and variants are created in an order unrelated to their positions.
func buildShuffledMenu(t *testing.T, q *store.Queries) int64 {
	t.Helper()
	ctx := context.Background()

	restID, err := q.CreateRestaurant(ctx, store.CreateRestaurantParams{
		Slug:         "ordering-test",
		NameAr:       "اختبار",
		NameEn:       "Ordering Test",
		Email:        "order@example.com",
		PasswordHash: "x",
		Plan:         "free",
		QRCodeID:     "qr-ordering-test",
		ThemeJSON:    "{}",
	})
	if err != nil {
		t.Fatalf("CreateRestaurant: %v", err)
	}

	menuID, err := q.CreateMenu(ctx, store.CreateMenuParams{
		RestaurantID: restID,
		Slug:         "ordering-test",
		NameAr:       "قائمة",
		NameEn:       "Menu",
		Currency:     "SAR",
	})
	if err != nil {
		t.Fatalf("CreateMenu: %v", err)
	}

	// Categories inserted last-position-first
	catB, err := q.CreateCategory(ctx, store.CreateCategoryParams{
		MenuID: menuID, NameAr: "ب", NameEn: "Second", Position: 2,
	})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	catA, err := q.CreateCategory(ctx, store.CreateCategoryParams{
		MenuID: menuID, NameAr: "أ", NameEn: "First", Position: 1,
	})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	// Items inserted out of position order within the first category
	for _, it := range []struct {
		name string
		pos  int
	}{
		{"Third Item", 3},
		{"First Item", 1},
		{"Second Item", 2},
	} {
		if _, err := q.CreateItem(ctx, store.CreateItemParams{
			CategoryID:   catA,
			NameAr:       it.name,
			NameEn:       it.name,
			Price:        10,
			Availability: model.AvailabilityAvailable,
			Position:     it.pos,
		}); err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
	}

	itemID, err := q.CreateItem(ctx, store.CreateItemParams{
		CategoryID:   catB,
		NameAr:       "وحيد",
		NameEn:       "Lonely",
		Price:        30,
		Availability: model.AvailabilityAvailable,
		Position:     1,
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	// Variants inserted reversed
	for _, v := range []struct {
		name  string
		delta float64
		pos   int
	}{
		{"Large", 8, 2},
		{"Small", -4, 1},
	} {
		if _, err := q.CreateVariant(ctx, store.CreateVariantParams{
			ItemID: itemID, NameAr: v.name, NameEn: v.name, PriceDelta: v.delta, Position: v.pos,
		}); err != nil {
			t.Fatalf("CreateVariant: %v", err)
		}
	}

	return menuID
}

func TestGetMenuGraph_Ordering(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)

	menuID := buildShuffledMenu(t, q)
	graph, err := q.GetMenuGraph(context.Background(), menuID)
	if err != nil {
		t.Fatalf("GetMenuGraph: %v", err)
	}

	if len(graph.Categories) != 2 {
		t.Fatalf("got %d categories", len(graph.Categories))
	}
	if graph.Categories[0].Category.NameEn != "First" || graph.Categories[1].Category.NameEn != "Second" {
		t.Errorf("categories out of order: %q, %q",
			graph.Categories[0].Category.NameEn, graph.Categories[1].Category.NameEn)
	}

	items := graph.Categories[0].Items
	if len(items) != 3 {
		t.Fatalf("got %d items in first category", len(items))
	}
	for i, want := range []string{"First Item", "Second Item", "Third Item"} {
		if items[i].Item.NameEn != want {
			t.Errorf("item %d = %q, want %q", i, items[i].Item.NameEn, want)
		}
	}

	variants := graph.Categories[1].Items[0].Variants
	if len(variants) != 2 {
		t.Fatalf("got %d variants", len(variants))
	}
	if variants[0].NameEn != "Small" || variants[1].NameEn != "Large" {
		t.Errorf("variants out of order: %q, %q", variants[0].NameEn, variants[1].NameEn)
	}
	if variants[0].PriceDelta != -4 {
		t.Errorf("small delta = %v, want -4", variants[0].PriceDelta)
	}
}

func TestGetMenuGraph_UnknownMenu(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	_, err := store.New(db).GetMenuGraph(context.Background(), 9999)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestUpdateRestaurantTheme(t *testing.T) {
	db, cleanup := testutil.SeededDB(t)
	defer cleanup()
	q := store.New(db)
	ctx := context.Background()

	before, err := q.GetRestaurantBySlug(ctx, "bayt-al-sufra")
	if err != nil {
		t.Fatalf("GetRestaurantBySlug: %v", err)
	}

	updated := `{"name":"Roundtrip"}`
	if err := q.UpdateRestaurantTheme(ctx, before.ID, updated); err != nil {
		t.Fatalf("UpdateRestaurantTheme: %v", err)
	}

	after, err := q.GetRestaurantBySlug(ctx, "bayt-al-sufra")
	if err != nil {
		t.Fatalf("GetRestaurantBySlug: %v", err)
	}
	if after.ThemeJSON != updated {
		t.Errorf("theme_json = %q, want %q", after.ThemeJSON, updated)
	}
}

func TestGetRestaurantByQRCodeID(t *testing.T) {
	db, cleanup := testutil.SeededDB(t)
	defer cleanup()
	q := store.New(db)
	ctx := context.Background()

	bySlug, err := q.GetRestaurantBySlug(ctx, "bayt-al-sufra")
	if err != nil {
		t.Fatalf("GetRestaurantBySlug: %v", err)
	}

	byQR, err := q.GetRestaurantByQRCodeID(ctx, bySlug.QRCodeID)
	if err != nil {
		t.Fatalf("GetRestaurantByQRCodeID: %v", err)
	}
	if byQR.ID != bySlug.ID {
		t.Errorf("qr lookup returned restaurant %d, want %d", byQR.ID, bySlug.ID)
	}

	if _, err := q.GetRestaurantByQRCodeID(ctx, "no-such-qr"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("unknown qr err = %v, want sql.ErrNoRows", err)
	}
}

func TestGetMenuBySlug_Unknown(t *testing.T) {
	db, cleanup := testutil.SeededDB(t)
	defer cleanup()

	_, err := store.New(db).GetMenuBySlug(context.Background(), "no-such-menu")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}
