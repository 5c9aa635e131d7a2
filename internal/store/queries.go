// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"

	"github.com/sufra-dev/sufra/internal/model"
)

// DBTX is the subset of *sql.DB / *sql.Tx used by Queries.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries provides typed access to the database.
type Queries struct {
	db DBTX
}

// New creates a Queries instance backed by the given database or transaction.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns Queries bound to the given transaction.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

const getRestaurantBySlug = `
SELECT id, slug, name_ar, name_en, about_md, email, password_hash, plan, qr_code_id, theme_json, created_at, updated_at
FROM restaurants WHERE slug = ?
`

// GetRestaurantBySlug fetches a restaurant by its public slug.
func (q *Queries) GetRestaurantBySlug(ctx context.Context, slug string) (model.Restaurant, error) {
	return q.scanRestaurant(q.db.QueryRowContext(ctx, getRestaurantBySlug, slug))
}

const getRestaurantByEmail = `
SELECT id, slug, name_ar, name_en, about_md, email, password_hash, plan, qr_code_id, theme_json, created_at, updated_at
FROM restaurants WHERE email = ?
`

// GetRestaurantByEmail fetches a restaurant by owner email.
func (q *Queries) GetRestaurantByEmail(ctx context.Context, email string) (model.Restaurant, error) {
	return q.scanRestaurant(q.db.QueryRowContext(ctx, getRestaurantByEmail, email))
}

const getRestaurantByID = `
SELECT id, slug, name_ar, name_en, about_md, email, password_hash, plan, qr_code_id, theme_json, created_at, updated_at
FROM restaurants WHERE id = ?
`

// GetRestaurantByID fetches a restaurant by primary key.
func (q *Queries) GetRestaurantByID(ctx context.Context, id int64) (model.Restaurant, error) {
	return q.scanRestaurant(q.db.QueryRowContext(ctx, getRestaurantByID, id))
}

const getRestaurantByQRCodeID = `
SELECT id, slug, name_ar, name_en, about_md, email, password_hash, plan, qr_code_id, theme_json, created_at, updated_at
FROM restaurants WHERE qr_code_id = ?
`

// GetRestaurantByQRCodeID fetches a restaurant by its QR code identifier.
func (q *Queries) GetRestaurantByQRCodeID(ctx context.Context, qrCodeID string) (model.Restaurant, error) {
	return q.scanRestaurant(q.db.QueryRowContext(ctx, getRestaurantByQRCodeID, qrCodeID))
}

func (q *Queries) scanRestaurant(row *sql.Row) (model.Restaurant, error) {
	var r model.Restaurant
	err := row.Scan(&r.ID, &r.Slug, &r.NameAr, &r.NameEn, &r.AboutMD, &r.Email,
		&r.PasswordHash, &r.Plan, &r.QRCodeID, &r.ThemeJSON, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

// CreateRestaurantParams holds parameters for CreateRestaurant.
type CreateRestaurantParams struct {
	Slug         string
	NameAr       string
	NameEn       string
	AboutMD      sql.NullString
	Email        string
	PasswordHash string
	Plan         string
	QRCodeID     string
	ThemeJSON    string
}

const createRestaurant = `
INSERT INTO restaurants (slug, name_ar, name_en, about_md, email, password_hash, plan, qr_code_id, theme_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// CreateRestaurant inserts a restaurant and returns its new ID.
func (q *Queries) CreateRestaurant(ctx context.Context, arg CreateRestaurantParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, createRestaurant, arg.Slug, arg.NameAr, arg.NameEn,
		arg.AboutMD, arg.Email, arg.PasswordHash, arg.Plan, arg.QRCodeID, arg.ThemeJSON)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const updateRestaurantTheme = `
UPDATE restaurants SET theme_json = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`

// UpdateRestaurantTheme saves the serialized theme descriptor.
func (q *Queries) UpdateRestaurantTheme(ctx context.Context, id int64, themeJSON string) error {
	_, err := q.db.ExecContext(ctx, updateRestaurantTheme, themeJSON, id)
	return err
}

const getMenuBySlug = `
SELECT id, restaurant_id, slug, name_ar, name_en, currency, created_at, updated_at
FROM menus WHERE slug = ?
`

// GetMenuBySlug fetches a menu by its public slug.
func (q *Queries) GetMenuBySlug(ctx context.Context, slug string) (model.Menu, error) {
	var m model.Menu
	err := q.db.QueryRowContext(ctx, getMenuBySlug, slug).Scan(
		&m.ID, &m.RestaurantID, &m.Slug, &m.NameAr, &m.NameEn, &m.Currency, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

const getMenuByRestaurant = `
SELECT id, restaurant_id, slug, name_ar, name_en, currency, created_at, updated_at
FROM menus WHERE restaurant_id = ? LIMIT 1
`

// GetMenuByRestaurant fetches the restaurant's menu.
func (q *Queries) GetMenuByRestaurant(ctx context.Context, restaurantID int64) (model.Menu, error) {
	var m model.Menu
	err := q.db.QueryRowContext(ctx, getMenuByRestaurant, restaurantID).Scan(
		&m.ID, &m.RestaurantID, &m.Slug, &m.NameAr, &m.NameEn, &m.Currency, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// CreateMenuParams holds parameters for CreateMenu.
type CreateMenuParams struct {
	RestaurantID int64
	Slug         string
	NameAr       string
	NameEn       string
	Currency     string
}

const createMenu = `
INSERT INTO menus (restaurant_id, slug, name_ar, name_en, currency) VALUES (?, ?, ?, ?, ?)
`

// CreateMenu inserts a menu and returns its new ID.
func (q *Queries) CreateMenu(ctx context.Context, arg CreateMenuParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, createMenu, arg.RestaurantID, arg.Slug, arg.NameAr, arg.NameEn, arg.Currency)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const listCategoriesByMenu = `
SELECT id, menu_id, name_ar, name_en, description_ar, description_en, position, created_at, updated_at
FROM categories WHERE menu_id = ? ORDER BY position, id
`

// ListCategoriesByMenu returns the menu's categories in stored order.
func (q *Queries) ListCategoriesByMenu(ctx context.Context, menuID int64) ([]model.Category, error) {
	rows, err := q.db.QueryContext(ctx, listCategoriesByMenu, menuID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.MenuID, &c.NameAr, &c.NameEn, &c.DescriptionAr,
			&c.DescriptionEn, &c.Position, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

const listItemsByMenu = `
SELECT i.id, i.category_id, i.name_ar, i.name_en, i.description_ar, i.description_en,
       i.price, i.photo_url, i.allergens, i.dietary_tags, i.availability, i.is_special,
       i.time_slot, i.position, i.created_at, i.updated_at
FROM items i
JOIN categories c ON c.id = i.category_id
WHERE c.menu_id = ?
ORDER BY c.position, c.id, i.position, i.id
`

// ListItemsByMenu returns all items of a menu in category+item order.
func (q *Queries) ListItemsByMenu(ctx context.Context, menuID int64) ([]model.Item, error) {
	rows, err := q.db.QueryContext(ctx, listItemsByMenu, menuID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.CategoryID, &it.NameAr, &it.NameEn, &it.DescriptionAr,
			&it.DescriptionEn, &it.Price, &it.PhotoURL, &it.Allergens, &it.DietaryTags,
			&it.Availability, &it.IsSpecial, &it.TimeSlot, &it.Position, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

const getItem = `
SELECT id, category_id, name_ar, name_en, description_ar, description_en,
       price, photo_url, allergens, dietary_tags, availability, is_special,
       time_slot, position, created_at, updated_at
FROM items WHERE id = ?
`

// GetItem fetches a single item by primary key.
func (q *Queries) GetItem(ctx context.Context, id int64) (model.Item, error) {
	var it model.Item
	err := q.db.QueryRowContext(ctx, getItem, id).Scan(&it.ID, &it.CategoryID, &it.NameAr,
		&it.NameEn, &it.DescriptionAr, &it.DescriptionEn, &it.Price, &it.PhotoURL,
		&it.Allergens, &it.DietaryTags, &it.Availability, &it.IsSpecial, &it.TimeSlot,
		&it.Position, &it.CreatedAt, &it.UpdatedAt)
	return it, err
}

const listVariantsByMenu = `
SELECT v.id, v.item_id, v.name_ar, v.name_en, v.price_delta, v.position
FROM variants v
JOIN items i ON i.id = v.item_id
JOIN categories c ON c.id = i.category_id
WHERE c.menu_id = ?
ORDER BY v.item_id, v.position, v.id
`

// ListVariantsByMenu returns all variants of a menu grouped by item order.
func (q *Queries) ListVariantsByMenu(ctx context.Context, menuID int64) ([]model.Variant, error) {
	rows, err := q.db.QueryContext(ctx, listVariantsByMenu, menuID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Variant
	for rows.Next() {
		var v model.Variant
		if err := rows.Scan(&v.ID, &v.ItemID, &v.NameAr, &v.NameEn, &v.PriceDelta, &v.Position); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

const listVariantsByItem = `
SELECT id, item_id, name_ar, name_en, price_delta, position
FROM variants WHERE item_id = ? ORDER BY position, id
`

// ListVariantsByItem returns an item's variants in stored order.
func (q *Queries) ListVariantsByItem(ctx context.Context, itemID int64) ([]model.Variant, error) {
	rows, err := q.db.QueryContext(ctx, listVariantsByItem, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Variant
	for rows.Next() {
		var v model.Variant
		if err := rows.Scan(&v.ID, &v.ItemID, &v.NameAr, &v.NameEn, &v.PriceDelta, &v.Position); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// CreateCategoryParams holds parameters for CreateCategory.
type CreateCategoryParams struct {
	MenuID        int64
	NameAr        string
	NameEn        string
	DescriptionAr sql.NullString
	DescriptionEn sql.NullString
	Position      int
}

const createCategory = `
INSERT INTO categories (menu_id, name_ar, name_en, description_ar, description_en, position)
VALUES (?, ?, ?, ?, ?, ?)
`

// CreateCategory inserts a category and returns its new ID.
func (q *Queries) CreateCategory(ctx context.Context, arg CreateCategoryParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, createCategory, arg.MenuID, arg.NameAr, arg.NameEn,
		arg.DescriptionAr, arg.DescriptionEn, arg.Position)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// CreateItemParams holds parameters for CreateItem.
type CreateItemParams struct {
	CategoryID    int64
	NameAr        string
	NameEn        string
	DescriptionAr sql.NullString
	DescriptionEn sql.NullString
	Price         float64
	PhotoURL      sql.NullString
	Allergens     string
	DietaryTags   string
	Availability  string
	IsSpecial     bool
	TimeSlot      string
	Position      int
}

const createItem = `
INSERT INTO items (category_id, name_ar, name_en, description_ar, description_en, price,
                   photo_url, allergens, dietary_tags, availability, is_special, time_slot, position)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// CreateItem inserts an item and returns its new ID.
func (q *Queries) CreateItem(ctx context.Context, arg CreateItemParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, createItem, arg.CategoryID, arg.NameAr, arg.NameEn,
		arg.DescriptionAr, arg.DescriptionEn, arg.Price, arg.PhotoURL, arg.Allergens,
		arg.DietaryTags, arg.Availability, arg.IsSpecial, arg.TimeSlot, arg.Position)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// CreateVariantParams holds parameters for CreateVariant.
type CreateVariantParams struct {
	ItemID     int64
	NameAr     string
	NameEn     string
	PriceDelta float64
	Position   int
}

const createVariant = `
INSERT INTO variants (item_id, name_ar, name_en, price_delta, position) VALUES (?, ?, ?, ?, ?)
`

// CreateVariant inserts a variant and returns its new ID.
func (q *Queries) CreateVariant(ctx context.Context, arg CreateVariantParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, createVariant, arg.ItemID, arg.NameAr, arg.NameEn, arg.PriceDelta, arg.Position)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// CreateFeedbackParams holds parameters for CreateFeedback.
type CreateFeedbackParams struct {
	ID      string
	MenuID  int64
	Rating  int
	Comment sql.NullString
}

const createFeedback = `
INSERT INTO feedback (id, menu_id, rating, comment) VALUES (?, ?, ?, ?)
`

// CreateFeedback inserts a feedback entry and returns the stored row.
func (q *Queries) CreateFeedback(ctx context.Context, arg CreateFeedbackParams) (model.Feedback, error) {
	if _, err := q.db.ExecContext(ctx, createFeedback, arg.ID, arg.MenuID, arg.Rating, arg.Comment); err != nil {
		return model.Feedback{}, err
	}
	return q.GetFeedback(ctx, arg.ID)
}

const getFeedback = `
SELECT id, menu_id, rating, comment, created_at FROM feedback WHERE id = ?
`

// GetFeedback fetches a feedback entry by ID.
func (q *Queries) GetFeedback(ctx context.Context, id string) (model.Feedback, error) {
	var f model.Feedback
	err := q.db.QueryRowContext(ctx, getFeedback, id).Scan(&f.ID, &f.MenuID, &f.Rating, &f.Comment, &f.CreatedAt)
	return f, err
}

const listFeedbackByMenu = `
SELECT id, menu_id, rating, comment, created_at
FROM feedback WHERE menu_id = ? ORDER BY created_at DESC, id LIMIT ?
`

// ListFeedbackByMenu returns the most recent feedback for a menu.
func (q *Queries) ListFeedbackByMenu(ctx context.Context, menuID int64, limit int64) ([]model.Feedback, error) {
	rows, err := q.db.QueryContext(ctx, listFeedbackByMenu, menuID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Feedback
	for rows.Next() {
		var f model.Feedback
		if err := rows.Scan(&f.ID, &f.MenuID, &f.Rating, &f.Comment, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

const getFeedbackStats = `
SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM feedback WHERE menu_id = ?
`

// GetFeedbackStats returns the average rating and total count for a menu.
func (q *Queries) GetFeedbackStats(ctx context.Context, menuID int64) (avg float64, total int64, err error) {
	err = q.db.QueryRowContext(ctx, getFeedbackStats, menuID).Scan(&avg, &total)
	return avg, total, err
}

// CreateScanParams holds parameters for CreateScan.
type CreateScanParams struct {
	QRCodeID string
	Country  string
	Device   string
}

const createScan = `
INSERT INTO scans (qr_code_id, country, device) VALUES (?, ?, ?)
`

// CreateScan records a QR scan event.
func (q *Queries) CreateScan(ctx context.Context, arg CreateScanParams) error {
	_, err := q.db.ExecContext(ctx, createScan, arg.QRCodeID, arg.Country, arg.Device)
	return err
}

const rollupScansForDay = `
INSERT INTO scan_daily (qr_code_id, day, count)
SELECT qr_code_id, date(created_at), COUNT(*)
FROM scans
WHERE date(created_at) = ?
GROUP BY qr_code_id, date(created_at)
ON CONFLICT (qr_code_id, day) DO UPDATE SET count = excluded.count
`

// RollupScansForDay aggregates raw scans for a day (YYYY-MM-DD) into scan_daily.
func (q *Queries) RollupScansForDay(ctx context.Context, day string) error {
	_, err := q.db.ExecContext(ctx, rollupScansForDay, day)
	return err
}

const listScanDaily = `
SELECT qr_code_id, day, count FROM scan_daily WHERE qr_code_id = ? ORDER BY day DESC LIMIT ?
`

// ListScanDaily returns rolled-up daily scan counts for a QR code.
func (q *Queries) ListScanDaily(ctx context.Context, qrCodeID string, limit int64) ([]model.ScanDaily, error) {
	rows, err := q.db.QueryContext(ctx, listScanDaily, qrCodeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ScanDaily
	for rows.Next() {
		var d model.ScanDaily
		if err := rows.Scan(&d.QRCodeID, &d.Day, &d.Count); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// CreateEventParams holds parameters for CreateEvent.
type CreateEventParams struct {
	Level    string
	Category string
	Message  string
	Metadata string
}

const createEvent = `
INSERT INTO events (level, category, message, metadata) VALUES (?, ?, ?, ?)
`

// CreateEvent writes an audit-log entry.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) error {
	_, err := q.db.ExecContext(ctx, createEvent, arg.Level, arg.Category, arg.Message, arg.Metadata)
	return err
}

// GetMenuGraph loads the full menu hierarchy in three queries,
// preserving stored category/item/variant ordering.
func (q *Queries) GetMenuGraph(ctx context.Context, menuID int64) (model.MenuGraph, error) {
	var graph model.MenuGraph

	menu, err := q.getMenuByID(ctx, menuID)
	if err != nil {
		return graph, err
	}
	graph.Menu = menu

	categories, err := q.ListCategoriesByMenu(ctx, menuID)
	if err != nil {
		return graph, err
	}

	items, err := q.ListItemsByMenu(ctx, menuID)
	if err != nil {
		return graph, err
	}

	variants, err := q.ListVariantsByMenu(ctx, menuID)
	if err != nil {
		return graph, err
	}

	variantsByItem := make(map[int64][]model.Variant)
	for _, v := range variants {
		variantsByItem[v.ItemID] = append(variantsByItem[v.ItemID], v)
	}

	itemsByCategory := make(map[int64][]model.ItemWithVariants)
	for _, it := range items {
		itemsByCategory[it.CategoryID] = append(itemsByCategory[it.CategoryID], model.ItemWithVariants{
			Item:     it,
			Variants: variantsByItem[it.ID],
		})
	}

	graph.Categories = make([]model.CategoryWithItems, 0, len(categories))
	for _, c := range categories {
		graph.Categories = append(graph.Categories, model.CategoryWithItems{
			Category: c,
			Items:    itemsByCategory[c.ID],
		})
	}

	return graph, nil
}

const getMenuByID = `
SELECT id, restaurant_id, slug, name_ar, name_en, currency, created_at, updated_at
FROM menus WHERE id = ?
`

func (q *Queries) getMenuByID(ctx context.Context, id int64) (model.Menu, error) {
	var m model.Menu
	err := q.db.QueryRowContext(ctx, getMenuByID, id).Scan(
		&m.ID, &m.RestaurantID, &m.Slug, &m.NameAr, &m.NameEn, &m.Currency, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}
