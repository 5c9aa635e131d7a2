// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/sufra-dev/sufra/internal/auth"
	"github.com/sufra-dev/sufra/internal/cache"
	"github.com/sufra-dev/sufra/internal/i18n"
	"github.com/sufra-dev/sufra/internal/menurender"
	"github.com/sufra-dev/sufra/internal/middleware"
	"github.com/sufra-dev/sufra/internal/model"
	"github.com/sufra-dev/sufra/internal/render"
	"github.com/sufra-dev/sufra/internal/session"
	"github.com/sufra-dev/sufra/internal/store"
	"github.com/sufra-dev/sufra/internal/style"
	"github.com/sufra-dev/sufra/internal/theme"
)

// ownerLang is the owner area's UI language.
const ownerLang = model.LocaleEnglish

// OwnerHandler serves the owner login, theme editor and gallery.
type OwnerHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	menus          *cache.MenuCache
	logger         *slog.Logger
}

// NewOwnerHandler creates an OwnerHandler.
func NewOwnerHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, menus *cache.MenuCache, logger *slog.Logger) *OwnerHandler {
	return &OwnerHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		menus:          menus,
		logger:         logger,
	}
}

// EditorData is the template payload for the theme editor.
type EditorData struct {
	Theme           theme.Descriptor
	Preview         menurender.PageView
	ColorRoles      []string
	ItemStyles      []style.ItemStyle
	CategoryStyles  []style.CategoryStyle
	DecorationTypes []style.DecorationType
	NavModes        []style.NavMode
}

// GalleryEntry pairs a preset with its rendered thumbnail view.
type GalleryEntry struct {
	Name string
	View menurender.PageView
}

// GalleryData is the template payload for the theme gallery.
type GalleryData struct {
	Entries []GalleryEntry
}

// LoginForm renders the owner login page: GET /owner/login.
func (h *OwnerHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.sessionManager.GetInt64(r.Context(), session.KeyOwnerID) > 0 {
		http.Redirect(w, r, "/owner/editor", http.StatusSeeOther)
		return
	}

	err := h.renderer.Render(w, r, "owner/login", render.TemplateData{
		Title: i18n.T(ownerLang, "auth.login"),
		Lang:  ownerLang,
	})
	if err != nil {
		h.logger.Error("rendering login page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Login authenticates an owner: POST /owner/login.
func (h *OwnerHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	password := r.FormValue("password")

	restaurant, err := h.queries.GetRestaurantByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			h.logger.Error("loading restaurant for login", "error", err)
		}
		h.failLogin(w, r)
		return
	}

	ok, err := auth.CheckPassword(password, restaurant.PasswordHash)
	if err != nil || !ok {
		h.logger.Warn("failed login attempt", "category", model.EventCategoryAuth, "email", email)
		h.failLogin(w, r)
		return
	}

	// Rotate the session token on privilege change
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		h.logger.Error("renewing session token", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.sessionManager.Put(r.Context(), session.KeyOwnerID, restaurant.ID)

	h.logger.Info("owner logged in", "category", model.EventCategoryAuth, "restaurant_id", restaurant.ID)
	http.Redirect(w, r, "/owner/editor", http.StatusSeeOther)
}

func (h *OwnerHandler) failLogin(w http.ResponseWriter, r *http.Request) {
	h.renderer.SetFlash(r, i18n.T(ownerLang, "auth.invalid_credentials"), "error")
	http.Redirect(w, r, "/owner/login", http.StatusSeeOther)
}

// Logout ends the owner session: POST /owner/logout.
func (h *OwnerHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		h.logger.Error("destroying session", "error", err)
	}
	http.Redirect(w, r, "/owner/login", http.StatusSeeOther)
}

// Editor renders the theme editor with a live preview: GET /owner/editor.
func (h *OwnerHandler) Editor(w http.ResponseWriter, r *http.Request) {
	restaurant, ok := middleware.RestaurantFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/owner/login", http.StatusSeeOther)
		return
	}

	d := theme.Parse(restaurant.ThemeJSON)
	h.renderEditor(w, r, d)
}

// PreviewTheme renders the live preview fragment for unsaved edits:
// POST /owner/editor/preview. Nothing is persisted.
func (h *OwnerHandler) PreviewTheme(w http.ResponseWriter, r *http.Request) {
	d := themeFromForm(r)
	view := previewView(d, style.FidelityPreview)

	if err := h.renderer.RenderFragment(w, "owner/editor", "menu_body", view); err != nil {
		h.logger.Error("rendering theme preview", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// SaveTheme validates and persists the submitted theme:
// POST /owner/editor/theme.
func (h *OwnerHandler) SaveTheme(w http.ResponseWriter, r *http.Request) {
	restaurant, ok := middleware.RestaurantFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/owner/login", http.StatusSeeOther)
		return
	}

	d := themeFromForm(r)
	if err := theme.Validate(d); err != nil {
		h.logger.Warn("invalid theme submitted", "category", model.EventCategoryTheme, "error", err)
		h.renderer.SetFlash(r, err.Error(), "error")
		http.Redirect(w, r, "/owner/editor", http.StatusSeeOther)
		return
	}

	h.persistTheme(w, r, restaurant, d)
}

// Gallery renders the preset picker: GET /owner/themes.
func (h *OwnerHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	presets := theme.Presets()
	data := GalleryData{Entries: make([]GalleryEntry, 0, len(presets))}
	for _, preset := range presets {
		data.Entries = append(data.Entries, GalleryEntry{
			Name: preset.Name,
			View: previewView(preset, style.FidelityThumbnail),
		})
	}

	err := h.renderer.Render(w, r, "owner/gallery", render.TemplateData{
		Title: i18n.T(ownerLang, "gallery.title"),
		Lang:  ownerLang,
		Data:  data,
	})
	if err != nil {
		h.logger.Error("rendering gallery", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// ApplyPreset saves a preset as the restaurant's theme:
// POST /owner/themes.
func (h *OwnerHandler) ApplyPreset(w http.ResponseWriter, r *http.Request) {
	restaurant, ok := middleware.RestaurantFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/owner/login", http.StatusSeeOther)
		return
	}

	d := theme.PresetByName(r.FormValue("preset"))
	h.persistTheme(w, r, restaurant, d)
}

func (h *OwnerHandler) persistTheme(w http.ResponseWriter, r *http.Request, restaurant model.Restaurant, d theme.Descriptor) {
	raw, err := theme.Marshal(d)
	if err != nil {
		h.logger.Error("marshaling theme", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := h.queries.UpdateRestaurantTheme(r.Context(), restaurant.ID, raw); err != nil {
		h.logger.Error("saving theme", "category", model.EventCategoryTheme, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Drop the cached public page so the new theme shows immediately
	h.menus.Invalidate(r.Context(), restaurant.Slug)

	h.logger.Info("theme saved", "category", model.EventCategoryTheme,
		"restaurant_id", restaurant.ID, "theme", d.Name)
	h.renderer.SetFlash(r, i18n.T(ownerLang, "editor.saved"), "success")
	http.Redirect(w, r, "/owner/editor", http.StatusSeeOther)
}

func (h *OwnerHandler) renderEditor(w http.ResponseWriter, r *http.Request, d theme.Descriptor) {
	data := EditorData{
		Theme:           d,
		Preview:         previewView(d, style.FidelityPreview),
		ColorRoles:      theme.ColorRoles(),
		ItemStyles:      style.AllItemStyles,
		CategoryStyles:  style.AllCategoryStyles,
		DecorationTypes: style.AllDecorationTypes,
		NavModes:        style.AllNavModes,
	}

	err := h.renderer.Render(w, r, "owner/editor", render.TemplateData{
		Title: i18n.T(ownerLang, "editor.title"),
		Lang:  ownerLang,
		Data:  data,
	})
	if err != nil {
		h.logger.Error("rendering editor", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// previewView builds a page view over the fixed sample menu. Both the
// editor preview and the gallery thumbnails run through the exact same
// BuildPage as the public page.
func previewView(d theme.Descriptor, fidelity style.Fidelity) menurender.PageView {
	return menurender.BuildPage(menurender.PageInput{
		Graph:    style.SampleMenu(),
		Theme:    d,
		Locale:   model.DefaultLocale,
		Fidelity: fidelity,
	})
}

// themeFromForm decodes the editor form into a normalized descriptor.
func themeFromForm(r *http.Request) theme.Descriptor {
	colors := make(map[string]string)
	for _, role := range theme.ColorRoles() {
		if v := r.FormValue("color_" + role); v != "" {
			colors[role] = v
		}
	}

	d := theme.Descriptor{
		Name:   r.FormValue("theme_name"),
		Colors: colors,
		Typography: theme.Typography{
			HeadingFont: r.FormValue("heading_font"),
			BodyFont:    r.FormValue("body_font"),
		},
		Layout: theme.Layout{
			ItemStyle:     r.FormValue("item_style"),
			CategoryStyle: r.FormValue("category_style"),
			Nav:           r.FormValue("nav_mode"),
		},
		Decoration: theme.Decoration{
			Type:  r.FormValue("decoration_type"),
			Color: r.FormValue("decoration_color"),
		},
		Features: theme.Features{
			ShowPhotos:      r.FormValue("show_photos") == "1",
			ShowDecorations: r.FormValue("show_decorations") == "1",
			CustomFont:      r.FormValue("custom_font") == "1",
		},
	}
	return theme.Normalize(d)
}
