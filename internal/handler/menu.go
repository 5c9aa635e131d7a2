// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler holds the HTTP handlers for the public menu pages
// and the owner area.
package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sufra-dev/sufra/internal/cache"
	"github.com/sufra-dev/sufra/internal/clientstore"
	"github.com/sufra-dev/sufra/internal/content"
	"github.com/sufra-dev/sufra/internal/menurender"
	"github.com/sufra-dev/sufra/internal/middleware"
	"github.com/sufra-dev/sufra/internal/model"
	"github.com/sufra-dev/sufra/internal/render"
	"github.com/sufra-dev/sufra/internal/service"
	"github.com/sufra-dev/sufra/internal/store"
	"github.com/sufra-dev/sufra/internal/style"
	"github.com/sufra-dev/sufra/internal/theme"
)

// feedbackListLimit caps the feedback entries shown under a menu.
const feedbackListLimit = 20

// MenuHandler serves the public menu pages.
type MenuHandler struct {
	queries       *store.Queries
	renderer      *render.Renderer
	menus         *cache.MenuCache
	feedback      *service.FeedbackService
	logger        *slog.Logger
	secureCookies bool
}

// NewMenuHandler creates a MenuHandler.
func NewMenuHandler(db *sql.DB, renderer *render.Renderer, menus *cache.MenuCache, feedback *service.FeedbackService, logger *slog.Logger, secureCookies bool) *MenuHandler {
	return &MenuHandler{
		queries:       store.New(db),
		renderer:      renderer,
		menus:         menus,
		feedback:      feedback,
		logger:        logger,
		secureCookies: secureCookies,
	}
}

// MenuPageData is the template payload for the public menu page.
type MenuPageData struct {
	View           menurender.PageView
	Modal          *ModalData
	DietaryOptions []string
}

// ModalData is the template payload for the item detail overlay.
type ModalData struct {
	State        menurender.ModalState
	ScrollLocked bool
	Item         menurender.ItemView
	Locale       string
	Dir          string
	Slug         string
}

// Page renders the public menu page: GET /m/{slug}.
func (h *MenuHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, 0)
}

// Item renders the menu page with the detail overlay open:
// GET /m/{slug}/item/{id}.
func (h *MenuHandler) Item(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	h.renderPage(w, r, itemID)
}

func (h *MenuHandler) renderPage(w http.ResponseWriter, r *http.Request, modalItemID int64) {
	slug := chi.URLParam(r, "slug")
	locale := middleware.Locale(r)

	graph, err := h.menus.Get(r.Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("loading menu", "slug", slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	restaurant, err := h.queries.GetRestaurantBySlug(r.Context(), slug)
	if err != nil {
		h.logger.Error("loading restaurant", "slug", slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	cookies := clientstore.NewCookieStore(w, r, h.secureCookies)
	favorites := clientstore.NewFavorites(cookies, slug)

	filter := menurender.Filter{
		Query:         r.URL.Query().Get("q"),
		DietaryTag:    r.URL.Query().Get("dietary"),
		FavoritesOnly: r.URL.Query().Get("favorites") == "1",
		Favorites:     menurender.FavoriteSet(favorites.IDs()),
	}

	// Tab selection for tabbed navigation; BuildPage falls back to the
	// first category when the id is absent or unknown.
	activeCategoryID, _ := strconv.ParseInt(r.URL.Query().Get("cat"), 10, 64)

	// Feedback failures degrade to a page without the summary block.
	var feedbackSummary *model.FeedbackSummary
	if summary, err := h.feedback.Summary(r.Context(), graph.Menu.ID, feedbackListLimit); err == nil {
		feedbackSummary = &summary
	} else {
		h.logger.Warn("loading feedback summary", "slug", slug, "error", err)
	}

	input := menurender.PageInput{
		Graph:            *graph,
		Theme:            theme.Parse(restaurant.ThemeJSON),
		Locale:           locale,
		Filter:           filter,
		ActiveCategoryID: activeCategoryID,
		Fidelity:         style.FidelityFull,
		ShowPoweredBy:    restaurant.ShowPoweredBy(),
		AboutMD:          restaurant.AboutMD.String,
		Feedback:         feedbackSummary,
	}
	view := menurender.BuildPage(input)

	data := MenuPageData{
		View:           view,
		DietaryOptions: dietaryOptions(*graph),
	}

	if modalItemID != 0 {
		if modal, ok := h.buildModal(input, *graph, modalItemID); ok {
			data.Modal = modal
		} else {
			http.NotFound(w, r)
			return
		}
	}

	err = h.renderer.Render(w, r, "menu/page", render.TemplateData{
		Title: view.Title,
		Lang:  locale,
		Dir:   view.Dir,
		Data:  data,
	})
	if err != nil {
		h.logger.Error("rendering menu page", "slug", slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// buildModal drives the overlay state machine to "open" for a direct
// item link. The item must belong to this menu.
func (h *MenuHandler) buildModal(input menurender.PageInput, graph model.MenuGraph, itemID int64) (*ModalData, bool) {
	for _, cat := range graph.Categories {
		for _, it := range cat.Items {
			if it.Item.ID != itemID {
				continue
			}
			modal := menurender.NewModal()
			if err := modal.Open(&it); err != nil {
				return nil, false
			}
			if err := modal.Opened(); err != nil {
				return nil, false
			}
			return &ModalData{
				State:        modal.State(),
				ScrollLocked: modal.ScrollLocked(),
				Item:         menurender.BuildItemDetail(input, *modal.Item()),
				Locale:       input.Locale,
				Dir:          content.Direction(input.Locale),
				Slug:         graph.Menu.Slug,
			}, true
		}
	}
	return nil, false
}

// ToggleFavorite flips an item's favorite state:
// POST /m/{slug}/favorite/{id}.
func (h *MenuHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	cookies := clientstore.NewCookieStore(w, r, h.secureCookies)
	clientstore.NewFavorites(cookies, slug).Toggle(itemID)

	// A completed favorite action closes the detail overlay, so the
	// redirect always lands on the plain menu page, never back on
	// /item/{id}. Filter and language params from the referer survive.
	target := "/m/" + slug
	if ref := r.Referer(); ref != "" {
		if u, err := url.Parse(ref); err == nil && u.RawQuery != "" {
			target += "?" + u.RawQuery
		}
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// dietaryOptions collects the distinct dietary tags present in a menu,
// sorted for a stable select list.
func dietaryOptions(graph model.MenuGraph) []string {
	seen := make(map[string]bool)
	for _, cat := range graph.Categories {
		for _, it := range cat.Items {
			for _, tag := range it.Item.DietaryTagList() {
				seen[tag] = true
			}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
