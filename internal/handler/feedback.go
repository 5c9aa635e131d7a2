// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sufra-dev/sufra/internal/i18n"
	"github.com/sufra-dev/sufra/internal/middleware"
	"github.com/sufra-dev/sufra/internal/model"
	"github.com/sufra-dev/sufra/internal/render"
	"github.com/sufra-dev/sufra/internal/service"
	"github.com/sufra-dev/sufra/internal/store"
	"github.com/sufra-dev/sufra/internal/util"
)

// FeedbackHandler serves feedback submission and the aggregate API.
type FeedbackHandler struct {
	queries  *store.Queries
	feedback *service.FeedbackService
	renderer *render.Renderer
	logger   *slog.Logger
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(db *sql.DB, feedback *service.FeedbackService, renderer *render.Renderer, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		queries:  store.New(db),
		feedback: feedback,
		renderer: renderer,
		logger:   logger,
	}
}

// feedbackResponse is the JSON shape of one stored feedback entry.
type feedbackResponse struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// summaryResponse is the JSON shape of the aggregate endpoint.
type summaryResponse struct {
	Feedback      []feedbackResponse `json:"feedback"`
	AverageRating float64            `json:"averageRating"`
	Total         int64              `json:"total"`
}

// Submit accepts a feedback submission: POST /m/{slug}/feedback.
// HTML forms get a flash + redirect; JSON clients get the stored entry.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	menu, err := h.queries.GetMenuBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("loading menu for feedback", "slug", slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var input service.FeedbackInput
	wantsJSON := strings.Contains(r.Header.Get("Content-Type"), "application/json")
	if wantsJSON {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
	} else {
		rating, _ := strconv.Atoi(r.FormValue("rating"))
		input = service.FeedbackInput{
			Rating:  rating,
			Comment: r.FormValue("comment"),
		}
	}

	fb, err := h.feedback.Submit(r.Context(), menu.ID, input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFeedback) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("storing feedback", "slug", slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if wantsJSON {
		writeJSON(w, http.StatusCreated, toFeedbackResponse(fb))
		return
	}

	locale := middleware.Locale(r)
	h.renderer.SetFlash(r, i18n.T(locale, "feedback.thanks"), "success")
	http.Redirect(w, r, "/m/"+slug, http.StatusSeeOther)
}

// Summary returns the aggregate feedback for a menu as JSON:
// GET /m/{slug}/feedback.
func (h *FeedbackHandler) Summary(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	menu, err := h.queries.GetMenuBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("loading menu for feedback summary", "slug", slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	summary, err := h.feedback.Summary(r.Context(), menu.ID, feedbackListLimit)
	if err != nil {
		h.logger.Error("loading feedback summary", "slug", slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	resp := summaryResponse{
		Feedback:      make([]feedbackResponse, 0, len(summary.Feedback)),
		AverageRating: summary.AverageRating,
		Total:         summary.Total,
	}
	for _, fb := range summary.Feedback {
		resp.Feedback = append(resp.Feedback, toFeedbackResponse(fb))
	}

	writeJSON(w, http.StatusOK, resp)
}

func toFeedbackResponse(fb model.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:        fb.ID,
		Rating:    fb.Rating,
		Comment:   util.StringOrEmpty(fb.Comment),
		CreatedAt: fb.CreatedAt,
	}
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
