// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sufra-dev/sufra/internal/scan"
	"github.com/sufra-dev/sufra/internal/store"
)

// ScanHandler serves the fire-and-forget QR scan beacon.
type ScanHandler struct {
	queries *store.Queries
	scans   *scan.Service
	logger  *slog.Logger
}

// NewScanHandler creates a ScanHandler.
func NewScanHandler(db *sql.DB, scans *scan.Service, logger *slog.Logger) *ScanHandler {
	return &ScanHandler{
		queries: store.New(db),
		scans:   scans,
		logger:  logger,
	}
}

// Beacon records one scan: POST /scan/{qrID}. Clients ignore the
// response, so everything non-fatal answers 204.
func (h *ScanHandler) Beacon(w http.ResponseWriter, r *http.Request) {
	qrID := chi.URLParam(r, "qrID")

	if _, err := h.queries.GetRestaurantByQRCodeID(r.Context(), qrID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("resolving qr code", "qr_code_id", qrID, "error", err)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.scans.Record(r, qrID)
	w.WriteHeader(http.StatusNoContent)
}
