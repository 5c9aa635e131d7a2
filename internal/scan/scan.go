// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scan records QR-code scan beacons and rolls them up into
// daily counts. A scan is counted once per browsing session per QR
// code; repeated beacons from the same session are acknowledged but
// not recorded again.
package scan

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"
	ua "github.com/mileusna/useragent"

	"github.com/sufra-dev/sufra/internal/geoip"
	"github.com/sufra-dev/sufra/internal/model"
	"github.com/sufra-dev/sufra/internal/session"
	"github.com/sufra-dev/sufra/internal/store"
)

// Service counts QR scans with per-session dedup.
type Service struct {
	queries  *store.Queries
	sessions *scs.SessionManager
	geo      *geoip.Lookup
	logger   *slog.Logger
}

// NewService creates a scan service.
func NewService(queries *store.Queries, sessions *scs.SessionManager, geo *geoip.Lookup, logger *slog.Logger) *Service {
	return &Service{
		queries:  queries,
		sessions: sessions,
		geo:      geo,
		logger:   logger,
	}
}

// Record counts one scan of qrCodeID for the session behind r.
// Returns true when a new scan row was written, false when this
// session already scanned the code. Recording failures are logged
// and reported as not-counted; the menu must still load.
func (s *Service) Record(r *http.Request, qrCodeID string) bool {
	ctx := r.Context()

	dedupKey := session.KeyScanPrefix + qrCodeID
	if s.sessions.GetBool(ctx, dedupKey) {
		return false
	}

	err := s.queries.CreateScan(ctx, store.CreateScanParams{
		QRCodeID: qrCodeID,
		Country:  s.geo.LookupCountry(clientIP(r)),
		Device:   ClassifyDevice(r.UserAgent()),
	})
	if err != nil {
		s.logger.Warn("failed to record scan", "category", model.EventCategoryScan,
			"qr_code_id", qrCodeID, "error", err)
		return false
	}

	s.sessions.Put(ctx, dedupKey, true)
	return true
}

// ClassifyDevice maps a User-Agent string onto the device buckets we
// report on.
func ClassifyDevice(userAgent string) string {
	if strings.TrimSpace(userAgent) == "" {
		return model.DeviceOther
	}

	parsed := ua.Parse(userAgent)
	switch {
	case parsed.Bot:
		return model.DeviceBot
	case parsed.Tablet:
		return model.DeviceTablet
	case parsed.Mobile:
		return model.DeviceMobile
	case parsed.Desktop:
		return model.DeviceDesktop
	default:
		return model.DeviceOther
	}
}

// RollupDay aggregates raw scans for one day (YYYY-MM-DD) into the
// scan_daily table. Idempotent; re-running a day overwrites its count.
func (s *Service) RollupDay(ctx context.Context, day string) error {
	return s.queries.RollupScansForDay(ctx, day)
}

// DailyCounts returns up to limit days of rolled-up counts for a QR code.
func (s *Service) DailyCounts(ctx context.Context, qrCodeID string, limit int64) ([]model.ScanDaily, error) {
	return s.queries.ListScanDaily(ctx, qrCodeID, limit)
}

// clientIP extracts the client IP, honoring X-Forwarded-For from a
// fronting proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
