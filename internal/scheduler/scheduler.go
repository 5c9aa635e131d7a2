// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the recurring background jobs: the nightly
// scan rollup and the GeoIP database reload.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sufra-dev/sufra/internal/geoip"
	"github.com/sufra-dev/sufra/internal/scan"
)

// Job schedules (standard 5-field cron expressions).
const (
	// scanRollupSchedule runs shortly after midnight so yesterday's
	// scans are complete when aggregated.
	scanRollupSchedule = "30 0 * * *"
	// geoipReloadSchedule picks up a refreshed GeoLite2 database.
	geoipReloadSchedule = "0 4 * * *"
)

// Scheduler owns the cron instance and its registered jobs.
type Scheduler struct {
	cron   *cron.Cron
	scans  *scan.Service
	geo    *geoip.Lookup
	logger *slog.Logger
}

// New creates a scheduler. Call Start to begin running jobs.
func New(scans *scan.Service, geo *geoip.Lookup, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		scans:  scans,
		geo:    geo,
		logger: logger,
	}
}

// Start registers all jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(scanRollupSchedule, s.rollupYesterday); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(geoipReloadSchedule, s.reloadGeoIP); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop stops the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) rollupYesterday() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	day := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	if err := s.scans.RollupDay(ctx, day); err != nil {
		s.logger.Error("scan rollup failed", "day", day, "error", err)
		return
	}
	s.logger.Info("scan rollup complete", "day", day)
}

func (s *Scheduler) reloadGeoIP() {
	if err := s.geo.Reload(); err != nil {
		s.logger.Warn("geoip reload failed", "error", err)
	}
}
