// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Device classes recorded for QR scans.
const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
	DeviceBot     = "bot"
	DeviceOther   = "other"
)

// Scan is a single recorded QR scan event.
type Scan struct {
	ID        int64
	QRCodeID  string
	Country   string // ISO 3166-1 alpha-2, empty when GeoIP is disabled
	Device    string
	CreatedAt time.Time
}

// ScanDaily is a rolled-up per-day scan count produced by the nightly job.
type ScanDaily struct {
	QRCodeID string
	Day      string // YYYY-MM-DD
	Count    int64
}
