// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// Plan tiers. Entitlements derived from the tier are consumed by the
// renderer as plain booleans; the renderer never evaluates tiers itself.
const (
	PlanFree    = "free"
	PlanPro     = "pro"
	PlanPremium = "premium"
)

// Restaurant represents an owner account with a single menu.
type Restaurant struct {
	ID           int64
	Slug         string
	NameAr       string
	NameEn       string
	AboutMD      sql.NullString // markdown shown on the public page
	Email        string
	PasswordHash string
	Plan         string
	QRCodeID     string // uuid used by printed QR codes and the scan beacon
	ThemeJSON    string // serialized theme descriptor, may be empty
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ShowPoweredBy is the entitlement flag for the powered-by badge:
// free-tier menus carry the badge, paid tiers do not.
func (r Restaurant) ShowPoweredBy() bool {
	return r.Plan == PlanFree || r.Plan == ""
}
