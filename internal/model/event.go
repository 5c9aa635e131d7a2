// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Event log levels.
const (
	EventLevelInfo    = "info"
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)

// Event log categories.
const (
	EventCategoryAuth     = "auth"
	EventCategoryMenu     = "menu"
	EventCategoryTheme    = "theme"
	EventCategoryFeedback = "feedback"
	EventCategoryScan     = "scan"
	EventCategoryCache    = "cache"
	EventCategorySystem   = "system"
)

// Event is an audit-log entry persisted by the logging handler.
type Event struct {
	ID        int64
	Level     string
	Category  string
	Message   string
	Metadata  string // JSON object of extra attributes
	CreatedAt time.Time
}
