// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// Rating bounds for feedback.
const (
	RatingMin = 1
	RatingMax = 5
)

// Feedback is a visitor rating with an optional comment.
type Feedback struct {
	ID        string // uuid
	MenuID    int64
	Rating    int
	Comment   sql.NullString
	CreatedAt time.Time
}

// FeedbackSummary aggregates feedback for a menu.
type FeedbackSummary struct {
	Feedback      []Feedback
	AverageRating float64
	Total         int64
}

// IsValidRating checks a rating against the allowed bounds.
func IsValidRating(rating int) bool {
	return rating >= RatingMin && rating <= RatingMax
}
