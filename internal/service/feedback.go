// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service holds application services that sit between handlers
// and the store.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/sufra-dev/sufra/internal/model"
	"github.com/sufra-dev/sufra/internal/store"
	"github.com/sufra-dev/sufra/internal/util"
)

// MaxCommentLength caps feedback comments.
const MaxCommentLength = 1000

// ErrInvalidFeedback is returned when a submission fails validation.
var ErrInvalidFeedback = errors.New("invalid feedback")

// FeedbackInput is a diner's feedback submission.
type FeedbackInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=1000"`
}

// FeedbackService validates, stores and aggregates diner feedback.
type FeedbackService struct {
	queries   *store.Queries
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
	logger    *slog.Logger
}

// NewFeedbackService creates a feedback service.
func NewFeedbackService(queries *store.Queries, logger *slog.Logger) *FeedbackService {
	return &FeedbackService{
		queries:   queries,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

// Submit validates and stores one feedback entry for a menu.
// Comments are stripped of any HTML before storage.
func (s *FeedbackService) Submit(ctx context.Context, menuID int64, input FeedbackInput) (model.Feedback, error) {
	if err := s.validate.Struct(input); err != nil {
		return model.Feedback{}, fmt.Errorf("%w: %v", ErrInvalidFeedback, err)
	}

	// Truncate on rune boundaries; the validator's max counts runes and
	// a byte slice could cut an Arabic comment mid-character.
	comment := strings.TrimSpace(s.sanitizer.Sanitize(input.Comment))
	if utf8.RuneCountInString(comment) > MaxCommentLength {
		comment = string([]rune(comment)[:MaxCommentLength])
	}

	fb, err := s.queries.CreateFeedback(ctx, store.CreateFeedbackParams{
		ID:      uuid.NewString(),
		MenuID:  menuID,
		Rating:  input.Rating,
		Comment: util.NullStringFromValue(comment),
	})
	if err != nil {
		return model.Feedback{}, fmt.Errorf("storing feedback: %w", err)
	}

	s.logger.Info("feedback received", "category", model.EventCategoryFeedback,
		"menu_id", menuID, "rating", input.Rating)
	return fb, nil
}

// Summary returns recent feedback for a menu together with the average
// rating and total count over all entries, not just the listed page.
func (s *FeedbackService) Summary(ctx context.Context, menuID int64, limit int64) (model.FeedbackSummary, error) {
	var summary model.FeedbackSummary

	entries, err := s.queries.ListFeedbackByMenu(ctx, menuID, limit)
	if err != nil {
		return summary, fmt.Errorf("listing feedback: %w", err)
	}

	avg, total, err := s.queries.GetFeedbackStats(ctx, menuID)
	if err != nil {
		return summary, fmt.Errorf("aggregating feedback: %w", err)
	}

	summary.Feedback = entries
	summary.AverageRating = avg
	summary.Total = total
	return summary, nil
}
