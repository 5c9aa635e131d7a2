package logging

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/sufra-dev/sufra/internal/model"
	"github.com/sufra-dev/sufra/internal/testutil"
)

func eventLogFixture(t *testing.T) (*slog.Logger, func(t *testing.T) (level, category, message, metadata string), func()) {
	t.Helper()
	db, cleanup := testutil.TestDB(t)

	inner := slog.NewTextHandler(io.Discard, nil)
	logger := slog.New(NewEventLogHandler(inner, db))

	lastEvent := func(t *testing.T) (level, category, message, metadata string) {
		t.Helper()
		row := db.QueryRow(`SELECT level, category, message, metadata FROM events ORDER BY id DESC LIMIT 1`)
		if err := row.Scan(&level, &category, &message, &metadata); err != nil {
			t.Fatalf("reading event row: %v", err)
		}
		return
	}
	return logger, lastEvent, cleanup
}

func TestEventLogHandler_WarnWritesEvent(t *testing.T) {
	logger, lastEvent, cleanup := eventLogFixture(t)
	defer cleanup()

	logger.Warn("failed login attempt", "category", model.EventCategoryAuth, "email", "x@example.com")

	level, category, message, metadata := lastEvent(t)
	if level != model.EventLevelWarning {
		t.Errorf("level = %q", level)
	}
	if category != model.EventCategoryAuth {
		t.Errorf("category = %q", category)
	}
	if message != "failed login attempt" {
		t.Errorf("message = %q", message)
	}
	if metadata != `{"email":"x@example.com"}` {
		t.Errorf("metadata = %q", metadata)
	}
}

func TestEventLogHandler_ErrorLevel(t *testing.T) {
	logger, lastEvent, cleanup := eventLogFixture(t)
	defer cleanup()

	logger.Error("saving theme", "error", "disk full")

	level, category, _, _ := lastEvent(t)
	if level != model.EventLevelError {
		t.Errorf("level = %q", level)
	}
	// No explicit category attr; inferred from the message
	if category != model.EventCategoryTheme {
		t.Errorf("inferred category = %q", category)
	}
}

func TestEventLogHandler_CategoryInference(t *testing.T) {
	h := NewEventLogHandler(slog.NewTextHandler(io.Discard, nil), nil)

	tests := []struct {
		message string
		want    string
	}{
		{"failed login attempt", model.EventCategoryAuth},
		{"theme saved", model.EventCategoryTheme},
		{"loading menu", model.EventCategoryMenu},
		{"feedback received", model.EventCategoryFeedback},
		{"failed to record scan", model.EventCategoryScan},
		{"cache backend unavailable", model.EventCategoryCache},
		{"something odd", model.EventCategorySystem},
	}
	for _, tt := range tests {
		r := slog.NewRecord(time.Now(), slog.LevelWarn, tt.message, 0)
		if got := h.extractCategory(r); got != tt.want {
			t.Errorf("message %q: category = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestEscapeJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `plain`},
		{`say "hi"`, `say \"hi\"`},
		{"line\nbreak", `line\nbreak`},
		{`back\slash`, `back\\slash`},
		{"tab\there", `tab\there`},
	}
	for _, tt := range tests {
		if got := escapeJSON(tt.in); got != tt.want {
			t.Errorf("escapeJSON(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEventLogHandler_InfoNotPersisted(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	inner := slog.NewTextHandler(io.Discard, nil)
	logger := slog.New(NewEventLogHandler(inner, db))

	logger.Info("routine startup")

	var count int64
	if err := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		t.Fatalf("counting events: %v", err)
	}
	if count != 0 {
		t.Errorf("info log persisted %d events", count)
	}
}
