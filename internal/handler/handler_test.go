package handler

import (
	"database/sql"
	"io/fs"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sufra-dev/sufra/internal/cache"
	"github.com/sufra-dev/sufra/internal/geoip"
	"github.com/sufra-dev/sufra/internal/i18n"
	"github.com/sufra-dev/sufra/internal/middleware"
	"github.com/sufra-dev/sufra/internal/render"
	"github.com/sufra-dev/sufra/internal/scan"
	"github.com/sufra-dev/sufra/internal/service"
	"github.com/sufra-dev/sufra/internal/session"
	"github.com/sufra-dev/sufra/internal/store"
	"github.com/sufra-dev/sufra/internal/testutil"
	"github.com/sufra-dev/sufra/web"
)

// testApp assembles the full route tree over a seeded database. CSRF
// and rate limiting stay out so tests exercise handler behavior alone.
func testApp(t *testing.T) (*httptest.Server, *sql.DB) {
	t.Helper()

	if err := i18n.Init(nil); err != nil {
		t.Fatalf("i18n init: %v", err)
	}

	db, cleanup := testutil.SeededDB(t)
	t.Cleanup(cleanup)

	logger := testutil.TestLoggerSilent()
	sessionManager := session.New(db, true)

	backend := cache.NewSimpleMemoryCache(time.Hour)
	t.Cleanup(func() { _ = backend.Close() })

	queries := store.New(db)
	menuCache := cache.NewMenuCache(backend, queries, time.Hour)

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("templates fs: %v", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          true,
	})
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	geo := geoip.NewLookup()
	_ = geo.Init("")
	feedbackService := service.NewFeedbackService(queries, logger)
	scanService := scan.NewService(queries, sessionManager, geo, logger)

	menuHandler := NewMenuHandler(db, renderer, menuCache, feedbackService, logger, false)
	feedbackHandler := NewFeedbackHandler(db, feedbackService, renderer, logger)
	scanHandler := NewScanHandler(db, scanService, logger)
	ownerHandler := NewOwnerHandler(db, renderer, sessionManager, menuCache, logger)

	r := chi.NewRouter()
	r.Use(sessionManager.LoadAndSave)

	r.Route("/m/{slug}", func(r chi.Router) {
		r.Use(middleware.MenuLanguage(false))
		r.Get("/", menuHandler.Page)
		r.Get("/item/{id}", menuHandler.Item)
		r.Post("/favorite/{id}", menuHandler.ToggleFavorite)
		r.Get("/feedback", feedbackHandler.Summary)
		r.Post("/feedback", feedbackHandler.Submit)
	})
	r.Post("/scan/{qrID}", scanHandler.Beacon)

	r.Route("/owner", func(r chi.Router) {
		r.Get("/login", ownerHandler.LoginForm)
		r.Post("/login", ownerHandler.Login)
		r.Post("/logout", ownerHandler.Logout)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireOwner(sessionManager, queries))
			r.Get("/editor", ownerHandler.Editor)
			r.Post("/editor/preview", ownerHandler.PreviewTheme)
			r.Post("/editor/theme", ownerHandler.SaveTheme)
			r.Get("/themes", ownerHandler.Gallery)
			r.Post("/themes", ownerHandler.ApplyPreset)
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, db
}

// clientWithJar returns an HTTP client that keeps cookies and does not
// follow redirects, so tests can assert on 303 responses directly.
func clientWithJar(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
