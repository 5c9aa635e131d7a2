// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Sufra serves bilingual restaurant menus with owner-selectable themes.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/sufra-dev/sufra/internal/cache"
	"github.com/sufra-dev/sufra/internal/config"
	"github.com/sufra-dev/sufra/internal/geoip"
	"github.com/sufra-dev/sufra/internal/handler"
	"github.com/sufra-dev/sufra/internal/i18n"
	"github.com/sufra-dev/sufra/internal/logging"
	"github.com/sufra-dev/sufra/internal/middleware"
	"github.com/sufra-dev/sufra/internal/render"
	"github.com/sufra-dev/sufra/internal/scan"
	"github.com/sufra-dev/sufra/internal/scheduler"
	"github.com/sufra-dev/sufra/internal/service"
	"github.com/sufra-dev/sufra/internal/session"
	"github.com/sufra-dev/sufra/internal/store"
	"github.com/sufra-dev/sufra/internal/version"
	"github.com/sufra-dev/sufra/web"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Sufra - Bilingual digital menus\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SUFRA_SESSION_SECRET    Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SUFRA_DB_PATH           SQLite database path (default: ./data/sufra.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SUFRA_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SUFRA_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SUFRA_REDIS_URL         Redis URL for distributed caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SUFRA_GEOIP_DB_PATH     GeoLite2-Country database path (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SUFRA_DO_SEED           Seed a demo restaurant on first start (default: false)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("sufra %s\n", version.Get())
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	slog.Info("starting sufra", "version", version.Get().Version)

	if err := i18n.Init(logger); err != nil {
		return fmt.Errorf("initializing i18n: %w", err)
	}

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the Event Log database
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)

	ctx := context.Background()
	if cfg.DoSeed {
		if err := store.Seed(ctx, db); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}

	queries := store.New(db)

	// Session manager
	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Cache backend (Redis when configured, in-process memory otherwise)
	backend, err := cache.NewCache(cache.CacheConfig{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	})
	if err != nil {
		slog.Warn("cache backend unavailable, falling back to memory", "error", err)
		backend, err = cache.NewCache(cache.CacheConfig{
			DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
			MaxSize:         cfg.CacheMaxSize,
			CleanupInterval: time.Minute,
		})
		if err != nil {
			return fmt.Errorf("initializing cache: %w", err)
		}
	}
	defer func() {
		if err := backend.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()
	menuCache := cache.NewMenuCache(backend, queries, time.Duration(cfg.CacheTTL)*time.Second)
	if cfg.UseRedisCache() {
		slog.Info("cache initialized", "backend", "redis", "url", cfg.RedisURL)
	} else {
		slog.Info("cache initialized", "backend", "memory")
	}

	// GeoIP (optional, degrades to empty country codes)
	geo := geoip.NewLookup()
	if err := geo.Init(cfg.GeoIPDBPath); err != nil {
		slog.Warn("geoip disabled", "error", err)
	}
	defer func() { _ = geo.Close() }()

	// Template renderer
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	slog.Info("template renderer initialized")

	// Services
	feedbackService := service.NewFeedbackService(queries, logger)
	scanService := scan.NewService(queries, sessionManager, geo, logger)

	// Background jobs
	sched := scheduler.New(scanService, geo, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	// Handlers
	secureCookies := !cfg.IsDevelopment()
	menuHandler := handler.NewMenuHandler(db, renderer, menuCache, feedbackService, logger, secureCookies)
	feedbackHandler := handler.NewFeedbackHandler(db, feedbackService, renderer, logger)
	scanHandler := handler.NewScanHandler(db, scanService, logger)
	ownerHandler := handler.NewOwnerHandler(db, renderer, sessionManager, menuCache, logger)

	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment()))

	// Routes
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(sessionManager.LoadAndSave)

	// Static assets
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Public menu routes
	r.Route("/m/{slug}", func(r chi.Router) {
		r.Use(middleware.MenuLanguage(secureCookies))
		r.Get("/", menuHandler.Page)
		r.Get("/item/{id}", menuHandler.Item)
		r.Post("/favorite/{id}", menuHandler.ToggleFavorite)
		r.Get("/feedback", feedbackHandler.Summary)
		r.With(middleware.RateLimitByIP(float64(cfg.FeedbackRateLimit)/60.0, cfg.FeedbackRateLimit)).
			Post("/feedback", feedbackHandler.Submit)
	})

	// Scan beacon
	r.With(middleware.RateLimitByIP(1, 5)).Post("/scan/{qrID}", scanHandler.Beacon)

	// Owner area
	r.Route("/owner", func(r chi.Router) {
		r.Use(csrfMiddleware)
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

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/owner/login", http.StatusSeeOther)
	})

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB max header size
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
