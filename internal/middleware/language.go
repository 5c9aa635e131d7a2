// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sufra-dev/sufra/internal/clientstore"
	"github.com/sufra-dev/sufra/internal/i18n"
	"github.com/sufra-dev/sufra/internal/model"
)

// ContextKeyLocale carries the resolved locale code for the request.
const ContextKeyLocale ContextKey = "locale"

// MenuLanguage resolves the display locale for menu pages, scoped per
// menu slug so two restaurants on one device keep separate choices.
// Priority order:
//  1. Query parameter ?lang=xx (explicit switch, persisted to the
//     per-slug cookie)
//  2. Per-slug language cookie
//  3. Accept-Language header
//  4. Default locale (Arabic)
func MenuLanguage(secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slug := chi.URLParam(r, "slug")
			store := clientstore.NewCookieStore(w, r, secureCookies)

			locale := resolveLocale(r, store, slug)
			ctx := context.WithValue(r.Context(), ContextKeyLocale, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveLocale(r *http.Request, store clientstore.Store, slug string) string {
	// 1. Explicit switch via query parameter
	if q := strings.ToLower(r.URL.Query().Get("lang")); q != "" && i18n.IsSupported(q) {
		if slug != "" {
			store.Set(clientstore.LanguageKey(slug), q)
		}
		return q
	}

	// 2. Persisted per-menu choice
	if slug != "" {
		if saved := store.Get(clientstore.LanguageKey(slug)); i18n.IsSupported(saved) {
			return saved
		}
	}

	// 3. Browser preference
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		return i18n.MatchLanguage(accept)
	}

	// 4. Default
	return model.DefaultLocale
}

// Locale returns the locale resolved by MenuLanguage, or the default
// when the middleware did not run.
func Locale(r *http.Request) string {
	if v, ok := r.Context().Value(ContextKeyLocale).(string); ok && v != "" {
		return v
	}
	return model.DefaultLocale
}
