// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/sufra-dev/sufra/internal/model"
	"github.com/sufra-dev/sufra/internal/session"
	"github.com/sufra-dev/sufra/internal/store"
)

// ContextKeyRestaurant carries the authenticated owner's restaurant.
const ContextKeyRestaurant ContextKey = "restaurant"

// RequireOwner ensures the request carries an authenticated owner
// session, loading the restaurant into the request context. Anonymous
// requests are redirected to the login page.
func RequireOwner(sessions *scs.SessionManager, queries *store.Queries) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ownerID := sessions.GetInt64(r.Context(), session.KeyOwnerID)
			if ownerID == 0 {
				http.Redirect(w, r, "/owner/login", http.StatusSeeOther)
				return
			}

			restaurant, err := queries.GetRestaurantByID(r.Context(), ownerID)
			if err != nil {
				// Stale session referencing a removed restaurant
				if errors.Is(err, sql.ErrNoRows) {
					_ = sessions.Destroy(r.Context())
					http.Redirect(w, r, "/owner/login", http.StatusSeeOther)
					return
				}
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyRestaurant, restaurant)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RestaurantFromContext returns the restaurant loaded by RequireOwner.
func RestaurantFromContext(ctx context.Context) (model.Restaurant, bool) {
	rest, ok := ctx.Value(ContextKeyRestaurant).(model.Restaurant)
	return rest, ok
}
