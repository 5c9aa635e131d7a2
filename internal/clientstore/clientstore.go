// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package clientstore persists small per-device values such as a
// diner's favorite items and language choice. Values are scoped per
// menu slug so two restaurants on one phone never share state. The
// cookie implementation is used in production; the memory one backs
// tests and preview rendering where no browser is involved.
package clientstore

import (
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Store is a string key/value store for per-device state.
// Get returns "" for absent keys; absence and emptiness are equivalent.
type Store interface {
	Get(key string) string
	Set(key, value string)
	Delete(key string)
}

// FavoritesKey returns the storage key for a menu's favorite items.
func FavoritesKey(slug string) string {
	return fmt.Sprintf("menu-favorites-%s", slug)
}

// LanguageKey returns the storage key for a menu's language choice.
func LanguageKey(slug string) string {
	return fmt.Sprintf("menu-lang-%s", slug)
}

const cookieMaxAge = 365 * 24 * time.Hour

// CookieStore reads values from request cookies and writes updates to
// the response. Values are URL-escaped since favorite lists contain
// commas, which are not valid in cookie values.
type CookieStore struct {
	r      *http.Request
	w      http.ResponseWriter
	secure bool
	// written shadows cookies set during this request so a Get after
	// a Set observes the new value.
	written map[string]string
}

// NewCookieStore creates a store bound to one request/response pair.
func NewCookieStore(w http.ResponseWriter, r *http.Request, secure bool) *CookieStore {
	return &CookieStore{
		r:       r,
		w:       w,
		secure:  secure,
		written: make(map[string]string),
	}
}

// Get returns the value for key, or "" if absent or unreadable.
func (s *CookieStore) Get(key string) string {
	if v, ok := s.written[key]; ok {
		return v
	}
	c, err := s.r.Cookie(key)
	if err != nil {
		return ""
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return v
}

// Set stores value under key with a one-year lifetime.
func (s *CookieStore) Set(key, value string) {
	s.written[key] = value
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    url.QueryEscape(value),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Delete removes key.
func (s *CookieStore) Delete(key string) {
	s.written[key] = ""
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// MemoryStore is an in-process Store for tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value for key, or "" if absent.
func (s *MemoryStore) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Set stores value under key.
func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Delete removes key.
func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}
