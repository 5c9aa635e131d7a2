// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package menurender

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// FontInjector collects the font stylesheets a page needs. Injection
// is idempotent: asking for the same family twice yields one link, so
// theme re-renders in the editor never stack duplicate stylesheets.
type FontInjector struct {
	mu       sync.Mutex
	families []string
	seen     map[string]bool
}

// NewFontInjector creates an empty injector.
func NewFontInjector() *FontInjector {
	return &FontInjector{seen: make(map[string]bool)}
}

// Inject registers a font family. Returns true when the family was
// newly added, false when it was already present or empty.
func (f *FontInjector) Inject(family string) bool {
	family = strings.TrimSpace(family)
	if family == "" {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen[family] {
		return false
	}
	f.seen[family] = true
	f.families = append(f.families, family)
	return true
}

// StylesheetURLs returns one Google Fonts URL per injected family, in
// injection order.
func (f *FontInjector) StylesheetURLs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	urls := make([]string, len(f.families))
	for i, family := range f.families {
		urls[i] = fmt.Sprintf(
			"https://fonts.googleapis.com/css2?family=%s:wght@400;500;700&display=swap",
			url.QueryEscape(family),
		)
	}
	return urls
}
