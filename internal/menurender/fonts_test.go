package menurender

import (
	"strings"
	"testing"
)

func TestFontInjector_Idempotent(t *testing.T) {
	f := NewFontInjector()

	if !f.Inject("Cairo") {
		t.Error("first injection returned false")
	}
	if f.Inject("Cairo") {
		t.Error("duplicate injection returned true")
	}
	if f.Inject("  Cairo  ") {
		t.Error("whitespace-padded duplicate returned true")
	}
	if f.Inject("") {
		t.Error("empty family returned true")
	}

	urls := f.StylesheetURLs()
	if len(urls) != 1 {
		t.Fatalf("expected 1 stylesheet, got %d", len(urls))
	}
}

func TestFontInjector_OrderAndEscaping(t *testing.T) {
	f := NewFontInjector()
	f.Inject("IBM Plex Sans Arabic")
	f.Inject("Tajawal")

	urls := f.StylesheetURLs()
	if len(urls) != 2 {
		t.Fatalf("expected 2 stylesheets, got %d", len(urls))
	}
	if !strings.Contains(urls[0], "IBM+Plex+Sans+Arabic") {
		t.Errorf("family not query-escaped: %s", urls[0])
	}
	if !strings.Contains(urls[1], "Tajawal") {
		t.Errorf("injection order not preserved: %s", urls[1])
	}
	for _, u := range urls {
		if !strings.HasPrefix(u, "https://fonts.googleapis.com/css2?") {
			t.Errorf("unexpected stylesheet host: %s", u)
		}
	}
}
