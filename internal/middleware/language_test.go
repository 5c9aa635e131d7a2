package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/sufra-dev/sufra/internal/i18n"
	"github.com/sufra-dev/sufra/internal/model"
)

func serveMenuLanguage(t *testing.T, r *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()
	if err := i18n.Init(nil); err != nil {
		t.Fatalf("i18n init: %v", err)
	}

	var got string
	router := chi.NewRouter()
	router.With(MenuLanguage(false)).Get("/m/{slug}", func(w http.ResponseWriter, r *http.Request) {
		got = Locale(r)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return got, w
}

func TestMenuLanguage_QueryParamWinsAndPersists(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/m/demo?lang=en", nil)
	r.AddCookie(&http.Cookie{Name: "menu-lang-demo", Value: "ar"})
	r.Header.Set("Accept-Language", "ar")

	got, w := serveMenuLanguage(t, r)
	if got != model.LocaleEnglish {
		t.Errorf("locale = %q, want en", got)
	}

	// The explicit switch is persisted to the per-slug cookie
	var persisted bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "menu-lang-demo" && c.Value == "en" {
			persisted = true
		}
	}
	if !persisted {
		t.Error("query parameter choice not persisted to cookie")
	}
}

func TestMenuLanguage_UnsupportedQueryIgnored(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/m/demo?lang=fr", nil)
	r.AddCookie(&http.Cookie{Name: "menu-lang-demo", Value: "en"})

	got, _ := serveMenuLanguage(t, r)
	if got != model.LocaleEnglish {
		t.Errorf("locale = %q, want cookie value en", got)
	}
}

func TestMenuLanguage_CookieBeatsHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/m/demo", nil)
	r.AddCookie(&http.Cookie{Name: "menu-lang-demo", Value: "en"})
	r.Header.Set("Accept-Language", "ar")

	got, _ := serveMenuLanguage(t, r)
	if got != model.LocaleEnglish {
		t.Errorf("locale = %q, want en from cookie", got)
	}
}

func TestMenuLanguage_CookieScopedPerSlug(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/m/demo", nil)
	r.AddCookie(&http.Cookie{Name: "menu-lang-other", Value: "en"})

	got, _ := serveMenuLanguage(t, r)
	if got != model.DefaultLocale {
		t.Errorf("locale = %q, another menu's cookie leaked", got)
	}
}

func TestMenuLanguage_AcceptLanguageFallback(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/m/demo", nil)
	r.Header.Set("Accept-Language", "en-US,en;q=0.9")

	got, _ := serveMenuLanguage(t, r)
	if got != model.LocaleEnglish {
		t.Errorf("locale = %q, want en from Accept-Language", got)
	}
}

func TestMenuLanguage_DefaultsToArabic(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/m/demo", nil)

	got, _ := serveMenuLanguage(t, r)
	if got != model.LocaleArabic {
		t.Errorf("locale = %q, want ar default", got)
	}
}

func TestLocale_WithoutMiddleware(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/m/demo", nil)
	if got := Locale(r); got != model.DefaultLocale {
		t.Errorf("locale = %q, want default", got)
	}
}
