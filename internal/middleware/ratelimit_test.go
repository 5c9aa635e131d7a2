package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimitByIP_AllowsWithinBurst(t *testing.T) {
	limited := RateLimitByIP(1, 3)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/m/demo/feedback", nil)
		r.RemoteAddr = "203.0.113.5:1234"
		limited.ServeHTTP(w, r)
		if w.Code != http.StatusNoContent {
			t.Fatalf("request %d: status = %d", i, w.Code)
		}
	}
}

func TestRateLimitByIP_RejectsOverBurst(t *testing.T) {
	limited := RateLimitByIP(0.001, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	var last int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/m/demo/feedback", nil)
		r.RemoteAddr = "203.0.113.5:1234"
		limited.ServeHTTP(w, r)
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", last)
	}
}

func TestRateLimitByIP_SeparateClients(t *testing.T) {
	limited := RateLimitByIP(0.001, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	// Exhaust one client's budget
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/m/demo/feedback", nil)
	r.RemoteAddr = "203.0.113.5:1234"
	limited.ServeHTTP(w, r)

	// Another client is unaffected
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "/m/demo/feedback", nil)
	r.RemoteAddr = "198.51.100.7:1234"
	limited.ServeHTTP(w, r)
	if w.Code != http.StatusNoContent {
		t.Errorf("second client status = %d", w.Code)
	}
}

func TestRateLimitByIP_HonorsForwardedFor(t *testing.T) {
	limited := RateLimitByIP(0.001, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for i, want := range []int{http.StatusNoContent, http.StatusTooManyRequests} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/m/demo/feedback", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		limited.ServeHTTP(w, r)
		if w.Code != want {
			t.Errorf("request %d: status = %d, want %d", i, w.Code, want)
		}
	}
}
