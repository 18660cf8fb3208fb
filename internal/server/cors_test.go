package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORSMiddleware(t *testing.T) {
	t.Run("wildcard when no origins configured", func(t *testing.T) {
		handler := CORSMiddleware("")(okHandler())

		req := httptest.NewRequest("GET", "/api/v1/stats", nil)
		req.Header.Set("Origin", "https://anywhere.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get(HeaderAllowOrigin); got != "*" {
			t.Errorf("expected wildcard origin, got %q", got)
		}
	})

	t.Run("echoes a configured origin", func(t *testing.T) {
		handler := CORSMiddleware("https://app.example.com, https://staging.example.com")(okHandler())

		req := httptest.NewRequest("GET", "/api/v1/stats", nil)
		req.Header.Set("Origin", "https://staging.example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get(HeaderAllowOrigin); got != "https://staging.example.com" {
			t.Errorf("expected configured origin to be echoed, got %q", got)
		}
	})

	t.Run("omits allow-origin for unknown origin", func(t *testing.T) {
		handler := CORSMiddleware("https://app.example.com")(okHandler())

		req := httptest.NewRequest("GET", "/api/v1/stats", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get(HeaderAllowOrigin); got != "" {
			t.Errorf("expected no allow-origin header, got %q", got)
		}
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})
		handler := CORSMiddleware("")(next)

		req := httptest.NewRequest(http.MethodOptions, "/api/v1/quest/generate", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200 for preflight, got %d", rec.Code)
		}
		if called {
			t.Error("preflight should not reach the next handler")
		}
		if got := rec.Header().Get(HeaderAllowMethods); got != CORSAllowedMethods {
			t.Errorf("expected allow-methods %q, got %q", CORSAllowedMethods, got)
		}
	})
}
