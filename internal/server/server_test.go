package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(0, "test-key", nil, "", nil, nil, nil, nil, nil, nil)
}

func serveRequest(srv *Server, method, path, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if apiKey != "" {
		req.Header.Set(HeaderAPIKey, apiKey)
	}
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestServerRouting(t *testing.T) {
	srv := newTestServer(t)

	t.Run("healthz is public", func(t *testing.T) {
		rec := serveRequest(srv, "GET", "/healthz", "")
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("version is public", func(t *testing.T) {
		rec := serveRequest(srv, "GET", "/version", "")
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("metrics is public", func(t *testing.T) {
		rec := serveRequest(srv, "GET", "/metrics", "")
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("api requires key", func(t *testing.T) {
		rec := serveRequest(srv, "GET", "/api/v1/stats", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("unknown route is 404", func(t *testing.T) {
		rec := serveRequest(srv, "GET", "/api/v1/nope", "test-key")
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}
