package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
	"github.com/osse101/LoneWanderer_Go/internal/journal"
)

func getRequest(handler http.HandlerFunc, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleListEntries(t *testing.T) {
	t.Run("returns a page with totals", func(t *testing.T) {
		svc := new(MockJournalService)
		svc.On("ListEntries", mock.Anything, testUserID, 2, 4).Return(
			[]domain.JournalEntry{{ID: "e1"}, {ID: "e2"}}, 10, nil)

		rec := getRequest(HandleListEntries(svc),
			"/api/v1/journal/entries?user_id="+testUserID+"&limit=2&offset=4")

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ListEntriesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Entries, 2)
		assert.Equal(t, 10, resp.Total)
		assert.Equal(t, 2, resp.Limit)
		assert.Equal(t, 4, resp.Offset)
	})

	t.Run("defaults pagination when not given", func(t *testing.T) {
		svc := new(MockJournalService)
		svc.On("ListEntries", mock.Anything, testUserID, 0, 0).Return([]domain.JournalEntry{}, 0, nil)

		rec := getRequest(HandleListEntries(svc), "/api/v1/journal/entries?user_id="+testUserID)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ListEntriesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, journal.DefaultPageSize, resp.Limit)
	})

	t.Run("missing user_id", func(t *testing.T) {
		rec := getRequest(HandleListEntries(new(MockJournalService)), "/api/v1/journal/entries")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "user_id")
	})
}

func TestHandleGetEntry(t *testing.T) {
	t.Run("returns the entry", func(t *testing.T) {
		svc := new(MockJournalService)
		svc.On("GetEntry", mock.Anything, testUserID, "entry-1").Return(
			&domain.JournalEntry{ID: "entry-1", Text: "hello"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/journal/entries/entry-1?user_id="+testUserID, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", "entry-1")
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		rec := httptest.NewRecorder()

		HandleGetEntry(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "hello")
	})

	t.Run("missing entry maps to not found", func(t *testing.T) {
		svc := new(MockJournalService)
		svc.On("GetEntry", mock.Anything, testUserID, mock.Anything).Return(nil, domain.ErrEntryNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/journal/entries/nope?user_id="+testUserID, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", "nope")
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		rec := httptest.NewRecorder()

		HandleGetEntry(svc)(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgEntryNotFoundError)
	})
}

func TestHandleJournalAnalytics(t *testing.T) {
	svc := new(MockJournalService)
	svc.On("GetAnalytics", mock.Anything, testUserID).Return(&domain.JournalAnalytics{
		TotalQuests: 3,
		Emotions:    map[string]int{"Hopeful": 2, "Anxious": 1},
		Classes:     map[string]int{"Dawn Keeper": 3},
	}, nil)

	rec := getRequest(HandleJournalAnalytics(svc), "/api/v1/journal/analytics?user_id="+testUserID)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.JournalAnalytics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalQuests)
	assert.Equal(t, 2, resp.Emotions["Hopeful"])
}
