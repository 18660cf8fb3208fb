package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
	"github.com/osse101/LoneWanderer_Go/internal/journal"
	"github.com/osse101/LoneWanderer_Go/internal/logger"
)

// ListEntriesResponse is a page of journal entries
type ListEntriesResponse struct {
	Entries []domain.JournalEntry `json:"entries"`
	Total   int                   `json:"total"`
	Limit   int                   `json:"limit"`
	Offset  int                   `json:"offset"`
}

// HandleListEntries returns a page of the user's journal
// @Summary List journal entries
// @Description Returns the user's journal entries, newest first
// @Tags journal
// @Produce json
// @Param user_id query string true "User ID"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} ListEntriesResponse
// @Failure 400 {object} ErrorResponse
// @Router /journal/entries [get]
func HandleListEntries(svc journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		limit, _ := strconv.Atoi(GetOptionalQueryParam(r, "limit", "0"))
		offset, _ := strconv.Atoi(GetOptionalQueryParam(r, "offset", "0"))

		entries, total, err := svc.ListEntries(r.Context(), userID, limit, offset)
		if err != nil {
			log.Error("Failed to list journal entries", "error", err, "user_id", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		limit = clampLimit(limit)
		if offset < 0 {
			offset = 0
		}

		respondJSON(w, http.StatusOK, ListEntriesResponse{
			Entries: entries,
			Total:   total,
			Limit:   limit,
			Offset:  offset,
		})
	}
}

// clampLimit mirrors the service-side pagination clamp for response metadata
func clampLimit(limit int) int {
	if limit <= 0 {
		return journal.DefaultPageSize
	}
	if limit > journal.MaxPageSize {
		return journal.MaxPageSize
	}
	return limit
}

// HandleGetEntry returns a single journal entry
// @Summary Get a journal entry
// @Description Returns one of the user's journal entries by ID
// @Tags journal
// @Produce json
// @Param id path string true "Entry ID"
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.JournalEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /journal/entries/{id} [get]
func HandleGetEntry(svc journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		entryID := chi.URLParam(r, "id")

		entry, err := svc.GetEntry(r.Context(), userID, entryID)
		if err != nil {
			log.Warn("Failed to get journal entry", "error", err, "user_id", userID, "entry_id", entryID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, entry)
	}
}

// HandleJournalAnalytics returns aggregate counts over the user's journal
// @Summary Journal analytics
// @Description Returns total quests plus emotion and class distributions
// @Tags journal
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.JournalAnalytics
// @Failure 400 {object} ErrorResponse
// @Router /journal/analytics [get]
func HandleJournalAnalytics(svc journal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		analytics, err := svc.GetAnalytics(r.Context(), userID)
		if err != nil {
			log.Error("Failed to get journal analytics", "error", err, "user_id", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, analytics)
	}
}
