package repository

import (
	"context"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
)

// Journal defines the interface for journal entry persistence
type Journal interface {
	// CreateEntry inserts a finished entry and fills in its ID and CreatedAt.
	CreateEntry(ctx context.Context, entry *domain.JournalEntry) error

	// ListEntries returns a page of a user's entries, newest first, together
	// with the total entry count for pagination.
	ListEntries(ctx context.Context, userID string, limit, offset int) ([]domain.JournalEntry, int, error)

	// GetEntry returns a single entry owned by the user.
	GetEntry(ctx context.Context, userID, entryID string) (*domain.JournalEntry, error)

	// GetAnalytics aggregates emotion and class counts across all of a
	// user's entries.
	GetAnalytics(ctx context.Context, userID string) (*domain.JournalAnalytics, error)
}
