package repository

import (
	"context"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
)

// Stats defines the interface for user stats persistence
type Stats interface {
	// IncrementXP atomically adds XP to a user, recomputing the level in the
	// same statement, and returns the resulting stats. The user's stats row
	// is created on first award.
	IncrementXP(ctx context.Context, userID string, amount int64) (*domain.UserStats, error)

	// GetStats returns a user's current stats. Users with no awards yet get
	// zero XP at level one rather than domain.ErrUserNotFound.
	GetStats(ctx context.Context, userID string) (*domain.UserStats, error)
}
