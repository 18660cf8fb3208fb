package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
	"github.com/osse101/LoneWanderer_Go/internal/repository"
)

// StatsRepository implements the stats repository for PostgreSQL
type StatsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(pool *pgxpool.Pool) repository.Stats {
	return &StatsRepository{pool: pool}
}

// IncrementXP atomically adds XP and recomputes the level in one statement.
// Concurrent awards serialize on the row; the derived level can never drift
// from the XP total.
func (r *StatsRepository) IncrementXP(ctx context.Context, userID string, amount int64) (*domain.UserStats, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id: %v", domain.ErrInvalidInput, err)
	}

	stats := &domain.UserStats{}
	err = r.pool.QueryRow(ctx, `
		INSERT INTO user_stats (user_id, xp, level, updated_at)
		VALUES ($1, $2, $2 / $3 + 1, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET xp = user_stats.xp + EXCLUDED.xp,
		    level = (user_stats.xp + EXCLUDED.xp) / $3 + 1,
		    updated_at = NOW()
		RETURNING user_id, xp, level`,
		userUUID, amount, int64(domain.XPPerLevel),
	).Scan(&stats.UserID, &stats.XP, &stats.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to increment xp: %v", domain.ErrDatabaseError, err)
	}

	return stats, nil
}

// GetStats returns a user's current stats. Users with no awards yet read as
// zero XP at level one.
func (r *StatsRepository) GetStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id: %v", domain.ErrInvalidInput, err)
	}

	stats := &domain.UserStats{}
	err = r.pool.QueryRow(ctx,
		`SELECT user_id, xp, level FROM user_stats WHERE user_id = $1`,
		userUUID,
	).Scan(&stats.UserID, &stats.XP, &stats.Level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.UserStats{UserID: userID, XP: 0, Level: 1}, nil
		}
		return nil, fmt.Errorf("%w: failed to get stats: %v", domain.ErrDatabaseError, err)
	}

	return stats, nil
}
