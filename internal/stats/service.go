package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
	"github.com/osse101/LoneWanderer_Go/internal/logger"
	"github.com/osse101/LoneWanderer_Go/internal/metrics"
	"github.com/osse101/LoneWanderer_Go/internal/repository"
)

// Service defines the interface for stats operations
type Service interface {
	// AwardQuestXP grants the fixed quest completion reward and returns the
	// user's resulting stats.
	AwardQuestXP(ctx context.Context, userID string) (*domain.UserStats, error)

	// GetStats returns a user's current XP and level.
	GetStats(ctx context.Context, userID string) (*domain.UserStats, error)
}

// service implements the Service interface
type service struct {
	repo  repository.Stats
	cache *statsCache
}

// NewService creates a new stats service
func NewService(repo repository.Stats) Service {
	return &service{
		repo:  repo,
		cache: newStatsCache(CacheSize, CacheTTL),
	}
}

// AwardQuestXP grants the fixed reward. The increment is atomic in the store;
// the cache is written through with the returned stats.
func (s *service) AwardQuestXP(ctx context.Context, userID string) (*domain.UserStats, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}

	stats, err := s.repo.IncrementXP(ctx, userID, domain.QuestCompletionXP)
	if err != nil {
		log.Error(LogMsgFailedToAward, "error", err, "user_id", userID)
		return nil, err
	}

	s.cache.Set(userID, stats)
	metrics.XPAwarded.Add(float64(domain.QuestCompletionXP))

	log.Info(LogMsgXPAwarded, "user_id", userID, "xp", stats.XP, "level", stats.Level)
	return stats, nil
}

func (s *service) GetStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}

	if stats, ok := s.cache.Get(userID); ok {
		return stats, nil
	}

	stats, err := s.repo.GetStats(ctx, userID)
	if err != nil {
		// Invalid IDs are the caller's fault, everything else is the store's
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	s.cache.Set(userID, stats)
	return stats, nil
}
