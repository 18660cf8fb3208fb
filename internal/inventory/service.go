package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
	"github.com/osse101/LoneWanderer_Go/internal/logger"
	"github.com/osse101/LoneWanderer_Go/internal/repository"
)

// Service defines the interface for inventory operations
type Service interface {
	// ListItems returns all of a user's sacred items, newest first.
	ListItems(ctx context.Context, userID string) ([]domain.InventoryItem, error)

	// SetEquipped equips or unequips one of the user's items.
	SetEquipped(ctx context.Context, userID, itemID string, equipped bool) error
}

// service implements the Service interface
type service struct {
	repo repository.Inventory
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory) Service {
	return &service{repo: repo}
}

func (s *service) ListItems(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}

	items, err := s.repo.ListItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.InventoryItem{}
	}
	return items, nil
}

func (s *service) SetEquipped(ctx context.Context, userID, itemID string, equipped bool) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}
	if itemID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgItemIDRequired)
	}

	if err := s.repo.SetEquipped(ctx, userID, itemID, equipped); err != nil {
		log.Error(LogMsgFailedToToggle, "error", err, "user_id", userID, "item_id", itemID)
		return err
	}

	log.Info(LogMsgItemEquipToggled, "user_id", userID, "item_id", itemID, "equipped", equipped)
	return nil
}
