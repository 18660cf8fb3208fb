package repository

import (
	"context"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
)

// Inventory defines the interface for inventory persistence
type Inventory interface {
	// AddItem inserts a newly earned item and fills in its ID and CreatedAt.
	AddItem(ctx context.Context, item *domain.InventoryItem) error

	// ListItems returns all of a user's items, newest first.
	ListItems(ctx context.Context, userID string) ([]domain.InventoryItem, error)

	// SetEquipped toggles the equip flag on one of the user's items.
	// Returns domain.ErrItemNotFound when the item does not belong to the user.
	SetEquipped(ctx context.Context, userID, itemID string, equipped bool) error
}
