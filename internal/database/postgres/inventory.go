package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
	"github.com/osse101/LoneWanderer_Go/internal/repository"
)

// InventoryRepository implements the inventory repository for PostgreSQL
type InventoryRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(pool *pgxpool.Pool) repository.Inventory {
	return &InventoryRepository{pool: pool}
}

// AddItem inserts a newly earned item and fills in its ID and CreatedAt
func (r *InventoryRepository) AddItem(ctx context.Context, item *domain.InventoryItem) error {
	userUUID, err := uuid.Parse(item.UserID)
	if err != nil {
		return fmt.Errorf("%w: invalid user id: %v", domain.ErrInvalidInput, err)
	}

	var entryID any
	if item.JournalEntryID != "" {
		entryUUID, err := uuid.Parse(item.JournalEntryID)
		if err != nil {
			return fmt.Errorf("%w: invalid journal entry id: %v", domain.ErrInvalidInput, err)
		}
		entryID = entryUUID
	}

	err = r.pool.QueryRow(ctx, `
		INSERT INTO user_inventory (user_id, journal_entry_id, item_name, item_effect, is_equipped)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		userUUID, entryID, item.ItemName, item.ItemEffect, item.IsEquipped,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to insert inventory item: %v", domain.ErrDatabaseError, err)
	}

	return nil
}

// ListItems returns all of a user's items, newest first
func (r *InventoryRepository) ListItems(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id: %v", domain.ErrInvalidInput, err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, COALESCE(journal_entry_id::text, ''), item_name, item_effect, is_equipped, created_at
		FROM user_inventory
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userUUID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query inventory: %v", domain.ErrDatabaseError, err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.JournalEntryID,
			&item.ItemName, &item.ItemEffect, &item.IsEquipped, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan inventory item: %v", domain.ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read inventory rows: %v", domain.ErrDatabaseError, err)
	}

	return items, nil
}

// SetEquipped toggles the equip flag on one of the user's items
func (r *InventoryRepository) SetEquipped(ctx context.Context, userID, itemID string, equipped bool) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("%w: invalid user id: %v", domain.ErrInvalidInput, err)
	}
	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return fmt.Errorf("%w: invalid item id: %v", domain.ErrInvalidInput, err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE user_inventory SET is_equipped = $3
		WHERE user_id = $1 AND id = $2`,
		userUUID, itemUUID, equipped,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to update inventory item: %v", domain.ErrDatabaseError, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}
