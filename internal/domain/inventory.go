package domain

import "time"

// InventoryItem is a sacred item found on a completed quest. Items are
// created alongside the journal entry that produced them and are never
// deleted; the only mutation is the equip toggle.
type InventoryItem struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	JournalEntryID string    `json:"journal_entry_id"`
	ItemName       string    `json:"item_name"`
	ItemEffect     string    `json:"item_effect"`
	IsEquipped     bool      `json:"is_equipped"`
	CreatedAt      time.Time `json:"created_at"`
}
