package journal

// Pagination bounds for entry listings
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Persistence warnings returned alongside a successful generation. The quest
// itself is never discarded over a storage failure; callers surface the
// warning and move on.
const (
	WarningEntryNotSaved = "quest generated but could not be saved to your journal"
	WarningItemNotSaved  = "quest saved but the item could not be added to your inventory"
	WarningXPNotAwarded  = "quest saved but XP could not be awarded"
)

// Error message constants
const (
	ErrMsgUserIDRequired = "user ID is required"
)

// Log message constants
const (
	LogMsgQuestRecorded   = "quest recorded"
	LogMsgEntrySaveFailed = "failed to save journal entry"
	LogMsgItemSaveFailed  = "failed to save inventory item"
	LogMsgXPAwardFailed   = "failed to award quest XP"
)
