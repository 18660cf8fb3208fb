package inventory

// Error message constants
const (
	ErrMsgUserIDRequired = "user ID is required"
	ErrMsgItemIDRequired = "item ID is required"
)

// Log message constants
const (
	LogMsgItemEquipToggled = "inventory item equip state changed"
	LogMsgFailedToToggle   = "failed to change equip state"
)
