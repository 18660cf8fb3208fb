package domain

// QuestCompletionXP is the fixed reward for every completed quest.
const QuestCompletionXP = 25

// XPPerLevel is the amount of XP that advances one level.
// Level is derived as xp/XPPerLevel + 1 and is owned by the store: the
// increment statement recomputes it atomically with the XP update.
const XPPerLevel = 100

// UserStats holds a user's gamification counters.
type UserStats struct {
	UserID string `json:"user_id"`
	XP     int64  `json:"xp"`
	Level  int    `json:"level"`
}
