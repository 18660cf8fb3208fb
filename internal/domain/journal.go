package domain

import "time"

// JournalEntry is a persisted journal entry together with its generated quest
// and insight. A row only ever exists for a fully successful generation;
// partial results are never written.
type JournalEntry struct {
	ID                      string    `json:"id"`
	UserID                  string    `json:"user_id"`
	Text                    string    `json:"text"`
	Emotion                 string    `json:"emotion"`
	Class                   string    `json:"class"`
	Realm                   string    `json:"realm"`
	RealmDescription        string    `json:"realm_description"`
	Item                    string    `json:"item"`
	ItemEffect              string    `json:"item_effect"`
	Quest                   string    `json:"quest"`
	AvatarTransformation    string    `json:"avatar_transformation"`
	InsightSummary          string    `json:"insight_summary"`
	InsightEmotionalPattern string    `json:"insight_emotional_pattern"`
	InsightGrowthAdvice     string    `json:"insight_growth_advice"`
	CreatedAt               time.Time `json:"created_at"`
}

// NewJournalEntry builds an unsaved entry from a generation result.
func NewJournalEntry(userID, text string, result QuestResult) JournalEntry {
	return JournalEntry{
		UserID:                  userID,
		Text:                    text,
		Emotion:                 result.Quest.Emotion,
		Class:                   result.Quest.Class,
		Realm:                   result.Quest.Realm,
		RealmDescription:        result.Quest.RealmDescription,
		Item:                    result.Quest.Item,
		ItemEffect:              result.Quest.ItemEffect,
		Quest:                   result.Quest.Quest,
		AvatarTransformation:    result.Quest.Transformation,
		InsightSummary:          result.Insight.Summary,
		InsightEmotionalPattern: result.Insight.EmotionalPattern,
		InsightGrowthAdvice:     result.Insight.GrowthAdvice,
	}
}

// JournalAnalytics aggregates a user's journal history for the dashboard.
type JournalAnalytics struct {
	TotalQuests int            `json:"total_quests"`
	Emotions    map[string]int `json:"emotions"`
	Classes     map[string]int `json:"classes"`
}
