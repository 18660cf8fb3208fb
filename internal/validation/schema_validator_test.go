package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validQuestResult = `{
	"quest": {
		"emotion": "Anxious",
		"class": "Storm Chaser",
		"realm": "The Howling Steppe",
		"realm_description": "A windswept plain where every gust carries a worry.",
		"item": "Anchor of Stillness",
		"item_effect": "Plants the bearer firmly when the winds of doubt rise.",
		"quest": "Cross the steppe without chasing a single gust.",
		"transformation": "The wanderer's cloak no longer billows; it settles."
	},
	"insight": {
		"summary": "You are carrying a lot of anticipatory worry.",
		"growth_advice": "Try naming one worry out loud before bed.",
		"emotional_pattern": "Your anxiety spikes around things that have not happened yet."
	}
}`

func TestValidateQuestResult(t *testing.T) {
	t.Run("accepts a complete result", func(t *testing.T) {
		assert.NoError(t, ValidateQuestResult([]byte(validQuestResult)))
	})

	t.Run("rejects missing quest object", func(t *testing.T) {
		err := ValidateQuestResult([]byte(`{"insight":{"summary":"s","growth_advice":"g","emotional_pattern":"p"}}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("rejects empty string field", func(t *testing.T) {
		payload := `{
			"quest": {
				"emotion": "", "class": "c", "realm": "r", "realm_description": "rd",
				"item": "i", "item_effect": "ie", "quest": "q", "transformation": "t"
			},
			"insight": {"summary": "s", "growth_advice": "g", "emotional_pattern": "p"}
		}`
		err := ValidateQuestResult([]byte(payload))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quest/emotion")
	})

	t.Run("rejects missing insight field", func(t *testing.T) {
		payload := `{
			"quest": {
				"emotion": "e", "class": "c", "realm": "r", "realm_description": "rd",
				"item": "i", "item_effect": "ie", "quest": "q", "transformation": "t"
			},
			"insight": {"summary": "s", "growth_advice": "g"}
		}`
		assert.Error(t, ValidateQuestResult([]byte(payload)))
	})

	t.Run("rejects extra fields", func(t *testing.T) {
		payload := `{
			"quest": {
				"emotion": "e", "class": "c", "realm": "r", "realm_description": "rd",
				"item": "i", "item_effect": "ie", "quest": "q", "transformation": "t",
				"bonus": "nope"
			},
			"insight": {"summary": "s", "growth_advice": "g", "emotional_pattern": "p"}
		}`
		assert.Error(t, ValidateQuestResult([]byte(payload)))
	})

	t.Run("rejects non-string field types", func(t *testing.T) {
		payload := `{
			"quest": {
				"emotion": 7, "class": "c", "realm": "r", "realm_description": "rd",
				"item": "i", "item_effect": "ie", "quest": "q", "transformation": "t"
			},
			"insight": {"summary": "s", "growth_advice": "g", "emotional_pattern": "p"}
		}`
		assert.Error(t, ValidateQuestResult([]byte(payload)))
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		err := ValidateQuestResult([]byte(`{"quest":`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse JSON data")
	})
}
