package domain

// Quest is the fantasy framing generated for a single journal entry.
// All fields are plain prose; none may be empty in a valid generation result.
type Quest struct {
	Emotion          string `json:"emotion"`
	Class            string `json:"class"`
	Realm            string `json:"realm"`
	RealmDescription string `json:"realm_description"`
	Item             string `json:"item"`
	ItemEffect       string `json:"item_effect"`
	Quest            string `json:"quest"`
	Transformation   string `json:"transformation"`
}

// Insight is the reflective commentary paired 1:1 with a Quest.
type Insight struct {
	Summary          string `json:"summary"`
	GrowthAdvice     string `json:"growth_advice"`
	EmotionalPattern string `json:"emotional_pattern"`
}

// QuestResult is the full output of one generation call.
type QuestResult struct {
	Quest   Quest   `json:"quest"`
	Insight Insight `json:"insight"`
}

// Fixed values of the Quest of Introspection, the deterministic fallback the
// model is instructed to return for entries with no discernible emotional
// content. The generator never synthesizes these in code; they exist so tests
// and callers can recognize the fallback.
const (
	IntrospectionClass = "Mindful Explorer"
	IntrospectionRealm = "The Quiet Glade"
	IntrospectionItem  = "Whispering Compass"
)

// IntrospectionEmotions are the emotion labels the fallback quest may carry.
var IntrospectionEmotions = map[string]bool{
	"Searching": true,
	"Unclear":   true,
}

// IsIntrospection reports whether a result is the fixed fallback quest.
func (r QuestResult) IsIntrospection() bool {
	return r.Quest.Class == IntrospectionClass &&
		r.Quest.Realm == IntrospectionRealm &&
		r.Quest.Item == IntrospectionItem
}
