package domain

// Chat message roles. The wizard endpoint only accepts these two; the system
// role is reserved for the persona prompt and may not appear in client input.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MaxChatMessageLength bounds a single chat message, matching the client-side
// input limit.
const MaxChatMessageLength = 500

// ChatMessage is one turn of the wizard conversation. Order within a
// conversation is chronological and must be preserved.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ValidRole reports whether a role is accepted in client-supplied history.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAssistant
}
