package models

import "time"

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry in the session-scoped conversation log.
// Creation order equals log order; ids are unique.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ConversationState is a snapshot of the resolver's visible state.
type ConversationState struct {
	Messages        []ChatMessage `json:"messages"`
	Suggestions     []string      `json:"suggestions"`
	IsAwaitingReply bool          `json:"isAwaitingReply"`
}
