package assistant

import (
	"context"
	"errors"

	"serveease/models"
)

// ErrNoResponder is recorded when every responder in the chain failed to
// produce an answer.
var ErrNoResponder = errors.New("assistant: no responder produced an answer")

// Reply is a responder's answer plus up to three related follow-up
// questions. Related replaces the current suggestion list wholesale.
type Reply struct {
	Answer  string
	Related []string
}

// Responder is one strategy for answering a user message. Responders are
// attempted in fixed priority order; the first one to return a reply
// wins. An error means "skip me", not "abort the turn".
type Responder interface {
	Attempt(ctx context.Context, message string, history []models.ChatMessage, faqs []models.FaqEntry) (*Reply, error)
}
