package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"serveease/models"
	"serveease/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const greeting = "Hi! I can help with pricing, booking, cancellations, and availability."

// Resolver owns the session-scoped conversation state and drives the
// responder chain for each user turn. All state is mutex-protected; a
// turn is Idle -> AwaitingReply -> Idle.
type Resolver struct {
	responders []Responder

	mu          sync.Mutex
	faqs        []models.FaqEntry
	messages    []models.ChatMessage
	suggestions []string
	awaiting    bool
	lastErr     string
}

// NewResolver builds a resolver over the given responder chain, seeded
// with the assistant greeting. Responders are attempted in argument
// order.
func NewResolver(responders ...Responder) *Resolver {
	return &Resolver{
		responders:  responders,
		messages:    []models.ChatMessage{newMessage(models.RoleAssistant, greeting)},
		suggestions: []string{},
	}
}

// SetFaqs installs the FAQ reference set, loaded once at startup. Until
// it is called the resolver runs on an empty set: fallback answers and
// no suggestions. The initial suggestion list is the first three
// questions.
func (r *Resolver) SetFaqs(faqs []models.FaqEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faqs = faqs
	r.suggestions = relatedQuestions(faqs, "")
}

// SubmitUserMessage runs one conversation turn. Blank input is a no-op.
// The user message lands in the log immediately, before any responder
// runs, so the log stays ordered even when the reply fails.
func (r *Resolver) SubmitUserMessage(ctx context.Context, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	r.mu.Lock()
	// History snapshot excludes the message being appended, so the
	// remote responder does not see it twice.
	history := make([]models.ChatMessage, len(r.messages))
	copy(history, r.messages)
	faqs := r.faqs
	r.messages = append(r.messages, newMessage(models.RoleUser, trimmed))
	r.awaiting = true
	r.lastErr = ""
	r.mu.Unlock()

	var reply *Reply
	for _, responder := range r.responders {
		res, err := responder.Attempt(ctx, trimmed, history, faqs)
		if err != nil {
			utils.GetLogger().Debug("assistant: responder failed, trying next",
				zap.Error(err),
			)
			continue
		}
		if res != nil {
			reply = res
			break
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.awaiting = false

	if reply == nil {
		r.lastErr = ErrNoResponder.Error()
		return ErrNoResponder
	}

	r.messages = append(r.messages, newMessage(models.RoleAssistant, reply.Answer))
	related := reply.Related
	if len(related) > 3 {
		related = related[:3]
	}
	if related == nil {
		related = []string{}
	}
	r.suggestions = related
	return nil
}

// State returns a copy of the visible conversation state.
func (r *Resolver) State() models.ConversationState {
	r.mu.Lock()
	defer r.mu.Unlock()
	messages := make([]models.ChatMessage, len(r.messages))
	copy(messages, r.messages)
	suggestions := make([]string, len(r.suggestions))
	copy(suggestions, r.suggestions)
	return models.ConversationState{
		Messages:        messages,
		Suggestions:     suggestions,
		IsAwaitingReply: r.awaiting,
	}
}

// LastError reports the error recorded by the most recent failed turn.
func (r *Resolver) LastError() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

func newMessage(role, content string) models.ChatMessage {
	return models.ChatMessage{
		ID:        "msg-" + uuid.New().String(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}
