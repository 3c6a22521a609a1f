package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"serveease/models"
)

func sampleFaqs() []models.FaqEntry {
	return []models.FaqEntry{
		{Question: "How is pricing calculated?", Answer: "Prices are fixed per service.", Tag: "pricing"},
		{Question: "How do I cancel a booking?", Answer: "Cancel for free up to 24h before.", Tag: "cancellation"},
		{Question: "How do I book a service?", Answer: "Pick a service and a time slot.", Tag: "booking"},
		{Question: "What payment methods do you accept?", Answer: "All major cards.", Tag: "payment"},
	}
}

// stubResponder scripts a responder for chain-order tests.
type stubResponder struct {
	reply *Reply
	err   error
	calls int
}

func (s *stubResponder) Attempt(ctx context.Context, message string, history []models.ChatMessage, faqs []models.FaqEntry) (*Reply, error) {
	s.calls++
	return s.reply, s.err
}

func TestSubmitBlankMessageIsNoOp(t *testing.T) {
	r := NewResolver(NewLocalRuleResponder())
	r.SetFaqs(sampleFaqs())
	before := len(r.State().Messages)

	for _, text := range []string{"", "   ", "\n\t"} {
		if err := r.SubmitUserMessage(context.Background(), text); err != nil {
			t.Fatalf("blank submit: %v", err)
		}
	}

	if got := len(r.State().Messages); got != before {
		t.Errorf("message log grew from %d to %d on blank input", before, got)
	}
}

func TestCancellationKeywordResolvesTaggedFaq(t *testing.T) {
	r := NewResolver(NewLocalRuleResponder())
	r.SetFaqs(sampleFaqs())

	if err := r.SubmitUserMessage(context.Background(), "Can I cancel my appointment?"); err != nil {
		t.Fatalf("SubmitUserMessage: %v", err)
	}

	state := r.State()
	last := state.Messages[len(state.Messages)-1]
	if last.Role != models.RoleAssistant {
		t.Fatalf("last message role: got %s, want assistant", last.Role)
	}
	if last.Content != "Cancel for free up to 24h before." {
		t.Errorf("answer: got %q, want the cancellation FAQ answer", last.Content)
	}

	for _, suggestion := range state.Suggestions {
		if suggestion == "How do I cancel a booking?" {
			t.Error("suggestions must exclude the matched entry's own question")
		}
	}
	if len(state.Suggestions) != 3 {
		t.Errorf("got %d suggestions, want 3", len(state.Suggestions))
	}
}

func TestUserMessageAppendedBeforeReply(t *testing.T) {
	failing := &stubResponder{err: errors.New("remote down")}
	r := NewResolver(failing) // no fallback in the chain
	r.SetFaqs(sampleFaqs())

	err := r.SubmitUserMessage(context.Background(), "hello there")
	if !errors.Is(err, ErrNoResponder) {
		t.Fatalf("got %v, want ErrNoResponder", err)
	}

	state := r.State()
	last := state.Messages[len(state.Messages)-1]
	if last.Role != models.RoleUser || last.Content != "hello there" {
		t.Errorf("user message must land in the log even when the turn fails: %+v", last)
	}
	if state.IsAwaitingReply {
		t.Error("awaiting flag must reset after a failed turn")
	}
	if r.LastError() == "" {
		t.Error("failed turn must record an error")
	}
}

func TestResponderChainFallsThrough(t *testing.T) {
	remote := &stubResponder{err: errors.New("timeout")}
	r := NewResolver(remote, NewLocalRuleResponder())
	r.SetFaqs(sampleFaqs())

	if err := r.SubmitUserMessage(context.Background(), "what does it cost?"); err != nil {
		t.Fatalf("SubmitUserMessage: %v", err)
	}
	if remote.calls != 1 {
		t.Errorf("remote responder attempted %d times, want 1", remote.calls)
	}

	state := r.State()
	last := state.Messages[len(state.Messages)-1]
	if last.Content != "Prices are fixed per service." {
		t.Errorf("fallback answer: got %q", last.Content)
	}
}

func TestFirstResponderWins(t *testing.T) {
	remote := &stubResponder{reply: &Reply{Answer: "remote answer", Related: []string{"q1", "q2", "q3", "q4"}}}
	local := &stubResponder{reply: &Reply{Answer: "local answer"}}
	r := NewResolver(remote, local)

	if err := r.SubmitUserMessage(context.Background(), "anything"); err != nil {
		t.Fatalf("SubmitUserMessage: %v", err)
	}
	if local.calls != 0 {
		t.Error("local responder must not run when remote succeeds")
	}

	state := r.State()
	last := state.Messages[len(state.Messages)-1]
	if last.Content != "remote answer" {
		t.Errorf("got %q, want the remote answer", last.Content)
	}
	if len(state.Suggestions) != 3 {
		t.Errorf("suggestions must be capped at 3, got %d", len(state.Suggestions))
	}
}

func TestSuggestionsReplacedWholesale(t *testing.T) {
	r := NewResolver(NewLocalRuleResponder())
	r.SetFaqs(sampleFaqs())

	initial := r.State().Suggestions
	if len(initial) != 3 {
		t.Fatalf("initial suggestions: got %d, want first 3 questions", len(initial))
	}

	if err := r.SubmitUserMessage(context.Background(), "how do I pay?"); err != nil {
		t.Fatalf("SubmitUserMessage: %v", err)
	}
	after := r.State().Suggestions
	for _, suggestion := range after {
		if suggestion == "What payment methods do you accept?" {
			t.Error("matched payment question must not appear in its own suggestions")
		}
	}
}

func TestEmptyFaqSetDegradesGracefully(t *testing.T) {
	r := NewResolver(NewLocalRuleResponder())
	// SetFaqs never called: the reference set has not loaded yet.

	if err := r.SubmitUserMessage(context.Background(), "how do I cancel?"); err != nil {
		t.Fatalf("SubmitUserMessage: %v", err)
	}

	state := r.State()
	last := state.Messages[len(state.Messages)-1]
	if !strings.Contains(last.Content, "I can help with pricing") {
		t.Errorf("want fallback answer, got %q", last.Content)
	}
	if len(state.Suggestions) != 0 {
		t.Errorf("want no suggestions with empty FAQ set, got %v", state.Suggestions)
	}
}

func TestMessageOrderAndUniqueIDs(t *testing.T) {
	r := NewResolver(NewLocalRuleResponder())
	r.SetFaqs(sampleFaqs())

	ctx := context.Background()
	for _, text := range []string{"price?", "book me", "help"} {
		if err := r.SubmitUserMessage(ctx, text); err != nil {
			t.Fatalf("SubmitUserMessage: %v", err)
		}
	}

	state := r.State()
	// greeting + 3 turns of user+assistant
	if got := len(state.Messages); got != 7 {
		t.Fatalf("got %d messages, want 7", got)
	}
	seen := map[string]bool{}
	for i, msg := range state.Messages {
		if seen[msg.ID] {
			t.Errorf("duplicate message id %s", msg.ID)
		}
		seen[msg.ID] = true
		wantRole := models.RoleAssistant
		if i%2 == 1 {
			wantRole = models.RoleUser
		}
		if msg.Role != wantRole {
			t.Errorf("message %d: role %s, want %s", i, msg.Role, wantRole)
		}
	}
}
