package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"serveease/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const remoteTimeout = 10 * time.Second

const systemInstruction = "You are a helpful support assistant for a service booking platform. " +
	"Keep responses short, friendly, and action-oriented. " +
	"If unsure, suggest checking booking details or using the booking form."

// RemoteResponder answers through the Gemini API. Construction fails if
// no API key is configured; the resolver then simply runs without it.
// Attempt errors are swallowed by the resolver, so a remote outage
// degrades silently to the local rule responder.
type RemoteResponder struct {
	model *genai.GenerativeModel
}

// NewRemoteResponder builds a Gemini-backed responder for the given
// model name.
func NewRemoteResponder(apiKey, modelName string) (*RemoteResponder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("assistant: missing Gemini API key")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("assistant: create Gemini client: %w", err)
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.4)
	model.SetMaxOutputTokens(220)
	return &RemoteResponder{model: model}, nil
}

func (r *RemoteResponder) Attempt(ctx context.Context, message string, history []models.ChatMessage, faqs []models.FaqEntry) (*Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, remoteTimeout)
	defer cancel()

	chat := r.model.StartChat()
	chat.History = buildHistory(faqs, history)

	resp, err := chat.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	answer := strings.TrimSpace(sb.String())
	if answer == "" {
		return nil, fmt.Errorf("gemini returned an empty answer")
	}

	return &Reply{
		Answer:  answer,
		Related: relatedQuestions(faqs, ""),
	}, nil
}

// buildHistory turns the FAQ context plus the prior conversation into
// Gemini chat history. The caller passes the log as it stood before the
// current message was appended, so the message is not duplicated.
func buildHistory(faqs []models.FaqEntry, history []models.ChatMessage) []*genai.Content {
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []genai.Part{genai.Text(buildContext(faqs))},
	}}
	for _, msg := range history {
		role := "user"
		if msg.Role == models.RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

func buildContext(faqs []models.FaqEntry) string {
	var sb strings.Builder
	sb.WriteString(systemInstruction)
	if len(faqs) > 0 {
		sb.WriteString("\nFAQs:")
		for _, faq := range faqs {
			sb.WriteString(fmt.Sprintf("\n- Q: %s\n  A: %s", faq.Question, faq.Answer))
		}
	}
	return sb.String()
}
