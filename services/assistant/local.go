package assistant

import (
	"context"
	"strings"

	"serveease/models"
)

// LocalRuleResponder is the deterministic fallback at the end of the
// responder chain. It matches the message against a fixed keyword table
// and answers from the FAQ reference set. It runs fine on an empty FAQ
// set: the fallback answer with no suggestions.
type LocalRuleResponder struct{}

func NewLocalRuleResponder() *LocalRuleResponder {
	return &LocalRuleResponder{}
}

func (l *LocalRuleResponder) Attempt(ctx context.Context, message string, history []models.ChatMessage, faqs []models.FaqEntry) (*Reply, error) {
	normalized := strings.ToLower(message)

	var matchedTag string
	for _, rule := range keywordRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				matchedTag = rule.tag
				break
			}
		}
		if matchedTag != "" {
			break
		}
	}

	if matchedTag != "" {
		for _, faq := range faqs {
			if faq.Tag == matchedTag {
				return &Reply{
					Answer:  faq.Answer,
					Related: relatedQuestions(faqs, matchedTag),
				}, nil
			}
		}
	}

	return &Reply{
		Answer:  fallbackAnswer,
		Related: relatedQuestions(faqs, ""),
	}, nil
}

// relatedQuestions picks up to three FAQ questions whose tag differs
// from excludeTag; with an empty excludeTag the first three overall.
func relatedQuestions(faqs []models.FaqEntry, excludeTag string) []string {
	related := []string{}
	for _, faq := range faqs {
		if excludeTag != "" && faq.Tag == excludeTag {
			continue
		}
		related = append(related, faq.Question)
		if len(related) == 3 {
			break
		}
	}
	return related
}
