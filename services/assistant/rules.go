package assistant

// keywordRule maps substring keywords to an FAQ tag.
type keywordRule struct {
	tag      string
	keywords []string
}

var keywordRules = []keywordRule{
	{tag: "pricing", keywords: []string{"price", "cost", "fee", "rate", "charge"}},
	{tag: "booking", keywords: []string{"book", "booking", "reserve", "schedule"}},
	{tag: "cancellation", keywords: []string{"cancel", "refund", "reschedule"}},
	{tag: "availability", keywords: []string{"available", "availability", "slot", "time"}},
	{tag: "payment", keywords: []string{"pay", "payment", "invoice", "card"}},
	{tag: "support", keywords: []string{"help", "support", "contact", "issue"}},
}

const fallbackAnswer = "I can help with pricing, booking, cancellations, and availability. Try asking one of the suggested questions."
