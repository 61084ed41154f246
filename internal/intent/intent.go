package intent

import (
	"regexp"
	"strings"
)

// Kind is a response category resolved from user text.
type Kind string

const (
	Greeting     Kind = "greeting"
	Joke         Kind = "joke"
	Stock        Kind = "stock"
	BusinessIdea Kind = "business_idea"
	Dropship     Kind = "dropship"
	General      Kind = "general"
	Fallback     Kind = "fallback"
)

// rules is scanned in order and the first keyword hit wins. Matching is plain
// substring containment on the lowercased text, so embedded hits count
// ("idea" inside "ideation", "hi" inside "shipping").
var rules = []struct {
	kind     Kind
	keywords []string
}{
	{Greeting, []string{"hello", "hi", "hey", "good morning", "good evening", "what's up", "howdy"}},
	{Joke, []string{"joke", "funny", "laugh", "humor"}},
	{Stock, []string{"stock", "ticker", "share", "invest", "market", "portfolio"}},
	{BusinessIdea, []string{"business idea", "business", "startup", "idea", "entrepreneur", "hustle"}},
	{Dropship, []string{"dropship", "drop ship", "drop-ship", "shopify", "ecommerce", "e-commerce", "aliexpress"}},
	{General, []string{"what is", "what's", "who is", "who was", "how do", "how does", "why", "explain", "tell me about"}},
}

var tickerPattern = regexp.MustCompile(`\b[A-Z]{1,5}\b`)

// Detect maps free text to a Kind. It is total; text that matches nothing
// comes back as Fallback.
func Detect(message string) Kind {
	m := strings.ToLower(strings.TrimSpace(message))
	if m == "" {
		return Fallback
	}
	for _, r := range rules {
		if containsAny(m, r.keywords) {
			return r.kind
		}
	}
	// A bare all-uppercase token reads like a ticker symbol.
	if Ticker(message) != "" {
		return Stock
	}
	// Short trailing-question inputs get the knowledge path.
	if len(strings.Fields(m)) <= 2 && strings.HasSuffix(m, "?") {
		return General
	}
	return Fallback
}

// Ticker returns the first bare all-uppercase token of one to five letters in
// the original (non-lowercased) text, or "" when there is none.
func Ticker(text string) string {
	return tickerPattern.FindString(text)
}

// Kinds lists every Kind Detect can return.
func Kinds() []Kind {
	return []Kind{Greeting, Joke, Stock, BusinessIdea, Dropship, General, Fallback}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
