package reply

import "strings"

// knowledgeMiss is returned when no fact keyword matches.
const knowledgeMiss = "I don't have that one locally. My knowledge base is small but mighty."

// Fact is one canned knowledge entry. Keyword is stored lowercased.
type Fact struct {
	Keyword string
	Text    string
}

// Knowledge is the local fact table, scanned in order.
type Knowledge []Fact

// Lookup returns the first fact whose keyword appears in text, or the miss
// message. It is a pure function of its input.
func (k Knowledge) Lookup(text string) string {
	t := strings.ToLower(text)
	for _, f := range k {
		if strings.Contains(t, f.Keyword) {
			return f.Text
		}
	}
	return knowledgeMiss
}

// DefaultKnowledge returns a fresh copy of the built-in fact table.
func DefaultKnowledge() Knowledge {
	return Knowledge{
		{Keyword: "photosynthesis", Text: "Photosynthesis is how plants turn sunlight, water, and carbon dioxide into sugar and oxygen. Nature's original passive income. 🌱"},
		{Keyword: "compound interest", Text: "Compound interest is interest earning interest on itself. Einstein allegedly called it the eighth wonder of the world."},
		{Keyword: "inflation", Text: "Inflation is the rate at which prices rise and purchasing power falls. Your money's silent gym membership fee."},
		{Keyword: "bitcoin", Text: "Bitcoin is a decentralized digital currency secured by proof-of-work mining. Volatile enough to be a personality trait."},
	}
}
