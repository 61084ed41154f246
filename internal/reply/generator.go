package reply

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"hustlebot/internal/intent"
	"hustlebot/internal/store"
)

// Rand is the slice of math/rand the generator draws from. Tests swap in a
// scripted source.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

const (
	// templateOdds is the probability a reply comes straight from the
	// template table instead of the intent's custom logic.
	templateOdds = 0.95

	factPlaceholder = "{fact}"
)

// Generator turns classified utterances into replies and records both sides
// of the exchange in the session log.
type Generator struct {
	store     *store.MemoryStore
	rand      Rand
	templates TemplateSet
	knowledge Knowledge
}

// NewGenerator wires the generator to its session log. A nil rng, templates
// or knowledge falls back to a time-seeded source and the built-ins.
func NewGenerator(st *store.MemoryStore, rng Rand, templates TemplateSet, knowledge Knowledge) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if templates == nil {
		templates = Defaults()
	}
	if knowledge == nil {
		knowledge = DefaultKnowledge()
	}
	return &Generator{store: st, rand: rng, templates: templates, knowledge: knowledge}
}

// Respond resolves the final intent for text, appends the user turn, composes
// a reply and appends it as the bot turn. The user turn is always recorded
// before the bot turn.
func (g *Generator) Respond(userID, text string, detected intent.Kind) string {
	kind := Resolve(text, detected)
	g.store.Append(userID, store.RoleUser, text)
	out := g.compose(kind, text)
	g.store.Append(userID, store.RoleBot, out)
	return out
}

// A joke match short-circuits everything else; the remaining groups are
// checked in order with the last match winning.
var jokeOverride = []string{"joke", "funny", "laugh"}

var overrideGroups = []struct {
	kind     intent.Kind
	keywords []string
}{
	{intent.Greeting, []string{"hello", "hi", "hey", "good morning", "what's up"}},
	{intent.Dropship, []string{"dropship", "drop ship", "shopify"}},
	{intent.BusinessIdea, []string{"business idea", "startup", "business", "idea"}},
	{intent.Stock, []string{"stock", "ticker", "invest", "market", "share"}},
}

// Resolve re-checks the text against the override groups and may disagree
// with the classifier's kind. The disagreement is part of the bot's observed
// behavior and stays as is.
func Resolve(text string, detected intent.Kind) intent.Kind {
	t := strings.ToLower(text)
	if containsAny(t, jokeOverride) {
		return intent.Joke
	}
	kind := detected
	for _, g := range overrideGroups {
		if containsAny(t, g.keywords) {
			kind = g.kind
		}
	}
	return kind
}

func (g *Generator) compose(kind intent.Kind, text string) string {
	if g.rand.Float64() < templateOdds {
		return g.templateReply(kind, text)
	}
	switch kind {
	case intent.Stock:
		return g.stockReply(text)
	case intent.General:
		return g.knowledge.Lookup(text)
	default:
		// Custom logic exists only for stock and general; every other kind
		// lands on the generic fallback pick.
		return g.templateReply(intent.Fallback, text)
	}
}

func (g *Generator) templateReply(kind intent.Kind, text string) string {
	lines := g.templates.For(kind)
	if len(lines) == 0 {
		lines = g.templates.For(intent.Fallback)
	}
	if len(lines) == 0 {
		return "Ask me for a business idea, a joke, or a stock take."
	}
	out := lines[g.rand.Intn(len(lines))]
	if strings.Contains(out, factPlaceholder) {
		out = strings.ReplaceAll(out, factPlaceholder, g.knowledge.Lookup(text))
	}
	return out
}

// stockReply answers the custom branch for stock questions. Live quotes are
// stubbed out.
func (g *Generator) stockReply(text string) string {
	if ticker := intent.Ticker(text); ticker != "" {
		return fmt.Sprintf("I can check %s for you — enable remote fetch to get live data. 📊", ticker)
	}
	return "Which ticker should I look at? Give me 1-5 capital letters, like AAPL or TSLA. 📈"
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
