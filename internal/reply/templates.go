package reply

import "hustlebot/internal/intent"

// TemplateSet maps each intent to its canned replies. A template may carry
// the {fact} placeholder, filled from the knowledge table at selection time.
type TemplateSet map[intent.Kind][]string

// For returns the templates registered for kind.
func (ts TemplateSet) For(kind intent.Kind) []string {
	return ts[kind]
}

// Defaults returns a fresh copy of the built-in templates.
func Defaults() TemplateSet {
	return TemplateSet{
		intent.Greeting: {
			"Yo yo yo! Welcome to the grind. 💪",
			"Hey hey! Ready to get this bread?",
			"What's good! Let's make some moves today.",
			"Ayy, the future millionaire has logged on!",
		},
		intent.Joke: {
			"Why did the entrepreneur cross the road? To disrupt the chicken industry. 🐔",
			"I told my landlord rent is my passive income strategy. He said eviction is passive too.",
			"Why don't dropshippers play poker? Too many margin calls.",
		},
		intent.Stock: {
			"Stocks only go up! (This is not financial advice.) 📈",
			"Diamond hands, my friend. Diamond hands. 💎",
			"Buy low, sell high. You're welcome for the alpha.",
			"The real portfolio was the hustle we built along the way.",
		},
		intent.BusinessIdea: {
			"Uber, but for walking dogs on the moon. Trust me, it's a trillion dollar market.",
			"An app that reminds you to drink water, except it costs $99 a month. Premium hydration.",
			"Subscription boxes for subscription boxes. Meta. Disruptive. Genius.",
			"NFT business cards. Your network IS your net worth, on the blockchain.",
		},
		intent.Dropship: {
			"Dropshipping is easy: find a product, mark it up 400%, run some ads, retire by Friday.",
			"Step one: Shopify store. Step two: viral TikTok. Step three: Lambo. It's basically science.",
			"The best products to dropship are the ones nobody needs but everybody buys at 2am.",
		},
		intent.General: {
			"Great question! Here's what I've got: {fact}",
			"Let me check the local knowledge base... {fact}",
			"Hmm, big question. The short version: knowledge is the best investment.",
		},
		intent.Fallback: {
			"Not gonna lie, I didn't catch that. Try asking for a business idea or a joke!",
			"My circuits are optimized for hustle, not whatever that was. Ask me about stocks!",
			"I only speak money and memes. Try me again.",
		},
	}
}
