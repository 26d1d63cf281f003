package assistant

import "strings"

// Keyword-matched canned replies. This is the whole "AI" when no Gemini
// key is configured; first matching rule wins.

type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{
		keywords: []string{"price", "cost"},
		reply:    "Our General Cleaning starts at ₦15,000, and Deep Cleaning starts at ₦35,000. Would you like to book?",
	},
	{
		keywords: []string{"deep"},
		reply:    "Deep cleaning includes scrubbing tiles, walls, behind appliances, and detailed dusting. Perfect for homes not cleaned professionally in a while.",
	},
	{
		keywords: []string{"book"},
		reply:    "You can book directly using the 'Book Now' button at the top of the page. It takes less than 60 seconds!",
	},
	{
		keywords: []string{"area", "location"},
		reply:    "We serve GRA, Trans Amadi, Peter Odili, Woji, and most areas in Port Harcourt.",
	},
}

const ruleFallbackReply = "I'd love to help with that. Please call our office at 0800-PH-CLEAN for a detailed answer."

func RuleReply(query string) string {
	q := strings.ToLower(query)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.reply
			}
		}
	}

	return ruleFallbackReply
}
