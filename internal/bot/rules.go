package bot

import "regexp"

// Rule pairs a whole-word pattern over the lowercased message with a fixed
// reply. Rules are evaluated in order, before any similarity scoring, and the
// first match wins.
type Rule struct {
	Pattern *regexp.Regexp
	Reply   string
}

// Fixed replies used by the decision ladder.
const (
	ReplyEmpty     = "Say something — I'm listening!"
	ReplyGreeting  = "Hello! How can I help you today?"
	ReplyThanks    = "You're welcome! Anything else I can help with?"
	ReplyHelp      = "I can answer FAQs, take new Q/A pairs, or save/load my memory. Try asking a question."
	ReplyTrainHint = "You can train me using /train. Provide a question and answer to add to my knowledge base."
	ReplyFallback  = "I'm not sure I understand. You can rephrase, or teach me the correct response with /train."
)

// DefaultRules covers the quick intents: greeting, gratitude, help.
func DefaultRules() []Rule {
	return []Rule{
		{regexp.MustCompile(`\b(hi|hello|hey)\b`), ReplyGreeting},
		{regexp.MustCompile(`\b(thanks|thank you|thx)\b`), ReplyThanks},
		{regexp.MustCompile(`\b(help|support|assist)\b`), ReplyHelp},
	}
}

// Teach-FAQ intent, checked only after similarity scoring comes up short.
var (
	teachPattern    = regexp.MustCompile(`\bteach\b`)
	trainFAQPattern = regexp.MustCompile(`\b(add|create|train)\b.*\bfaq\b`)
)
