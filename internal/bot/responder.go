package bot

import (
	"fmt"
	"strings"

	"faqbot/internal/domain"
	"faqbot/internal/nlp"
)

// Thresholds are the confidence cut-offs for the tiered decision policy.
type Thresholds struct {
	High   float64 // at or above: return the stored answer directly
	Medium float64 // at or above: suggest the best candidate instead
}

// DefaultThresholds are tuned for short FAQ questions; High can be lowered
// once the knowledge base grows.
func DefaultThresholds() Thresholds { return Thresholds{High: 0.55, Medium: 0.30} }

// Responder matches free-text messages against a knowledge store and picks a
// reply. It keeps one cached term vector per stored question, index-aligned
// with the store. The cache must be rebuilt after every store mutation and
// after every store swap, before the next Respond call.
//
// Responder is not internally synchronized: concurrent Respond calls against
// an unchanging cache are fine, but RebuildCache and SetStore require
// exclusive access.
type Responder struct {
	tokenizer  *nlp.Tokenizer
	store      domain.KnowledgeStore
	thresholds Thresholds
	rules      []Rule
	cache      []domain.TermVector
}

// New creates a Responder over the given store and rebuilds the cache once.
// A nil tokenizer selects the default stopword set; zero thresholds select
// the defaults.
func New(store domain.KnowledgeStore, tokenizer *nlp.Tokenizer, thresholds Thresholds) *Responder {
	if tokenizer == nil {
		tokenizer = nlp.NewTokenizer()
	}
	if thresholds.High == 0 && thresholds.Medium == 0 {
		thresholds = DefaultThresholds()
	}
	r := &Responder{
		tokenizer:  tokenizer,
		store:      store,
		thresholds: thresholds,
		rules:      DefaultRules(),
	}
	r.RebuildCache()
	return r
}

// RebuildCache recomputes the per-question vectors from the current store in
// order, discarding the previous cache wholesale. Must be called after every
// store mutation.
func (r *Responder) RebuildCache() {
	pairs := r.store.All()
	cache := make([]domain.TermVector, 0, len(pairs))
	for _, p := range pairs {
		cache = append(cache, nlp.Vectorize(r.tokenizer.Tokenize(p.Question)))
	}
	r.cache = cache
}

// SetStore swaps the backing store and rebuilds the cache synchronously.
func (r *Responder) SetStore(store domain.KnowledgeStore) {
	r.store = store
	r.RebuildCache()
}

// Respond maps a message to a reply. It never fails: malformed or empty input
// degrades to a fixed prompt, and a knowledge base with no good match falls
// through to the teach hint or the final fallback.
func (r *Responder) Respond(message string) string {
	m := strings.TrimSpace(message)
	if m == "" {
		return ReplyEmpty
	}

	low := strings.ToLower(m)
	for _, rule := range r.rules {
		if rule.Pattern.MatchString(low) {
			return rule.Reply
		}
	}

	query := nlp.Vectorize(r.tokenizer.Tokenize(m))
	best, ok := r.bestMatch(query)
	if ok && best.Score >= r.thresholds.High {
		return fmt.Sprintf("%s (confidence: %.2f)", best.Pair.Answer, best.Score)
	}
	if ok && best.Score >= r.thresholds.Medium {
		return fmt.Sprintf(
			"I think you might mean: %q\nAnswer: %s\n(If this isn't what you meant, you can teach me with /train.)\n(conf: %.2f)",
			best.Pair.Question, best.Pair.Answer, best.Score,
		)
	}

	if trainFAQPattern.MatchString(low) || teachPattern.MatchString(low) {
		return ReplyTrainHint
	}
	return ReplyFallback
}

// bestMatch scores the query against every cached question vector and returns
// the best one. Comparison is strict greater-than, so equal scores keep the
// earliest index. Returns false when nothing scores above zero.
func (r *Responder) bestMatch(query domain.TermVector) (domain.Match, bool) {
	bestScore := 0.0
	bestIdx := -1
	for i, vec := range r.cache {
		if score := nlp.Cosine(query, vec); score > bestScore {
			bestScore, bestIdx = score, i
		}
	}
	if bestIdx < 0 {
		return domain.Match{}, false
	}
	return domain.Match{Index: bestIdx, Pair: r.store.All()[bestIdx], Score: bestScore}, true
}
