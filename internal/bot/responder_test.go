package bot

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faqbot/internal/knowledge/memory"
	"faqbot/internal/nlp"
)

func newStore(t *testing.T, pairs ...[2]string) *memory.Store {
	t.Helper()
	s := memory.NewStore()
	for _, qa := range pairs {
		_, err := s.Add(qa[0], qa[1])
		require.NoError(t, err)
	}
	return s
}

func TestRespond_EmptyMessage(t *testing.T) {
	r := New(newStore(t), nil, Thresholds{})
	assert.Equal(t, ReplyEmpty, r.Respond(""))
	assert.Equal(t, ReplyEmpty, r.Respond("   \t  "))
}

func TestRespond_QuickRules(t *testing.T) {
	r := New(newStore(t), nil, Thresholds{})
	assert.Equal(t, ReplyGreeting, r.Respond("hey there"))
	assert.Equal(t, ReplyThanks, r.Respond("thx a lot"))
	assert.Equal(t, ReplyHelp, r.Respond("I need support"))
}

func TestRespond_RulesAreWholeWord(t *testing.T) {
	r := New(newStore(t), nil, Thresholds{})
	// "this" must not trigger the "hi" greeting, "helpful" must not trigger "help"
	assert.Equal(t, ReplyFallback, r.Respond("this seems interesting"))
	assert.Equal(t, ReplyFallback, r.Respond("helpful tips elsewhere"))
}

func TestRespond_GreetingBeatsSimilarity(t *testing.T) {
	r := New(newStore(t, [2]string{"hello world greeting", "a stored answer"}), nil, Thresholds{})
	assert.Equal(t, ReplyGreeting, r.Respond("hello"))
}

func TestRespond_HighConfidence(t *testing.T) {
	answer := "I am JavaBot - a demo chatbot."
	r := New(newStore(t, [2]string{"what is your name", answer}), nil, Thresholds{})

	// Stored question vectorizes over {your, name}; the query over {s, your,
	// name}. Two shared terms give 2/(sqrt(2)*sqrt(3)).
	want := 2 / math.Sqrt(6)
	query := nlp.Vectorize(nlp.NewTokenizer().Tokenize("what's your name?"))
	match, ok := r.bestMatch(query)
	require.True(t, ok)
	assert.InDelta(t, want, match.Score, 1e-9)
	assert.GreaterOrEqual(t, match.Score, r.thresholds.High)

	got := r.Respond("what's your name?")
	assert.True(t, strings.HasPrefix(got, answer), got)
	assert.Equal(t, fmt.Sprintf("%s (confidence: %.2f)", answer, want), got)
}

func TestRespond_MediumConfidence(t *testing.T) {
	r := New(newStore(t, [2]string{"how can i save knowledge", "Use /save to persist Q/A pairs to disk."}), nil, Thresholds{})

	// Single shared term "save": (1/sqrt(2))*(1/sqrt(3)) = 0.41, between the
	// medium and high thresholds.
	got := r.Respond("save file")
	assert.Contains(t, got, "I think you might mean")
	assert.Contains(t, got, `"how can i save knowledge"`)
	assert.Contains(t, got, "Use /save to persist Q/A pairs to disk.")
	assert.Contains(t, got, fmt.Sprintf("(conf: %.2f)", 1/math.Sqrt(6)))
}

func TestRespond_TeachIntent(t *testing.T) {
	r := New(newStore(t), nil, Thresholds{})
	assert.Equal(t, ReplyTrainHint, r.Respond("teach yourself something"))
	assert.Equal(t, ReplyTrainHint, r.Respond("could we add a new faq entry"))
	assert.Equal(t, ReplyTrainHint, r.Respond("create another faq"))
}

func TestRespond_Fallback(t *testing.T) {
	r := New(newStore(t, [2]string{"what is your name", "an answer"}), nil, Thresholds{})
	assert.Equal(t, ReplyFallback, r.Respond("quantum flux capacitors"))
}

func TestRespond_TieKeepsEarliestIndex(t *testing.T) {
	r := New(newStore(t,
		[2]string{"reset password", "first answer"},
		[2]string{"reset password", "second answer"},
	), nil, Thresholds{})
	got := r.Respond("reset password")
	assert.True(t, strings.HasPrefix(got, "first answer"), got)
}

func TestRebuildCache_TracksStoreLength(t *testing.T) {
	store := newStore(t)
	r := New(store, nil, Thresholds{})
	assert.Len(t, r.cache, 0)
	for i := 0; i < 10; i++ {
		_, err := store.Add(fmt.Sprintf("question %d", i), fmt.Sprintf("answer %d", i))
		require.NoError(t, err)
		r.RebuildCache()
		assert.Len(t, r.cache, len(store.All()))
	}
}

func TestRebuildCache_Idempotent(t *testing.T) {
	store := newStore(t,
		[2]string{"what is your name", "a"},
		[2]string{"what can you do", "b"},
	)
	r := New(store, nil, Thresholds{})
	first := r.cache
	r.RebuildCache()
	assert.Equal(t, first, r.cache)
}

func TestSetStore_SwapsAndRebuilds(t *testing.T) {
	r := New(newStore(t, [2]string{"old question words", "old answer"}), nil, Thresholds{})
	require.Len(t, r.cache, 1)

	next := newStore(t,
		[2]string{"shipping rates overseas", "Overseas shipping is a flat fee."},
		[2]string{"refund policy details", "Refunds within 30 days."},
	)
	r.SetStore(next)
	assert.Len(t, r.cache, 2)
	got := r.Respond("shipping rates overseas")
	assert.True(t, strings.HasPrefix(got, "Overseas shipping is a flat fee."), got)
}

func TestRespond_CustomThresholds(t *testing.T) {
	store := newStore(t, [2]string{"how can i save knowledge", "Use /save."})
	// Raise the high threshold above the 0.41 partial-overlap score so the
	// same query drops from the medium tier to the fallback.
	r := New(store, nlp.NewTokenizer(), Thresholds{High: 0.9, Medium: 0.5})
	assert.Equal(t, ReplyFallback, r.Respond("save file"))
}
