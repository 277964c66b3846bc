package nlp

import (
	"regexp"
	"strings"
)

// wordPattern matches maximal runs of ASCII letters and digits. Everything
// else (punctuation, whitespace, symbols) is a token boundary and is dropped.
var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// Tokenizer lower-cases text, splits it into alphanumeric runs and removes
// stopwords. The stopword set is fixed at construction.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a tokenizer with the default English stopword set.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{stopwords: defaultStopwords()}
}

// NewTokenizerWithStopwords creates a tokenizer over a caller-supplied
// stopword list, replacing the default set entirely.
func NewTokenizerWithStopwords(words []string) *Tokenizer {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: m}
}

// Tokenize returns the content-bearing words of text in order, duplicates
// preserved. Any input, including the empty string, yields a possibly empty
// slice rather than an error.
func (t *Tokenizer) Tokenize(text string) []string {
	raw := wordPattern.FindAllString(strings.ToLower(text), -1)
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, isStop := t.stopwords[tok]; isStop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "is", "are", "was", "were", "am", "i", "you", "he", "she", "it",
		"and", "or", "of", "to", "in", "on", "for", "with", "that", "this", "these", "those",
		"what", "how", "why", "when", "which", "do", "does", "did", "please", "me",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
