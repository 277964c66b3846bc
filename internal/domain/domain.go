package domain

import "time"

// QAPair is a single trained question/answer record.
// Immutable once created; owned by the knowledge store.
type QAPair struct {
	ID       string
	Question string
	Answer   string
	Created  time.Time
}

// TermVector is a sparse bag-of-words profile of a text: term to weight.
// The Euclidean norm of the weights is 1, or 0 for an empty vector.
type TermVector map[string]float64

// Match is a stored record together with its similarity score against a query.
type Match struct {
	Index int
	Pair  QAPair
	Score float64
}

// KnowledgeStore is an ordered collection of QA pairs, append-only from the
// matcher's point of view. Index order is stable between cache rebuilds.
type KnowledgeStore interface {
	Add(question, answer string) (QAPair, error)
	All() []QAPair
	IsEmpty() bool
}
