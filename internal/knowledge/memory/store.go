package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"faqbot/internal/domain"
)

// Store is an in-memory, insertion-ordered knowledge store.
type Store struct {
	mu    sync.RWMutex
	pairs []domain.QAPair
}

func NewStore() *Store { return &Store{} }

// FromPairs creates a store pre-populated with existing records, preserving
// their order. Used when loading a snapshot from disk.
func FromPairs(pairs []domain.QAPair) *Store {
	s := &Store{pairs: make([]domain.QAPair, len(pairs))}
	copy(s.pairs, pairs)
	return s
}

// Add appends a new immutable QA record and returns it.
func (s *Store) Add(question, answer string) (domain.QAPair, error) {
	p := domain.QAPair{
		ID:       uuid.NewString(),
		Question: question,
		Answer:   answer,
		Created:  time.Now(),
	}
	s.mu.Lock()
	s.pairs = append(s.pairs, p)
	s.mu.Unlock()
	return p, nil
}

// All returns a snapshot of the records in insertion order.
func (s *Store) All() []domain.QAPair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.QAPair, len(s.pairs))
	copy(out, s.pairs)
	return out
}

func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pairs) == 0
}
