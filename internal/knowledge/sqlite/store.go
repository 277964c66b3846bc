// Package sqlite provides a SQLite-backed knowledge store so trained Q/A
// pairs survive restarts without an explicit save step.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"faqbot/internal/domain"
)

// Store keeps records in SQLite and mirrors them in memory so All is cheap
// on the matching hot path. Insertion order is preserved via rowid.
type Store struct {
	mu    sync.RWMutex
	db    *sql.DB
	pairs []domain.QAPair
}

// NewStore opens (creating if needed) the database at path and loads all
// existing records into the in-memory mirror.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	if err := s.loadAll(); err != nil {
		db.Close()
		return nil, fmt.Errorf("loading records: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS qa_pairs (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) loadAll() error {
	rows, err := s.db.Query(`SELECT id, question, answer, created_at FROM qa_pairs ORDER BY seq`)
	if err != nil {
		return err
	}
	defer rows.Close()
	var pairs []domain.QAPair
	for rows.Next() {
		var p domain.QAPair
		if err := rows.Scan(&p.ID, &p.Question, &p.Answer, &p.Created); err != nil {
			return err
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	s.pairs = pairs
	return nil
}

// Add inserts a new record and appends it to the in-memory mirror.
func (s *Store) Add(question, answer string) (domain.QAPair, error) {
	p := domain.QAPair{
		ID:       uuid.NewString(),
		Question: question,
		Answer:   answer,
		Created:  time.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT INTO qa_pairs (id, question, answer, created_at) VALUES (?, ?, ?, ?)`,
		p.ID, p.Question, p.Answer, p.Created,
	)
	if err != nil {
		return domain.QAPair{}, fmt.Errorf("inserting pair: %w", err)
	}
	s.pairs = append(s.pairs, p)
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

func (s *Store) Close() error {
	return s.db.Close()
}
