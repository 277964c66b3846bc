// Package knowledge handles saving and loading knowledge base snapshots.
package knowledge

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"faqbot/internal/domain"
	"faqbot/internal/knowledge/memory"
)

// snapshotRecord is the on-disk YAML form of one QA pair.
type snapshotRecord struct {
	ID       string    `yaml:"id"`
	Question string    `yaml:"question"`
	Answer   string    `yaml:"answer"`
	Created  time.Time `yaml:"created"`
}

type snapshot struct {
	Pairs []snapshotRecord `yaml:"pairs"`
}

// Save writes the store's records to path as a YAML snapshot, creating
// directories as needed.
func Save(path string, store domain.KnowledgeStore) error {
	pairs := store.All()
	snap := snapshot{Pairs: make([]snapshotRecord, 0, len(pairs))}
	for _, p := range pairs {
		snap.Pairs = append(snap.Pairs, snapshotRecord{
			ID:       p.ID,
			Question: p.Question,
			Answer:   p.Answer,
			Created:  p.Created,
		})
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(&snap)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a YAML snapshot and returns a fresh in-memory store holding its
// records. The caller is expected to hand the result to Responder.SetStore,
// which rebuilds the vector cache.
func Load(path string) (*memory.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	pairs := make([]domain.QAPair, 0, len(snap.Pairs))
	for _, rec := range snap.Pairs {
		pairs = append(pairs, domain.QAPair{
			ID:       rec.ID,
			Question: rec.Question,
			Answer:   rec.Answer,
			Created:  rec.Created,
		})
	}
	return memory.FromPairs(pairs), nil
}
