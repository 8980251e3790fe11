package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"mindguard/internal/models"
)

// ModelStore persists trained model snapshots, one file per user and target.
type ModelStore struct {
	root string
	mu   sync.RWMutex
}

func NewModelStore(root string) *ModelStore {
	os.MkdirAll(filepath.Join(root, "models"), 0o755)
	return &ModelStore{root: root}
}

func (s *ModelStore) path(userID, target string) string {
	return filepath.Join(s.root, "models", HashUserID(userID)+"_"+target+".json")
}

func (s *ModelStore) Save(ctx context.Context, userID string, snap models.ModelSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeJSON(s.path(userID, snap.Target), snap); err != nil {
		return fmt.Errorf("internal/storage/model_file.go Save: %w", err)
	}
	return nil
}

// Load returns ErrNotFound when no model was saved for the target.
func (s *ModelStore) Load(ctx context.Context, userID, target string) (*models.ModelSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var snap models.ModelSnapshot
	ok, err := readJSON(s.path(userID, target), &snap)
	if err != nil {
		return nil, fmt.Errorf("internal/storage/model_file.go Load: %w", err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &snap, nil
}

func (s *ModelStore) DeleteAll(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	matches, err := filepath.Glob(filepath.Join(s.root, "models", HashUserID(userID)+"_*.json"))
	if err != nil {
		return fmt.Errorf("internal/storage/model_file.go DeleteAll: %w", err)
	}
	for _, m := range matches {
		if err := removeIfExists(m); err != nil {
			return fmt.Errorf("internal/storage/model_file.go DeleteAll: %w", err)
		}
	}
	return nil
}
