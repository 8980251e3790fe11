package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"mindguard/internal/models"
)

// InterventionStore keeps the completion log and the action plan of each user
// next to their check-in file.
type InterventionStore struct {
	root string
	now  func() time.Time
	mu   sync.RWMutex
}

func NewInterventionStore(root string) *InterventionStore {
	os.MkdirAll(filepath.Join(root, "users"), 0o755)
	return &InterventionStore{root: root, now: time.Now}
}

func (s *InterventionStore) logPath(userID string) string {
	return filepath.Join(s.root, "users", HashUserID(userID)+"_interventions.json")
}

func (s *InterventionStore) planPath(userID string) string {
	return filepath.Join(s.root, "users", HashUserID(userID)+"_plan.json")
}

// LogCompletion appends a completion entry stamped with the current time.
func (s *InterventionStore) LogCompletion(ctx context.Context, userID, name string) (models.InterventionLog, error) {
	op := "internal/storage/interventions_file.go LogCompletion"

	s.mu.Lock()
	defer s.mu.Unlock()

	logs := []models.InterventionLog{}
	if _, err := readJSON(s.logPath(userID), &logs); err != nil {
		return models.InterventionLog{}, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	entry := models.InterventionLog{
		ID:               uuid.NewString(),
		InterventionName: name,
		Date:             models.FormatDay(now),
		Timestamp:        now.UTC(),
	}
	logs = append(logs, entry)

	if err := writeJSON(s.logPath(userID), logs); err != nil {
		return models.InterventionLog{}, fmt.Errorf("%s: %w", op, err)
	}
	return entry, nil
}

func (s *InterventionStore) Logs(ctx context.Context, userID string) ([]models.InterventionLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := []models.InterventionLog{}
	if _, err := readJSON(s.logPath(userID), &logs); err != nil {
		return nil, fmt.Errorf("internal/storage/interventions_file.go Logs: %w", err)
	}
	return logs, nil
}

// AddToPlan records a planned intervention once. added is false for repeats.
func (s *InterventionStore) AddToPlan(ctx context.Context, userID, name string) (bool, error) {
	op := "internal/storage/interventions_file.go AddToPlan"

	s.mu.Lock()
	defer s.mu.Unlock()

	plan := []string{}
	if _, err := readJSON(s.planPath(userID), &plan); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if slices.Contains(plan, name) {
		return false, nil
	}

	plan = append(plan, name)
	if err := writeJSON(s.planPath(userID), plan); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

func (s *InterventionStore) Plan(ctx context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plan := []string{}
	if _, err := readJSON(s.planPath(userID), &plan); err != nil {
		return nil, fmt.Errorf("internal/storage/interventions_file.go Plan: %w", err)
	}
	return plan, nil
}

func (s *InterventionStore) DeleteAll(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range []string{s.logPath(userID), s.planPath(userID)} {
		if err := removeIfExists(p); err != nil {
			return fmt.Errorf("internal/storage/interventions_file.go DeleteAll: %w", err)
		}
	}
	return nil
}
