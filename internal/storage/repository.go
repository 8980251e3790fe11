package storage

//go:generate mockgen -source=repository.go -destination=../mocks/mock_repository.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"mindguard/internal/models"
)

var ErrNotFound = errors.New("not found")

// CheckInRepository persists daily check-ins keyed by (user, date).
type CheckInRepository interface {
	// Upsert replaces the record for c.Date or appends a new one.
	// created reports whether no record existed for that date.
	Upsert(ctx context.Context, userID string, c models.CheckIn) (created bool, err error)
	All(ctx context.Context, userID string) ([]models.CheckIn, error)
	// Since returns records dated on or after cutoff, oldest first.
	Since(ctx context.Context, userID string, cutoff time.Time) ([]models.CheckIn, error)
	Get(ctx context.Context, userID string, date string) (*models.CheckIn, error)
	DeleteBefore(ctx context.Context, userID string, cutoff time.Time) (int, error)
	ClearNotes(ctx context.Context, userID string) error
	DeleteAll(ctx context.Context, userID string) error
}

// InterventionRepository keeps completion logs and action plans.
type InterventionRepository interface {
	LogCompletion(ctx context.Context, userID, name string) (models.InterventionLog, error)
	Logs(ctx context.Context, userID string) ([]models.InterventionLog, error)
	// AddToPlan reports false when name was already planned.
	AddToPlan(ctx context.Context, userID, name string) (bool, error)
	Plan(ctx context.Context, userID string) ([]string, error)
	DeleteAll(ctx context.Context, userID string) error
}

// ModelRepository persists trained model snapshots per user and target.
type ModelRepository interface {
	Save(ctx context.Context, userID string, snap models.ModelSnapshot) error
	Load(ctx context.Context, userID, target string) (*models.ModelSnapshot, error)
	DeleteAll(ctx context.Context, userID string) error
}

var (
	_ CheckInRepository      = (*CheckInFileStore)(nil)
	_ CheckInRepository      = (*PostgresCheckInStore)(nil)
	_ InterventionRepository = (*InterventionStore)(nil)
	_ ModelRepository        = (*ModelStore)(nil)
)
