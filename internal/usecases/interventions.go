package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mindguard/internal/analysis"
	"mindguard/internal/interventions"
	"mindguard/internal/models"
	"mindguard/internal/storage"
)

// highStress is the level from which immediate techniques are offered.
const highStress = 7

type Recommendations struct {
	Profile      interventions.Profile          `json:"profile"`
	HighStress   bool                           `json:"high_stress"`
	Immediate    []models.ImmediateIntervention `json:"immediate"`
	Personalized []models.ScoredIntervention    `json:"personalized"`
	Daily        models.Intervention            `json:"daily_suggestion"`
}

type InterventionService struct {
	checkins storage.CheckInRepository
	repo     storage.InterventionRepository
	engine   *interventions.Engine
	now      func() time.Time
}

func NewInterventionService(checkins storage.CheckInRepository, repo storage.InterventionRepository, engine *interventions.Engine) *InterventionService {
	return &InterventionService{checkins: checkins, repo: repo, engine: engine, now: time.Now}
}

func (s *InterventionService) profile(ctx context.Context, userID string) (interventions.Profile, error) {
	op := "internal/usecases/interventions.go profile"

	recent, err := s.checkins.Since(ctx, userID, analysis.Cutoff(s.now(), 7))
	if err != nil {
		return interventions.Profile{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(recent) == 0 {
		return interventions.Profile{}, fmt.Errorf("%s: no check-ins in the last 7 days: %w", op, ErrInsufficientData)
	}
	return interventions.ProfileFromCheckIns(recent), nil
}

// Recommend scores the catalog against the last week of check-ins.
func (s *InterventionService) Recommend(ctx context.Context, userID string) (Recommendations, error) {
	p, err := s.profile(ctx, userID)
	if err != nil {
		return Recommendations{}, err
	}

	rec := Recommendations{
		Profile:      p,
		HighStress:   p.CurrentStress >= highStress,
		Immediate:    []models.ImmediateIntervention{},
		Personalized: s.engine.Personalized(p),
		Daily:        s.engine.DailySuggestion(p, s.now()),
	}
	if rec.HighStress {
		rec.Immediate = s.engine.Immediate(float64(p.CurrentStress))
	}
	return rec, nil
}

// DailySuggestion falls back to the default profile for users without recent
// check-ins.
func (s *InterventionService) DailySuggestion(ctx context.Context, userID string) (models.Intervention, error) {
	p, err := s.profile(ctx, userID)
	switch {
	case err == nil:
	case errors.Is(err, ErrInsufficientData):
		p = interventions.DefaultProfile()
	default:
		return models.Intervention{}, err
	}
	return s.engine.DailySuggestion(p, s.now()), nil
}

// Catalog lists the table, optionally narrowed to one category.
func (s *InterventionService) Catalog(category string) ([]models.Intervention, error) {
	if category == "" {
		return s.engine.All(), nil
	}
	for _, c := range models.Categories {
		if strings.EqualFold(c, category) {
			return s.engine.ByCategory(c), nil
		}
	}
	return nil, invalid("category", "must be one of %s", strings.Join(models.Categories, ", "))
}

func (s *InterventionService) Lookup(title string) (models.Intervention, error) {
	iv, ok := s.engine.ByTitle(title)
	if !ok {
		return models.Intervention{}, fmt.Errorf("internal/usecases/interventions.go Lookup: %q: %w", title, storage.ErrNotFound)
	}
	return iv, nil
}

// Complete logs a finished intervention or immediate technique.
func (s *InterventionService) Complete(ctx context.Context, userID, name string) (models.InterventionLog, error) {
	op := "internal/usecases/interventions.go Complete"

	if !s.engine.Known(name) {
		return models.InterventionLog{}, invalid("intervention_name", "unknown intervention %q", name)
	}
	entry, err := s.repo.LogCompletion(ctx, userID, name)
	if err != nil {
		return models.InterventionLog{}, fmt.Errorf("%s: %w", op, err)
	}
	return entry, nil
}

func (s *InterventionService) Logs(ctx context.Context, userID string) ([]models.InterventionLog, error) {
	op := "internal/usecases/interventions.go Logs"

	logs, err := s.repo.Logs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return logs, nil
}

// Plan adds name to the action plan and returns the updated plan.
func (s *InterventionService) Plan(ctx context.Context, userID, name string) ([]string, error) {
	op := "internal/usecases/interventions.go Plan"

	if _, ok := s.engine.ByTitle(name); !ok {
		return nil, invalid("intervention_name", "unknown intervention %q", name)
	}
	if _, err := s.repo.AddToPlan(ctx, userID, name); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.ActionPlan(ctx, userID)
}

func (s *InterventionService) ActionPlan(ctx context.Context, userID string) ([]string, error) {
	op := "internal/usecases/interventions.go ActionPlan"

	plan, err := s.repo.Plan(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return plan, nil
}
