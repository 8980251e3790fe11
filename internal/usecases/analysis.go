package usecases

import (
	"context"
	"fmt"
	"slices"
	"time"

	"mindguard/internal/analysis"
	"mindguard/internal/storage"
)

type AnalysisService struct {
	checkins      storage.CheckInRepository
	interventions storage.InterventionRepository
	now           func() time.Time
}

func NewAnalysisService(checkins storage.CheckInRepository, interventions storage.InterventionRepository) *AnalysisService {
	return &AnalysisService{checkins: checkins, interventions: interventions, now: time.Now}
}

// Lifestyle analyses the last days days. days must be one of analysis.Windows.
func (s *AnalysisService) Lifestyle(ctx context.Context, userID string, days int) (analysis.Report, error) {
	op := "internal/usecases/analysis.go Lifestyle"

	if !slices.Contains(analysis.Windows, days) {
		return analysis.Report{}, invalid("days", "must be one of %v", analysis.Windows)
	}

	records, err := s.checkins.Since(ctx, userID, analysis.Cutoff(s.now(), days))
	if err != nil {
		return analysis.Report{}, fmt.Errorf("%s: %w", op, err)
	}
	return analysis.Analyze(records, days), nil
}

// Progress tracks the last days days, or the whole history for 0.
func (s *AnalysisService) Progress(ctx context.Context, userID string, days int) (analysis.Progress, error) {
	op := "internal/usecases/analysis.go Progress"

	if !slices.Contains(analysis.ProgressPeriods, days) {
		return analysis.Progress{}, invalid("days", "must be one of %v", analysis.ProgressPeriods)
	}

	records, err := period(ctx, s.checkins, userID, s.now(), days)
	if err != nil {
		return analysis.Progress{}, fmt.Errorf("%s: %w", op, err)
	}

	logs, err := s.interventions.Logs(ctx, userID)
	if err != nil {
		return analysis.Progress{}, fmt.Errorf("%s: %w", op, err)
	}
	return analysis.Track(records, logs, days), nil
}
