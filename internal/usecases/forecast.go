package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"mindguard/internal/analysis"
	"mindguard/internal/models"
	"mindguard/internal/prediction"
	"mindguard/internal/storage"
)

// ErrInsufficientData is shared with the prediction package so callers can
// match a single sentinel.
var ErrInsufficientData = prediction.ErrInsufficientData

// forecastWindow is the history the models are trained on.
const forecastWindow = 90

type TrainResult struct {
	Target      string                    `json:"target"`
	TrainedRows int                       `json:"trained_rows"`
	Metrics     *prediction.Metrics       `json:"metrics,omitempty"`
	Importance  []prediction.FactorWeight `json:"importance"`
}

type ForecastService struct {
	checkins storage.CheckInRepository
	models   storage.ModelRepository
	minDays  int
	now      func() time.Time
}

func NewForecastService(checkins storage.CheckInRepository, models storage.ModelRepository, minDays int) *ForecastService {
	return &ForecastService{checkins: checkins, models: models, minDays: minDays, now: time.Now}
}

func newModel(target string) (*prediction.Model, error) {
	switch target {
	case prediction.TargetStress:
		return prediction.NewStressModel(), nil
	case prediction.TargetMood:
		return prediction.NewMoodModel(), nil
	}
	return nil, invalid("target", "must be %s or %s", prediction.TargetStress, prediction.TargetMood)
}

func (s *ForecastService) history(ctx context.Context, userID string) ([]models.CheckIn, error) {
	op := "internal/usecases/forecast.go history"

	records, err := s.checkins.Since(ctx, userID, analysis.Cutoff(s.now(), forecastWindow))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(records) < s.minDays {
		return nil, fmt.Errorf("%s: %d of %d days logged: %w", op, len(records), s.minDays, ErrInsufficientData)
	}
	return records, nil
}

func (s *ForecastService) train(ctx context.Context, userID, target string, records []models.CheckIn) (*prediction.Model, error) {
	op := "internal/usecases/forecast.go train"

	m, err := newModel(target)
	if err != nil {
		return nil, err
	}
	if err := m.Train(records, s.now()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.models.Save(ctx, userID, m.Snapshot()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

// Train refits the target model on the user's recent history and stores it.
func (s *ForecastService) Train(ctx context.Context, userID, target string) (TrainResult, error) {
	if _, err := newModel(target); err != nil {
		return TrainResult{}, err
	}

	records, err := s.history(ctx, userID)
	if err != nil {
		return TrainResult{}, err
	}
	m, err := s.train(ctx, userID, target, records)
	if err != nil {
		return TrainResult{}, err
	}
	return TrainResult{
		Target:      m.Target(),
		TrainedRows: m.TrainedRows(),
		Metrics:     m.Metrics(),
		Importance:  m.Importance(),
	}, nil
}

// Forecast retrains the stress model and builds the seven day outlook.
func (s *ForecastService) Forecast(ctx context.Context, userID string) (prediction.Forecast, error) {
	op := "internal/usecases/forecast.go Forecast"

	records, err := s.history(ctx, userID)
	if err != nil {
		return prediction.Forecast{}, err
	}
	m, err := s.train(ctx, userID, prediction.TargetStress, records)
	if err != nil {
		return prediction.Forecast{}, err
	}

	f, err := prediction.BuildForecast(m, records, s.now())
	if err != nil {
		return prediction.Forecast{}, fmt.Errorf("%s: %w", op, err)
	}
	return f, nil
}

// Predict scores in with the stored model for target. Missing inputs take the
// feature defaults. Without a stored model the target is trained first.
func (s *ForecastService) Predict(ctx context.Context, userID, target string, in prediction.Inputs) (float64, error) {
	op := "internal/usecases/forecast.go Predict"

	if _, err := newModel(target); err != nil {
		return 0, err
	}

	snap, err := s.models.Load(ctx, userID, target)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		records, err := s.history(ctx, userID)
		if err != nil {
			return 0, err
		}
		m, err := s.train(ctx, userID, target, records)
		if err != nil {
			return 0, err
		}
		return m.Predict(in), nil
	case err != nil:
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	m, err := prediction.FromSnapshot(*snap)
	if err != nil {
		log.Printf("%s: discarding stored model: %v", op, err)
		records, err := s.history(ctx, userID)
		if err != nil {
			return 0, err
		}
		if m, err = s.train(ctx, userID, target, records); err != nil {
			return 0, err
		}
	}
	return m.Predict(in), nil
}
