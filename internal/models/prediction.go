package models

import "time"

// ModelSnapshot is the persisted state of a trained regression model.
type ModelSnapshot struct {
	Target            string             `json:"target"`
	FeatureNames      []string           `json:"feature_names"`
	Means             []float64          `json:"means"`
	Scales            []float64          `json:"scales"`
	Coefficients      []float64          `json:"coefficients"`
	Intercept         float64            `json:"intercept"`
	FeatureImportance map[string]float64 `json:"feature_importance"`
	TrainedRows       int                `json:"trained_rows"`
	TrainedAt         time.Time          `json:"trained_at"`
}
