package models

import "time"

const (
	CategoryPhysical  = "Physical"
	CategoryMental    = "Mental"
	CategorySocial    = "Social"
	CategoryLifestyle = "Lifestyle"
)

var Categories = []string{CategoryPhysical, CategoryMental, CategorySocial, CategoryLifestyle}

// Intervention is a coping activity from the static rule table.
type Intervention struct {
	Title        string            `json:"title"`
	Category     string            `json:"category"`
	Icon         string            `json:"icon"`
	Duration     string            `json:"duration"`
	Difficulty   string            `json:"difficulty"`
	BestTime     string            `json:"best_time"`
	Description  string            `json:"description"`
	Benefits     []string          `json:"benefits"`
	Steps        []string          `json:"steps"`
	GuidedScript string            `json:"guided_script,omitempty"`
	Conditions   map[string]string `json:"conditions"`
}

// ImmediateIntervention is a short technique offered during acute stress.
type ImmediateIntervention struct {
	Title       string   `json:"title"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
	AudioGuide  string   `json:"audio_guide,omitempty"`
}

// ScoredIntervention pairs an intervention with its recommendation score.
type ScoredIntervention struct {
	Intervention
	RecommendationScore float64 `json:"recommendation_score"`
}

// InterventionLog records one completed intervention.
type InterventionLog struct {
	ID               string    `json:"id"`
	InterventionName string    `json:"intervention_name"`
	Date             string    `json:"date"`
	Timestamp        time.Time `json:"timestamp"`
}
