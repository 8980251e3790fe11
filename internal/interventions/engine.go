// Package interventions recommends coping activities from a static rule table.
package interventions

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"mindguard/internal/models"
)

const maxRecommendations = 12

// Profile is the user state the rule table is scored against.
type Profile struct {
	CurrentStress int     `json:"current_stress"`
	CurrentMood   int     `json:"current_mood"`
	CurrentEnergy int     `json:"current_energy"`
	AvgSleep      float64 `json:"avg_sleep"`
	AvgExercise   float64 `json:"avg_exercise"`
	AvgWorkHours  float64 `json:"avg_work_hours"`
}

func DefaultProfile() Profile {
	return Profile{
		CurrentStress: 5,
		CurrentMood:   5,
		CurrentEnergy: 5,
		AvgSleep:      7,
		AvgExercise:   30,
		AvgWorkHours:  8,
	}
}

// ProfileFromCheckIns takes the current scores from the latest record and the
// lifestyle averages from all of them. records must be sorted by date.
func ProfileFromCheckIns(records []models.CheckIn) Profile {
	if len(records) == 0 {
		return DefaultProfile()
	}

	latest := records[len(records)-1]
	p := Profile{
		CurrentStress: latest.StressLevel,
		CurrentMood:   latest.MoodScore,
		CurrentEnergy: latest.EnergyLevel,
	}
	for _, c := range records {
		p.AvgSleep += c.SleepHours
		p.AvgExercise += float64(c.ExerciseMinutes)
		p.AvgWorkHours += c.WorkHours
	}
	n := float64(len(records))
	p.AvgSleep /= n
	p.AvgExercise /= n
	p.AvgWorkHours /= n
	return p
}

type Engine struct {
	catalog   []models.Intervention
	immediate []models.ImmediateIntervention
}

func NewEngine() *Engine {
	return &Engine{catalog: catalog, immediate: immediate}
}

func (e *Engine) All() []models.Intervention {
	return slices.Clone(e.catalog)
}

// Score rates how well iv fits p, in [0, 1].
func (e *Engine) Score(iv models.Intervention, p Profile) float64 {
	score := 0.5
	title := strings.ToLower(iv.Title)

	switch iv.Conditions["stress_level"] {
	case "high":
		if p.CurrentStress >= 7 {
			score += 0.3
		}
	case "moderate":
		if p.CurrentStress >= 4 && p.CurrentStress <= 6 {
			score += 0.3
		}
	case "low":
		if p.CurrentStress <= 3 {
			score += 0.3
		}
	case "any":
		score += 0.1
	}

	if p.CurrentEnergy <= 3 && iv.Category == models.CategoryPhysical && !strings.Contains(title, "walk") {
		score -= 0.2
	} else if p.CurrentEnergy >= 7 && iv.Category == models.CategoryMental {
		score += 0.1
	}

	if p.AvgSleep < 6 && strings.Contains(title, "sleep") {
		score += 0.4
	}
	if p.AvgExercise < 30 && iv.Category == models.CategoryPhysical {
		score += 0.2
	}
	if p.AvgWorkHours > 9 && (strings.Contains(title, "desk") || strings.Contains(title, "work")) {
		score += 0.3
	}

	if p.CurrentMood <= 4 {
		if iv.Category == models.CategorySocial {
			score += 0.2
		}
		if strings.Contains(title, "gratitude") {
			score += 0.3
		}
	}

	if iv.BestTime == "Evening" {
		score += 0.1
	}

	return math.Round(min(1.0, score)*100) / 100
}

// Personalized returns the interventions scoring above 0.5, best first, with the
// top item of every category promoted to the front.
func (e *Engine) Personalized(p Profile) []models.ScoredIntervention {
	suitable := []models.ScoredIntervention{}
	for _, iv := range e.catalog {
		if score := e.Score(iv, p); score > 0.5 {
			suitable = append(suitable, models.ScoredIntervention{Intervention: iv, RecommendationScore: score})
		}
	}
	slices.SortStableFunc(suitable, func(a, b models.ScoredIntervention) int {
		switch {
		case a.RecommendationScore > b.RecommendationScore:
			return -1
		case a.RecommendationScore < b.RecommendationScore:
			return 1
		}
		return 0
	})

	picked := make(map[string]bool)
	balanced := []models.ScoredIntervention{}
	for _, category := range models.Categories {
		for _, s := range suitable {
			if s.Category == category {
				balanced = append(balanced, s)
				picked[s.Title] = true
				break
			}
		}
	}
	for _, s := range suitable {
		if len(balanced) >= maxRecommendations {
			break
		}
		if !picked[s.Title] {
			balanced = append(balanced, s)
			picked[s.Title] = true
		}
	}
	return balanced
}

// Immediate returns quick relief techniques, more of them the higher the stress.
func (e *Engine) Immediate(stress float64) []models.ImmediateIntervention {
	switch {
	case stress >= 8:
		return slices.Clone(e.immediate)
	case stress >= 6:
		return slices.Clone(e.immediate[:3])
	default:
		return slices.Clone(e.immediate[:2])
	}
}

func (e *Engine) ByCategory(category string) []models.Intervention {
	out := []models.Intervention{}
	for _, iv := range e.catalog {
		if iv.Category == category {
			out = append(out, iv)
		}
	}
	return out
}

func (e *Engine) ByTitle(title string) (models.Intervention, bool) {
	for _, iv := range e.catalog {
		if iv.Title == title {
			return iv, true
		}
	}
	return models.Intervention{}, false
}

// Known reports whether name is a catalog or immediate technique title.
func (e *Engine) Known(name string) bool {
	if _, ok := e.ByTitle(name); ok {
		return true
	}
	for _, iv := range e.immediate {
		if iv.Title == name {
			return true
		}
	}
	return false
}

// DailySuggestion picks one short beginner activity for day. The choice is
// stable for a given profile and calendar day.
func (e *Engine) DailySuggestion(p Profile, day time.Time) models.Intervention {
	suitable := e.Personalized(p)
	if len(suitable) == 0 {
		return e.catalog[0]
	}

	var short []models.Intervention
	for _, s := range suitable {
		if s.Difficulty != "Beginner" {
			continue
		}
		if minutes, ok := DurationMinutes(s.Duration); ok && minutes <= 10 {
			short = append(short, s.Intervention)
		}
	}
	if len(short) == 0 {
		return suitable[0].Intervention
	}
	return short[day.YearDay()%len(short)]
}

// DurationMinutes parses "10 minutes" or "5-8 minutes". Ranges yield their
// upper bound.
func DurationMinutes(d string) (int, bool) {
	fields := strings.Fields(d)
	if len(fields) < 2 || !strings.HasPrefix(fields[1], "minute") {
		return 0, false
	}

	value := fields[0]
	if _, upper, ok := strings.Cut(value, "-"); ok {
		value = upper
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}
