package models

import (
	"time"
)

// DateLayout is the layout of CheckIn.Date and every other per-day key.
const DateLayout = "2006-01-02"

const (
	SocialNone     = "None"
	SocialMinimal  = "Minimal"
	SocialModerate = "Moderate"
	SocialHigh     = "High"
)

var SocialLevels = []string{SocialNone, SocialMinimal, SocialModerate, SocialHigh}

var Symptoms = []string{
	"Headache",
	"Fatigue",
	"Anxiety",
	"Irritability",
	"Difficulty concentrating",
	"Muscle tension",
	"Sleep problems",
	"Appetite changes",
	"Mood swings",
}

// CheckIn is one day of self-reported metrics. Date is unique per user.
type CheckIn struct {
	Date              string    `json:"date" db:"date"`
	MoodScore         int       `json:"mood_score" db:"mood_score"`
	StressLevel       int       `json:"stress_level" db:"stress_level"`
	EnergyLevel       int       `json:"energy_level" db:"energy_level"`
	SleepHours        float64   `json:"sleep_hours" db:"sleep_hours"`
	ExerciseMinutes   int       `json:"exercise_minutes" db:"exercise_minutes"`
	WorkHours         float64   `json:"work_hours" db:"work_hours"`
	SocialInteraction string    `json:"social_interaction" db:"social_interaction"`
	CaffeineIntake    int       `json:"caffeine_intake" db:"caffeine_intake"`
	AlcoholIntake     int       `json:"alcohol_intake" db:"alcohol_intake"`
	MeditationMinutes int       `json:"meditation_minutes" db:"meditation_minutes"`
	MoodNotes         string    `json:"mood_notes" db:"mood_notes"`
	Symptoms          []string  `json:"symptoms" db:"symptoms"`
	Timestamp         time.Time `json:"timestamp" db:"timestamp"`
}

// Day parses Date. The zero time is returned for malformed dates.
func (c CheckIn) Day() time.Time {
	t, err := time.Parse(DateLayout, c.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Metric returns a numeric field by its JSON name.
func (c CheckIn) Metric(name string) (float64, bool) {
	switch name {
	case "mood_score":
		return float64(c.MoodScore), true
	case "stress_level":
		return float64(c.StressLevel), true
	case "energy_level":
		return float64(c.EnergyLevel), true
	case "sleep_hours":
		return c.SleepHours, true
	case "exercise_minutes":
		return float64(c.ExerciseMinutes), true
	case "work_hours":
		return c.WorkHours, true
	case "caffeine_intake":
		return float64(c.CaffeineIntake), true
	case "alcohol_intake":
		return float64(c.AlcoholIntake), true
	case "meditation_minutes":
		return float64(c.MeditationMinutes), true
	}
	return 0, false
}

// FormatDay renders t as a per-day key.
func FormatDay(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
