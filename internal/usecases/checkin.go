package usecases

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"mindguard/internal/analysis"
	"mindguard/internal/models"
	"mindguard/internal/storage"
)

var ErrInvalidInput = errors.New("invalid input")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every rejected field of a request.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func invalid(field, format string, args ...any) error {
	v := &ValidationError{}
	v.add(field, format, args...)
	return v
}

// CheckInRequest is a submitted check-in. Nil fields take their defaults.
type CheckInRequest struct {
	Date              *string  `json:"date"`
	MoodScore         *int     `json:"mood_score"`
	StressLevel       *int     `json:"stress_level"`
	EnergyLevel       *int     `json:"energy_level"`
	SleepHours        *float64 `json:"sleep_hours"`
	ExerciseMinutes   *int     `json:"exercise_minutes"`
	WorkHours         *float64 `json:"work_hours"`
	SocialInteraction *string  `json:"social_interaction"`
	CaffeineIntake    *int     `json:"caffeine_intake"`
	AlcoholIntake     *int     `json:"alcohol_intake"`
	MeditationMinutes *int     `json:"meditation_minutes"`
	MoodNotes         *string  `json:"mood_notes"`
	Symptoms          []string `json:"symptoms"`
}

type intRange struct {
	field    string
	min, max int
	def      int
}

var (
	moodRange       = intRange{"mood_score", 1, 10, 5}
	stressRange     = intRange{"stress_level", 1, 10, 5}
	energyRange     = intRange{"energy_level", 1, 10, 5}
	exerciseRange   = intRange{"exercise_minutes", 0, 720, 0}
	caffeineRange   = intRange{"caffeine_intake", 0, 20, 0}
	alcoholRange    = intRange{"alcohol_intake", 0, 20, 0}
	meditationRange = intRange{"meditation_minutes", 0, 480, 0}
)

func (r intRange) apply(v *int, errs *ValidationError) int {
	if v == nil {
		return r.def
	}
	if *v < r.min || *v > r.max {
		errs.add(r.field, "must be between %d and %d", r.min, r.max)
	}
	return *v
}

func hoursField(field string, v *float64, def float64, errs *ValidationError) float64 {
	if v == nil {
		return def
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 || *v > 24 {
		errs.add(field, "must be between 0 and 24")
	}
	return *v
}

// CheckIn applies defaults and validates the request against today.
func (r CheckInRequest) CheckIn(today time.Time) (models.CheckIn, error) {
	errs := &ValidationError{}
	todayKey := models.FormatDay(today)

	c := models.CheckIn{
		Date:              todayKey,
		MoodScore:         moodRange.apply(r.MoodScore, errs),
		StressLevel:       stressRange.apply(r.StressLevel, errs),
		EnergyLevel:       energyRange.apply(r.EnergyLevel, errs),
		SleepHours:        hoursField("sleep_hours", r.SleepHours, 7, errs),
		ExerciseMinutes:   exerciseRange.apply(r.ExerciseMinutes, errs),
		WorkHours:         hoursField("work_hours", r.WorkHours, 8, errs),
		SocialInteraction: models.SocialNone,
		CaffeineIntake:    caffeineRange.apply(r.CaffeineIntake, errs),
		AlcoholIntake:     alcoholRange.apply(r.AlcoholIntake, errs),
		MeditationMinutes: meditationRange.apply(r.MeditationMinutes, errs),
		Symptoms:          []string{},
	}

	if r.Date != nil && *r.Date != "" {
		d, err := time.Parse(models.DateLayout, *r.Date)
		switch {
		case err != nil:
			errs.add("date", "must be formatted as YYYY-MM-DD")
		case models.FormatDay(d) > todayKey:
			errs.add("date", "must not be in the future")
		default:
			c.Date = models.FormatDay(d)
		}
	}

	if r.SocialInteraction != nil {
		if !slices.Contains(models.SocialLevels, *r.SocialInteraction) {
			errs.add("social_interaction", "must be one of %s", strings.Join(models.SocialLevels, ", "))
		}
		c.SocialInteraction = *r.SocialInteraction
	}

	if r.MoodNotes != nil {
		c.MoodNotes = strings.TrimSpace(*r.MoodNotes)
	}

	// "None" means no symptoms at all
	if !slices.Contains(r.Symptoms, "None") {
		for _, s := range r.Symptoms {
			s = strings.TrimSpace(s)
			switch {
			case s == "":
			case !slices.Contains(models.Symptoms, s):
				errs.add("symptoms", "unknown symptom %q", s)
			case !slices.Contains(c.Symptoms, s):
				c.Symptoms = append(c.Symptoms, s)
			}
		}
	}

	return c, errs.orNil()
}

type QuickInsight struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func QuickInsights(c models.CheckIn) []QuickInsight {
	out := []QuickInsight{}
	switch {
	case c.StressLevel >= 7:
		out = append(out, QuickInsight{"warning", "High stress detected. Consider some relaxation techniques."})
	case c.StressLevel <= 3:
		out = append(out, QuickInsight{"success", "Great! You're feeling relaxed today."})
	}
	switch {
	case c.SleepHours < 6:
		out = append(out, QuickInsight{"warning", "You might benefit from more sleep tonight."})
	case c.SleepHours >= 8:
		out = append(out, QuickInsight{"success", "Excellent sleep duration!"})
	}
	switch {
	case c.ExerciseMinutes >= 30:
		out = append(out, QuickInsight{"success", "Great job staying active!"})
	case c.ExerciseMinutes == 0:
		out = append(out, QuickInsight{"info", "Consider adding some physical activity to your day."})
	}
	return out
}

type SubmitResult struct {
	CheckIn  models.CheckIn `json:"check_in"`
	Created  bool           `json:"created"`
	Insights []QuickInsight `json:"insights"`
}

type Dashboard struct {
	Today          *models.CheckIn `json:"today"`
	CheckedInToday bool            `json:"checked_in_today"`
	Entries        int             `json:"entries_7d"`
	AvgMood        *float64        `json:"avg_mood_7d"`
	AvgStress      *float64        `json:"avg_stress_7d"`
}

type CheckInService struct {
	repo storage.CheckInRepository
	now  func() time.Time
}

func NewCheckInService(repo storage.CheckInRepository) *CheckInService {
	return &CheckInService{repo: repo, now: time.Now}
}

// Submit validates req and stores it, replacing any record for the same day.
func (s *CheckInService) Submit(ctx context.Context, userID string, req CheckInRequest) (SubmitResult, error) {
	op := "internal/usecases/checkin.go Submit"

	now := s.now()
	c, err := req.CheckIn(now)
	if err != nil {
		return SubmitResult{}, err
	}
	c.Timestamp = now.UTC()

	created, err := s.repo.Upsert(ctx, userID, c)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return SubmitResult{CheckIn: c, Created: created, Insights: QuickInsights(c)}, nil
}

func (s *CheckInService) Get(ctx context.Context, userID, date string) (*models.CheckIn, error) {
	op := "internal/usecases/checkin.go Get"

	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, invalid("date", "must be formatted as YYYY-MM-DD")
	}
	c, err := s.repo.Get(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s *CheckInService) Today(ctx context.Context, userID string) (*models.CheckIn, error) {
	return s.Get(ctx, userID, models.FormatDay(s.now()))
}

// List returns the records of the last days days, or all of them when days
// is not positive.
func (s *CheckInService) List(ctx context.Context, userID string, days int) ([]models.CheckIn, error) {
	op := "internal/usecases/checkin.go List"

	records, err := period(ctx, s.repo, userID, s.now(), days)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return records, nil
}

func period(ctx context.Context, repo storage.CheckInRepository, userID string, now time.Time, days int) ([]models.CheckIn, error) {
	if days > 0 {
		return repo.Since(ctx, userID, analysis.Cutoff(now, days))
	}
	return repo.All(ctx, userID)
}

func (s *CheckInService) Dashboard(ctx context.Context, userID string) (Dashboard, error) {
	op := "internal/usecases/checkin.go Dashboard"

	now := s.now()
	records, err := s.repo.Since(ctx, userID, analysis.Cutoff(now, 7))
	if err != nil {
		return Dashboard{}, fmt.Errorf("%s: %w", op, err)
	}

	d := Dashboard{Entries: len(records)}
	todayKey := models.FormatDay(now)
	var mood, stress float64
	for i, c := range records {
		mood += float64(c.MoodScore)
		stress += float64(c.StressLevel)
		if c.Date == todayKey {
			d.Today = &records[i]
			d.CheckedInToday = true
		}
	}
	if n := float64(len(records)); n > 0 {
		d.AvgMood = round1(mood / n)
		d.AvgStress = round1(stress / n)
	}
	return d, nil
}

func round1(v float64) *float64 {
	r := math.Round(v*10) / 10
	return &r
}
