package analysis

import (
	"fmt"
	"slices"

	"mindguard/internal/models"
)

// ProgressPeriods are the lookbacks of the progress view. Zero means all time.
var ProgressPeriods = []int{30, 60, 90, 0}

const (
	rollingWindow = 7
	maxCorrWindow = 14
	weeklyHistory = 8
	goalExcellent = 70.0
	goalGood      = 50.0
)

// Metrics compare the second half of a period with the first half.
type Metrics struct {
	MoodImprovement     float64 `json:"mood_improvement"`
	StressReduction     float64 `json:"stress_reduction"`
	EnergyImprovement   float64 `json:"energy_improvement"`
	SleepConsistency    float64 `json:"sleep_consistency"`
	ExerciseImprovement float64 `json:"exercise_improvement"`
}

type WeekSummary struct {
	Week          string   `json:"week"`
	Entries       int      `json:"entries"`
	MoodMean      float64  `json:"mood_mean"`
	MoodStd       *float64 `json:"mood_std"`
	StressMean    float64  `json:"stress_mean"`
	StressStd     *float64 `json:"stress_std"`
	EnergyMean    float64  `json:"energy_mean"`
	EnergyStd     *float64 `json:"energy_std"`
	SleepMean     float64  `json:"sleep_mean"`
	ExerciseTotal int      `json:"exercise_total"`
}

// RollingPoint holds the rolling series at one record. Nil marks positions
// where the window is not yet full.
type RollingPoint struct {
	Date               string   `json:"date"`
	MoodTrend          *float64 `json:"mood_trend,omitempty"`
	StressTrend        *float64 `json:"stress_trend,omitempty"`
	MoodVariability    *float64 `json:"mood_variability"`
	StressVariability  *float64 `json:"stress_variability"`
	SleepMoodCorr      *float64 `json:"sleep_mood_corr"`
	ExerciseStressCorr *float64 `json:"exercise_stress_corr"`
}

type Goal struct {
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
	Status string  `json:"status"`
}

type Achievement struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type InterventionEffect struct {
	DaysWith        int          `json:"days_with"`
	DaysWithout     int          `json:"days_without"`
	MoodWith        float64      `json:"mood_with"`
	MoodWithout     float64      `json:"mood_without"`
	StressWith      float64      `json:"stress_with"`
	StressWithout   float64      `json:"stress_without"`
	MoodImpact      float64      `json:"mood_impact"`
	StressReduction float64      `json:"stress_reduction"`
	Verdict         string       `json:"verdict"`
	MostUsed        []UsageCount `json:"most_used"`
}

type UsageCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Progress struct {
	Days          int                 `json:"days"`
	Entries       int                 `json:"entries"`
	Metrics       *Metrics            `json:"metrics"`
	Weekly        []WeekSummary       `json:"weekly"`
	Rolling       []RollingPoint      `json:"rolling"`
	CorrWindow    int                 `json:"corr_window"`
	Goals         []Goal              `json:"goals"`
	StrongestArea string              `json:"strongest_area,omitempty"`
	FocusArea     string              `json:"focus_area,omitempty"`
	Achievements  []Achievement       `json:"achievements"`
	Interventions *InterventionEffect `json:"interventions"`
}

// Track builds the progress view for records already cut to the period.
// logs are the user's intervention completions.
func Track(records []models.CheckIn, logs []models.InterventionLog, days int) Progress {
	p := Progress{
		Days:         days,
		Entries:      len(records),
		Metrics:      HalfSplit(records),
		Weekly:       Weekly(records),
		Goals:        Goals(records),
		Achievements: []Achievement{},
	}
	p.Rolling, p.CorrWindow = Rolling(records)

	if len(p.Goals) > 0 {
		best, worst := p.Goals[0], p.Goals[0]
		for _, g := range p.Goals[1:] {
			if g.Rate > best.Rate {
				best = g
			}
			if g.Rate < worst.Rate {
				worst = g
			}
		}
		p.StrongestArea, p.FocusArea = best.Name, worst.Name
	}

	p.Achievements = Achievements(records, p.Metrics)
	p.Interventions = Effectiveness(records, logs)
	return p
}

// HalfSplit is nil below two records.
func HalfSplit(records []models.CheckIn) *Metrics {
	if len(records) < 2 {
		return nil
	}
	mid := len(records) / 2
	first, second := records[:mid], records[mid:]

	delta := func(metric string) float64 {
		return mean(column(second, metric)) - mean(column(first, metric))
	}

	m := &Metrics{
		MoodImprovement:     round(delta("mood_score"), 2),
		StressReduction:     round(-delta("stress_level"), 2),
		EnergyImprovement:   round(delta("energy_level"), 2),
		ExerciseImprovement: round(delta("exercise_minutes"), 2),
	}

	s1, ok1 := sampleStd(column(first, "sleep_hours"))
	s2, ok2 := sampleStd(column(second, "sleep_hours"))
	if ok1 && ok2 {
		m.SleepConsistency = round(-max(s2-s1, s1-s2), 2)
	}
	return m
}

// Weekly groups records by ISO week and keeps the most recent weeks.
func Weekly(records []models.CheckIn) []WeekSummary {
	groups := map[string][]models.CheckIn{}
	var keys []string
	for _, c := range records {
		day := c.Day()
		if day.IsZero() {
			continue
		}
		year, week := day.ISOWeek()
		key := fmt.Sprintf("%d-W%02d", year, week)
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], c)
	}
	slices.Sort(keys)
	if len(keys) > weeklyHistory {
		keys = keys[len(keys)-weeklyHistory:]
	}

	out := make([]WeekSummary, 0, len(keys))
	for _, key := range keys {
		week := groups[key]
		mood := column(week, "mood_score")
		stress := column(week, "stress_level")
		energy := column(week, "energy_level")

		ws := WeekSummary{
			Week:       key,
			Entries:    len(week),
			MoodMean:   round(mean(mood), 2),
			StressMean: round(mean(stress), 2),
			EnergyMean: round(mean(energy), 2),
			SleepMean:  round(mean(column(week, "sleep_hours")), 2),
		}
		ws.MoodStd = roundPtr(sampleStd(mood))
		ws.StressStd = roundPtr(sampleStd(stress))
		ws.EnergyStd = roundPtr(sampleStd(energy))
		for _, c := range week {
			ws.ExerciseTotal += c.ExerciseMinutes
		}
		out = append(out, ws)
	}
	return out
}

// Rolling computes the centred 7-record trend (only past seven records), the
// trailing 7-record variability and trailing correlations over a window of
// min(14, n/2) records. The correlation window is returned alongside.
func Rolling(records []models.CheckIn) ([]RollingPoint, int) {
	n := len(records)
	out := make([]RollingPoint, n)
	mood := column(records, "mood_score")
	stress := column(records, "stress_level")
	sleep := column(records, "sleep_hours")
	exercise := column(records, "exercise_minutes")

	half := rollingWindow / 2
	corrWindow := min(maxCorrWindow, n/2)

	for i := range records {
		out[i].Date = records[i].Date

		if n > rollingWindow && i-half >= 0 && i+half < n {
			out[i].MoodTrend = roundPtr(mean(mood[i-half:i+half+1]), true)
			out[i].StressTrend = roundPtr(mean(stress[i-half:i+half+1]), true)
		}

		if i+1 >= rollingWindow {
			lo := i + 1 - rollingWindow
			out[i].MoodVariability = roundPtr(sampleStd(mood[lo : i+1]))
			out[i].StressVariability = roundPtr(sampleStd(stress[lo : i+1]))
		}

		if corrWindow >= 2 && i+1 >= corrWindow {
			lo := i + 1 - corrWindow
			out[i].SleepMoodCorr = roundPtr(pearson(sleep[lo:i+1], mood[lo:i+1]))
			out[i].ExerciseStressCorr = roundPtr(pearson(exercise[lo:i+1], stress[lo:i+1]))
		}
	}
	return out, corrWindow
}

var goalDefs = []struct {
	name string
	ok   func(models.CheckIn) bool
}{
	{"Sleep (7-9 hrs)", func(c models.CheckIn) bool { return c.SleepHours >= 7 && c.SleepHours <= 9 }},
	{"Exercise (>=30 min)", func(c models.CheckIn) bool { return c.ExerciseMinutes >= 30 }},
	{"Low Stress (<5)", func(c models.CheckIn) bool { return c.StressLevel < 5 }},
	{"Good Mood (>=7)", func(c models.CheckIn) bool { return c.MoodScore >= 7 }},
	{"Work-Life Balance (<10 hrs)", func(c models.CheckIn) bool { return c.WorkHours < 10 }},
}

func Goals(records []models.CheckIn) []Goal {
	if len(records) == 0 {
		return []Goal{}
	}
	out := make([]Goal, 0, len(goalDefs))
	for _, g := range goalDefs {
		rate := round(share(records, g.ok)*100, 1)
		status := "needs improvement"
		switch {
		case rate >= goalExcellent:
			status = "excellent"
		case rate >= goalGood:
			status = "good"
		}
		out = append(out, Goal{Name: g.name, Rate: rate, Status: status})
	}
	return out
}

func Achievements(records []models.CheckIn, m *Metrics) []Achievement {
	out := []Achievement{}
	if len(records) >= 7 {
		out = append(out, Achievement{"consistency", "Consistency Champion", "7+ days of tracking"})
	}
	if len(records) >= 30 {
		out = append(out, Achievement{"monthly", "Monthly Milestone", "30+ days of tracking"})
	}
	if m != nil && m.MoodImprovement > 1 {
		out = append(out, Achievement{"mood_booster", "Mood Booster", "Significant mood improvement"})
	}
	if m != nil && m.StressReduction > 1 {
		out = append(out, Achievement{"stress_warrior", "Stress Warrior", "Major stress reduction"})
	}
	if len(records) == 0 {
		return out
	}
	if share(records, goalDefs[0].ok) >= 0.7 {
		out = append(out, Achievement{"sleep_master", "Sleep Master", "70%+ optimal sleep"})
	}
	if share(records, goalDefs[1].ok) >= 0.5 {
		out = append(out, Achievement{"fitness", "Fitness Enthusiast", "Regular exercise habits"})
	}
	return out
}

// Effectiveness compares days with logged interventions against days without.
// It is nil unless both groups are non-empty.
func Effectiveness(records []models.CheckIn, logs []models.InterventionLog) *InterventionEffect {
	if len(logs) == 0 {
		return nil
	}

	perDay := map[string]int{}
	perName := map[string]int{}
	for _, l := range logs {
		perDay[l.Date]++
		perName[l.InterventionName]++
	}

	var with, without []models.CheckIn
	for _, c := range records {
		if perDay[c.Date] > 0 {
			with = append(with, c)
		} else {
			without = append(without, c)
		}
	}
	if len(with) == 0 || len(without) == 0 {
		return nil
	}

	e := &InterventionEffect{
		DaysWith:      len(with),
		DaysWithout:   len(without),
		MoodWith:      round(mean(column(with, "mood_score")), 2),
		MoodWithout:   round(mean(column(without, "mood_score")), 2),
		StressWith:    round(mean(column(with, "stress_level")), 2),
		StressWithout: round(mean(column(without, "stress_level")), 2),
	}
	e.MoodImpact = round(e.MoodWith-e.MoodWithout, 2)
	e.StressReduction = round(e.StressWithout-e.StressWith, 2)

	switch {
	case e.MoodImpact > 0.5 || e.StressReduction > 0.5:
		e.Verdict = "positive"
	case e.MoodImpact > 0 || e.StressReduction > 0:
		e.Verdict = "moderate"
	default:
		e.Verdict = "try_different"
	}

	for name, count := range perName {
		e.MostUsed = append(e.MostUsed, UsageCount{Name: name, Count: count})
	}
	slices.SortFunc(e.MostUsed, func(a, b UsageCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	if len(e.MostUsed) > 5 {
		e.MostUsed = e.MostUsed[:5]
	}
	return e
}
