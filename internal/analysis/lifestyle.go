package analysis

import (
	"fmt"
	"time"

	"mindguard/internal/models"
)

type Summary struct {
	Entries       int     `json:"entries"`
	AvgMood       float64 `json:"avg_mood"`
	AvgStress     float64 `json:"avg_stress"`
	AvgEnergy     float64 `json:"avg_energy"`
	AvgSleep      float64 `json:"avg_sleep"`
	AvgWorkHours  float64 `json:"avg_work_hours"`
	TotalExercise int     `json:"total_exercise"`
	AvgExercise   float64 `json:"avg_exercise"`
	MoodTrend     string  `json:"mood_trend"`
	StressTrend   string  `json:"stress_trend"`
}

type Correlation struct {
	Pair      string  `json:"pair"`
	X         string  `json:"x"`
	Y         string  `json:"y"`
	R         float64 `json:"r"`
	Strength  string  `json:"strength"`
	Direction string  `json:"direction"`
}

type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type WeekdayMean struct {
	Day     string  `json:"day"`
	Entries int     `json:"entries"`
	Mean    float64 `json:"mean"`
}

type Insight struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Report is the lifestyle analysis of one window.
type Report struct {
	Days              int           `json:"days"`
	Summary           Summary       `json:"summary"`
	Correlations      []Correlation `json:"correlations"`
	Positive          []Correlation `json:"positive"`
	Negative          []Correlation `json:"negative"`
	SleepDistribution []Bucket      `json:"sleep_distribution"`
	WorkDistribution  []Bucket      `json:"work_distribution"`
	WeekdayExercise   []WeekdayMean `json:"weekday_exercise"`
	Insights          []Insight     `json:"insights"`
}

var correlationPairs = []struct {
	name string
	x, y string
}{
	{"Sleep & Mood", "sleep_hours", "mood_score"},
	{"Exercise & Mood", "exercise_minutes", "mood_score"},
	{"Work Hours & Stress", "work_hours", "stress_level"},
	{"Sleep & Stress", "sleep_hours", "stress_level"},
	{"Exercise & Stress", "exercise_minutes", "stress_level"},
	{"Caffeine & Stress", "caffeine_intake", "stress_level"},
}

// Analyze builds the report for records already cut to a window of days.
func Analyze(records []models.CheckIn, days int) Report {
	report := Report{
		Days:              days,
		Summary:           Summarize(records),
		Correlations:      Correlations(records),
		Positive:          []Correlation{},
		Negative:          []Correlation{},
		SleepDistribution: distribution(column(records, "sleep_hours"), sleepBands),
		WorkDistribution:  distribution(column(records, "work_hours"), workBands),
		WeekdayExercise:   WeekdayExercise(records),
		Insights:          Insights(records),
	}
	for _, c := range report.Correlations {
		switch {
		case c.R > 0.1:
			report.Positive = append(report.Positive, c)
		case c.R < -0.1:
			report.Negative = append(report.Negative, c)
		}
	}
	return report
}

func Summarize(records []models.CheckIn) Summary {
	s := Summary{Entries: len(records), MoodTrend: "flat", StressTrend: "flat"}
	if len(records) == 0 {
		return s
	}

	exercise := column(records, "exercise_minutes")
	for _, v := range exercise {
		s.TotalExercise += int(v)
	}
	s.AvgMood = round(mean(column(records, "mood_score")), 2)
	s.AvgStress = round(mean(column(records, "stress_level")), 2)
	s.AvgEnergy = round(mean(column(records, "energy_level")), 2)
	s.AvgSleep = round(mean(column(records, "sleep_hours")), 2)
	s.AvgWorkHours = round(mean(column(records, "work_hours")), 2)
	s.AvgExercise = round(mean(exercise), 2)

	first, last := records[0], records[len(records)-1]
	s.MoodTrend = trend(float64(first.MoodScore), float64(last.MoodScore))
	s.StressTrend = trend(float64(first.StressLevel), float64(last.StressLevel))
	return s
}

// Correlations returns the defined Pearson coefficients of the fixed factor
// pairs. Pairs with a constant side are left out.
func Correlations(records []models.CheckIn) []Correlation {
	out := []Correlation{}
	for _, p := range correlationPairs {
		r, ok := pearson(column(records, p.x), column(records, p.y))
		if !ok {
			continue
		}
		out = append(out, Correlation{
			Pair:      p.name,
			X:         p.x,
			Y:         p.y,
			R:         round(r, 3),
			Strength:  strength(r),
			Direction: direction(r),
		})
	}
	return out
}

func strength(r float64) string {
	switch a := max(r, -r); {
	case a > 0.3:
		return "strong"
	case a > 0.1:
		return "moderate"
	}
	return "weak"
}

func direction(r float64) string {
	if r < 0 {
		return "negative"
	}
	return "positive"
}

type band struct {
	label string
	upper float64
}

// Bands are right-closed: a value lands in the first band whose upper bound
// it does not exceed. The lowest band is closed at 0 too, so a night without
// sleep or a day off work is still counted.
var (
	sleepBands = []band{{"<6h", 6}, {"6-7h", 7}, {"7-9h", 9}, {">9h", 24}}
	workBands  = []band{{"<6h", 6}, {"6-8h", 8}, {"8-10h", 10}, {">10h", 24}}
)

func distribution(values []float64, bands []band) []Bucket {
	out := make([]Bucket, len(bands))
	for i, b := range bands {
		out[i].Label = b.label
	}
	for _, v := range values {
		for i, b := range bands {
			if v <= b.upper {
				out[i].Count++
				break
			}
		}
	}
	return out
}

var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

func WeekdayExercise(records []models.CheckIn) []WeekdayMean {
	sums := map[time.Weekday]float64{}
	counts := map[time.Weekday]int{}
	for _, c := range records {
		day := c.Day()
		if day.IsZero() {
			continue
		}
		sums[day.Weekday()] += float64(c.ExerciseMinutes)
		counts[day.Weekday()]++
	}

	out := make([]WeekdayMean, 0, len(weekdays))
	for _, wd := range weekdays {
		m := WeekdayMean{Day: wd.String(), Entries: counts[wd]}
		if counts[wd] > 0 {
			m.Mean = round(sums[wd]/float64(counts[wd]), 2)
		}
		out = append(out, m)
	}
	return out
}

func Insights(records []models.CheckIn) []Insight {
	if len(records) == 0 {
		return []Insight{}
	}

	var out []Insight

	switch sleep := mean(column(records, "sleep_hours")); {
	case sleep < 7:
		out = append(out, Insight{"sleep", "You're averaging less than 7 hours of sleep. Consider improving your sleep hygiene."})
	case sleep > 9:
		out = append(out, Insight{"sleep", "You're sleeping more than 9 hours on average. Quality might be more important than quantity."})
	default:
		out = append(out, Insight{"sleep", "You're maintaining healthy sleep hours (7-9 hours)."})
	}

	switch exercise := mean(column(records, "exercise_minutes")); {
	case exercise < 15:
		out = append(out, Insight{"exercise", "Try to aim for at least 30 minutes of exercise most days."})
	case exercise >= 30:
		out = append(out, Insight{"exercise", "You're maintaining excellent physical activity levels."})
	}

	if mean(column(records, "work_hours")) > 10 {
		out = append(out, Insight{"work", "Consider reducing work hours or improving work efficiency to reduce stress."})
	}

	highStress := 0
	for _, c := range records {
		if c.StressLevel >= 7 {
			highStress++
		}
	}
	if float64(highStress) > float64(len(records))*0.3 {
		out = append(out, Insight{"stress", fmt.Sprintf(
			"You've had high stress levels on %d of %d days. Consider stress reduction techniques.",
			highStress, len(records))})
	}
	return out
}
