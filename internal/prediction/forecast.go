package prediction

import (
	"fmt"
	"strings"
	"time"

	"mindguard/internal/models"
)

const (
	ForecastDays      = 7
	keyFactorMinShare = 0.15
	keyFactorLimit    = 3
	recentWindow      = 7
)

type ForecastDay struct {
	Date    string  `json:"date"`
	Weekend bool    `json:"weekend"`
	Stress  float64 `json:"stress"`
}

type KeyFactor struct {
	Feature     string  `json:"feature"`
	Name        string  `json:"name"`
	Importance  float64 `json:"importance"`
	RecentTrend string  `json:"recent_trend,omitempty"`
	RecentAvg   float64 `json:"recent_avg,omitempty"`
	Advice      string  `json:"advice,omitempty"`
}

type Warning struct {
	Kind           string `json:"kind"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
}

// Forecast is the stress outlook built from a trained model and recent history.
type Forecast struct {
	CurrentStress   int               `json:"current_stress"`
	PredictedStress float64           `json:"predicted_stress"`
	Trend           string            `json:"trend"`
	Risk            string            `json:"risk"`
	Days            []ForecastDay     `json:"days"`
	KeyFactors      []KeyFactor       `json:"key_factors"`
	Importance      []FactorWeight    `json:"importance"`
	Factors         map[string]string `json:"factors"`
	Warnings        []Warning         `json:"warnings"`
	Proactive       bool              `json:"proactive_intervention"`
	Metrics         *Metrics          `json:"metrics,omitempty"`
}

// RiskLevel bands a stress score.
func RiskLevel(stress float64) string {
	switch {
	case stress >= 7:
		return "HIGH"
	case stress >= 5:
		return "MODERATE"
	}
	return "LOW"
}

// BuildForecast scores the latest record, projects the next seven days and
// collects the warnings. history must be sorted by date and non-empty.
func BuildForecast(m *Model, history []models.CheckIn, today time.Time) (Forecast, error) {
	if len(history) == 0 {
		return Forecast{}, fmt.Errorf("internal/prediction/forecast.go BuildForecast: %w", ErrInsufficientData)
	}

	latest := history[len(history)-1]
	f := Forecast{
		CurrentStress:   latest.StressLevel,
		PredictedStress: m.Predict(InputsFromCheckIn(latest)),
		Importance:      m.Importance(),
		Factors:         StressFactors(InputsFromCheckIn(latest)),
		Metrics:         m.Metrics(),
	}

	current := float64(f.CurrentStress)
	switch {
	case f.PredictedStress > current:
		f.Trend = "up"
	case f.PredictedStress < current:
		f.Trend = "down"
	default:
		f.Trend = "flat"
	}
	f.Risk = RiskLevel(f.PredictedStress)

	f.Days = Project(m, tail(history, recentWindow), today)
	f.KeyFactors = keyFactors(f.Importance, tail(history, recentWindow))
	f.Warnings = warnings(f, history)

	peak := 0.0
	for _, d := range f.Days {
		peak = max(peak, d.Stress)
	}
	f.Proactive = f.PredictedStress >= 6 || peak >= 7
	return f, nil
}

// Project predicts the next ForecastDays days from the mean of recent.
// Weekend days assume half the work hours and 20% more exercise.
func Project(m *Model, recent []models.CheckIn, today time.Time) []ForecastDay {
	base := MeanInputs(recent)
	out := make([]ForecastDay, 0, ForecastDays)
	for i := 1; i <= ForecastDays; i++ {
		date := models.StartOfDay(today).AddDate(0, 0, i)
		weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday

		in := Inputs{}
		for k, v := range base {
			in[k] = v
		}
		if weekend {
			in["work_hours"] = in.get("work_hours") * 0.5
			in["exercise_minutes"] = in.get("exercise_minutes") * 1.2
		}

		out = append(out, ForecastDay{
			Date:    models.FormatDay(date),
			Weekend: weekend,
			Stress:  m.Predict(in),
		})
	}
	return out
}

func keyFactors(weights []FactorWeight, recent []models.CheckIn) []KeyFactor {
	out := []KeyFactor{}
	for _, w := range weights {
		if len(out) == keyFactorLimit {
			break
		}
		if w.Importance <= keyFactorMinShare {
			continue
		}

		kf := KeyFactor{
			Feature:    w.Feature,
			Name:       displayName(w.Feature),
			Importance: w.Importance,
		}

		var values []float64
		for _, c := range recent {
			if v, ok := c.Metric(w.Feature); ok {
				values = append(values, v)
			}
		}
		if len(values) > 1 {
			first, last := values[0], values[len(values)-1]
			switch {
			case last > first:
				kf.RecentTrend = "increasing"
			case last < first:
				kf.RecentTrend = "decreasing"
			default:
				kf.RecentTrend = "stable"
			}
			sum := 0.0
			for _, v := range values {
				sum += v
			}
			kf.RecentAvg = sum / float64(len(values))
			kf.Advice = advice(kf)
		}
		out = append(out, kf)
	}
	return out
}

func advice(kf KeyFactor) string {
	switch kf.Feature {
	case "sleep_hours":
		if kf.RecentAvg < 7 {
			return fmt.Sprintf("Your sleep hours are %s (avg: %.1fh). Aim for 7-9 hours.", kf.RecentTrend, kf.RecentAvg)
		}
		return fmt.Sprintf("Good sleep hours pattern (avg: %.1fh).", kf.RecentAvg)
	case "work_hours":
		if kf.RecentAvg > 9 {
			return fmt.Sprintf("Long work hours detected (avg: %.1fh). Consider work-life balance.", kf.RecentAvg)
		}
		return fmt.Sprintf("Reasonable work hours (avg: %.1fh).", kf.RecentAvg)
	case "exercise_minutes":
		if kf.RecentAvg < 30 {
			return fmt.Sprintf("Low exercise levels (avg: %.0f min). Increase physical activity.", kf.RecentAvg)
		}
		return fmt.Sprintf("Good exercise routine (avg: %.0f min/day).", kf.RecentAvg)
	}
	return fmt.Sprintf("Current pattern: %s (avg: %.1f)", kf.RecentTrend, kf.RecentAvg)
}

func displayName(feature string) string {
	words := strings.Split(feature, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func warnings(f Forecast, history []models.CheckIn) []Warning {
	out := []Warning{}

	peak := 0.0
	for _, d := range f.Days {
		peak = max(peak, d.Stress)
	}
	if peak >= 8 {
		out = append(out, Warning{
			Kind:           "high_stress_alert",
			Message:        "Predicted stress levels may reach critical levels in the coming days.",
			Recommendation: "Consider scheduling stress management activities and reduce non-essential commitments.",
		})
	}

	if f.PredictedStress > float64(f.CurrentStress)+1.5 {
		out = append(out, Warning{
			Kind:           "rising_stress",
			Message:        "Your stress levels are predicted to increase significantly.",
			Recommendation: "Implement preventive measures now to avoid stress escalation.",
		})
	}

	last3 := tail(history, 3)
	persistent := len(last3) > 0
	sleep := 0.0
	for _, c := range last3 {
		if c.StressLevel < 6 {
			persistent = false
		}
		sleep += c.SleepHours
	}
	if persistent {
		out = append(out, Warning{
			Kind:           "persistent_stress",
			Message:        "You've had elevated stress for multiple consecutive days.",
			Recommendation: "Consider professional support or intensive stress management techniques.",
		})
	}
	if len(last3) > 0 && sleep/float64(len(last3)) < 6 {
		out = append(out, Warning{
			Kind:           "sleep_deprivation",
			Message:        "Poor sleep may be contributing to stress vulnerability.",
			Recommendation: "Prioritize sleep hygiene and aim for 7-9 hours per night.",
		})
	}
	return out
}

// StressFactors describes each lifestyle factor of one day in plain words.
func StressFactors(in Inputs) map[string]string {
	factors := make(map[string]string, 5)

	switch sleep := in.get("sleep_hours"); {
	case sleep < 6:
		factors["sleep"] = "Severe sleep deprivation detected"
	case sleep < 7:
		factors["sleep"] = "Mild sleep deficit"
	case sleep > 9:
		factors["sleep"] = "Possible sleep quality issues"
	default:
		factors["sleep"] = "Good sleep duration"
	}

	switch work := in.get("work_hours"); {
	case work > 10:
		factors["work"] = "Excessive work hours"
	case work > 8:
		factors["work"] = "Long work hours"
	default:
		factors["work"] = "Reasonable work hours"
	}

	switch exercise := in.get("exercise_minutes"); {
	case exercise == 0:
		factors["exercise"] = "No physical activity"
	case exercise < 30:
		factors["exercise"] = "Low physical activity"
	default:
		factors["exercise"] = "Good exercise routine"
	}

	switch caffeine := in.get("caffeine_intake"); {
	case caffeine > 4:
		factors["caffeine"] = "High caffeine consumption"
	case caffeine > 2:
		factors["caffeine"] = "Moderate caffeine intake"
	default:
		factors["caffeine"] = "Low caffeine intake"
	}

	if in.get("meditation_minutes") > 0 {
		factors["self_care"] = "Practicing mindfulness"
	} else {
		factors["self_care"] = "No mindfulness practice"
	}
	return factors
}

func tail(records []models.CheckIn, n int) []models.CheckIn {
	if len(records) <= n {
		return records
	}
	return records[len(records)-n:]
}
