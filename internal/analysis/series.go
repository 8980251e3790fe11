// Package analysis computes the windowed statistics shown on the lifestyle and
// progress views. Every function is pure: the same records give the same
// output.
package analysis

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"mindguard/internal/models"
)

// Windows are the supported lookback periods in days.
var Windows = []int{7, 30, 90}

// Cutoff is the first day included in a window of days ending today.
func Cutoff(today time.Time, days int) time.Time {
	return models.StartOfDay(today).AddDate(0, 0, -days)
}

// Filter keeps the records dated on or after Cutoff(today, days).
func Filter(records []models.CheckIn, today time.Time, days int) []models.CheckIn {
	from := models.FormatDay(Cutoff(today, days))
	out := []models.CheckIn{}
	for _, c := range records {
		if c.Date >= from {
			out = append(out, c)
		}
	}
	return out
}

func column(records []models.CheckIn, metric string) []float64 {
	out := make([]float64, 0, len(records))
	for _, c := range records {
		v, _ := c.Metric(metric)
		out = append(out, v)
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// sampleStd is the n-1 standard deviation. ok is false below two values.
func sampleStd(xs []float64) (float64, bool) {
	if len(xs) < 2 {
		return 0, false
	}
	return stat.StdDev(xs, nil), true
}

// pearson is undefined for fewer than two points or a constant series.
func pearson(x, y []float64) (float64, bool) {
	if len(x) < 2 || len(x) != len(y) {
		return 0, false
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

func share(records []models.CheckIn, pred func(models.CheckIn) bool) float64 {
	if len(records) == 0 {
		return 0
	}
	hits := 0
	for _, c := range records {
		if pred(c) {
			hits++
		}
	}
	return float64(hits) / float64(len(records))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func roundPtr(v float64, ok bool) *float64 {
	if !ok || math.IsNaN(v) {
		return nil
	}
	r := round(v, 2)
	return &r
}

func trend(first, last float64) string {
	switch {
	case last > first:
		return "up"
	case last < first:
		return "down"
	}
	return "flat"
}
