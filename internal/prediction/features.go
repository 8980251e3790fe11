package prediction

import "mindguard/internal/models"

const (
	TargetStress = "stress_level"
	TargetMood   = "mood_score"
)

// BaseFeatures are the raw check-in metrics fed to the models.
var BaseFeatures = []string{
	"sleep_hours",
	"exercise_minutes",
	"work_hours",
	"caffeine_intake",
	"alcohol_intake",
	"meditation_minutes",
	"mood_score",
	"energy_level",
}

// DerivedFeatures are indicator and interaction terms built from the base ones.
var DerivedFeatures = []string{
	"sleep_quality",
	"exercise_sufficient",
	"work_life_balance",
	"high_caffeine",
	"meditation_practice",
	"mood_energy_interaction",
}

var baseDefaults = map[string]float64{
	"sleep_hours":        7,
	"exercise_minutes":   0,
	"work_hours":         8,
	"caffeine_intake":    1,
	"alcohol_intake":     0,
	"meditation_minutes": 0,
	"mood_score":         5,
	"energy_level":       5,
}

// Inputs holds base feature values by name. Absent names take their defaults.
type Inputs map[string]float64

func (in Inputs) get(name string) float64 {
	if v, ok := in[name]; ok {
		return v
	}
	return baseDefaults[name]
}

func InputsFromCheckIn(c models.CheckIn) Inputs {
	in := make(Inputs, len(BaseFeatures))
	for _, name := range BaseFeatures {
		v, _ := c.Metric(name)
		in[name] = v
	}
	return in
}

// MeanInputs averages the base features over records.
func MeanInputs(records []models.CheckIn) Inputs {
	in := Inputs{}
	if len(records) == 0 {
		return in
	}
	for _, c := range records {
		for _, name := range BaseFeatures {
			v, _ := c.Metric(name)
			in[name] += v
		}
	}
	for name := range in {
		in[name] /= float64(len(records))
	}
	return in
}

func indicator(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}

func derived(in Inputs) map[string]float64 {
	sleep := in.get("sleep_hours")
	return map[string]float64{
		"sleep_quality":           indicator(sleep >= 7 && sleep <= 9),
		"exercise_sufficient":     indicator(in.get("exercise_minutes") >= 30),
		"work_life_balance":       indicator(in.get("work_hours") <= 8),
		"high_caffeine":           indicator(in.get("caffeine_intake") > 3),
		"meditation_practice":     indicator(in.get("meditation_minutes") > 0),
		"mood_energy_interaction": in.get("mood_score") * in.get("energy_level") / 10,
	}
}

// featureNames lists the model columns for target. The mood model leaves out
// the terms that contain the mood score itself.
func featureNames(target string) []string {
	var names []string
	for _, name := range BaseFeatures {
		if target == TargetMood && name == "mood_score" {
			continue
		}
		names = append(names, name)
	}
	for _, name := range DerivedFeatures {
		if target == TargetMood && name == "mood_energy_interaction" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// vector lays in out in the order of names.
func vector(in Inputs, names []string) []float64 {
	d := derived(in)
	out := make([]float64, len(names))
	for i, name := range names {
		if v, ok := d[name]; ok {
			out[i] = v
			continue
		}
		out[i] = in.get(name)
	}
	return out
}
