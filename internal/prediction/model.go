// Package prediction trains per-user ridge regression models on check-in
// history and turns them into stress forecasts.
package prediction

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"mindguard/internal/models"
)

var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrLowVariance      = errors.New("insufficient variance in target")
)

const (
	minTrainRows   = 3
	minTargetStd   = 0.5
	minHoldoutRows = 6
	holdoutShare   = 0.3
	ridgeLambda    = 1.0
	defaultScore   = 5.0
)

// Metrics are hold-out scores from the last training run.
type Metrics struct {
	TestRows int      `json:"test_rows"`
	MSE      float64  `json:"mse"`
	R2       *float64 `json:"r2"`
}

type FactorWeight struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// Model is a standardised ridge regression on the features of one target.
type Model struct {
	target      string
	names       []string
	means       []float64
	scales      []float64
	coef        []float64
	intercept   float64
	importance  map[string]float64
	metrics     *Metrics
	trainedRows int
	trainedAt   time.Time
}

func NewStressModel() *Model {
	return newModel(TargetStress)
}

func NewMoodModel() *Model {
	return newModel(TargetMood)
}

func newModel(target string) *Model {
	return &Model{target: target, names: featureNames(target)}
}

func (m *Model) Target() string {
	return m.target
}

func (m *Model) Trained() bool {
	return len(m.coef) == len(m.names) && len(m.coef) > 0
}

func (m *Model) Metrics() *Metrics {
	return m.metrics
}

func (m *Model) TrainedRows() int {
	return m.trainedRows
}

// Train fits the model on records. It needs at least three rows and a target
// whose population standard deviation reaches 0.5.
func (m *Model) Train(records []models.CheckIn, now time.Time) error {
	op := "internal/prediction/model.go Train"

	if len(records) < minTrainRows {
		return fmt.Errorf("%s: %d rows: %w", op, len(records), ErrInsufficientData)
	}

	x := make([][]float64, len(records))
	y := make([]float64, len(records))
	for i, c := range records {
		x[i] = vector(InputsFromCheckIn(c), m.names)
		y[i], _ = c.Metric(m.target)
	}

	if _, std := stat.PopMeanStdDev(y, nil); std < minTargetStd {
		return fmt.Errorf("%s: std %.2f: %w", op, std, ErrLowVariance)
	}

	fit := fitRidge(x, y)
	m.means, m.scales, m.coef, m.intercept = fit.means, fit.scales, fit.coef, fit.intercept
	m.importance = importance(m.names, m.coef)
	m.trainedRows = len(records)
	m.trainedAt = now.UTC()
	m.metrics = nil

	if len(records) >= minHoldoutRows {
		m.metrics = holdout(x, y)
	}
	return nil
}

// Predict scores one input row. An untrained model answers 5.0.
func (m *Model) Predict(in Inputs) float64 {
	if !m.Trained() {
		return defaultScore
	}
	v := m.raw(vector(in, m.names))
	v = math.Max(1, math.Min(10, v))
	return math.Round(v*10) / 10
}

func (m *Model) raw(features []float64) float64 {
	out := m.intercept
	for j, v := range features {
		out += m.coef[j] * (v - m.means[j]) / m.scales[j]
	}
	return out
}

// Importance lists the normalised weights, largest first.
func (m *Model) Importance() []FactorWeight {
	out := make([]FactorWeight, 0, len(m.importance))
	for _, name := range m.names {
		if w, ok := m.importance[name]; ok {
			out = append(out, FactorWeight{Feature: name, Importance: w})
		}
	}
	slices.SortStableFunc(out, func(a, b FactorWeight) int {
		switch {
		case a.Importance > b.Importance:
			return -1
		case a.Importance < b.Importance:
			return 1
		}
		return 0
	})
	return out
}

func (m *Model) Snapshot() models.ModelSnapshot {
	return models.ModelSnapshot{
		Target:            m.target,
		FeatureNames:      slices.Clone(m.names),
		Means:             slices.Clone(m.means),
		Scales:            slices.Clone(m.scales),
		Coefficients:      slices.Clone(m.coef),
		Intercept:         m.intercept,
		FeatureImportance: m.importance,
		TrainedRows:       m.trainedRows,
		TrainedAt:         m.trainedAt,
	}
}

// FromSnapshot restores a saved model. Snapshots whose feature layout no
// longer matches the target are rejected.
func FromSnapshot(s models.ModelSnapshot) (*Model, error) {
	m := newModel(s.Target)
	if !slices.Equal(m.names, s.FeatureNames) {
		return nil, fmt.Errorf("internal/prediction/model.go FromSnapshot: feature layout mismatch for %s", s.Target)
	}
	n := len(m.names)
	if len(s.Means) != n || len(s.Scales) != n || len(s.Coefficients) != n {
		return nil, fmt.Errorf("internal/prediction/model.go FromSnapshot: dimension mismatch for %s", s.Target)
	}

	m.means = slices.Clone(s.Means)
	m.scales = slices.Clone(s.Scales)
	m.coef = slices.Clone(s.Coefficients)
	m.intercept = s.Intercept
	m.importance = s.FeatureImportance
	m.trainedRows = s.TrainedRows
	m.trainedAt = s.TrainedAt
	return m, nil
}

type ridgeFit struct {
	means, scales, coef []float64
	intercept           float64
}

// fitRidge standardises every column (constant columns keep scale 1) and
// solves (XᵀX + λI)β = Xᵀ(y - ȳ).
func fitRidge(x [][]float64, y []float64) ridgeFit {
	rows, cols := len(x), len(x[0])
	fit := ridgeFit{
		means:  make([]float64, cols),
		scales: make([]float64, cols),
	}

	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i := range x {
			col[i] = x[i][j]
		}
		mean, std := stat.PopMeanStdDev(col, nil)
		if std == 0 || math.IsNaN(std) {
			std = 1
		}
		fit.means[j], fit.scales[j] = mean, std
	}

	design := mat.NewDense(rows, cols, nil)
	for i := range x {
		for j := range x[i] {
			design.Set(i, j, (x[i][j]-fit.means[j])/fit.scales[j])
		}
	}

	fit.intercept = stat.Mean(y, nil)
	centred := mat.NewVecDense(rows, nil)
	for i, v := range y {
		centred.SetVec(i, v-fit.intercept)
	}

	var gram mat.Dense
	gram.Mul(design.T(), design)
	for j := 0; j < cols; j++ {
		gram.Set(j, j, gram.At(j, j)+ridgeLambda)
	}

	var rhs, beta mat.VecDense
	rhs.MulVec(design.T(), centred)
	if err := beta.SolveVec(&gram, &rhs); err != nil {
		// the ridge term keeps the system positive definite
		fit.coef = make([]float64, cols)
		return fit
	}

	fit.coef = make([]float64, cols)
	for j := range fit.coef {
		fit.coef[j] = beta.AtVec(j)
	}
	return fit
}

func importance(names []string, coef []float64) map[string]float64 {
	total := 0.0
	for _, c := range coef {
		total += math.Abs(c)
	}
	out := make(map[string]float64, len(names))
	for j, name := range names {
		if total > 0 {
			out[name] = math.Abs(coef[j]) / total
		} else {
			out[name] = 0
		}
	}
	return out
}

// holdout refits on the oldest 70% of rows and scores the newest 30%.
func holdout(x [][]float64, y []float64) *Metrics {
	test := int(math.Ceil(float64(len(x)) * holdoutShare))
	split := len(x) - test

	fit := fitRidge(x[:split], y[:split])
	probe := &Model{means: fit.means, scales: fit.scales, coef: fit.coef, intercept: fit.intercept}

	actual := y[split:]
	predicted := make([]float64, len(actual))
	sse := 0.0
	for i := range actual {
		predicted[i] = probe.raw(x[split+i])
		d := actual[i] - predicted[i]
		sse += d * d
	}

	metrics := &Metrics{TestRows: test, MSE: math.Round(sse/float64(test)*1000) / 1000}
	if _, std := stat.PopMeanStdDev(actual, nil); std > 0 {
		r2 := math.Round(stat.RSquaredFrom(predicted, actual, nil)*1000) / 1000
		metrics.R2 = &r2
	}
	return metrics
}
