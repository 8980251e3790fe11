package handlers

import (
	"net/http"

	"mindguard/internal/prediction"
	"mindguard/internal/usecases"
)

type AnalysisHandler struct {
	analysis *usecases.AnalysisService
	forecast *usecases.ForecastService
}

func NewAnalysisHandler(a *usecases.AnalysisService, f *usecases.ForecastService) *AnalysisHandler {
	return &AnalysisHandler{analysis: a, forecast: f}
}

// HandleLifestyle serves the 7, 30 or 90 day analysis. 30 is the default.
func (ah *AnalysisHandler) HandleLifestyle(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/analysis.go HandleLifestyle"

	days, err := queryInt(r, "days", 30)
	if err != nil {
		writeError(w, op, err)
		return
	}
	report, err := ah.analysis.Lifestyle(r.Context(), UserID(r.Context()), days)
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, report)
}

func (ah *AnalysisHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/analysis.go HandleProgress"

	days, err := queryInt(r, "days", 30)
	if err != nil {
		writeError(w, op, err)
		return
	}
	progress, err := ah.analysis.Progress(r.Context(), UserID(r.Context()), days)
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, progress)
}

func (ah *AnalysisHandler) HandleForecast(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/analysis.go HandleForecast"

	f, err := ah.forecast.Forecast(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, f)
}

func (ah *AnalysisHandler) HandleTrain(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/analysis.go HandleTrain"

	res, err := ah.forecast.Train(r.Context(), UserID(r.Context()), r.PathValue("target"))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, res)
}

// HandlePredict scores a what-if row. Omitted features take their defaults.
func (ah *AnalysisHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/analysis.go HandlePredict"

	in := prediction.Inputs{}
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, op, err)
		return
	}

	target := r.PathValue("target")
	score, err := ah.forecast.Predict(r.Context(), UserID(r.Context()), target, in)
	if err != nil {
		writeError(w, op, err)
		return
	}
	data := map[string]any{
		"target":     target,
		"prediction": score,
	}
	if target == prediction.TargetStress {
		data["risk"] = prediction.RiskLevel(score)
	}
	writeJSON(w, op, http.StatusOK, data)
}
