package handlers

import (
	"net/http"

	"mindguard/internal/usecases"
)

// Services are the usecases the API is served from.
type Services struct {
	CheckIns      *usecases.CheckInService
	Analysis      *usecases.AnalysisService
	Forecast      *usecases.ForecastService
	Interventions *usecases.InterventionService
	Privacy       *usecases.PrivacyService
}

func NewRouter(s Services, defaultUser string) http.Handler {
	checkins := NewCheckInHandler(s.CheckIns)
	analysis := NewAnalysisHandler(s.Analysis, s.Forecast)
	interventions := NewInterventionHandler(s.Interventions)
	privacy := NewPrivacyHandler(s.Privacy)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", HandleHealth)

	mux.HandleFunc("POST /api/checkins", checkins.HandleSubmit)
	mux.HandleFunc("GET /api/checkins", checkins.HandleList)
	mux.HandleFunc("GET /api/checkins/today", checkins.HandleToday)
	mux.HandleFunc("GET /api/checkins/{date}", checkins.HandleGet)
	mux.HandleFunc("GET /api/dashboard", checkins.HandleDashboard)

	mux.HandleFunc("GET /api/analysis", analysis.HandleLifestyle)
	mux.HandleFunc("GET /api/progress", analysis.HandleProgress)
	mux.HandleFunc("GET /api/forecast", analysis.HandleForecast)
	mux.HandleFunc("POST /api/models/{target}/train", analysis.HandleTrain)
	mux.HandleFunc("POST /api/models/{target}/predict", analysis.HandlePredict)

	mux.HandleFunc("GET /api/interventions", interventions.HandleCatalog)
	mux.HandleFunc("GET /api/interventions/recommendations", interventions.HandleRecommend)
	mux.HandleFunc("GET /api/interventions/daily", interventions.HandleDaily)
	mux.HandleFunc("GET /api/interventions/log", interventions.HandleLogs)
	mux.HandleFunc("POST /api/interventions/log", interventions.HandleComplete)
	mux.HandleFunc("GET /api/interventions/{title}", interventions.HandleLookup)
	mux.HandleFunc("GET /api/plan", interventions.HandlePlan)
	mux.HandleFunc("POST /api/plan", interventions.HandleAddToPlan)

	mux.HandleFunc("GET /api/education", HandleEducation)

	mux.HandleFunc("GET /api/privacy/summary", privacy.HandleSummary)
	mux.HandleFunc("GET /api/privacy/export", privacy.HandleExport)
	mux.HandleFunc("POST /api/privacy/import", privacy.HandleImport)
	mux.HandleFunc("POST /api/privacy/delete", privacy.HandleDelete)

	return WithUser(defaultUser, mux)
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, "internal/handlers/router.go HandleHealth", http.StatusOK, map[string]string{"health": "ok"})
}
