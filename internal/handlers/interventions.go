package handlers

import (
	"net/http"

	"mindguard/internal/usecases"
)

type InterventionHandler struct {
	service *usecases.InterventionService
}

func NewInterventionHandler(s *usecases.InterventionService) *InterventionHandler {
	return &InterventionHandler{service: s}
}

type interventionRequest struct {
	Name string `json:"intervention_name"`
}

func (ih *InterventionHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/interventions.go HandleCatalog"

	list, err := ih.service.Catalog(r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, list)
}

func (ih *InterventionHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/interventions.go HandleLookup"

	iv, err := ih.service.Lookup(r.PathValue("title"))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, iv)
}

func (ih *InterventionHandler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/interventions.go HandleRecommend"

	rec, err := ih.service.Recommend(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, rec)
}

func (ih *InterventionHandler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/interventions.go HandleDaily"

	iv, err := ih.service.DailySuggestion(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, iv)
}

func (ih *InterventionHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/interventions.go HandleComplete"

	var req interventionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, op, err)
		return
	}

	entry, err := ih.service.Complete(r.Context(), UserID(r.Context()), req.Name)
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusCreated, entry)
}

func (ih *InterventionHandler) HandleLogs(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/interventions.go HandleLogs"

	logs, err := ih.service.Logs(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, logs)
}

func (ih *InterventionHandler) HandleAddToPlan(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/interventions.go HandleAddToPlan"

	var req interventionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, op, err)
		return
	}

	plan, err := ih.service.Plan(r.Context(), UserID(r.Context()), req.Name)
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, plan)
}

func (ih *InterventionHandler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/interventions.go HandlePlan"

	plan, err := ih.service.ActionPlan(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, plan)
}
