package handlers

import (
	"net/http"

	"mindguard/internal/usecases"
)

type CheckInHandler struct {
	service *usecases.CheckInService
}

func NewCheckInHandler(s *usecases.CheckInService) *CheckInHandler {
	return &CheckInHandler{service: s}
}

// HandleSubmit stores the day's check-in. A second submission for the same
// date updates it and answers 200 instead of 201.
func (ch *CheckInHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/checkin.go HandleSubmit"

	var req usecases.CheckInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, op, err)
		return
	}

	res, err := ch.service.Submit(r.Context(), UserID(r.Context()), req)
	if err != nil {
		writeError(w, op, err)
		return
	}

	code := http.StatusOK
	if res.Created {
		code = http.StatusCreated
	}
	writeJSON(w, op, code, res)
}

func (ch *CheckInHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/checkin.go HandleList"

	days, err := queryInt(r, "days", 0)
	if err != nil {
		writeError(w, op, err)
		return
	}

	entries, err := ch.service.List(r.Context(), UserID(r.Context()), days)
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, entries)
}

func (ch *CheckInHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/checkin.go HandleGet"

	entry, err := ch.service.Get(r.Context(), UserID(r.Context()), r.PathValue("date"))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, entry)
}

func (ch *CheckInHandler) HandleToday(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/checkin.go HandleToday"

	entry, err := ch.service.Today(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, entry)
}

func (ch *CheckInHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/checkin.go HandleDashboard"

	d, err := ch.service.Dashboard(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, d)
}
