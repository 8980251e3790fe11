package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mindguard/internal/models"
	"mindguard/internal/usecases"
)

// deleteConfirmation must be echoed back before any data is removed.
const deleteConfirmation = "DELETE"

type PrivacyHandler struct {
	service *usecases.PrivacyService
	now     func() time.Time
}

func NewPrivacyHandler(s *usecases.PrivacyService) *PrivacyHandler {
	return &PrivacyHandler{service: s, now: time.Now}
}

func (ph *PrivacyHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/privacy.go HandleSummary"

	sum, err := ph.service.Summary(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, sum)
}

// HandleExport downloads the user's check-ins. format is csv (default) or
// json; anonymize=true drops the user id.
func (ph *PrivacyHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/privacy.go HandleExport"

	q := r.URL.Query()
	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = usecases.FormatCSV
	}
	anonymize, _ := strconv.ParseBool(q.Get("anonymize"))

	var buf bytes.Buffer
	if err := ph.service.Export(r.Context(), UserID(r.Context()), format, anonymize, &buf); err != nil {
		writeError(w, op, err)
		return
	}

	contentType := "text/csv"
	if format == usecases.FormatJSON {
		contentType = "application/json"
	}
	filename := fmt.Sprintf("mental_health_data_%s.%s", models.FormatDay(ph.now()), format)

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Println("Failed to write export in ", op, "with error: ", err)
	}
}

// HandleImport reads a CSV or JSON upload from the request body. The format
// comes from the format parameter or the Content-Type.
func (ph *PrivacyHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/privacy.go HandleImport"

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		if strings.Contains(r.Header.Get("Content-Type"), "json") {
			format = usecases.FormatJSON
		} else {
			format = usecases.FormatCSV
		}
	}

	res, err := ph.service.Import(r.Context(), UserID(r.Context()), format, http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, res)
}

type deleteRequest struct {
	Scope   string `json:"scope"`
	Days    int    `json:"days"`
	Confirm string `json:"confirm"`
}

func (ph *PrivacyHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/privacy.go HandleDelete"

	var req deleteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, op, err)
		return
	}
	if req.Confirm != deleteConfirmation {
		writeError(w, op, &usecases.ValidationError{Fields: []usecases.FieldError{
			{Field: "confirm", Message: `must be "` + deleteConfirmation + `"`},
		}})
		return
	}

	res, err := ph.service.Delete(r.Context(), UserID(r.Context()), req.Scope, req.Days)
	if err != nil {
		writeError(w, op, err)
		return
	}
	log.Printf("%s: removed %d entries with scope %s", op, res.Removed, res.Scope)
	writeJSON(w, op, http.StatusOK, res)
}
