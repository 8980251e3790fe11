package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"mindguard/internal/prediction"
	"mindguard/internal/storage"
	"mindguard/internal/usecases"
)

// maxBodyBytes caps JSON and import bodies.
const maxBodyBytes = 10 << 20

func writeJSON(w http.ResponseWriter, op string, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	response := map[string]any{
		"status": "success",
		"data":   data,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Println("Failed to encode response in ", op, "with error: ", err)
	}
}

func writeMessage(w http.ResponseWriter, op string, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	response := map[string]any{
		"status": "error",
		"error":  msg,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Println("Failed to encode response in ", op, "with error: ", err)
	}
}

// statusFor maps usecase and storage errors onto HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecases.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, prediction.ErrInsufficientData), errors.Is(err, prediction.ErrLowVariance):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// writeError logs server-side failures and answers with the mapped status.
// Validation errors carry their field list.
func writeError(w http.ResponseWriter, op string, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Printf("%s: %v", op, err)
		writeMessage(w, op, code, "Internal error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	response := map[string]any{
		"status": "error",
		"error":  err.Error(),
	}
	var verr *usecases.ValidationError
	if errors.As(err, &verr) {
		response["error"] = "validation failed"
		response["fields"] = verr.Fields
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Println("Failed to encode response in ", op, "with error: ", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return &usecases.ValidationError{Fields: []usecases.FieldError{{Field: "body", Message: err.Error()}}}
	}
	return nil
}

// queryInt reads an optional integer query parameter.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &usecases.ValidationError{Fields: []usecases.FieldError{{Field: name, Message: "must be an integer"}}}
	}
	return n, nil
}
