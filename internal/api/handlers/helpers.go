package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"rail-booking-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeDomainError maps the error taxonomy onto HTTP statuses. Transient
// store failures are retryable and surface as 503; anything unclassified is
// logged and reported as a plain 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		notFound   *domain.NotFoundError
		conflict   *domain.ConflictError
		validation *domain.ValidationError
		transient  *domain.TransientError
	)

	switch {
	case errors.As(err, &notFound):
		writeError(w, r, http.StatusNotFound, notFound.Message)
	case errors.As(err, &conflict):
		writeError(w, r, http.StatusConflict, conflict.Message)
	case errors.As(err, &validation):
		writeError(w, r, http.StatusBadRequest, validation.Message)
	case errors.As(err, &transient):
		writeError(w, r, http.StatusServiceUnavailable, "store temporarily unavailable")
	default:
		log.Printf("request failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// decodeStrict reads exactly one JSON object with no unknown fields. It
// writes the 400 itself and reports whether decoding succeeded.
func decodeStrict(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}

	return true
}
