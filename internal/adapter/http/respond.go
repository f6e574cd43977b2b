package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yummy-restaurant/backend/internal/domain"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error  string       `json:"error"`
	Errors []FieldError `json:"errors,omitempty"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, message string, statusCode int, fieldErrors []FieldError) {
	respondJSON(w, statusCode, ErrorResponse{Error: message, Errors: fieldErrors})
}

// respondDomainError maps the domain error taxonomy onto HTTP statuses:
// validation 400, not found 404, conflict 409, integrity violations a 500
// with their own marker, and unexpected faults a generic 500.
func respondDomainError(w http.ResponseWriter, err error) {
	var (
		verrs     domain.ValidationErrors
		verr      *domain.ValidationError
		notFound  *domain.NotFoundError
		conflict  *domain.ConflictError
		integrity *domain.IntegrityError
	)

	switch {
	case errors.As(err, &verrs):
		fields := make([]FieldError, len(verrs))
		for i, v := range verrs {
			fields[i] = FieldError{Field: v.Field, Message: v.Message}
		}
		respondError(w, "Validation failed", http.StatusBadRequest, fields)

	case errors.As(err, &verr):
		respondError(w, verr.Message, http.StatusBadRequest, []FieldError{
			{Field: verr.Field, Message: verr.Message},
		})

	case errors.As(err, &notFound):
		respondError(w, notFound.Error(), http.StatusNotFound, nil)

	case errors.As(err, &conflict):
		respondError(w, conflict.Error(), http.StatusConflict, nil)

	case errors.As(err, &integrity):
		respondError(w, "Data integrity error", http.StatusInternalServerError, nil)

	default:
		respondError(w, "Server error", http.StatusInternalServerError, nil)
	}
}
