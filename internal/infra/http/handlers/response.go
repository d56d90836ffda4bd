package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tikaramspirits/tikaram-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// writeUseCaseError maps the error taxonomy onto HTTP statuses. Duplicate
// email is the one domain error that is a conflict rather than a bad
// request.
func writeUseCaseError(w http.ResponseWriter, err error) {
	if domainErr, ok := err.(*usecase.DomainError); ok {
		status := http.StatusBadRequest
		if domainErr.Code == usecase.CodeDuplicateEmail {
			status = http.StatusConflict
		}
		writeErrorResponse(w, status, domainErr.Code, domainErr.Message)
		return
	}

	if techErr, ok := err.(*usecase.TechnicalError); ok {
		writeErrorResponse(w, http.StatusInternalServerError, techErr.Code, techErr.Message)
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
