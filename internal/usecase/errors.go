package usecase

import (
	log "github.com/sirupsen/logrus"

	"github.com/tikaramspirits/tikaram-api/internal/infra/http/middleware"
)

const (
	CodeMissingField    = "MISSING_FIELD"
	CodeInvalidEmail    = "INVALID_EMAIL"
	CodeInvalidRating   = "INVALID_RATING"
	CodeInvalidDate     = "INVALID_DATE"
	CodeUnderage        = "UNDERAGE"
	CodeDuplicateEmail  = "DUPLICATE_EMAIL"
	CodeDatabaseError   = "DATABASE_ERROR"
	CodeTokenGeneration = "TOKEN_GENERATION_FAILURE"
)

// DomainError is caused by the caller's input and maps to a 4xx response.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure and maps to a 5xx response.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// reportBestEffort is the single sink for swallowed side-effect failures
// (email dispatch, geo lookup, telemetry writes). It logs, counts, and
// returns nothing, so a best-effort error can never leak into the outcome
// returned to a caller.
func reportBestEffort(operation string, err error) {
	log.WithError(err).WithField("operation", operation).Warn("Best-effort operation failed")
	middleware.RecordBestEffortFailure(operation)
}
