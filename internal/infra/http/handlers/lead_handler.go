package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tikaramspirits/tikaram-api/internal/infra/http/middleware"
	"github.com/tikaramspirits/tikaram-api/internal/usecase"
)

type LeadHandler struct {
	CaptureUC *usecase.CaptureLeadUseCase
	VerifyUC  *usecase.VerifyLeadUseCase
}

func NewLeadHandler(captureUC *usecase.CaptureLeadUseCase, verifyUC *usecase.VerifyLeadUseCase) *LeadHandler {
	return &LeadHandler{
		CaptureUC: captureUC,
		VerifyUC:  verifyUC,
	}
}

// Capture handles POST /leads.
func (h *LeadHandler) Capture(w http.ResponseWriter, r *http.Request) {
	var input usecase.CaptureLeadInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		// A non-string email is the same client mistake as a missing one.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "email" {
			writeErrorResponse(w, http.StatusBadRequest, usecase.CodeMissingField, "email is required")
			return
		}
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	output, err := h.CaptureUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLeadCaptured()
	writeJSON(w, http.StatusCreated, output)
}

// Verify handles GET /leads/verify. It never renders an error: whatever
// happens, the visitor is redirected somewhere sensible.
func (h *LeadHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	target := h.VerifyUC.Execute(r.Context(), token)
	http.Redirect(w, r, target, http.StatusFound)
}
