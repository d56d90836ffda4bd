package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
	"github.com/tikaramspirits/tikaram-api/internal/infra/database"
	"github.com/tikaramspirits/tikaram-api/internal/usecase"
)

type InquiryHandler struct {
	Inquiries entity.InquiryRepositoryInterface
}

func NewInquiryHandler(inquiries entity.InquiryRepositoryInterface) *InquiryHandler {
	return &InquiryHandler{Inquiries: inquiries}
}

type submitInquiryRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	InquiryType string `json:"inquiryType"`
	Message     string `json:"message"`
}

// Submit handles POST /inquiries (the contact form).
func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitInquiryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.InquiryType) == "" {
		missing = append(missing, "inquiryType")
	}
	if strings.TrimSpace(req.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeMissingField,
			"missing required fields: "+strings.Join(missing, ", "))
		return
	}

	inquiry := &entity.Inquiry{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		InquiryType: req.InquiryType,
		Message:     req.Message,
		CreatedAt:   time.Now(),
	}

	if err := h.Inquiries.Create(r.Context(), inquiry); err != nil {
		if err == database.ErrDuplicateInquiry {
			writeErrorResponse(w, http.StatusConflict, "DUPLICATE_INQUIRY", "an inquiry with this information already exists")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, usecase.CodeDatabaseError, "failed to submit inquiry")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
}
