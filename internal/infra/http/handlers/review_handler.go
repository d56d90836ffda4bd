package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
	"github.com/tikaramspirits/tikaram-api/internal/infra/http/middleware"
	"github.com/tikaramspirits/tikaram-api/internal/usecase"
)

type ReviewHandler struct {
	SubmitUC *usecase.SubmitReviewUseCase
	Reviews  entity.ReviewRepositoryInterface
}

func NewReviewHandler(submitUC *usecase.SubmitReviewUseCase, reviews entity.ReviewRepositoryInterface) *ReviewHandler {
	return &ReviewHandler{
		SubmitUC: submitUC,
		Reviews:  reviews,
	}
}

// Submit handles POST /reviews.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitReviewInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		// A non-numeric rating is a rating problem, not a body problem.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "rating" {
			writeErrorResponse(w, http.StatusBadRequest, usecase.CodeInvalidRating, "rating must be an integer between 1 and 5")
			return
		}
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	if err := h.SubmitUC.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordReviewSubmitted()
	writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

// List handles GET /reviews?slug=. Only approved reviews are ever returned;
// zero of them is an empty list, not an error.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeMissingField, "product slug is required")
		return
	}

	reviews, err := h.Reviews.FindApprovedByProductSlug(r.Context(), slug)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, usecase.CodeDatabaseError, "failed to fetch reviews")
		return
	}

	if reviews == nil {
		reviews = []entity.Review{}
	}

	writeJSON(w, http.StatusOK, map[string][]entity.Review{"reviews": reviews})
}
