package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
)

type SubmitReviewUseCase struct {
	Reviews ReviewRepositoryInterface
}

func NewSubmitReviewUseCase(reviews ReviewRepositoryInterface) *SubmitReviewUseCase {
	return &SubmitReviewUseCase{Reviews: reviews}
}

func (uc *SubmitReviewUseCase) Execute(ctx context.Context, input SubmitReviewInput) error {
	var missing []string
	if strings.TrimSpace(input.ProductSlug) == "" {
		missing = append(missing, "productSlug")
	}
	if strings.TrimSpace(input.AuthorName) == "" {
		missing = append(missing, "authorName")
	}
	if input.Rating == 0 {
		missing = append(missing, "rating")
	}
	if strings.TrimSpace(input.ReviewText) == "" {
		missing = append(missing, "reviewText")
	}
	if len(missing) > 0 {
		return &DomainError{
			Code:    CodeMissingField,
			Message: "missing required fields: " + strings.Join(missing, ", "),
		}
	}

	if input.Rating != math.Trunc(input.Rating) || input.Rating < 1 || input.Rating > 5 {
		return &DomainError{
			Code:    CodeInvalidRating,
			Message: "rating must be an integer between 1 and 5",
		}
	}

	review := &entity.Review{
		ID:          uuid.New().String(),
		ProductSlug: input.ProductSlug,
		AuthorName:  input.AuthorName,
		Rating:      int(input.Rating),
		ReviewText:  input.ReviewText,
		CreatedAt:   time.Now(),
	}

	if err := uc.Reviews.Create(ctx, review); err != nil {
		// The raw message is passed through for operators; callers should
		// not match on it.
		return &TechnicalError{
			Code:    CodeDatabaseError,
			Message: err.Error(),
		}
	}

	return nil
}
