package entity

import (
	"context"
	"time"
)

const (
	ReviewStatusApproved = "Approved"
	ReviewStatusPending  = "Pending"
	ReviewStatusRejected = "Rejected"
)

type Review struct {
	ID          string    `json:"id"`
	ProductSlug string    `json:"product_slug"`
	AuthorName  string    `json:"author_name"`
	Rating      int       `json:"rating"`
	ReviewText  string    `json:"review_text"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReviewRepositoryInterface interface {
	Create(ctx context.Context, review *Review) error

	// FindApprovedByProductSlug returns approved reviews only, newest first.
	FindApprovedByProductSlug(ctx context.Context, slug string) ([]Review, error)
}
