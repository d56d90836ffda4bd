package database

import (
	"context"
	"database/sql"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
)

type ReviewRepository struct {
	DB *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	// Status is left to the column default ('Approved').
	query := `
		INSERT INTO reviews (id, product_slug, author_name, rating, review_text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		review.ID,
		review.ProductSlug,
		review.AuthorName,
		review.Rating,
		review.ReviewText,
		review.CreatedAt,
	)

	return err
}

func (r *ReviewRepository) FindApprovedByProductSlug(ctx context.Context, slug string) ([]entity.Review, error) {
	query := `
		SELECT id, product_slug, author_name, rating, review_text, status, created_at
		FROM reviews
		WHERE product_slug = $1 AND status = $2
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, slug, entity.ReviewStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []entity.Review{}
	for rows.Next() {
		var rev entity.Review
		if err := rows.Scan(
			&rev.ID,
			&rev.ProductSlug,
			&rev.AuthorName,
			&rev.Rating,
			&rev.ReviewText,
			&rev.Status,
			&rev.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}

	return reviews, rows.Err()
}
