package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
)

var ErrDuplicateInquiry = errors.New("inquiry already exists")

type InquiryRepository struct {
	DB *sql.DB
}

func NewInquiryRepository(db *sql.DB) *InquiryRepository {
	return &InquiryRepository{DB: db}
}

func (r *InquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, name, email, inquiry_type, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		inquiry.ID,
		inquiry.Name,
		inquiry.Email,
		inquiry.InquiryType,
		inquiry.Message,
		inquiry.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateInquiry
		}
		return err
	}

	return nil
}
