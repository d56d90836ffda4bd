package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (email, first_name, zip_code, date_of_birth, coupon_code, is_verified)
		VALUES ($1, $2, $3, NULLIF($4, '')::date, $5, false)
		RETURNING id, verification_token, created_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		lead.Email,
		nullString(lead.FirstName),
		nullString(lead.ZipCode),
		lead.DateOfBirth,
		lead.CouponCode,
	).Scan(
		&lead.ID,
		&lead.VerificationToken,
		&lead.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		return err
	}

	return nil
}

func (r *LeadRepository) MarkVerified(ctx context.Context, token string) (int64, error) {
	// The token column is a uuid; comparing its text form means a forged or
	// malformed token matches zero rows instead of failing the cast.
	query := `UPDATE leads SET is_verified = true WHERE verification_token::text = $1`

	res, err := r.DB.ExecContext(ctx, query, token)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
