package entity

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrEmailAlreadyExists maps the storage unique-violation on leads.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrTokenNotGenerated means the insert succeeded but the row came back
	// without a verification token. That is a schema misconfiguration, not
	// something callers may swallow.
	ErrTokenNotGenerated = errors.New("verification token was not generated")
)

type Lead struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	FirstName         string    `json:"first_name,omitempty"`
	ZipCode           string    `json:"zip_code,omitempty"`
	DateOfBirth       string    `json:"date_of_birth,omitempty"`
	VerificationToken string    `json:"-"`
	IsVerified        bool      `json:"is_verified"`
	CouponCode        string    `json:"coupon_code,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type LeadRepositoryInterface interface {

	// Create inserts the lead and fills in the generated ID, verification
	// token and creation timestamp. Returns ErrEmailAlreadyExists on a
	// duplicate email.
	Create(ctx context.Context, lead *Lead) error

	// MarkVerified flips is_verified for the lead matching the token and
	// reports how many rows matched. Matching zero rows is not an error.
	MarkVerified(ctx context.Context, token string) (int64, error)
}
