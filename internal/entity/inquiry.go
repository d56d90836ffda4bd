package entity

import (
	"context"
	"time"
)

type Inquiry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	InquiryType string    `json:"inquiry_type"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

type InquiryRepositoryInterface interface {
	Create(ctx context.Context, inquiry *Inquiry) error
}
