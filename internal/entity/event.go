package entity

import (
	"context"
	"time"
)

const (
	EventCategoryTastings = "TASTINGS"
	EventCategoryMusic    = "MUSIC"
	EventCategoryOther    = "OTHER"
)

type Event struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Image         string    `json:"image"`
	Date          string    `json:"date"`
	EventDatetime time.Time `json:"event_datetime"`
	Location      string    `json:"location"`
	Category      string    `json:"category"`
	CTALink       string    `json:"cta_link"`
}

// FormatDate renders the event time the way the site displays it,
// e.g. "Dec 15, 2025 | 7:00 PM".
func (e *Event) FormatDate() string {
	return e.EventDatetime.Format("Jan 2, 2006 | 3:04 PM")
}

type EventRepositoryInterface interface {
	FindAll(ctx context.Context) ([]Event, error)
	FindByCategory(ctx context.Context, category string) ([]Event, error)
	FindUpcoming(ctx context.Context, after time.Time) ([]Event, error)
}
