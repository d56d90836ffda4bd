package entity

import (
	"context"
	"time"
)

const (
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
)

// TrafficLog is write-only telemetry. Every field except Path and DeviceType
// may be empty when the upstream geo lookup had no data.
type TrafficLog struct {
	ID         string    `json:"id"`
	City       string    `json:"city,omitempty"`
	Country    string    `json:"country,omitempty"`
	ZipCode    string    `json:"zip_code,omitempty"`
	Path       string    `json:"path"`
	DeviceType string    `json:"device_type"`
	CreatedAt  time.Time `json:"created_at"`
}

type TrafficLogRepositoryInterface interface {
	Create(ctx context.Context, logRow *TrafficLog) error
}
