package database

import (
	"context"
	"database/sql"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
)

type TrafficLogRepository struct {
	DB *sql.DB
}

func NewTrafficLogRepository(db *sql.DB) *TrafficLogRepository {
	return &TrafficLogRepository{DB: db}
}

func (r *TrafficLogRepository) Create(ctx context.Context, logRow *entity.TrafficLog) error {
	query := `
		INSERT INTO traffic_logs (city, country, zip_code, path, device_type)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		nullString(logRow.City),
		nullString(logRow.Country),
		nullString(logRow.ZipCode),
		logRow.Path,
		logRow.DeviceType,
	)

	return err
}
