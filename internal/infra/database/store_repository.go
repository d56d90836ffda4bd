package database

import (
	"context"
	"database/sql"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
)

type StoreRepository struct {
	DB *sql.DB
}

func NewStoreRepository(db *sql.DB) *StoreRepository {
	return &StoreRepository{DB: db}
}

func (r *StoreRepository) FindAll(ctx context.Context) ([]entity.Store, error) {
	query := `
		SELECT id, name, address_line1, city, state, zip_code, COALESCE(phone, ''), lat, lng
		FROM stores
		ORDER BY name
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStores(rows)
}

func (r *StoreRepository) FindByProductSlug(ctx context.Context, slug string) ([]entity.Store, error) {
	query := `
		SELECT s.id, s.name, s.address_line1, s.city, s.state, s.zip_code, COALESCE(s.phone, ''), s.lat, s.lng
		FROM stores s
		JOIN store_products sp ON sp.store_id = s.id
		WHERE sp.product_slug = $1
		ORDER BY s.name
	`

	rows, err := r.DB.QueryContext(ctx, query, slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStores(rows)
}

func scanStores(rows *sql.Rows) ([]entity.Store, error) {
	stores := []entity.Store{}
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.AddressLine1,
			&s.City,
			&s.State,
			&s.ZipCode,
			&s.Phone,
			&s.Lat,
			&s.Lng,
		); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}

	return stores, rows.Err()
}
