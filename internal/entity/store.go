package entity

import "context"

type Store struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	AddressLine1 string  `json:"address_line1"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zip_code"`
	Phone        string  `json:"phone,omitempty"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

type StoreRepositoryInterface interface {
	FindAll(ctx context.Context) ([]Store, error)

	// FindByProductSlug returns the stores carrying a given product, via the
	// store_products junction table.
	FindByProductSlug(ctx context.Context, slug string) ([]Store, error)
}
