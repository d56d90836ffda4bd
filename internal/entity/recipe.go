package entity

import (
	"context"
	"time"
)

// RecipeIngredient is the parsed form of an ingredient line such as
// "2oz Ponce Rum". Amount and Unit are nil when the line carries neither,
// e.g. "Fresh Mint".
type RecipeIngredient struct {
	Amount *float64 `json:"amount"`
	Unit   *string  `json:"unit"`
	Item   string   `json:"item"`
}

type Recipe struct {
	ID           string             `json:"id"`
	Slug         string             `json:"slug"`
	Name         string             `json:"name"`
	ProductSlug  string             `json:"product_slug"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions string             `json:"instructions"`
	CreatedAt    time.Time          `json:"created_at"`
}

type RecipeRepositoryInterface interface {
	Create(ctx context.Context, recipe *Recipe) error
	FindAll(ctx context.Context) ([]Recipe, error)
	FindBySlug(ctx context.Context, slug string) (*Recipe, error)
}
