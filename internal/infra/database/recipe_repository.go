package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
)

type RecipeRepository struct {
	DB *sql.DB
}

func NewRecipeRepository(db *sql.DB) *RecipeRepository {
	return &RecipeRepository{DB: db}
}

func (r *RecipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO recipes (id, slug, name, product_slug, ingredients, instructions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (slug)
		DO UPDATE SET
			name = EXCLUDED.name,
			product_slug = EXCLUDED.product_slug,
			ingredients = EXCLUDED.ingredients,
			instructions = EXCLUDED.instructions
	`

	_, err = r.DB.ExecContext(
		ctx,
		query,
		recipe.ID,
		recipe.Slug,
		recipe.Name,
		recipe.ProductSlug,
		ingredients,
		recipe.Instructions,
		recipe.CreatedAt,
	)

	return err
}

func (r *RecipeRepository) FindAll(ctx context.Context) ([]entity.Recipe, error) {
	query := `
		SELECT id, slug, name, product_slug, ingredients, instructions, created_at
		FROM recipes
		ORDER BY name
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := []entity.Recipe{}
	for rows.Next() {
		recipe, err := scanRecipe(rows.Scan)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *recipe)
	}

	return recipes, rows.Err()
}

func (r *RecipeRepository) FindBySlug(ctx context.Context, slug string) (*entity.Recipe, error) {
	query := `
		SELECT id, slug, name, product_slug, ingredients, instructions, created_at
		FROM recipes
		WHERE slug = $1
	`

	row := r.DB.QueryRowContext(ctx, query, slug)
	recipe, err := scanRecipe(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return recipe, nil
}

func scanRecipe(scan func(dest ...any) error) (*entity.Recipe, error) {
	var recipe entity.Recipe
	var ingredients []byte

	if err := scan(
		&recipe.ID,
		&recipe.Slug,
		&recipe.Name,
		&recipe.ProductSlug,
		&ingredients,
		&recipe.Instructions,
		&recipe.CreatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(ingredients, &recipe.Ingredients); err != nil {
		return nil, err
	}

	return &recipe, nil
}
