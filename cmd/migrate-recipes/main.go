// Command migrate-recipes seeds the recipes table from the hand-written
// cocktail list, parsing each ingredient line into its structured form.
// Safe to re-run; existing slugs are updated in place.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
	"github.com/tikaramspirits/tikaram-api/internal/infra/database"
	"github.com/tikaramspirits/tikaram-api/internal/recipes"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := database.NewConnection(dbURL)
	if err != nil {
		log.WithError(err).Fatal("Could not connect to database")
	}
	defer db.Close()

	repo := database.NewRecipeRepository(db)
	ctx := context.Background()

	for _, seed := range recipes.Seed {
		ingredients := make([]entity.RecipeIngredient, 0, len(seed.Ingredients))
		for _, line := range seed.Ingredients {
			ingredients = append(ingredients, recipes.ParseIngredient(line))
		}

		recipe := &entity.Recipe{
			ID:           uuid.New().String(),
			Slug:         seed.Slug,
			Name:         seed.Name,
			ProductSlug:  recipes.MapProductSlug(seed.BaseSpirit, seed.Slug, seed.Name),
			Ingredients:  ingredients,
			Instructions: seed.Instructions,
			CreatedAt:    time.Now(),
		}

		if err := repo.Create(ctx, recipe); err != nil {
			log.WithError(err).WithField("slug", recipe.Slug).Fatal("Failed to insert recipe")
		}
		log.WithFields(log.Fields{
			"slug":    recipe.Slug,
			"product": recipe.ProductSlug,
		}).Info("Recipe migrated")
	}

	log.WithField("count", len(recipes.Seed)).Info("Recipe migration complete")
}
