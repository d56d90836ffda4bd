package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
)

type RecipeHandler struct {
	Recipes entity.RecipeRepositoryInterface
}

func NewRecipeHandler(recipes entity.RecipeRepositoryInterface) *RecipeHandler {
	return &RecipeHandler{Recipes: recipes}
}

// List handles GET /recipes and GET /recipes?slug=.
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")

	if slug != "" {
		recipe, err := h.Recipes.FindBySlug(r.Context(), slug)
		if err != nil {
			log.WithError(err).Error("Failed to fetch recipe")
		}
		recipes := []entity.Recipe{}
		if recipe != nil {
			recipes = append(recipes, *recipe)
		}
		writeJSON(w, http.StatusOK, map[string][]entity.Recipe{"recipes": recipes})
		return
	}

	recipes, err := h.Recipes.FindAll(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to fetch recipes")
		recipes = []entity.Recipe{}
	}
	if recipes == nil {
		recipes = []entity.Recipe{}
	}

	writeJSON(w, http.StatusOK, map[string][]entity.Recipe{"recipes": recipes})
}
