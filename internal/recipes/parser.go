package recipes

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
)

var (
	amountWithUnit   = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+([a-zA-Z]+)\s+(.+)$`)
	amountUnitConcat = regexp.MustCompile(`^(\d+(?:\.\d+)?)([a-zA-Z]+)\s+(.+)$`)
	splashOf         = regexp.MustCompile(`(?i)^Splash\s+of\s+(.+)$`)
)

// Bare unit words that lead an ingredient line without an amount,
// e.g. "Dash Angostura". Leading modifier words like "Fresh" or "Crushed"
// are not units; those lines fall through and keep the whole string as the
// item.
var unitWords = []string{"Dash", "Dashes", "Splash"}

// ParseIngredient turns a free-form ingredient line into its structured
// form:
//
//	"2oz Ponce Rum"     -> {2, "oz", "Ponce Rum"}
//	"0.75oz Lime Juice" -> {0.75, "oz", "Lime Juice"}
//	"Dash Angostura"    -> {nil, "dash", "Angostura"}
//	"Fresh Mint"        -> {nil, nil, "Fresh Mint"}
func ParseIngredient(ingredient string) entity.RecipeIngredient {
	trimmed := strings.TrimSpace(ingredient)

	if m := amountWithUnit.FindStringSubmatch(trimmed); m != nil {
		return measured(m[1], m[2], m[3])
	}

	if m := amountUnitConcat.FindStringSubmatch(trimmed); m != nil {
		return measured(m[1], m[2], m[3])
	}

	if m := splashOf.FindStringSubmatch(trimmed); m != nil {
		unit := "splash"
		return entity.RecipeIngredient{Unit: &unit, Item: strings.TrimSpace(m[1])}
	}

	for _, unitWord := range unitWords {
		prefix := unitWord + " "
		if len(trimmed) > len(prefix) && strings.EqualFold(trimmed[:len(prefix)], prefix) {
			unit := strings.ToLower(unitWord)
			return entity.RecipeIngredient{Unit: &unit, Item: strings.TrimSpace(trimmed[len(prefix):])}
		}
	}

	return entity.RecipeIngredient{Item: trimmed}
}

func measured(amountStr, unitStr, item string) entity.RecipeIngredient {
	amount, _ := strconv.ParseFloat(amountStr, 64)
	unit := strings.ToLower(unitStr)
	return entity.RecipeIngredient{
		Amount: &amount,
		Unit:   &unit,
		Item:   strings.TrimSpace(item),
	}
}

// MapProductSlug resolves a recipe's base spirit to the catalog product it
// features, with the key-lime bottlings split out by recipe naming.
func MapProductSlug(baseSpirit, recipeSlug, recipeName string) string {
	isKeyLime := strings.Contains(recipeSlug, "keylime") ||
		strings.Contains(recipeSlug, "key-lime") ||
		strings.Contains(strings.ToLower(recipeName), "key lime")

	switch baseSpirit {
	case "rum":
		return "ponce-de-leon-rum"
	case "bourbon":
		return "florida-bourbon"
	case "liqueur":
		if isKeyLime {
			return "tikaram-keylime-tequila"
		}
		return "paan-liqueur"
	case "tequila":
		if isKeyLime {
			return "tikaram-keylime-tequila"
		}
		return "tikaram-tequila"
	default:
		return "tikaram-tequila"
	}
}
