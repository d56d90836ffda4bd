package recipes

// SeedRecipe is the raw, human-written form of a cocktail recipe before its
// ingredient lines are parsed.
type SeedRecipe struct {
	Slug         string
	Name         string
	BaseSpirit   string
	Ingredients  []string
	Instructions string
}

var Seed = []SeedRecipe{
	{
		Slug:       "ponce-mojito",
		Name:       "Ponce Mojito",
		BaseSpirit: "rum",
		Ingredients: []string{
			"2oz Ponce Rum",
			"0.75oz Lime Juice",
			"0.5oz Simple Syrup",
			"Fresh Mint",
			"Club Soda",
		},
		Instructions: "Muddle mint with syrup and lime, add rum and ice, top with soda.",
	},
	{
		Slug:       "florida-old-fashioned",
		Name:       "Florida Old Fashioned",
		BaseSpirit: "bourbon",
		Ingredients: []string{
			"2oz Florida Bourbon",
			"0.25oz Demerara Syrup",
			"2 Dashes Angostura Bitters",
			"Orange Peel",
		},
		Instructions: "Stir with ice, strain over a large cube, express the orange peel.",
	},
	{
		Slug:       "paan-colada",
		Name:       "Paan Colada",
		BaseSpirit: "liqueur",
		Ingredients: []string{
			"1.5oz Paan Liqueur",
			"1oz Coconut Cream",
			"2oz Pineapple Juice",
			"Crushed Ice",
		},
		Instructions: "Blend until smooth, pour into a hurricane glass.",
	},
	{
		Slug:       "tampa-sunrise",
		Name:       "Tampa Sunrise",
		BaseSpirit: "tequila",
		Ingredients: []string{
			"2oz Tikaram Tequila",
			"4oz Orange Juice",
			"Splash of Grenadine",
		},
		Instructions: "Build over ice, float the grenadine, do not stir.",
	},
	{
		Slug:       "key-lime-margarita",
		Name:       "Key Lime Margarita",
		BaseSpirit: "tequila",
		Ingredients: []string{
			"2oz Tikaram Key Lime Tequila",
			"1oz Lime Juice",
			"0.75oz Orange Liqueur",
			"Salt Rim",
		},
		Instructions: "Shake hard with ice, strain into a salted glass.",
	},
	{
		Slug:       "betel-leaf-fizz",
		Name:       "Betel Leaf Fizz",
		BaseSpirit: "liqueur",
		Ingredients: []string{
			"1.5oz Paan Liqueur",
			"0.5oz Lemon Juice",
			"Dash Angostura",
			"Sparkling Water",
		},
		Instructions: "Shake the first three, strain tall, top with sparkling water.",
	},
}
