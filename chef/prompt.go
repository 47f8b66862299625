package main

import (
	"github.com/tmc/langchaingo/prompts"
)

const chefPromptTemplate = `I am a Chef. I need to create {{.cuisine}}
recipes for customers who want {{.dietaryPreference}} meals.
However, don't include recipes that use ingredients with the customer's {{.allergy}} allergy.
I have {{.ingredient1}},
{{.ingredient2}},
and {{.ingredient3}}
in my kitchen and other ingredients.
The customer's wine preference is {{.winePreference}}.
Please provide some meal recommendations.
For each recommendation include preparation instructions,
time to prepare
and the recipe title at the beginning of the response.
Then include the wine pairing for each recommendation.
At the end of the recommendation provide the calories associated with the meal
and the nutritional facts.`

var chefPrompt = prompts.NewPromptTemplate(chefPromptTemplate, []string{
	"cuisine",
	"dietaryPreference",
	"allergy",
	"ingredient1",
	"ingredient2",
	"ingredient3",
	"winePreference",
})

// BuildPrompt renders the chef instruction for one set of selections. It is a
// plain textual substitution, every field is interpolated as given.
func BuildPrompt(req RecipeRequest) (string, error) {
	return chefPrompt.Format(map[string]any{
		"cuisine":           req.Cuisine,
		"dietaryPreference": req.DietaryPreference,
		"allergy":           req.Allergy,
		"ingredient1":       req.Ingredient1,
		"ingredient2":       req.Ingredient2,
		"ingredient3":       req.Ingredient3,
		"winePreference":    req.WinePreference,
	})
}
