package main

// Selection widget values mirrored by the form page.
var (
	Cuisines = []string{
		"American", "Chinese", "French", "Indian", "Italian", "Japanese", "Mexican", "Turkish",
	}

	DietaryPreferences = []string{
		"Diabetes", "Gluten free", "Halal", "Keto", "Kosher", "Lactose Intolerance", "Paleo", "Vegan", "Vegetarian", "None",
	}

	WinePreferences = []string{"Red", "White", "None"}
)

// Form defaults matching the placeholder values of the free-text inputs.
const (
	DefaultAllergy     = "peanuts"
	DefaultIngredient1 = "ahi tuna"
	DefaultIngredient2 = "chicken breast"
	DefaultIngredient3 = "tofu"
)

type RecipeRequest struct {
	Cuisine           string `json:"cuisine" form:"cuisine"`
	DietaryPreference string `json:"dietary_preference" form:"dietary_preference"`
	Allergy           string `json:"allergy" form:"allergy"`
	Ingredient1       string `json:"ingredient1" form:"ingredient1"`
	Ingredient2       string `json:"ingredient2" form:"ingredient2"`
	Ingredient3       string `json:"ingredient3" form:"ingredient3"`
	WinePreference    string `json:"wine_preference" form:"wine_preference"`
}

// ApplyDefaults fills the free-text fields the same way the form pre-fills
// them. Selections without widget defaults stay as given, empty included.
func (r *RecipeRequest) ApplyDefaults() {
	if r.Allergy == "" {
		r.Allergy = DefaultAllergy
	}
	if r.Ingredient1 == "" {
		r.Ingredient1 = DefaultIngredient1
	}
	if r.Ingredient2 == "" {
		r.Ingredient2 = DefaultIngredient2
	}
	if r.Ingredient3 == "" {
		r.Ingredient3 = DefaultIngredient3
	}
}

func (r *RecipeRequest) Ingredients() []string {
	return []string{r.Ingredient1, r.Ingredient2, r.Ingredient3}
}

type GenerationResult struct {
	Prompt  string `json:"prompt"`
	Recipes string `json:"recipes"`
}

type WebSocketsMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type ProcessingResult struct {
	Err error
	Msg WebSocketsMessage
}
