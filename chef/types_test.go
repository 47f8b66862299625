package main

import "testing"

func TestApplyDefaults(t *testing.T) {
	var req RecipeRequest
	req.ApplyDefaults()

	if req.Allergy != DefaultAllergy {
		t.Errorf("expected default allergy %q, got %q", DefaultAllergy, req.Allergy)
	}
	if req.Ingredient1 != DefaultIngredient1 || req.Ingredient2 != DefaultIngredient2 || req.Ingredient3 != DefaultIngredient3 {
		t.Errorf("expected default ingredients, got %v", req.Ingredients())
	}

	// Fields without widget defaults stay empty.
	if req.Cuisine != "" || req.DietaryPreference != "" || req.WinePreference != "" {
		t.Errorf("selection fields should stay unset: %+v", req)
	}
}

func TestApplyDefaultsKeepsProvidedValues(t *testing.T) {
	req := RecipeRequest{
		Allergy:     "shellfish",
		Ingredient1: "salmon",
		Ingredient2: "rice",
		Ingredient3: "nori",
	}
	req.ApplyDefaults()

	if req.Allergy != "shellfish" {
		t.Errorf("provided allergy overwritten: %q", req.Allergy)
	}

	expected := []string{"salmon", "rice", "nori"}
	for i, ingredient := range req.Ingredients() {
		if ingredient != expected[i] {
			t.Errorf("ingredient %d: expected %q, got %q", i, expected[i], ingredient)
		}
	}
}
