package recipe

import (
	"KeepEat-Backend/entities"
	"testing"

	"github.com/google/uuid"
)

func TestDecodeDataURL(t *testing.T) {
	contentType, data, err := decodeDataURL("data:image/png;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("decodeDataURL failed: %v", err)
	}
	if contentType != "image/png" {
		t.Errorf("contentType = %q, want image/png", contentType)
	}
	if string(data) != "hello" {
		t.Errorf("data = %q, want hello", data)
	}
}

func TestDecodeDataURLRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"https://example.com/image.png",
		"data:image/png;base64",
		"data:image/png;base64,!!!",
	} {
		if _, _, err := decodeDataURL(in); err == nil {
			t.Errorf("decodeDataURL(%q) succeeded, want error", in)
		}
	}
}

func TestToSavedRecipeResponse(t *testing.T) {
	stored := &entities.SavedRecipe{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		RecipeName:  "Tomato Soup",
		Description: "Warm and simple.",
		Ingredients: `["2 tomatoes","1 onion"]`,
		Steps:       `[{"instruction":"Chop."},{"instruction":"Simmer."}]`,
		Allergens:   "None",
		Nutrition:   `{"calories":"150 kcal","protein":"4g","carbs":"20g","fat":"6g"}`,
		ImageURL:    "https://bucket.example/recipes/soup.png",
	}

	res := ToSavedRecipeResponse(stored)

	if res.ID != stored.ID.String() {
		t.Errorf("ID = %q, want %q", res.ID, stored.ID.String())
	}
	if res.RecipeName != "Tomato Soup" {
		t.Errorf("RecipeName = %q", res.RecipeName)
	}
	if len(res.Ingredients) != 2 || res.Ingredients[1] != "1 onion" {
		t.Errorf("Ingredients = %v", res.Ingredients)
	}
	if len(res.Steps) != 2 || res.Steps[0].Instruction != "Chop." {
		t.Errorf("Steps = %v", res.Steps)
	}
	if res.Nutrition.Calories != "150 kcal" {
		t.Errorf("Calories = %q", res.Nutrition.Calories)
	}
	if res.ImageURL != stored.ImageURL {
		t.Errorf("ImageURL = %q", res.ImageURL)
	}
}

func TestToSavedRecipeResponseMalformedBlobs(t *testing.T) {
	stored := &entities.SavedRecipe{
		ID:          uuid.New(),
		RecipeName:  "Broken",
		Ingredients: "not json",
		Steps:       "{",
		Nutrition:   "[]",
	}

	res := ToSavedRecipeResponse(stored)

	if res.RecipeName != "Broken" {
		t.Errorf("RecipeName = %q", res.RecipeName)
	}
	if len(res.Ingredients) != 0 {
		t.Errorf("Ingredients = %v, want empty", res.Ingredients)
	}
	if len(res.Steps) != 0 {
		t.Errorf("Steps = %v, want empty", res.Steps)
	}
}
