package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGenerateRecipe = "recipe generated successfully"
	MessageSuccessSaveRecipe     = "recipe saved successfully"
	MessageSuccessGetRecipes     = "recipes retrieved successfully"
	MessageSuccessDeleteRecipe   = "recipe deleted successfully"

	MessageFailedGenerateRecipe = "failed to generate recipe"
	MessageFailedSaveRecipe     = "failed to save recipe"
	MessageFailedGetRecipes     = "failed to retrieve recipes"
	MessageFailedDeleteRecipe   = "failed to delete recipe"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrNoIngredients            = errors.New("no ingredients provided for recipe generation")
)

type (
	GenerateRecipeRequest struct {
		Ingredients []string `json:"ingredients" validate:"required,min=1,dive,required"`
	}

	RecipeStep struct {
		Instruction string `json:"instruction"`
	}

	Nutrition struct {
		Calories string `json:"calories"`
		Protein  string `json:"protein"`
		Carbs    string `json:"carbs"`
		Fat      string `json:"fat"`
	}

	// RecipeData is the schema the assistant is constrained to.
	RecipeData struct {
		RecipeName  string       `json:"recipeName"`
		Description string       `json:"description"`
		Ingredients []string     `json:"ingredients"`
		Steps       []RecipeStep `json:"steps"`
		Allergens   string       `json:"allergens"`
		Nutrition   Nutrition    `json:"nutrition"`
	}

	SaveRecipeRequest struct {
		RecipeData
		ImageURL string `json:"image_url,omitempty"`
	}

	SavedRecipeResponse struct {
		ID string `json:"id"`
		RecipeData
		ImageURL  string    `json:"image_url,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	GenerateRecipeResponse struct {
		RecipeData
		// ImageURL is best effort. Image generation failure degrades to an
		// empty URL instead of failing the recipe.
		ImageURL string `json:"image_url,omitempty"`
	}
)
