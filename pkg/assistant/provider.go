// Package assistant mediates between local intents and the generative AI
// provider. The provider is a capability interface so the rest of the
// service depends on an abstraction rather than a vendor API.
package assistant

import (
	"KeepEat-Backend/domain"
	"context"
)

type Provider interface {
	// ParseFoodText reads a free-text utterance into a food item draft.
	ParseFoodText(ctx context.Context, apiKey string, text string) (domain.ParsedFoodItem, error)

	// AnalyzeFoodImage reads a grocery-item photo into a food item draft,
	// tagging where the expiry date came from (packaging OCR vs estimate).
	AnalyzeFoodImage(ctx context.Context, apiKey string, image []byte, mimeType string, location string) (domain.ImageAnalysis, error)

	// GenerateRecipe produces a schema-constrained recipe from ingredient
	// names.
	GenerateRecipe(ctx context.Context, apiKey string, ingredients []string) (domain.RecipeData, error)

	// GenerateRecipeImage produces an illustrative image for a recipe name
	// as a data URL.
	GenerateRecipeImage(ctx context.Context, apiKey string, recipeName string) (string, error)

	// ChatReply produces a conversational reply given a transcript.
	ChatReply(ctx context.Context, apiKey string, history []domain.ChatMessage, message string) (string, error)
}
