package assistant

import (
	"KeepEat-Backend/domain"
	"KeepEat-Backend/internal/utils"
	"KeepEat-Backend/pkg/settings"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
)

type (
	AssistantService interface {
		ParseFoodText(ctx context.Context, req domain.ParseTextRequest, userID string) (domain.ParsedFoodItem, error)
		AnalyzeFoodImage(ctx context.Context, image *multipart.FileHeader, location string, userID string) (domain.ImageAnalysis, error)
		GenerateRecipe(ctx context.Context, ingredients []string, userID string) (domain.RecipeData, error)
		GenerateRecipeImage(ctx context.Context, recipeName string, userID string) (string, error)
		ChatReply(ctx context.Context, req domain.ChatRequest, userID string) (domain.ChatResponse, error)
	}

	assistantService struct {
		provider        Provider
		settingsService settings.SettingsService
	}
)

func NewAssistantService(provider Provider, settingsService settings.SettingsService) AssistantService {
	return &assistantService{
		provider:        provider,
		settingsService: settingsService,
	}
}

// resolveAPIKey prefers the user's own key from settings, then the
// configured default. Neither present fails fast with the distinguished
// missing-credential error, before any network attempt.
func (s *assistantService) resolveAPIKey(ctx context.Context, userID string) (string, error) {
	userSettings := s.settingsService.GetSettings(ctx, userID)
	if key := strings.TrimSpace(userSettings.APIKey); key != "" {
		return key, nil
	}
	if key := utils.GetConfig("GEMINI_API_KEY"); key != "" {
		return key, nil
	}
	return "", domain.ErrMissingAPIKey
}

func (s *assistantService) ParseFoodText(ctx context.Context, req domain.ParseTextRequest, userID string) (domain.ParsedFoodItem, error) {
	if strings.TrimSpace(req.Text) == "" {
		return domain.ParsedFoodItem{}, domain.ErrEmptyText
	}

	apiKey, err := s.resolveAPIKey(ctx, userID)
	if err != nil {
		return domain.ParsedFoodItem{}, err
	}

	parsed, err := s.provider.ParseFoodText(ctx, apiKey, req.Text)
	if err != nil {
		return domain.ParsedFoodItem{}, fmt.Errorf("%w: %v", domain.ErrAssistantFailed, err)
	}

	return parsed, nil
}

func (s *assistantService) AnalyzeFoodImage(ctx context.Context, image *multipart.FileHeader, location string, userID string) (domain.ImageAnalysis, error) {
	if image == nil || image.Size == 0 {
		return domain.ImageAnalysis{}, domain.ErrEmptyImage
	}

	apiKey, err := s.resolveAPIKey(ctx, userID)
	if err != nil {
		return domain.ImageAnalysis{}, err
	}

	file, err := image.Open()
	if err != nil {
		return domain.ImageAnalysis{}, err
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		return domain.ImageAnalysis{}, err
	}

	analysis, err := s.provider.AnalyzeFoodImage(ctx, apiKey, imageData, image.Header.Get("Content-Type"), location)
	if err != nil {
		return domain.ImageAnalysis{}, fmt.Errorf("%w: %v", domain.ErrAssistantFailed, err)
	}

	return analysis, nil
}

func (s *assistantService) GenerateRecipe(ctx context.Context, ingredients []string, userID string) (domain.RecipeData, error) {
	if len(ingredients) == 0 {
		return domain.RecipeData{}, domain.ErrNoIngredients
	}

	apiKey, err := s.resolveAPIKey(ctx, userID)
	if err != nil {
		return domain.RecipeData{}, err
	}

	recipe, err := s.provider.GenerateRecipe(ctx, apiKey, ingredients)
	if err != nil {
		return domain.RecipeData{}, fmt.Errorf("%w: %v", domain.ErrAssistantFailed, err)
	}

	return recipe, nil
}

func (s *assistantService) GenerateRecipeImage(ctx context.Context, recipeName string, userID string) (string, error) {
	apiKey, err := s.resolveAPIKey(ctx, userID)
	if err != nil {
		return "", err
	}

	imageURL, err := s.provider.GenerateRecipeImage(ctx, apiKey, recipeName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAssistantFailed, err)
	}

	return imageURL, nil
}

func (s *assistantService) ChatReply(ctx context.Context, req domain.ChatRequest, userID string) (domain.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return domain.ChatResponse{}, domain.ErrEmptyText
	}

	apiKey, err := s.resolveAPIKey(ctx, userID)
	if err != nil {
		return domain.ChatResponse{}, err
	}

	reply, err := s.provider.ChatReply(ctx, apiKey, req.History, req.Message)
	if err != nil {
		return domain.ChatResponse{}, fmt.Errorf("%w: %v", domain.ErrAssistantFailed, err)
	}

	return domain.ChatResponse{Reply: reply}, nil
}
