package recipe

import (
	"KeepEat-Backend/domain"
	"KeepEat-Backend/entities"
	"KeepEat-Backend/internal/utils/storage"
	"KeepEat-Backend/pkg/assistant"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GenerateRecipe(ctx context.Context, req domain.GenerateRecipeRequest, userID string) (domain.GenerateRecipeResponse, error)
		SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.SavedRecipeResponse, error)
		GetSavedRecipes(ctx context.Context, userID string) ([]domain.SavedRecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		assistantService assistant.AssistantService
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, assistantService assistant.AssistantService, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		assistantService: assistantService,
		s3:               s3,
	}
}

func (s *recipeService) GenerateRecipe(ctx context.Context, req domain.GenerateRecipeRequest, userID string) (domain.GenerateRecipeResponse, error) {
	recipe, err := s.assistantService.GenerateRecipe(ctx, req.Ingredients, userID)
	if err != nil {
		return domain.GenerateRecipeResponse{}, err
	}

	// Illustration is best effort. A recipe without a picture is still a
	// recipe, so image failures are logged and swallowed.
	imageURL, err := s.generateAndStoreImage(ctx, recipe.RecipeName, userID)
	if err != nil {
		log.Printf("Error generating recipe image for %q: %v", recipe.RecipeName, err)
		imageURL = ""
	}

	return domain.GenerateRecipeResponse{
		RecipeData: recipe,
		ImageURL:   imageURL,
	}, nil
}

func (s *recipeService) generateAndStoreImage(ctx context.Context, recipeName string, userID string) (string, error) {
	dataURL, err := s.assistantService.GenerateRecipeImage(ctx, recipeName, userID)
	if err != nil {
		return "", err
	}

	contentType, imageData, err := decodeDataURL(dataURL)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("recipe-%s", uuid.New().String())
	objectKey, err := s.s3.UploadBytes(fileName, imageData, contentType, "recipes")
	if err != nil {
		return "", err
	}

	return s.s3.GetPublicLinkKey(objectKey), nil
}

// decodeDataURL splits a "data:<mime>;base64,<payload>" URL into its
// content type and raw bytes.
func decodeDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data url")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data url")
	}

	contentType := strings.TrimSuffix(meta, ";base64")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}

	return contentType, data, nil
}

func (s *recipeService) SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.SavedRecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SavedRecipeResponse{}, domain.ErrParseUUID
	}

	ingredients, err := json.Marshal(req.Ingredients)
	if err != nil {
		return domain.SavedRecipeResponse{}, err
	}
	steps, err := json.Marshal(req.Steps)
	if err != nil {
		return domain.SavedRecipeResponse{}, err
	}
	nutrition, err := json.Marshal(req.Nutrition)
	if err != nil {
		return domain.SavedRecipeResponse{}, err
	}

	recipe := entities.SavedRecipe{
		ID:          uuid.New(),
		UserID:      userUUID,
		RecipeName:  req.RecipeName,
		Description: req.Description,
		Ingredients: string(ingredients),
		Steps:       string(steps),
		Allergens:   req.Allergens,
		Nutrition:   string(nutrition),
		ImageURL:    req.ImageURL,
	}

	if err := s.recipeRepository.SaveRecipe(ctx, &recipe); err != nil {
		return domain.SavedRecipeResponse{}, err
	}

	return ToSavedRecipeResponse(&recipe), nil
}

func (s *recipeService) GetSavedRecipes(ctx context.Context, userID string) ([]domain.SavedRecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.SavedRecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		responses = append(responses, ToSavedRecipeResponse(recipe))
	}

	return responses, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.UserID.String() != userID {
		return domain.ErrUnauthorizedRecipeAccess
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

// ToSavedRecipeResponse decodes the JSON text columns of a stored recipe.
// Malformed blobs decode to zero values rather than failing the read.
func ToSavedRecipeResponse(recipe *entities.SavedRecipe) domain.SavedRecipeResponse {
	var (
		ingredients []string
		steps       []domain.RecipeStep
		nutrition   domain.Nutrition
	)

	if recipe.Ingredients != "" {
		if err := json.Unmarshal([]byte(recipe.Ingredients), &ingredients); err != nil {
			log.Printf("Error decoding ingredients for recipe %s: %v", recipe.ID, err)
		}
	}
	if recipe.Steps != "" {
		if err := json.Unmarshal([]byte(recipe.Steps), &steps); err != nil {
			log.Printf("Error decoding steps for recipe %s: %v", recipe.ID, err)
		}
	}
	if recipe.Nutrition != "" {
		if err := json.Unmarshal([]byte(recipe.Nutrition), &nutrition); err != nil {
			log.Printf("Error decoding nutrition for recipe %s: %v", recipe.ID, err)
		}
	}

	return domain.SavedRecipeResponse{
		ID: recipe.ID.String(),
		RecipeData: domain.RecipeData{
			RecipeName:  recipe.RecipeName,
			Description: recipe.Description,
			Ingredients: ingredients,
			Steps:       steps,
			Allergens:   recipe.Allergens,
			Nutrition:   nutrition,
		},
		ImageURL:  recipe.ImageURL,
		CreatedAt: recipe.CreatedAt,
	}
}
