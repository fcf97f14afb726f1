package recipe

import (
	"KeepEat-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		SaveRecipe(ctx context.Context, recipe *entities.SavedRecipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.SavedRecipe, error)
		GetRecipesByUserID(ctx context.Context, userID string) ([]*entities.SavedRecipe, error)
		DeleteRecipe(ctx context.Context, id string) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) SaveRecipe(ctx context.Context, recipe *entities.SavedRecipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.SavedRecipe, error) {
	var recipe entities.SavedRecipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipesByUserID(ctx context.Context, userID string) ([]*entities.SavedRecipe, error) {
	var recipes []*entities.SavedRecipe
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.SavedRecipe{}).Error
}
