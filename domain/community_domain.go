package domain

import (
	"errors"
	"time"
)

const (
	PostTypeFood   = "food"
	PostTypeRecipe = "recipe"

	ShareTypeGift       = "Gift"
	ShareTypeCoCook     = "CoCook"
	ShareTypeCoEat      = "CoEat"
	ShareTypeAssistance = "Assistance"
)

var (
	MessageSuccessCreatePost = "post created successfully"
	MessageSuccessGetPosts   = "posts retrieved successfully"
	MessageSuccessDeletePost = "post deleted successfully"

	MessageFailedCreatePost = "failed to create post"
	MessageFailedGetPosts   = "failed to retrieve posts"
	MessageFailedDeletePost = "failed to delete post"

	ErrPostNotFound          = errors.New("post not found")
	ErrNotPostOwner          = errors.New("post belongs to another user")
	ErrInvalidShareType      = errors.New("invalid share type")
	ErrRecipePostNeedsRecipe = errors.New("recipe post requires a recipe id")
)

type (
	ShareFoodRequest struct {
		ItemName    string  `json:"item_name" validate:"required"`
		ShareType   string  `json:"share_type" validate:"required,oneof=Gift CoCook CoEat Assistance"`
		Description string  `json:"description"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
	}

	ShareRecipeRequest struct {
		RecipeID    string  `json:"recipe_id" validate:"required,uuid"`
		Description string  `json:"description"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
	}

	PostInitiator struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Role string `json:"role"`
	}

	CommunityPostResponse struct {
		ID          string               `json:"id"`
		Type        string               `json:"type"`
		ItemName    string               `json:"item_name,omitempty"`
		ShareType   string               `json:"share_type,omitempty"`
		Recipe      *SavedRecipeResponse `json:"recipe,omitempty"`
		Description string               `json:"description"`
		Latitude    float64              `json:"latitude"`
		Longitude   float64              `json:"longitude"`
		DistanceKm  float64              `json:"distance_km,omitempty"`
		Initiator   PostInitiator        `json:"initiator"`
		IsOwn       bool                 `json:"is_own"`
		CreatedAt   time.Time            `json:"created_at"`
	}

	// MapPin is a post projected into a bounded 2D box for the schematic
	// community map. Top and Left are percentages.
	MapPin struct {
		PostID string  `json:"post_id"`
		Top    float64 `json:"top"`
		Left   float64 `json:"left"`
	}

	CommunityFeedResponse struct {
		Posts []CommunityPostResponse `json:"posts"`
		Pins  []MapPin                `json:"pins"`
	}
)
