package community

import (
	"KeepEat-Backend/domain"
	"KeepEat-Backend/entities"
	"KeepEat-Backend/pkg/recipe"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommunityService interface {
		ShareFood(ctx context.Context, req domain.ShareFoodRequest, userID string) (domain.CommunityPostResponse, error)
		ShareRecipe(ctx context.Context, req domain.ShareRecipeRequest, userID string) (domain.CommunityPostResponse, error)
		GetFeed(ctx context.Context, userID string, viewerLat, viewerLon float64) (domain.CommunityFeedResponse, error)
		DeletePost(ctx context.Context, postID string, userID string) error
	}

	communityService struct {
		communityRepository CommunityRepository
		recipeRepository    recipe.RecipeRepository
	}
)

func NewCommunityService(communityRepository CommunityRepository, recipeRepository recipe.RecipeRepository) CommunityService {
	return &communityService{
		communityRepository: communityRepository,
		recipeRepository:    recipeRepository,
	}
}

func (s *communityService) ShareFood(ctx context.Context, req domain.ShareFoodRequest, userID string) (domain.CommunityPostResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CommunityPostResponse{}, domain.ErrParseUUID
	}

	post := entities.CommunityPost{
		ID:          uuid.New(),
		UserID:      userUUID,
		Type:        domain.PostTypeFood,
		ItemName:    req.ItemName,
		ShareType:   req.ShareType,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	if err := s.communityRepository.CreatePost(ctx, &post); err != nil {
		return domain.CommunityPostResponse{}, err
	}

	created, err := s.communityRepository.GetPostByID(ctx, post.ID.String())
	if err != nil {
		return domain.CommunityPostResponse{}, err
	}

	return s.toPostResponse(created, userID), nil
}

func (s *communityService) ShareRecipe(ctx context.Context, req domain.ShareRecipeRequest, userID string) (domain.CommunityPostResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CommunityPostResponse{}, domain.ErrParseUUID
	}

	sharedRecipe, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommunityPostResponse{}, domain.ErrRecipeNotFound
		}
		return domain.CommunityPostResponse{}, err
	}

	if sharedRecipe.UserID.String() != userID {
		return domain.CommunityPostResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	post := entities.CommunityPost{
		ID:          uuid.New(),
		UserID:      userUUID,
		Type:        domain.PostTypeRecipe,
		RecipeID:    &sharedRecipe.ID,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	if err := s.communityRepository.CreatePost(ctx, &post); err != nil {
		return domain.CommunityPostResponse{}, err
	}

	created, err := s.communityRepository.GetPostByID(ctx, post.ID.String())
	if err != nil {
		return domain.CommunityPostResponse{}, err
	}

	return s.toPostResponse(created, userID), nil
}

func (s *communityService) GetFeed(ctx context.Context, userID string, viewerLat, viewerLon float64) (domain.CommunityFeedResponse, error) {
	posts, err := s.communityRepository.GetPosts(ctx)
	if err != nil {
		return domain.CommunityFeedResponse{}, err
	}

	hasViewerPosition := viewerLat != 0 || viewerLon != 0

	responses := make([]domain.CommunityPostResponse, 0, len(posts))
	sources := make([]pinSource, 0, len(posts))
	for _, post := range posts {
		response := s.toPostResponse(post, userID)
		if hasViewerPosition {
			response.DistanceKm = DistanceKm(viewerLat, viewerLon, post.Latitude, post.Longitude)
		}
		responses = append(responses, response)
		sources = append(sources, pinSource{
			PostID:    post.ID.String(),
			Latitude:  post.Latitude,
			Longitude: post.Longitude,
		})
	}

	return domain.CommunityFeedResponse{
		Posts: responses,
		Pins:  ProjectPins(sources),
	}, nil
}

func (s *communityService) DeletePost(ctx context.Context, postID string, userID string) error {
	post, err := s.communityRepository.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPostNotFound
		}
		return err
	}

	if post.UserID.String() != userID {
		return domain.ErrNotPostOwner
	}

	return s.communityRepository.DeletePost(ctx, postID)
}

func (s *communityService) toPostResponse(post *entities.CommunityPost, viewerID string) domain.CommunityPostResponse {
	response := domain.CommunityPostResponse{
		ID:          post.ID.String(),
		Type:        post.Type,
		ItemName:    post.ItemName,
		ShareType:   post.ShareType,
		Description: post.Description,
		Latitude:    post.Latitude,
		Longitude:   post.Longitude,
		IsOwn:       post.UserID.String() == viewerID,
		CreatedAt:   post.CreatedAt,
	}

	if post.User != nil {
		response.Initiator = domain.PostInitiator{
			ID:   post.User.ID.String(),
			Name: post.User.Name,
			Role: post.User.Role,
		}
	}

	if post.Recipe != nil {
		recipeResponse := recipe.ToSavedRecipeResponse(post.Recipe)
		response.Recipe = &recipeResponse
	}

	return response
}
