package handlers

import (
	"KeepEat-Backend/domain"
	"KeepEat-Backend/internal/api/presenters"
	"KeepEat-Backend/pkg/community"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CommunityHandler interface {
		ShareFood(c *fiber.Ctx) error
		ShareRecipe(c *fiber.Ctx) error
		GetFeed(c *fiber.Ctx) error
		DeletePost(c *fiber.Ctx) error
	}

	communityHandler struct {
		communityService community.CommunityService
		validator        *validator.Validate
	}
)

func NewCommunityHandler(communityService community.CommunityService, validator *validator.Validate) CommunityHandler {
	return &communityHandler{
		communityService: communityService,
		validator:        validator,
	}
}

func (h *communityHandler) ShareFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ShareFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePost, err)
	}

	res, err := h.communityService.ShareFood(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePost, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePost)
}

func (h *communityHandler) ShareRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ShareRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePost, err)
	}

	res, err := h.communityService.ShareRecipe(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreatePost, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePost, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePost)
}

func (h *communityHandler) GetFeed(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	viewerLat := c.QueryFloat("lat", 0)
	viewerLon := c.QueryFloat("lon", 0)

	res, err := h.communityService.GetFeed(c.Context(), userID, viewerLat, viewerLon)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPosts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPosts)
}

func (h *communityHandler) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	postID := c.Params("id")

	if err := h.communityService.DeletePost(c.Context(), postID, userID); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeletePost, err)
		}
		if errors.Is(err, domain.ErrNotPostOwner) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedDeletePost, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePost, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePost)
}
