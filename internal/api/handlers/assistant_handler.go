package handlers

import (
	"KeepEat-Backend/domain"
	"KeepEat-Backend/internal/api/presenters"
	"KeepEat-Backend/pkg/assistant"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AssistantHandler interface {
		ParseFoodText(c *fiber.Ctx) error
		AnalyzeFoodImage(c *fiber.Ctx) error
		Chat(c *fiber.Ctx) error
	}

	assistantHandler struct {
		assistantService assistant.AssistantService
		validator        *validator.Validate
	}
)

func NewAssistantHandler(assistantService assistant.AssistantService, validator *validator.Validate) AssistantHandler {
	return &assistantHandler{
		assistantService: assistantService,
		validator:        validator,
	}
}

// assistantStatus distinguishes a missing key, which the client resolves
// by prompting for configuration, from an upstream failure.
func assistantStatus(err error) int {
	if errors.Is(err, domain.ErrMissingAPIKey) {
		return fiber.StatusPreconditionFailed
	}
	if errors.Is(err, domain.ErrAssistantFailed) {
		return fiber.StatusBadGateway
	}
	return fiber.StatusBadRequest
}

func (h *assistantHandler) ParseFoodText(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ParseTextRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParseText, err)
	}

	res, err := h.assistantService.ParseFoodText(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, assistantStatus(err), domain.MessageFailedParseText, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessParseText)
}

func (h *assistantHandler) AnalyzeFoodImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	location := c.FormValue("location", "")

	res, err := h.assistantService.AnalyzeFoodImage(c.Context(), file, location, userID)
	if err != nil {
		return presenters.ErrorResponse(c, assistantStatus(err), domain.MessageFailedAnalyzeImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAnalyzeImage)
}

func (h *assistantHandler) Chat(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ChatRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedChatReply, err)
	}

	res, err := h.assistantService.ChatReply(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, assistantStatus(err), domain.MessageFailedChatReply, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessChatReply)
}
