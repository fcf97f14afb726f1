package handlers

import (
	"KeepEat-Backend/domain"
	"KeepEat-Backend/internal/api/presenters"
	"KeepEat-Backend/pkg/settings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SettingsHandler interface {
		GetSettings(c *fiber.Ctx) error
		SaveSettings(c *fiber.Ctx) error
	}

	settingsHandler struct {
		settingsService settings.SettingsService
		validator       *validator.Validate
	}
)

func NewSettingsHandler(settingsService settings.SettingsService, validator *validator.Validate) SettingsHandler {
	return &settingsHandler{
		settingsService: settingsService,
		validator:       validator,
	}
}

func (h *settingsHandler) GetSettings(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res := h.settingsService.GetSettings(c.Context(), userID)

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSettings)
}

func (h *settingsHandler) SaveSettings(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveSettingsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveSettings, err)
	}

	res := h.settingsService.SaveSettings(c.Context(), *req, userID)

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveSettings)
}
