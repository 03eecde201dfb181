package handlers

import (
	"Melt-App/domain"
	"Melt-App/internal/api/presenters"
	"Melt-App/pkg/mood"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AIHandler interface {
		GetStatus(c *fiber.Ctx) error
		AnalyzeMood(c *fiber.Ctx) error
		SuggestDrink(c *fiber.Ctx) error
	}

	aiHandler struct {
		moodService mood.MoodService
		validator   *validator.Validate
	}
)

func NewAIHandler(moodService mood.MoodService, validator *validator.Validate) AIHandler {
	return &aiHandler{
		moodService: moodService,
		validator:   validator,
	}
}

func (h *aiHandler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(h.moodService.Status())
}

// AnalyzeMood returns the mood payload at the top level, not wrapped in the
// envelope: the web client consumes these fields directly. Provider failure
// is absorbed inside the service and still comes back as a 200.
func (h *aiHandler) AnalyzeMood(c *fiber.Ctx) error {
	req := new(domain.MoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.moodService.AnalyzeMood(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrJournalTextRequired) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMoodRequest, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	return c.JSON(res)
}

func (h *aiHandler) SuggestDrink(c *fiber.Ctx) error {
	req := new(domain.DrinkRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDrinkInput, err)
	}

	res, err := h.moodService.SuggestDrink(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	return c.JSON(res)
}
