package handlers

import (
	"Melt-App/domain"
	"Melt-App/internal/api/presenters"
	"Melt-App/pkg/journal"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	JournalHandler interface {
		SaveEntry(c *fiber.Ctx) error
		GetEntries(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
	}

	journalHandler struct {
		journalService journal.JournalService
		validator      *validator.Validate
	}
)

func NewJournalHandler(journalService journal.JournalService, validator *validator.Validate) JournalHandler {
	return &journalHandler{
		journalService: journalService,
		validator:      validator,
	}
}

func (h *journalHandler) SaveEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveJournalRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveJournal, err)
	}

	res, err := h.journalService.SaveEntry(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveJournal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveJournal)
}

func (h *journalHandler) GetEntries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.journalService.GetEntries(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetJournal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetJournal)
}

func (h *journalHandler) DeleteEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	if err := h.journalService.DeleteEntry(c.Context(), entryID, userID); err != nil {
		if errors.Is(err, domain.ErrJournalEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteJournal, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteJournal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteJournal)
}
