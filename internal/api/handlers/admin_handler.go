package handlers

import (
	"Melt-App/domain"
	"Melt-App/internal/api/presenters"
	"Melt-App/pkg/collection"
	"Melt-App/pkg/journal"
	"Melt-App/pkg/user"

	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetAllUsers(c *fiber.Ctx) error
		GetAllCollections(c *fiber.Ctx) error
		GetAllHistory(c *fiber.Ctx) error
	}

	adminHandler struct {
		userService       user.UserService
		collectionService collection.CollectionService
		journalService    journal.JournalService
	}
)

func NewAdminHandler(userService user.UserService, collectionService collection.CollectionService, journalService journal.JournalService) AdminHandler {
	return &adminHandler{
		userService:       userService,
		collectionService: collectionService,
		journalService:    journalService,
	}
}

func (h *adminHandler) GetAllUsers(c *fiber.Ctx) error {
	res, err := h.userService.GetAllUsers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, "success get all users")
}

func (h *adminHandler) GetAllCollections(c *fiber.Ctx) error {
	res, err := h.collectionService.GetAllCollections(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, "success get all collections")
}

func (h *adminHandler) GetAllHistory(c *fiber.Ctx) error {
	res, err := h.journalService.GetAllEntries(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, "success get all journal history")
}
