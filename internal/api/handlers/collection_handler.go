package handlers

import (
	"Melt-App/domain"
	"Melt-App/internal/api/presenters"
	"Melt-App/pkg/collection"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CollectionHandler interface {
		GetCollections(c *fiber.Ctx) error
		CreateCollection(c *fiber.Ctx) error
		AddRecipe(c *fiber.Ctx) error
		SaveRecipe(c *fiber.Ctx) error
		DeleteCollection(c *fiber.Ctx) error
	}

	collectionHandler struct {
		collectionService collection.CollectionService
		validator         *validator.Validate
	}
)

func NewCollectionHandler(collectionService collection.CollectionService, validator *validator.Validate) CollectionHandler {
	return &collectionHandler{
		collectionService: collectionService,
		validator:         validator,
	}
}

func (h *collectionHandler) GetCollections(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.collectionService.GetCollections(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCollections, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCollections)
}

func (h *collectionHandler) CreateCollection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateCollectionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCollection, err)
	}

	res, err := h.collectionService.CreateCollection(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCollectionNameUsed) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateCollection, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCollection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCollection)
}

func (h *collectionHandler) AddRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	collectionID := c.Params("id")
	req := new(domain.AddRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRecipe, err)
	}

	res, err := h.collectionService.AddRecipe(c.Context(), collectionID, *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddRecipe)
}

func (h *collectionHandler) SaveRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRecipe, err)
	}

	res, err := h.collectionService.SaveRecipe(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddRecipe)
}

func (h *collectionHandler) DeleteCollection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	collectionID := c.Params("id")

	if err := h.collectionService.DeleteCollection(c.Context(), collectionID, userID); err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteCollection, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCollection, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCollection)
}
