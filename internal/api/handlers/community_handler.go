package handlers

import (
	"Melt-App/domain"
	"Melt-App/internal/api/presenters"
	"Melt-App/pkg/community"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CommunityHandler interface {
		GetPublicRecipes(c *fiber.Ctx) error
		ShareRecipe(c *fiber.Ctx) error
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

func (h *communityHandler) GetPublicRecipes(c *fiber.Ctx) error {
	res, err := h.communityService.GetPublicRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPublicRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPublicRecipes)
}

func (h *communityHandler) ShareRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ShareRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShareRecipe, err)
	}

	// The recipe image is optional.
	var image *multipart.FileHeader
	if file, err := c.FormFile("image"); err == nil {
		image = file
	}

	res, err := h.communityService.ShareRecipe(c.Context(), *req, image, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShareRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessShareRecipe)
}
