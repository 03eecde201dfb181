package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetPublicRecipes = "success get public recipes"
	MessageSuccessShareRecipe      = "recipe shared successfully"
	MessageFailedGetPublicRecipes  = "failed to get public recipes"
	MessageFailedShareRecipe       = "failed to share recipe"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	ShareRecipeRequest struct {
		Title         string   `json:"title" form:"title" validate:"required,min=1,max=128"`
		Description   string   `json:"description" form:"description" validate:"required"`
		Ingredients   []string `json:"ingredients" form:"ingredients" validate:"required,min=1"`
		FlavorProfile []string `json:"flavor_profile,omitempty" form:"flavor_profile"`
	}

	PublicRecipe struct {
		ID             string    `json:"id"`
		Title          string    `json:"title"`
		Description    string    `json:"description"`
		Ingredients    []string  `json:"ingredients"`
		FlavorProfile  []string  `json:"flavorProfile,omitempty"`
		ImageURL       string    `json:"image_url,omitempty"`
		AuthorID       string    `json:"authorId,omitempty"`
		AuthorUsername string    `json:"authorUsername,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
