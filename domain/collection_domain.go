package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCollections   = "success get collections"
	MessageSuccessCreateCollection = "collection created successfully"
	MessageSuccessAddRecipe        = "recipe saved to collection"
	MessageSuccessDeleteCollection = "collection deleted successfully"
	MessageFailedGetCollections    = "failed to get collections"
	MessageFailedCreateCollection  = "failed to create collection"
	MessageFailedAddRecipe         = "failed to save recipe to collection"
	MessageFailedDeleteCollection  = "failed to delete collection"

	ErrCollectionNotFound = errors.New("collection not found")
	ErrCollectionNameUsed = errors.New("collection name already used")
)

type (
	CreateCollectionRequest struct {
		Name string `json:"name" validate:"required,min=1,max=64"`
	}

	AddRecipeRequest struct {
		RecipeID      string   `json:"recipe_id" validate:"required"`
		Title         string   `json:"title" validate:"required"`
		Description   string   `json:"description"`
		Ingredients   []string `json:"ingredients"`
		FlavorProfile []string `json:"flavor_profile,omitempty"`
	}

	// SaveRecipeRequest is the save-by-name path: the collection is created
	// first if the caller has none with that name.
	SaveRecipeRequest struct {
		CollectionName string   `json:"collection_name" validate:"required,min=1,max=64"`
		RecipeID       string   `json:"recipe_id" validate:"required"`
		Title          string   `json:"title" validate:"required"`
		Description    string   `json:"description"`
		Ingredients    []string `json:"ingredients"`
		FlavorProfile  []string `json:"flavor_profile,omitempty"`
	}

	CollectionRecipe struct {
		RecipeID      string    `json:"recipe_id"`
		Title         string    `json:"title"`
		Description   string    `json:"description"`
		Ingredients   []string  `json:"ingredients"`
		FlavorProfile []string  `json:"flavor_profile,omitempty"`
		SavedAt       time.Time `json:"saved_at"`
	}

	Collection struct {
		ID        string             `json:"id"`
		UserID    string             `json:"user_id"`
		Name      string             `json:"name"`
		Recipes   []CollectionRecipe `json:"recipes"`
		CreatedAt time.Time          `json:"created_at"`
	}
)
