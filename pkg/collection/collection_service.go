package collection

import (
	"Melt-App/domain"
	"Melt-App/entities"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CollectionService interface {
		GetCollections(ctx context.Context, userID string) ([]domain.Collection, error)
		CreateCollection(ctx context.Context, req domain.CreateCollectionRequest, userID string) (domain.Collection, error)
		AddRecipe(ctx context.Context, collectionID string, req domain.AddRecipeRequest, userID string) (domain.Collection, error)
		SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.Collection, error)
		DeleteCollection(ctx context.Context, collectionID string, userID string) error
		GetAllCollections(ctx context.Context) ([]domain.Collection, error)
	}

	collectionService struct {
		collectionRepository CollectionRepository
	}
)

func NewCollectionService(collectionRepository CollectionRepository) CollectionService {
	return &collectionService{collectionRepository: collectionRepository}
}

func (s *collectionService) GetCollections(ctx context.Context, userID string) ([]domain.Collection, error) {
	collections, err := s.collectionRepository.GetCollectionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Collection, 0, len(collections))
	for _, c := range collections {
		result = append(result, toCollection(c))
	}
	return result, nil
}

func (s *collectionService) CreateCollection(ctx context.Context, req domain.CreateCollectionRequest, userID string) (domain.Collection, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Collection{}, domain.ErrParseUUID
	}

	if _, err := s.collectionRepository.GetCollectionByName(ctx, userID, req.Name); err == nil {
		return domain.Collection{}, domain.ErrCollectionNameUsed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Collection{}, err
	}

	collection := entities.Collection{
		ID:     uuid.New(),
		UserID: userUUID,
		Name:   req.Name,
	}
	if err := s.collectionRepository.CreateCollection(ctx, &collection); err != nil {
		return domain.Collection{}, err
	}
	return toCollection(&collection), nil
}

func (s *collectionService) AddRecipe(ctx context.Context, collectionID string, req domain.AddRecipeRequest, userID string) (domain.Collection, error) {
	collection, err := s.collectionRepository.GetCollectionByID(ctx, collectionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Collection{}, domain.ErrCollectionNotFound
		}
		return domain.Collection{}, err
	}

	if err := s.addSnapshot(ctx, collection, req); err != nil {
		return domain.Collection{}, err
	}

	refreshed, err := s.collectionRepository.GetCollectionByID(ctx, collectionID, userID)
	if err != nil {
		return domain.Collection{}, err
	}
	return toCollection(refreshed), nil
}

func (s *collectionService) SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.Collection, error) {
	collection, err := s.collectionRepository.GetCollectionByName(ctx, userID, req.CollectionName)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Collection{}, err
		}
		created, err := s.CreateCollection(ctx, domain.CreateCollectionRequest{Name: req.CollectionName}, userID)
		if err != nil {
			return domain.Collection{}, err
		}
		collection, err = s.collectionRepository.GetCollectionByID(ctx, created.ID, userID)
		if err != nil {
			return domain.Collection{}, err
		}
	}

	if err := s.addSnapshot(ctx, collection, domain.AddRecipeRequest{
		RecipeID:      req.RecipeID,
		Title:         req.Title,
		Description:   req.Description,
		Ingredients:   req.Ingredients,
		FlavorProfile: req.FlavorProfile,
	}); err != nil {
		return domain.Collection{}, err
	}

	refreshed, err := s.collectionRepository.GetCollectionByID(ctx, collection.ID.String(), userID)
	if err != nil {
		return domain.Collection{}, err
	}
	return toCollection(refreshed), nil
}

func (s *collectionService) DeleteCollection(ctx context.Context, collectionID string, userID string) error {
	if _, err := s.collectionRepository.GetCollectionByID(ctx, collectionID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCollectionNotFound
		}
		return err
	}
	return s.collectionRepository.DeleteCollection(ctx, collectionID, userID)
}

func (s *collectionService) GetAllCollections(ctx context.Context) ([]domain.Collection, error) {
	collections, err := s.collectionRepository.GetAllCollections(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Collection, 0, len(collections))
	for _, c := range collections {
		result = append(result, toCollection(c))
	}
	return result, nil
}

// addSnapshot embeds a copy of the recipe in the collection. Saving the same
// recipe id twice is a no-op, never a duplicate.
func (s *collectionService) addSnapshot(ctx context.Context, collection *entities.Collection, req domain.AddRecipeRequest) error {
	exists, err := s.collectionRepository.HasRecipe(ctx, collection.ID.String(), req.RecipeID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	ingredients, _ := json.Marshal(req.Ingredients)
	flavorProfile, _ := json.Marshal(req.FlavorProfile)

	snapshot := entities.CollectionRecipe{
		ID:            uuid.New(),
		CollectionID:  collection.ID,
		RecipeID:      req.RecipeID,
		Title:         req.Title,
		Description:   req.Description,
		Ingredients:   string(ingredients),
		FlavorProfile: string(flavorProfile),
		SavedAt:       time.Now(),
	}
	return s.collectionRepository.AddRecipe(ctx, &snapshot)
}

func toCollection(c *entities.Collection) domain.Collection {
	recipes := make([]domain.CollectionRecipe, 0, len(c.Recipes))
	for _, r := range c.Recipes {
		var ingredients, flavorProfile []string
		_ = json.Unmarshal([]byte(r.Ingredients), &ingredients)
		_ = json.Unmarshal([]byte(r.FlavorProfile), &flavorProfile)

		recipes = append(recipes, domain.CollectionRecipe{
			RecipeID:      r.RecipeID,
			Title:         r.Title,
			Description:   r.Description,
			Ingredients:   ingredients,
			FlavorProfile: flavorProfile,
			SavedAt:       r.SavedAt,
		})
	}

	return domain.Collection{
		ID:        c.ID.String(),
		UserID:    c.UserID.String(),
		Name:      c.Name,
		Recipes:   recipes,
		CreatedAt: c.CreatedAt,
	}
}
