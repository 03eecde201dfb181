package collection

import (
	"Melt-App/entities"
	"context"
	"gorm.io/gorm"
)

type (
	CollectionRepository interface {
		CreateCollection(ctx context.Context, collection *entities.Collection) error
		GetCollectionsByUser(ctx context.Context, userID string) ([]*entities.Collection, error)
		GetCollectionByID(ctx context.Context, id string, userID string) (*entities.Collection, error)
		GetCollectionByName(ctx context.Context, userID string, name string) (*entities.Collection, error)
		DeleteCollection(ctx context.Context, id string, userID string) error
		AddRecipe(ctx context.Context, recipe *entities.CollectionRecipe) error
		HasRecipe(ctx context.Context, collectionID string, recipeID string) (bool, error)
		GetAllCollections(ctx context.Context) ([]*entities.Collection, error)
	}

	collectionRepository struct {
		db *gorm.DB
	}
)

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) CreateCollection(ctx context.Context, collection *entities.Collection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

func (r *collectionRepository) GetCollectionsByUser(ctx context.Context, userID string) ([]*entities.Collection, error) {
	var collections []*entities.Collection
	if err := r.db.WithContext(ctx).
		Preload("Recipes").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *collectionRepository) GetCollectionByID(ctx context.Context, id string, userID string) (*entities.Collection, error) {
	var collection entities.Collection
	if err := r.db.WithContext(ctx).
		Preload("Recipes").
		Where("id = ? AND user_id = ?", id, userID).
		First(&collection).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) GetCollectionByName(ctx context.Context, userID string, name string) (*entities.Collection, error) {
	var collection entities.Collection
	if err := r.db.WithContext(ctx).
		Preload("Recipes").
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).
		First(&collection).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) DeleteCollection(ctx context.Context, id string, userID string) error {
	// Embedded recipe snapshots go with the collection.
	if err := r.db.WithContext(ctx).
		Where("collection_id = ?", id).
		Delete(&entities.CollectionRecipe{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Collection{}).Error
}

func (r *collectionRepository) AddRecipe(ctx context.Context, recipe *entities.CollectionRecipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *collectionRepository) HasRecipe(ctx context.Context, collectionID string, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CollectionRecipe{}).
		Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *collectionRepository) GetAllCollections(ctx context.Context) ([]*entities.Collection, error) {
	var collections []*entities.Collection
	if err := r.db.WithContext(ctx).
		Preload("Recipes").
		Order("created_at asc").
		Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}
