package community

import (
	"Melt-App/entities"
	"context"
	"gorm.io/gorm"
)

type (
	CommunityRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetPublicRecipes(ctx context.Context) ([]*entities.Recipe, error)
	}

	communityRepository struct {
		db *gorm.DB
	}
)

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *communityRepository) GetPublicRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("is_public = ?", true).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
