package community

import (
	"Melt-App/domain"
	"Melt-App/entities"
	"Melt-App/internal/utils/storage"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
)

type (
	CommunityService interface {
		GetPublicRecipes(ctx context.Context) ([]domain.PublicRecipe, error)
		ShareRecipe(ctx context.Context, req domain.ShareRecipeRequest, image *multipart.FileHeader, userID string) (domain.PublicRecipe, error)
	}

	communityService struct {
		communityRepository CommunityRepository
		s3                  storage.AwsS3
	}
)

func NewCommunityService(communityRepository CommunityRepository, s3 storage.AwsS3) CommunityService {
	return &communityService{
		communityRepository: communityRepository,
		s3:                  s3,
	}
}

func (s *communityService) GetPublicRecipes(ctx context.Context) ([]domain.PublicRecipe, error) {
	recipes, err := s.communityRepository.GetPublicRecipes(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.PublicRecipe, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, s.toPublicRecipe(r))
	}
	return result, nil
}

func (s *communityService) ShareRecipe(ctx context.Context, req domain.ShareRecipeRequest, image *multipart.FileHeader, userID string) (domain.PublicRecipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PublicRecipe{}, domain.ErrParseUUID
	}

	recipeID := uuid.New()

	var imageURL string
	if image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("recipe-%s", recipeID.String()),
			image,
			"community",
			storage.AllowImage...,
		)
		if err != nil {
			return domain.PublicRecipe{}, err
		}
		imageURL = s.s3.GetPublicLink(objectKey)
	}

	ingredients, _ := json.Marshal(req.Ingredients)
	flavorProfile, _ := json.Marshal(req.FlavorProfile)

	recipe := entities.Recipe{
		ID:            recipeID,
		AuthorID:      userUUID,
		Title:         req.Title,
		Description:   req.Description,
		Ingredients:   string(ingredients),
		FlavorProfile: string(flavorProfile),
		ImageURL:      imageURL,
		IsPublic:      true,
	}
	if err := s.communityRepository.CreateRecipe(ctx, &recipe); err != nil {
		return domain.PublicRecipe{}, err
	}
	return s.toPublicRecipe(&recipe), nil
}

func (s *communityService) toPublicRecipe(r *entities.Recipe) domain.PublicRecipe {
	var ingredients, flavorProfile []string
	_ = json.Unmarshal([]byte(r.Ingredients), &ingredients)
	_ = json.Unmarshal([]byte(r.FlavorProfile), &flavorProfile)

	authorUsername := ""
	if r.Author != nil {
		authorUsername = r.Author.Username
	}

	return domain.PublicRecipe{
		ID:             r.ID.String(),
		Title:          r.Title,
		Description:    r.Description,
		Ingredients:    ingredients,
		FlavorProfile:  flavorProfile,
		ImageURL:       r.ImageURL,
		AuthorID:       r.AuthorID.String(),
		AuthorUsername: authorUsername,
		CreatedAt:      r.CreatedAt,
	}
}
