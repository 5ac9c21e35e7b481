package recipe

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/entities"
	"Meal-Planner-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, userID string, mealType string, page, limit int) ([]domain.RecipeResponse, int64, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) error
		DeleteRecipe(ctx context.Context, id string, userID string) error
		UploadRecipeImage(ctx context.Context, id string, image *multipart.FileHeader, userID string) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		storage          storage.Storage
	}
)

func NewRecipeService(recipeRepository RecipeRepository, storage storage.Storage) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		storage:          storage,
	}
}

// JoinLines stores an ordered list as one newline-delimited text column.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// SplitLines is the inverse of JoinLines. Blank entries are kept here; the
// checklist aggregation does its own trimming.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, ",")
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		ID:           uuid.New(),
		UserID:       userUUID,
		Title:        req.Title,
		Description:  req.Description,
		MealType:     req.MealType,
		Ingredients:  JoinLines(req.Ingredients),
		Instructions: JoinLines(req.Instructions),
		Tags:         joinTags(req.Tags),
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if recipe.UserID.String() != userID {
		return domain.RecipeResponse{}, domain.ErrUnauthorizedAccess
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string, mealType string, page, limit int) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, userID, mealType, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		response = append(response, toRecipeResponse(r))
	}

	return response, count, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.Description != "" {
		recipe.Description = req.Description
	}
	if req.MealType != "" {
		recipe.MealType = req.MealType
	}
	if req.Ingredients != nil {
		recipe.Ingredients = JoinLines(req.Ingredients)
	}
	if req.Instructions != nil {
		recipe.Instructions = JoinLines(req.Instructions)
	}
	if req.Tags != nil {
		recipe.Tags = joinTags(req.Tags)
	}

	return s.recipeRepository.UpdateRecipe(ctx, recipe)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if recipe.ImageURL != "" {
		objectKey := s.storage.GetObjectKeyFromLink(recipe.ImageURL)
		if objectKey != "" {
			_ = s.storage.DeleteFile(objectKey)
		}
	}

	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, id string, image *multipart.FileHeader, userID string) (string, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecipeNotFound
		}
		return "", err
	}

	if recipe.UserID.String() != userID {
		return "", domain.ErrUnauthorizedAccess
	}

	fileName := fmt.Sprintf("recipe-%s", recipe.ID.String())
	var objectKey string
	var uploadErr error

	if recipe.ImageURL != "" {
		existingKey := s.storage.GetObjectKeyFromLink(recipe.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.storage.UpdateFile(existingKey, image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.storage.UploadFile(fileName, image, "recipes", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.storage.UploadFile(fileName, image, "recipes", storage.AllowImage...)
	}

	if uploadErr != nil {
		return "", uploadErr
	}

	recipe.ImageURL = s.storage.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return "", err
	}

	return recipe.ImageURL, nil
}

func toRecipeResponse(r *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:           r.ID.String(),
		UserID:       r.UserID.String(),
		Title:        r.Title,
		Description:  r.Description,
		MealType:     r.MealType,
		Ingredients:  SplitLines(r.Ingredients),
		Instructions: SplitLines(r.Instructions),
		Tags:         splitTags(r.Tags),
		ImageURL:     r.ImageURL,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
