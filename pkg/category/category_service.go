package category

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/entities"
	"Meal-Planner-Backend/pkg/recipe"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest, userID string) (domain.CategoryResponse, error)
		GetCategories(ctx context.Context, userID string) ([]domain.CategoryResponse, error)
		GetCategoryDetail(ctx context.Context, id string, userID string) (domain.CategoryResponse, error)
		DeleteCategory(ctx context.Context, id string, userID string) error

		AddRecipeToCategory(ctx context.Context, categoryID string, req domain.CategoryRecipeRequest, userID string) error
		RemoveRecipeFromCategory(ctx context.Context, categoryID, recipeID, userID string) error

		RegenerateChecklist(ctx context.Context, categoryID, userID string) (domain.ChecklistResponse, error)
		GetChecklist(ctx context.Context, categoryID, userID, filter string) (domain.ChecklistResponse, error)
		ToggleChecklistItem(ctx context.Context, itemID string, req domain.ToggleChecklistItemRequest, userID string) (domain.ChecklistItemResponse, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
		recipeRepository   recipe.RecipeRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository, recipeRepository recipe.RecipeRepository) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		recipeRepository:   recipeRepository,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest, userID string) (domain.CategoryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CategoryResponse{}, domain.ErrParseUUID
	}

	category := &entities.Category{
		ID:           uuid.New(),
		UserID:       userUUID,
		Name:         req.Name,
		CategoryType: req.CategoryType,
	}

	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return domain.CategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		CategoryType: category.CategoryType,
		CreatedAt:    category.CreatedAt,
	}, nil
}

func (s *categoryService) GetCategories(ctx context.Context, userID string) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		count, err := s.categoryRepository.CountLinkedRecipes(ctx, c.ID.String())
		if err != nil {
			return nil, err
		}
		response = append(response, domain.CategoryResponse{
			ID:           c.ID.String(),
			Name:         c.Name,
			CategoryType: c.CategoryType,
			RecipeCount:  count,
			CreatedAt:    c.CreatedAt,
		})
	}

	return response, nil
}

func (s *categoryService) GetCategoryDetail(ctx context.Context, id string, userID string) (domain.CategoryResponse, error) {
	category, err := s.ownedCategory(ctx, id, userID)
	if err != nil {
		return domain.CategoryResponse{}, err
	}

	count, err := s.categoryRepository.CountLinkedRecipes(ctx, category.ID.String())
	if err != nil {
		return domain.CategoryResponse{}, err
	}

	return domain.CategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		CategoryType: category.CategoryType,
		RecipeCount:  count,
		CreatedAt:    category.CreatedAt,
	}, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string, userID string) error {
	category, err := s.ownedCategory(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.categoryRepository.DeleteCategory(ctx, category.ID.String())
}

func (s *categoryService) AddRecipeToCategory(ctx context.Context, categoryID string, req domain.CategoryRecipeRequest, userID string) error {
	category, err := s.ownedCategory(ctx, categoryID, userID)
	if err != nil {
		return err
	}

	linked, err := s.categoryRepository.IsRecipeLinked(ctx, categoryID, req.RecipeID)
	if err != nil {
		return err
	}
	if linked {
		// Already in the category
		return nil
	}

	rec, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	if rec.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	link := &entities.CategoryRecipe{
		ID:         uuid.New(),
		CategoryID: category.ID,
		RecipeID:   rec.ID,
		UserID:     category.UserID,
		CreatedAt:  time.Now(),
	}

	_, err = s.categoryRepository.AddRecipeToCategory(ctx, link)
	return err
}

func (s *categoryService) RemoveRecipeFromCategory(ctx context.Context, categoryID, recipeID, userID string) error {
	if _, err := s.ownedCategory(ctx, categoryID, userID); err != nil {
		return err
	}

	_, err := s.categoryRepository.RemoveRecipeFromCategory(ctx, categoryID, recipeID, userID)
	return err
}

// RegenerateChecklist rebuilds the checklist from the recipes currently linked
// to the category. Every item comes back unchecked, including ingredients that
// were checked before the rebuild.
func (s *categoryService) RegenerateChecklist(ctx context.Context, categoryID, userID string) (domain.ChecklistResponse, error) {
	if _, err := s.ownedCategory(ctx, categoryID, userID); err != nil {
		return domain.ChecklistResponse{}, err
	}

	items, err := s.categoryRepository.RegenerateChecklist(ctx, categoryID, userID)
	if err != nil {
		return domain.ChecklistResponse{}, err
	}

	return toChecklistResponse(items), nil
}

func (s *categoryService) GetChecklist(ctx context.Context, categoryID, userID, filter string) (domain.ChecklistResponse, error) {
	if _, err := s.ownedCategory(ctx, categoryID, userID); err != nil {
		return domain.ChecklistResponse{}, err
	}

	var checked *bool
	switch filter {
	case "", "all":
		checked = nil
	case "checked":
		t := true
		checked = &t
	case "unchecked":
		f := false
		checked = &f
	default:
		return domain.ChecklistResponse{}, domain.ErrInvalidChecklistFilter
	}

	items, err := s.categoryRepository.GetChecklistItems(ctx, categoryID, userID, checked)
	if err != nil {
		return domain.ChecklistResponse{}, err
	}

	return toChecklistResponse(items), nil
}

func (s *categoryService) ToggleChecklistItem(ctx context.Context, itemID string, req domain.ToggleChecklistItemRequest, userID string) (domain.ChecklistItemResponse, error) {
	item, err := s.categoryRepository.GetChecklistItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ChecklistItemResponse{}, domain.ErrChecklistItemNotFound
		}
		return domain.ChecklistItemResponse{}, err
	}

	if item.UserID.String() != userID {
		return domain.ChecklistItemResponse{}, domain.ErrUnauthorizedAccess
	}

	item.Checked = req.Checked
	item.UpdatedAt = time.Now()
	if err := s.categoryRepository.UpdateChecklistItem(ctx, item); err != nil {
		return domain.ChecklistItemResponse{}, err
	}

	return toChecklistItemResponse(item), nil
}

func (s *categoryService) ownedCategory(ctx context.Context, id string, userID string) (*entities.Category, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	if category.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return category, nil
}

func toChecklistItemResponse(item *entities.ChecklistItem) domain.ChecklistItemResponse {
	return domain.ChecklistItemResponse{
		ID:         item.ID.String(),
		CategoryID: item.CategoryID.String(),
		Ingredient: item.Ingredient,
		Quantity:   item.Quantity,
		Checked:    item.Checked,
		Position:   item.Position,
		UpdatedAt:  item.UpdatedAt,
	}
}

func toChecklistResponse(items []*entities.ChecklistItem) domain.ChecklistResponse {
	response := domain.ChecklistResponse{
		Items: make([]domain.ChecklistItemResponse, 0, len(items)),
		Total: len(items),
	}
	for _, item := range items {
		response.Items = append(response.Items, toChecklistItemResponse(item))
	}
	return response
}
