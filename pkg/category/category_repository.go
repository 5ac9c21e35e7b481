package category

import (
	"Meal-Planner-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CategoryRepository interface {
		CreateCategory(ctx context.Context, category *entities.Category) error
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
		GetCategories(ctx context.Context, userID string) ([]*entities.Category, error)
		CountLinkedRecipes(ctx context.Context, categoryID string) (int64, error)
		DeleteCategory(ctx context.Context, id string) error

		IsRecipeLinked(ctx context.Context, categoryID, recipeID string) (bool, error)
		AddRecipeToCategory(ctx context.Context, link *entities.CategoryRecipe) ([]*entities.ChecklistItem, error)
		RemoveRecipeFromCategory(ctx context.Context, categoryID, recipeID, userID string) ([]*entities.ChecklistItem, error)
		GetLinkedRecipes(ctx context.Context, categoryID, userID string) ([]*entities.Recipe, error)

		RegenerateChecklist(ctx context.Context, categoryID, userID string) ([]*entities.ChecklistItem, error)
		GetChecklistItems(ctx context.Context, categoryID, userID string, checked *bool) ([]*entities.ChecklistItem, error)
		GetChecklistItemByID(ctx context.Context, id string) (*entities.ChecklistItem, error)
		UpdateChecklistItem(ctx context.Context, item *entities.ChecklistItem) error
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategories(ctx context.Context, userID string) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) CountLinkedRecipes(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CategoryRecipe{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&entities.ChecklistItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&entities.CategoryRecipe{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Category{}).Error
	})
}

func (r *categoryRepository) IsRecipeLinked(ctx context.Context, categoryID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CategoryRecipe{}).
		Where("category_id = ? AND recipe_id = ?", categoryID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddRecipeToCategory creates the link and rebuilds the checklist in one
// transaction so a failure cannot leave them inconsistent.
func (r *categoryRepository) AddRecipeToCategory(ctx context.Context, link *entities.CategoryRecipe) ([]*entities.ChecklistItem, error) {
	var items []*entities.ChecklistItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(link).Error; err != nil {
			return err
		}
		var err error
		items, err = regenerateChecklistTx(tx, link.CategoryID, link.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *categoryRepository) RemoveRecipeFromCategory(ctx context.Context, categoryID, recipeID, userID string) ([]*entities.ChecklistItem, error) {
	categoryUUID, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, err
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	var items []*entities.ChecklistItem
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("category_id = ? AND recipe_id = ?", categoryID, recipeID).
			Delete(&entities.CategoryRecipe{}).Error; err != nil {
			return err
		}
		var err error
		items, err = regenerateChecklistTx(tx, categoryUUID, userUUID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *categoryRepository) GetLinkedRecipes(ctx context.Context, categoryID, userID string) ([]*entities.Recipe, error) {
	return linkedRecipes(r.db.WithContext(ctx), categoryID, userID)
}

func (r *categoryRepository) RegenerateChecklist(ctx context.Context, categoryID, userID string) ([]*entities.ChecklistItem, error) {
	categoryUUID, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, err
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	var items []*entities.ChecklistItem
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		items, err = regenerateChecklistTx(tx, categoryUUID, userUUID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func linkedRecipes(db *gorm.DB, categoryID, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := db.
		Joins("JOIN category_recipes ON recipes.id = category_recipes.recipe_id").
		Where("category_recipes.category_id = ? AND category_recipes.user_id = ?", categoryID, userID).
		Order("category_recipes.created_at asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// regenerateChecklistTx drops every checklist item for the category and
// rebuilds the deduplicated ingredient list from the recipes currently linked.
// Checked state is always discarded.
func regenerateChecklistTx(tx *gorm.DB, categoryID, userID uuid.UUID) ([]*entities.ChecklistItem, error) {
	if err := tx.
		Where("category_id = ? AND user_id = ?", categoryID, userID).
		Delete(&entities.ChecklistItem{}).Error; err != nil {
		return nil, err
	}

	recipes, err := linkedRecipes(tx, categoryID.String(), userID.String())
	if err != nil {
		return nil, err
	}

	ingredients := AggregateIngredients(recipes)
	items := make([]*entities.ChecklistItem, 0, len(ingredients))
	now := time.Now()
	for n, ingredient := range ingredients {
		items = append(items, &entities.ChecklistItem{
			ID:         uuid.New(),
			CategoryID: categoryID,
			UserID:     userID,
			Ingredient: ingredient,
			Checked:    false,
			Position:   n,
			Timestamp:  entities.Timestamp{CreatedAt: now, UpdatedAt: now},
		})
	}

	if len(items) == 0 {
		return items, nil
	}

	if err := tx.Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *categoryRepository) GetChecklistItems(ctx context.Context, categoryID, userID string, checked *bool) ([]*entities.ChecklistItem, error) {
	query := r.db.WithContext(ctx).
		Where("category_id = ? AND user_id = ?", categoryID, userID)
	if checked != nil {
		query = query.Where("checked = ?", *checked)
	}

	// A regenerate batch shares one created_at, so ordering relies on the
	// persisted position instead.
	var items []*entities.ChecklistItem
	if err := query.Order("position asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *categoryRepository) GetChecklistItemByID(ctx context.Context, id string) (*entities.ChecklistItem, error) {
	var item entities.ChecklistItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *categoryRepository) UpdateChecklistItem(ctx context.Context, item *entities.ChecklistItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}
