package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCategories       = "success get categories"
	MessageSuccessGetCategoryDetail   = "success get category detail"
	MessageSuccessCreateCategory      = "category created successfully"
	MessageSuccessDeleteCategory      = "category deleted successfully"
	MessageSuccessAddRecipeToCategory = "recipe added to category"
	MessageSuccessRemoveRecipe        = "recipe removed from category"
	MessageSuccessGetChecklist        = "success get checklist"
	MessageSuccessRegenerateChecklist = "checklist regenerated"
	MessageSuccessToggleChecklistItem = "checklist item updated"

	MessageFailedGetCategories       = "failed to get categories"
	MessageFailedGetCategoryDetail   = "failed to get category detail"
	MessageFailedCreateCategory      = "failed to create category"
	MessageFailedDeleteCategory      = "failed to delete category"
	MessageFailedAddRecipeToCategory = "failed to add recipe to category"
	MessageFailedRemoveRecipe        = "failed to remove recipe from category"
	MessageFailedGetChecklist        = "failed to get checklist"
	MessageFailedRegenerateChecklist = "failed to regenerate checklist"
	MessageFailedToggleChecklistItem = "failed to update checklist item"

	ErrCategoryNotFound       = errors.New("category not found")
	ErrChecklistItemNotFound  = errors.New("checklist item not found")
	ErrInvalidCategoryType    = errors.New("invalid category type")
	ErrInvalidChecklistFilter = errors.New("invalid checklist filter")
)

// CategoryTypes is the closed set of category type tags.
var CategoryTypes = []string{"seasonal", "planned", "custom"}

type (
	CreateCategoryRequest struct {
		Name         string `json:"name" validate:"required"`
		CategoryType string `json:"category_type" validate:"required,oneof=seasonal planned custom"`
	}

	CategoryResponse struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		CategoryType string    `json:"category_type"`
		RecipeCount  int64     `json:"recipe_count"`
		CreatedAt    time.Time `json:"created_at"`
	}

	CategoryRecipeRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
	}

	ChecklistItemResponse struct {
		ID         string    `json:"id"`
		CategoryID string    `json:"category_id"`
		Ingredient string    `json:"ingredient"`
		Quantity   string    `json:"quantity,omitempty"`
		Checked    bool      `json:"checked"`
		Position   int       `json:"position"`
		UpdatedAt  time.Time `json:"updated_at"`
	}

	ToggleChecklistItemRequest struct {
		Checked bool `json:"checked"`
	}

	ChecklistResponse struct {
		Items []ChecklistItemResponse `json:"items"`
		Total int                     `json:"total"`
	}
)
