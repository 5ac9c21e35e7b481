package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload image"

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrInvalidMealType = errors.New("invalid meal type")
)

// MealTypes is the closed set of meal-type tags a recipe may carry.
var MealTypes = []string{"breakfast", "lunch", "dinner", "snack", "dessert"}

type (
	CreateRecipeRequest struct {
		Title        string   `json:"title" validate:"required"`
		Description  string   `json:"description,omitempty"`
		MealType     string   `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack dessert"`
		Ingredients  []string `json:"ingredients" validate:"required,min=1"`
		Instructions []string `json:"instructions,omitempty"`
		Tags         []string `json:"tags,omitempty"`
	}

	UpdateRecipeRequest struct {
		Title        string   `json:"title,omitempty"`
		Description  string   `json:"description,omitempty"`
		MealType     string   `json:"meal_type,omitempty" validate:"omitempty,oneof=breakfast lunch dinner snack dessert"`
		Ingredients  []string `json:"ingredients,omitempty"`
		Instructions []string `json:"instructions,omitempty"`
		Tags         []string `json:"tags,omitempty"`
	}

	RecipeResponse struct {
		ID           string    `json:"id"`
		UserID       string    `json:"user_id"`
		Title        string    `json:"title"`
		Description  string    `json:"description,omitempty"`
		MealType     string    `json:"meal_type"`
		Ingredients  []string  `json:"ingredients"`
		Instructions []string  `json:"instructions,omitempty"`
		Tags         []string  `json:"tags,omitempty"`
		ImageURL     string    `json:"image_url,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
	}
)
