package entities

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	MealType     string    `json:"meal_type"` // "breakfast", "lunch", "dinner", "snack", "dessert"
	Ingredients  string    `json:"ingredients" gorm:"type:text"`  // newline-delimited, order preserved
	Instructions string    `json:"instructions" gorm:"type:text"` // newline-delimited steps
	Tags         string    `json:"tags"` // comma-separated
	ImageURL     string    `json:"image_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	CategoryType string    `json:"category_type"` // "seasonal", "planned", "custom"

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type CategoryRecipe struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	RecipeID   uuid.UUID `json:"recipe_id"`
	UserID     uuid.UUID `json:"user_id"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Recipe   *Recipe   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

type ChecklistItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	UserID     uuid.UUID `json:"user_id"`
	Ingredient string    `json:"ingredient"`
	Quantity   string    `json:"quantity,omitempty"`
	Checked    bool      `json:"checked"`
	Position   int       `json:"position"` // first-occurrence order within the category

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Timestamp
}
