package entities

import (
	"github.com/google/uuid"
)

type SavedRecipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	RecipeName  string    `json:"recipe_name"`
	Description string    `json:"description"`
	Ingredients string    `json:"ingredients" gorm:"type:text"` // JSON array of strings
	Steps       string    `json:"steps" gorm:"type:text"`       // JSON array of {instruction}
	Allergens   string    `json:"allergens"`
	Nutrition   string    `json:"nutrition" gorm:"type:text"` // JSON {calories,protein,carbs,fat}
	ImageURL    string    `json:"image_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
