package entities

import (
	"github.com/google/uuid"
)

type CommunityPost struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Type        string     `json:"type"` // "food" or "recipe"
	ItemName    string     `json:"item_name,omitempty"`
	ShareType   string     `json:"share_type,omitempty"` // "Gift", "CoCook", "CoEat", "Assistance"
	RecipeID    *uuid.UUID `json:"recipe_id,omitempty"`
	Description string     `json:"description"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`

	User   *User        `gorm:"foreignKey:UserID"`
	Recipe *SavedRecipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
