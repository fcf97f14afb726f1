package entities

import (
	"github.com/google/uuid"
	"time"
)

type FoodItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	ExpiryDate time.Time `json:"expiry_date"`
	Location   string    `json:"location"` // "Fridge", "Freezer", "Pantry"
	Urgency    string    `json:"urgency"`  // "Use Now", "Plan Soon", "Safe"
	ImageURL   string    `json:"image_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
