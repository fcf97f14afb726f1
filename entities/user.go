package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	Password     string    `json:"-"`
	Role         string    `json:"role"`                    // "Standard", "Volunteer", "Senior"
	OnlineStatus string    `json:"online_status,omitempty"` // "online", "offline"

	Friends []*User `gorm:"many2many:user_friends" json:"friends,omitempty"`
	Timestamp
}
