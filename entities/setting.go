package entities

import (
	"github.com/google/uuid"
)

// UserSetting stores the whole settings object as one JSON blob per user.
// The blob is overwritten wholesale on every save.
type UserSetting struct {
	UserID uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`
	Data   string    `json:"data" gorm:"type:text"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
