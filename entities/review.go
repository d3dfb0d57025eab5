package entities

import (
	"github.com/google/uuid"
)

type Review struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	UserID       uuid.UUID `json:"user_id"`
	Rating       int       `json:"rating"` // 1-5
	Comment      string    `gorm:"type:text" json:"comment,omitempty"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	User       *User       `gorm:"foreignKey:UserID"`
	Timestamp
}

type Favorite struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"uniqueIndex:idx_user_favorite" json:"user_id"`
	RestaurantID uuid.UUID `gorm:"uniqueIndex:idx_user_favorite" json:"restaurant_id"`

	User       *User       `gorm:"foreignKey:UserID"`
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Timestamp
}
