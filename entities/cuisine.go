package entities

import (
	"github.com/google/uuid"
)

type Cuisine struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `json:"name"`
	Slug string    `gorm:"uniqueIndex" json:"slug"`

	Timestamp
}

type RestaurantCuisine struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RestaurantID uuid.UUID `gorm:"uniqueIndex:idx_restaurant_cuisine" json:"restaurant_id"`
	CuisineID    uuid.UUID `gorm:"uniqueIndex:idx_restaurant_cuisine" json:"cuisine_id"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Cuisine    *Cuisine    `gorm:"foreignKey:CuisineID"`
	Timestamp
}
