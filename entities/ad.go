package entities

import (
	"time"

	"github.com/google/uuid"
)

type AdPlacement struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RestaurantID uuid.UUID  `json:"restaurant_id"`
	CityID       uuid.UUID  `json:"city_id"`
	OrderID      string     `gorm:"uniqueIndex" json:"order_id"`
	Slot         string     `json:"slot"` // "city_top", "city_sidebar", "homepage"
	Price        int64      `json:"price"`
	Status       string     `json:"status"` // "Pending", "Active", "Expired", "Cancelled"
	StartsAt     time.Time  `json:"starts_at"`
	EndsAt       time.Time  `json:"ends_at"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	City       *City       `gorm:"foreignKey:CityID"`
	Timestamp
}
