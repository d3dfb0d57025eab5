package entities

import (
	"github.com/google/uuid"
)

type Restaurant struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	GooglePlaceID   *string   `gorm:"uniqueIndex" json:"google_place_id,omitempty"`
	Name            string    `json:"name"`
	Slug            string    `gorm:"uniqueIndex" json:"slug"`
	Address         string    `json:"address"`
	PostalCode      string    `json:"postal_code,omitempty"`
	CityID          uuid.UUID `json:"city_id"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Phone           string    `json:"phone,omitempty"`
	Website         string    `json:"website,omitempty"`
	PriceRange      string    `json:"price_range,omitempty"` // "€", "€€", "€€€", "€€€€"
	Rating          float64   `json:"rating"`
	RatingCount     int       `json:"rating_count"`
	ImageURL        string    `json:"image_url,omitempty"`
	IsVerified      bool      `json:"is_verified"`
	IsClaimed       bool      `json:"is_claimed"`
	OpeningHours    string    `gorm:"type:text" json:"opening_hours,omitempty"` // JSON, per-weekday open/close
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `json:"meta_description"`
	PageViews       int64     `json:"page_views"`

	City     *City                `gorm:"foreignKey:CityID"`
	Photos   []*RestaurantPhoto   `gorm:"foreignKey:RestaurantID"`
	Cuisines []*RestaurantCuisine `gorm:"foreignKey:RestaurantID"`
	Timestamp
}

type RestaurantPhoto struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	URL          string    `json:"url"`
	IsPrimary    bool      `json:"is_primary"`
	IsApproved   bool      `json:"is_approved"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Timestamp
}
