package entities

import (
	"github.com/google/uuid"
)

type City struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `gorm:"uniqueIndex" json:"name"`
	Slug            string    `gorm:"uniqueIndex" json:"slug"`
	Region          string    `json:"region,omitempty"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Description     string    `gorm:"type:text" json:"description"`
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `json:"meta_description"`

	Restaurants []*Restaurant `gorm:"foreignKey:CityID"`
	Timestamp
}
