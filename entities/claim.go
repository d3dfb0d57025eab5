package entities

import (
	"time"

	"github.com/google/uuid"
)

type RestaurantClaim struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RestaurantID uuid.UUID  `json:"restaurant_id"`
	UserID       uuid.UUID  `json:"user_id"`
	Message      string     `gorm:"type:text" json:"message,omitempty"`
	EvidenceURL  string     `json:"evidence_url,omitempty"`
	Status       string     `json:"status"` // "Pending", "Approved", "Rejected"
	DecidedAt    *time.Time `json:"decided_at,omitempty"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	User       *User       `gorm:"foreignKey:UserID"`
	Timestamp
}
