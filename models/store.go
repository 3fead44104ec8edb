package models

import (
	"time"

	"github.com/google/uuid"
)

// Store is a seller's shop. Name, email, phone and url are all unique across
// the platform; upserts pre-check them to return field-specific conflicts.
type Store struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone       string    `gorm:"uniqueIndex;not null" json:"phone"`
	URL         string    `gorm:"uniqueIndex;not null" json:"url"`
	Logo        string    `json:"logo"`
	UserID      string    `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
