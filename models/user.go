package models

import (
	"time"

	"github.com/google/uuid"
)

// User mirrors the identity provider's record. The ID is the provider's
// opaque id, synced through the user-lifecycle webhook.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Picture   string    `json:"picture"`
	Role      Role      `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Willaya is an Algerian administrative region used for shipping addresses.
type Willaya struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"unique;not null" json:"name"`
	Code int       `gorm:"unique;not null" json:"code"`
}

type ShippingAddress struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	WillayaID uuid.UUID `gorm:"type:uuid;not null" json:"willaya_id"`
	Willaya   *Willaya  `gorm:"foreignKey:WillayaID" json:"willaya,omitempty"`
	Commune   string    `gorm:"not null" json:"commune"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	Phone     string    `gorm:"not null" json:"phone"`
	Address   string    `gorm:"not null" json:"address"`
	Default   bool      `gorm:"default:false" json:"default"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
