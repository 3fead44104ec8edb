package models

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the server-side authoritative cart. One row per user; saving a cart
// replaces the previous row entirely rather than merging lines into it.
type Cart struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    string     `gorm:"uniqueIndex;not null" json:"user_id"`
	Total     float64    `gorm:"not null;default:0" json:"total"`
	CartItems []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"cart_items"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// CartItem is a validated line: identity keys plus a denormalized snapshot of
// the catalog state at validation time. Price and totals come from the
// catalog, never from the client.
type CartItem struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CartID      uuid.UUID `gorm:"type:uuid;not null;index" json:"cart_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	VariantID   uuid.UUID `gorm:"type:uuid;not null" json:"variant_id"`
	SizeID      uuid.UUID `gorm:"type:uuid;not null" json:"size_id"`
	StoreID     uuid.UUID `gorm:"type:uuid;not null;index" json:"store_id"`
	ProductSlug string    `gorm:"not null" json:"product_slug"`
	VariantSlug string    `gorm:"not null" json:"variant_slug"`
	SKU         string    `json:"sku"`
	Name        string    `gorm:"not null" json:"name"`
	Image       string    `json:"image"`
	Size        string    `gorm:"not null" json:"size"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Stock       int       `gorm:"not null" json:"stock"`
	Price       float64   `gorm:"not null" json:"price"`
	TotalPrice  float64   `gorm:"not null" json:"total_price"`
}
