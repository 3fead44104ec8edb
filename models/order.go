package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending   = "Pending"
	PaymentStatusPending = "Pending"
	GroupStatusPending   = "Pending"

	// DefaultShippingService labels every order group until carrier
	// integration exists.
	DefaultShippingService = "International Delivery Company"
)

// Order is one checkout. Its groups partition the purchased items by store so
// each seller can fulfill independently.
type Order struct {
	ID                uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID            string           `gorm:"not null;index" json:"user_id"`
	ShippingAddressID uuid.UUID        `gorm:"type:uuid;not null" json:"shipping_address_id"`
	ShippingAddress   *ShippingAddress `gorm:"foreignKey:ShippingAddressID" json:"shipping_address,omitempty"`
	OrderStatus       string           `gorm:"type:varchar(20);not null;default:'Pending'" json:"order_status"`
	PaymentStatus     string           `gorm:"type:varchar(20);not null;default:'Pending'" json:"payment_status"`
	Total             float64          `gorm:"not null;default:0" json:"total"`
	Groups            []OrderGroup     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"groups,omitempty"`
	CreatedAt         time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// OrderGroup is the per-store slice of an order. Exactly one group per
// distinct store represented in the order's items.
type OrderGroup struct {
	ID              uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID         uuid.UUID   `gorm:"type:uuid;not null;index" json:"order_id"`
	StoreID         uuid.UUID   `gorm:"type:uuid;not null;index" json:"store_id"`
	Store           *Store      `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Status          string      `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	ShippingService string      `gorm:"not null" json:"shipping_service"`
	Total           float64     `gorm:"not null;default:0" json:"total"`
	Items           []OrderItem `gorm:"foreignKey:OrderGroupID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt       time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

// OrderItem snapshots one cart line at checkout. The copied identity and
// price fields never change even if the catalog does.
type OrderItem struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderGroupID uuid.UUID `gorm:"type:uuid;not null;index" json:"order_group_id"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	VariantID    uuid.UUID `gorm:"type:uuid;not null" json:"variant_id"`
	SizeID       uuid.UUID `gorm:"type:uuid;not null" json:"size_id"`
	SKU          string    `json:"sku"`
	Name         string    `gorm:"not null" json:"name"`
	Image        string    `json:"image"`
	Size         string    `gorm:"not null" json:"size"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	Price        float64   `gorm:"not null" json:"price"`
	TotalPrice   float64   `gorm:"not null" json:"total_price"`
}
