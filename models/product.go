package models

import (
	"time"

	"github.com/google/uuid"
)

// Product carries the immutable identity and descriptive fields shared by all
// of its variants. Price and stock live on the Size leaf.
type Product struct {
	ID            uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string           `gorm:"not null" json:"name"`
	Description   string           `json:"description"`
	Slug          string           `gorm:"uniqueIndex;not null" json:"slug"`
	Brand         string           `json:"brand"`
	Rating        float64          `gorm:"default:0" json:"rating"`
	CategoryID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"category_id"`
	Category      *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubCategoryID uuid.UUID        `gorm:"type:uuid;not null;index" json:"sub_category_id"`
	SubCategory   *SubCategory     `gorm:"foreignKey:SubCategoryID" json:"sub_category,omitempty"`
	StoreID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"store_id"`
	Store         *Store           `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Variants      []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// ProductVariant is a visually distinct version of a product (a color, a
// finish) owning its own images and sizes.
type ProductVariant struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	VariantName        string         `gorm:"not null" json:"variant_name"`
	VariantDescription string         `json:"variant_description"`
	Slug               string         `gorm:"uniqueIndex;not null" json:"slug"`
	SKU                string         `gorm:"not null" json:"sku"`
	Keywords           string         `json:"keywords"`
	IsSale             bool           `gorm:"default:false" json:"is_sale"`
	SaleEndDate        string         `json:"sale_end_date"`
	VariantImage       string         `json:"variant_image"`
	Images             []VariantImage `gorm:"foreignKey:ProductVariantID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Sizes              []Size         `gorm:"foreignKey:ProductVariantID;constraint:OnDelete:CASCADE" json:"sizes,omitempty"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

type VariantImage struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductVariantID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_variant_id"`
	URL              string    `gorm:"not null" json:"url"`
	Alt              string    `json:"alt"`
}

// Size is the smallest sellable unit: it carries stock, price and discount.
// Discount is a percentage in [0,100].
type Size struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductVariantID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_variant_id"`
	Size             string    `gorm:"not null" json:"size"`
	Quantity         int       `gorm:"not null" json:"quantity"`
	Price            float64   `gorm:"not null" json:"price"`
	Discount         float64   `gorm:"default:0" json:"discount"`
}

// DiscountedPrice applies the percentage discount to the base price.
func (s Size) DiscountedPrice() float64 {
	if s.Discount > 0 {
		return s.Price - s.Price*(s.Discount/100)
	}
	return s.Price
}
