package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Price fields use fixed-point decimals; float64
// is never used for money anywhere in this codebase.
type Product struct {
	ID           string           `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name         string           `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Description  string           `json:"description" gorm:"type:text" validate:"omitempty,max=2000"`
	Slug         string           `json:"slug" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	SKU          string           `json:"sku" gorm:"uniqueIndex;type:varchar(50)" validate:"required,min=1,max=50"`
	Price        decimal.Decimal  `json:"price" gorm:"type:decimal(12,2)"`
	ComparePrice *decimal.Decimal `json:"compare_price,omitempty" gorm:"type:decimal(12,2)"`
	Cost         decimal.Decimal  `json:"cost" gorm:"type:decimal(12,2)"`
	BrandID      string           `json:"brand_id" gorm:"index;type:varchar(36)" validate:"required"`
	IsActive     bool             `json:"is_active" gorm:"default:true"`
	Variants     []ProductVariant `json:"variants" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images       []ProductImage   `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ProductVariant is a sellable combination of color and size with its own
// stock count and optional price override.
type ProductVariant struct {
	ID        string           `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductID string           `json:"product_id" gorm:"index;type:varchar(36)"`
	SKU       string           `json:"sku" gorm:"type:varchar(50)" validate:"required,min=1,max=50"`
	ColorID   string           `json:"color_id" gorm:"type:varchar(36)" validate:"required"`
	SizeID    string           `json:"size_id" gorm:"type:varchar(36)" validate:"required"`
	Stock     int              `json:"stock" validate:"gte=0"`
	Price     *decimal.Decimal `json:"price,omitempty" gorm:"type:decimal(12,2)"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ProductImage is a display asset attached to a product.
type ProductImage struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductID string    `json:"product_id" gorm:"index;type:varchar(36)"`
	URL       string    `json:"url" gorm:"type:varchar(512)" validate:"required,url"`
	Alt       string    `json:"alt" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}
