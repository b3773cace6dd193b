package models

import "time"

// CartItem is a single line in a user's cart. Rows are created on
// add-to-cart and deleted en masse when the owning user's order commits;
// they are never mutated in place.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID    string    `json:"user_id" gorm:"index;type:varchar(64)" validate:"required"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36)" validate:"required"`
	VariantID string    `json:"variant_id" gorm:"type:varchar(36)" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
