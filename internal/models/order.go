package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusPaid       OrderStatus = "PAID"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// OrderItem captures one purchased line. Price is the unit price at the
// moment the order was placed; Total is price times quantity rounded to two
// decimal places. Rows exist only as part of their order.
type OrderItem struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string          `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID string          `json:"product_id" gorm:"type:varchar(36)"`
	VariantID string          `json:"variant_id" gorm:"type:varchar(36)"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(12,2)"`
	CreatedAt time.Time       `json:"created_at"`
}

// Order is a committed purchase: header plus an immutable set of line items
// created in the same transaction. Subtotal equals the sum of line totals;
// the unique index on OrderNumber backstops number generation.
type Order struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderNumber string          `json:"order_number" gorm:"uniqueIndex;type:varchar(64)"`
	UserID      string          `json:"user_id" gorm:"index;type:varchar(64)"`
	AddressID   string          `json:"address_id" gorm:"type:varchar(36)"`
	Items       []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal    decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2)"`
	Tax         decimal.Decimal `json:"tax" gorm:"type:decimal(12,2)"`
	Shipping    decimal.Decimal `json:"shipping" gorm:"type:decimal(12,2)"`
	Total       decimal.Decimal `json:"total" gorm:"type:decimal(12,2)"`
	Status      OrderStatus     `json:"status" gorm:"type:varchar(20);index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
