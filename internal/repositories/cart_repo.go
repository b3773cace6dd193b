package repositories

import "storefront/internal/models"

// CartRepository defines the interface for cart line-item access. Cart rows
// are only ever added or read here; clearing happens inside the order
// placement transaction owned by OrderRepository.
type CartRepository interface {
	Create(item *models.CartItem) error
	ListByUser(userID string) ([]models.CartItem, error)
}
