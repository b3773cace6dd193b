package repositories

import "storefront/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// CreateWithCartClear persists the order aggregate (header plus line
	// items) and deletes every cart row belonging to userID as one atomic
	// unit. If either statement fails, neither change is visible and the
	// cart is left exactly as it was.
	CreateWithCartClear(order *models.Order, userID string) error
	GetByID(id string) (*models.Order, error)
	ListByUser(userID string) ([]models.Order, error)
	UpdateStatus(id string, status models.OrderStatus) error
}
