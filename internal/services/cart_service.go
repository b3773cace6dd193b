package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CartService handles business logic related to cart line items.
type CartService struct {
	cartRepo repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
	}
}

// AddItem appends a line item to the user's cart.
func (s *CartService) AddItem(userID, productID, variantID string, quantity int) (*models.CartItem, error) {
	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		VariantID: variantID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems returns the user's current cart snapshot.
func (s *CartService) ListItems(userID string) ([]models.CartItem, error) {
	return s.cartRepo.ListByUser(userID)
}
