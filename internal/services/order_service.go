package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// OrderLine is one requested line of an order. Price is the unit price the
// caller locked in at cart time; it is validated for shape but not compared
// against the live catalog (explicit price-lock policy).
type OrderLine struct {
	ProductID string          `json:"product_id" validate:"required"`
	VariantID string          `json:"variant_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
}

// OrderEventPublisher publishes order lifecycle events to the message broker.
type OrderEventPublisher interface {
	PublishOrderPlaced(event map[string]interface{}) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher OrderEventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// AssembleOrder builds an in-memory order aggregate from the requested
// lines: each line total is price times quantity rounded to two decimal
// places, the subtotal is the sum of line totals, and tax and shipping are
// fixed at zero for now. Pure transformation, no side effects; the result
// is not durable until PlaceOrder commits it.
func (s *OrderService) AssembleOrder(userID, addressID string, lines []OrderLine) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}
	if addressID == "" {
		return nil, fmt.Errorf("address reference is required")
	}

	orderID := uuid.New().String()
	subtotal := decimal.Zero
	items := make([]models.OrderItem, 0, len(lines))

	for i, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("item %d: quantity must be a positive integer", i)
		}
		if line.Price.IsNegative() {
			return nil, fmt.Errorf("item %d: price must not be negative", i)
		}

		lineTotal := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)
		subtotal = subtotal.Add(lineTotal)

		items = append(items, models.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			ProductID: line.ProductID,
			VariantID: line.VariantID,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Total:     lineTotal,
		})
	}

	tax := decimal.Zero
	shipping := decimal.Zero

	return &models.Order{
		ID:          orderID,
		OrderNumber: newOrderNumber(),
		UserID:      userID,
		AddressID:   addressID,
		Items:       items,
		Subtotal:    subtotal,
		Tax:         tax,
		Shipping:    shipping,
		Total:       subtotal.Add(tax).Add(shipping),
		Status:      models.OrderStatusPending,
	}, nil
}

// PlaceOrder assembles the order and commits it atomically with the cart
// clear. The order-placed event is published best-effort: a broker failure
// is logged but never fails a request whose order is already durable.
func (s *OrderService) PlaceOrder(userID, addressID string, lines []OrderLine) (*models.Order, error) {
	order, err := s.AssembleOrder(userID, addressID, lines)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.CreateWithCartClear(order, userID); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"order_id":     order.ID,
			"order_number": order.OrderNumber,
			"user_id":      order.UserID,
			"status":       order.Status,
			"total":        order.Total.String(),
		}
		if err := s.publisher.PublishOrderPlaced(event); err != nil {
			log.Printf("Warning: failed to publish order placed event for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// GetOrderForUser fetches one order, refusing to return an order owned by a
// different user.
func (s *OrderService) GetOrderForUser(orderID, userID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order with ID %s not found", orderID)
	}
	return order, nil
}

// ListOrdersForUser returns the user's orders, newest first.
func (s *OrderService) ListOrdersForUser(userID string) ([]models.Order, error) {
	return s.orderRepo.ListByUser(userID)
}

// newOrderNumber generates a human-readable order number. The timestamp
// keeps numbers roughly sortable; the random fragment removes same-tick
// collisions under concurrent placement. The unique index on the column is
// the final arbiter either way.
func newOrderNumber() string {
	fragment := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), fragment)
}
