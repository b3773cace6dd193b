package handlers

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/middleware"
	"storefront/internal/services"
)

// CreateOrderRequest is the order placement payload: the locked-in cart
// lines plus the shipping address reference.
type CreateOrderRequest struct {
	Items     []services.OrderLine `json:"items" validate:"required,min=1,dive"`
	AddressID string               `json:"address_id" validate:"required"`
}

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
}

// HandleCreateOrder places an order for the authenticated user: the order
// aggregate is persisted and the user's cart cleared in one transaction.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"details": err.Error(),
		})
	}

	order, err := h.service.PlaceOrder(userID, req.AddressID, req.Items)
	if err != nil {
		if isAssemblyError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid order request",
				"error":   err.Error(),
			})
		}
		log.Printf("Error placing order for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create order",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleListOrders retrieves the authenticated user's orders.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	orders, err := h.service.ListOrdersForUser(userID)
	if err != nil {
		log.Printf("Error listing orders for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
		})
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves one of the authenticated user's orders.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	orderID := c.Params("id")

	order, err := h.service.GetOrderForUser(orderID, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		log.Printf("Error getting order %s: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
		})
	}
	return c.JSON(order)
}

// isAssemblyError distinguishes bad input caught by the assembler from
// storage failures, which surface as 500s.
func isAssemblyError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "at least one item") ||
		strings.Contains(msg, "address reference") ||
		strings.Contains(msg, "quantity must be") ||
		strings.Contains(msg, "price must not be")
}
