package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	svix "github.com/svix/svix-webhooks/go"

	"storefront/internal/services"
)

// EventVerifier checks the authenticity of a signed webhook payload.
// *svix.Webhook satisfies it; tests substitute a double.
type EventVerifier interface {
	Verify(payload []byte, headers http.Header) error
}

// NewEventVerifier builds the production verifier from the shared webhook
// secret configured at the identity provider.
func NewEventVerifier(secret string) (EventVerifier, error) {
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, err
	}
	return wh, nil
}

// identityEvent is the signed event envelope delivered by the identity
// provider: a type tag plus the provider-controlled profile payload.
type identityEvent struct {
	Type string                   `json:"type"`
	Data services.IdentityProfile `json:"data"`
}

// WebhookHandler receives signed identity-provider events and drives the
// user synchronizer.
type WebhookHandler struct {
	verifier EventVerifier
	identity *services.IdentityService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(verifier EventVerifier, identity *services.IdentityService) *WebhookHandler {
	return &WebhookHandler{
		verifier: verifier,
		identity: identity,
	}
}

// RegisterRoutes registers the webhook routes with the Fiber app. These
// routes are public: authenticity comes from the signature, not a session.
func (h *WebhookHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/webhooks/identity", h.HandleIdentityEvent)
}

// HandleIdentityEvent verifies the event signature before anything else
// runs, then dispatches on the event type. Created and updated events both
// upsert; deleted events are acknowledged without touching local state.
func (h *WebhookHandler) HandleIdentityEvent(c *fiber.Ctx) error {
	payload := c.Body()

	if err := h.verifier.Verify(payload, requestHeaders(c)); err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid webhook signature",
		})
	}

	var event identityEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Malformed event payload",
			"error":   err.Error(),
		})
	}

	switch event.Type {
	case "user.created", "user.updated":
		user, err := h.identity.SyncUser(event.Data)
		if err != nil {
			log.Printf("Failed to sync user from %s event: %v", event.Type, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to process identity event",
			})
		}
		return c.JSON(fiber.Map{
			"message": "Identity event processed",
			"user_id": user.ID,
		})
	case "user.deleted":
		// Local records outlive provider deletion; acknowledge only.
		return c.JSON(fiber.Map{"message": "Identity deletion acknowledged"})
	default:
		return c.JSON(fiber.Map{"message": "Event type ignored"})
	}
}

// requestHeaders copies the fasthttp headers into the net/http shape the
// verifier expects.
func requestHeaders(c *fiber.Ctx) http.Header {
	headers := make(http.Header)
	for key, values := range c.GetReqHeaders() {
		for _, value := range values {
			headers.Add(key, value)
		}
	}
	return headers
}
