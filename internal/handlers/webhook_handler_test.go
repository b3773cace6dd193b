package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront/internal/handlers"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
)

// stubVerifier lets tests force the signature check to pass or fail.
type stubVerifier struct {
	err error
}

func (s stubVerifier) Verify(payload []byte, headers http.Header) error {
	return s.err
}

const superAdminEmail = "boss@example.com"

func openHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductVariant{},
		&models.ProductImage{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	assert.NoError(t, err)
	return db
}

func setupWebhookApp(t *testing.T, verifier handlers.EventVerifier) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := openHandlerTestDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	identityService := services.NewIdentityService(userRepo, superAdminEmail)

	app := fiber.New()
	handlers.NewWebhookHandler(verifier, identityService).RegisterRoutes(app.Group("/api/v1"))
	return app, db
}

func postIdentityEvent(t *testing.T, app *fiber.App, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/identity", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func userCreatedEvent(eventType, id, email string) map[string]interface{} {
	return map[string]interface{}{
		"type": eventType,
		"data": map[string]interface{}{
			"id":         id,
			"first_name": "Ada",
			"last_name":  "Lovelace",
			"image_url":  "https://img.example.com/ada.png",
			"email_addresses": []map[string]interface{}{
				{
					"email_address": email,
					"verification":  map[string]string{"status": "verified"},
				},
			},
		},
	}
}

func TestWebhook_RejectsBadSignature(t *testing.T) {
	app, db := setupWebhookApp(t, stubVerifier{err: errors.New("signature mismatch")})

	resp := postIdentityEvent(t, app, userCreatedEvent("user.created", "ext-1", "ada@example.com"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Verification failure must leave no trace.
	var count int64
	assert.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestWebhook_CreatedEventUpsertsUser(t *testing.T) {
	app, db := setupWebhookApp(t, stubVerifier{})

	resp := postIdentityEvent(t, app, userCreatedEvent("user.created", "ext-1", "ada@example.com"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	assert.NoError(t, db.First(&user, "id = ?", "ext-1").Error)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "ada@example.com", *user.Email)
	assert.True(t, user.IsEmailVerified)
	assert.Equal(t, models.RoleCustomer, user.Role)
}

func TestWebhook_RepeatedEventsAreIdempotent(t *testing.T) {
	app, db := setupWebhookApp(t, stubVerifier{})
	event := userCreatedEvent("user.created", "ext-1", "ada@example.com")

	resp := postIdentityEvent(t, app, event)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	event["type"] = "user.updated"
	resp = postIdentityEvent(t, app, event)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	assert.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestWebhook_SuperAdminEmailCreatesAdmin(t *testing.T) {
	app, db := setupWebhookApp(t, stubVerifier{})

	resp := postIdentityEvent(t, app, userCreatedEvent("user.created", "ext-boss", superAdminEmail))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	assert.NoError(t, db.First(&user, "id = ?", "ext-boss").Error)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestWebhook_DeletedEventIsAcknowledgedWithoutEffect(t *testing.T) {
	app, db := setupWebhookApp(t, stubVerifier{})

	resp := postIdentityEvent(t, app, userCreatedEvent("user.created", "ext-1", "ada@example.com"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postIdentityEvent(t, app, map[string]interface{}{
		"type": "user.deleted",
		"data": map[string]interface{}{"id": "ext-1"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Local record outlives provider deletion.
	var count int64
	assert.NoError(t, db.Model(&models.User{}).Where("id = ?", "ext-1").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestWebhook_MalformedPayload(t *testing.T) {
	app, _ := setupWebhookApp(t, stubVerifier{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/identity", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
