package repositories

import "storefront/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Upsert creates the user if absent, otherwise updates the profile
	// columns in place. The role column is assigned only on creation and
	// never changed by a subsequent upsert.
	Upsert(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
