package services

import (
	"fmt"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// IdentityEmail is one email entry in a provider profile payload.
type IdentityEmail struct {
	EmailAddress string `json:"email_address"`
	Verification *struct {
		Status string `json:"status"`
	} `json:"verification"`
}

// IdentityProfile is the provider-controlled profile payload carried by
// identity events. Everything except the ID is optional; the synchronizer
// normalizes missing fields instead of failing on them.
type IdentityProfile struct {
	ID             string          `json:"id"`
	FirstName      *string         `json:"first_name"`
	LastName       *string         `json:"last_name"`
	ImageURL       *string         `json:"image_url"`
	Gender         *string         `json:"gender"`
	Birthday       *string         `json:"birthday"`
	EmailAddresses []IdentityEmail `json:"email_addresses"`
}

// IdentityService upserts local user records from identity-provider events.
type IdentityService struct {
	userRepo        repositories.UserRepository
	superAdminEmail string
}

// NewIdentityService creates a new IdentityService. superAdminEmail is the
// configured address that earns the ADMIN role at creation time.
func NewIdentityService(userRepo repositories.UserRepository, superAdminEmail string) *IdentityService {
	return &IdentityService{
		userRepo:        userRepo,
		superAdminEmail: superAdminEmail,
	}
}

// SyncUser upserts the local record for the given profile, keyed by the
// provider-issued ID. Creating assigns ADMIN when the primary email matches
// the configured super-admin address, CUSTOMER otherwise; updating never
// touches the role, so a later email change cannot promote anyone. Repeated
// calls with the same profile are idempotent.
func (s *IdentityService) SyncUser(profile IdentityProfile) (*models.User, error) {
	if profile.ID == "" {
		return nil, fmt.Errorf("identity payload is missing the user identifier")
	}

	user := models.User{
		ID:        profile.ID,
		FirstName: stringOrEmpty(profile.FirstName),
		LastName:  stringOrEmpty(profile.LastName),
		ImageURL:  stringOrEmpty(profile.ImageURL),
		Role:      models.RoleCustomer,
	}

	if len(profile.EmailAddresses) > 0 {
		primary := profile.EmailAddresses[0]
		if primary.EmailAddress != "" {
			email := primary.EmailAddress
			user.Email = &email
			user.IsEmailVerified = primary.Verification != nil && primary.Verification.Status == "verified"
			if s.superAdminEmail != "" && email == s.superAdminEmail {
				user.Role = models.RoleAdmin
			}
		}
	}

	user.Gender = parseGender(profile.Gender)
	user.DateOfBirth = parseBirthday(profile.Birthday)

	if err := s.userRepo.Upsert(&user); err != nil {
		return nil, fmt.Errorf("failed to sync user %s: %w", profile.ID, err)
	}

	// Re-read so the caller sees the stored record, including the role
	// assigned when the row was first created.
	return s.userRepo.GetByID(profile.ID)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func parseGender(raw *string) *models.Gender {
	if raw == nil {
		return nil
	}
	switch models.Gender(*raw) {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
		g := models.Gender(*raw)
		return &g
	}
	return nil
}

// parseBirthday accepts the provider's date-only format; anything else is
// treated as absent rather than failing the sync.
func parseBirthday(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil
	}
	return &t
}
