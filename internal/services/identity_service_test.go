package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/models"
	"storefront/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Upsert(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func strPtr(s string) *string { return &s }

func verifiedEmail(address string) services.IdentityEmail {
	return services.IdentityEmail{
		EmailAddress: address,
		Verification: &struct {
			Status string `json:"status"`
		}{Status: "verified"},
	}
}

func TestIdentityService_SyncUser_RoleAssignment(t *testing.T) {
	const superAdmin = "boss@example.com"

	cases := []struct {
		name     string
		email    string
		expected models.Role
	}{
		{"super admin email gets ADMIN", superAdmin, models.RoleAdmin},
		{"any other email gets CUSTOMER", "someone@example.com", models.RoleCustomer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			service := services.NewIdentityService(mockRepo, superAdmin)

			var upserted *models.User
			mockRepo.On("Upsert", mock.AnythingOfType("*models.User")).
				Run(func(args mock.Arguments) {
					upserted = args.Get(0).(*models.User)
				}).Return(nil).Once()
			mockRepo.On("GetByID", "ext-1").
				Return(&models.User{ID: "ext-1", Role: tc.expected}, nil).Once()

			user, err := service.SyncUser(services.IdentityProfile{
				ID:             "ext-1",
				FirstName:      strPtr("Ada"),
				EmailAddresses: []services.IdentityEmail{verifiedEmail(tc.email)},
			})
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, upserted.Role)
			assert.Equal(t, tc.expected, user.Role)
			assert.NotNil(t, upserted.Email)
			assert.Equal(t, tc.email, *upserted.Email)
			assert.True(t, upserted.IsEmailVerified)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestIdentityService_SyncUser_MissingOptionalAttributes(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewIdentityService(mockRepo, "boss@example.com")

	var upserted *models.User
	mockRepo.On("Upsert", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			upserted = args.Get(0).(*models.User)
		}).Return(nil).Once()
	mockRepo.On("GetByID", "ext-2").Return(&models.User{ID: "ext-2"}, nil).Once()

	// No names, no email, no avatar, no gender, no birthday.
	_, err := service.SyncUser(services.IdentityProfile{ID: "ext-2"})
	assert.NoError(t, err)
	assert.Equal(t, "", upserted.FirstName)
	assert.Equal(t, "", upserted.LastName)
	assert.Equal(t, "", upserted.ImageURL)
	assert.Nil(t, upserted.Email)
	assert.False(t, upserted.IsEmailVerified)
	assert.Nil(t, upserted.Gender)
	assert.Nil(t, upserted.DateOfBirth)
	assert.Equal(t, models.RoleCustomer, upserted.Role)
	mockRepo.AssertExpectations(t)
}

func TestIdentityService_SyncUser_NormalizesGenderAndBirthday(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewIdentityService(mockRepo, "")

	var upserted *models.User
	mockRepo.On("Upsert", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			upserted = args.Get(0).(*models.User)
		}).Return(nil).Times(2)
	mockRepo.On("GetByID", "ext-3").Return(&models.User{ID: "ext-3"}, nil).Times(2)

	_, err := service.SyncUser(services.IdentityProfile{
		ID:       "ext-3",
		Gender:   strPtr("FEMALE"),
		Birthday: strPtr("1990-04-01"),
	})
	assert.NoError(t, err)
	assert.NotNil(t, upserted.Gender)
	assert.Equal(t, models.GenderFemale, *upserted.Gender)
	assert.NotNil(t, upserted.DateOfBirth)
	assert.Equal(t, 1990, upserted.DateOfBirth.Year())

	// Unrecognized values are dropped instead of failing the sync.
	_, err = service.SyncUser(services.IdentityProfile{
		ID:       "ext-3",
		Gender:   strPtr("unknown"),
		Birthday: strPtr("not-a-date"),
	})
	assert.NoError(t, err)
	assert.Nil(t, upserted.Gender)
	assert.Nil(t, upserted.DateOfBirth)
	mockRepo.AssertExpectations(t)
}

func TestIdentityService_SyncUser_RequiresIdentifier(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewIdentityService(mockRepo, "")

	_, err := service.SyncUser(services.IdentityProfile{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing the user identifier")
	mockRepo.AssertNotCalled(t, "Upsert")
}
