package models

import "time"

// Role is the authorization level assigned to a user.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// Gender values mirror what the identity provider reports.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// User is the local mirror of an identity-provider account. The ID is issued
// by the provider, never generated here, and the record is only written by
// the identity synchronizer.
type User struct {
	ID              string     `json:"id" gorm:"primaryKey;type:varchar(64)" validate:"required"`
	Email           *string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"omitempty,email"`
	FirstName       string     `json:"first_name" gorm:"type:varchar(100)"`
	LastName        string     `json:"last_name" gorm:"type:varchar(100)"`
	ImageURL        string     `json:"image_url" gorm:"type:varchar(512)"`
	IsEmailVerified bool       `json:"is_email_verified"`
	Role            Role       `json:"role" gorm:"type:varchar(16);default:CUSTOMER" validate:"omitempty,oneof=ADMIN CUSTOMER"`
	Gender          *Gender    `json:"gender" gorm:"type:varchar(16)" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	DateOfBirth     *time.Time `json:"date_of_birth"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
