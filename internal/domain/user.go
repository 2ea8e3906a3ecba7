package domain

import "time"

type UserRole string

const (
	UserRoleParent        UserRole = "PARENT"
	UserRoleProviderAdmin UserRole = "PROVIDER_ADMIN"
)

type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	ProviderID   *int32    `json:"provider_id,omitempty"` // set for PROVIDER_ADMIN users
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}
