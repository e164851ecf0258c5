package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // Portal coordinator - full access
	RoleStudent Role = "student" // OJT student / applicant
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	StudentID *string
}

// IsAdmin checks if the user is a portal coordinator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
