package models

import "time"

// Roles form a closed set. Every user has exactly one.
const (
	RoleFarmer = "Farmer"
	RoleExpert = "Expert"
	RoleAdmin  = "Admin"
)

// User represents a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	Role         string    `json:"role"`
	LanguagePref string    `json:"languagePref,omitempty"`
	Location     string    `json:"location,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ValidRole reports whether role is one of the closed set.
func ValidRole(role string) bool {
	switch role {
	case RoleFarmer, RoleExpert, RoleAdmin:
		return true
	}
	return false
}

// ValidRegistrationRole reports whether role may be self-declared at
// registration. Admin accounts are created by bootstrap or elevated by an
// existing Admin, never self-declared.
func ValidRegistrationRole(role string) bool {
	return role == RoleFarmer || role == RoleExpert
}
