package auth

import "github.com/JasirAhamed786/unifield-be/internal/models"

// Authorization decisions beyond "is this token valid" live here so every
// mutating handler consults the same policy instead of trusting the client.

// IsAdmin reports whether the identity carries the Admin role.
func IsAdmin(id Identity) bool {
	return id.Role == models.RoleAdmin
}

// CanModifyOwned reports whether the identity may mutate a resource owned
// by ownerID: the owner themselves or an Admin.
func CanModifyOwned(id Identity, ownerID string) bool {
	return id.UserID == ownerID || IsAdmin(id)
}

// CanEditProfile reports whether the identity may edit targetID's profile.
func CanEditProfile(id Identity, targetID string) bool {
	return id.UserID == targetID || IsAdmin(id)
}
