package services

import (
	"testing"

	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.Register("John Farmer", "john@example.com", "secret123", models.RoleFarmer, "EN", "California")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleFarmer, user.Role)
	assert.Empty(t, user.PasswordHash)

	got, err := svc.Authenticate("john@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Empty(t, got.PasswordHash)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.Register("John Farmer", "john@example.com", "secret123", models.RoleFarmer, "", "")
	require.NoError(t, err)

	_, err = svc.Authenticate("john@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.Authenticate("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("John Farmer", "john@example.com", "secret123", models.RoleFarmer, "", "")
	require.NoError(t, err)

	_, err = svc.Register("Impostor", "john@example.com", "other-password", models.RoleExpert, "", "")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", "john@example.com").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.Register("Sneaky", "sneaky@example.com", "secret123", models.RoleAdmin, "", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register("Weird", "weird@example.com", "secret123", "SuperUser", "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProfile(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.Register("John Farmer", "john@example.com", "secret123", models.RoleFarmer, "EN", "California")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(user.ID, "Johnny Farmer", "johnny@example.com", "HI", "Punjab")
	require.NoError(t, err)
	assert.Equal(t, "Johnny Farmer", updated.Name)
	assert.Equal(t, "johnny@example.com", updated.Email)
	assert.Equal(t, "Punjab", updated.Location)
	// Role untouched
	assert.Equal(t, models.RoleFarmer, updated.Role)
}

func TestUpdateProfileNotFound(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.UpdateProfile("no-such-id", "Name", "a@example.com", "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRole(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.Register("John Farmer", "john@example.com", "secret123", models.RoleFarmer, "", "")
	require.NoError(t, err)

	updated, err := svc.UpdateRole(user.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	_, err = svc.UpdateRole(user.ID, "Overlord")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdatePassword(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.Register("John Farmer", "john@example.com", "secret123", models.RoleFarmer, "", "")
	require.NoError(t, err)

	err = svc.UpdatePassword(user.ID, "wrong-current", "newsecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.UpdatePassword(user.ID, "secret123", "newsecret"))

	_, err = svc.Authenticate("john@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate("john@example.com", "newsecret")
	assert.NoError(t, err)
}

func TestDeleteUserCascadesPosts(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	forum := NewForumService(db)

	user, err := svc.Register("John Farmer", "john@example.com", "secret123", models.RoleFarmer, "", "")
	require.NoError(t, err)

	_, err = forum.CreatePost(models.ForumPost{UserID: user.ID, Title: "Hello", Content: "World"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(user.ID))

	posts, err := forum.GetAllPosts()
	require.NoError(t, err)
	assert.Empty(t, posts)

	assert.ErrorIs(t, svc.DeleteUser(user.ID), ErrNotFound)
}
