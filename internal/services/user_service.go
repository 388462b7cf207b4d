package services

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(name, email, password, role, languagePref, location string) (models.User, error)
	Authenticate(email, password string) (models.User, error)
	GetUserByID(id string) (models.User, error)
	GetAllUsers() ([]models.User, error)
	UpdateProfile(id, name, email, languagePref, location string) (models.User, error)
	UpdateRole(id, role string) (models.User, error)
	UpdatePassword(id, currentPassword, newPassword string) error
	DeleteUser(id string) error
}

// UserService provides business logic for accounts and credentials.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

const userColumns = "id, name, email, role, language_pref, location, created_at"

func scanUser(scanner interface{ Scan(...interface{}) error }) (models.User, error) {
	var user models.User
	var lang, loc sql.NullString
	err := scanner.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &lang, &loc, &user.CreatedAt)
	if err != nil {
		return models.User{}, err
	}
	user.LanguagePref = lang.String
	user.Location = loc.String
	return user, nil
}

// Register creates a new user with a freshly salted password hash. The role
// must be self-declarable (Farmer or Expert); Admin accounts are created by
// bootstrap or elevation only.
func (s *UserService) Register(name, email, password, role, languagePref, location string) (models.User, error) {
	if !models.ValidRegistrationRole(role) {
		return models.User{}, fmt.Errorf("%w: role %q cannot be self-declared", ErrValidation, role)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		LanguagePref: languagePref,
		Location:     location,
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, name, email, password_hash, role, language_pref, location) VALUES(?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.LanguagePref, user.Location)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}

	// Never hand the hash back to a caller
	user.PasswordHash = ""
	return s.GetUserByID(user.ID)
}

// Authenticate verifies an (email, password) pair. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	var user models.User
	var lang, loc sql.NullString
	row := s.db.QueryRow("SELECT id, name, email, password_hash, role, language_pref, location, created_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &lang, &loc, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	user.LanguagePref = lang.String
	user.Location = loc.String

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user.PasswordHash = ""
	return user, nil
}

// GetUserByID retrieves a single user by their ID, without the hash.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return models.User{}, err
	}
	return user, nil
}

// GetAllUsers lists every account, without hashes.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	rows, err := s.db.Query("SELECT " + userColumns + " FROM users ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// UpdateProfile updates a user's descriptive fields. Role and password are
// deliberately not reachable through this path.
func (s *UserService) UpdateProfile(id, name, email, languagePref, location string) (models.User, error) {
	res, err := s.db.Exec("UPDATE users SET name = ?, email = ?, language_pref = ?, location = ? WHERE id = ?",
		name, email, languagePref, location, id)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return s.GetUserByID(id)
}

// UpdateRole sets a user's role to one of the closed set.
func (s *UserService) UpdateRole(id, role string) (models.User, error) {
	if !models.ValidRole(role) {
		return models.User{}, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	res, err := s.db.Exec("UPDATE users SET role = ? WHERE id = ?", role, id)
	if err != nil {
		return models.User{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return s.GetUserByID(id)
}

// UpdatePassword verifies the current password, then stores a re-salted hash
// of the new one.
func (s *UserService) UpdatePassword(id, currentPassword, newPassword string) error {
	var hash string
	row := s.db.QueryRow("SELECT password_hash FROM users WHERE id = ?", id)
	if err := row.Scan(&hash); err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	_, err = s.db.Exec("UPDATE users SET password_hash = ? WHERE id = ?", string(hashedPassword), id)
	return err
}

// DeleteUser removes a user from the database. Their forum posts cascade.
func (s *UserService) DeleteUser(id string) error {
	res, err := s.db.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}

// isUniqueViolation matches the sqlite unique-constraint error. The driver
// exposes no typed error for it, so this checks the message.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
