package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/JasirAhamed786/unifield-be/internal/auth"
	"github.com/JasirAhamed786/unifield-be/internal/httputil"
	"github.com/JasirAhamed786/unifield-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	users  services.UserServiceProvider
	tokens *auth.TokenManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Role         string `json:"role" validate:"required,oneof=Farmer Expert"`
	LanguagePref string `json:"languagePref"`
	Location     string `json:"location"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles new user registration. The response never carries the
// password or its hash.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		httputil.RespondError(w, "invalid registration fields", http.StatusBadRequest)
		return
	}

	_, err := h.users.Register(payload.Name, payload.Email, payload.Password, payload.Role, payload.LanguagePref, payload.Location)
	if err != nil {
		log.Warn().Err(err).Msg("Registration failed")
		respondServiceError(w, err)
		return
	}

	httputil.RespondJSON(w, map[string]string{"message": "User registered successfully"}, http.StatusCreated)
}

// Login verifies credentials and mints a bearer token. Unknown email and
// wrong password get the same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		httputil.RespondError(w, "invalid email or password", http.StatusUnauthorized)
		return
	}

	user, err := h.users.Authenticate(payload.Email, payload.Password)
	if err != nil {
		log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
		respondServiceError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Role)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to issue token")
		httputil.RespondError(w, "failed to issue token", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, map[string]interface{}{
		"token": token,
		"user": map[string]string{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	}, http.StatusOK)
}
