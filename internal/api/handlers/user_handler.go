package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/JasirAhamed786/unifield-be/internal/auth"
	"github.com/JasirAhamed786/unifield-be/internal/httputil"
	"github.com/JasirAhamed786/unifield-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	service services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

// GetAll lists every user. The route is Admin-gated.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, users, http.StatusOK)
}

// Get retrieves a user by ID.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, err := h.service.GetUserByID(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, user, http.StatusOK)
}

// UpdatePayload defines the mutable profile fields. Role and password are
// deliberately absent; they have their own gated endpoints.
type UpdatePayload struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	LanguagePref string `json:"languagePref"`
	Location     string `json:"location"`
}

// Update modifies a profile. Only the user themselves or an Admin may do so.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, "missing auth token", http.StatusUnauthorized)
		return
	}
	if !auth.CanEditProfile(identity, id) {
		httputil.RespondError(w, "forbidden", http.StatusForbidden)
		return
	}

	var payload UpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		httputil.RespondError(w, "invalid profile fields", http.StatusBadRequest)
		return
	}

	user, err := h.service.UpdateProfile(id, payload.Name, payload.Email, payload.LanguagePref, payload.Location)
	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("Failed to update user")
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, user, http.StatusOK)
}

// UpdateRole sets a user's role. The route is Admin-gated.
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload struct {
		Role string `json:"role" validate:"required,oneof=Farmer Expert Admin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		httputil.RespondError(w, "invalid role", http.StatusBadRequest)
		return
	}

	user, err := h.service.UpdateRole(id, payload.Role)
	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("Failed to update role")
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, user, http.StatusOK)
}

// ChangePassword re-hashes a user's secret. Only the user themselves may
// change it, and only with the current password in hand.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity.UserID != id {
		httputil.RespondError(w, "forbidden", http.StatusForbidden)
		return
	}

	var payload struct {
		CurrentPassword string `json:"currentPassword" validate:"required"`
		NewPassword     string `json:"newPassword" validate:"required,min=6"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		httputil.RespondError(w, "invalid password fields", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdatePassword(id, payload.CurrentPassword, payload.NewPassword); err != nil {
		log.Warn().Err(err).Str("user_id", id).Msg("Failed to change password")
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, map[string]string{"message": "Password updated successfully"}, http.StatusOK)
}

// Delete removes a user account. The route is Admin-gated.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteUser(id); err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("Failed to delete user")
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
