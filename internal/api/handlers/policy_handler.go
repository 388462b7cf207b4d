package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/JasirAhamed786/unifield-be/internal/httputil"
	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/JasirAhamed786/unifield-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// PolicyHandler handles HTTP requests for policy documents.
type PolicyHandler struct {
	service services.PolicyServiceProvider
}

// NewPolicyHandler creates a new PolicyHandler.
func NewPolicyHandler(service services.PolicyServiceProvider) *PolicyHandler {
	return &PolicyHandler{service: service}
}

// PolicyPayload defines the writable policy fields.
type PolicyPayload struct {
	Title                 string     `json:"title" validate:"required"`
	Summary               string     `json:"summary" validate:"required"`
	Content               string     `json:"content" validate:"required"`
	Category              string     `json:"category" validate:"omitempty,oneof='Agricultural Policy' 'Trade Policy' 'Environmental Policy' 'Technology Policy' Other"`
	Region                string     `json:"region"`
	EffectiveDate         *time.Time `json:"effectiveDate"`
	ExpiryDate            *time.Time `json:"expiryDate"`
	ImplementingAuthority string     `json:"implementingAuthority"`
	ContactInfo           string     `json:"contactInfo"`
	ImageURL              string     `json:"imageUrl"`
	IsActive              *bool      `json:"isActive"`
}

// GetAll lists active policies, newest first. Public.
func (h *PolicyHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	policies, err := h.service.GetActivePolicies()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list policies")
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, policies, http.StatusOK)
}

// Get retrieves a single policy. Public.
func (h *PolicyHandler) Get(w http.ResponseWriter, r *http.Request) {
	policy, err := h.service.GetPolicyByID(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, policy, http.StatusOK)
}

// Create adds a policy. Requires authentication.
func (h *PolicyHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePolicyPayload(w, r)
	if !ok {
		return
	}
	policy, err := h.service.CreatePolicy(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create policy")
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, policy, http.StatusCreated)
}

// Update modifies a policy. Requires authentication.
func (h *PolicyHandler) Update(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePolicyPayload(w, r)
	if !ok {
		return
	}
	policy, err := h.service.UpdatePolicy(chi.URLParam(r, "id"), payload)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, policy, http.StatusOK)
}

// Delete removes a policy. Requires authentication.
func (h *PolicyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePolicy(chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, map[string]string{"message": "Policy deleted"}, http.StatusOK)
}

func decodePolicyPayload(w http.ResponseWriter, r *http.Request) (models.PolicyInformation, bool) {
	var payload PolicyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return models.PolicyInformation{}, false
	}
	if err := validate.Struct(payload); err != nil {
		httputil.RespondError(w, "invalid policy fields", http.StatusBadRequest)
		return models.PolicyInformation{}, false
	}
	policy := models.PolicyInformation{
		Title:                 payload.Title,
		Summary:               payload.Summary,
		Content:               payload.Content,
		Category:              payload.Category,
		Region:                payload.Region,
		EffectiveDate:         payload.EffectiveDate,
		ExpiryDate:            payload.ExpiryDate,
		ImplementingAuthority: payload.ImplementingAuthority,
		ContactInfo:           payload.ContactInfo,
		ImageURL:              payload.ImageURL,
		IsActive:              true,
	}
	if payload.IsActive != nil {
		policy.IsActive = *payload.IsActive
	}
	return policy, true
}
