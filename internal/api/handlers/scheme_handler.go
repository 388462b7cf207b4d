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

// SchemeHandler handles HTTP requests for government schemes.
type SchemeHandler struct {
	service services.SchemeServiceProvider
}

// NewSchemeHandler creates a new SchemeHandler.
func NewSchemeHandler(service services.SchemeServiceProvider) *SchemeHandler {
	return &SchemeHandler{service: service}
}

// SchemePayload defines the writable scheme fields.
type SchemePayload struct {
	Title              string     `json:"title" validate:"required"`
	Description        string     `json:"description" validate:"required"`
	Category           string     `json:"category" validate:"omitempty,oneof=Subsidy Loan Insurance Training Other"`
	Eligibility        string     `json:"eligibility" validate:"required"`
	Benefits           string     `json:"benefits" validate:"required"`
	ApplicationProcess string     `json:"applicationProcess" validate:"required"`
	Deadline           *time.Time `json:"deadline"`
	ContactInfo        string     `json:"contactInfo"`
	Region             string     `json:"region"`
	ImageURL           string     `json:"imageUrl"`
	IsActive           *bool      `json:"isActive"`
}

// GetAll lists active schemes. Public.
func (h *SchemeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.service.GetActiveSchemes()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list schemes")
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, schemes, http.StatusOK)
}

// Get retrieves a single scheme. Public.
func (h *SchemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	scheme, err := h.service.GetSchemeByID(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, scheme, http.StatusOK)
}

// Create adds a scheme. Requires authentication.
func (h *SchemeHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeSchemePayload(w, r)
	if !ok {
		return
	}
	scheme, err := h.service.CreateScheme(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create scheme")
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, scheme, http.StatusCreated)
}

// Update modifies a scheme. Requires authentication.
func (h *SchemeHandler) Update(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeSchemePayload(w, r)
	if !ok {
		return
	}
	scheme, err := h.service.UpdateScheme(chi.URLParam(r, "id"), payload)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, scheme, http.StatusOK)
}

// Delete removes a scheme. Requires authentication.
func (h *SchemeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteScheme(chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, map[string]string{"message": "Scheme deleted"}, http.StatusOK)
}

func decodeSchemePayload(w http.ResponseWriter, r *http.Request) (models.GovernmentScheme, bool) {
	var payload SchemePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return models.GovernmentScheme{}, false
	}
	if err := validate.Struct(payload); err != nil {
		httputil.RespondError(w, "invalid scheme fields", http.StatusBadRequest)
		return models.GovernmentScheme{}, false
	}
	scheme := models.GovernmentScheme{
		Title:              payload.Title,
		Description:        payload.Description,
		Category:           payload.Category,
		Eligibility:        payload.Eligibility,
		Benefits:           payload.Benefits,
		ApplicationProcess: payload.ApplicationProcess,
		Deadline:           payload.Deadline,
		ContactInfo:        payload.ContactInfo,
		Region:             payload.Region,
		ImageURL:           payload.ImageURL,
		IsActive:           true,
	}
	if payload.IsActive != nil {
		scheme.IsActive = *payload.IsActive
	}
	return scheme, true
}
