package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/JasirAhamed786/unifield-be/internal/httputil"
	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/JasirAhamed786/unifield-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// CropGuideHandler handles HTTP requests for crop guides.
type CropGuideHandler struct {
	service services.CropGuideServiceProvider
}

// NewCropGuideHandler creates a new CropGuideHandler.
func NewCropGuideHandler(service services.CropGuideServiceProvider) *CropGuideHandler {
	return &CropGuideHandler{service: service}
}

// CropGuidePayload defines the writable guide fields.
type CropGuidePayload struct {
	Name     string           `json:"name" validate:"required"`
	Season   string           `json:"season" validate:"required"`
	Soil     string           `json:"soil" validate:"required"`
	Water    string           `json:"water" validate:"required"`
	ImageURL string           `json:"imageUrl"`
	Diseases []models.Disease `json:"diseases"`
}

// GetAll lists every crop guide. Public.
func (h *CropGuideHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	guides, err := h.service.GetAllGuides()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list crop guides")
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, guides, http.StatusOK)
}

// Get retrieves a single crop guide. Public.
func (h *CropGuideHandler) Get(w http.ResponseWriter, r *http.Request) {
	guide, err := h.service.GetGuideByID(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, guide, http.StatusOK)
}

// Create adds a crop guide. Requires authentication.
func (h *CropGuideHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeGuidePayload(w, r)
	if !ok {
		return
	}
	guide, err := h.service.CreateGuide(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create crop guide")
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, guide, http.StatusCreated)
}

// Update modifies a crop guide. Requires authentication.
func (h *CropGuideHandler) Update(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeGuidePayload(w, r)
	if !ok {
		return
	}
	guide, err := h.service.UpdateGuide(chi.URLParam(r, "id"), payload)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, guide, http.StatusOK)
}

// Delete removes a crop guide. Requires authentication.
func (h *CropGuideHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteGuide(chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, map[string]string{"message": "Crop guide deleted"}, http.StatusOK)
}

func decodeGuidePayload(w http.ResponseWriter, r *http.Request) (models.CropGuide, bool) {
	var payload CropGuidePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return models.CropGuide{}, false
	}
	if err := validate.Struct(payload); err != nil {
		httputil.RespondError(w, "invalid crop guide fields", http.StatusBadRequest)
		return models.CropGuide{}, false
	}
	return models.CropGuide{
		Name:     payload.Name,
		Season:   payload.Season,
		Soil:     payload.Soil,
		Water:    payload.Water,
		ImageURL: payload.ImageURL,
		Diseases: payload.Diseases,
	}, true
}
