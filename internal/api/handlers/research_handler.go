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

// ResearchHandler handles HTTP requests for research updates.
type ResearchHandler struct {
	service services.ResearchServiceProvider
}

// NewResearchHandler creates a new ResearchHandler.
func NewResearchHandler(service services.ResearchServiceProvider) *ResearchHandler {
	return &ResearchHandler{service: service}
}

// ResearchPayload defines the writable article fields.
type ResearchPayload struct {
	Title       string   `json:"title" validate:"required"`
	Summary     string   `json:"summary" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Author      string   `json:"author" validate:"required"`
	Category    string   `json:"category" validate:"omitempty,oneof='Crop Science' Technology Sustainability Policy Other"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"imageUrl"`
	ReadTime    int      `json:"readTime" validate:"omitempty,gt=0"`
	IsPublished *bool    `json:"isPublished"`
}

// GetAll lists published research, newest first. Public.
func (h *ResearchHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	updates, err := h.service.GetPublishedUpdates()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list research updates")
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, updates, http.StatusOK)
}

// Get retrieves a single article and counts the read. Public.
func (h *ResearchHandler) Get(w http.ResponseWriter, r *http.Request) {
	update, err := h.service.GetUpdateByID(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, update, http.StatusOK)
}

// Create adds an article. Requires authentication.
func (h *ResearchHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeResearchPayload(w, r)
	if !ok {
		return
	}
	update, err := h.service.CreateUpdate(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create research update")
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, update, http.StatusCreated)
}

// Update modifies an article. Requires authentication.
func (h *ResearchHandler) Update(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeResearchPayload(w, r)
	if !ok {
		return
	}
	update, err := h.service.UpdateUpdate(chi.URLParam(r, "id"), payload)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, update, http.StatusOK)
}

// Delete removes an article. Requires authentication.
func (h *ResearchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteUpdate(chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, map[string]string{"message": "Research update deleted"}, http.StatusOK)
}

func decodeResearchPayload(w http.ResponseWriter, r *http.Request) (models.ResearchUpdate, bool) {
	var payload ResearchPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return models.ResearchUpdate{}, false
	}
	if err := validate.Struct(payload); err != nil {
		httputil.RespondError(w, "invalid research fields", http.StatusBadRequest)
		return models.ResearchUpdate{}, false
	}
	update := models.ResearchUpdate{
		Title:       payload.Title,
		Summary:     payload.Summary,
		Content:     payload.Content,
		Author:      payload.Author,
		Category:    payload.Category,
		Tags:        payload.Tags,
		ImageURL:    payload.ImageURL,
		ReadTime:    payload.ReadTime,
		IsPublished: true,
	}
	if payload.IsPublished != nil {
		update.IsPublished = *payload.IsPublished
	}
	return update, true
}
