package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/JasirAhamed786/unifield-be/internal/httputil"
	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/JasirAhamed786/unifield-be/internal/services"
	"github.com/JasirAhamed786/unifield-be/internal/ticker"
	"github.com/rs/zerolog/log"
)

// MarketHandler handles HTTP requests for crop market prices.
type MarketHandler struct {
	service services.MarketServiceProvider
	hub     *ticker.Hub
}

// NewMarketHandler creates a new MarketHandler. The hub may be nil when no
// realtime ticker is running (e.g. in tests).
func NewMarketHandler(service services.MarketServiceProvider, hub *ticker.Hub) *MarketHandler {
	return &MarketHandler{service: service, hub: hub}
}

// MarketPayload defines the writable market entry fields.
type MarketPayload struct {
	CropName string  `json:"cropName" validate:"required"`
	Region   string  `json:"region" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Trend    string  `json:"trend" validate:"omitempty,oneof=Up Down Stable"`
}

// GetAll lists all market entries. Public.
func (h *MarketHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.GetAllMarketData()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list market data")
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, entries, http.StatusOK)
}

// Create records a new price entry and pushes it to ticker clients.
// Requires authentication.
func (h *MarketHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload MarketPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		httputil.RespondError(w, "invalid market data fields", http.StatusBadRequest)
		return
	}

	data, err := h.service.CreateMarketData(models.MarketData{
		CropName: payload.CropName,
		Region:   payload.Region,
		Price:    payload.Price,
		Trend:    payload.Trend,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create market data")
		respondServiceError(w, err)
		return
	}

	if h.hub != nil {
		h.hub.BroadcastMarketUpdate(data)
	}
	httputil.RespondJSON(w, data, http.StatusCreated)
}
