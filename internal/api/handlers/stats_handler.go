package handlers

import (
	"net/http"

	"github.com/JasirAhamed786/unifield-be/internal/httputil"
	"github.com/JasirAhamed786/unifield-be/internal/services"
	"github.com/rs/zerolog/log"
)

// StatsHandler serves the admin dashboard aggregates.
type StatsHandler struct {
	service services.StatsServiceProvider
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service services.StatsServiceProvider) *StatsHandler {
	return &StatsHandler{service: service}
}

// Get returns aggregate counts. The route is Admin-gated.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetAdminStats()
	if err != nil {
		log.Error().Err(err).Msg("Failed to collect admin stats")
		respondServiceError(w, err)
		return
	}
	httputil.RespondJSON(w, stats, http.StatusOK)
}
