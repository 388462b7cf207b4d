package handlers

import (
	"net/http"

	"github.com/JasirAhamed786/unifield-be/internal/httputil"
	"github.com/rs/zerolog/log"
)

// AdvisoryHandler serves the weather and crop diagnosis stub endpoints.
// Both return canned data until a real provider is integrated.
type AdvisoryHandler struct{}

// NewAdvisoryHandler creates a new AdvisoryHandler.
func NewAdvisoryHandler() *AdvisoryHandler {
	return &AdvisoryHandler{}
}

// Weather returns a mock forecast. Public.
func (h *AdvisoryHandler) Weather(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]interface{}{
		"location":    "Mumbai",
		"temperature": 28,
		"condition":   "Sunny",
		"forecast":    "Clear skies",
	}, http.StatusOK)
}

// Diagnose accepts a crop image and returns a mock diagnosis. Public.
// The upload is read and discarded; no file is stored.
func (h *AdvisoryHandler) Diagnose(w http.ResponseWriter, r *http.Request) {
	// 10 MB cap on the multipart form
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		httputil.RespondError(w, "invalid image upload", http.StatusBadRequest)
		return
	}
	if file, _, err := r.FormFile("image"); err == nil {
		file.Close()
	} else {
		log.Debug().Err(err).Msg("Diagnose request without image field")
	}

	httputil.RespondJSON(w, map[string]string{
		"diagnosis": "Healthy crop",
		"treatment": "No action needed",
	}, http.StatusOK)
}
