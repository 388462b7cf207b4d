// Package handlers contains the HTTP handlers for the UniField API.
package handlers

import (
	"errors"
	"net/http"

	"github.com/JasirAhamed786/unifield-be/internal/httputil"
	"github.com/JasirAhamed786/unifield-be/internal/services"
	"github.com/go-playground/validator/v10"
)

// Shared payload validator. Struct tags on the payload types define the rules.
var validate = validator.New()

// respondServiceError maps service-layer errors to HTTP responses with
// generic bodies. Anything unrecognized becomes a 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		httputil.RespondError(w, "not found", http.StatusNotFound)
	case errors.Is(err, services.ErrValidation):
		httputil.RespondError(w, "invalid request", http.StatusBadRequest)
	case errors.Is(err, services.ErrDuplicateEmail):
		// Generic wording so registration does not confirm which field collided.
		httputil.RespondError(w, "registration failed", http.StatusBadRequest)
	case errors.Is(err, services.ErrInvalidCredentials):
		httputil.RespondError(w, "invalid email or password", http.StatusUnauthorized)
	default:
		httputil.RespondError(w, "internal server error", http.StatusInternalServerError)
	}
}
