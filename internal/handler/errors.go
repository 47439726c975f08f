package handler

import (
	"errors"
	"net/http"

	"latitude/internal/domain"
	"latitude/internal/httputil"
)

// handleError converts domain errors to HTTP responses. This is the only
// place outcome types turn into status codes; domain code never sees HTTP.
func handleError(w http.ResponseWriter, err error) {
	// Validation failures render as an errors array, everything else as a
	// single message.
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		httputil.RespondErrors(w, validationErr.StatusCode(), validationErr.Fields)
		return
	}

	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	default:
		// Unexpected store failures are fatal to the request and never
		// echo internals back to the client.
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
