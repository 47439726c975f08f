package httputil

import (
	"context"
	"net/http"

	"latitude/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const (
	viewerKey contextKey = "viewer"
)

// WithViewer attaches the authenticated user to the request context.
// The identity middleware stores the resolution result here exactly once
// per request; everything downstream reads the same value.
func WithViewer(r *http.Request, viewer *models.User) *http.Request {
	ctx := context.WithValue(r.Context(), viewerKey, viewer)
	return r.WithContext(ctx)
}

// ViewerFrom retrieves the authenticated user from the context.
// Returns nil for anonymous requests; anonymous is a valid state, not an error.
func ViewerFrom(r *http.Request) *models.User {
	viewer, _ := r.Context().Value(viewerKey).(*models.User)
	return viewer
}
