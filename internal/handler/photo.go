package handler

import (
	"log/slog"
	"net/http"

	"latitude/internal/domain/services"
	"latitude/internal/httputil"
)

// PhotoHandler handles photo HTTP requests
type PhotoHandler struct {
	photoService services.PhotoService
	logger       *slog.Logger
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(photoService services.PhotoService, logger *slog.Logger) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
		logger:       logger,
	}
}

// ListPhotos retrieves the photos visible to the requester
// GET /api/photos
func (h *PhotoHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	viewer := httputil.ViewerFrom(r)

	photos, err := h.photoService.List(r.Context(), viewer)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, photos)
}

// CreatePhoto adds a photo to an album the requester owns
// POST /api/photos
func (h *PhotoHandler) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	viewer := httputil.ViewerFrom(r)

	var req services.CreatePhotoRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	photo, err := h.photoService.Create(r.Context(), viewer, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, photo)
}

// DeletePhoto removes a photo and releases its asset
// DELETE /api/photos/{id}
func (h *PhotoHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	viewer := httputil.ViewerFrom(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "photo ID is required")
		return
	}

	if err := h.photoService.Delete(r.Context(), id, viewer); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
