package handler

import (
	"log/slog"
	"net/http"

	"latitude/internal/domain/services"
	"latitude/internal/httputil"
)

// AlbumHandler handles album HTTP requests
type AlbumHandler struct {
	albumService services.AlbumService
	logger       *slog.Logger
}

// NewAlbumHandler creates a new album handler
func NewAlbumHandler(albumService services.AlbumService, logger *slog.Logger) *AlbumHandler {
	return &AlbumHandler{
		albumService: albumService,
		logger:       logger,
	}
}

// ListAlbums retrieves the albums visible to the requester
// GET /api/albums
func (h *AlbumHandler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	viewer := httputil.ViewerFrom(r)

	albums, err := h.albumService.List(r.Context(), viewer)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, albums)
}

// GetAlbum retrieves one album with its visible photos
// GET /api/albums/{id}
func (h *AlbumHandler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	viewer := httputil.ViewerFrom(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "album ID is required")
		return
	}

	album, err := h.albumService.Get(r.Context(), id, viewer)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, album)
}

// CreateAlbum creates an album owned by the requester
// POST /api/albums
func (h *AlbumHandler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	viewer := httputil.ViewerFrom(r)

	var req services.CreateAlbumRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	album, err := h.albumService.Create(r.Context(), viewer, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, album)
}

// UpdateAlbum patches an album
// PATCH /api/albums/{id}
func (h *AlbumHandler) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	viewer := httputil.ViewerFrom(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "album ID is required")
		return
	}

	var req services.UpdateAlbumRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	album, err := h.albumService.Update(r.Context(), id, viewer, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, album)
}

// DeleteAlbum removes an album and its photos
// DELETE /api/albums/{id}
func (h *AlbumHandler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	viewer := httputil.ViewerFrom(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "album ID is required")
		return
	}

	if err := h.albumService.Delete(r.Context(), id, viewer); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
