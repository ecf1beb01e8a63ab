package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sandeepkv93/volunteer-management-backend/internal/http/response"
	"github.com/sandeepkv93/volunteer-management-backend/internal/service"
)

// UploadHandler serves stored profile pictures. Local files are streamed,
// object storage answers with a redirect to a presigned URL.
type UploadHandler struct {
	images service.ImageStorage
}

func NewUploadHandler(images service.ImageStorage) *UploadHandler {
	return &UploadHandler{images: images}
}

func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	loc, err := h.images.Locate(r.Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "file not found", nil)
			return
		}
		slogError(r, "locate upload failed", err)
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "Server error", nil)
		return
	}
	w.Header().Set("Cache-Control", "private, max-age=300")
	if loc.URL != "" {
		http.Redirect(w, r, loc.URL, http.StatusFound)
		return
	}
	if loc.ContentType != "" {
		w.Header().Set("Content-Type", loc.ContentType)
	}
	http.ServeFile(w, r, loc.FilePath)
}
