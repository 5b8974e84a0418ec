package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/photoshare/internal/domain"
	"github.com/msomdec/photoshare/internal/service"
)

// PhotoHandler handles photo uploads, reads, interactions, and deletion.
type PhotoHandler struct {
	uploads      *service.UploadService
	interactions *service.InteractionService
	queries      *service.PhotoQueryService
}

// NewPhotoHandler creates a new PhotoHandler.
func NewPhotoHandler(uploads *service.UploadService, interactions *service.InteractionService, queries *service.PhotoQueryService) *PhotoHandler {
	return &PhotoHandler{uploads: uploads, interactions: interactions, queries: queries}
}

// HandleUpload processes a new photo submission.
// POST /photo
// Request:  {"username":"...","newPhoto":{"base64":"...","name":"...","description":"..."}}
// Response: {"photoId":"..."}
func (h *PhotoHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		NewPhoto struct {
			Base64      string `json:"base64"`
			Name        string `json:"name"`
			Description string `json:"description"`
		} `json:"newPhoto"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	photoID, err := h.uploads.Submit(r.Context(), req.Username, req.NewPhoto.Base64, req.NewPhoto.Name, req.NewPhoto.Description)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrDecode):
			writeError(w, http.StatusUnprocessableEntity, "Image could not be decoded.")
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found.")
		default:
			slog.Error("upload photo", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to save photo.")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"photoId": photoID})
}

// HandleGet returns the photo detail projection.
// GET /photo/{id}
func (h *PhotoHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	summary, err := h.queries.Summary(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Photo not found.")
			return
		}
		slog.Error("get photo", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load photo.")
		return
	}

	// Full photos change when liked; revalidate on every request.
	w.Header().Set("Cache-Control", "public, max-age=0, must-revalidate")
	writeJSON(w, http.StatusOK, toPhotoSummaryDTO(summary))
}

// HandleThumbnail returns the gallery tile projection with truncated text.
// GET /photo/{id}/thumbnail
func (h *PhotoHandler) HandleThumbnail(w http.ResponseWriter, r *http.Request) {
	thumb, err := h.queries.Thumbnail(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Photo thumbnail not found.")
			return
		}
		slog.Error("get photo thumbnail", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load thumbnail.")
		return
	}

	// Thumbnails are derived once at upload and never change.
	w.Header().Set("Cache-Control", "public, max-age=1000, immutable")
	writeJSON(w, http.StatusOK, toPhotoThumbnailDTO(thumb))
}

// HandleLikeChange applies a like or unlike from the authenticated user.
// PUT /photo/{id}
// Request: {"likeChange":1} or {"likeChange":-1}. A legacy likedPhotoList
// field is accepted and ignored; membership is recomputed server-side.
func (h *PhotoHandler) HandleLikeChange(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LikeChange     int      `json:"likeChange"`
		UserID         string   `json:"userId"`
		LikedPhotoList []string `json:"likedPhotoList"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	err := h.interactions.ToggleLike(r.Context(), r.PathValue("id"), UserIDFromContext(r.Context()), req.LikeChange)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Photo not found.")
		case errors.Is(err, domain.ErrPartialFailure):
			// The like counter committed but the user list did not; the
			// client may retry to repair its list.
			writeError(w, http.StatusConflict, "Like recorded but user list update failed; retry.")
		default:
			slog.Error("change photo likes", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to update likes.")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleFavouriteChange adds or removes the photo from the authenticated
// user's favourites.
// PUT /photo/{id}/favourite
// Request: {"change":1} or {"change":-1}
func (h *PhotoHandler) HandleFavouriteChange(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Change int `json:"change"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	err := h.interactions.ToggleFavourite(r.Context(), r.PathValue("id"), UserIDFromContext(r.Context()), req.Change)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Photo not found.")
		default:
			slog.Error("change photo favourite", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to update favourites.")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleDelete removes a photo and all references to it.
// DELETE /photo/{id}
func (h *PhotoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.interactions.CascadeDelete(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Photo not found.")
			return
		}
		slog.Error("delete photo", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete photo.")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleRecentInfo lists the most recently uploaded photo ids.
// GET /photo/info/recent
// Response: [{"id":"...","index":0}, ...]
func (h *PhotoHandler) HandleRecentInfo(w http.ResponseWriter, r *http.Request) {
	ids, err := h.queries.RecentIDs(r.Context())
	if err != nil {
		slog.Error("list recent photos", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list photos.")
		return
	}
	writeJSON(w, http.StatusOK, toPhotoInfoDTOs(ids))
}

// HandleMostLikedInfo lists photo ids by like count, highest first.
// GET /photo/info/liked
func (h *PhotoHandler) HandleMostLikedInfo(w http.ResponseWriter, r *http.Request) {
	ids, err := h.queries.MostLikedIDs(r.Context())
	if err != nil {
		slog.Error("list most liked photos", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list photos.")
		return
	}
	writeJSON(w, http.StatusOK, toPhotoInfoDTOs(ids))
}
