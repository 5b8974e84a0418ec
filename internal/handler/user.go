package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/photoshare/internal/domain"
	"github.com/msomdec/photoshare/internal/service"
)

// UserHandler handles user profile requests.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// HandleGet returns a user's profile by username.
// GET /user/{username}
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found.")
			return
		}
		slog.Error("get user", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load user.")
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(user))
}

// HandleUpdate replaces the authenticated user's three photo lists (legacy
// whole-list endpoint; the per-photo toggles are preferred).
// PUT /user
// Request: {"photoList":[...],"likedPhotoList":[...],"favouritePhotoList":[...]}
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PhotoList          []string `json:"photoList"`
		LikedPhotoList     []string `json:"likedPhotoList"`
		FavouritePhotoList []string `json:"favouritePhotoList"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.users.ReplaceLists(r.Context(), UserIDFromContext(r.Context()),
		req.PhotoList, req.LikedPhotoList, req.FavouritePhotoList)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found.")
		default:
			slog.Error("update user lists", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to update user.")
		}
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(user))
}
