package handler

import (
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/msomdec/photoshare/internal/domain"
	"github.com/msomdec/photoshare/internal/service"
)

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	auth    *service.AuthService
	limiter *service.TokenBucket
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, limiter *service.TokenBucket) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

// HandleSignup processes a registration request.
// POST /auth/signup
// Request:  {"username":"...","password":"..."}
// Response: {"message":"..."}
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(clientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests.")
		return
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	_, err := h.auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			writeError(w, http.StatusConflict, "Username already in use.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Invalid registration parameters.")
			return
		}
		slog.Error("register user", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to register user.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User was registered successfully."})
}

// HandleSignin processes a login request.
// POST /auth/signin
// Request:  {"username":"...","password":"..."}
// Response: {"id":"...","username":"...","accessToken":"..."}
func (h *AuthHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(clientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests.")
		return
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Username or password invalid.")
			return
		}
		slog.Error("login user", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to sign in.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"id":          user.ID,
		"username":    user.Username,
		"accessToken": token,
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
