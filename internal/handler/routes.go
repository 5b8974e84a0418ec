package handler

import (
	"net/http"

	"github.com/msomdec/photoshare/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Read-only photo
// queries are public; every mutation requires a valid access token.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	uploads *service.UploadService,
	interactions *service.InteractionService,
	queries *service.PhotoQueryService,
	users *service.UserService,
	authLimiter *service.TokenBucket,
) {
	authHandler := NewAuthHandler(auth, authLimiter)
	photoHandler := NewPhotoHandler(uploads, interactions, queries)
	userHandler := NewUserHandler(users)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /auth/signup", authHandler.HandleSignup)
	mux.HandleFunc("POST /auth/signin", authHandler.HandleSignin)

	mux.HandleFunc("GET /photo/{id}", photoHandler.HandleGet)
	mux.HandleFunc("GET /photo/{id}/thumbnail", photoHandler.HandleThumbnail)
	mux.HandleFunc("GET /photo/info/recent", photoHandler.HandleRecentInfo)
	mux.HandleFunc("GET /photo/info/liked", photoHandler.HandleMostLikedInfo)

	mux.Handle("POST /photo", RequireAuth(auth, http.HandlerFunc(photoHandler.HandleUpload)))
	mux.Handle("PUT /photo/{id}", RequireAuth(auth, http.HandlerFunc(photoHandler.HandleLikeChange)))
	mux.Handle("PUT /photo/{id}/favourite", RequireAuth(auth, http.HandlerFunc(photoHandler.HandleFavouriteChange)))
	mux.Handle("DELETE /photo/{id}", RequireAuth(auth, http.HandlerFunc(photoHandler.HandleDelete)))

	mux.Handle("GET /user/{username}", RequireAuth(auth, http.HandlerFunc(userHandler.HandleGet)))
	mux.Handle("PUT /user", RequireAuth(auth, http.HandlerFunc(userHandler.HandleUpdate)))
}
