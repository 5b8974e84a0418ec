package handler_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/msomdec/photoshare/internal/handler"
	"github.com/msomdec/photoshare/internal/repository/memory"
	"github.com/msomdec/photoshare/internal/service"
)

const testJWTSecret = "test-secret-for-handler-tests-32chars"

// newTestServer wires the full route table over in-memory repositories.
func newTestServer(t *testing.T) (*http.ServeMux, *service.AuthService) {
	t.Helper()
	db := memory.New()

	auth := service.NewAuthService(db.Users(), testJWTSecret, 72*time.Hour, 4)
	thumbs := service.NewThumbnailDeriver(350, 350)
	uploads := service.NewUploadService(db.Photos(), db.Users(), thumbs)
	interactions := service.NewInteractionService(db.Photos(), db.Users())
	queries := service.NewPhotoQueryService(db.Photos(), 50, 60, 120)
	users := service.NewUserService(db.Users())
	limiter := service.NewTokenBucket(1000, 1000)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, uploads, interactions, queries, users, limiter)
	return mux, auth
}

// signupAndSignin registers a user over HTTP and returns its id and token.
func signupAndSignin(t *testing.T, mux *http.ServeMux, username string) (string, string) {
	t.Helper()

	res := doJSON(t, mux, http.MethodPost, "/auth/signup", "", map[string]string{
		"username": username,
		"password": "Sup3rSecret",
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d: %s", res.Code, res.Body.String())
	}

	res = doJSON(t, mux, http.MethodPost, "/auth/signin", "", map[string]string{
		"username": username,
		"password": "Sup3rSecret",
	})
	if res.Code != http.StatusOK {
		t.Fatalf("signin: expected 200, got %d: %s", res.Code, res.Body.String())
	}

	var body struct {
		ID          string `json:"id"`
		AccessToken string `json:"accessToken"`
	}
	decodeBody(t, res, &body)
	return body.ID, body.AccessToken
}

// doJSON performs a request with an optional token and JSON body.
func doJSON(t *testing.T, mux *http.ServeMux, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("x-access-token", token)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, res *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// testImage returns a small valid PNG data URI.
func testImage(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// uploadPhoto submits a photo over HTTP and returns its id.
func uploadPhoto(t *testing.T, mux *http.ServeMux, token, username, name string) string {
	t.Helper()

	res := doJSON(t, mux, http.MethodPost, "/photo", token, map[string]any{
		"username": username,
		"newPhoto": map[string]string{
			"base64":      testImage(t),
			"name":        name,
			"description": "a test upload",
		},
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("upload: expected 201, got %d: %s", res.Code, res.Body.String())
	}

	var body struct {
		PhotoID string `json:"photoId"`
	}
	decodeBody(t, res, &body)
	if body.PhotoID == "" {
		t.Fatal("upload returned no photo id")
	}
	return body.PhotoID
}
