package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/msomdec/photoshare/internal/handler"
)

func TestRequireAuth(t *testing.T) {
	mux, _ := newTestServer(t)
	_, token := signupAndSignin(t, mux, "carol")

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"valid token", token, http.StatusOK},
		{"missing token", "", http.StatusUnauthorized},
		{"garbage token", "not-a-jwt", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := doJSON(t, mux, http.MethodGet, "/user/carol", tt.token, nil)
			if res.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, res.Code, res.Body.String())
			}
		})
	}
}

func TestRequireAuth_InjectsUserID(t *testing.T) {
	mux, auth := newTestServer(t)
	userID, token := signupAndSignin(t, mux, "dave")

	var got string
	protected := handler.RequireAuth(auth, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = handler.UserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("x-access-token", token)
	protected.ServeHTTP(httptest.NewRecorder(), req)

	if got != userID {
		t.Fatalf("expected user id %q in context, got %q", userID, got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the inner handler")
	})
	wrapped := handler.CORS(inner)

	req := httptest.NewRequest(http.MethodOptions, "/photo", nil)
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected allow-origin *, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "x-access-token") {
		t.Fatalf("expected x-access-token among allowed headers, got %q", got)
	}
}

func TestMaxBody_RejectsOversizedRequest(t *testing.T) {
	mux, _ := newTestServer(t)
	_, token := signupAndSignin(t, mux, "erin")

	wrapped := handler.MaxBody(64, mux)

	body := `{"username":"erin","newPhoto":{"base64":"` + strings.Repeat("A", 256) + `","name":"big","description":""}}`
	req := httptest.NewRequest(http.MethodPost, "/photo", strings.NewReader(body))
	req.Header.Set("x-access-token", token)
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	if w.Code < 400 {
		t.Fatalf("expected an error status for oversized body, got %d", w.Code)
	}
}
