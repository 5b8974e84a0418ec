package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/msomdec/photoshare/internal/domain"
	"github.com/msomdec/photoshare/internal/repository/memory"
	"github.com/msomdec/photoshare/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests-32ch"

func newTestAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	db := memory.New()
	// Use cost 4 for fast tests.
	return service.NewAuthService(db.Users(), testJWTSecret, 72*time.Hour, 4)
}

func TestAuthService_Register_Success(t *testing.T) {
	auth := newTestAuthService(t)

	user, err := auth.Register(context.Background(), "alice42", "Sup3rSecret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected user ID to be set")
	}
	if user.PasswordHash == "Sup3rSecret" {
		t.Fatal("password stored unhashed")
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "alice42", "Sup3rSecret"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := auth.Register(ctx, "alice42", "An0therPass")
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuthService_Register_Policy(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"username too short", "ab", "Sup3rSecret"},
		{"username not alphanumeric", "ali-ce", "Sup3rSecret"},
		{"password too short", "alice42", "Ab1"},
		{"password missing upper", "alice42", "sup3rsecret"},
		{"password missing lower", "alice42", "SUP3RSECRET"},
		{"password missing digit", "alice42", "SuperSecret"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Register(ctx, tc.username, tc.password)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	registered, err := auth.Register(ctx, "alice42", "Sup3rSecret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, token, err := auth.Login(ctx, "alice42", "Sup3rSecret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %s, got %s", registered.ID, user.ID)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	userID, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if userID != registered.ID {
		t.Fatalf("expected token subject %s, got %s", registered.ID, userID)
	}
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "alice42", "Sup3rSecret"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "alice42", "Wr0ngSecret"},
		{"unknown username", "nobody1", "Sup3rSecret"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := auth.Login(ctx, tc.username, tc.password)
			if !errors.Is(err, domain.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	auth := newTestAuthService(t)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := auth.ValidateToken(token); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("token %q: expected ErrUnauthorized, got %v", token, err)
		}
	}
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	signer := service.NewAuthService(db.Users(), "one-secret-key-for-signing-tokens", 72*time.Hour, 4)
	verifier := service.NewAuthService(db.Users(), "a-different-secret-key-for-verify", 72*time.Hour, 4)

	if _, err := signer.Register(ctx, "alice42", "Sup3rSecret"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, token, err := signer.Login(ctx, "alice42", "Sup3rSecret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := verifier.ValidateToken(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for foreign signature, got %v", err)
	}
}
