package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/marketing-site-api/internal/service"
)

func TestAuthService_LoginAndVerify(t *testing.T) {
	services, _, _ := newTestServices(t, time.Minute, nil)

	token, err := services.Auth.Login("admin", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token == "" {
		t.Fatal("Expected a session token")
	}

	identity, err := services.Auth.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if identity != "admin" {
		t.Errorf("Expected identity 'admin', got %q", identity)
	}
}

func TestAuthService_InvalidCredentials(t *testing.T) {
	services, _, _ := newTestServices(t, time.Minute, nil)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"wrong username", "root", "hunter2"},
		{"both wrong", "root", "wrong"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := services.Auth.Login(tt.username, tt.password)
			if !errors.Is(err, service.ErrInvalidCredentials) {
				t.Errorf("Expected ErrInvalidCredentials, got %v", err)
			}
			if token != "" {
				t.Error("No credential may be issued on failed login")
			}
		})
	}
}

func TestAuthService_VerifyRejectsGarbage(t *testing.T) {
	services, _, _ := newTestServices(t, time.Minute, nil)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := services.Auth.Verify(token); err == nil {
			t.Errorf("Verify(%q) should fail", token)
		}
	}
}

func TestAuthService_VerifyRejectsWrongSignature(t *testing.T) {
	services, _, _ := newTestServices(t, time.Minute, nil)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := services.Auth.Verify(forged); err == nil {
		t.Error("Token signed with another secret must be rejected")
	}
}

func TestAuthService_VerifyRejectsExpired(t *testing.T) {
	services, _, _ := newTestServices(t, time.Minute, nil)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := services.Auth.Verify(expired); err == nil {
		t.Error("Expired token must be rejected")
	}
}

func TestAuthService_VerifyRejectsWrongIdentity(t *testing.T) {
	services, _, _ := newTestServices(t, time.Minute, nil)

	other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "intruder",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := services.Auth.Verify(other); !errors.Is(err, service.ErrForbidden) {
		t.Errorf("Expected ErrForbidden for wrong identity, got %v", err)
	}
}
