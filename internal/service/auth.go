package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/marketing-site-api/internal/config"
)

// TokenTTL is the fixed lifetime of an admin session credential
const TokenTTL = time.Hour

// authService validates the configured admin credentials and issues signed,
// time-limited session tokens. Credentials are stateless: verification only
// re-checks signature and expiry.
type authService struct {
	secret   []byte
	username string
	password string
}

func newAuthService(cfg *config.AuthConfig) *authService {
	return &authService{
		secret:   []byte(cfg.JWTSecret),
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
	}
}

// Login compares the credentials against the configured admin pair and
// returns a signed session token on match
func (s *authService) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password))
	if userOK&passOK != 1 {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Verify checks signature and expiry and returns the embedded identity. A
// valid token for anyone but the configured admin yields ErrForbidden.
func (s *authService) Verify(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse session token: %w", err)
	}
	if claims.Subject != s.username {
		return "", ErrForbidden
	}
	return claims.Subject, nil
}
