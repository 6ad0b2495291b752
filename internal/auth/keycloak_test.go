package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/golang-jwt/jwt/v5"
)

type staticKeyfunc struct {
	secret []byte
}

func (s staticKeyfunc) Keyfunc(_ *jwt.Token) (any, error) {
	return s.secret, nil
}

func (s staticKeyfunc) KeyfuncCtx(_ context.Context) jwt.Keyfunc {
	return s.Keyfunc
}

func (s staticKeyfunc) Storage() jwkset.Storage {
	return nil
}

func (s staticKeyfunc) VerificationKeySet(_ context.Context) (jwt.VerificationKeySet, error) {
	return jwt.VerificationKeySet{}, nil
}

func signToken(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	return signed
}

func makeClaims(issuer string, audience any) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss": issuer,
		"sub": "user-1",
		"aud": audience,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
}

func newTestAuthenticator() *keycloakAuthenticator {
	return &keycloakAuthenticator{
		issuer:   "http://keycloak.local/realms/vnetman",
		audience: "vnetman-api",
		jwks:     staticKeyfunc{secret: []byte("test-secret")},
	}
}

func TestNewKeycloakAuthenticatorDisabled(t *testing.T) {
	authenticator, err := NewKeycloakAuthenticator(Config{Enabled: false})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if authenticator != nil {
		t.Fatal("disabled auth must yield a nil authenticator")
	}
}

func TestKeycloakAuthenticatorRejectsWrongAudience(t *testing.T) {
	authenticator := newTestAuthenticator()

	token := signToken(t, makeClaims("http://keycloak.local/realms/vnetman", []string{"other-api"}), []byte("test-secret"))
	_, err := authenticator.Authenticate(context.Background(), token)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestKeycloakAuthenticatorRejectsWrongIssuer(t *testing.T) {
	authenticator := newTestAuthenticator()

	token := signToken(t, makeClaims("http://somewhere.else/realms/vnetman", []string{"vnetman-api"}), []byte("test-secret"))
	_, err := authenticator.Authenticate(context.Background(), token)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestKeycloakAuthenticatorRejectsExpiredToken(t *testing.T) {
	authenticator := newTestAuthenticator()

	claims := makeClaims("http://keycloak.local/realms/vnetman", []string{"vnetman-api"})
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	token := signToken(t, claims, []byte("test-secret"))

	_, err := authenticator.Authenticate(context.Background(), token)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestKeycloakAuthenticatorRejectsForgedSignature(t *testing.T) {
	authenticator := newTestAuthenticator()

	token := signToken(t, makeClaims("http://keycloak.local/realms/vnetman", []string{"vnetman-api"}), []byte("wrong-secret"))
	_, err := authenticator.Authenticate(context.Background(), token)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestKeycloakAuthenticatorReturnsPrincipal(t *testing.T) {
	authenticator := newTestAuthenticator()

	token := signToken(t, makeClaims("http://keycloak.local/realms/vnetman", []string{"vnetman-api"}), []byte("test-secret"))
	principal, err := authenticator.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if principal.Issuer != "http://keycloak.local/realms/vnetman" {
		t.Fatalf("unexpected issuer: %v", principal.Issuer)
	}
	if principal.Subject != "user-1" {
		t.Fatalf("unexpected subject: %v", principal.Subject)
	}
}

func TestNewKeycloakAuthenticatorFailsWhenJWKSUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("no jwks"))
	}))
	defer server.Close()

	_, err := NewKeycloakAuthenticator(Config{
		Enabled:  true,
		Issuer:   "http://keycloak.local/realms/vnetman",
		JWKSURL:  server.URL + "/certs",
		Audience: "vnetman-api",
	})
	if err == nil {
		t.Fatal("expected error when jwks endpoint is unavailable")
	}
}
