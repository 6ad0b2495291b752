package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkovac/vnetman/internal/auth"
	"github.com/dkovac/vnetman/internal/domain"
)

type stubAuthenticator struct {
	principal auth.Principal
	err       error
}

func (s stubAuthenticator) Authenticate(context.Context, string) (auth.Principal, error) {
	if s.err != nil {
		return auth.Principal{}, s.err
	}
	return s.principal, nil
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	api := newTestAPI(stubService{})
	api.Authenticator = stubAuthenticator{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/networks", nil)
	rec := httptest.NewRecorder()

	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	api := newTestAPI(stubService{})
	api.Authenticator = stubAuthenticator{err: auth.ErrInvalidToken}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/networks", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddlewarePassesPrincipalToHandlers(t *testing.T) {
	var gotSubject string
	api := newTestAPI(stubService{
		listFn: func(ctx context.Context) ([]domain.Network, error) {
			if principal, ok := auth.PrincipalFromContext(ctx); ok {
				gotSubject = principal.Subject
			}
			return nil, nil
		},
	})
	api.Authenticator = stubAuthenticator{principal: auth.Principal{Subject: "user-1"}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/networks", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotSubject != "user-1" {
		t.Fatalf("expected principal subject in handler context, got %q", gotSubject)
	}
}

func TestAuthMiddlewareSkipsPublicPaths(t *testing.T) {
	api := newTestAPI(stubService{})
	api.Authenticator = stubAuthenticator{err: errors.New("should not be called")}

	for _, path := range []string{"/", "/healthz", "/readyz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		api.Router().ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for public path %s, got %d", path, rec.Code)
		}
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	api := newTestAPI(stubService{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	api.Router().ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected X-Request-Id header")
	}
}

func TestRequestIDHeaderIsPreserved(t *testing.T) {
	api := newTestAPI(stubService{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "caller-chosen")
	rec := httptest.NewRecorder()

	api.Router().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != "caller-chosen" {
		t.Fatalf("expected caller request id to be preserved, got %q", got)
	}
}
