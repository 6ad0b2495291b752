package http

import (
	"net/http"
	"strings"

	"github.com/dkovac/vnetman/internal/auth"
	"github.com/google/uuid"
)

// publicPath reports whether the request may skip authentication.
func publicPath(path string) bool {
	return path == "/" || path == "/healthz" || path == "/readyz" || path == "/metrics" ||
		strings.HasPrefix(path, "/swagger/")
}

// authMiddleware rejects unauthenticated requests before any side
// effect happens. A nil authenticator means auth is disabled.
func (a *API) authMiddleware(next http.Handler) http.Handler {
	if a.Authenticator == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if publicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		authz := r.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			a.writeError(w, r, http.StatusUnauthorized, ErrorResponse{Error: "missing token", Code: "unauthorized"})
			return
		}
		tokenStr := strings.TrimPrefix(authz, "Bearer ")

		principal, err := a.Authenticator.Authenticate(r.Context(), tokenStr)
		if err != nil {
			a.writeError(w, r, http.StatusUnauthorized, ErrorResponse{Error: "invalid token", Code: "unauthorized"})
			return
		}

		a.Logger.DebugContext(r.Context(), "request authenticated", "sub", principal.Subject, "path", r.URL.Path)
		ctx := auth.WithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *API) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)

		next.ServeHTTP(w, r)

		a.Logger.DebugContext(r.Context(), "request served",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestID,
		)
	})
}
