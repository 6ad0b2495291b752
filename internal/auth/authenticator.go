package auth

import "context"

// Authenticator is the consumed credential-check capability: it turns
// a presented bearer token into a Principal or rejects it.
type Authenticator interface {
	Authenticate(ctx context.Context, bearerToken string) (Principal, error)
}
