package auth

type Principal struct {
	Issuer   string
	Subject  string
	Audience any
	Claims   map[string]any
}

type Config struct {
	Enabled  bool
	Issuer   string
	Audience string
	// JWKSURL overrides the issuer-derived JWKS endpoint.
	JWKSURL string
}
