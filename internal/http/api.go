package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dkovac/vnetman/internal/auth"
	"github.com/dkovac/vnetman/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	serviceName    = "vnetman"
	serviceVersion = "1.0.0"
)

// Pinger is the readiness probe against the metadata store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger        *slog.Logger
	Service       domain.NetworkService
	Authenticator auth.Authenticator
	Health        Pinger
	Gatherer      prometheus.Gatherer
}

func NewAPI(logger *slog.Logger, service domain.NetworkService, authenticator auth.Authenticator, health Pinger, gatherer prometheus.Gatherer) *API {
	return &API{
		Logger:        logger,
		Service:       service,
		Authenticator: authenticator,
		Health:        health,
		Gatherer:      gatherer,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", a.handleRoot)
	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("/readyz", a.handleReadyz)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	if a.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(a.Gatherer, promhttp.HandlerOpts{}))
	}

	mux.HandleFunc("GET /api/v1/networks", a.handleListNetworks)
	mux.HandleFunc("POST /api/v1/networks", a.handleCreateNetwork)
	mux.HandleFunc("GET /api/v1/networks/{name}", a.handleGetNetwork)
	mux.HandleFunc("DELETE /api/v1/networks/{name}", a.handleDeleteNetwork)

	return a.requestIDMiddleware(a.authMiddleware(mux))
}
