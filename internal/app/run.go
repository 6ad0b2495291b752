package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/dkovac/vnetman/internal/auth"
	appdb "github.com/dkovac/vnetman/internal/db"
	"github.com/dkovac/vnetman/internal/domain"
	apihttp "github.com/dkovac/vnetman/internal/http"
	provider "github.com/dkovac/vnetman/internal/provider/hcloud"
	"github.com/dkovac/vnetman/internal/retry"
	"github.com/hetznercloud/hcloud-go/v2/hcloud"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Config struct {
	Port string
	DSN  string

	HCloudToken string
	NetworkZone string
	// ProviderEndpoint overrides the API endpoint, used by tests.
	ProviderEndpoint string

	ProviderTimeout   time.Duration
	PendingStaleAfter time.Duration
	RetryAttempts     int
	RetryInitialDelay time.Duration

	AuthEnabled  bool
	AuthIssuer   string
	AuthAudience string
	AuthJWKSURL  string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func LoadConfig() Config {
	cfg := Config{
		DSN:               os.Getenv("DB_CONN"),
		Port:              os.Getenv("PORT"),
		HCloudToken:       os.Getenv("HCLOUD_TOKEN"),
		NetworkZone:       os.Getenv("HCLOUD_NETWORK_ZONE"),
		ProviderEndpoint:  os.Getenv("HCLOUD_ENDPOINT"),
		ProviderTimeout:   durationEnv("PROVIDER_TIMEOUT", 2*time.Minute),
		PendingStaleAfter: durationEnv("PENDING_STALE_AFTER", 5*time.Minute),
		RetryAttempts:     intEnv("PROVIDER_RETRY_ATTEMPTS", 4),
		RetryInitialDelay: durationEnv("PROVIDER_RETRY_DELAY", 500*time.Millisecond),
		AuthEnabled:       boolEnv("AUTH_ENABLED", false),
		AuthIssuer:        os.Getenv("AUTH_ISSUER"),
		AuthAudience:      os.Getenv("AUTH_AUDIENCE"),
		AuthJWKSURL:       os.Getenv("AUTH_JWKS_URL"),
		ReadTimeout:       3 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	if cfg.DSN == "" {
		log.Fatal("missing required environment variable: DB_CONN")
	}
	if cfg.HCloudToken == "" {
		log.Fatal("missing required environment variable: HCLOUD_TOKEN")
	}
	if cfg.Port == "" {
		cfg.Port = "4040"
	}
	if cfg.NetworkZone == "" {
		cfg.NetworkZone = "eu-central"
	}
	return cfg
}

func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return err
	}
	return Serve(ctx, cfg, listener)
}

// Serve runs the API on an existing listener. Integration tests use it
// to bind an ephemeral port.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger := slog.Default()

	pool, err := appdb.NewPool(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := appdb.Migrate(ctx, pool); err != nil {
		return err
	}

	store := appdb.NewNetworkRepository(pool)

	var provOpts []provider.Option
	if cfg.ProviderEndpoint != "" {
		provOpts = append(provOpts, provider.WithHCloudClient(hcloud.NewClient(
			hcloud.WithToken(cfg.HCloudToken),
			hcloud.WithEndpoint(cfg.ProviderEndpoint),
		)))
	}
	networks := provider.NewClient(cfg.HCloudToken, cfg.NetworkZone, provOpts...)

	retryPolicy := retry.DefaultPolicy()
	retryPolicy.Attempts = cfg.RetryAttempts
	retryPolicy.InitialDelay = cfg.RetryInitialDelay

	orchestrator := domain.NewOrchestrator(store, networks, domain.Config{
		ProviderTimeout:   cfg.ProviderTimeout,
		PendingStaleAfter: cfg.PendingStaleAfter,
		Retry:             retryPolicy,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	service := domain.NewMetricsNetworkService(registry,
		domain.NewLoggingNetworkService(logger, orchestrator))

	authenticator, err := auth.NewKeycloakAuthenticator(auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.AuthIssuer,
		Audience: cfg.AuthAudience,
		JWKSURL:  cfg.AuthJWKSURL,
	})
	if err != nil {
		return err
	}

	api := apihttp.NewAPI(logger, service, authenticator, pool, registry)

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("serving", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("serve", "err", err.Error())
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("invalid duration in %s: %v", key, err)
	}
	return d
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("invalid integer in %s: %v", key, err)
	}
	return n
}

func boolEnv(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("invalid boolean in %s: %v", key, err)
	}
	return b
}
