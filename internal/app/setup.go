// Package app wires the monapi stores, services and HTTP routes together.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/monapi/internal/config"
	"github.com/abgdnv/monapi/internal/health"
	"github.com/abgdnv/monapi/internal/product/service"
	"github.com/abgdnv/monapi/internal/product/store"
	"github.com/abgdnv/monapi/internal/product/transport/rest"
	"github.com/abgdnv/monapi/internal/user"
	pkgconfig "github.com/abgdnv/monapi/pkg/config"
	"github.com/abgdnv/monapi/pkg/server"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependencies struct {
	ProductService service.ProductService
	// HealthRecorder and UserService are nil when no database is configured.
	HealthRecorder health.Recorder
	UserService    user.UserService
	Logger         *slog.Logger
}

// SetupDependencies builds the product catalog from the default seed. dbPool may be nil.
func SetupDependencies(dbPool *pgxpool.Pool, logger *slog.Logger) *Dependencies {
	deps := &Dependencies{
		ProductService: service.NewService(store.NewInMemoryStore(store.DefaultCatalog()...)),
		Logger:         logger,
	}
	if dbPool != nil {
		deps.HealthRecorder = health.NewPgStore(dbPool)
		deps.UserService = user.NewService(user.NewPgStore(dbPool), 0)
	}
	return deps
}

// SetupHttpHandler builds the router with every route mounted under the API prefix.
// Used by tests to exercise the full middleware chain.
func SetupHttpHandler(deps *Dependencies, apiCfg pkgconfig.APIConfig, corsCfg pkgconfig.CORSConfig) http.Handler {
	mux := server.NewChiRouter(deps.Logger, corsCfg)
	wireRoutes(mux, deps, apiCfg.Prefix)
	return mux
}

func wireRoutes(mux *chi.Mux, deps *Dependencies, prefix string) {
	healthHandler := health.NewHandler(deps.HealthRecorder, deps.Logger)
	mux.Get("/healthz", healthHandler.Check)

	productHandler := rest.NewHandler(deps.ProductService, deps.Logger)
	mux.Route(prefix, func(r chi.Router) {
		r.Route("/products", productHandler.RegisterRoutes)
		if deps.UserService != nil {
			userHandler := user.NewHandler(deps.UserService, deps.Logger)
			r.Route("/users", userHandler.RegisterRoutes)
		}
	})
}

// SetupHttpServer creates the HTTP server for the monapi application, traced when telemetry is enabled.
func SetupHttpServer(deps *Dependencies, cfg *config.Config, serviceName string) *http.Server {
	handler := SetupHttpHandler(deps, cfg.API, cfg.CORS)
	if cfg.Telemetry.Enabled {
		handler = server.WithTracing(handler, serviceName)
	}

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}
	return server.NewHTTPServer(httpCfg, handler)
}
