package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/abgdnv/monapi/pkg/config"
	"github.com/abgdnv/monapi/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HTTPConfig has the configuration for the HTTP server.
type HTTPConfig struct {
	Port           int
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	ReadHeader     time.Duration
}

// NewHTTPServer creates and configures a new HTTP server instance.
func NewHTTPServer(cfg HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ReadHeaderTimeout: cfg.ReadHeader,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}
}

// NewChiRouter creates a new Chi router with request id injection, structured logging,
// panic recovery and CORS. A single trailing slash is ignored when matching routes.
// Unmatched routes and methods get the JSON not-found envelope.
func NewChiRouter(logger *slog.Logger, corsCfg config.CORSConfig) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(web.RequestIDInjector)
	mux.Use(middleware.StripSlashes)
	mux.Use(web.StructuredLogger(logger))
	mux.Use(web.Recoverer(logger))
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: corsCfg.AllowedMethods,
		AllowedHeaders: corsCfg.AllowedHeaders,
		ExposedHeaders: []string{web.RequestIDHeader},
		MaxAge:         corsCfg.MaxAge,
	}))
	mux.NotFound(web.NotFound(logger))
	mux.MethodNotAllowed(web.NotFound(logger))
	return mux
}

// WithTracing wraps handler with OpenTelemetry server spans named after the service.
func WithTracing(handler http.Handler, serviceName string) http.Handler {
	return otelhttp.NewHandler(handler, serviceName)
}
