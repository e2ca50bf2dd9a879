package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"ulascansenturk/city-weather/internal/db/lookuplog"
	"ulascansenturk/city-weather/internal/service"
)

const defaultRequestTimeout = 30 * time.Second

type RouterConfig struct {
	ServiceName    string
	LookupService  service.LookupService
	LookupRepo     lookuplog.Repository
	RequestTimeout time.Duration
	RateLimiter    *ClientRateLimiter

	// TrustProxyHeaders lets X-Forwarded-For and X-Real-IP replace the peer
	// address. Enable it only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool
}

// NewRouter wires every route behind the shared middleware stack. LookupRepo
// and RateLimiter are optional.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	weatherHandler := NewWeatherHandler(cfg.LookupService, cfg.RequestTimeout)
	lookupsHandler := NewLookupsHandler(cfg.LookupRepo)
	metaHandler := NewMetaHandler(cfg.ServiceName)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if cfg.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(AccessLog)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/", metaHandler.GetServiceInfo)
	r.Get("/health", metaHandler.GetHealth)

	r.Group(func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Middleware)
		}

		r.Get("/weather", weatherHandler.GetWeather)
		r.Get("/weather/{city}", weatherHandler.GetWeatherByCity)
		r.Get("/lookups", lookupsHandler.GetRecentLookups)
	})

	return otelhttp.NewHandler(r, cfg.ServiceName,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
