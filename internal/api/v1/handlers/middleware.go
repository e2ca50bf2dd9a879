package handlers

import (
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"ulascansenturk/city-weather/internal/inmemorycache"
)

const (
	visitorIdleTTL         = 3 * time.Minute
	visitorCleanupInterval = time.Minute
)

// ClientRateLimiter keeps one token bucket per client address.
type ClientRateLimiter struct {
	limit    rate.Limit
	burst    int
	visitors *inmemorycache.InMemoryCache[*rate.Limiter]
}

// NewClientRateLimiter allows rps requests per second per client with the given burst.
// A non-positive rps disables limiting.
func NewClientRateLimiter(rps float64, burst int) *ClientRateLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}

	return &ClientRateLimiter{
		limit:    limit,
		burst:    burst,
		visitors: inmemorycache.NewInMemoryCache[*rate.Limiter](visitorCleanupInterval),
	}
}

func (l *ClientRateLimiter) Allow(client string) bool {
	limiter := l.visitors.GetOrCreate(client, visitorIdleTTL, func() *rate.Limiter {
		return rate.NewLimiter(l.limit, l.burst)
	})
	return limiter.Allow()
}

func (l *ClientRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientAddress(r)
		if !l.Allow(client) {
			log.Warn().Str("client", client).Str("path", r.URL.Path).Msg("rate limit exceeded")
			respondWithError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *ClientRateLimiter) Close() {
	l.visitors.Close()
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// AccessLog writes one zerolog line per request once the response is complete.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		startTime := time.Now()

		defer func() {
			log.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_addr", r.RemoteAddr).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", time.Since(startTime)).
				Msg("request completed")
		}()

		next.ServeHTTP(ww, r)
	})
}
