package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	ErrLocationNotFound       = errors.New("location not found")
	ErrTemperatureUnavailable = errors.New("Temperature data not available")
)

// UpstreamError reports a collaborator that could not be reached or answered
// with something other than a usable 2xx response.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a deadline or client timeout.
func (e *UpstreamError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

func upstream(provider, format string, args ...any) error {
	return &UpstreamError{Provider: provider, Err: fmt.Errorf(format, args...)}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}
