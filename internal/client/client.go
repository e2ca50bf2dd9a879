package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"ulascansenturk/city-weather/internal/api/v1/handlers"
)

const (
	DefaultServerURL = "http://localhost:8000"
	DefaultTimeout   = 10 * time.Second
)

// APIError is a non-200 answer from the weather service.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return e.Detail
}

// ConnectionError means the weather service could not be reached at all.
type ConnectionError struct {
	ServerURL string
	Err       error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("Cannot connect to weather service. Make sure it's running on %s", e.ServerURL)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

type Client struct {
	serverURL  string
	httpClient *http.Client
}

func New(serverURL string, timeout time.Duration) *Client {
	if serverURL == "" {
		serverURL = DefaultServerURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// GetWeather returns the service's result line for city.
func (c *Client) GetWeather(ctx context.Context, city string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+"/weather/"+url.PathEscape(city), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isConnectionFailure(err) {
			return "", &ConnectionError{ServerURL: c.serverURL, Err: err}
		}
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode, Detail: "Unknown error"}

		var errResp handlers.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&errResp) == nil && len(errResp.Errors) > 0 && errResp.Errors[0].Detail != "" {
			apiErr.Detail = errResp.Errors[0].Detail
		}
		return "", apiErr
	}

	var weatherResp handlers.WeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&weatherResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return weatherResp.Result, nil
}

// Render turns a GetWeather outcome into the line printed to the user.
func Render(result string, err error) string {
	if err != nil {
		return "Error: " + err.Error()
	}
	return result
}

func isConnectionFailure(err error) bool {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return false
	}
	return !urlErr.Timeout() && !errors.Is(err, context.Canceled)
}
