package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const openMeteoProvider = "open-meteo"

type WeatherProvider interface {
	CurrentTemperature(ctx context.Context, latitude, longitude float64) (float64, error)
}

type openMeteoWeatherProvider struct {
	baseURL string
	client  *http.Client
}

func NewOpenMeteoProvider(baseURL string, timeout time.Duration) WeatherProvider {
	return &openMeteoWeatherProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  newHTTPClient(timeout),
	}
}

type OpenMeteoResponse struct {
	CurrentWeather struct {
		Temperature *float64 `json:"temperature"`
		WindSpeed   float64  `json:"windspeed"`
		WeatherCode int      `json:"weathercode"`
		Time        string   `json:"time"`
	} `json:"current_weather"`
	Error  bool   `json:"error,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func (s *openMeteoWeatherProvider) CurrentTemperature(ctx context.Context, latitude, longitude float64) (float64, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("current_weather", "true")
	params.Set("temperature_unit", "celsius")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/v1/forecast?"+params.Encode(), nil)
	if err != nil {
		return 0, upstream(openMeteoProvider, "request could not be built: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, upstream(openMeteoProvider, "request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiResp OpenMeteoResponse
		if json.NewDecoder(resp.Body).Decode(&apiResp) == nil && apiResp.Reason != "" {
			return 0, upstream(openMeteoProvider, "returned status code: %d (%s)", resp.StatusCode, apiResp.Reason)
		}
		return 0, upstream(openMeteoProvider, "returned status code: %d", resp.StatusCode)
	}

	var apiResp OpenMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return 0, upstream(openMeteoProvider, "returned malformed JSON: %w", err)
	}

	if apiResp.CurrentWeather.Temperature == nil {
		return 0, ErrTemperatureUnavailable
	}

	return *apiResp.CurrentWeather.Temperature, nil
}
