package handlers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"ulascansenturk/city-weather/internal/service"
)

type WeatherHandler struct {
	lookupService service.LookupService
	timeout       time.Duration
}

func NewWeatherHandler(lookupService service.LookupService, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		lookupService: lookupService,
		timeout:       timeout,
	}
}

// GetWeatherByCity serves GET /weather/{city}.
func (h *WeatherHandler) GetWeatherByCity(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(city); err == nil {
			city = unescaped
		}
	}

	if city == "" {
		respondWithError(w, http.StatusBadRequest, "city name is required")
		return
	}

	h.lookup(w, r, city)
}

// GetWeather serves GET /weather?q={city}.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("q")
	if city == "" {
		respondWithError(w, http.StatusBadRequest, "location parameter 'q' is required")
		return
	}

	h.lookup(w, r, city)
}

func (h *WeatherHandler) lookup(w http.ResponseWriter, r *http.Request, city string) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.lookupService.Lookup(ctx, city)
	if err != nil {
		status := statusForLookupError(err)
		log.Error().Err(err).Str("city", city).Int("status", status).Msg("failed to get weather data")
		respondWithError(w, status, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, WeatherResponse{
		LookupID:    result.LookupID,
		City:        result.City,
		Result:      result.Message,
		Temperature: result.Temperature,
		Latitude:    result.Coordinates.Latitude,
		Longitude:   result.Coordinates.Longitude,
	})
}
