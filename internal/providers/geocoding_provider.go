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

const nominatimProvider = "nominatim"

type Location struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

type Geocoder interface {
	Geocode(ctx context.Context, query string) (Location, error)
}

type nominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewNominatimGeocoder(baseURL, userAgent string, timeout time.Duration) Geocoder {
	return &nominatimGeocoder{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    newHTTPClient(timeout),
	}
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode returns the provider's best match for query. The query is sent as-is;
// Nominatim does its own normalization.
func (g *nominatimGeocoder) Geocode(ctx context.Context, query string) (Location, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return Location{}, upstream(nominatimProvider, "request could not be built: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return Location{}, upstream(nominatimProvider, "request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Location{}, upstream(nominatimProvider, "returned status code: %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return Location{}, upstream(nominatimProvider, "returned malformed JSON: %w", err)
	}

	if len(places) == 0 {
		return Location{}, ErrLocationNotFound
	}

	best := places[0]
	lat, err := strconv.ParseFloat(best.Lat, 64)
	if err != nil {
		return Location{}, upstream(nominatimProvider, "returned invalid latitude %q: %w", best.Lat, err)
	}
	lon, err := strconv.ParseFloat(best.Lon, 64)
	if err != nil {
		return Location{}, upstream(nominatimProvider, "returned invalid longitude %q: %w", best.Lon, err)
	}

	return Location{
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: best.DisplayName,
	}, nil
}
