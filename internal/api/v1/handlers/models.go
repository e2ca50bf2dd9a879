package handlers

import "ulascansenturk/city-weather/internal/db/lookuplog"

type WeatherResponse struct {
	LookupID    string  `json:"lookup_id"`
	City        string  `json:"city"`
	Result      string  `json:"result"`
	Temperature float64 `json:"temperature"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type ServiceInfoResponse struct {
	Service     string            `json:"service"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type LookupsResponse struct {
	Lookups []lookuplog.LookupRecord `json:"lookups"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
