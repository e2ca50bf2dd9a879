package handlers

import "net/http"

type MetaHandler struct {
	serviceName string
}

func NewMetaHandler(serviceName string) *MetaHandler {
	return &MetaHandler{serviceName: serviceName}
}

// GetServiceInfo lists only routes this server serves; there is no OpenAPI page.
func (h *MetaHandler) GetServiceInfo(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, ServiceInfoResponse{
		Service:     h.serviceName,
		Description: "Current temperature for a city name",
		Endpoints: map[string]string{
			"GET /weather/{city}": "current temperature for a city",
			"GET /weather?q=":     "current temperature for a city, query form",
			"GET /lookups":        "recent lookups from the audit log",
			"GET /health":         "liveness check",
		},
	})
}

func (h *MetaHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: h.serviceName,
	})
}
