package handlers

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
	"ulascansenturk/city-weather/internal/db/lookuplog"
)

const maxRecentLimit = 100

type LookupsHandler struct {
	lookupRepo lookuplog.Repository
}

func NewLookupsHandler(lookupRepo lookuplog.Repository) *LookupsHandler {
	return &LookupsHandler{lookupRepo: lookupRepo}
}

// GetRecentLookups serves GET /lookups?city=..&limit=..
func (h *LookupsHandler) GetRecentLookups(w http.ResponseWriter, r *http.Request) {
	if h.lookupRepo == nil {
		respondWithError(w, http.StatusNotFound, "lookup audit log is disabled")
		return
	}

	limit := lookuplog.DefaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(parsed, maxRecentLimit)
	}

	city := r.URL.Query().Get("city")

	records, err := h.lookupRepo.RecentLookups(r.Context(), city, limit)
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("failed to list lookups")
		respondWithError(w, http.StatusInternalServerError, "failed to list lookups")
		return
	}

	if records == nil {
		records = []lookuplog.LookupRecord{}
	}

	respondWithJSON(w, http.StatusOK, LookupsResponse{Lookups: records})
}
