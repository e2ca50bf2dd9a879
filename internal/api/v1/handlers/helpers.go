package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"ulascansenturk/city-weather/internal/service"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	errorCode := "INTERNAL_ERROR"
	title := "Internal Server Error"

	switch code {
	case http.StatusBadRequest:
		errorCode = "BAD_REQUEST"
		title = "Bad Request"
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
		title = "Not Found"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
		title = "Method Not Allowed"
	case http.StatusTooManyRequests:
		errorCode = "TOO_MANY_REQUESTS"
		title = "Too Many Requests"
	case http.StatusBadGateway:
		errorCode = "BAD_GATEWAY"
		title = "Bad Gateway"
	case http.StatusGatewayTimeout:
		errorCode = "GATEWAY_TIMEOUT"
		title = "Gateway Timeout"
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// statusForLookupError maps a lookup failure to a status code. Misses are 404,
// upstream trouble is a gateway error.
func statusForLookupError(err error) int {
	lookupErr, ok := service.AsLookupError(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch lookupErr.Kind {
	case service.KindNotFound, service.KindDataUnavailable:
		return http.StatusNotFound
	case service.KindUpstream:
		if lookupErr.Timeout() {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
