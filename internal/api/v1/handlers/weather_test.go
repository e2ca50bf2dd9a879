package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"ulascansenturk/city-weather/internal/api/v1/handlers"
	"ulascansenturk/city-weather/internal/mocks"
	"ulascansenturk/city-weather/internal/providers"
	"ulascansenturk/city-weather/internal/service"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WeatherHandlerTestSuite struct {
	suite.Suite
	mockService *mocks.MockLookupService
	router      http.Handler
}

func (s *WeatherHandlerTestSuite) SetupTest() {
	s.mockService = mocks.NewMockLookupService(s.T())
	s.router = handlers.NewRouter(handlers.RouterConfig{
		ServiceName:    "weather-service",
		LookupService:  s.mockService,
		RequestTimeout: 5 * time.Second,
	})
}

func (s *WeatherHandlerTestSuite) serve(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	recorder := httptest.NewRecorder()

	s.router.ServeHTTP(recorder, req)

	return recorder
}

func (s *WeatherHandlerTestSuite) decodeError(recorder *httptest.ResponseRecorder) handlers.Error {
	var response handlers.ErrorResponse
	err := json.NewDecoder(recorder.Body).Decode(&response)
	s.Require().NoError(err)
	s.Require().Len(response.Errors, 1)
	return response.Errors[0]
}

func londonResult() service.LookupResult {
	return service.LookupResult{
		LookupID:    "5f0c2f7e-2b7c-4b55-9a43-0b1c8c3d8f10",
		City:        "London",
		Coordinates: service.Coordinates{Latitude: 51.5074, Longitude: -0.1278},
		Temperature: 15.2,
		Message:     "15 Celsius now in London",
	}
}

func (s *WeatherHandlerTestSuite) TestGetWeatherByCitySuccess() {
	s.mockService.On("Lookup", mock.Anything, "London").Return(londonResult(), nil)

	recorder := s.serve(http.MethodGet, "/weather/London")

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("application/json", recorder.Header().Get("Content-Type"))

	var response handlers.WeatherResponse
	err := json.NewDecoder(recorder.Body).Decode(&response)
	s.NoError(err)
	s.Equal("London", response.City)
	s.Equal("15 Celsius now in London", response.Result)
	s.Equal(15.2, response.Temperature)
	s.Equal(51.5074, response.Latitude)
	s.Equal(-0.1278, response.Longitude)
	s.NotEmpty(response.LookupID)
}

func (s *WeatherHandlerTestSuite) TestGetWeatherByCityDecodesPath() {
	result := londonResult()
	result.City = "New York"
	result.Message = "20 Celsius now in New York"

	s.mockService.On("Lookup", mock.Anything, "New York").Return(result, nil)

	recorder := s.serve(http.MethodGet, "/weather/New%20York")

	s.Equal(http.StatusOK, recorder.Code)
}

func (s *WeatherHandlerTestSuite) TestGetWeatherQuerySuccess() {
	s.mockService.On("Lookup", mock.Anything, "London").Return(londonResult(), nil)

	recorder := s.serve(http.MethodGet, "/weather?q=London")

	s.Equal(http.StatusOK, recorder.Code)

	var response handlers.WeatherResponse
	err := json.NewDecoder(recorder.Body).Decode(&response)
	s.NoError(err)
	s.Equal("15 Celsius now in London", response.Result)
}

func (s *WeatherHandlerTestSuite) TestGetWeatherQueryMissingLocation() {
	recorder := s.serve(http.MethodGet, "/weather")

	s.Equal(http.StatusBadRequest, recorder.Code)

	apiErr := s.decodeError(recorder)
	s.Equal("BAD_REQUEST", apiErr.Code)
	s.Contains(apiErr.Detail, "location parameter")

	s.mockService.AssertNotCalled(s.T(), "Lookup", mock.Anything, mock.Anything)
}

func (s *WeatherHandlerTestSuite) TestWrongMethod() {
	recorder := s.serve(http.MethodPost, "/weather/London")

	s.Equal(http.StatusMethodNotAllowed, recorder.Code)

	apiErr := s.decodeError(recorder)
	s.Equal("METHOD_NOT_ALLOWED", apiErr.Code)
	s.Contains(apiErr.Detail, "method not allowed")

	s.mockService.AssertNotCalled(s.T(), "Lookup", mock.Anything, mock.Anything)
}

func (s *WeatherHandlerTestSuite) TestWrongPath() {
	recorder := s.serve(http.MethodGet, "/forecast?q=Istanbul")

	s.Equal(http.StatusNotFound, recorder.Code)

	apiErr := s.decodeError(recorder)
	s.Equal("NOT_FOUND", apiErr.Code)
	s.Contains(apiErr.Detail, "not found")
}

func (s *WeatherHandlerTestSuite) TestLookupErrorStatusMapping() {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name: "not found",
			err: &service.LookupError{
				Kind: service.KindNotFound,
				City: "InvalidCityName12345",
				Err:  errors.New("City 'InvalidCityName12345' not found"),
			},
			status: http.StatusNotFound,
			code:   "NOT_FOUND",
		},
		{
			name: "data unavailable",
			err: &service.LookupError{
				Kind: service.KindDataUnavailable,
				City: "InvalidCityName12345",
				Err:  providers.ErrTemperatureUnavailable,
			},
			status: http.StatusNotFound,
			code:   "NOT_FOUND",
		},
		{
			name: "upstream",
			err: &service.LookupError{
				Kind: service.KindUpstream,
				City: "InvalidCityName12345",
				Err:  errors.New("error fetching weather data: open-meteo returned status code: 503"),
			},
			status: http.StatusBadGateway,
			code:   "BAD_GATEWAY",
		},
		{
			name: "upstream timeout",
			err: &service.LookupError{
				Kind: service.KindUpstream,
				City: "InvalidCityName12345",
				Err:  context.DeadlineExceeded,
			},
			status: http.StatusGatewayTimeout,
			code:   "GATEWAY_TIMEOUT",
		},
		{
			name: "unexpected",
			err: &service.LookupError{
				Kind: service.KindUnexpected,
				City: "InvalidCityName12345",
				Err:  errors.New("unexpected failure: boom"),
			},
			status: http.StatusInternalServerError,
			code:   "INTERNAL_ERROR",
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.mockService.On("Lookup", mock.Anything, "InvalidCityName12345").Return(service.LookupResult{}, tc.err)

			recorder := s.serve(http.MethodGet, "/weather/InvalidCityName12345")

			s.Equal(tc.status, recorder.Code)

			apiErr := s.decodeError(recorder)
			s.Equal(tc.code, apiErr.Code)
			s.Equal(tc.status, apiErr.Status)
			s.Equal(tc.err.Error(), apiErr.Detail)
			s.Contains(apiErr.Detail, "Error getting weather for 'InvalidCityName12345'")
		})
	}
}

func (s *WeatherHandlerTestSuite) TestRequestTimeout() {
	s.router = handlers.NewRouter(handlers.RouterConfig{
		ServiceName:    "weather-service",
		LookupService:  s.mockService,
		RequestTimeout: 50 * time.Millisecond,
	})

	s.mockService.On("Lookup", mock.Anything, "SlowCity").
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			<-ctx.Done()
		}).
		Return(service.LookupResult{}, &service.LookupError{
			Kind: service.KindUpstream,
			City: "SlowCity",
			Err:  context.DeadlineExceeded,
		})

	recorder := s.serve(http.MethodGet, "/weather/SlowCity")

	s.Equal(http.StatusGatewayTimeout, recorder.Code)

	apiErr := s.decodeError(recorder)
	s.Contains(apiErr.Detail, "context deadline exceeded")
}

func (s *WeatherHandlerTestSuite) TestHealth() {
	recorder := s.serve(http.MethodGet, "/health")

	s.Equal(http.StatusOK, recorder.Code)

	var response handlers.HealthResponse
	err := json.NewDecoder(recorder.Body).Decode(&response)
	s.NoError(err)
	s.Equal("healthy", response.Status)
	s.Equal("weather-service", response.Service)
}

func (s *WeatherHandlerTestSuite) TestServiceInfo() {
	recorder := s.serve(http.MethodGet, "/")

	s.Equal(http.StatusOK, recorder.Code)

	var response handlers.ServiceInfoResponse
	err := json.NewDecoder(recorder.Body).Decode(&response)
	s.NoError(err)
	s.Equal("weather-service", response.Service)
	s.Contains(response.Endpoints, "GET /weather/{city}")
	s.NotContains(response.Endpoints, "GET /docs")
	s.Len(response.Endpoints, 4)

	for _, target := range []string{"/health", "/lookups"} {
		s.NotEqual(http.StatusMethodNotAllowed, s.serve(http.MethodGet, target).Code, target)
	}
}

func TestWeatherHandlerSuite(t *testing.T) {
	suite.Run(t, new(WeatherHandlerTestSuite))
}
