package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"ulascansenturk/city-weather/internal/db/lookuplog"
	"ulascansenturk/city-weather/internal/providers"
)

const (
	DefaultCallTimeout = 10 * time.Second
	auditWriteTimeout  = 2 * time.Second
	tracerName         = "ulascansenturk/city-weather/internal/service"
)

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

type LookupResult struct {
	LookupID    string
	City        string
	Coordinates Coordinates
	Temperature float64
	Message     string
}

type LookupService interface {
	ResolveCoordinates(ctx context.Context, city string) (Coordinates, error)
	FetchTemperature(ctx context.Context, coordinates Coordinates) (float64, error)
	Lookup(ctx context.Context, city string) (LookupResult, error)
}

type lookupService struct {
	geocoder         providers.Geocoder
	weather          providers.WeatherProvider
	lookupRepo       lookuplog.Repository
	geocodingTimeout time.Duration
	weatherTimeout   time.Duration
	tracer           trace.Tracer
}

// NewLookupService builds the pipeline once for the whole process. lookupRepo may be nil,
// in which case lookups are not audited. Non-positive timeouts fall back to DefaultCallTimeout.
func NewLookupService(
	geocoder providers.Geocoder,
	weather providers.WeatherProvider,
	lookupRepo lookuplog.Repository,
	geocodingTimeout time.Duration,
	weatherTimeout time.Duration,
) LookupService {
	if geocodingTimeout <= 0 {
		geocodingTimeout = DefaultCallTimeout
	}
	if weatherTimeout <= 0 {
		weatherTimeout = DefaultCallTimeout
	}

	return &lookupService{
		geocoder:         geocoder,
		weather:          weather,
		lookupRepo:       lookupRepo,
		geocodingTimeout: geocodingTimeout,
		weatherTimeout:   weatherTimeout,
		tracer:           otel.Tracer(tracerName),
	}
}

// RoundCelsius rounds half away from zero.
func RoundCelsius(temperature float64) int {
	return int(math.Round(temperature))
}

func FormatResult(city string, temperature float64) string {
	return fmt.Sprintf("%d Celsius now in %s", RoundCelsius(temperature), city)
}

func (s *lookupService) ResolveCoordinates(ctx context.Context, city string) (Coordinates, error) {
	ctx, span := s.tracer.Start(ctx, "resolve-coordinates", trace.WithAttributes(attribute.String("city", city)))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, s.geocodingTimeout)
	defer cancel()

	location, err := s.geocoder.Geocode(ctx, city)
	if err != nil {
		var lookupErr *LookupError
		if isNotFound(err) {
			lookupErr = &LookupError{Kind: KindNotFound, City: city, Err: fmt.Errorf("City '%s' not found", city)}
		} else {
			lookupErr = &LookupError{
				Kind: KindUpstream,
				City: city,
				Err:  fmt.Errorf("error finding coordinates for city '%s': %w", city, err),
			}
		}
		span.RecordError(lookupErr)
		span.SetStatus(codes.Error, lookupErr.Kind.String())
		return Coordinates{}, lookupErr
	}

	span.SetAttributes(
		attribute.Float64("latitude", location.Latitude),
		attribute.Float64("longitude", location.Longitude),
	)

	return Coordinates{Latitude: location.Latitude, Longitude: location.Longitude}, nil
}

func (s *lookupService) FetchTemperature(ctx context.Context, coordinates Coordinates) (float64, error) {
	ctx, span := s.tracer.Start(ctx, "fetch-temperature", trace.WithAttributes(
		attribute.Float64("latitude", coordinates.Latitude),
		attribute.Float64("longitude", coordinates.Longitude),
	))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, s.weatherTimeout)
	defer cancel()

	temperature, err := s.weather.CurrentTemperature(ctx, coordinates.Latitude, coordinates.Longitude)
	if err != nil {
		var lookupErr *LookupError
		switch {
		case isDataUnavailable(err):
			lookupErr = &LookupError{Kind: KindDataUnavailable, Err: err}
		case isUpstream(err):
			lookupErr = &LookupError{Kind: KindUpstream, Err: fmt.Errorf("error fetching weather data: %w", err)}
		default:
			lookupErr = &LookupError{Kind: KindUnexpected, Err: fmt.Errorf("error processing weather data: %w", err)}
		}
		span.RecordError(lookupErr)
		span.SetStatus(codes.Error, lookupErr.Kind.String())
		return 0, lookupErr
	}

	span.SetAttributes(attribute.Float64("temperature", temperature))

	return temperature, nil
}

func (s *lookupService) Lookup(ctx context.Context, city string) (LookupResult, error) {
	lookupID := uuid.NewString()
	startTime := time.Now()

	result, coordinates, err := s.lookup(ctx, lookupID, city)
	elapsed := time.Since(startTime)

	if err != nil {
		log.Error().Err(err).Str("lookup_id", lookupID).Str("city", city).Dur("elapsed", elapsed).Msg("lookup failed")
	} else {
		log.Info().Str("lookup_id", lookupID).Str("city", city).Float64("temperature", result.Temperature).
			Dur("elapsed", elapsed).Msg("lookup succeeded")
	}

	s.audit(ctx, lookupID, city, coordinates, result, err, elapsed)

	return result, err
}

func (s *lookupService) lookup(ctx context.Context, lookupID, city string) (result LookupResult, coordinates *Coordinates, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = LookupResult{}
			err = &LookupError{Kind: KindUnexpected, City: city, Err: fmt.Errorf("unexpected failure: %v", r)}
		}
	}()

	resolved, err := s.ResolveCoordinates(ctx, city)
	if err != nil {
		return LookupResult{}, nil, withCity(err, city)
	}
	coordinates = &resolved

	log.Info().
		Str("lookup_id", lookupID).
		Str("city", city).
		Float64("latitude", resolved.Latitude).
		Float64("longitude", resolved.Longitude).
		Msg("found coordinates")

	temperature, err := s.FetchTemperature(ctx, resolved)
	if err != nil {
		return LookupResult{}, coordinates, withCity(err, city)
	}

	return LookupResult{
		LookupID:    lookupID,
		City:        city,
		Coordinates: resolved,
		Temperature: temperature,
		Message:     FormatResult(city, temperature),
	}, coordinates, nil
}

func (s *lookupService) audit(
	ctx context.Context,
	lookupID, city string,
	coordinates *Coordinates,
	result LookupResult,
	lookupErr error,
	elapsed time.Duration,
) {
	if s.lookupRepo == nil {
		return
	}

	record := &lookuplog.LookupRecord{
		LookupID:   lookupID,
		City:       city,
		DurationMs: elapsed.Milliseconds(),
	}
	if coordinates != nil {
		record.Latitude = &coordinates.Latitude
		record.Longitude = &coordinates.Longitude
	}

	if lookupErr != nil {
		record.Outcome = KindUnexpected.String()
		if e, ok := AsLookupError(lookupErr); ok {
			record.Outcome = e.Kind.String()
		}
		record.Detail = lookupErr.Error()
	} else {
		temperature := result.Temperature
		record.Temperature = &temperature
		record.Outcome = lookuplog.OutcomeSuccess
		record.Detail = result.Message
	}

	auditCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
	defer cancel()

	if err := s.lookupRepo.LogLookup(auditCtx, record); err != nil {
		log.Warn().Err(err).Str("lookup_id", lookupID).Msg("failed to log lookup")
	}
}

func withCity(err error, city string) error {
	if e, ok := AsLookupError(err); ok {
		e.City = city
		return e
	}
	return &LookupError{Kind: KindUnexpected, City: city, Err: err}
}
