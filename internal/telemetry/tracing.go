package telemetry

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

type ShutdownFunc func(ctx context.Context) error

// SetupTracing installs the global propagator and, when zipkinEndpoint is set,
// a tracer provider exporting to Zipkin. Without an endpoint spans stay no-op.
func SetupTracing(serviceName, zipkinEndpoint string) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if zipkinEndpoint == "" {
		log.Info().Msg("tracing exporter disabled")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := zipkin.New(zipkinEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create zipkin exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)

	otel.SetTracerProvider(tp)
	log.Info().Str("endpoint", zipkinEndpoint).Msg("exporting traces to zipkin")

	return tp.Shutdown, nil
}
