package telemetry

import (
	"context"
	"fmt"
	"strings"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type ShutdownFunc func(ctx context.Context) error

func noopShutdown(context.Context) error { return nil }

// InitTracer installs a global tracer provider exporting over OTLP/HTTP.
// With tracing disabled it leaves the no-op provider in place.
func InitTracer(ctx context.Context, cfg *config.Otel, env string) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return noopShutdown, nil
	}

	exporter, err := otlptracehttp.New(ctx, exporterOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create otlp exporter: %w", err)
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("deployment.environment", env),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplerRatio))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}

func exporterOptions(cfg *config.Otel) []otlptracehttp.Option {
	var opts []otlptracehttp.Option

	if strings.Contains(cfg.ExporterEndpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpointURL(cfg.ExporterEndpoint))
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(cfg.ExporterEndpoint))
		if !cfg.TLS {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
	}

	return opts
}
