// Package telemetry sets up OpenTelemetry tracing for tableview. Tracing is
// off unless OTEL_EXPORTER_OTLP_ENDPOINT is set.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// EndpointEnv enables OTLP export when set.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides DefaultServiceName.
	ServiceNameEnv = "OTEL_SERVICE_NAME"
	// DefaultServiceName is reported when OTEL_SERVICE_NAME is unset.
	DefaultServiceName = "tableview"

	instrumentationName = "tablekit/ui"
)

// Provider hands out the tracer used by the table and flushes it on exit.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewProvider creates an OTLP/HTTP provider if OTEL_EXPORTER_OTLP_ENDPOINT is
// set. Otherwise the provider is disabled and its tracer records nothing.
func NewProvider(ctx context.Context) (*Provider, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(instrumentationName)}, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // local collectors only
	)
	if err != nil {
		return nil, err
	}
	return NewWithProcessor(sdktrace.NewBatchSpanProcessor(exporter)), nil
}

// NewWithProcessor creates an enabled provider that hands spans to sp.
func NewWithProcessor(sp sdktrace.SpanProcessor) *Provider {
	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = DefaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sp),
		sdktrace.WithResource(res),
	)
	return &Provider{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Tracer returns the provider's tracer.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(instrumentationName)
	}
	return p.tracer
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
