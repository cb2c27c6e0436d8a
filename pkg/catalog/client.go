package catalog

import (
	"context"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tjfontaine/bdfd-catalog/internal/api/bdfd"
)

const instrumentationName = "github.com/tjfontaine/bdfd-catalog/pkg/catalog"

// Metrics receives one observation per HTTP request the client issues.
type Metrics = bdfd.Metrics

// Option configures a catalog client.
type Option func(*options)

type options struct {
	apiOpts        []bdfd.ClientOption
	tracerProvider trace.TracerProvider
}

// WithBaseURL points the client at a different API root.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.apiOpts = append(o.apiOpts, bdfd.WithBaseURL(baseURL))
	}
}

// WithHTTPClient sets the HTTP client used for every request. Timeouts,
// TLS and proxies are configured there.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.apiOpts = append(o.apiOpts, bdfd.WithHTTPClient(httpClient))
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.apiOpts = append(o.apiOpts, bdfd.WithUserAgent(userAgent))
	}
}

// WithLogger enables debug logging of each request.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.apiOpts = append(o.apiOpts, bdfd.WithLogger(logger))
	}
}

// WithMetrics reports every request to m.
func WithMetrics(m Metrics) Option {
	return func(o *options) {
		o.apiOpts = append(o.apiOpts, bdfd.WithMetrics(m))
	}
}

// WithTracerProvider sets the provider for operation spans. The global
// provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// base carries what both typed clients share.
type base struct {
	api      *bdfd.Client
	resolver resolver
	tracer   trace.Tracer
}

func newBase(domain Domain, opts []Option) base {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	tp := o.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	api := bdfd.NewClient(o.apiOpts...)
	return base{
		api:      api,
		resolver: resolver{api: api, domain: domain},
		tracer:   tp.Tracer(instrumentationName),
	}
}

// BaseURL returns the API root requests are sent to.
func (b base) BaseURL() string {
	return b.api.BaseURL()
}

func (b base) startSpan(ctx context.Context, domain Domain, op Operation, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs,
		attribute.String("catalog.domain", string(domain)),
		attribute.String("catalog.operation", string(op)),
	)
	return b.tracer.Start(ctx, "catalog."+string(domain)+"."+string(op), trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
