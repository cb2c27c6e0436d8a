package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel"
)

func TestInitTracer(t *testing.T) {
	original := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(original) })

	var out bytes.Buffer
	shutdown, err := InitTracer("bdfd-catalog-test", &out, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("InitTracer() error = %v", err)
	}

	_, span := otel.Tracer("test").Start(context.Background(), "catalog.function.list")
	span.End()

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown() error = %v", err)
	}

	if !bytes.Contains(out.Bytes(), []byte("catalog.function.list")) {
		t.Errorf("expected exported span in output, got %q", out.String())
	}
	if !bytes.Contains(out.Bytes(), []byte("bdfd-catalog-test")) {
		t.Errorf("expected service name in output")
	}
}
