package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/tjfontaine/bdfd-catalog/internal/testutil"
)

func TestFunctionClient_Spans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	fake := testutil.NewFakeCatalog(t)
	fake.Handle(t, "function_tag_list", []string{"$ban"})

	client := NewFunctionClient(WithBaseURL(fake.BaseURL()), WithTracerProvider(tp))

	_, err := client.TagList(context.Background())
	require.NoError(t, err)

	_, err = client.Info(context.Background(), "$kick")
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "catalog.function.tag-list", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	assert.Equal(t, "catalog.function.info", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)

	var partial string
	for _, attr := range spans[1].Attributes() {
		if attr.Key == "catalog.partial_tag" {
			partial = attr.Value.AsString()
		}
	}
	assert.Equal(t, "$kick", partial)
}
