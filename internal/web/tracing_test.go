package web

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/cory-johannsen/liminal/internal/catalog"
)

func installRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(t.Context())
	})
	return sr
}

func findSpan(spans []sdktrace.ReadOnlySpan, name string) sdktrace.ReadOnlySpan {
	for _, s := range spans {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func TestSeed_RecordsDerivationSpan(t *testing.T) {
	sr := installRecorder(t)
	h := newTestHandler(t, catalog.Builtin())

	rec := get(t, h, "/api/seed?room=atrium&date=2024-01-01")
	require.Equal(t, http.StatusOK, rec.Code)

	spans := sr.Ended()
	derive := findSpan(spans, SeedSpanName)
	require.NotNil(t, derive, "derivation span recorded")
	assert.Equal(t, "liminal/web", derive.InstrumentationScope().Name)

	attrs := attribute.NewSet(derive.Attributes()...)
	seed, ok := attrs.Value("liminal.seed")
	require.True(t, ok)
	assert.Equal(t, int64(1005029803), seed.AsInt64())
	room, _ := attrs.Value("liminal.room")
	assert.Equal(t, "atrium", room.AsString())
	idx, _ := attrs.Value("liminal.variant_index")
	assert.Equal(t, int64(1), idx.AsInt64())

	server := findSpan(spans, "GET /api/seed")
	require.NotNil(t, server, "request span recorded")
	assert.Equal(t, server.SpanContext().SpanID(), derive.Parent().SpanID(), "derivation nests under the request span")
}

func TestRooms_NoDerivationSpan(t *testing.T) {
	sr := installRecorder(t)
	h := newTestHandler(t, catalog.Builtin())

	get(t, h, "/api/rooms")
	assert.Nil(t, findSpan(sr.Ended(), SeedSpanName))
}
